package config

// OutputFormat selects how a board is rendered.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // ASCII board
	JSONFormat                     // JSON document
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSONFormat {
		return "json"
	}
	return "text"
}

// OutputConfig holds settings related to board rendering.
type OutputConfig struct {
	// Format selects text or JSON rendering
	Format OutputFormat

	// ShowCoordinates prints row and column numbers around the text board
	ShowCoordinates bool

	// ShowEveryStep renders the board after each accepted command,
	// not only on an explicit "show"
	ShowEveryStep bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          TextFormat,
		ShowCoordinates: true,
	}
}
