package grid

// Neighbors returns the in-bounds Moore neighbourhood of index in ascending
// order: 3 cells for a corner, 5 on an edge, 8 in the interior.
func Neighbors(index Index, n Size) []Index {
	origin := IndexToPosition(index, n)
	result := make([]Index, 0, 8)

	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			candidate := origin.Add(dRow, dCol)
			if !n.Contains(candidate) {
				continue
			}
			result = append(result, PositionToIndex(candidate, n))
		}
	}
	return result
}

// Adjacent reports whether a and b are distinct cells touching orthogonally
// or diagonally.
func Adjacent(a, b Index, n Size) bool {
	if a == b {
		return false
	}
	pa := IndexToPosition(a, n)
	pb := IndexToPosition(b, n)
	return abs(pa.Row-pb.Row) <= 1 && abs(pa.Column-pb.Column) <= 1
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
