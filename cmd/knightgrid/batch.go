// batch.go - Replaying script files in separate sessions on a worker pool
package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/lgbarn/knightgrid/internal/config"
	"github.com/lgbarn/knightgrid/internal/output"
	"github.com/lgbarn/knightgrid/internal/session"
	"github.com/lgbarn/knightgrid/internal/worker"
)

// scriptOutput is the payload of one replayed script.
type scriptOutput struct {
	text  []byte         // text format: boards and move listings
	views []session.View // JSON format: snapshots still to be batched
	stats Stats
}

// viewRecorder is a BoardWriter that keeps snapshots for the consumer.
type viewRecorder struct {
	views []session.View
}

func (r *viewRecorder) WriteView(v session.View) error {
	r.views = append(r.views, v)
	return nil
}

func (r *viewRecorder) Flush() error { return nil }
func (r *viewRecorder) Close() error { return nil }

// replayScript runs one job in a fresh session. It is called from worker
// goroutines, so all of its output is captured in the result.
func replayScript(job worker.Job, cfg *config.Config, sessions *session.Manager) worker.Result {
	res := worker.Result{Index: job.Index, Name: job.Name}

	sess, err := sessions.Create()
	if err != nil {
		res.Err = err
		return res
	}
	res.SessionID = sess.ID

	var text bytes.Buffer
	rec := &viewRecorder{}
	var w output.BoardWriter = rec
	if cfg.Output.Format == config.TextFormat {
		w = output.NewTextWriter(&text, cfg.Output.ShowCoordinates)
	}

	proc := NewProcessor(cfg, sess, w, &text)
	res.Err = proc.Run(strings.NewReader(job.Script), job.Name)
	if err := proc.Close(); err != nil && res.Err == nil {
		res.Err = err
	}
	res.Payload = &scriptOutput{text: text.Bytes(), views: rec.views, stats: proc.Stats()}
	return res
}

// processSeparately reads every named script and replays each in its own
// session.
func processSeparately(cfg *config.Config, sessions *session.Manager, names []string, numWorkers int) (Stats, error) {
	jobs := make([]worker.Job, 0, len(names))
	for i, name := range names {
		data, err := os.ReadFile(name) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", name, err)
			continue
		}
		jobs = append(jobs, worker.Job{Index: i, Name: name, Script: string(data)})
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	st, runErr := replayAll(cfg, sessions, jobs, numWorkers, w)
	if err := w.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return st, runErr
}

// replayAll replays jobs on a worker pool and writes their output in job
// order. In strict mode the first failure stops jobs that have not started;
// the error of the earliest failed job is returned.
//
// Workers only fill results; cfg.OutputFile and w are touched by this
// goroutine alone.
func replayAll(cfg *config.Config, sessions *session.Manager, jobs []worker.Job, numWorkers int, w output.BoardWriter) (Stats, error) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	bufferSize := len(jobs)
	if bufferSize > 100 {
		bufferSize = 100
	}

	pool := worker.NewPool(func(job worker.Job) worker.Result {
		return replayScript(job, cfg, sessions)
	}, worker.WithWorkers(numWorkers), worker.WithBufferSize(bufferSize))
	pool.Start()
	cfg.Logf(2, "replaying %d script(s) on %d worker(s)", len(jobs), pool.NumWorkers())

	go func() {
		for _, job := range jobs {
			pool.Submit(job)
		}
		pool.Close()
	}()

	results := make([]worker.Result, 0, len(jobs))
	for res := range pool.Results() {
		if res.Err != nil && cfg.Strict {
			pool.Stop()
		}
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	var total Stats
	var firstErr error
	for _, res := range results {
		if res.Err != nil && firstErr == nil {
			firstErr = res.Err
		}
		out, ok := res.Payload.(*scriptOutput)
		if !ok {
			continue
		}
		total.add(out.stats)
		cfg.Logf(2, "%s: session %s", res.Name, res.SessionID)

		if _, err := cfg.OutputFile.Write(out.text); err != nil {
			return total, err
		}
		for _, v := range out.views {
			if err := w.WriteView(v); err != nil {
				return total, err
			}
		}
	}
	return total, firstErr
}
