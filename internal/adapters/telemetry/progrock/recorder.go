// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/taskrun/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	tape *progrock.Tape
	rec  *progrock.Recorder
}

// New creates a new Recorder with a fresh tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder writing to the given tape.
func NewRecorder(tape *progrock.Tape) *Recorder {
	return &Recorder{
		tape: tape,
		rec:  progrock.NewRecorder(tape),
	}
}

// Record starts recording a new vertex named after the task.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Summarize writes one line per completed vertex, in start order, with its
// wall time and whether it failed. Nothing is written when no vertex completed.
func (r *Recorder) Summarize(w io.Writer) error {
	var done []*progrock.Vertex
	for _, v := range r.tape.Vertices() {
		if v.GetCompleted() != nil {
			done = append(done, v)
		}
	}
	if len(done) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "\nExecution time:")
	for _, v := range done {
		elapsed := v.GetCompleted().AsTime().Sub(v.GetStarted().AsTime()).Round(time.Millisecond)
		outcome := "ok"
		if v.Error != nil {
			outcome = "failed"
		}
		_, _ = fmt.Fprintf(tw, "  %s\t%s\t%s\n", v.GetName(), elapsed, outcome)
	}
	return tw.Flush()
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.tape.Close()
}
