package main

import (
	"fmt"
	"io"

	"github.com/spboyer/meetprep/internal/pipeline"
	"github.com/spboyer/meetprep/internal/spinner"
)

// stageReporter renders pipeline progress: an animated spinner while a stage
// runs, one status line once it settles.
type stageReporter struct {
	w    io.Writer
	stop func()
}

func newStageReporter(w io.Writer) *stageReporter {
	return &stageReporter{w: w}
}

func (r *stageReporter) clear() {
	if r.stop != nil {
		r.stop()
		r.stop = nil
	}
}

// Listen is a pipeline.ProgressListener.
func (r *stageReporter) Listen(event pipeline.ProgressEvent) {
	switch event.Type {
	case pipeline.EventStageStarted:
		r.stop = spinner.Start(r.w, fmt.Sprintf("[%d/%d] %s (%s)",
			event.Index+1, event.Total, event.Label, event.RoleName))
	case pipeline.EventStageCompleted:
		r.clear()
		fmt.Fprintf(r.w, "✓ [%d/%d] %s\n", event.Index+1, event.Total, event.Label)
	case pipeline.EventStageFailed:
		r.clear()
		fmt.Fprintf(r.w, "✗ [%d/%d] %s\n", event.Index+1, event.Total, event.Label)
	}
}
