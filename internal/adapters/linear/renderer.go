// Package linear provides a synchronous, line-oriented stage renderer.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/ui/output"
	"go.trai.ch/kiln/internal/ui/style"
)

// Renderer implements ports.Renderer. It prints one line when a stage starts
// and one when it finishes, prefixed with the stage name.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu     sync.Mutex
	stages map[string]*stageState // spanID -> stage state
	width  int
}

type stageState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a Renderer writing to w with the given color profile selector.
func NewRenderer(w io.Writer, profile output.ProfileFunc) *Renderer {
	if w == nil {
		w = os.Stderr
	}

	return &Renderer{
		w:      w,
		output: output.NewWithProfile(w, profile),
		stages: make(map[string]*stageState),
		width:  prefixWidth(),
	}
}

// prefixWidth is the width of the longest "[stage]" prefix, so that columns line up.
func prefixWidth() int {
	width := 0
	for _, s := range domain.Stages() {
		width = max(width, len(s)+2)
	}
	return width
}

// OnStageStart prints a stage start message.
func (r *Renderer) OnStageStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stages[spanID] = &stageState{name: name, startTime: startTime}

	_, _ = fmt.Fprintf(r.w, "%s Starting...\n", r.prefix(name))
}

// OnStageComplete prints the completion status and duration of a stage.
func (r *Renderer) OnStageComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stage, ok := r.stages[spanID]
	if !ok {
		return
	}
	delete(r.stages, spanID)

	duration := endTime.Sub(stage.startTime).Round(time.Millisecond)
	prefix := r.prefix(stage.name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.w, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}

	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.w, "%s %s Completed in %v\n", prefix, symbol, duration)
}

func (r *Renderer) prefix(name string) string {
	padded := style.PadRight(fmt.Sprintf("[%s]", name), r.width)
	return r.output.String(padded).Faint().String()
}
