package progrock

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
	"go.trai.ch/pharbuild/internal/ui/output"
)

// Renderer is a progrock.Writer that prints status updates as linear,
// stage-prefixed lines. It suits non-interactive terminals and CI logs.
type Renderer struct {
	w      io.Writer
	output *termenv.Output

	mu       sync.Mutex
	vertexes map[string]*vertexState
}

type vertexState struct {
	name    string
	started time.Time
	done    bool
	buf     bytes.Buffer
}

// NewRenderer creates a Renderer writing to w. A nil w writes to stderr.
func NewRenderer(w io.Writer) *Renderer {
	out := output.New(w)
	return &Renderer{
		w:        out,
		output:   out,
		vertexes: make(map[string]*vertexState),
	}
}

// WriteStatus renders one status update.
func (r *Renderer) WriteStatus(update *progrock.StatusUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range update.Vertexes {
		r.vertexLocked(v)
	}

	for _, l := range update.Logs {
		r.logLocked(l.Vertex, l.Data)
	}

	// Completion is printed after the logs of the same update so a stage's
	// final output lines precede its status line.
	for _, v := range update.Vertexes {
		if v.Completed != nil {
			r.completeLocked(v)
		}
	}

	return nil
}

// Close flushes partial lines of vertexes that never completed.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, state := range r.vertexes {
		r.flushLocked(state)
	}

	return nil
}

// vertexLocked registers a vertex the first time it is seen.
// Must be called with r.mu held.
func (r *Renderer) vertexLocked(v *progrock.Vertex) {
	if _, ok := r.vertexes[v.Id]; ok {
		return
	}

	state := &vertexState{name: v.Name, started: time.Now()}
	if v.Started != nil {
		state.started = v.Started.AsTime()
	}
	r.vertexes[v.Id] = state

	_, _ = fmt.Fprintf(r.w, "%s Starting...\n", r.prefix(state.name))
}

// logLocked buffers data and prints complete lines.
// Must be called with r.mu held.
func (r *Renderer) logLocked(id string, data []byte) {
	state, ok := r.vertexes[id]
	if !ok {
		return
	}

	state.buf.Write(data)
	for {
		line, err := state.buf.ReadBytes('\n')
		if err != nil {
			// Partial line, keep it for the next write.
			rest := append([]byte(nil), line...)
			state.buf.Reset()
			state.buf.Write(rest)
			return
		}
		r.printLocked(state.name, line)
	}
}

// completeLocked prints the completion status once per vertex.
// Must be called with r.mu held.
func (r *Renderer) completeLocked(v *progrock.Vertex) {
	state, ok := r.vertexes[v.Id]
	if !ok || state.done {
		return
	}
	state.done = true

	r.flushLocked(state)

	duration := v.Completed.AsTime().Sub(state.started).Round(time.Millisecond)
	if duration < 0 {
		duration = 0
	}

	if v.Error != nil {
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.w, "[%s] %s Failed after %v: %s\n", state.name, symbol, duration, *v.Error)
		return
	}

	symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.w, "[%s] %s Completed in %v\n", state.name, symbol, duration)
}

// flushLocked prints the remaining partial line of a vertex.
// Must be called with r.mu held.
func (r *Renderer) flushLocked(state *vertexState) {
	if state.buf.Len() == 0 {
		return
	}
	r.printLocked(state.name, state.buf.Bytes())
	state.buf.Reset()
}

// printLocked prints a single line with the stage prefix.
// Must be called with r.mu held.
func (r *Renderer) printLocked(name string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.w, "%s %s\n", r.prefix(name), line)
}

func (r *Renderer) prefix(name string) string {
	return r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
}
