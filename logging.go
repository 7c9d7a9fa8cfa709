package binpack

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/oklog/ulid"
)

// RunLogger provides dual-format logging for a Solve run, the same split
// the teacher's BLSLogger uses: console gets human-readable lines, file
// gets one JSON object per line for later analysis. Either writer may be
// nil to disable that channel.
type RunLogger struct {
	console   io.Writer
	file      io.Writer
	runID     ulid.ULID
	startTime time.Time
}

// NewRunLogger creates a logger and stamps it with a fresh ULID, so every
// event it emits can be correlated back to one Solve invocation even
// across concurrent parallel-driver runs sharing a log file.
func NewRunLogger(console, file io.Writer) *RunLogger {
	return &RunLogger{
		console:   console,
		file:      file,
		runID:     ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader),
		startTime: time.Now(),
	}
}

// LogEvent is a single JSONL entry. The optional numeric fields are
// pointers and the optional string fields are left empty, so omitempty
// drops whichever ones a given event type doesn't use.
type LogEvent struct {
	RunID     string    `json:"run_id"`
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	ElapsedMs int64     `json:"elapsed_ms"`

	Heuristic string `json:"heuristic,omitempty"`
	Iteration *int   `json:"iteration,omitempty"`
	Fitness   *int   `json:"fitness,omitempty"`
	BestFit   *int   `json:"best_fitness,omitempty"`
	Target    *int   `json:"target,omitempty"`

	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

func (l *RunLogger) writeJSON(event LogEvent) {
	if l.file == nil {
		return
	}
	event.RunID = l.runID.String()
	event.Timestamp = time.Now()
	event.ElapsedMs = time.Since(l.startTime).Milliseconds()

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	data = append(data, '\n')
	_, _ = l.file.Write(data)
}

// LogStart records the start of a Solve run.
func (l *RunLogger) LogStart(n int, capacity int, target int) {
	if l.console != nil {
		MustFprintf(l.console, "Starting binpack run %s\n", l.runID)
		MustFprintf(l.console, "items: %d  capacity: %d  theoretical minimum: %d\n", n, capacity, target)
	}
	l.writeJSON(LogEvent{Event: "start", Target: &target, Message: "run started"})
}

// LogHeuristicStart records a driver starting a specific heuristic.
func (l *RunLogger) LogHeuristicStart(name string) {
	if l.console != nil {
		MustFprintf(l.console, "[%s] starting\n", name)
	}
	l.writeJSON(LogEvent{Event: "heuristic_start", Heuristic: name})
}

// LogProgress records an intermediate improvement found by a heuristic.
func (l *RunLogger) LogProgress(name string, iteration, fitness, best int) {
	if l.console != nil {
		MustFprintf(l.console, "[%s] iter=%d fitness=%d best=%d\n", name, iteration, fitness, best)
	}
	l.writeJSON(LogEvent{
		Event:     "progress",
		Heuristic: name,
		Iteration: &iteration,
		Fitness:   &fitness,
		BestFit:   &best,
	})
}

// LogEnd records the final outcome of a Solve run.
func (l *RunLogger) LogEnd(best int, target int, status Status) {
	if l.console != nil {
		MustFprintf(l.console, "done: best=%d target=%d status=%s\n", best, target, status)
	}
	l.writeJSON(LogEvent{
		Event:   "end",
		BestFit: &best,
		Target:  &target,
		Status:  status.String(),
	})
}

// MustFprint writes args to w, panicking on error — the same boundary
// idiom as Must/Must0, applied to the one place writes can legitimately
// fail (a full disk, a closed pipe) without it being the caller's mistake.
func MustFprint(w io.Writer, args ...any) {
	Must(fmt.Fprint(w, args...))
}

// MustFprintln is the Fprintln counterpart of MustFprint.
func MustFprintln(w io.Writer, args ...any) {
	Must(fmt.Fprintln(w, args...))
}

// MustFprintf is the Fprintf counterpart of MustFprint.
func MustFprintf(w io.Writer, format string, args ...any) {
	Must(fmt.Fprintf(w, format, args...))
}
