package core

import "fmt"

// Event is one notification captured by a Recorder.
type Event struct {
	Kind    string // "notice", "warn", "error" or "progress"
	Message string
}

// Recorder is an Observer that keeps every notification in order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Notice(format string, args ...any) {
	r.Events = append(r.Events, Event{"notice", fmt.Sprintf(format, args...)})
}

func (r *Recorder) Warn(format string, args ...any) {
	r.Events = append(r.Events, Event{"warn", fmt.Sprintf(format, args...)})
}

func (r *Recorder) Error(format string, args ...any) {
	r.Events = append(r.Events, Event{"error", fmt.Sprintf(format, args...)})
}

func (r *Recorder) Progress(label string, done, total int) {
	r.Events = append(r.Events, Event{"progress", fmt.Sprintf("%s %d/%d", label, done, total)})
}

// Count returns how many events of kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Messages returns the messages of kind in order.
func (r *Recorder) Messages(kind string) []string {
	var out []string
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e.Message)
		}
	}
	return out
}
