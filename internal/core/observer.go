package core

// Observer receives progress, notices, warnings and errors from the
// traversal and cleaning operations. Implementations render them (console)
// or record them (tests); operations never print directly.
type Observer interface {
	// Notice reports an informational line such as a skipped missing path.
	Notice(format string, args ...any)
	// Warn reports a non-fatal skip, typically a permission denial.
	Warn(format string, args ...any)
	// Error reports an unexpected failure that did not abort the walk.
	Error(format string, args ...any)
	// Progress reports that done of total top-level entries are processed.
	Progress(label string, done, total int)
}

// NopObserver discards everything.
type NopObserver struct{}

func (NopObserver) Notice(string, ...any)     {}
func (NopObserver) Warn(string, ...any)       {}
func (NopObserver) Error(string, ...any)      {}
func (NopObserver) Progress(string, int, int) {}

// OrNop returns obs, or a NopObserver when obs is nil.
func OrNop(obs Observer) Observer {
	if obs == nil {
		return NopObserver{}
	}
	return obs
}
