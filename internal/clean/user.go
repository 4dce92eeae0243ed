package clean

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/lakshaymaurya-felt/macmole/internal/core"
)

// ─── Trash ───────────────────────────────────────────────────────────────────

// TrashEmptier asks the desktop environment to empty its trash. It reports
// only whether the request could be delivered, never whether the trash is
// actually empty afterwards.
type TrashEmptier interface {
	EmptyTrash() bool
}

// defaultTrashTimeout bounds how long Finder may take to answer.
const defaultTrashTimeout = 60 * time.Second

// FinderTrash sends the empty-trash request to Finder through osascript.
type FinderTrash struct {
	// Command and Args form the request; NewFinderTrash fills in osascript.
	Command string
	Args    []string

	// Timeout bounds the request. Zero means defaultTrashTimeout.
	Timeout time.Duration

	// Observer receives the reason when the request fails.
	Observer core.Observer
}

// NewFinderTrash returns a requester that runs
// osascript -e 'tell application "Finder" to empty trash'.
func NewFinderTrash(obs core.Observer) *FinderTrash {
	return &FinderTrash{
		Command:  "osascript",
		Args:     []string{"-e", `tell application "Finder" to empty trash`},
		Timeout:  defaultTrashTimeout,
		Observer: obs,
	}
}

// EmptyTrash implements TrashEmptier. Every failure is reported to the
// observer and turned into false; it never panics or returns an error.
func (f *FinderTrash) EmptyTrash() bool {
	obs := core.OrNop(f.Observer)

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = defaultTrashTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, f.Command, f.Args...).CombinedOutput()
	if err == nil {
		return true
	}

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		obs.Error("Could not ask Finder to empty Trash: no answer after %s", timeout)
	case errors.As(err, &exitErr):
		obs.Warn("Finder refused to empty Trash: %s", refusalReason(out, exitErr))
	default:
		obs.Error("Could not ask Finder to empty Trash: %v", err)
	}

	return false
}

// refusalReason prefers the command's own message over the exit status.
func refusalReason(out []byte, exitErr *exec.ExitError) string {
	if msg := strings.TrimSpace(string(out)); msg != "" {
		return msg
	}
	return fmt.Sprintf("exit status %d", exitErr.ExitCode())
}
