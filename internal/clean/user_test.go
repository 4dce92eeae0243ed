package clean

import (
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/lakshaymaurya-felt/macmole/internal/core"
)

func requireCommand(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func TestFinderTrashDefaults(t *testing.T) {
	ft := NewFinderTrash(nil)
	if ft.Command != "osascript" {
		t.Errorf("Command = %q", ft.Command)
	}
	if len(ft.Args) != 2 || !strings.Contains(ft.Args[1], "empty trash") {
		t.Errorf("Args = %v", ft.Args)
	}
}

func TestEmptyTrashSuccess(t *testing.T) {
	requireCommand(t, "true")
	rec := &core.Recorder{}
	ft := &FinderTrash{Command: "true", Observer: rec}

	if !ft.EmptyTrash() {
		t.Fatal("EmptyTrash() = false, want true")
	}
	if len(rec.Events) != 0 {
		t.Errorf("unexpected events: %+v", rec.Events)
	}
}

func TestEmptyTrashRefused(t *testing.T) {
	requireCommand(t, "sh")
	rec := &core.Recorder{}
	ft := &FinderTrash{
		Command:  "sh",
		Args:     []string{"-c", "echo 'Finder got an error' >&2; exit 1"},
		Observer: rec,
	}

	if ft.EmptyTrash() {
		t.Fatal("EmptyTrash() = true, want false")
	}
	warns := rec.Messages("warn")
	if len(warns) != 1 || !strings.Contains(warns[0], "Finder got an error") {
		t.Errorf("warnings = %v", warns)
	}
}

func TestEmptyTrashCommandMissing(t *testing.T) {
	rec := &core.Recorder{}
	ft := &FinderTrash{Command: "macmole-no-such-command", Observer: rec}

	if ft.EmptyTrash() {
		t.Fatal("EmptyTrash() = true, want false")
	}
	if rec.Count("error") != 1 {
		t.Errorf("errors = %v", rec.Messages("error"))
	}
}

func TestEmptyTrashTimeout(t *testing.T) {
	requireCommand(t, "sleep")
	rec := &core.Recorder{}
	ft := &FinderTrash{
		Command:  "sleep",
		Args:     []string{"5"},
		Timeout:  50 * time.Millisecond,
		Observer: rec,
	}

	if ft.EmptyTrash() {
		t.Fatal("EmptyTrash() = true, want false")
	}
	errs := rec.Messages("error")
	if len(errs) != 1 || !strings.Contains(errs[0], "no answer") {
		t.Errorf("errors = %v", errs)
	}
}
