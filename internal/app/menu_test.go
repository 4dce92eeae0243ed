package app

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lakshaymaurya-felt/macmole/internal/ui"
)

func TestRunMenuDispatch(t *testing.T) {
	trash := &fakeTrash{ok: true}
	s, out, home := newTestSession(t, trash)
	writeAged(t, filepath.Join(home, "Library", "Caches", "old"), 700, 31*day)

	var prompts strings.Builder
	p := ui.NewLinePrompter(strings.NewReader("1\n9\n3\n6\n"), &prompts)

	if err := s.RunMenu(p, "test host"); err != nil {
		t.Fatal(err)
	}

	text := out.String()
	if !strings.Contains(text, "Invalid option. Try again.") {
		t.Errorf("invalid choice not reported:\n%s", text)
	}
	if trash.calls != 1 {
		t.Errorf("trash calls = %d, want 1", trash.calls)
	}
	if s.TotalFreed() != 700 {
		t.Errorf("total = %d, want 700", s.TotalFreed())
	}
	if !strings.Contains(text, "Bye!") {
		t.Errorf("missing goodbye:\n%s", text)
	}
	if got := strings.Count(prompts.String(), choicePrompt); got != 4 {
		t.Errorf("prompted %d times, want 4", got)
	}
	if got := strings.Count(text, "6) Exit"); got != 4 {
		t.Errorf("menu shown %d times, want 4", got)
	}
}

func TestRunMenuEOFExits(t *testing.T) {
	s, out, _ := newTestSession(t, &fakeTrash{ok: true})
	p := ui.NewLinePrompter(strings.NewReader(""), io.Discard)

	if err := s.RunMenu(p, ""); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Bye!") {
		t.Errorf("missing goodbye:\n%s", out.String())
	}
}

type brokenPrompter struct{}

func (brokenPrompter) ReadLine(string) (string, error) {
	return "", errors.New("terminal gone")
}

func TestRunMenuPropagatesPromptErrors(t *testing.T) {
	s, _, _ := newTestSession(t, &fakeTrash{ok: true})

	if err := s.RunMenu(brokenPrompter{}, ""); err == nil {
		t.Fatal("expected error")
	}
}

func TestRenderMenuNumbersItems(t *testing.T) {
	out := renderMenu()
	for i, item := range menuItems {
		want := fmt.Sprintf("%d) %s", i+1, item)
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q:\n%s", want, out)
		}
	}
}
