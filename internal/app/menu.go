package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lakshaymaurya-felt/macmole/internal/ui"
)


var menuItems = []string{
	"Clean caches (age-based)",
	"Clean logs (age-based)",
	"Empty Trash (via Finder)",
	"Big File Radar (Downloads / Desktop / Movies)",
	"FULL CLEAN + dashboard",
	"Exit",
}

const (
	menuHeader   = "Choose an option:"
	choicePrompt = "Your choice: "
	goodbye      = "Bye! Your Mac feels lighter already."
)

// RunMenu shows the numbered menu and runs the chosen action until the
// operator picks Exit or closes the input.
func (s *Session) RunMenu(p ui.Prompter, subtitle string) error {
	for {
		s.printMenu(subtitle)

		choice, err := p.ReadLine(choicePrompt)
		if errors.Is(err, io.EOF) {
			s.sayGoodbye()
			return nil
		}
		if err != nil {
			return err
		}

		if quit := s.dispatch(choice); quit {
			s.sayGoodbye()
			return nil
		}
	}
}

// dispatch runs one menu choice and reports whether the loop should end.
func (s *Session) dispatch(choice string) bool {
	switch strings.TrimSpace(choice) {
	case "1":
		s.CleanCaches()
	case "2":
		s.CleanLogs()
	case "3":
		s.EmptyTrash()
	case "4":
		s.Radar(nil)
	case "5":
		s.FullClean()
	case "6":
		return true
	default:
		s.Out.Error("Invalid option. Try again.")
	}
	return false
}

func (s *Session) printMenu(subtitle string) {
	s.Out.Title(ui.IconApple, "Mac Cleaner")
	if subtitle != "" {
		s.Out.Print(ui.MutedStyle().Render(subtitle))
	}
	s.Out.Print("")
	s.Out.Print(renderMenu())
}

func renderMenu() string {
	lines := []string{menuHeader}
	for i, item := range menuItems {
		lines = append(lines, fmt.Sprintf("  %s %s", ui.AccentStyle().Render(fmt.Sprintf("%d)", i+1)), item))
	}
	return strings.Join(lines, "\n")
}

func (s *Session) sayGoodbye() {
	s.Out.Print("")
	s.Out.Print(ui.MutedStyle().Render(goodbye + " " + ui.IconSparkle))
}
