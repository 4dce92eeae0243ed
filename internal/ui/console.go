package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Console renders observer events and reports to a terminal or plain
// writer, mirroring warnings and errors into the logger.
type Console struct {
	out io.Writer
	log logrus.FieldLogger
	tty bool
	bar progress.Model

	// progressActive is set while an in-place progress line is on screen.
	progressActive bool
}

// NewConsole creates a Console writing to out. In-place progress bars are
// only drawn when out is a terminal.
func NewConsole(out io.Writer, log logrus.FieldLogger) *Console {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Console{
		out: out,
		log: log,
		tty: isTerminal(out),
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(30),
			progress.WithoutPercentage(),
		),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ─── core.Observer ───────────────────────────────────────────────────────────

func (c *Console) Notice(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.log.Debug(msg)
	c.line(MutedStyle().Render("  " + msg))
}

func (c *Console) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.log.Warn(msg)
	c.line(WarningStyle().Render("  " + IconWarning + " " + msg))
}

func (c *Console) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.log.Error(msg)
	c.line(ErrorStyle().Render("  " + IconError + " " + msg))
}

func (c *Console) Progress(label string, done, total int) {
	if !c.tty || total <= 0 {
		return
	}

	pct := float64(done) / float64(total)
	fmt.Fprintf(c.out, "\r\033[2K  Cleaning %s... %s %d/%d", label, c.bar.ViewAs(pct), done, total)
	c.progressActive = true

	if done >= total {
		c.clearProgress()
	}
}

// ─── Report output ───────────────────────────────────────────────────────────

// Title prints a blank line and a bold section title.
func (c *Console) Title(icon, text string) {
	c.line("")
	c.line(TitleStyle().Render(strings.TrimSpace(icon + " " + text)))
}

// Success prints a green check line.
func (c *Console) Success(format string, args ...any) {
	c.line(SuccessStyle().Render(IconCheck+" ") + fmt.Sprintf(format, args...))
}

// Print writes a pre-rendered block followed by a newline.
func (c *Console) Print(block string) {
	c.line(block)
}

func (c *Console) line(s string) {
	c.clearProgress()
	fmt.Fprintln(c.out, s)
}

func (c *Console) clearProgress() {
	if c.progressActive {
		fmt.Fprint(c.out, "\r\033[2K\r")
		c.progressActive = false
	}
}
