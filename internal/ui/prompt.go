package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Prompter reads one line of operator input. It returns io.EOF when the
// operator closes the input or aborts the prompt.
type Prompter interface {
	ReadLine(prompt string) (string, error)
}

// NewPrompter picks an interactive text input when in is a terminal and a
// plain line reader otherwise.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return &TeaPrompter{in: in, out: out}
	}
	return NewLinePrompter(in, out)
}

// ─── Line prompter ───────────────────────────────────────────────────────────

// LinePrompter reads newline-terminated input from any reader.
type LinePrompter struct {
	r   *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ─── Terminal prompter ───────────────────────────────────────────────────────

// TeaPrompter runs a one-line bubbletea text input per prompt.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

func (p *TeaPrompter) ReadLine(prompt string) (string, error) {
	m := newPromptModel(prompt)

	final, err := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	pm, ok := final.(promptModel)
	if !ok || pm.aborted {
		return "", io.EOF
	}
	return strings.TrimSpace(pm.input.Value()), nil
}

type promptModel struct {
	input     textinput.Model
	submitted bool
	aborted   bool
}

func newPromptModel(prompt string) promptModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "1-6"
	ti.CharLimit = 8
	ti.Focus()
	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.submitted || m.aborted {
		// Leave the answer on screen once the program exits.
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}
