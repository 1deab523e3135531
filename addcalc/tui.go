package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const tuiHistory = 10

var (
	tuiTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	tuiInputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	tuiResultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	tuiErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	tuiHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runTUI(ctx context.Context, stdin io.Reader, stdout io.Writer, p *printer) error {
	prog := tea.NewProgram(
		newTUIModel(p),
		tea.WithContext(ctx),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
	)

	_, err := prog.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

type tuiEntry struct {
	input  string
	output string
	failed bool
}

type tuiModel struct {
	textInput textinput.Model
	history   []tuiEntry
	print     *printer
}

func newTUIModel(p *printer) tuiModel {
	ti := textinput.New()
	ti.Placeholder = "2+3+4 or 2 3 4"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	return tuiModel{textInput: ti, print: p}
}

func (m tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			value := strings.TrimSpace(m.textInput.Value())
			if isQuit(value) {
				return m, tea.Quit
			}

			m.history = append(m.history, m.evaluate(value))
			if len(m.history) > tuiHistory {
				m.history = m.history[len(m.history)-tuiHistory:]
			}
			m.textInput.Reset()
			return m, nil

		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m tuiModel) evaluate(value string) tuiEntry {
	ev, err := evaluate(value)
	switch {
	case errors.Is(err, errNoNumbers):
		return tuiEntry{input: value, output: "No numbers provided", failed: true}
	case err != nil:
		return tuiEntry{input: value, output: err.Error(), failed: true}
	}

	return tuiEntry{input: value, output: m.print.format(ev.result)}
}

func (m tuiModel) View() string {
	var sb strings.Builder

	sb.WriteString(tuiTitleStyle.Render("Addition Calculator"))
	sb.WriteString("\n\n")

	for _, e := range m.history {
		sb.WriteString(tuiInputStyle.Render(e.input))
		sb.WriteString("\n")
		if e.failed {
			sb.WriteString(tuiErrorStyle.Render("  error: " + e.output))
		} else {
			sb.WriteString(tuiResultStyle.Render("  = " + e.output))
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\n%s\n\n%s\n", m.textInput.View(), tuiHelpStyle.Render("(esc or quit to exit)"))

	return sb.String()
}
