package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// errPromptCanceled is returned when the user aborts the title prompt.
var errPromptCanceled = errors.New("canceled")

// titlePrompt is a minimal one-line text input used by `task add` when no
// --title flag is given.
type titlePrompt struct {
	input    textinput.Model
	canceled bool
	done     bool
}

func newTitlePrompt() titlePrompt {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.Prompt = "Title: "
	ti.CharLimit = 200
	ti.Focus()
	return titlePrompt{input: ti}
}

func (m titlePrompt) Init() tea.Cmd {
	return textinput.Blink
}

func (m titlePrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m titlePrompt) View() string {
	if m.done || m.canceled {
		return ""
	}
	return m.input.View() + "\n"
}

// promptTitle asks the user for a task title interactively.
func promptTitle() (string, error) {
	final, err := tea.NewProgram(newTitlePrompt()).Run()
	if err != nil {
		return "", fmt.Errorf("title prompt: %w", err)
	}
	m, ok := final.(titlePrompt)
	if !ok || m.canceled {
		return "", errPromptCanceled
	}
	return m.input.Value(), nil
}
