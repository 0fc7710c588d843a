package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// renderer applies per-status styling to output lines. With color mode
// "never" every style collapses to plain text.
type renderer struct {
	color bool
}

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	incompleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	startedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	completeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func newRenderer(colorMode string) *renderer {
	return &renderer{color: colorMode != "never"}
}

func (r *renderer) styleFor(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusStarted:
		return startedStyle
	case domain.StatusComplete:
		return completeStyle
	default:
		return incompleteStyle
	}
}

// projectHeader renders the project title line.
func (r *renderer) projectHeader(name string) string {
	line := fmt.Sprintf("Project: %s", name)
	if !r.color {
		return line
	}
	return headerStyle.Render(line)
}

// taskLine renders one tab-separated task row: symbol, id, title.
func (r *renderer) taskLine(t *domain.Task) string {
	line := fmt.Sprintf("[%s]\t#%d\t%s", t.Status.Symbol(), t.ID, t.Title)
	if !r.color {
		return line
	}
	return r.styleFor(t.Status).Render(line)
}

// status renders a status label.
func (r *renderer) status(s domain.Status) string {
	if !r.color {
		return s.Display()
	}
	return r.styleFor(s).Render(s.Display())
}
