package components

import (
	"fmt"

	"github.com/iamagencia/crmdash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with record counts.
func RenderStatusBar(width, clients, quotes, projects int, notice string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	if notice != "" {
		left += "  " + lipgloss.NewStyle().Foreground(t.Green).Render(notice)
	}
	right := fmt.Sprintf("%d clients · %d quotes · %d projects ", clients, quotes, projects)

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
