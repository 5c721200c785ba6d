// internal/tui/badges.go
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderTitleBadge returns a Lipgloss-styled badge for the viewer title.
func renderTitleBadge(title string) string {
	badgeStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	return badgeStyle.Render(title)
}

// renderScrollBadge returns a Lipgloss-styled badge showing how far the reader has scrolled.
func renderScrollBadge(percent float64) string {
	badgeStyle := lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1)
	return badgeStyle.Render(fmt.Sprintf("%3.f%%", percent*100))
}
