package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Lines taken by the heading, its margin and the help bar around the page content.
const chromeHeight = 4

func pageLayout(pageTitle string, content string, help string) string {
	heading := lipgloss.NewStyle().
		Foreground(darkBlue()).
		Bold(true).
		MarginBottom(1).
		Render(pageTitle)

	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, heading, content, help))
}
