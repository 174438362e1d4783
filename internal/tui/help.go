package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func helpBar(items []string) string {
	return lipgloss.NewStyle().
		Foreground(grey()).
		Render(strings.Join(items, " • "))
}
