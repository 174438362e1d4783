package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nbanews/internal/story"
)

// articleCard is the rendered form of one story: a title linking to the
// article, the source site next to it, and the subtitle underneath.
type articleCard struct {
	title       string
	url         string
	sourceLabel string
	sourceURL   string
	subtitle    string
}

func newArticleCard(s story.Story) articleCard {
	return articleCard{
		title:       s.Title,
		url:         s.URL,
		sourceLabel: SourceLabel(s.BaseURL),
		sourceURL:   s.BaseURL,
		subtitle:    s.Subtitle,
	}
}

// SourceLabel is the display name of a source site: baseURL with the first
// "https://" removed and then the first "www." removed.
func SourceLabel(baseURL string) string {
	label := strings.Replace(baseURL, "https://", "", 1)
	return strings.Replace(label, "www.", "", 1)
}

func (c articleCard) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true)

	sourceStyle := lipgloss.NewStyle().
		Foreground(lightBlue()).
		Underline(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(grey())

	headline := hyperlink(c.url, titleStyle.Render(c.title)) +
		" (" + hyperlink(c.sourceURL, sourceStyle.Render(c.sourceLabel)) + ")"

	return lipgloss.JoinVertical(lipgloss.Left,
		headline,
		subtitleStyle.Render(c.subtitle))
}
