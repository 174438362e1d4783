package tui

import (
	"strings"
	"testing"

	"nbanews/internal/story"
)

func TestSourceLabel(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		expected string
	}{
		{name: "scheme and www", baseURL: "https://www.example.com", expected: "example.com"},
		{name: "nba", baseURL: "https://www.nba.com", expected: "nba.com"},
		{name: "no www", baseURL: "https://espn.com", expected: "espn.com"},
		{name: "http scheme is kept", baseURL: "http://www.example.com", expected: "http://example.com"},
		{name: "www anywhere, first only", baseURL: "example.com/www.www.", expected: "example.com/www."},
		{name: "scheme removed once", baseURL: "https://https://x.com", expected: "https://x.com"},
		{name: "scheme is stripped before www", baseURL: "https:/www./", expected: "https://"},
		{name: "empty", baseURL: "", expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SourceLabel(tc.baseURL); got != tc.expected {
				t.Errorf("SourceLabel(%q) = %q, expected %q", tc.baseURL, got, tc.expected)
			}
		})
	}
}

func TestArticleCard(t *testing.T) {
	s := story.Story{
		Title:    "A",
		Subtitle: "B",
		Author:   "Jane Doe",
		Date:     "2024-01-01",
		BaseURL:  "https://www.nba.com",
		URL:      "https://www.nba.com/a",
		Source:   "nba-feed",
	}

	t.Run("fields", func(t *testing.T) {
		card := newArticleCard(s)
		expected := articleCard{
			title:       "A",
			url:         "https://www.nba.com/a",
			sourceLabel: "nba.com",
			sourceURL:   "https://www.nba.com",
			subtitle:    "B",
		}
		if card != expected {
			t.Errorf("expected %+v, got %+v", expected, card)
		}
	})

	t.Run("view links title and source", func(t *testing.T) {
		view := newArticleCard(s).View()

		if !strings.Contains(view, "\x1b]8;;https://www.nba.com/a\x1b\\") {
			t.Error("expected the title to link to the article url")
		}
		if !strings.Contains(view, "\x1b]8;;https://www.nba.com\x1b\\") {
			t.Error("expected the source label to link to the base url")
		}
		if !strings.Contains(view, "nba.com") || !strings.Contains(view, "B") {
			t.Errorf("expected label and subtitle in view, got %q", view)
		}
		for _, hidden := range []string{"Jane Doe", "2024-01-01", "nba-feed"} {
			if strings.Contains(view, hidden) {
				t.Errorf("expected %q not to be rendered", hidden)
			}
		}
	})

	t.Run("rendering is idempotent", func(t *testing.T) {
		first := newArticleCard(s)
		second := newArticleCard(s)
		if first != second {
			t.Errorf("expected identical cards, got %+v and %+v", first, second)
		}
		if first.View() != second.View() {
			t.Error("expected identical views")
		}
	})

	t.Run("empty story renders empty labels", func(t *testing.T) {
		card := newArticleCard(story.Story{})
		if card.sourceLabel != "" || card.title != "" || card.subtitle != "" {
			t.Errorf("expected empty card, got %+v", card)
		}
		if view := card.View(); !strings.Contains(view, "()") {
			t.Errorf("expected empty source label in view, got %q", view)
		}
	})
}

func TestHyperlink(t *testing.T) {
	if got := hyperlink("", "label"); got != "label" {
		t.Errorf("expected bare label without url, got %q", got)
	}
	expected := "\x1b]8;;https://x.com\x1b\\x\x1b]8;;\x1b\\"
	if got := hyperlink("https://x.com", "x"); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
