package story

import (
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	t.Run("single record", func(t *testing.T) {
		body := `[{"title":"A","subtitle":"B","base_url":"https://www.nba.com","url":"https://www.nba.com/a","author":"x","date":"y","source":"z"}]`

		stories, err := Decode(strings.NewReader(body))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stories) != 1 {
			t.Fatalf("expected 1 story, got %d", len(stories))
		}

		expected := Story{
			Title:    "A",
			Subtitle: "B",
			Author:   "x",
			Date:     "y",
			BaseURL:  "https://www.nba.com",
			URL:      "https://www.nba.com/a",
			Source:   "z",
		}
		if stories[0] != expected {
			t.Errorf("expected %+v, got %+v", expected, stories[0])
		}
	})

	t.Run("empty array", func(t *testing.T) {
		stories, err := Decode(strings.NewReader(`[]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stories == nil || len(stories) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", stories)
		}
	})

	t.Run("keeps response order", func(t *testing.T) {
		stories, err := Decode(strings.NewReader(`[{"title":"first"},{"title":"second"}]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stories) != 2 || stories[0].Title != "first" || stories[1].Title != "second" {
			t.Errorf("unexpected order: %+v", stories)
		}
	})

	t.Run("trailing whitespace is accepted", func(t *testing.T) {
		stories, err := Decode(strings.NewReader("[{\"title\":\"A\"}]\n  "))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stories) != 1 {
			t.Errorf("expected 1 story, got %d", len(stories))
		}
	})

	t.Run("missing fields stay empty", func(t *testing.T) {
		stories, err := Decode(strings.NewReader(`[{"title":"only a title"}]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stories[0].BaseURL != "" || stories[0].Subtitle != "" {
			t.Errorf("expected empty fields, got %+v", stories[0])
		}
	})

	errorCases := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>oops</html>"},
		{name: "object instead of array", body: `{"title":"A"}`},
		{name: "null", body: "null"},
		{name: "empty body", body: ""},
		{name: "trailing markup", body: "[] <html>"},
		{name: "trailing object", body: `[{"title":"A"}]{"x":1}`},
		{name: "two arrays", body: "[][]"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tc.body)); err == nil {
				t.Errorf("expected error for body %q", tc.body)
			}
		})
	}
}
