package story

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Story is one article's metadata as served by the top stories endpoint.
type Story struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	BaseURL  string `json:"base_url"`
	URL      string `json:"url"`
	Source   string `json:"source"`
}

// Decode reads a JSON array of stories from r. Missing fields are left empty;
// a body that is not exactly one JSON array is an error.
func Decode(r io.Reader) ([]Story, error) {
	dec := json.NewDecoder(r)

	var stories []Story
	if err := dec.Decode(&stories); err != nil {
		return nil, fmt.Errorf("failed to decode stories: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode stories: unexpected data after array")
	}
	if stories == nil {
		// JSON null
		return nil, fmt.Errorf("failed to decode stories: expected array, got null")
	}
	return stories, nil
}
