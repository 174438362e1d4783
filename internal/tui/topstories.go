package tui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nbanews/internal/httpclient"
	"nbanews/internal/story"
)

// TopStoriesEndpoint is where the front-end reads its stories from.
const TopStoriesEndpoint = "http://localhost:8080/top"

const loadingPlaceholder = "Fetching stories..."

// StoryFetcher loads the current top stories.
type StoryFetcher interface {
	FetchTop(ctx context.Context) ([]story.Story, error)
}

type httpStoryFetcher struct {
	client   *httpclient.Client
	endpoint string
}

// NewHTTPFetcher returns a StoryFetcher that GETs endpoint and decodes the
// body as a JSON array of stories. Requests carry no deadline of their own.
func NewHTTPFetcher(endpoint string) StoryFetcher {
	return httpStoryFetcher{
		client:   httpclient.New(0),
		endpoint: endpoint,
	}
}

func (f httpStoryFetcher) FetchTop(ctx context.Context) ([]story.Story, error) {
	resp, err := f.client.Get(ctx, f.endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return story.Decode(resp.Body)
}

type storiesLoadedMsg struct {
	mountID uint64
	stories []story.Story
}

type storiesFailedMsg struct {
	mountID uint64
	err     error
}

var mounts atomic.Uint64

type topStoriesPage struct {
	ctx     context.Context
	mountID uint64
	fetcher StoryFetcher
	logger  *log.Logger

	stories []story.Story
	loading bool

	viewport viewport.Model
	ready    bool
}

// TopStoriesPage creates the story list in its loading state. Results
// delivered for any other instance are ignored.
func TopStoriesPage(ctx context.Context, fetcher StoryFetcher, logger *log.Logger) topStoriesPage {
	return topStoriesPage{
		ctx:     ctx,
		mountID: mounts.Add(1),
		fetcher: fetcher,
		logger:  logger,
		stories: []story.Story{},
		loading: true,
	}
}

func (m topStoriesPage) Init() tea.Cmd {
	return m.fetchStories()
}

func (m topStoriesPage) fetchStories() tea.Cmd {
	ctx, fetcher, mountID := m.ctx, m.fetcher, m.mountID
	return func() tea.Msg {
		stories, err := fetcher.FetchTop(ctx)
		if err != nil {
			return storiesFailedMsg{mountID: mountID, err: err}
		}
		return storiesLoadedMsg{mountID: mountID, stories: stories}
	}
}

func (m topStoriesPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storiesLoadedMsg:
		if msg.mountID != m.mountID {
			return m, nil
		}
		m.stories = msg.stories
		m.loading = false
		m.viewport.SetContent(renderStoryList(m.stories))
		return m, nil
	case storiesFailedMsg:
		if msg.mountID != m.mountID {
			return m, nil
		}
		// the placeholder stays up, the failure only reaches the log
		if m.logger != nil {
			m.logger.Println(msg.err.Error())
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "k", "up":
			m.viewport.ScrollUp(1)
		case "j", "down":
			m.viewport.ScrollDown(1)
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.viewport = viewport.New(max(1, msg.Width), max(1, msg.Height))
		m.viewport.SetContent(renderStoryList(m.stories))
		m.ready = true
		return m, nil
	}

	return m, nil
}

func (m topStoriesPage) View() string {
	if m.loading {
		return loadingPlaceholder
	}
	if !m.ready {
		return renderStoryList(m.stories)
	}
	return m.viewport.View()
}

// renderStoryList numbers the stories in the order they were received.
func renderStoryList(stories []story.Story) string {
	items := make([]string, 0, len(stories))
	for i, s := range stories {
		marker := fmt.Sprintf("%d. ", i+1)
		items = append(items, lipgloss.JoinHorizontal(lipgloss.Top, marker, newArticleCard(s).View()))
	}
	return strings.Join(items, "\n\n")
}
