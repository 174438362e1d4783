package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"nbanews/internal/config"
)

const pageTitle = "NBA News Aggregator"

// Options allow overriding config values from CLI flags.
type Options struct {
	LogFile string
}

type rootPage struct {
	topStories topStoriesPage
	width      int
	height     int
}

func newRootPage(ctx context.Context, fetcher StoryFetcher, logger *log.Logger) rootPage {
	return rootPage{
		topStories: TopStoriesPage(ctx, fetcher, logger),
	}
}

// Run starts the terminal front-end and blocks until the user quits. A fetch
// still pending at that point is cancelled.
func Run(ctx context.Context, opts Options, loadConfig config.ConfigLoad) error {
	appCfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logFile := strings.TrimSpace(opts.LogFile)
	if logFile == "" {
		logFile = appCfg.LogFile
	}

	logger, closeLog := openDiagnosticLog(config.ExpandPath(logFile))
	defer closeLog()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newRootPage(ctx, NewHTTPFetcher(TopStoriesEndpoint), logger)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	return nil
}

// openDiagnosticLog appends to logFile. The terminal belongs to the UI, so
// when the file cannot be opened diagnostics are dropped.
func openDiagnosticLog(logFile string) (*log.Logger, func() error) {
	logger := log.New(io.Discard, "[nbanews] ", log.LstdFlags)
	closeLog := func() error { return nil }
	if logFile == "" {
		return logger, closeLog
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err == nil {
		if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			logger.SetOutput(f)
			closeLog = f.Close
		}
	}
	return logger, closeLog
}

func (m rootPage) Init() tea.Cmd {
	return m.topStories.Init()
}

func (m rootPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// the story list gets what is left after the heading and help bar
		m.topStories, cmd = update[topStoriesPage](m.topStories, tea.WindowSizeMsg{
			Width:  msg.Width - 2,
			Height: msg.Height - chromeHeight,
		})
		return m, cmd
	}

	m.topStories, cmd = update[topStoriesPage](m.topStories, msg)
	return m, cmd
}

func (m rootPage) View() string {
	help := helpBar([]string{"j/k: scroll", "g/G: top/bottom", "q: quit"})
	return pageLayout(pageTitle, m.topStories.View(), help)
}

func update[T any](model tea.Model, msg tea.Msg) (T, tea.Cmd) {
	newModel, cmd := model.Update(msg)
	return newModel.(T), cmd
}
