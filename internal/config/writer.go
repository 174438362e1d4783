package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteConfig renders ac as YAML to path, backing up any existing file first.
func WriteConfig(path string, ac AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := BackupFile(path); err != nil {
			return fmt.Errorf("failed to back up %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	// Rendered by hand so the file keeps its comments
	var sb strings.Builder
	sb.WriteString("# nbanews configuration\n")
	sb.WriteString("# The front-end always reads http://localhost:8080/top\n")

	sb.WriteString("server:\n")
	sb.WriteString(fmt.Sprintf("  addr: %q\n", ac.ServerAddr))

	sb.WriteString("scraper:\n")
	sb.WriteString(fmt.Sprintf("  timeout: %d  # seconds\n", ac.Scraper.TimeoutSec))
	sb.WriteString(fmt.Sprintf("  max_workers: %d\n", ac.Scraper.MaxWorkers))
	sb.WriteString(fmt.Sprintf("  user_agent: %q\n", ac.Scraper.UserAgent))

	if strings.TrimSpace(ac.LogFile) != "" {
		sb.WriteString("log:\n")
		sb.WriteString(fmt.Sprintf("  file: %q\n", ac.LogFile))
	}

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// BackupFile creates a backup of the specified file with a timestamp
func BackupFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ts := time.Now().Format("20060102-150405")
	bak := path + ".bak-" + ts
	return os.WriteFile(bak, b, 0o644)
}
