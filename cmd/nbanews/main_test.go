package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nbanews/internal/scraper"
	"nbanews/internal/version"
)

func runApp(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	if err := app.Run(t.Context(), append([]string{"nbanews"}, args...)); err != nil {
		t.Fatalf("nbanews %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := runApp(t, "version")
	if strings.TrimSpace(out) != version.GetVersion() {
		t.Errorf("expected %q, got %q", version.GetVersion(), out)
	}
}

func TestSourcesCommand(t *testing.T) {
	out := runApp(t, "sources")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	sites := scraper.Sites()
	if len(lines) != len(sites) {
		t.Fatalf("expected %d lines, got %q", len(sites), out)
	}
	for i, s := range sites {
		if !strings.HasPrefix(lines[i], s.Name) || !strings.Contains(lines[i], s.URL) {
			t.Errorf("line %d: expected %s and %s, got %q", i, s.Name, s.URL, lines[i])
		}
	}
}

func TestConfigInitCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out := runApp(t, "config", "init")

	path := filepath.Join(home, ".config", "nbanews", "config.yaml")
	if !strings.Contains(out, path) {
		t.Errorf("expected the written path in output, got %q", out)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected config file: %v", err)
	}
	if !strings.Contains(string(b), "127.0.0.1:8080") {
		t.Errorf("expected default server address in config, got %q", string(b))
	}
}
