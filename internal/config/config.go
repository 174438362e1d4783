package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

type ConfigLoad func() (AppConfig, error)

func AppConfigLoader() ConfigLoad {
	return LoadAppConfig
}

// ScraperConfig controls how the news sites are fetched.
type ScraperConfig struct {
	TimeoutSec int
	UserAgent  string
	MaxWorkers int
}

// AppConfig carries the settings shared by the front-end and the API.
type AppConfig struct {
	ServerAddr string
	Scraper    ScraperConfig
	LogFile    string
}

// Default returns the configuration used when no config file is present.
func Default() AppConfig {
	return AppConfig{
		ServerAddr: "127.0.0.1:8080",
		Scraper: ScraperConfig{
			TimeoutSec: 30,
			UserAgent:  "",
			MaxWorkers: 5,
		},
		LogFile: FallbackLogPath(),
	}
}

func FallbackLogPath() string {
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Logs", "NBANews", "nbanews.log")
	}

	return "nbanews.log"
}

// DefaultConfigPath is ~/.config/nbanews/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nbanews", "config.yaml"), nil
}

// LoadAppConfig parses ~/.config/nbanews/config.yaml, falling back to defaults
// for anything missing or unreadable.
func LoadAppConfig() (AppConfig, error) {
	cfgPath, err := DefaultConfigPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(cfgPath), nil
}

// LoadFrom parses the config file at path. Unknown keys and wrongly typed
// values are ignored.
func LoadFrom(path string) AppConfig {
	ac := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return ac
	}
	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return ac
	}

	if srv, ok := raw["server"].(map[string]any); ok {
		if v, ok := srv["addr"].(string); ok && strings.TrimSpace(v) != "" {
			ac.ServerAddr = strings.TrimSpace(v)
		}
	}
	if sc, ok := raw["scraper"].(map[string]any); ok {
		if v, ok := positiveInt(sc["timeout"]); ok {
			ac.Scraper.TimeoutSec = v
		}
		if v, ok := positiveInt(sc["max_workers"]); ok {
			ac.Scraper.MaxWorkers = v
		}
		if v, ok := sc["user_agent"].(string); ok {
			ac.Scraper.UserAgent = v
		}
	}
	if lg, ok := raw["log"].(map[string]any); ok {
		if v, ok := lg["file"].(string); ok && strings.TrimSpace(v) != "" {
			ac.LogFile = ExpandPath(strings.TrimSpace(v))
		}
	}

	return ac
}

// yaml decodes numbers into int, but accept floats written as 30.0 too
func positiveInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, n > 0
	case float64:
		return int(n), int(n) > 0
	}
	return 0, false
}

// ExpandPath expands leading ~ and environment variables in a filesystem path.
func ExpandPath(p string) string {
	if p == "" {
		return p
	}
	p = os.ExpandEnv(p)
	if strings.HasPrefix(p, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			if p == "~" {
				p = home
			} else if strings.HasPrefix(p, "~/") {
				p = filepath.Join(home, p[2:])
			}
		}
	}
	return p
}
