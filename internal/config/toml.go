package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/BurntSushi/toml"
)

// Defaults applied when neither the config file nor a flag sets a value.
const (
	DefaultSection   = "home"
	DefaultEngine    = "heuristic"
	DefaultAckMs     = 2000
	DefaultBaseURL   = "https://jsonplaceholder.typicode.com"
	DefaultTimeoutMs = 5000
	DefaultLogLevel  = "info"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	UI        UIConfig        `toml:"ui"`
	Highlight HighlightConfig `toml:"highlight"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Fetch     FetchConfig     `toml:"fetch"`
	Log       LogConfig       `toml:"log"`
}

// UIConfig maps TUI settings.
type UIConfig struct {
	Section *string `toml:"section"`
}

// HighlightConfig maps highlighter settings.
type HighlightConfig struct {
	Engine *string `toml:"engine"`
}

// ClipboardConfig maps clipboard acknowledgment settings.
type ClipboardConfig struct {
	AckMs *int `toml:"ack-ms"`
}

// FetchConfig maps placeholder API settings.
type FetchConfig struct {
	BaseURL   *string `toml:"base-url"`
	TimeoutMs *int    `toml:"timeout-ms"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

// Validate checks the values that are set.
func (c FileConfig) Validate() error {
	if c.Highlight.Engine != nil {
		switch *c.Highlight.Engine {
		case "heuristic", "chroma":
		default:
			return fmt.Errorf("highlight.engine must be heuristic or chroma, got %q", *c.Highlight.Engine)
		}
	}
	if c.Clipboard.AckMs != nil && *c.Clipboard.AckMs <= 0 {
		return fmt.Errorf("clipboard.ack-ms must be > 0")
	}
	if c.Fetch.TimeoutMs != nil && *c.Fetch.TimeoutMs <= 0 {
		return fmt.Errorf("fetch.timeout-ms must be > 0")
	}
	if c.Fetch.BaseURL != nil {
		u, err := url.Parse(*c.Fetch.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("fetch.base-url must be an absolute URL, got %q", *c.Fetch.BaseURL)
		}
	}
	return nil
}
