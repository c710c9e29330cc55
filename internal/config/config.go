// Package config loads and persists application settings. The main config
// lives in config.toml; the panel layout is persisted separately in a
// sibling layout.toml so layout edits never rewrite unrelated settings.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "tides"

// Config holds the user-editable application settings.
type Config struct {
	UI UIConfig `koanf:"ui"`
}

// UIConfig holds UI preferences outside the layout tree.
type UIConfig struct {
	ShowLayoutEditIntro      bool    `koanf:"show_layout_edit_intro"`
	ShowTooltips             bool    `koanf:"show_tooltips"`
	AutoScrollToPlayingTrack bool    `koanf:"auto_scroll_to_playing_track"`
	WindowWidth              int     `koanf:"window_width"`
	WindowHeight             int     `koanf:"window_height"`
	Volume                   float64 `koanf:"volume"`
	IconStyle                string  `koanf:"icon_style"` // "nerd", "unicode" or "none"
}

func defaults() Config {
	return Config{
		UI: UIConfig{
			ShowLayoutEditIntro:      true,
			ShowTooltips:             true,
			AutoScrollToPlayingTrack: true,
			WindowWidth:              900,
			WindowHeight:             650,
			Volume:                   1.0,
			IconStyle:                "unicode",
		},
	}
}

// Dir returns the configuration directory (~/.config/tides).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Path returns the main config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LayoutPath returns the layout file path, a sibling of config.toml.
func LayoutPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "layout.toml"), nil
}

// Load reads config.toml, applying defaults for anything missing. A
// missing file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if _, statErr := os.Stat(path); statErr == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	if cfg.UI.WindowWidth <= 0 {
		cfg.UI.WindowWidth = 900
	}
	if cfg.UI.WindowHeight <= 0 {
		cfg.UI.WindowHeight = 650
	}
	return &cfg, nil
}
