package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/tides/internal/layout"
)

// LoadLayout reads and migrates layout.toml from the given path. Any read
// or parse failure falls back to the bundled default layout; the result is
// always sanitized and safe to solve.
func LoadLayout(path string) layout.Config {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return layout.DefaultConfig()
	}
	return layout.Sanitize(layout.Migrate(k.Raw()))
}

// DecodeLayout migrates an in-memory TOML layout document.
func DecodeLayout(data []byte) (layout.Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), toml.Parser()); err != nil {
		return layout.Config{}, fmt.Errorf("parse layout: %w", err)
	}
	return layout.Sanitize(layout.Migrate(k.Raw())), nil
}

// SaveLayout writes a sanitized layout to path, creating the directory
// when needed.
func SaveLayout(path string, cfg layout.Config) error {
	data, err := toml.Parser().Marshal(layout.EncodeWire(layout.Sanitize(cfg)))
	if err != nil {
		return fmt.Errorf("serialize layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
