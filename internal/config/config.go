package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration value that failed validation.
var ErrInvalid = errors.New("invalid configuration")

// FileConfig mirrors the on-disk configuration.
type FileConfig struct {
	ADB               string `yaml:"adb" toml:"adb"`
	Width             int    `yaml:"width" toml:"width"`
	FallbackWidth     int    `yaml:"fallback_width" toml:"fallback_width"`
	OnUnknownSeverity string `yaml:"on_unknown_severity" toml:"on_unknown_severity"`
	HighlightPairs    bool   `yaml:"highlight_pairs" toml:"highlight_pairs"`
	LogLevel          string `yaml:"log_level" toml:"log_level"`
	LogJSON           bool   `yaml:"log_json" toml:"log_json"`
}

// Constants for default values.
const (
	DefaultADB               = "adb"
	DefaultOnUnknownSeverity = "raw"
	DefaultLogLevel          = "warn"
)

// Defaults returns the built-in configuration.
func Defaults() FileConfig {
	return FileConfig{
		ADB:               DefaultADB,
		OnUnknownSeverity: DefaultOnUnknownSeverity,
		LogLevel:          DefaultLogLevel,
	}
}

// LoadFile decodes path, choosing TOML or YAML by extension. Fields absent
// from the file keep their defaults.
func LoadFile(path string) (FileConfig, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var raw FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	default:
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	merge(&cfg, raw)
	return cfg, nil
}

// merge copies the non-zero fields of src onto dst.
func merge(dst *FileConfig, src FileConfig) {
	if v := strings.TrimSpace(src.ADB); v != "" {
		dst.ADB = v
	}
	if src.Width != 0 {
		dst.Width = src.Width
	}
	if src.FallbackWidth != 0 {
		dst.FallbackWidth = src.FallbackWidth
	}
	if v := strings.TrimSpace(src.OnUnknownSeverity); v != "" {
		dst.OnUnknownSeverity = v
	}
	if v := strings.TrimSpace(src.LogLevel); v != "" {
		dst.LogLevel = v
	}
	dst.HighlightPairs = dst.HighlightPairs || src.HighlightPairs
	dst.LogJSON = dst.LogJSON || src.LogJSON
}

// findConfigPath returns the first existing config file, or "" when none exists.
func findConfigPath() string {
	if p := os.Getenv("LOGCOLOR_CONFIG"); p != "" {
		return p
	}
	candidates := []string{".logcolor.yaml"}
	configHome, err := os.UserConfigDir()
	if err == nil && configHome != "" && configHome != "/" {
		candidates = append(candidates,
			filepath.Join(configHome, "logcolor", "config.yaml"),
			filepath.Join(configHome, "logcolor", "config.toml"),
		)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
