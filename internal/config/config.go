package config

// Configuration loading and validation for rgal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kk-code-lab/rgal/internal/search"
	"github.com/kk-code-lab/rgal/internal/state"
)

// ErrInvalidConfig marks configuration values that cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the user configuration. Zero fields take defaults.
type Config struct {
	PageSize        int           `yaml:"page_size,omitempty"`
	DefaultScope    search.Scope  `yaml:"default_scope,omitempty"`   // "global" or "category"
	NoticeDuration  time.Duration `yaml:"notice_duration,omitempty"` // copy confirmation / invalid page highlight
	Theme           string        `yaml:"theme,omitempty"`           // used when no preference is stored
	PreferencesPath string        `yaml:"preferences_path,omitempty"`
	LogFile         string        `yaml:"log_file,omitempty"`
	LogLevel        string        `yaml:"log_level,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PageSize:       state.DefaultPageSize,
		DefaultScope:   search.ScopeGlobal,
		NoticeDuration: 1500 * time.Millisecond,
		Theme:          string(state.ThemeLight),
		LogLevel:       "info",
	}
}

// DefaultPath is config.yaml under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "rgal", "config.yaml"), nil
}

// Load reads path over the defaults. A missing file is not an error unless
// required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg = cfg.Merge(fileCfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge overlays the non-zero fields of other.
func (c Config) Merge(other Config) Config {
	if other.PageSize != 0 {
		c.PageSize = other.PageSize
	}
	if other.DefaultScope != "" {
		c.DefaultScope = other.DefaultScope
	}
	if other.NoticeDuration != 0 {
		c.NoticeDuration = other.NoticeDuration
	}
	if other.Theme != "" {
		c.Theme = other.Theme
	}
	if other.PreferencesPath != "" {
		c.PreferencesPath = other.PreferencesPath
	}
	if other.LogFile != "" {
		c.LogFile = other.LogFile
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	return c
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("%w: page_size must be positive, got %d", ErrInvalidConfig, c.PageSize)
	}
	if _, err := search.ParseScope(string(c.DefaultScope)); err != nil {
		return fmt.Errorf("%w: default_scope: %v", ErrInvalidConfig, err)
	}
	if c.NoticeDuration <= 0 {
		return fmt.Errorf("%w: notice_duration must be positive, got %s", ErrInvalidConfig, c.NoticeDuration)
	}
	switch c.Theme {
	case string(state.ThemeLight), string(state.ThemeDark):
	default:
		return fmt.Errorf("%w: theme must be light or dark, got %q", ErrInvalidConfig, c.Theme)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
