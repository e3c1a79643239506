// Package config loads the optional ggthumb.yaml settings used by the
// command line tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggthumb/internal/fetch"
	"github.com/gogpu/ggthumb/text"
)

// FileName is the configuration file looked up in the user config dir.
const FileName = "ggthumb.yaml"

// Config represents the optional ggthumb.yaml configuration.
type Config struct {
	Fonts   FontsConfig   `yaml:"fonts"`
	Network NetworkConfig `yaml:"network"`
	Output  OutputConfig  `yaml:"output"`
}

// FontsConfig controls font discovery.
type FontsConfig struct {
	// Dirs are searched before the platform font directories.
	Dirs       []string `yaml:"dirs,omitempty"`
	// SystemDirs replaces the platform font directories when set.
	SystemDirs []string `yaml:"system_dirs,omitempty"`

	Default  string `yaml:"default,omitempty"`
	CacheDir string `yaml:"cache_dir,omitempty"`
	System   *bool  `yaml:"system,omitempty"`
}

// NetworkConfig controls remote image and font downloads.
type NetworkConfig struct {
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// OutputConfig holds export defaults.
type OutputConfig struct {
	Format  string `yaml:"format,omitempty"`
	Quality int    `yaml:"quality,omitempty"`
}

// DefaultPath returns the per-user configuration file path.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, "ggthumb", FileName), nil
}

// LoadOptional reads the configuration file at path if present. A missing
// file yields an empty configuration.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return &cfg, nil
}

// Environment variables that override the file. The font variables are
// the ones the text package reads.
const (
	EnvFontDir     = text.EnvFontDir
	EnvDefaultFont = text.EnvDefaultFont
	EnvCacheDir    = text.EnvCacheDir
	EnvTimeout     = "GGTHUMB_TIMEOUT"
	EnvQuality     = "GGTHUMB_QUALITY"
)

// ApplyEnv overrides cfg with the GGTHUMB_* variables returned by
// lookup. GGTHUMB_FONT_DIR holds paths separated by os.PathListSeparator.
func (cfg *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvFontDir); ok && v != "" {
		cfg.Fonts.SystemDirs = filepath.SplitList(v)
	}
	if v, ok := lookup(EnvDefaultFont); ok && v != "" {
		cfg.Fonts.Default = v
	}
	if v, ok := lookup(EnvCacheDir); ok && v != "" {
		cfg.Fonts.CacheDir = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		cfg.Network.Timeout = d
	}
	if v, ok := lookup(EnvQuality); ok && v != "" {
		q, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvQuality, err)
		}
		cfg.Output.Quality = q
	}
	return nil
}

// Resolved contains configuration values with defaults applied.
type Resolved struct {
	FontDirs    []string
	SystemDirs  []string
	DefaultFont string
	CacheDir    string
	SystemFonts bool
	Timeout     time.Duration
	Format      string
	Quality     int
}

// Resolve loads path (if present), applies the environment and fills in
// defaults. An empty path selects DefaultPath.
func Resolve(path string) (*Resolved, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve validates cfg and fills in defaults.
func (cfg *Config) Resolve() (*Resolved, error) {
	r := &Resolved{
		FontDirs:    cfg.Fonts.Dirs,
		SystemDirs:  cfg.Fonts.SystemDirs,
		DefaultFont: strings.TrimSpace(cfg.Fonts.Default),
		CacheDir:    cfg.Fonts.CacheDir,
		SystemFonts: cfg.Fonts.System == nil || *cfg.Fonts.System,
		Timeout:     cfg.Network.Timeout,
		Format:      strings.ToLower(strings.TrimSpace(cfg.Output.Format)),
		Quality:     cfg.Output.Quality,
	}
	if r.Timeout == 0 {
		r.Timeout = fetch.DefaultTimeout
	}
	if r.Timeout < 0 {
		return nil, fmt.Errorf("invalid network.timeout %s", r.Timeout)
	}
	if r.Quality < 0 || r.Quality > 100 {
		return nil, fmt.Errorf("invalid output.quality %d: must be in 0..100", r.Quality)
	}
	switch r.Format {
	case "", "png", "jpeg", "jpg", "webp":
	default:
		return nil, fmt.Errorf("invalid output.format %q", cfg.Output.Format)
	}
	return r, nil
}
