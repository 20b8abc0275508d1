// Package config provides configuration loading for urlbar using TOML or YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Search settings
type Search struct {
	URL     string   `toml:"url" yaml:"url"`         // Search URL format, %s is the encoded query
	Schemes []string `toml:"schemes" yaml:"schemes"` // Extra schemes passed through unchanged
}

// Editor settings
type Editor struct {
	SelectOnFocus bool     `toml:"selectOnFocus" yaml:"selectOnFocus"`
	ConfirmKeys   []string `toml:"confirmKeys" yaml:"confirmKeys"`
	CancelKeys    []string `toml:"cancelKeys" yaml:"cancelKeys"`
}

// Display settings
type Display struct {
	UnicodeHosts bool `toml:"unicodeHosts" yaml:"unicodeHosts"` // Show punycode hosts in Unicode
}

// Logging settings
type Logging struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn, error
	Format string `toml:"format" yaml:"format"` // text or json
}

// Config is the main configuration struct
type Config struct {
	Search  Search  `toml:"search" yaml:"search"`
	Editor  Editor  `toml:"editor" yaml:"editor"`
	Display Display `toml:"display" yaml:"display"`
	Logging Logging `toml:"logging" yaml:"logging"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Search: Search{
			URL: "https://www.google.com/search?q=%s",
		},
		Editor: Editor{
			SelectOnFocus: true,
			ConfirmKeys:   []string{"Enter"},
			CancelKeys:    []string{"Escape"},
		},
		Display: Display{
			UnicodeHosts: false,
		},
		Logging: Logging{
			Level:  "warn",
			Format: "text",
		},
	}
}

// configDir returns the configuration directory path.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "urlbar"), nil
}

// ConfigPath returns the path to the user's config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads configuration, layering the file at path on top of defaults.
// An empty path means the user config file; if that does not exist the
// defaults are returned. An explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		userPath, err := ConfigPath()
		if err != nil {
			return cfg, nil // Return defaults if we can't determine path
		}
		if _, err := os.Stat(userPath); errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		path = userPath
	}

	if err := DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeFile decodes the file at path into cfg. Keys missing from the file
// keep whatever cfg already holds, so decoding into Default() layers the
// user's settings over the defaults. Files ending in .yaml or .yml are YAML,
// anything else is TOML. Unknown keys are an error.
func DecodeFile(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(path, cfg)
	default:
		return decodeTOML(path, cfg)
	}
}

func decodeTOML(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("parsing config TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return nil
}

func decodeYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config YAML: %w", err)
	}
	return nil
}
