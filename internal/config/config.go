// internal/config/config.go
//
// Ambient configuration for pyre. The file is optional and pyre never
// writes one: a missing file simply means the defaults. The table's
// behavior is never configurable, only the surface around it.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPrompt is shown before each interactive line.
const DefaultPrompt = "> "

// ColorMode says when output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config models the optional config file.
//
// prompt:  the interactive prompt string
// color:   auto, always, or never
// journal: path of the session journal; empty disables it
type Config struct {
	Prompt  string    `yaml:"prompt"`
	Color   ColorMode `yaml:"color"`
	Journal string    `yaml:"journal"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Prompt: DefaultPrompt, Color: ColorAuto}
}

// Load reads the config file if one exists and folds in the environment.
// PYRE_CONFIG points at an alternate file; PYRE_JOURNAL overrides the
// journal path.
func Load() (Config, error) {
	return loadFrom(configPath(), os.Getenv("PYRE_JOURNAL"))
}

func loadFrom(path, journalOverride string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// missing file, defaults apply
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			dec := yaml.NewDecoder(bytes.NewReader(data))
			dec.KnownFields(true)
			if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	if strings.TrimSpace(journalOverride) != "" {
		cfg.Journal = journalOverride
	}
	cfg.applyDefaults()
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// configPath resolves the config file location: PYRE_CONFIG first, then
// $XDG_CONFIG_HOME/pyre/config.yaml, then ~/.config/pyre/config.yaml.
func configPath() string {
	if path := os.Getenv("PYRE_CONFIG"); path != "" {
		return path
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "pyre", "config.yaml")
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Prompt) == "" {
		c.Prompt = DefaultPrompt
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
}

func (c *Config) normalize() {
	c.Color = ColorMode(strings.ToLower(strings.TrimSpace(string(c.Color))))
	c.Journal = strings.TrimSpace(c.Journal)
}

func (c Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("color must be auto, always, or never")
	}
}
