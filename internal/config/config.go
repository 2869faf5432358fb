// Package config loads superheroes settings from YAML or TOML with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Data sources.
const (
	SourceMemory = "memory"
	SourceJSON   = "json"
	SourceSQLite = "sqlite"
)

var ErrUnknownSource = errors.New("unknown data source")

// Config holds all superheroes configuration.
type Config struct {
	// Source selects the repository: memory, json or sqlite.
	Source string `yaml:"source" toml:"source"`
	// DataPath is the JSON file or SQLite database. Empty means the default
	// for the source.
	DataPath string `yaml:"data_path" toml:"data_path"`
	// Latency delays each repository call, e.g. "1500ms".
	Latency string `yaml:"latency" toml:"latency"`

	Theme    string `yaml:"theme" toml:"theme"`       // classic, neon, mono
	Language string `yaml:"language" toml:"language"` // BCP 47 tag

	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
	// File receives logs. Empty disables logging; the TUI owns the terminal.
	File string `yaml:"file" toml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source:   SourceMemory,
		Theme:    "classic",
		Language: "en",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Dir is where superheroes keeps its state, ~/.superheroes.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".superheroes"), nil
}

// DefaultPath is the config file used when none is given.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv("SUPERHEROES_CONFIG")); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if !errors.Is(err, os.ErrNotExist) || required {
				return Config{}, err
			}
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(b, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(b, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config %s: unsupported extension %q", path, filepath.Ext(path))
	}
	return nil
}

// ApplyEnv overrides fields from SUPERHEROES_* variables.
func (c *Config) ApplyEnv() {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.Source, "SUPERHEROES_SOURCE")
	set(&c.DataPath, "SUPERHEROES_DATA")
	set(&c.Latency, "SUPERHEROES_LATENCY")
	set(&c.Theme, "SUPERHEROES_THEME")
	set(&c.Language, "SUPERHEROES_LANG")
	set(&c.Logging.Level, "SUPERHEROES_LOG_LEVEL")
	set(&c.Logging.File, "SUPERHEROES_LOG_FILE")
}

// Validate checks enumerations and parses durations and tags.
func (c Config) Validate() error {
	switch c.Source {
	case SourceMemory, SourceJSON, SourceSQLite:
	default:
		return fmt.Errorf("%w: %q (want memory, json or sqlite)", ErrUnknownSource, c.Source)
	}
	if _, err := c.LatencyDuration(); err != nil {
		return err
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("language %q: %w", c.Language, err)
	}
	return nil
}

// LatencyDuration parses Latency; empty means no delay.
func (c Config) LatencyDuration() (time.Duration, error) {
	if c.Latency == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Latency)
	if err != nil {
		return 0, fmt.Errorf("latency %q: %w", c.Latency, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("latency %q: must not be negative", c.Latency)
	}
	return d, nil
}
