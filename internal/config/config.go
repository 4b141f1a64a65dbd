// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all assistant configuration.
type Config struct {
	Session Session `yaml:"session"`
	Book    Book    `yaml:"book"`
	Log     Log     `yaml:"log"`
}

// Session holds front-end settings.
type Session struct {
	Prompt      string `yaml:"prompt"`
	Mode        string `yaml:"mode"`         // "auto" | "tui" | "line" | "plain"
	HistoryFile string `yaml:"history_file"` // Line mode only; empty disables history.
}

// Book holds address book behavior switches.
type Book struct {
	Lookup      string `yaml:"lookup"`       // "name" | "phone"
	StrictEdits bool   `yaml:"strict_edits"` // Validate the new phone on change.
}

// Log holds debug log settings. Logging is off unless File is set.
type Log struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
	File  string `yaml:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Session: Session{
			Prompt: "Enter a command: ",
			Mode:   "auto",
		},
		Book: Book{
			Lookup: "name",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files and empty paths are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	switch c.Session.Mode {
	case "auto", "tui", "line", "plain":
		// valid
	default:
		return fmt.Errorf("config: session.mode must be one of auto, tui, line, plain, got %q", c.Session.Mode)
	}
	switch c.Book.Lookup {
	case "name", "phone":
		// valid
	default:
		return fmt.Errorf("config: book.lookup must be \"name\" or \"phone\", got %q", c.Book.Lookup)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ASSISTANT_MODE, ASSISTANT_LOOKUP, ASSISTANT_STRICT_EDITS,
// ASSISTANT_LOG_FILE, ASSISTANT_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ASSISTANT_MODE"); v != "" {
		c.Session.Mode = v
	}
	if v := os.Getenv("ASSISTANT_LOOKUP"); v != "" {
		c.Book.Lookup = v
	}
	if v := os.Getenv("ASSISTANT_STRICT_EDITS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid ASSISTANT_STRICT_EDITS %q: %w", v, err)
		}
		c.Book.StrictEdits = b
	}
	if v := os.Getenv("ASSISTANT_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("ASSISTANT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Session *rawSession `yaml:"session"`
	Book    *rawBook    `yaml:"book"`
	Log     *rawLog     `yaml:"log"`
}

type rawSession struct {
	Prompt      *string `yaml:"prompt"`
	Mode        *string `yaml:"mode"`
	HistoryFile *string `yaml:"history_file"`
}

type rawBook struct {
	Lookup      *string `yaml:"lookup"`
	StrictEdits *bool   `yaml:"strict_edits"`
}

type rawLog struct {
	Level *string `yaml:"level"`
	File  *string `yaml:"file"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Session != nil {
		if layer.Session.Prompt != nil {
			c.Session.Prompt = *layer.Session.Prompt
		}
		if layer.Session.Mode != nil {
			c.Session.Mode = *layer.Session.Mode
		}
		if layer.Session.HistoryFile != nil {
			c.Session.HistoryFile = *layer.Session.HistoryFile
		}
	}
	if layer.Book != nil {
		if layer.Book.Lookup != nil {
			c.Book.Lookup = *layer.Book.Lookup
		}
		if layer.Book.StrictEdits != nil {
			c.Book.StrictEdits = *layer.Book.StrictEdits
		}
	}
	if layer.Log != nil {
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
	}
}
