// Package config defines the docfold run configuration.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config represents a docfold run
type Config struct {
	Passes     []string `yaml:"passes,omitempty"`     // passes run after the defaults
	NoDefaults bool     `yaml:"noDefaults,omitempty"` // skip the default pass list
	LogLevel   string   `yaml:"logLevel,omitempty"`
	Source     string   `yaml:"source,omitempty"` // Go project to inspect
	Input      string   `yaml:"input,omitempty"`  // encoded crate document
	Output     string   `yaml:"output,omitempty"` // empty writes to stdout
	SkipTests  bool     `yaml:"skipTests"`
}

// DefaultConfig returns configuration used when no file is supplied
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		SkipTests: true,
	}
}

// Load reads a YAML configuration document on top of the defaults
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return cfg, nil
}

// Validate checks that exactly one crate source is configured
func (c *Config) Validate() error {
	switch {
	case c.Source == "" && c.Input == "":
		return errors.New("either source or input is required")
	case c.Source != "" && c.Input != "":
		return errors.New("source and input are mutually exclusive")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level for LogLevel, info when unset
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(c.LogLevel) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
