// Package config loads server settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/iris-color-mcp/internal/swatch"
)

// EnvLogLevel overrides the log level from the config file.
const EnvLogLevel = "IRIS_MCP_LOG_LEVEL"

// Config holds the server settings.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Swatch   struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"swatch"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	cfg := &Config{LogLevel: "info"}
	cfg.Swatch.Width = 64
	cfg.Swatch.Height = 64
	return cfg
}

// Load reads the YAML file at path on top of Default and applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the log level and swatch size.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.Swatch.Width < 1 || c.Swatch.Width > swatch.MaxSize ||
		c.Swatch.Height < 1 || c.Swatch.Height > swatch.MaxSize {
		return fmt.Errorf("swatch size %dx%d out of range [1, %d]", c.Swatch.Width, c.Swatch.Height, swatch.MaxSize)
	}
	return nil
}
