package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the converter run settings
type Config struct {
	// Leave the [Remarks] section empty
	SkipRemarks bool `yaml:"skip_remarks"`
	// Derive the band from FREQ when a record has no BAND
	BandFromFreq bool `yaml:"band_from_freq"`
	// Write <input>.edi instead of printing to stdout
	ToFile bool `yaml:"to_file"`
	// Directory for derived output files; empty means next to the input
	OutputDir string `yaml:"output_dir"`
	// debug, info, warn or error
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when no config file is given
func Default() *Config {
	return &Config{LogLevel: "info"}
}

// Load loads configuration from a YAML file, filling omitted values with defaults
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filename, err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks values that the YAML decoder cannot
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.OutputDir != "" {
		info, err := os.Stat(c.OutputDir)
		if err != nil {
			return fmt.Errorf("output_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("output_dir %q is not a directory", c.OutputDir)
		}
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
