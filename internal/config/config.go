package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"carrental/internal/logger"
)

const (
	ReportFormatText = "text"
	ReportFormatYAML = "yaml"
)

// Config represents the application configuration
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Report  ReportConfig  `yaml:"report"`
	Console ConsoleConfig `yaml:"console"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// ReportConfig controls how the company report is printed
type ReportConfig struct {
	Format string `yaml:"format"` // "text" or "yaml"
}

// ConsoleConfig contains interactive console settings
type ConsoleConfig struct {
	Prompt string `yaml:"prompt"`
}

// Default returns the configuration used when no file is given.
// Environment overrides still apply.
func Default() (*Config, error) {
	cfg := &Config{}
	cfg.overrideWithEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val := os.Getenv("REPORT_FORMAT"); val != "" {
		c.Report.Format = val
	}
	if val, ok := os.LookupEnv("CONSOLE_PROMPT"); ok {
		c.Console.Prompt = val
	}
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Report.Format == "" {
		c.Report.Format = ReportFormatText
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	c.Log.Format = strings.ToLower(c.Log.Format)
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	c.Report.Format = strings.ToLower(c.Report.Format)
	if c.Report.Format != ReportFormatText && c.Report.Format != ReportFormatYAML {
		return fmt.Errorf("invalid report format: %s", c.Report.Format)
	}

	return nil
}
