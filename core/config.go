package core

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config holds the front-end configuration
type Config struct {
	// Stdin stream settings
	Stdin StdinConfig `json:"stdin"`

	// Logging settings
	Logging LoggingConfig `json:"logging"`

	// Resource catalog settings
	Resources ResourcesConfig `json:"resources"`
}

// StdinConfig holds stdin stream settings
type StdinConfig struct {
	// BufferSize is the fixed capacity of the line buffer in bytes
	BufferSize int `json:"buffer_size"`

	// PollInterval bounds each wait on stdin readability so the
	// interrupt flag is re-checked at least this often
	PollInterval time.Duration `json:"poll_interval"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Debug   bool   `json:"debug"`
	File    string `json:"file"`
	Console bool   `json:"console"`
}

// ResourcesConfig holds resource catalog settings
type ResourcesConfig struct {
	// CatalogPath points at an optional YAML file overriding the
	// built-in message catalog; empty means defaults only
	CatalogPath string `json:"catalog_path"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Stdin: StdinConfig{
			BufferSize:   1024,
			PollInterval: time.Second,
		},
		Logging: LoggingConfig{
			Debug:   false,
			File:    "",
			Console: true,
		},
		Resources: ResourcesConfig{
			CatalogPath: "",
		},
	}
}

// LoadConfig loads configuration from a JSON file, falling back to
// defaults for any section the file omits
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("no configuration file specified")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the stream cannot run with
func (c *Config) Validate() error {
	if c.Stdin.BufferSize <= 1 {
		return fmt.Errorf("stdin buffer size must be greater than 1, got %d", c.Stdin.BufferSize)
	}
	if c.Stdin.PollInterval <= 0 {
		return fmt.Errorf("stdin poll interval must be positive, got %s", c.Stdin.PollInterval)
	}
	return nil
}

// Save writes the configuration to a JSON file
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
