// Package config provides configuration loading and management for cdigen.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete cdigen configuration
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Output  OutputConfig  `yaml:"output"`
	Watch   WatchConfig   `yaml:"watch"`
}

// ConvertConfig controls row processing during conversion
type ConvertConfig struct {
	// ChunkSize is the number of rows per chunk when processing all rows
	ChunkSize int `yaml:"chunk_size"`
	// ProcessAllRows processes the full dataset instead of a preview
	ProcessAllRows bool `yaml:"process_all_rows"`
	// MaxRows caps the preview when ProcessAllRows is false
	MaxRows int `yaml:"max_rows"`
}

// OutputConfig controls where and how documents are written
type OutputConfig struct {
	// Dir is the output directory for generated documents
	Dir string `yaml:"dir"`
	// Pretty enables indented JSON output
	Pretty bool `yaml:"pretty"`
}

// WatchConfig configures the directory watcher
type WatchConfig struct {
	// Dir is the directory to watch for new dataset files
	Dir string `yaml:"dir"`
	// DebounceDelay is how long to wait after the last write event
	DebounceDelay time.Duration `yaml:"debounce_delay"`
	// FileExtensions limits which files trigger conversion (empty = all supported)
	FileExtensions []string `yaml:"file_extensions"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Convert: ConvertConfig{
			ChunkSize:      1000,
			ProcessAllRows: false,
			MaxRows:        100,
		},
		Output: OutputConfig{
			Dir:    "out",
			Pretty: true,
		},
		Watch: WatchConfig{
			Dir:           "",
			DebounceDelay: 2 * time.Second,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Convert.ChunkSize <= 0 {
		return fmt.Errorf("convert.chunk_size must be positive")
	}
	if c.Convert.MaxRows <= 0 {
		return fmt.Errorf("convert.max_rows must be positive")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if c.Watch.DebounceDelay < 0 {
		return fmt.Errorf("watch.debounce_delay must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Convert
	if other.Convert.ChunkSize != 0 {
		c.Convert.ChunkSize = other.Convert.ChunkSize
	}
	if other.Convert.ProcessAllRows {
		c.Convert.ProcessAllRows = true
	}
	if other.Convert.MaxRows != 0 {
		c.Convert.MaxRows = other.Convert.MaxRows
	}

	// Output
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}
	if other.Output.Pretty {
		c.Output.Pretty = true
	}

	// Watch
	if other.Watch.Dir != "" {
		c.Watch.Dir = other.Watch.Dir
	}
	if other.Watch.DebounceDelay != 0 {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}
	if len(other.Watch.FileExtensions) > 0 {
		c.Watch.FileExtensions = other.Watch.FileExtensions
	}
}
