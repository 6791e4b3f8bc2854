package asciiart

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable defaults that can be loaded from a yaml
// file. Command-line flags take precedence over file values.
type Config struct {
	Width     int    `yaml:"width"`
	Chars     string `yaml:"chars"`
	Color     bool   `yaml:"color"`
	Format    string `yaml:"format"`
	OutputDir string `yaml:"output_dir"`
	Font      string `yaml:"font"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Width:     100,
		Chars:     DefaultCharset,
		Format:    "text",
		OutputDir: DefaultOutputDir,
	}
}

// LoadConfig reads a yaml config file on top of the defaults, so a file
// only needs to name the fields it changes.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
