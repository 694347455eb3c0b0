package rowan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig configures the engine's window and loop. The zero value is
// usable; withDefaults fills in anything unset.
type RunConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// TPS overrides ebiten's ticks per second when positive.
	TPS int `yaml:"tps"`

	// Debug enables bounding-box outlines and per-frame timing logs.
	Debug bool `yaml:"debug"`

	// ClearColor fills the screen before each draw pass.
	ClearColor Color `yaml:"clear_color"`
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "rowan"
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	return c
}

// ParseConfig unmarshals a YAML run configuration.
func ParseConfig(data []byte) (RunConfig, error) {
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse run config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML run configuration file.
func LoadConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("load run config: %w", err)
	}
	return ParseConfig(data)
}
