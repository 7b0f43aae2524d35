package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the daemon configuration.
type Config struct {
	Node  NodeConfig  `yaml:"node"`
	Clock ClockConfig `yaml:"clock"`
	Log   LogConfig   `yaml:"log"`
}

// NodeConfig identifies the node and where it listens.
type NodeConfig struct {
	ID         string `yaml:"id"`
	ListenAddr string `yaml:"listen_addr"`
}

// ClockConfig tunes the clock engine. MaxDrift is a Go duration string
// such as "1m" or "30s".
type ClockConfig struct {
	MaxDrift string `yaml:"max_drift"`
}

// LogConfig controls the logging bootstrap.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Read loads a yaml configuration file. The result still needs
// PopulateDefaults and Validate.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MaxDriftDuration returns the parsed drift budget.
func (c *ClockConfig) MaxDriftDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.MaxDrift)
	if err != nil {
		return 0, ErrInvalidMaxDrift
	}
	if d <= 0 {
		return 0, ErrInvalidMaxDrift
	}
	return d, nil
}
