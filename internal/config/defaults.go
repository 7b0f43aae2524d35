package config

import "github.com/google/uuid"

var defaultNode = NodeConfig{
	ListenAddr: "127.0.0.1:50051",
}

var defaultClock = ClockConfig{
	MaxDrift: "1m",
}

var defaultLog = LogConfig{
	Level: "info",
}

// Default returns a fully populated configuration with a generated
// node ID.
func Default() *Config {
	cfg := &Config{
		Node:  defaultNode,
		Clock: defaultClock,
		Log:   defaultLog,
	}
	cfg.Node.ID = uuid.New().String()
	return cfg
}

func (c *NodeConfig) PopulateDefaults() {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	if c.ListenAddr == "" {
		c.ListenAddr = defaultNode.ListenAddr
	}
}

func (c *ClockConfig) PopulateDefaults() {
	if c.MaxDrift == "" {
		c.MaxDrift = defaultClock.MaxDrift
	}
}

func (c *LogConfig) PopulateDefaults() {
	if c.Level == "" {
		c.Level = defaultLog.Level
	}
}

func (c *Config) PopulateDefaults() {
	c.Node.PopulateDefaults()
	c.Clock.PopulateDefaults()
	c.Log.PopulateDefaults()
}
