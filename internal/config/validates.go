package config

func (c *Config) Validate() error {
	if err := c.Node.Validate(); err != nil {
		return err
	}
	if err := c.Clock.Validate(); err != nil {
		return err
	}
	return nil
}

func (c *NodeConfig) Validate() error {
	if c.ID == "" {
		return ErrMissingNodeID
	}
	if c.ListenAddr == "" {
		return ErrMissingListenAddr
	}
	return nil
}

func (c *ClockConfig) Validate() error {
	_, err := c.MaxDriftDuration()
	return err
}
