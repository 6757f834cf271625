package app

import "flag"

// Config holds the window and pacing options of the viewer.
type Config struct {
	Scale    int
	TPS      int
	HUDWidth int
	// PlanetConfig is an optional YAML file of planet settings. Flags bound
	// by planet.Config override it.
	PlanetConfig string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 4, TPS: 30, HUDWidth: 300}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the control panel in pixels (0 hides it)")
	fs.StringVar(&c.PlanetConfig, "config", c.PlanetConfig, "YAML file with planet settings")
}
