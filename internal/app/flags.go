package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Scale int
	TPS   int
	Seed  uint64
	Level string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 6, TPS: 30, Seed: 42, Level: "easy"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation frames per second")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for terrain generation")
	fs.StringVar(&c.Level, "level", c.Level, "difficulty: easy, medium or hard")
}
