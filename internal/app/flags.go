package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	Seed   int64
	Width  int
	Height int
	Brush  string
	Config string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "sandbox", Scale: 12, TPS: 10, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells (0 = sim default)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells (0 = sim default)")
	fs.StringVar(&c.Brush, "brush", c.Brush, "initial brush material")
	fs.StringVar(&c.Config, "config", c.Config, "YAML file with sim settings")
}

// SimOptions converts the flags into the key/value map sim factories accept.
// Zero values are left out so the sim defaults apply.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	if c.Width > 0 {
		opts["width"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["height"] = strconv.Itoa(c.Height)
	}
	if c.Brush != "" {
		opts["brush"] = c.Brush
	}
	return opts
}
