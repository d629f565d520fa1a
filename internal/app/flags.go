package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the drivers.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Skip    int
	Seed    int64
	Border  string
	Workers int
	Width   int
	Height  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 8, TPS: 20, Skip: 1, Seed: 42, Border: "clamp", Workers: 1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (window build)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Skip, "skip", c.Skip, "advance one generation every N ticks")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial pattern")
	fs.StringVar(&c.Border, "border", c.Border, "border policy: clamp or wrap")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells (0 = fit the screen)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells (0 = fit the screen)")
}

// SimConfig converts the flags into the factory map for a sim of w*h cells.
func (c *Config) SimConfig(w, h int) map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(w),
		"h":       strconv.Itoa(h),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"border":  c.Border,
		"workers": strconv.Itoa(c.Workers),
	}
}
