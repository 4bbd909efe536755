package app

import (
	"flag"

	"active-life/internal/life"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Rows    int
	Cols    int
	Scale   int
	TPS     int
	Seed    int64
	Density float64
	Pattern string
	Panel   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	lc := life.DefaultConfig()
	return &Config{
		Rows:  lc.Rows,
		Cols:  lc.Cols,
		TPS:   30,
		Seed:  lc.Seed,
		Panel: 180,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of grid columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell (0 fits the screen)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive in the random soup")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern name or .cells file to seed")
	fs.IntVar(&c.Panel, "panel", c.Panel, "status panel width in pixels (0 hides it)")
}

// reseedDensity is the soup density used when reseeding a board that was
// started empty.
const reseedDensity = 0.3

// Reseeded returns the engine configuration for a fresh board drawn from
// seed. A board configured without a pattern or soup gets a random soup so
// that reseeding always produces live cells.
func (c *Config) Reseeded(seed int64) life.Config {
	lc := c.Life()
	lc.Seed = seed
	if lc.Pattern == "" && lc.Density == 0 {
		lc.Density = reseedDensity
	}
	return lc
}

// Life returns the engine configuration.
func (c *Config) Life() life.Config {
	return life.Config{
		Rows:    c.Rows,
		Cols:    c.Cols,
		Seed:    c.Seed,
		Density: c.Density,
		Pattern: c.Pattern,
	}
}
