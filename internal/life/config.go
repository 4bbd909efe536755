package life

import (
	"fmt"

	"active-life/internal/core"
	"active-life/internal/pattern"
)

// Config controls the board dimensions and how it is seeded.
type Config struct {
	Rows    int
	Cols    int
	Seed    int64
	Density float64
	Pattern string
}

// DefaultConfig returns a 20x20 empty board.
func DefaultConfig() Config {
	return Config{Rows: 20, Cols: 20, Seed: 42}
}

// Validate reports configuration values the engine cannot start from.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, c.Rows, c.Cols)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("life: density %v outside [0,1]", c.Density)
	}
	return nil
}

// NewFromConfig builds an engine and seeds it according to cfg.
func NewFromConfig(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e, err := New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	if err := Populate(e, cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Populate seeds e with the configured pattern, centered on the board, or
// with a random soup of cfg.Density drawn from cfg.Seed when no pattern is
// set.
func Populate(e *Engine, cfg Config) error {
	if cfg.Pattern != "" {
		p, err := pattern.Load(cfg.Pattern)
		if err != nil {
			return err
		}
		return e.Seed(p.Centered(e.Rows(), e.Cols()))
	}
	if cfg.Density > 0 {
		return e.Seed(core.NewRNG(cfg.Seed).Soup(e.Rows(), e.Cols(), cfg.Density))
	}
	return nil
}
