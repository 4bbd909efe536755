package life

import (
	"errors"
	"slices"
	"testing"

	"active-life/internal/pattern"
)

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Rows = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("rows=0 err = %v", err)
	}
	cfg = DefaultConfig()
	cfg.Density = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("density 1.5 accepted")
	}
}

func TestNewFromConfigPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "blinker"
	e, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if e.Population() != 3 {
		t.Fatalf("population = %d, want 3", e.Population())
	}
	for _, col := range []int{8, 9, 10} {
		if s, _ := e.State(9, col); s != 1 {
			t.Fatalf("blinker cell (9,%d) not alive", col)
		}
	}
	verify(t, e)
}

func TestNewFromConfigSoupDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 0.3
	a, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.Population() == 0 || !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different soups")
	}
}

func TestNewFromConfigErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = "no-such-pattern"
	if _, err := NewFromConfig(cfg); !errors.Is(err, pattern.ErrUnknown) {
		t.Fatalf("unknown pattern err = %v", err)
	}
	cfg = DefaultConfig()
	cfg.Cols = -4
	if _, err := NewFromConfig(cfg); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("negative cols err = %v", err)
	}
}
