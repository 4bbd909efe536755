package app

import (
	"flag"
	"testing"

	"active-life/internal/life"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-rows", "30", "-cols", "40", "-density", "0.25", "-pattern", "glider", "-seed", "9"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}

	lc := cfg.Life()
	if lc.Rows != 30 || lc.Cols != 40 || lc.Density != 0.25 || lc.Pattern != "glider" || lc.Seed != 9 {
		t.Fatalf("Life() = %+v", lc)
	}
	if err := lc.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.TPS != 30 || cfg.Scale != 0 {
		t.Fatalf("defaults changed: tps=%d scale=%d", cfg.TPS, cfg.Scale)
	}
}

func TestConfigDefaultsMatchEngine(t *testing.T) {
	cfg := NewConfig()
	if cfg.Rows != 20 || cfg.Cols != 20 {
		t.Fatalf("default board %dx%d, want 20x20", cfg.Rows, cfg.Cols)
	}
}

func TestReseededFillsEmptyBoards(t *testing.T) {
	cfg := NewConfig()
	lc := cfg.Reseeded(77)
	if lc.Seed != 77 || lc.Density != reseedDensity {
		t.Fatalf("Reseeded on empty config = %+v", lc)
	}
	e, err := life.NewFromConfig(lc)
	if err != nil {
		t.Fatal(err)
	}
	if e.Population() == 0 {
		t.Fatal("reseeded board has no live cells")
	}

	cfg.Pattern = "glider"
	if lc := cfg.Reseeded(5); lc.Density != 0 || lc.Pattern != "glider" {
		t.Fatalf("pattern config should be reseeded as-is, got %+v", lc)
	}
	cfg.Pattern = ""
	cfg.Density = 0.1
	if lc := cfg.Reseeded(5); lc.Density != 0.1 {
		t.Fatalf("explicit density replaced: %+v", lc)
	}
}
