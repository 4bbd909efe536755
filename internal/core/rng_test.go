package core

import (
	"slices"
	"testing"
)

func TestSoupDeterministic(t *testing.T) {
	a := NewRNG(7).Soup(16, 16, 0.3)
	b := NewRNG(7).Soup(16, 16, 0.3)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different soups")
	}
	if len(a) == 0 || len(a) == 256 {
		t.Fatalf("soup of density 0.3 picked %d of 256 cells", len(a))
	}
	for _, c := range a {
		if c.Row < 0 || c.Row >= 16 || c.Col < 0 || c.Col >= 16 {
			t.Fatalf("soup cell %+v outside grid", c)
		}
	}
}

func TestSoupZeroDensity(t *testing.T) {
	if cells := NewRNG(1).Soup(8, 8, 0); cells != nil {
		t.Fatalf("zero density returned %d cells", len(cells))
	}
	if cells := NewRNG(1).Soup(4, 5, 1); len(cells) != 20 {
		t.Fatalf("full density returned %d cells, want 20", len(cells))
	}
}
