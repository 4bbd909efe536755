package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Soup picks each cell of a rows x cols grid with probability density and
// returns the chosen positions in row-major order.
func (r *RNG) Soup(rows, cols int, density float64) []Cell {
	if density <= 0 {
		return nil
	}
	var cells []Cell
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if r.Chance(density) {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}
