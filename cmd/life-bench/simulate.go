package main

import (
	"context"
	"fmt"
	"slices"
	"time"

	"active-life/internal/life"
)

type params struct {
	rows, cols int
	gens       int
	density    float64
	seed       int64
	verify     bool
}

func defaultParams() params {
	return params{rows: 256, cols: 256, gens: 1000, density: 0.3, seed: 1}
}

type result struct {
	seed        int64
	generations int
	settled     bool
	population  int
	evaluated   int
	elapsed     time.Duration
}

func (r result) meanEvaluated() float64 {
	if r.generations == 0 {
		return 0
	}
	return float64(r.evaluated) / float64(r.generations)
}

func (r result) boardShare(p params) float64 {
	return r.meanEvaluated() / float64(p.rows*p.cols)
}

// checkFanOut rejects run and worker counts errgroup cannot schedule.
func checkFanOut(runs, workers int) error {
	if runs < 0 {
		return fmt.Errorf("-runs must not be negative, got %d", runs)
	}
	if workers < 1 {
		return fmt.Errorf("-workers must be at least 1, got %d", workers)
	}
	return nil
}

// simulate runs one soup until it settles or p.gens generations pass.
func simulate(ctx context.Context, p params, seed int64) (result, error) {
	cfg := life.Config{Rows: p.rows, Cols: p.cols, Seed: seed, Density: p.density}
	e, err := life.NewFromConfig(cfg)
	if err != nil {
		return result{}, err
	}

	var ref *life.Reference
	if p.verify {
		ref = life.NewReference(p.rows, p.cols, e.Cells())
	}

	r := result{seed: seed}
	start := time.Now()
	for r.generations < p.gens {
		if err := ctx.Err(); err != nil {
			return result{}, err
		}
		if e.Idle() {
			r.settled = true
			break
		}
		e.Step()
		r.generations++
		r.evaluated += e.Evaluated()

		if ref != nil {
			ref.Step()
			if !slices.Equal(e.Cells(), ref.Cells()) {
				return result{}, fmt.Errorf("generation %d differs from full scan", e.Generation())
			}
			if err := e.Verify(); err != nil {
				return result{}, fmt.Errorf("generation %d: %w", e.Generation(), err)
			}
		}
	}
	r.population = e.Population()
	r.elapsed = time.Since(start)
	return r, nil
}
