// Package life implements Conway's Game of Life on a toroidal grid using an
// active-set update: each generation only the cells whose state or neighbor
// count changed since their last evaluation are examined.
package life

import (
	"fmt"
	"slices"
	"strconv"

	"active-life/internal/core"
)

// Flip reports that the cell at (Row, Col) changed to State.
type Flip struct {
	Row   int
	Col   int
	State uint8
}

// Listener receives flip notifications on the goroutine that caused them.
type Listener func(Flip)

// Engine owns the grid and the two dirty sets. It is not safe for concurrent
// use; Toggle, Seed, Clear and Step must be serialized by the caller.
type Engine struct {
	grid *core.Grid

	current *dirtySet
	next    *dirtySet

	listeners []Listener
	flips     []Flip

	generation int
	population int
	evaluated  int
}

// New returns an all-dead engine with the given dimensions.
func New(rows, cols int) (*Engine, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	n := rows * cols
	return &Engine{
		grid:    core.NewGrid(rows, cols),
		current: newDirtySet(n),
		next:    newDirtySet(n),
	}, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Rows returns the number of grid rows.
func (e *Engine) Rows() int { return e.grid.Rows }

// Cols returns the number of grid columns.
func (e *Engine) Cols() int { return e.grid.Cols }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Cells returns a copy of the current cell states in row-major order.
func (e *Engine) Cells() []uint8 { return slices.Clone(e.grid.Cells()) }

// Generation returns the number of Step calls so far.
func (e *Engine) Generation() int { return e.generation }

// Population returns the number of live cells.
func (e *Engine) Population() int { return e.population }

// Pending returns how many cells are queued for the next Step.
func (e *Engine) Pending() int { return e.current.len() }

// Evaluated returns how many cells the last Step examined.
func (e *Engine) Evaluated() int { return e.evaluated }

// Idle reports whether no cell is queued for evaluation. An idle engine will
// not change again until a cell is toggled or seeded.
func (e *Engine) Idle() bool { return e.current.len() == 0 }

// Subscribe registers fn to receive every flip produced by Toggle, Seed,
// Clear and Step.
func (e *Engine) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	e.listeners = append(e.listeners, fn)
}

// Dirty returns the positions queued for the next Step in staging order.
func (e *Engine) Dirty() []core.Cell {
	cells := make([]core.Cell, 0, e.current.len())
	for _, ent := range e.current.entries {
		row, col := e.grid.Coords(ent.index)
		cells = append(cells, core.Cell{Row: row, Col: col})
	}
	return cells
}

// State returns the state of (row, col).
func (e *Engine) State(row, col int) (uint8, error) {
	if err := e.check(row, col); err != nil {
		return 0, err
	}
	return e.grid.State(row, col), nil
}

// NeighborCount returns the tracked live-neighbor count of (row, col).
func (e *Engine) NeighborCount(row, col int) (int, error) {
	if err := e.check(row, col); err != nil {
		return 0, err
	}
	return int(e.grid.NeighborCount(row, col)), nil
}

// Toggle flips the cell at (row, col) and queues it and its neighbors for the
// next Step.
func (e *Engine) Toggle(row, col int) error {
	if err := e.check(row, col); err != nil {
		return err
	}
	idx := e.grid.Index(row, col)
	e.flip(idx, 1-e.grid.Cells()[idx], e.current)
	e.flush()
	return nil
}

// Seed makes every listed cell alive. Cells that are already alive, and
// duplicates, are skipped. Nothing is changed if any cell is out of range.
func (e *Engine) Seed(cells []core.Cell) error {
	for _, c := range cells {
		if err := e.check(c.Row, c.Col); err != nil {
			return err
		}
	}
	state := e.grid.Cells()
	for _, c := range cells {
		idx := e.grid.Index(c.Row, c.Col)
		if state[idx] == 1 {
			continue
		}
		e.flip(idx, 1, e.current)
	}
	e.flush()
	return nil
}

// Clear kills every live cell. The cleared cells are queued, so one more Step
// is needed before the engine reports Idle.
func (e *Engine) Clear() {
	for idx, s := range e.grid.Cells() {
		if s == 1 {
			e.flip(idx, 0, e.current)
		}
	}
	e.flush()
}

// Step advances the board by one generation and returns the number of cells
// that flipped. Rules are applied to the counts recorded when each cell was
// staged, so flips made during the step do not affect cells evaluated later
// in the same step.
func (e *Engine) Step() int {
	cur := e.current
	state := e.grid.Cells()
	for _, ent := range cur.entries {
		alive := state[ent.index] == 1
		switch {
		case !alive && ent.count == 3:
			e.flip(ent.index, 1, e.next)
		case alive && ent.count != 2 && ent.count != 3:
			e.flip(ent.index, 0, e.next)
		}
	}
	e.evaluated = cur.len()
	cur.reset()
	e.current, e.next = e.next, cur
	e.generation++

	n := len(e.flips)
	e.flush()
	return n
}

// flip writes the new state of idx, adjusts the counts of its 8 neighbors and
// stages all 9 cells into set.
func (e *Engine) flip(idx int, state uint8, set *dirtySet) {
	cells := e.grid.Cells()
	counts := e.grid.Counts()
	cells[idx] = state

	delta := -1
	if state == 1 {
		delta = 1
	}
	e.population += delta

	row, col := e.grid.Coords(idx)
	for _, n := range e.grid.Neighbors(row, col) {
		set.mark(e.grid.Index(n.Row, n.Col), e.grid.AdjustNeighborCount(n.Row, n.Col, delta))
	}
	set.mark(idx, counts[idx])
	e.flips = append(e.flips, Flip{Row: row, Col: col, State: state})
}

// flush delivers buffered flips once the engine is consistent again.
func (e *Engine) flush() {
	if len(e.listeners) > 0 {
		for _, f := range e.flips {
			for _, fn := range e.listeners {
				fn(f)
			}
		}
	}
	e.flips = e.flips[:0]
}

func (e *Engine) check(row, col int) error {
	if !e.grid.Contains(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfRange, row, col, e.grid.Rows, e.grid.Cols)
	}
	return nil
}

// Verify recomputes every neighbor count from the board and reports the first
// cell whose tracked count disagrees.
func (e *Engine) Verify() error {
	g := e.grid
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			want := 0
			for _, n := range g.Neighbors(row, col) {
				want += int(g.State(n.Row, n.Col))
			}
			if got := int(g.NeighborCount(row, col)); got != want {
				return fmt.Errorf("%w: (%d,%d) tracked %d, board has %d", ErrCorrupt, row, col, got, want)
			}
		}
	}
	return nil
}

var _ core.StatsProvider = (*Engine)(nil)

// Stats reports the engine counters for display.
func (e *Engine) Stats() []core.Stat {
	return []core.Stat{
		{Label: "generation", Value: strconv.Itoa(e.generation)},
		{Label: "population", Value: strconv.Itoa(e.population)},
		{Label: "pending", Value: strconv.Itoa(e.current.len())},
	}
}
