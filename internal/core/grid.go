package core

// Wrap reduces x into [0, n) using true modulo so negative inputs land on the
// opposite edge of the torus.
func Wrap(x, n int) int {
	return (x%n + n) % n
}

// Grid stores the cell states and live-neighbor counts of a toroidal board in
// row-major order. Coordinates passed to the accessors must already be wrapped;
// an out-of-range row faults on the slice index.
type Grid struct {
	Rows, Cols int
	state      []uint8
	counts     []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	n := rows * cols
	return &Grid{Rows: rows, Cols: cols, state: make([]uint8, n), counts: make([]uint8, n)}
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.Cols, H: g.Rows} }

// Cells exposes the backing state slice (0 dead, 1 alive).
func (g *Grid) Cells() []uint8 { return g.state }

// Counts exposes the backing neighbor-count slice.
func (g *Grid) Counts() []uint8 { return g.counts }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// Coords is the inverse of Index.
func (g *Grid) Coords(index int) (int, int) { return index / g.Cols, index % g.Cols }

// Contains reports whether (row, col) lies inside the grid without wrapping.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	return Wrap(row, g.Rows), Wrap(col, g.Cols)
}

// Neighbors returns the Moore neighborhood of (row, col) in the order
// W, E, N, NW, NE, S, SW, SE.
func (g *Grid) Neighbors(row, col int) [8]Cell {
	up := Wrap(row-1, g.Rows)
	down := Wrap(row+1, g.Rows)
	left := Wrap(col-1, g.Cols)
	right := Wrap(col+1, g.Cols)
	return [8]Cell{
		{Row: row, Col: left},
		{Row: row, Col: right},
		{Row: up, Col: col},
		{Row: up, Col: left},
		{Row: up, Col: right},
		{Row: down, Col: col},
		{Row: down, Col: left},
		{Row: down, Col: right},
	}
}

// State returns the value of the cell at (row, col).
func (g *Grid) State(row, col int) uint8 { return g.state[g.Index(row, col)] }

// SetState overwrites the cell at (row, col). Neighbor counts are left alone.
func (g *Grid) SetState(row, col int, v uint8) { g.state[g.Index(row, col)] = v }

// NeighborCount returns the tracked number of live neighbors of (row, col).
func (g *Grid) NeighborCount(row, col int) uint8 { return g.counts[g.Index(row, col)] }

// AdjustNeighborCount adds delta (+1 or -1) to the count at (row, col) and
// returns the updated value.
func (g *Grid) AdjustNeighborCount(row, col, delta int) uint8 {
	i := g.Index(row, col)
	g.counts[i] = uint8(int(g.counts[i]) + delta)
	return g.counts[i]
}

// Clear fills both layers with zeros.
func (g *Grid) Clear() {
	clear(g.state)
	clear(g.counts)
}
