package render

import "active-life/internal/core"

// CellAt maps a pointer position in screen pixels to the grid cell under it.
// Positions outside the board are rejected rather than wrapped.
func CellAt(x, y, scale int, size core.Size) (core.Cell, bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return core.Cell{}, false
	}
	row, col := y/scale, x/scale
	if row >= size.H || col >= size.W {
		return core.Cell{}, false
	}
	return core.Cell{Row: row, Col: col}, true
}

// ScaleToFit returns the largest integer cell size that fits a rows x cols
// board inside a maxW x maxH area with margin pixels left around it. The
// result is never below 1.
func ScaleToFit(rows, cols, maxW, maxH, margin int) int {
	if rows <= 0 || cols <= 0 {
		return 1
	}
	s := min((maxH-margin)/rows, (maxW-margin)/cols)
	if s < 1 {
		return 1
	}
	return s
}
