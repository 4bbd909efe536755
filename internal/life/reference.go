package life

// NextGeneration writes the successor of src into dst by scanning every cell
// of a rows x cols torus. It is the plain whole-board stepper the engine is
// checked against.
func NextGeneration(dst, src []uint8, rows, cols int) {
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + cols) % cols
					ny := (y + dy + rows) % rows
					neighbors += int(src[ny*cols+nx])
				}
			}
			idx := y*cols + x
			alive := src[idx] == 1
			dst[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				dst[idx] = 1
			}
		}
	}
}

// Reference is a full-scan Life board used to cross-check the engine.
type Reference struct {
	rows, cols int
	cur, nxt   []uint8
}

// NewReference copies cells into a new reference board.
func NewReference(rows, cols int, cells []uint8) *Reference {
	cur := make([]uint8, rows*cols)
	copy(cur, cells)
	return &Reference{rows: rows, cols: cols, cur: cur, nxt: make([]uint8, len(cur))}
}

// Cells exposes the current board.
func (r *Reference) Cells() []uint8 { return r.cur }

// Step advances the reference board by one generation.
func (r *Reference) Step() {
	NextGeneration(r.nxt, r.cur, r.rows, r.cols)
	r.cur, r.nxt = r.nxt, r.cur
}
