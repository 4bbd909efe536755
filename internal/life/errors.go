package life

import "errors"

var (
	// ErrInvalidDimension is returned when an engine is constructed with a
	// non-positive row or column count.
	ErrInvalidDimension = errors.New("life: invalid grid dimension")
	// ErrOutOfRange is returned when a caller addresses a cell outside the
	// grid. Callers must wrap or reject such input themselves.
	ErrOutOfRange = errors.New("life: cell out of range")
	// ErrCorrupt is returned by Verify when a tracked neighbor count no longer
	// matches the board.
	ErrCorrupt = errors.New("life: neighbor count mismatch")
)
