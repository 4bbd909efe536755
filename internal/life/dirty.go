package life

// dirtyEntry records a queued cell and the neighbor count it had when it was
// last staged.
type dirtyEntry struct {
	index int
	count uint8
}

// dirtySet is an arena of candidate cells for the next evaluation. Entries
// keep insertion order; slot[index] holds position+1 of a queued cell, or 0.
type dirtySet struct {
	entries []dirtyEntry
	slot    []int32
}

func newDirtySet(cells int) *dirtySet {
	return &dirtySet{slot: make([]int32, cells)}
}

// mark stages index with count. Staging an already queued cell overwrites its
// count, so the last write before evaluation wins.
func (d *dirtySet) mark(index int, count uint8) {
	if pos := d.slot[index]; pos != 0 {
		d.entries[pos-1].count = count
		return
	}
	d.entries = append(d.entries, dirtyEntry{index: index, count: count})
	d.slot[index] = int32(len(d.entries))
}

func (d *dirtySet) len() int { return len(d.entries) }

// reset empties the set, touching only the slots that were queued.
func (d *dirtySet) reset() {
	for _, e := range d.entries {
		d.slot[e.index] = 0
	}
	d.entries = d.entries[:0]
}
