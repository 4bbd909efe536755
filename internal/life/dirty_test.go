package life

import "testing"

// lookup returns the staged count for index.
func (d *dirtySet) lookup(index int) (uint8, bool) {
	pos := d.slot[index]
	if pos == 0 {
		return 0, false
	}
	return d.entries[pos-1].count, true
}

func TestDirtySetLastWriteWins(t *testing.T) {
	d := newDirtySet(16)
	d.mark(5, 2)
	d.mark(9, 1)
	d.mark(5, 3)

	if d.len() != 2 {
		t.Fatalf("len = %d, want 2", d.len())
	}
	if c, ok := d.lookup(5); !ok || c != 3 {
		t.Fatalf("lookup(5) = %d, %v; want 3, true", c, ok)
	}
	if d.entries[0].index != 5 || d.entries[1].index != 9 {
		t.Fatalf("insertion order lost: %+v", d.entries)
	}
	if _, ok := d.lookup(6); ok {
		t.Fatal("unqueued cell reported present")
	}
}

func TestDirtySetReset(t *testing.T) {
	d := newDirtySet(8)
	for i := 0; i < 8; i++ {
		d.mark(i, uint8(i))
	}
	d.reset()
	if d.len() != 0 {
		t.Fatalf("len after reset = %d", d.len())
	}
	for i := 0; i < 8; i++ {
		if _, ok := d.lookup(i); ok {
			t.Fatalf("cell %d still queued after reset", i)
		}
	}
	d.mark(4, 7)
	if c, ok := d.lookup(4); !ok || c != 7 || d.len() != 1 {
		t.Fatalf("reuse after reset: lookup(4) = %d, %v, len %d", c, ok, d.len())
	}
}
