package core

import (
	"testing"
	"time"
)

func TestFixedStepAccumulates(t *testing.T) {
	clock := time.Unix(1000, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first poll should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time passed, should not step")
	}

	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval should not step")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full interval elapsed, should step")
	}
	if fs.ShouldStep() {
		t.Fatal("remainder is below one interval")
	}
}

func TestFixedStepDefaultsAndReset(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("Interval = %v, want 1/60s", fs.Interval())
	}
	clock := time.Unix(0, 0)
	fs.now = func() time.Time { return clock }
	fs.Reset()
	if fs.ShouldStep() {
		t.Fatal("Reset should drop the pending tick")
	}
}
