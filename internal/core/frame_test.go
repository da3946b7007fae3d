package core

import (
	"testing"
	"time"
)

func TestMovePointerFlipsY(t *testing.T) {
	f := NewFrameState(Size{W: 1000, H: 800})
	f.MovePointer(10, 300)
	if f.Pointer != (Vec2{X: 10, Y: 500}) {
		t.Fatalf("pointer = %+v, expected {10 500}", f.Pointer)
	}
}

func TestFlipYIsInvolutive(t *testing.T) {
	for _, y := range []float32{0, 1, 300, 799.5, 800} {
		if got := FlipY(800, FlipY(800, y)); got != y {
			t.Fatalf("FlipY twice of %v = %v", y, got)
		}
	}
}

func TestNewFrameStateCentersPointer(t *testing.T) {
	f := NewFrameState(Size{W: 1024, H: 768})
	if f.Pointer != (Vec2{X: 512, Y: 384}) {
		t.Fatalf("pointer = %+v, expected center", f.Pointer)
	}
	if f.Size.Vec() != (Vec2{X: 1024, Y: 768}) {
		t.Fatalf("size = %+v", f.Size.Vec())
	}
}

func TestAdvanceTracksDelta(t *testing.T) {
	var f FrameState
	if d := f.Advance(0); d != 0 {
		t.Fatalf("first delta = %v", d)
	}
	f.Advance(16 * time.Millisecond)
	d := f.Advance(50 * time.Millisecond)
	if d != 34*time.Millisecond {
		t.Fatalf("delta = %v, expected 34ms", d)
	}
	if f.LastTime != 50*time.Millisecond {
		t.Fatalf("lastTime = %v", f.LastTime)
	}
	if f.Time != 50 {
		t.Fatalf("time = %v ms, expected 50", f.Time)
	}
}

func TestClockElapsed(t *testing.T) {
	base := time.Unix(100, 0)
	now := base
	c := NewClockFunc(func() time.Time { return now })
	now = base.Add(250 * time.Millisecond)
	if got := c.Elapsed(); got != 250*time.Millisecond {
		t.Fatalf("elapsed = %v", got)
	}
	now = base.Add(-time.Second)
	if got := c.Elapsed(); got != 0 {
		t.Fatalf("elapsed before start = %v, expected 0", got)
	}
}
