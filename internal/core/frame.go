package core

import "time"

// FrameState holds the values fed to the shader each frame. It has a single
// writer (the driver) and a single reader (the renderer).
type FrameState struct {
	// Pointer is in surface pixels with Y increasing upward.
	Pointer Vec2
	Size    Size
	// Time is the elapsed time in milliseconds.
	Time float32

	// LastTime is the timestamp of the previous tick and Delta the time
	// between the last two ticks. Nothing reads Delta yet.
	LastTime time.Duration
	Delta    time.Duration
}

// NewFrameState returns a state for a surface of the given size with the
// pointer at its center.
func NewFrameState(size Size) FrameState {
	return FrameState{Pointer: size.Center(), Size: size}
}

// MovePointer records a pointer position given in host coordinates, where Y
// grows downward, flipping it against the current surface height.
func (f *FrameState) MovePointer(x, y float32) {
	f.Pointer = Vec2{X: x, Y: FlipY(f.Size.H, y)}
}

// Advance moves the clock to now and returns the delta from the last tick.
func (f *FrameState) Advance(now time.Duration) time.Duration {
	f.Delta = now - f.LastTime
	f.LastTime = now
	f.Time = Millis(now)
	return f.Delta
}

// FlipY converts a top-left origin Y coordinate into a bottom-left one.
func FlipY(height int, y float32) float32 {
	return float32(height) - y
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float32 {
	return float32(d) / float32(time.Millisecond)
}
