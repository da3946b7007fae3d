package core

// Size describes the dimensions of the drawing surface in pixels.
type Size struct {
	W int
	H int
}

// Center returns the midpoint of the surface.
func (s Size) Center() Vec2 {
	return Vec2{X: float32(s.W) / 2, Y: float32(s.H) / 2}
}

// Vec returns the size as a vector, as written to the size uniform.
func (s Size) Vec() Vec2 {
	return Vec2{X: float32(s.W), Y: float32(s.H)}
}

// Vec2 is a two component float vector.
type Vec2 struct {
	X, Y float32
}
