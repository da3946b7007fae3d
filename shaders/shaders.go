// Package shaders bundles the default shader sources.
package shaders

import _ "embed"

// Vertex is the GLSL ES 1.00 vertex stage. It passes the quad through in
// clip space.
//
//go:embed quad.vert
var Vertex string

// Fragment is the GLSL ES 1.00 fragment stage.
//
//go:embed quad.frag
var Fragment string

// Kage is the fragment stage for the ebiten device.
//
//go:embed quad.kage
var Kage string
