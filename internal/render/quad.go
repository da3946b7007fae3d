package render

import (
	"shaderquad/internal/core"
	"shaderquad/internal/gfx"
)

// QuadVertexCount is the number of vertices in the full-surface strip.
const QuadVertexCount = 4

// quadComponents is the number of floats per vertex.
const quadComponents = 2

// QuadVertices returns the clip-space corners of the full-surface triangle
// strip: (1,1), (-1,1), (1,-1), (-1,-1).
func QuadVertices() []float32 {
	return []float32{
		1, 1,
		-1, 1,
		1, -1,
		-1, -1,
	}
}

// Quad is the static vertex buffer holding the strip.
type Quad struct {
	Buffer gfx.Buffer
}

// NewQuad allocates a buffer, binds it as the array buffer and uploads the
// quad with a static usage hint.
func NewQuad(ctx gfx.Context) *Quad {
	b := ctx.CreateBuffer()
	ctx.BindBuffer(gfx.ArrayBuffer, b)
	ctx.BufferData(gfx.ArrayBuffer, QuadVertices(), gfx.StaticDraw)
	core.Logger().Debug("quad uploaded", "buffer", uint32(b), "vertices", QuadVertexCount)
	return &Quad{Buffer: b}
}
