// Package render uploads the quad and issues the per-frame draw.
package render

import (
	"shaderquad/internal/core"
	"shaderquad/internal/gfx"
	"shaderquad/internal/shader"
)

// Renderer draws the quad with a linked program. It holds no state between
// frames; every draw sets the full pipeline state again.
type Renderer struct{}

// NewRenderer returns a Renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Draw renders one frame. Uniform and attribute slots that the program does
// not expose are skipped.
func (r *Renderer) Draw(ctx gfx.Context, prog *shader.Program, quad *Quad, frame *core.FrameState) {
	ctx.ClearColor(0, 0, 0, 1)
	ctx.ClearDepthf(1)
	// The depth test has no visible effect with a single quad.
	ctx.Enable(gfx.DepthTest)
	ctx.DepthFunc(gfx.Lequal)
	ctx.Clear(gfx.ColorBufferBit | gfx.DepthBufferBit)

	ctx.BindBuffer(gfx.ArrayBuffer, quad.Buffer)
	if prog.Position.Valid() {
		ctx.VertexAttribPointer(prog.Position, quadComponents, gfx.Float, false, 0, 0)
		ctx.EnableVertexAttribArray(prog.Position)
	}

	ctx.UseProgram(prog.Handle)

	if prog.Pointer.Valid() {
		ctx.Uniform2f(prog.Pointer, frame.Pointer.X, frame.Pointer.Y)
	}
	if prog.Size.Valid() {
		size := frame.Size.Vec()
		ctx.Uniform2f(prog.Size, size.X, size.Y)
	}
	if prog.Time.Valid() {
		ctx.Uniform1f(prog.Time, frame.Time)
	}

	ctx.DrawArrays(gfx.TriangleStrip, 0, QuadVertexCount)
}
