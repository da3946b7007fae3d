package render

import (
	"reflect"
	"testing"

	"shaderquad/internal/core"
	"shaderquad/internal/gfx"
	"shaderquad/internal/gfx/gfxtest"
	"shaderquad/internal/shader"
	"shaderquad/shaders"
)

func setup(t *testing.T, fragSrc string) (*gfxtest.Recorder, *shader.Program, *Quad) {
	t.Helper()
	rec := gfxtest.NewRecorder()
	prog, err := shader.Build(rec, shaders.Vertex, fragSrc, shader.DefaultBindings())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	quad := NewQuad(rec)
	rec.Reset()
	return rec, prog, quad
}

func TestQuadUpload(t *testing.T) {
	want := []float32{1, 1, -1, 1, 1, -1, -1, -1}
	rec := gfxtest.NewRecorder()
	for i := 0; i < 3; i++ {
		q := NewQuad(rec)
		if got := rec.BufferContents(q.Buffer); !reflect.DeepEqual(got, want) {
			t.Fatalf("upload %d: buffer = %v, expected %v", i, got, want)
		}
	}
	for _, c := range rec.Calls {
		if c.Op == "BufferData" && (c.Args[0] != gfx.ArrayBuffer || c.Args[2] != gfx.StaticDraw) {
			t.Fatalf("unexpected upload %v", c)
		}
	}
	if len(rec.Errors) != 0 {
		t.Fatalf("context errors: %v", rec.Errors)
	}
}

func TestQuadVerticesAreFresh(t *testing.T) {
	v := QuadVertices()
	v[0] = 42
	if QuadVertices()[0] != 1 {
		t.Fatalf("QuadVertices shares its backing array")
	}
}

func TestDrawCallOrder(t *testing.T) {
	rec, prog, quad := setup(t, shaders.Fragment)
	frame := core.NewFrameState(core.Size{W: 640, H: 480})

	NewRenderer().Draw(rec, prog, quad, &frame)

	want := []string{
		"ClearColor", "ClearDepthf", "Enable", "DepthFunc", "Clear",
		"BindBuffer", "VertexAttribPointer", "EnableVertexAttribArray",
		"UseProgram",
		"Uniform2f", "Uniform2f", "Uniform1f",
		"DrawArrays",
	}
	if got := rec.Ops(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ops = %v\nexpected %v", got, want)
	}
	if len(rec.Errors) != 0 {
		t.Fatalf("context errors: %v", rec.Errors)
	}
	if rec.ClearColorValue != [4]float32{0, 0, 0, 1} || rec.ClearDepthValue != 1 {
		t.Fatalf("clear state = %v depth %v", rec.ClearColorValue, rec.ClearDepthValue)
	}
	if !rec.DepthTestOn || rec.DepthFuncValue != gfx.Lequal {
		t.Fatalf("depth state not set")
	}
	if c := rec.Calls[4]; c.Args[0] != gfx.ColorBufferBit|gfx.DepthBufferBit {
		t.Fatalf("clear mask = %v", c.Args[0])
	}
	if c := rec.Calls[6]; !reflect.DeepEqual(c.Args, []any{prog.Position, 2, gfx.Float, false, 0, 0}) {
		t.Fatalf("attribute pointer = %v", c)
	}
}

func TestDrawWritesFrameUniforms(t *testing.T) {
	rec, prog, quad := setup(t, shaders.Fragment)
	frame := core.NewFrameState(core.Size{W: 800, H: 600})
	frame.MovePointer(120, 40)
	frame.Time = 1500

	NewRenderer().Draw(rec, prog, quad, &frame)

	if len(rec.Draws) != 1 {
		t.Fatalf("draws = %d", len(rec.Draws))
	}
	d := rec.Draws[0]
	if d.Mode != gfx.TriangleStrip || d.First != 0 || d.Count != 4 {
		t.Fatalf("draw = %+v", d)
	}
	if !reflect.DeepEqual(d.Vertices, QuadVertices()) {
		t.Fatalf("vertices = %v", d.Vertices)
	}
	checks := map[string][]float32{
		"uMPos": {120, 560},
		"uSize": {800, 600},
		"uTime": {1500},
	}
	for name, want := range checks {
		if got := d.Uniforms[name]; !reflect.DeepEqual(got, want) {
			t.Fatalf("%s = %v, expected %v", name, got, want)
		}
	}
}

func TestDrawSkipsMissingUniform(t *testing.T) {
	const frag = `precision mediump float;
uniform vec2 uMPos;
uniform vec2 uSize;
void main() { gl_FragColor = vec4(uMPos / uSize, 0.0, 1.0); }
`
	rec, prog, quad := setup(t, frag)
	frame := core.NewFrameState(core.Size{W: 100, H: 100})
	frame.Time = 10

	NewRenderer().Draw(rec, prog, quad, &frame)

	if n := rec.Count("Uniform1f"); n != 0 {
		t.Fatalf("time uniform written %d times for a program without it", n)
	}
	if len(rec.Draws) != 1 || len(rec.Errors) != 0 {
		t.Fatalf("draws = %d errors = %v", len(rec.Draws), rec.Errors)
	}
}
