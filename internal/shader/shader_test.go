package shader

import (
	"errors"
	"strings"
	"testing"

	"shaderquad/internal/gfx"
	"shaderquad/internal/gfx/gfxtest"
	"shaderquad/shaders"
)

const noTimeFrag = `precision mediump float;
uniform vec2 uMPos;
uniform vec2 uSize;
void main() { gl_FragColor = vec4(uMPos / uSize, 0.0, 1.0); }
`

const varyingFrag = `precision mediump float;
varying vec2 vUV;
void main() { gl_FragColor = vec4(vUV, 0.0, 1.0); }
`

func TestCompileSuccess(t *testing.T) {
	rec := gfxtest.NewRecorder()
	s, err := Compile(rec, gfx.VertexShader, shaders.Vertex)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !s.Valid() {
		t.Fatalf("compile returned invalid handle")
	}
	if rec.LiveShaders() != 1 {
		t.Fatalf("live shaders = %d, expected 1", rec.LiveShaders())
	}
}

func TestCompileFailureReturnsNoHandle(t *testing.T) {
	cases := map[string]string{
		"error directive": "#error broken on purpose\nvoid main() {}\n",
		"empty":           "   \n",
	}
	for name, src := range cases {
		rec := gfxtest.NewRecorder()
		s, err := Compile(rec, gfx.FragmentShader, src)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if s.Valid() {
			t.Fatalf("%s: failed compile leaked handle %d", name, s)
		}
		if !errors.Is(err, ErrCompile) {
			t.Fatalf("%s: error %v does not wrap ErrCompile", name, err)
		}
		var ce *CompileError
		if !errors.As(err, &ce) || ce.Stage != gfx.FragmentShader || ce.Log == "" {
			t.Fatalf("%s: unexpected error %#v", name, err)
		}
		if rec.LiveShaders() != 0 {
			t.Fatalf("%s: failed shader was not deleted", name)
		}
	}
}

func TestCompileErrorMessageIncludesStageAndLog(t *testing.T) {
	rec := gfxtest.NewRecorder()
	_, err := Compile(rec, gfx.VertexShader, "#error bad varying\n")
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "vertex shader:") || !strings.Contains(msg, "bad varying") {
		t.Fatalf("message = %q", msg)
	}
}

func TestLinkResolvesSlots(t *testing.T) {
	rec := gfxtest.NewRecorder()
	prog, err := Build(rec, shaders.Vertex, shaders.Fragment, DefaultBindings())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !prog.Handle.Valid() {
		t.Fatalf("invalid program handle")
	}
	if !prog.Position.Valid() || !prog.Pointer.Valid() || !prog.Size.Valid() || !prog.Time.Valid() {
		t.Fatalf("unresolved slots: %+v", prog)
	}
	if prog.Pointer == prog.Size || prog.Size == prog.Time || prog.Pointer == prog.Time {
		t.Fatalf("uniform slots collide: %+v", prog)
	}
	if rec.LiveShaders() != 0 {
		t.Fatalf("compiled shaders not released after link")
	}
}

func TestLinkToleratesMissingUniform(t *testing.T) {
	rec := gfxtest.NewRecorder()
	prog, err := Build(rec, shaders.Vertex, noTimeFrag, DefaultBindings())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if prog.Time != gfx.NoUniform {
		t.Fatalf("time slot = %d, expected NoUniform", prog.Time)
	}
	if !prog.Pointer.Valid() || !prog.Size.Valid() {
		t.Fatalf("present uniforms unresolved: %+v", prog)
	}
}

func TestLinkFailure(t *testing.T) {
	rec := gfxtest.NewRecorder()
	_, err := Build(rec, shaders.Vertex, varyingFrag, DefaultBindings())
	if !errors.Is(err, ErrLink) {
		t.Fatalf("err = %v, expected link error", err)
	}
	var le *LinkError
	if !errors.As(err, &le) || !strings.Contains(le.Log, "vUV") {
		t.Fatalf("unexpected link error %#v", err)
	}
	if rec.LiveShaders() != 0 {
		t.Fatalf("shaders leaked after failed link")
	}
	if rec.Count("DeleteProgram") != 1 {
		t.Fatalf("failed program not deleted")
	}
}

func TestLinkRejectsFailedShader(t *testing.T) {
	rec := gfxtest.NewRecorder()
	frag, err := Compile(rec, gfx.FragmentShader, shaders.Fragment)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	vert, _ := Compile(rec, gfx.VertexShader, "#error nope\n")
	if _, err := Link(rec, vert, frag, DefaultBindings()); !errors.Is(err, ErrInvalidShader) {
		t.Fatalf("err = %v, expected ErrInvalidShader", err)
	}
	if rec.Count("CreateProgram") != 0 {
		t.Fatalf("link allocated a program for an invalid shader")
	}
}

func TestBuildCompilesBothStages(t *testing.T) {
	rec := gfxtest.NewRecorder()
	_, err := Build(rec, shaders.Vertex, "#error frag\n", DefaultBindings())
	var ce *CompileError
	if !errors.As(err, &ce) || ce.Stage != gfx.FragmentShader {
		t.Fatalf("err = %v, expected fragment compile error", err)
	}
	if rec.Count("CreateShader") != 2 {
		t.Fatalf("vertex stage not compiled after fragment failure")
	}
	if rec.LiveShaders() != 0 || rec.Count("CreateProgram") != 0 {
		t.Fatalf("vertex shader leaked or program created after fragment failure")
	}

	rec = gfxtest.NewRecorder()
	_, err = Build(rec, "#error vert\n", shaders.Fragment, DefaultBindings())
	if !errors.As(err, &ce) || ce.Stage != gfx.VertexShader {
		t.Fatalf("err = %v, expected vertex compile error", err)
	}
	if rec.LiveShaders() != 0 {
		t.Fatalf("fragment shader leaked after vertex failure")
	}
}

func TestBuildReportsEveryCompileFailure(t *testing.T) {
	rec := gfxtest.NewRecorder()
	_, err := Build(rec, "#error vert\n", "#error frag\n", DefaultBindings())
	if !errors.Is(err, ErrCompile) {
		t.Fatalf("err = %v, expected compile error", err)
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("err = %T, expected joined errors", err)
	}
	var stages []gfx.Enum
	for _, e := range joined.Unwrap() {
		var ce *CompileError
		if errors.As(e, &ce) {
			stages = append(stages, ce.Stage)
		}
	}
	if len(stages) != 2 || stages[0] != gfx.FragmentShader || stages[1] != gfx.VertexShader {
		t.Fatalf("stages = %v, expected fragment then vertex", stages)
	}
	msg := err.Error()
	if !strings.Contains(msg, "frag") || !strings.Contains(msg, "vert") {
		t.Fatalf("message = %q", msg)
	}
}
