package kage

import (
	"reflect"
	"testing"

	"shaderquad/shaders"
)

func TestScanUniforms(t *testing.T) {
	src := `package main

var UMPos vec2
var hidden float // not a uniform
var (
	USize vec2
	UTime float
)

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	var x float
	return vec4(x)
}
`
	got := ScanUniforms(src)
	want := []string{"UMPos", "USize", "UTime"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("uniforms = %v, expected %v", got, want)
	}
}

func TestBundledKageUniforms(t *testing.T) {
	names := ScanUniforms(shaders.Kage)
	for _, n := range []string{"uMPos", "uSize", "uTime"} {
		if ResolveUniform(names, n) < 0 {
			t.Fatalf("%s not resolvable in bundled Kage shader (have %v)", n, names)
		}
	}
	if ResolveUniform(names, "uMissing") != -1 {
		t.Fatalf("unknown uniform resolved")
	}
}

func TestVertexAttribs(t *testing.T) {
	got := VertexAttribs(shaders.Vertex)
	if !reflect.DeepEqual(got, []string{"aVertexPosition"}) {
		t.Fatalf("attribs = %v", got)
	}
	if got := VertexAttribs("attribute vec3 aPos;\n"); len(got) != 0 {
		t.Fatalf("vec3 attribute accepted: %v", got)
	}
}

func TestStripIndices(t *testing.T) {
	got := StripIndices(4)
	want := []uint16{0, 1, 2, 2, 1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("indices = %v, expected %v", got, want)
	}
	if StripIndices(2) != nil {
		t.Fatalf("strip of two vertices produced triangles")
	}
	if n := len(StripIndices(6)); n != 12 {
		t.Fatalf("strip of six produced %d indices", n)
	}
}

func TestClipToPixel(t *testing.T) {
	cases := []struct {
		x, y   float32
		px, py float32
	}{
		{1, 1, 800, 0},
		{-1, 1, 0, 0},
		{1, -1, 800, 600},
		{-1, -1, 0, 600},
		{0, 0, 400, 300},
	}
	for _, c := range cases {
		px, py := ClipToPixel(c.x, c.y, 800, 600)
		if px != c.px || py != c.py {
			t.Fatalf("ClipToPixel(%v, %v) = (%v, %v), expected (%v, %v)", c.x, c.y, px, py, c.px, c.py)
		}
	}
}

func TestGather(t *testing.T) {
	quad := []float32{1, 1, -1, 1, 1, -1, -1, -1}
	got, err := gather(quad, 2, 0, 0, 0, 4)
	if err != nil || !reflect.DeepEqual(got, quad) {
		t.Fatalf("gather = %v, %v", got, err)
	}

	interleaved := []float32{
		0, 1, 9,
		2, 3, 9,
	}
	got, err = gather(interleaved, 3, 12, 0, 0, 2)
	if err != nil || !reflect.DeepEqual(got, []float32{0, 1, 2, 3}) {
		t.Fatalf("interleaved gather = %v, %v", got, err)
	}

	if _, err := gather(quad, 2, 0, 0, 2, 4); err == nil {
		t.Fatalf("expected out of range error")
	}
}
