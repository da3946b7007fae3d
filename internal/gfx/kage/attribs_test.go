package kage

import (
	"errors"
	"reflect"
	"testing"

	"shaderquad/internal/gfx"
)

func TestPositionsFollowEnabledSlot(t *testing.T) {
	attribs := VertexAttribs("attribute vec2 aUV;\nattribute vec2 aPos;\n")
	slot := gfx.Attrib(-1)
	for i, n := range attribs {
		if n == "aPos" {
			slot = gfx.Attrib(i)
		}
	}
	if slot != 1 {
		t.Fatalf("aPos slot = %d, expected 1", slot)
	}

	quad := []float32{1, 1, -1, 1, 1, -1, -1, -1}
	buffers := map[gfx.Buffer][]float32{7: quad}
	s := newAttribState()
	s.set(slot, 7, 2, 0, 0)
	s.enable(slot)

	got, err := s.positions(buffers, 0, 4)
	if err != nil || !reflect.DeepEqual(got, quad) {
		t.Fatalf("positions = %v, %v", got, err)
	}
}

func TestPositionsWithoutEnabledAttribute(t *testing.T) {
	s := newAttribState()
	s.set(0, 1, 2, 0, 0)
	if _, err := s.positions(map[gfx.Buffer][]float32{1: {0, 0}}, 0, 1); !errors.Is(err, errNoPosition) {
		t.Fatalf("err = %v, expected errNoPosition", err)
	}
	s.enable(3)
	if s.position != gfx.NoAttrib {
		t.Fatalf("enabling a slot without a pointer selected it")
	}
}

func TestReleasable(t *testing.T) {
	a, b := new(int), new(int)
	if !releasable(a, nil) {
		t.Fatalf("unused stage not releasable")
	}
	if releasable(a, []*int{b, a}) {
		t.Fatalf("stage in use by a linked program reported releasable")
	}
	if !releasable(a, []*int{b}) {
		t.Fatalf("stage not shared reported in use")
	}
}
