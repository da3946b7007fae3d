package kage

import (
	"errors"

	"shaderquad/internal/gfx"
)

var errNoPosition = errors.New("no enabled vertex attribute")

type pointer struct {
	buffer  gfx.Buffer
	size    int
	stride  int
	offset  int
	enabled bool
}

// attribState tracks vertex attribute pointers. The position is the most
// recently enabled attribute, whatever slot the program resolved it to.
type attribState struct {
	pointers map[gfx.Attrib]*pointer
	position gfx.Attrib
}

func newAttribState() *attribState {
	return &attribState{pointers: map[gfx.Attrib]*pointer{}, position: gfx.NoAttrib}
}

func (s *attribState) set(a gfx.Attrib, buffer gfx.Buffer, size, stride, offset int) {
	s.pointers[a] = &pointer{buffer: buffer, size: size, stride: stride, offset: offset}
}

func (s *attribState) enable(a gfx.Attrib) {
	if p, ok := s.pointers[a]; ok {
		p.enabled = true
		s.position = a
	}
}

// positions reads count positions starting at vertex first from the buffer
// behind the position attribute.
func (s *attribState) positions(buffers map[gfx.Buffer][]float32, first, count int) ([]float32, error) {
	p, ok := s.pointers[s.position]
	if !ok || !p.enabled {
		return nil, errNoPosition
	}
	return gather(buffers[p.buffer], p.size, p.stride, p.offset, first, count)
}

// releasable reports whether a compiled fragment stage can be disposed,
// which is when no linked program still draws with it.
func releasable[T comparable](stage T, linked []T) bool {
	for _, l := range linked {
		if l == stage {
			return false
		}
	}
	return true
}
