// Package kage implements gfx.Context on top of ebiten. The fragment stage is
// a Kage program compiled with ebiten.NewShader; ebiten supplies the vertex
// transform, so the vertex stage only declares the position attribute.
package kage

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"shaderquad/internal/gfx"
)

var (
	kageVar      = regexp.MustCompile(`^var\s+([A-Za-z_]\w*)\s+(\w+)\s*$`)
	kageVarOpen  = regexp.MustCompile(`^var\s*\(\s*$`)
	kageVarInner = regexp.MustCompile(`^([A-Za-z_]\w*)\s+(\w+)\s*$`)
)

// ScanUniforms returns the exported top-level variables of a Kage program.
// Those are the uniforms ebiten lets callers set.
func ScanUniforms(src string) []string {
	var names []string
	inBlock := false
	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		line := sc.Text()
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		topLevel := !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t")
		line = strings.TrimSpace(line)
		switch {
		case inBlock && line == ")":
			inBlock = false
			continue
		case inBlock:
			if m := kageVarInner.FindStringSubmatch(line); m != nil && exported(m[1]) {
				names = append(names, m[1])
			}
			continue
		case !topLevel:
			continue
		case kageVarOpen.MatchString(line):
			inBlock = true
			continue
		}
		if m := kageVar.FindStringSubmatch(line); m != nil && exported(m[1]) {
			names = append(names, m[1])
		}
	}
	return names
}

// VertexAttribs returns the vec2 attributes declared by a vertex stage.
func VertexAttribs(src string) []string {
	var names []string
	for _, d := range gfx.Filter(gfx.ScanGLSL(src), "attribute") {
		if d.Type == "vec2" {
			names = append(names, d.Name)
		}
	}
	return names
}

// ResolveUniform finds name among Kage uniform names. Because Kage uniforms
// must be exported, a GLSL style name such as uTime also matches UTime.
// It returns -1 when there is no match.
func ResolveUniform(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	upper := capitalize(name)
	for i, n := range names {
		if n == upper {
			return i
		}
	}
	return -1
}

// StripIndices expands a triangle strip of n vertices into triangle list
// indices, keeping a consistent winding.
func StripIndices(n int) []uint16 {
	if n < 3 {
		return nil
	}
	idx := make([]uint16, 0, 3*(n-2))
	for i := 0; i+2 < n; i++ {
		a, b, c := uint16(i), uint16(i+1), uint16(i+2)
		if i%2 == 1 {
			a, b = b, a
		}
		idx = append(idx, a, b, c)
	}
	return idx
}

// ClipToPixel maps a clip-space position onto a w by h target whose origin
// is the top-left corner.
func ClipToPixel(x, y float32, w, h int) (float32, float32) {
	px := (x + 1) / 2 * float32(w)
	py := (1 - y) / 2 * float32(h)
	return px, py
}

// gather reads count two-component positions starting at vertex first.
// Stride and offset are in bytes as in GL; a zero stride means tightly packed.
func gather(data []float32, size, stride, offset, first, count int) ([]float32, error) {
	step := stride / 4
	if step == 0 {
		step = size
	}
	out := make([]float32, 0, 2*count)
	for i := first; i < first+count; i++ {
		base := i*step + offset/4
		if base+1 >= len(data) {
			return nil, fmt.Errorf("vertex %d outside buffer of %d floats", i, len(data))
		}
		out = append(out, data[base], data[base+1])
	}
	return out, nil
}

func exported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

func capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
