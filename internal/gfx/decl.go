package gfx

import (
	"regexp"
	"strings"
)

// Decl is a top-level attribute or uniform declaration found in shader text.
type Decl struct {
	Qualifier string
	Type      string
	Name      string
}

var glslDecl = regexp.MustCompile(`(?m)^\s*(attribute|uniform)\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*;`)

// ScanGLSL returns the attribute and uniform declarations in a GLSL source,
// in source order. Line comments are ignored.
func ScanGLSL(src string) []Decl {
	var b strings.Builder
	for _, line := range strings.Split(src, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	var decls []Decl
	for _, m := range glslDecl.FindAllStringSubmatch(b.String(), -1) {
		decls = append(decls, Decl{Qualifier: m[1], Type: m[2], Name: m[3]})
	}
	return decls
}

// Filter returns the declarations with the given qualifier.
func Filter(decls []Decl, qualifier string) []Decl {
	var out []Decl
	for _, d := range decls {
		if d.Qualifier == qualifier {
			out = append(out, d)
		}
	}
	return out
}
