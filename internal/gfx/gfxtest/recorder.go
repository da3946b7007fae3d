// Package gfxtest provides an in-memory gfx.Context that records every call
// and models compile and link status from the shader text.
package gfxtest

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"shaderquad/internal/gfx"
)

// Call is a single recorded context call.
type Call struct {
	Op   string
	Args []any
}

func (c Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = fmt.Sprint(a)
	}
	return c.Op + "(" + strings.Join(parts, ", ") + ")"
}

// Draw captures the state seen by a DrawArrays call.
type Draw struct {
	Program  gfx.Program
	Mode     gfx.Enum
	First    int
	Count    int
	Uniforms map[string][]float32
	Vertices []float32
}

type shaderObj struct {
	stage    gfx.Enum
	src      string
	compiled bool
	log      string
	deleted  bool
}

type programObj struct {
	shaders  []gfx.Shader
	linked   bool
	log      string
	attribs  []string
	uniforms []string
	values   map[gfx.Uniform][]float32
}

type attribPointer struct {
	buffer  gfx.Buffer
	size    int
	enabled bool
}

// Recorder implements gfx.Context without a GPU.
//
// A shader fails to compile when its source is blank or contains an
// #error directive. A program fails to link when it lacks a compiled stage,
// when the fragment stage reads a varying the vertex stage does not declare,
// or when LinkFailure is set.
type Recorder struct {
	Calls  []Call
	Draws  []Draw
	Errors []string

	// LinkFailure forces every link to fail with this log when non-empty.
	LinkFailure string

	next     uint32
	shaders  map[gfx.Shader]*shaderObj
	programs map[gfx.Program]*programObj
	buffers  map[gfx.Buffer][]float32

	arrayBuffer gfx.Buffer
	current     gfx.Program
	pointers    map[gfx.Attrib]*attribPointer

	ClearColorValue [4]float32
	ClearDepthValue float32
	DepthTestOn     bool
	DepthFuncValue  gfx.Enum
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		shaders:  map[gfx.Shader]*shaderObj{},
		programs: map[gfx.Program]*programObj{},
		buffers:  map[gfx.Buffer][]float32{},
		pointers: map[gfx.Attrib]*attribPointer{},
	}
}

var (
	errorDirective = regexp.MustCompile(`(?m)^\s*#error(.*)$`)
	varyingDecl    = regexp.MustCompile(`(?m)^\s*varying\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+(\w+)\s*;`)
)

func (r *Recorder) record(op string, args ...any) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func (r *Recorder) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Recorder) id() uint32 {
	r.next++
	return r.next
}

// Ops returns the recorded operation names in call order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many times op was called.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls and draws but keeps object state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Draws = nil
	r.Errors = nil
}

// LiveShaders returns the number of shader objects not yet deleted.
func (r *Recorder) LiveShaders() int {
	n := 0
	for _, s := range r.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}

// BufferContents returns a copy of the data uploaded to b.
func (r *Recorder) BufferContents(b gfx.Buffer) []float32 {
	return append([]float32(nil), r.buffers[b]...)
}

// UniformValue returns the last value written to the named uniform of p.
func (r *Recorder) UniformValue(p gfx.Program, name string) ([]float32, bool) {
	prog, ok := r.programs[p]
	if !ok {
		return nil, false
	}
	for i, n := range prog.uniforms {
		if n == name {
			v, ok := prog.values[gfx.Uniform(i)]
			return v, ok
		}
	}
	return nil, false
}

func (r *Recorder) CreateShader(stage gfx.Enum) gfx.Shader {
	s := gfx.Shader(r.id())
	r.shaders[s] = &shaderObj{stage: stage}
	r.record("CreateShader", gfx.StageName(stage))
	return s
}

func (r *Recorder) ShaderSource(s gfx.Shader, src string) {
	r.record("ShaderSource", s)
	if obj, ok := r.shaders[s]; ok {
		obj.src = src
		return
	}
	r.fail("ShaderSource: unknown shader %d", s)
}

func (r *Recorder) CompileShader(s gfx.Shader) {
	r.record("CompileShader", s)
	obj, ok := r.shaders[s]
	if !ok {
		r.fail("CompileShader: unknown shader %d", s)
		return
	}
	switch {
	case strings.TrimSpace(obj.src) == "":
		obj.compiled = false
		obj.log = "ERROR: 0:1: '' : syntax error: empty source"
	case errorDirective.MatchString(obj.src):
		m := errorDirective.FindStringSubmatch(obj.src)
		obj.compiled = false
		obj.log = "ERROR: 0:1: '#error' :" + m[1]
	default:
		obj.compiled = true
		obj.log = ""
	}
}

func (r *Recorder) CompileStatus(s gfx.Shader) bool {
	r.record("CompileStatus", s)
	obj, ok := r.shaders[s]
	return ok && obj.compiled
}

func (r *Recorder) ShaderInfoLog(s gfx.Shader) string {
	r.record("ShaderInfoLog", s)
	if obj, ok := r.shaders[s]; ok {
		return obj.log
	}
	return ""
}

func (r *Recorder) DeleteShader(s gfx.Shader) {
	r.record("DeleteShader", s)
	if obj, ok := r.shaders[s]; ok {
		obj.deleted = true
	}
}

func (r *Recorder) CreateProgram() gfx.Program {
	p := gfx.Program(r.id())
	r.programs[p] = &programObj{values: map[gfx.Uniform][]float32{}}
	r.record("CreateProgram")
	return p
}

func (r *Recorder) AttachShader(p gfx.Program, s gfx.Shader) {
	r.record("AttachShader", p, s)
	prog, ok := r.programs[p]
	if !ok {
		r.fail("AttachShader: unknown program %d", p)
		return
	}
	if _, ok := r.shaders[s]; !ok {
		r.fail("AttachShader: unknown shader %d", s)
		return
	}
	prog.shaders = append(prog.shaders, s)
}

func (r *Recorder) LinkProgram(p gfx.Program) {
	r.record("LinkProgram", p)
	prog, ok := r.programs[p]
	if !ok {
		r.fail("LinkProgram: unknown program %d", p)
		return
	}
	prog.linked = false
	prog.attribs, prog.uniforms = nil, nil

	var vert, frag *shaderObj
	for _, s := range prog.shaders {
		obj := r.shaders[s]
		switch obj.stage {
		case gfx.VertexShader:
			vert = obj
		case gfx.FragmentShader:
			frag = obj
		}
	}
	switch {
	case r.LinkFailure != "":
		prog.log = r.LinkFailure
		return
	case vert == nil || !vert.compiled:
		prog.log = "error: missing or uncompiled vertex shader"
		return
	case frag == nil || !frag.compiled:
		prog.log = "error: missing or uncompiled fragment shader"
		return
	}

	written := map[string]bool{}
	for _, m := range varyingDecl.FindAllStringSubmatch(vert.src, -1) {
		written[m[1]] = true
	}
	for _, m := range varyingDecl.FindAllStringSubmatch(frag.src, -1) {
		if !written[m[1]] {
			prog.log = fmt.Sprintf("error: varying %s not written by vertex shader", m[1])
			return
		}
	}

	for _, d := range gfx.Filter(gfx.ScanGLSL(vert.src), "attribute") {
		prog.attribs = append(prog.attribs, d.Name)
	}
	seen := map[string]bool{}
	for _, src := range []string{vert.src, frag.src} {
		for _, d := range gfx.Filter(gfx.ScanGLSL(src), "uniform") {
			if !seen[d.Name] {
				seen[d.Name] = true
				prog.uniforms = append(prog.uniforms, d.Name)
			}
		}
	}
	prog.linked = true
	prog.log = ""
}

func (r *Recorder) LinkStatus(p gfx.Program) bool {
	r.record("LinkStatus", p)
	prog, ok := r.programs[p]
	return ok && prog.linked
}

func (r *Recorder) ProgramInfoLog(p gfx.Program) string {
	r.record("ProgramInfoLog", p)
	if prog, ok := r.programs[p]; ok {
		return prog.log
	}
	return ""
}

func (r *Recorder) DeleteProgram(p gfx.Program) {
	r.record("DeleteProgram", p)
	delete(r.programs, p)
}

func (r *Recorder) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	r.record("GetAttribLocation", p, name)
	prog, ok := r.programs[p]
	if !ok || !prog.linked {
		return gfx.NoAttrib
	}
	for i, n := range prog.attribs {
		if n == name {
			return gfx.Attrib(i)
		}
	}
	return gfx.NoAttrib
}

func (r *Recorder) GetUniformLocation(p gfx.Program, name string) gfx.Uniform {
	r.record("GetUniformLocation", p, name)
	prog, ok := r.programs[p]
	if !ok || !prog.linked {
		return gfx.NoUniform
	}
	for i, n := range prog.uniforms {
		if n == name {
			return gfx.Uniform(i)
		}
	}
	return gfx.NoUniform
}

func (r *Recorder) CreateBuffer() gfx.Buffer {
	b := gfx.Buffer(r.id())
	r.buffers[b] = nil
	r.record("CreateBuffer")
	return b
}

func (r *Recorder) BindBuffer(target gfx.Enum, b gfx.Buffer) {
	r.record("BindBuffer", target, b)
	if target != gfx.ArrayBuffer {
		r.fail("BindBuffer: unsupported target %#x", uint32(target))
		return
	}
	if _, ok := r.buffers[b]; !ok && b.Valid() {
		r.fail("BindBuffer: unknown buffer %d", b)
		return
	}
	r.arrayBuffer = b
}

func (r *Recorder) BufferData(target gfx.Enum, data []float32, usage gfx.Enum) {
	r.record("BufferData", target, len(data), usage)
	if !r.arrayBuffer.Valid() {
		r.fail("BufferData: no buffer bound")
		return
	}
	r.buffers[r.arrayBuffer] = append([]float32(nil), data...)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
	r.ClearColorValue = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) ClearDepthf(d float32) {
	r.record("ClearDepthf", d)
	r.ClearDepthValue = d
}

func (r *Recorder) Enable(capability gfx.Enum) {
	r.record("Enable", capability)
	if capability == gfx.DepthTest {
		r.DepthTestOn = true
	}
}

func (r *Recorder) DepthFunc(fn gfx.Enum) {
	r.record("DepthFunc", fn)
	r.DepthFuncValue = fn
}

func (r *Recorder) Clear(mask gfx.Enum) {
	r.record("Clear", mask)
}

func (r *Recorder) VertexAttribPointer(a gfx.Attrib, size int, ty gfx.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", a, size, ty, normalized, stride, offset)
	if !a.Valid() {
		r.fail("VertexAttribPointer: invalid attribute %d", a)
		return
	}
	if !r.arrayBuffer.Valid() {
		r.fail("VertexAttribPointer: no buffer bound")
		return
	}
	ptr := r.pointers[a]
	if ptr == nil {
		ptr = &attribPointer{}
		r.pointers[a] = ptr
	}
	ptr.buffer = r.arrayBuffer
	ptr.size = size
}

func (r *Recorder) EnableVertexAttribArray(a gfx.Attrib) {
	r.record("EnableVertexAttribArray", a)
	ptr, ok := r.pointers[a]
	if !ok {
		r.fail("EnableVertexAttribArray: attribute %d has no pointer", a)
		return
	}
	ptr.enabled = true
}

func (r *Recorder) UseProgram(p gfx.Program) {
	r.record("UseProgram", p)
	prog, ok := r.programs[p]
	if !ok || !prog.linked {
		r.fail("UseProgram: program %d is not linked", p)
		return
	}
	r.current = p
}

func (r *Recorder) writeUniform(op string, u gfx.Uniform, v []float32) {
	prog, ok := r.programs[r.current]
	if !ok {
		r.fail("%s: no program in use", op)
		return
	}
	if !u.Valid() {
		return
	}
	if int(u) >= len(prog.uniforms) {
		r.fail("%s: unknown uniform %d", op, u)
		return
	}
	prog.values[u] = v
}

func (r *Recorder) Uniform1f(u gfx.Uniform, v float32) {
	r.record("Uniform1f", u, v)
	r.writeUniform("Uniform1f", u, []float32{v})
}

func (r *Recorder) Uniform2f(u gfx.Uniform, v0, v1 float32) {
	r.record("Uniform2f", u, v0, v1)
	r.writeUniform("Uniform2f", u, []float32{v0, v1})
}

func (r *Recorder) DrawArrays(mode gfx.Enum, first, count int) {
	r.record("DrawArrays", mode, first, count)
	prog, ok := r.programs[r.current]
	if !ok {
		r.fail("DrawArrays: no program in use")
		return
	}
	d := Draw{Program: r.current, Mode: mode, First: first, Count: count, Uniforms: map[string][]float32{}}
	for u, v := range prog.values {
		d.Uniforms[prog.uniforms[u]] = append([]float32(nil), v...)
	}
	keys := make([]int, 0, len(r.pointers))
	for a := range r.pointers {
		keys = append(keys, int(a))
	}
	sort.Ints(keys)
	for _, k := range keys {
		ptr := r.pointers[gfx.Attrib(k)]
		if !ptr.enabled {
			continue
		}
		data := r.buffers[ptr.buffer]
		end := (first + count) * ptr.size
		if end > len(data) {
			r.fail("DrawArrays: attribute %d reads past buffer end", k)
			return
		}
		d.Vertices = append([]float32(nil), data[first*ptr.size:end]...)
		break
	}
	r.Draws = append(r.Draws, d)
}

var _ gfx.Context = (*Recorder)(nil)
