//go:build gl

// Package mobile implements gfx.Context over golang.org/x/mobile/gl.
package mobile

import (
	"encoding/binary"

	"shaderquad/internal/gfx"

	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"
)

// Device forwards gfx calls to a GLES 2 context.
type Device struct {
	gl gl.Context
}

// NewDevice returns a Device without a context; call SetContext once the
// host makes one available.
func NewDevice() *Device { return &Device{} }

// SetContext sets the GL context calls are forwarded to.
func (d *Device) SetContext(ctx gl.Context) { d.gl = ctx }

// Ready reports whether a context is attached.
func (d *Device) Ready() bool { return d.gl != nil }

// Viewport sets the GL viewport to the full surface.
func (d *Device) Viewport(w, h int) {
	if d.gl != nil {
		d.gl.Viewport(0, 0, w, h)
	}
}

func program(p gfx.Program) gl.Program {
	return gl.Program{Init: true, Value: uint32(p)}
}

func (d *Device) CreateShader(stage gfx.Enum) gfx.Shader {
	return gfx.Shader(d.gl.CreateShader(gl.Enum(stage)).Value)
}

func (d *Device) ShaderSource(s gfx.Shader, src string) {
	d.gl.ShaderSource(gl.Shader{Value: uint32(s)}, src)
}

func (d *Device) CompileShader(s gfx.Shader) {
	d.gl.CompileShader(gl.Shader{Value: uint32(s)})
}

func (d *Device) CompileStatus(s gfx.Shader) bool {
	return d.gl.GetShaderi(gl.Shader{Value: uint32(s)}, gl.COMPILE_STATUS) != gl.FALSE
}

func (d *Device) ShaderInfoLog(s gfx.Shader) string {
	return d.gl.GetShaderInfoLog(gl.Shader{Value: uint32(s)})
}

func (d *Device) DeleteShader(s gfx.Shader) {
	d.gl.DeleteShader(gl.Shader{Value: uint32(s)})
}

func (d *Device) CreateProgram() gfx.Program {
	return gfx.Program(d.gl.CreateProgram().Value)
}

func (d *Device) AttachShader(p gfx.Program, s gfx.Shader) {
	d.gl.AttachShader(program(p), gl.Shader{Value: uint32(s)})
}

func (d *Device) LinkProgram(p gfx.Program) {
	d.gl.LinkProgram(program(p))
}

func (d *Device) LinkStatus(p gfx.Program) bool {
	return d.gl.GetProgrami(program(p), gl.LINK_STATUS) != gl.FALSE
}

func (d *Device) ProgramInfoLog(p gfx.Program) string {
	return d.gl.GetProgramInfoLog(program(p))
}

func (d *Device) DeleteProgram(p gfx.Program) {
	d.gl.DeleteProgram(program(p))
}

// GetAttribLocation maps GL's -1, which x/mobile returns as a wrapped
// unsigned value, to gfx.NoAttrib.
func (d *Device) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	a := d.gl.GetAttribLocation(program(p), name)
	if int32(a.Value) < 0 {
		return gfx.NoAttrib
	}
	return gfx.Attrib(a.Value)
}

func (d *Device) GetUniformLocation(p gfx.Program, name string) gfx.Uniform {
	u := d.gl.GetUniformLocation(program(p), name)
	if u.Value < 0 {
		return gfx.NoUniform
	}
	return gfx.Uniform(u.Value)
}

func (d *Device) CreateBuffer() gfx.Buffer {
	return gfx.Buffer(d.gl.CreateBuffer().Value)
}

func (d *Device) BindBuffer(target gfx.Enum, b gfx.Buffer) {
	d.gl.BindBuffer(gl.Enum(target), gl.Buffer{Value: uint32(b)})
}

func (d *Device) BufferData(target gfx.Enum, data []float32, usage gfx.Enum) {
	d.gl.BufferData(gl.Enum(target), f32.Bytes(binary.LittleEndian, data...), gl.Enum(usage))
}

func (d *Device) ClearColor(r, g, b, a float32) { d.gl.ClearColor(r, g, b, a) }
func (d *Device) ClearDepthf(v float32)         { d.gl.ClearDepthf(v) }
func (d *Device) Enable(capability gfx.Enum)    { d.gl.Enable(gl.Enum(capability)) }
func (d *Device) DepthFunc(fn gfx.Enum)         { d.gl.DepthFunc(gl.Enum(fn)) }
func (d *Device) Clear(mask gfx.Enum)           { d.gl.Clear(gl.Enum(mask)) }

func (d *Device) VertexAttribPointer(a gfx.Attrib, size int, ty gfx.Enum, normalized bool, stride, offset int) {
	d.gl.VertexAttribPointer(gl.Attrib{Value: uint(a)}, size, gl.Enum(ty), normalized, stride, offset)
}

func (d *Device) EnableVertexAttribArray(a gfx.Attrib) {
	d.gl.EnableVertexAttribArray(gl.Attrib{Value: uint(a)})
}

func (d *Device) UseProgram(p gfx.Program) { d.gl.UseProgram(program(p)) }

func (d *Device) Uniform1f(u gfx.Uniform, v float32) {
	d.gl.Uniform1f(gl.Uniform{Value: int32(u)}, v)
}

func (d *Device) Uniform2f(u gfx.Uniform, v0, v1 float32) {
	d.gl.Uniform2f(gl.Uniform{Value: int32(u)}, v0, v1)
}

func (d *Device) DrawArrays(mode gfx.Enum, first, count int) {
	d.gl.DrawArrays(gl.Enum(mode), first, count)
}

var _ gfx.Context = (*Device)(nil)
