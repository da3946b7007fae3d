// Package gfx describes the slice of a GL-style graphics context that the
// renderer drives. Enum values match OpenGL ES 2.0 so devices backed by a real
// GL binding can pass them straight through.
package gfx

// Enum is a GL enumerant.
type Enum uint32

const (
	VertexShader   Enum = 0x8B31
	FragmentShader Enum = 0x8B30

	ArrayBuffer Enum = 0x8892
	StaticDraw  Enum = 0x88E4

	DepthTest Enum = 0x0B71
	Lequal    Enum = 0x0203

	DepthBufferBit Enum = 0x00000100
	ColorBufferBit Enum = 0x00004000

	Float         Enum = 0x1406
	TriangleStrip Enum = 0x0005
)

// Shader is an opaque shader object. The zero value is never a valid shader.
type Shader uint32

// Valid reports whether s refers to a live shader object.
func (s Shader) Valid() bool { return s != 0 }

// Program is an opaque program object. The zero value is never valid.
type Program uint32

// Valid reports whether p refers to a live program object.
func (p Program) Valid() bool { return p != 0 }

// Buffer is an opaque buffer object. The zero value is never valid.
type Buffer uint32

// Valid reports whether b refers to a live buffer object.
func (b Buffer) Valid() bool { return b != 0 }

// Attrib is a vertex attribute slot.
type Attrib int32

// NoAttrib is returned when a program has no attribute of the requested name.
const NoAttrib Attrib = -1

// Valid reports whether a was resolved.
func (a Attrib) Valid() bool { return a >= 0 }

// Uniform is a uniform slot.
type Uniform int32

// NoUniform is returned when a program has no uniform of the requested name.
const NoUniform Uniform = -1

// Valid reports whether u was resolved.
func (u Uniform) Valid() bool { return u >= 0 }

// Context is the host graphics context.
type Context interface {
	CreateShader(stage Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	CompileStatus(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	LinkStatus(p Program) bool
	ProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	GetAttribLocation(p Program, name string) Attrib
	GetUniformLocation(p Program, name string) Uniform

	CreateBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, data []float32, usage Enum)

	ClearColor(r, g, b, a float32)
	ClearDepthf(d float32)
	Enable(capability Enum)
	DepthFunc(fn Enum)
	Clear(mask Enum)

	VertexAttribPointer(a Attrib, size int, ty Enum, normalized bool, stride, offset int)
	EnableVertexAttribArray(a Attrib)
	UseProgram(p Program)
	Uniform1f(u Uniform, v float32)
	Uniform2f(u Uniform, v0, v1 float32)
	DrawArrays(mode Enum, first, count int)
}

// StageName returns a readable name for a shader stage enum.
func StageName(stage Enum) string {
	switch stage {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}
