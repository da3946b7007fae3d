//go:build ebiten

package kage

import (
	"image/color"

	"shaderquad/internal/core"
	"shaderquad/internal/gfx"

	"github.com/hajimehoshi/ebiten/v2"
)

type shaderObj struct {
	stage    gfx.Enum
	src      string
	compiled bool
	log      string
	attribs  []string
	uniforms []string
	kage     *ebiten.Shader
}

type programObj struct {
	shaders  []*shaderObj
	linked   bool
	log      string
	attribs  []string
	uniforms []string
	kage     *ebiten.Shader
	values   map[string]any
}

// Device is a gfx.Context that draws onto an ebiten image. Depth state is
// accepted but has no effect: ebiten targets have no depth buffer.
type Device struct {
	target *ebiten.Image

	next     uint32
	shaders  map[gfx.Shader]*shaderObj
	programs map[gfx.Program]*programObj
	buffers  map[gfx.Buffer][]float32

	arrayBuffer gfx.Buffer
	current     gfx.Program
	attribs     *attribState

	clear     [4]float32
	depth     float32
	depthTest bool
	depthFunc gfx.Enum

	vertices []ebiten.Vertex
}

// NewDevice returns a Device with no target.
func NewDevice() *Device {
	return &Device{
		shaders:  map[gfx.Shader]*shaderObj{},
		programs: map[gfx.Program]*programObj{},
		buffers:  map[gfx.Buffer][]float32{},
		attribs:  newAttribState(),
	}
}

// SetTarget sets the image subsequent clears and draws render into.
func (d *Device) SetTarget(img *ebiten.Image) { d.target = img }

func (d *Device) id() uint32 {
	d.next++
	return d.next
}

func (d *Device) CreateShader(stage gfx.Enum) gfx.Shader {
	if stage != gfx.VertexShader && stage != gfx.FragmentShader {
		return 0
	}
	s := gfx.Shader(d.id())
	d.shaders[s] = &shaderObj{stage: stage}
	return s
}

func (d *Device) ShaderSource(s gfx.Shader, src string) {
	if obj, ok := d.shaders[s]; ok {
		obj.src = src
	}
}

func (d *Device) CompileShader(s gfx.Shader) {
	obj, ok := d.shaders[s]
	if !ok {
		return
	}
	obj.compiled, obj.log = false, ""
	switch obj.stage {
	case gfx.VertexShader:
		obj.attribs = VertexAttribs(obj.src)
		if len(obj.attribs) == 0 {
			obj.log = "vertex stage declares no vec2 attribute"
			return
		}
	case gfx.FragmentShader:
		sh, err := ebiten.NewShader([]byte(obj.src))
		if err != nil {
			obj.log = err.Error()
			return
		}
		obj.kage = sh
		obj.uniforms = ScanUniforms(obj.src)
	}
	obj.compiled = true
}

func (d *Device) CompileStatus(s gfx.Shader) bool {
	obj, ok := d.shaders[s]
	return ok && obj.compiled
}

func (d *Device) ShaderInfoLog(s gfx.Shader) string {
	if obj, ok := d.shaders[s]; ok {
		return obj.log
	}
	return ""
}

// DeleteShader forgets the shader object and disposes its compiled Kage
// shader unless a linked program still uses it.
func (d *Device) DeleteShader(s gfx.Shader) {
	obj, ok := d.shaders[s]
	if !ok {
		return
	}
	delete(d.shaders, s)
	if obj.kage == nil {
		return
	}
	var linked []*ebiten.Shader
	for _, prog := range d.programs {
		if prog.linked {
			linked = append(linked, prog.kage)
		}
	}
	if releasable(obj.kage, linked) {
		obj.kage.Dispose()
	}
}

func (d *Device) CreateProgram() gfx.Program {
	p := gfx.Program(d.id())
	d.programs[p] = &programObj{values: map[string]any{}}
	return p
}

func (d *Device) AttachShader(p gfx.Program, s gfx.Shader) {
	prog, ok := d.programs[p]
	obj, ok2 := d.shaders[s]
	if ok && ok2 {
		prog.shaders = append(prog.shaders, obj)
	}
}

func (d *Device) LinkProgram(p gfx.Program) {
	prog, ok := d.programs[p]
	if !ok {
		return
	}
	prog.linked = false
	var vert, frag *shaderObj
	for _, s := range prog.shaders {
		switch s.stage {
		case gfx.VertexShader:
			vert = s
		case gfx.FragmentShader:
			frag = s
		}
	}
	switch {
	case vert == nil || !vert.compiled:
		prog.log = "no compiled vertex stage attached"
		return
	case frag == nil || !frag.compiled:
		prog.log = "no compiled fragment stage attached"
		return
	}
	prog.attribs = vert.attribs
	prog.uniforms = frag.uniforms
	prog.kage = frag.kage
	prog.linked = true
	prog.log = ""
}

func (d *Device) LinkStatus(p gfx.Program) bool {
	prog, ok := d.programs[p]
	return ok && prog.linked
}

func (d *Device) ProgramInfoLog(p gfx.Program) string {
	if prog, ok := d.programs[p]; ok {
		return prog.log
	}
	return ""
}

func (d *Device) DeleteProgram(p gfx.Program) {
	if prog, ok := d.programs[p]; ok && prog.kage != nil {
		prog.kage.Dispose()
	}
	delete(d.programs, p)
	if d.current == p {
		d.current = 0
	}
}

func (d *Device) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	prog, ok := d.programs[p]
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

func (d *Device) GetUniformLocation(p gfx.Program, name string) gfx.Uniform {
	prog, ok := d.programs[p]
	if !ok || !prog.linked {
		return gfx.NoUniform
	}
	i := ResolveUniform(prog.uniforms, name)
	if i < 0 {
		return gfx.NoUniform
	}
	return gfx.Uniform(i)
}

func (d *Device) CreateBuffer() gfx.Buffer {
	b := gfx.Buffer(d.id())
	d.buffers[b] = nil
	return b
}

func (d *Device) BindBuffer(target gfx.Enum, b gfx.Buffer) {
	if target == gfx.ArrayBuffer {
		d.arrayBuffer = b
	}
}

func (d *Device) BufferData(target gfx.Enum, data []float32, usage gfx.Enum) {
	if target != gfx.ArrayBuffer || !d.arrayBuffer.Valid() {
		return
	}
	d.buffers[d.arrayBuffer] = append([]float32(nil), data...)
}

func (d *Device) ClearColor(r, g, b, a float32) { d.clear = [4]float32{r, g, b, a} }
func (d *Device) ClearDepthf(v float32)         { d.depth = v }
func (d *Device) DepthFunc(fn gfx.Enum)         { d.depthFunc = fn }

func (d *Device) Enable(capability gfx.Enum) {
	if capability == gfx.DepthTest {
		d.depthTest = true
	}
}

func (d *Device) Clear(mask gfx.Enum) {
	if d.target == nil || mask&gfx.ColorBufferBit == 0 {
		return
	}
	d.target.Fill(color.NRGBA64{
		R: toUint16(d.clear[0]),
		G: toUint16(d.clear[1]),
		B: toUint16(d.clear[2]),
		A: toUint16(d.clear[3]),
	})
}

func (d *Device) VertexAttribPointer(a gfx.Attrib, size int, ty gfx.Enum, normalized bool, stride, offset int) {
	if !a.Valid() || ty != gfx.Float || size < 2 {
		return
	}
	d.attribs.set(a, d.arrayBuffer, size, stride, offset)
}

func (d *Device) EnableVertexAttribArray(a gfx.Attrib) {
	d.attribs.enable(a)
}

func (d *Device) UseProgram(p gfx.Program) {
	if prog, ok := d.programs[p]; ok && prog.linked {
		d.current = p
	}
}

func (d *Device) Uniform1f(u gfx.Uniform, v float32) {
	d.setUniform(u, v)
}

func (d *Device) Uniform2f(u gfx.Uniform, v0, v1 float32) {
	d.setUniform(u, []float32{v0, v1})
}

func (d *Device) setUniform(u gfx.Uniform, v any) {
	prog, ok := d.programs[d.current]
	if !ok || !u.Valid() || int(u) >= len(prog.uniforms) {
		return
	}
	prog.values[prog.uniforms[u]] = v
}

// DrawArrays draws a triangle strip read from the enabled position attribute
// as indexed triangles with the current program's Kage shader.
func (d *Device) DrawArrays(mode gfx.Enum, first, count int) {
	prog, ok := d.programs[d.current]
	if !ok || d.target == nil || mode != gfx.TriangleStrip {
		return
	}
	positions, err := d.attribs.positions(d.buffers, first, count)
	if err != nil {
		core.Logger().Warn("draw skipped", "err", err)
		return
	}

	bounds := d.target.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	d.vertices = d.vertices[:0]
	for i := 0; i < len(positions); i += 2 {
		x, y := ClipToPixel(positions[i], positions[i+1], w, h)
		d.vertices = append(d.vertices, ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: x, SrcY: y,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}
	op := &ebiten.DrawTrianglesShaderOptions{Uniforms: prog.values}
	d.target.DrawTrianglesShader(d.vertices, StripIndices(count), prog.kage, op)
}

func toUint16(v float32) uint16 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xffff
	}
	return uint16(v * 0xffff)
}

var _ gfx.Context = (*Device)(nil)
