package shader

import (
	"errors"

	"shaderquad/internal/core"
	"shaderquad/internal/gfx"
)

// Bindings names the attribute and uniforms a program is expected to expose.
type Bindings struct {
	Position string `yaml:"position"`
	Pointer  string `yaml:"pointer"`
	Size     string `yaml:"size"`
	Time     string `yaml:"time"`
}

// DefaultBindings returns the names used by the bundled shaders.
func DefaultBindings() Bindings {
	return Bindings{
		Position: "aVertexPosition",
		Pointer:  "uMPos",
		Size:     "uSize",
		Time:     "uTime",
	}
}

// Program is a linked program with its slots resolved. Slots the shaders do
// not declare hold gfx.NoAttrib or gfx.NoUniform.
type Program struct {
	Handle gfx.Program

	Position gfx.Attrib
	Pointer  gfx.Uniform
	Size     gfx.Uniform
	Time     gfx.Uniform
}

// Link attaches vert and frag to a new program, links it and resolves the
// slots named by b. Both shaders must have compiled successfully.
func Link(ctx gfx.Context, vert, frag gfx.Shader, b Bindings) (*Program, error) {
	if !vert.Valid() || !frag.Valid() {
		return nil, ErrInvalidShader
	}
	p := ctx.CreateProgram()
	if !p.Valid() {
		return nil, &LinkError{Log: "could not allocate program object"}
	}
	ctx.AttachShader(p, vert)
	ctx.AttachShader(p, frag)
	ctx.LinkProgram(p)
	if !ctx.LinkStatus(p) {
		log := ctx.ProgramInfoLog(p)
		ctx.DeleteProgram(p)
		core.Logger().Error("program link failed", "log", log)
		return nil, &LinkError{Log: log}
	}

	prog := &Program{
		Handle:   p,
		Position: ctx.GetAttribLocation(p, b.Position),
		Pointer:  ctx.GetUniformLocation(p, b.Pointer),
		Size:     ctx.GetUniformLocation(p, b.Size),
		Time:     ctx.GetUniformLocation(p, b.Time),
	}
	core.Logger().Debug("program linked",
		"program", uint32(p),
		"position", int32(prog.Position),
		"pointer", int32(prog.Pointer),
		"size", int32(prog.Size),
		"time", int32(prog.Time),
	)
	return prog, nil
}

// Build compiles both stages and links them. The fragment stage is compiled
// first and both stages are always compiled, so every compile diagnostic is
// reported together. Compiled shaders are released once the program is
// linked, and on any failure nothing is left allocated.
func Build(ctx gfx.Context, vertSrc, fragSrc string, b Bindings) (*Program, error) {
	frag, fragErr := Compile(ctx, gfx.FragmentShader, fragSrc)
	vert, vertErr := Compile(ctx, gfx.VertexShader, vertSrc)
	if fragErr != nil || vertErr != nil {
		if frag.Valid() {
			ctx.DeleteShader(frag)
		}
		if vert.Valid() {
			ctx.DeleteShader(vert)
		}
		return nil, errors.Join(fragErr, vertErr)
	}
	prog, err := Link(ctx, vert, frag, b)
	ctx.DeleteShader(vert)
	ctx.DeleteShader(frag)
	if err != nil {
		return nil, err
	}
	return prog, nil
}
