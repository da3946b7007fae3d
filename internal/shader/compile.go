// Package shader compiles shader stages and links them into programs with
// their attribute and uniform slots resolved.
package shader

import (
	"shaderquad/internal/core"
	"shaderquad/internal/gfx"
)

// Compile creates a shader for stage, compiles src and checks the compile
// status. On failure the shader object is deleted and the zero Shader is
// returned together with a *CompileError.
func Compile(ctx gfx.Context, stage gfx.Enum, src string) (gfx.Shader, error) {
	s := ctx.CreateShader(stage)
	if !s.Valid() {
		return 0, &CompileError{Stage: stage, Log: "could not allocate shader object"}
	}
	ctx.ShaderSource(s, src)
	ctx.CompileShader(s)
	if !ctx.CompileStatus(s) {
		log := ctx.ShaderInfoLog(s)
		ctx.DeleteShader(s)
		core.Logger().Error("shader compile failed", "stage", gfx.StageName(stage), "log", log)
		return 0, &CompileError{Stage: stage, Log: log}
	}
	core.Logger().Debug("shader compiled", "stage", gfx.StageName(stage), "shader", uint32(s))
	return s, nil
}
