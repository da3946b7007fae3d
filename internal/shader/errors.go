package shader

import (
	"errors"
	"fmt"
	"strings"

	"shaderquad/internal/gfx"
)

var (
	// ErrCompile is wrapped by every CompileError.
	ErrCompile = errors.New("shader compile failed")
	// ErrLink is wrapped by every LinkError.
	ErrLink = errors.New("program link failed")
	// ErrInvalidShader is returned by Link when given a shader that did not compile.
	ErrInvalidShader = errors.New("invalid shader handle")
)

// CompileError carries the compiler diagnostic for one stage.
type CompileError struct {
	Stage gfx.Enum
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: %s", gfx.StageName(e.Stage), strings.TrimSpace(e.Log))
}

func (e *CompileError) Unwrap() error { return ErrCompile }

// LinkError carries the linker diagnostic.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "link: " + strings.TrimSpace(e.Log)
}

func (e *LinkError) Unwrap() error { return ErrLink }
