// Package app drives the shader loop: one-time setup followed by a draw on
// every frame tick, with pointer and resize notifications from the host.
package app

import (
	"errors"
	"fmt"
	"time"

	"shaderquad/internal/core"
	"shaderquad/internal/gfx"
	"shaderquad/internal/render"
	"shaderquad/internal/shader"
)

// ErrNotRunning is returned by Setup once an earlier setup has failed.
var ErrNotRunning = errors.New("driver setup failed earlier")

// State is the driver lifecycle state.
type State int

const (
	Uninitialized State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Sources holds the two shader stages as text.
type Sources struct {
	Vertex   string
	Fragment string
}

// Scheduler asks the host for another frame tick.
type Scheduler interface {
	RequestFrame()
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func()

func (f SchedulerFunc) RequestFrame() { f() }

// Reporter surfaces a setup failure to the user.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(error)

func (f ReporterFunc) Report(err error) { f(err) }

type logReporter struct{}

func (logReporter) Report(err error) {
	core.Logger().Error("setup failed", "err", err)
}

// Options configures a Driver. Zero fields take defaults.
type Options struct {
	Bindings  shader.Bindings
	Reporter  Reporter
	Scheduler Scheduler
}

// Driver owns the frame state and the GPU objects built at setup.
type Driver struct {
	ctx       gfx.Context
	sources   Sources
	bindings  shader.Bindings
	reporter  Reporter
	scheduler Scheduler
	renderer  *render.Renderer

	program *shader.Program
	quad    *render.Quad
	frame   core.FrameState
	state   State
	err     error
	ticks   uint64
}

// NewDriver returns an uninitialized driver for a surface of the given size.
// The pointer starts at the surface center.
func NewDriver(ctx gfx.Context, src Sources, size core.Size, opts Options) *Driver {
	if opts.Bindings == (shader.Bindings{}) {
		opts.Bindings = shader.DefaultBindings()
	}
	if opts.Reporter == nil {
		opts.Reporter = logReporter{}
	}
	return &Driver{
		ctx:       ctx,
		sources:   src,
		bindings:  opts.Bindings,
		reporter:  opts.Reporter,
		scheduler: opts.Scheduler,
		renderer:  render.NewRenderer(),
		frame:     core.NewFrameState(size),
	}
}

// Setup compiles and links the program and uploads the quad. A failure is
// reported once and is permanent: later calls return ErrNotRunning without
// touching the context.
func (d *Driver) Setup() error {
	switch {
	case d.state == Running:
		return nil
	case d.err != nil:
		return fmt.Errorf("%w: %w", ErrNotRunning, d.err)
	}

	prog, err := shader.Build(d.ctx, d.sources.Vertex, d.sources.Fragment, d.bindings)
	if err != nil {
		d.err = err
		d.reporter.Report(err)
		return err
	}
	d.program = prog
	d.quad = render.NewQuad(d.ctx)
	d.state = Running
	core.Logger().Info("driver running", "width", d.frame.Size.W, "height", d.frame.Size.H)
	return nil
}

// PointerMoved records a pointer position in host coordinates (Y down).
func (d *Driver) PointerMoved(x, y float32) {
	d.frame.MovePointer(x, y)
}

// Resize records a new surface size. The stored pointer is left as is.
func (d *Driver) Resize(size core.Size) {
	if size == d.frame.Size {
		return
	}
	d.frame.Size = size
	core.Logger().Info("surface resized", "width", size.W, "height", size.H)
}

// Tick draws one frame at time now and requests the next one. It reports
// false, and draws nothing, unless the driver is running.
func (d *Driver) Tick(now time.Duration) bool {
	if d.state != Running {
		return false
	}
	d.frame.Advance(now)
	d.renderer.Draw(d.ctx, d.program, d.quad, &d.frame)
	d.ticks++
	if d.scheduler != nil {
		d.scheduler.RequestFrame()
	}
	return true
}

// State returns the lifecycle state.
func (d *Driver) State() State { return d.state }

// Err returns the setup error, if any.
func (d *Driver) Err() error { return d.err }

// Frame returns a copy of the current frame state.
func (d *Driver) Frame() core.FrameState { return d.frame }

// Ticks returns the number of frames drawn.
func (d *Driver) Ticks() uint64 { return d.ticks }
