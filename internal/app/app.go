//go:build ebiten

package app

import (
	"log"

	"shaderquad/internal/core"
	"shaderquad/internal/gfx/kage"
	"shaderquad/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the driver to the ebiten.Game interface. The first Update is
// the load signal that runs setup; every Draw after a requested frame is a
// tick.
type Game struct {
	device  *kage.Device
	driver  *Driver
	overlay *ui.Overlay
	clock   *core.Clock

	size      core.Size
	cursor    cursorTracker
	loaded    bool
	scheduled bool
}

// New constructs a Game for the provided configuration and shader sources.
func New(cfg *Config, src Sources) *Game {
	g := &Game{
		device:  kage.NewDevice(),
		overlay: ui.NewOverlay(cfg.Overlay),
		size:    cfg.Size(),
	}
	g.driver = NewDriver(g.device, src, g.size, Options{
		Bindings: cfg.Bindings,
		Reporter: ReporterFunc(func(err error) {
			log.Printf("setup failed: %v", err)
			g.overlay.ShowError(err)
		}),
		Scheduler: SchedulerFunc(func() { g.scheduled = true }),
	})
	return g
}

// Update handles input and, on the first call, sets up the driver.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !g.loaded {
		g.loaded = true
		if err := g.driver.Setup(); err == nil {
			g.clock = core.NewClock()
			g.scheduled = true
		}
	}
	g.overlay.Update()

	if x, y := ebiten.CursorPosition(); g.cursor.Poll(x, y) {
		g.driver.PointerMoved(float32(x), float32(y))
	}
	return nil
}

// Draw runs a driver tick when one was requested.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.scheduled {
		g.scheduled = false
		g.device.SetTarget(screen)
		g.driver.Tick(g.clock.Elapsed())
	}
	g.overlay.Draw(screen, ui.Status{
		State: g.driver.State().String(),
		FPS:   ebiten.ActualFPS(),
		Frame: g.driver.Frame(),
		Err:   g.driver.Err(),
	})
}

// Layout uses the window size as the surface size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := core.Size{W: outsideWidth, H: outsideHeight}
	if size != g.size && size.W > 0 && size.H > 0 {
		g.size = size
		g.driver.Resize(size)
	}
	return g.size.W, g.size.H
}
