//go:build gl && !ebiten

package app

import (
	"log"

	"shaderquad/internal/core"
	"shaderquad/internal/gfx/mobile"

	mobileapp "golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"
)

// RunMobile runs the driver on the x/mobile event loop. Becoming visible is
// the load signal, paint events are ticks and touch events move the pointer.
// It returns only when the host tears the app down.
func RunMobile(cfg *Config, src Sources) {
	mobileapp.Main(func(a mobileapp.App) {
		device := mobile.NewDevice()
		driver := NewDriver(device, src, cfg.Size(), Options{
			Bindings: cfg.Bindings,
			Reporter: ReporterFunc(func(err error) {
				log.Printf("setup failed: %v", err)
			}),
			Scheduler: SchedulerFunc(func() {
				a.Publish()
				a.Send(paint.Event{})
			}),
		})
		var clock *core.Clock

		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, ok := e.DrawContext.(gl.Context)
					if !ok {
						continue
					}
					device.SetContext(glctx)
					frame := driver.Frame()
					device.Viewport(frame.Size.W, frame.Size.H)
					if driver.Setup() == nil && clock == nil {
						clock = core.NewClock()
					}
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					device.SetContext(nil)
				}
			case size.Event:
				driver.Resize(core.Size{W: e.WidthPx, H: e.HeightPx})
				device.Viewport(e.WidthPx, e.HeightPx)
			case touch.Event:
				driver.PointerMoved(e.X, e.Y)
			case paint.Event:
				if !device.Ready() || e.External || clock == nil {
					continue
				}
				driver.Tick(clock.Elapsed())
			}
		}
	})
}
