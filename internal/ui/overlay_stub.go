//go:build !ebiten

package ui

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct {
	visible bool
	err     error
}

// NewOverlay constructs a stub overlay.
func NewOverlay(visible bool) *Overlay { return &Overlay{visible: visible} }

// ShowError records err.
func (o *Overlay) ShowError(err error) { o.err = err }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, Status) {}
