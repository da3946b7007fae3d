//go:build ebiten

package ui

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 16
	margin     = 8
)

// Overlay draws frame diagnostics over the shader output. A setup error is
// always shown, regardless of visibility.
type Overlay struct {
	visible bool
	err     error
	panel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(visible bool) *Overlay {
	o := &Overlay{visible: visible}
	o.panel = ebiten.NewImage(1, 1)
	o.panel.Fill(color.RGBA{A: 0xa0})
	return o
}

// ShowError pins err on screen.
func (o *Overlay) ShowError(err error) { o.err = err }

// Update toggles visibility on F1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, st Status) {
	if o.err != nil {
		st.Err = o.err
	}
	if !o.visible && st.Err == nil {
		return
	}
	lines := st.Lines()
	clr := color.Color(color.White)
	if st.Err != nil {
		lines = wrap(lines, (screen.Bounds().Dx()-2*margin)/7)
		clr = color.RGBA{R: 0xff, G: 0x60, B: 0x60, A: 0xff}
	}

	width := 0
	for _, l := range lines {
		if w := utf8.RuneCountInString(l) * 7; w > width {
			width = w
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*margin), float64(len(lines)*lineHeight+margin))
	screen.DrawImage(o.panel, op)

	for i, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, margin, margin+lineHeight*i+8, clr)
	}
}
