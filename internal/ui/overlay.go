//go:build ebiten

package ui

import (
	"image/color"

	"sandca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const swatchSize = 14

// Overlay draws the material swatches and a status line on top of the
// simulation view. H toggles it.
type Overlay struct {
	sim    core.Sim
	scale  int
	hidden bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	if o.hidden {
		return
	}
	o.drawSwatches(screen)
	ebitenutil.DebugPrintAt(screen, StatusLine(o.sim, paused), 2, swatchSize+4)
}

func (o *Overlay) drawSwatches(screen *ebiten.Image) {
	sel, ok := o.sim.(core.Selector)
	if !ok {
		return
	}
	var palette []color.RGBA
	if p, ok := o.sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	for i := range sel.Options() {
		x := float32(2 + i*(swatchSize+4))
		col := color.RGBA{A: 255}
		if i < len(palette) && palette[i].A > 0 {
			col = palette[i]
		}
		vector.DrawFilledRect(screen, x, 2, swatchSize, swatchSize, col, false)
		if i == sel.Selected() {
			vector.StrokeRect(screen, x-1, 1, swatchSize+2, swatchSize+2, 2, color.White, false)
		}
	}
}
