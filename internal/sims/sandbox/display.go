package sandbox

import (
	"image/color"

	"sandca/pkg/powder"
)

var sandboxPalette = buildPalette()

// Palette exposes the material colors indexed by powder.Kind.
func (w *World) Palette() []color.RGBA {
	return sandboxPalette
}

func buildPalette() []color.RGBA {
	kinds := powder.Kinds()
	palette := make([]color.RGBA, len(kinds))
	for i, k := range kinds {
		palette[i] = k.RGBA()
	}
	return palette
}

// rebuildDisplay copies the grid into the display buffer, flipping rows so
// the top of the grid comes first.
func (w *World) rebuildDisplay() {
	if w.grid == nil {
		w.display.Clear()
		return
	}
	gw, gh := w.grid.Width(), w.grid.Height()
	cells := w.grid.Cells()
	for y := 0; y < gh; y++ {
		row := cells[y*gw : (y+1)*gw]
		for x, k := range row {
			w.display.Set(x, gh-1-y, uint8(k))
		}
	}
}
