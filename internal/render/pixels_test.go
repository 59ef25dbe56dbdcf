package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"sandca/pkg/powder"
)

func TestFillPaletteUsesMaterialColors(t *testing.T) {
	palette := make([]color.RGBA, 0, len(powder.Kinds()))
	for _, k := range powder.Kinds() {
		palette = append(palette, k.RGBA())
	}
	cells := []uint8{uint8(powder.Void), uint8(powder.Sand), 200}
	buf := make([]byte, 4*len(cells))
	FillPalette(buf, cells, palette)

	assert.Equal(t, []byte{0, 0, 0, 0}, buf[0:4])
	assert.Equal(t, []byte{242, 210, 169, 255}, buf[4:8])
	iron := powder.Iron.RGBA()
	assert.Equal(t, []byte{iron.R, iron.G, iron.B, iron.A}, buf[8:12], "out-of-range values clamp to the last entry")
}

func TestFillPaletteEmptyClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	FillPalette(buf, []uint8{1, 2}, nil)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 9}, buf)
}

func TestPremultiply(t *testing.T) {
	opaque := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	assert.Equal(t, opaque, Premultiply(opaque))
	assert.Equal(t, color.RGBA{}, Premultiply(color.RGBA{R: 200, G: 100, B: 50}))
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 128}, Premultiply(color.RGBA{R: 200, G: 100, B: 50, A: 128}))

	out := PremultipliedPalette([]color.RGBA{opaque, {R: 255, A: 0}})
	assert.Equal(t, []color.RGBA{opaque, {}}, out)
}
