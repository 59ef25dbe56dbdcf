package powder

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a display color in ARGB form. Alpha is a fraction in [0, 1]; the
// channels are in [0, 255].
type Color struct {
	A       float64
	R, G, B int
}

// NewColor validates the components and returns the color.
func NewColor(alpha float64, r, g, b int) (Color, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return Color{}, fmt.Errorf("%w: alpha %v not in [0.0, 1.0]", ErrInvalidColor, alpha)
	}
	for _, ch := range []struct {
		name string
		v    int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if ch.v < 0 || ch.v > 255 {
			return Color{}, fmt.Errorf("%w: %s %d not in [0, 255]", ErrInvalidColor, ch.name, ch.v)
		}
	}
	return Color{A: alpha, R: r, G: g, B: b}, nil
}

// RGBA converts to a non-premultiplied 8-bit color with alpha scaled to [0, 255].
func (c Color) RGBA() color.RGBA {
	a := uint8(math.Round(c.A * 255))
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: a}
}
