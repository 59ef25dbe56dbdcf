package render

import "image/color"

// FillPalette converts cell values into RGBA pixels in buf using a palette.
// Values past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black. buf must hold 4 bytes per
// cell.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Premultiply converts a straight-alpha color into the premultiplied form
// expected by GPU-backed images.
func Premultiply(c color.RGBA) color.RGBA {
	if c.A == 255 {
		return c
	}
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

// PremultipliedPalette applies Premultiply to every entry.
func PremultipliedPalette(palette []color.RGBA) []color.RGBA {
	out := make([]color.RGBA, len(palette))
	for i, c := range palette {
		out[i] = Premultiply(c)
	}
	return out
}
