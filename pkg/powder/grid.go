package powder

import (
	"fmt"
	"image"
)

// Grid is a fixed-size, row-major array of materials. Row 0 is the bottom.
// A Grid is treated as immutable once built; every mutating operation returns
// a new Grid.
type Grid struct {
	w, h  int
	cells []Kind
}

// NewGrid builds a w*h grid, calling init for every coordinate in row-major
// order. A nil init fills the grid with Void.
func NewGrid(w, h int, init func(Coord) Kind) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	g := &Grid{w: w, h: h, cells: make([]Kind, w*h)}
	if init == nil {
		return g, nil
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Coord{X: x, Y: y}
			k := init(c)
			if !k.Valid() {
				return nil, fmt.Errorf("%w: initializer returned %v at %v", ErrCorruptCell, k, c)
			}
			g.cells[y*w+x] = k
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the width and height.
func (g *Grid) Size() (w, h int) { return g.w, g.h }

// InBounds reports whether c addresses a cell of g.
func (g *Grid) InBounds(c Coord) bool { return c.In(g.w, g.h) }

func (g *Grid) index(c Coord) int { return c.Y*g.w + c.X }

func (g *Grid) check(c Coord) error {
	if !c.In(g.w, g.h) {
		return fmt.Errorf("%w: %v not in [0,%d)x[0,%d)", ErrOutOfBounds, c, g.w, g.h)
	}
	return nil
}

// Get returns the material at c.
func (g *Grid) Get(c Coord) (Kind, error) {
	if err := g.check(c); err != nil {
		return 0, err
	}
	return g.cells[g.index(c)], nil
}

// At is Get without error reporting; it panics when c is out of bounds.
func (g *Grid) At(x, y int) Kind {
	k, err := g.Get(Coord{X: x, Y: y})
	if err != nil {
		panic(err)
	}
	return k
}

// WithCell returns a copy of g with the cell at c replaced by k.
func (g *Grid) WithCell(c Coord, k Kind) (*Grid, error) {
	if err := g.check(c); err != nil {
		return nil, err
	}
	if !k.Valid() {
		return nil, fmt.Errorf("%w: cannot store %v at %v", ErrCorruptCell, k, c)
	}
	out := g.Clone()
	out.cells[out.index(c)] = k
	return out, nil
}

// WithCells returns a copy of g with every listed cell set to k. Coordinates
// outside the grid fail the whole call.
func (g *Grid) WithCells(cs []Coord, k Kind) (*Grid, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: cannot store %v", ErrCorruptCell, k)
	}
	for _, c := range cs {
		if err := g.check(c); err != nil {
			return nil, err
		}
	}
	out := g.Clone()
	for _, c := range cs {
		out.cells[out.index(c)] = k
	}
	return out, nil
}

// SetCell paints k at c and returns the resulting grid.
func SetCell(g *Grid, c Coord, k Kind) (*Grid, error) { return g.WithCell(c, k) }

// Fill returns a copy of g with every in-bounds cell of r set to k. Grid
// coordinates are used: r.Min.Y is the lowest row.
func (g *Grid) Fill(r image.Rectangle, k Kind) (*Grid, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: cannot fill with %v", ErrCorruptCell, k)
	}
	r = r.Intersect(image.Rect(0, 0, g.w, g.h))
	out := g.Clone()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := out.cells[y*g.w : (y+1)*g.w]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = k
		}
	}
	return out, nil
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, cells: append([]Kind(nil), g.cells...)}
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h || len(g.cells) != len(o.cells) {
		return false
	}
	for i, k := range g.cells {
		if o.cells[i] != k {
			return false
		}
	}
	return true
}

// Cells returns a copy of the row-major cell data.
func (g *Grid) Cells() []Kind { return append([]Kind(nil), g.cells...) }

// Count returns how many cells hold each kind.
func (g *Grid) Count() map[Kind]int {
	counts := make(map[Kind]int, numKinds)
	for _, k := range g.cells {
		counts[k]++
	}
	return counts
}

// String renders the grid top row first, one rune per cell. Used in test
// failure output.
func (g *Grid) String() string {
	glyphs := [numKinds]byte{Void: '.', Water: '~', Sand: ':', Stone: '#', Iron: '='}
	buf := make([]byte, 0, (g.w+1)*g.h)
	for y := g.h - 1; y >= 0; y-- {
		for x := 0; x < g.w; x++ {
			k := g.cells[y*g.w+x]
			if k.Valid() {
				buf = append(buf, glyphs[k])
			} else {
				buf = append(buf, '?')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
