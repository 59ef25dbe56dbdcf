package powder

import "fmt"

// Coord addresses a single cell. Y grows upwards; row 0 is the bottom of the grid.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

// Add offsets the coordinate by (dx, dy).
func (c Coord) Add(dx, dy int) Coord { return Coord{X: c.X + dx, Y: c.Y + dy} }

// In reports whether the coordinate lies inside a w*h grid.
func (c Coord) In(w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}

func (c Coord) String() string { return fmt.Sprintf("(%d; %d)", c.X, c.Y) }

// Gravity offsets.
const (
	down  = -1
	left  = -1
	right = 1
)
