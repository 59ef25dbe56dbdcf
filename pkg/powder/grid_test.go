package powder

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -1}, {0, 0}} {
		g, err := NewGrid(dims[0], dims[1], nil)
		assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
		assert.Nil(t, g)
	}
}

func TestNewGridVisitsRowMajor(t *testing.T) {
	var visited []Coord
	g, err := NewGrid(3, 2, func(c Coord) Kind {
		visited = append(visited, c)
		return Void
	})
	require.NoError(t, err)
	assert.Equal(t, []Coord{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}, visited)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	w, h := g.Size()
	assert.Equal(t, [2]int{3, 2}, [2]int{w, h})
}

func TestNewGridDefaultsToVoid(t *testing.T) {
	g, err := NewGrid(4, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, map[Kind]int{Void: 12}, g.Count())
}

func TestNewGridRejectsUnknownMaterial(t *testing.T) {
	_, err := NewGrid(2, 2, func(c Coord) Kind { return Kind(200) })
	assert.ErrorIs(t, err, ErrCorruptCell)
}

func TestGetOutOfBounds(t *testing.T) {
	g, err := NewGrid(4, 3, nil)
	require.NoError(t, err)

	bad := []Coord{
		{-1, 0}, {4, 0}, {3, -1},
		{0, -1}, {0, 3}, {0, 4},
		{-1, -1}, {4, 3},
	}
	for _, c := range bad {
		_, err := g.Get(c)
		assert.ErrorIs(t, err, ErrOutOfBounds, "Get%v", c)

		out, err := g.WithCell(c, Sand)
		assert.ErrorIs(t, err, ErrOutOfBounds, "WithCell%v", c)
		assert.Nil(t, out)
	}

	// Height used as an x value is still in range for a wide grid.
	_, err = g.Get(C(3, 2))
	assert.NoError(t, err)
}

func TestWithCellChangesExactlyOneCell(t *testing.T) {
	g := parseGrid(t,
		"~:#.",
		"=.:~",
		"#~.:",
	)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := C(x, y)
			next, err := g.WithCell(c, Iron)
			require.NoError(t, err)

			got, err := next.Get(c)
			require.NoError(t, err)
			require.Equal(t, Iron, got)

			for yy := 0; yy < g.Height(); yy++ {
				for xx := 0; xx < g.Width(); xx++ {
					if xx == x && yy == y {
						continue
					}
					require.Equal(t, g.At(xx, yy), next.At(xx, yy), "write at %v leaked to (%d; %d)", c, xx, yy)
				}
			}
		}
	}
}

func TestWithCellLeavesReceiverUntouched(t *testing.T) {
	g := parseGrid(t, "...", "...")
	before := g.Clone()

	next, err := SetCell(g, C(1, 1), Sand)
	require.NoError(t, err)
	assert.True(t, g.Equal(before))
	assert.False(t, next.Equal(before))
	assert.Equal(t, layout(".:.", "..."), next.String())
}

func TestWithCellRejectsUnknownMaterial(t *testing.T) {
	g, err := NewGrid(2, 2, nil)
	require.NoError(t, err)
	_, err = g.WithCell(C(0, 0), numKinds)
	assert.ErrorIs(t, err, ErrCorruptCell)
}

func TestFillClipsToGrid(t *testing.T) {
	g, err := NewGrid(4, 3, nil)
	require.NoError(t, err)

	next, err := g.Fill(image.Rect(-2, 0, 2, 1), Stone)
	require.NoError(t, err)
	assert.Equal(t, layout(
		"....",
		"....",
		"##..",
	), next.String())
	assert.Equal(t, map[Kind]int{Void: 12}, g.Count())
}

func TestEqual(t *testing.T) {
	a := parseGrid(t, ":.", "#~")
	b := parseGrid(t, ":.", "#~")
	c := parseGrid(t, ".:", "#~")
	wide := parseGrid(t, ":.#~")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(wide))
	assert.False(t, a.Equal(nil))
}

func TestCountAndCells(t *testing.T) {
	g := parseGrid(t, "::~", "#=.")
	assert.Equal(t, map[Kind]int{Sand: 2, Water: 1, Stone: 1, Iron: 1, Void: 1}, g.Count())

	cells := g.Cells()
	assert.Equal(t, []Kind{Stone, Iron, Void, Sand, Sand, Water}, cells)
	cells[0] = Void
	assert.Equal(t, Stone, g.At(0, 0), "Cells must return a copy")
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	g := parseGrid(t, "..")
	assert.Panics(t, func() { g.At(2, 0) })
}

func TestWithCellsIsAllOrNothing(t *testing.T) {
	g := parseGrid(t, "...", "...")

	next, err := g.WithCells([]Coord{{0, 0}, {2, 1}}, Water)
	require.NoError(t, err)
	assert.Equal(t, layout("..~", "~.."), next.String())

	_, err = g.WithCells([]Coord{{0, 0}, {3, 1}}, Water)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = g.WithCells([]Coord{{0, 0}}, Kind(99))
	assert.ErrorIs(t, err, ErrCorruptCell)
	assert.Equal(t, layout("...", "..."), g.String())
}

func TestCoordAddAndBounds(t *testing.T) {
	c := C(2, 3).Add(-1, -3)
	assert.Equal(t, C(1, 0), c)
	assert.True(t, c.In(2, 1))
	assert.False(t, c.Add(0, -1).In(2, 1))
	assert.Equal(t, "(1; 0)", c.String())
}
