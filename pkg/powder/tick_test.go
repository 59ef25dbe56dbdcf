package powder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandca/pkg/core"
)

func tickN(t *testing.T, g *Grid, r Rand, n int) *Grid {
	t.Helper()
	e := NewEngine(r)
	for i := 0; i < n; i++ {
		next, err := e.Step(g)
		require.NoError(t, err, "tick %d", i)
		g = next
	}
	return g
}

func TestIsolatedStoneNeverMoves(t *testing.T) {
	g := parseGrid(t,
		".....",
		".....",
		"..#..",
		".....",
		".....",
	)
	got := tickN(t, g, script(t), 50)
	assert.True(t, got.Equal(g), "stone moved:\n%s", got)
}

func TestSandFallsOneRowPerTick(t *testing.T) {
	g, err := NewGrid(3, 6, nil)
	require.NoError(t, err)
	g, err = g.WithCell(C(1, 5), Sand)
	require.NoError(t, err)

	e := NewEngine(script(t))
	for y := 4; y >= 0; y-- {
		g, err = e.Step(g)
		require.NoError(t, err)
		k, err := g.Get(C(1, y))
		require.NoError(t, err)
		require.Equal(t, Sand, k, "expected sand at row %d:\n%s", y, g)
		require.Equal(t, 1, g.Count()[Sand])
	}

	rest := tickN(t, g, script(t), 10)
	assert.True(t, rest.Equal(g), "sand kept moving on the floor:\n%s", rest)
}

func TestSandSlidesDiagonallyOffStone(t *testing.T) {
	start := func() *Grid {
		return parseGrid(t,
			".:.",
			".#.",
		)
	}

	left, err := Tick(start(), script(t, false))
	require.NoError(t, err)
	assert.Equal(t, layout("...", ":#."), left.String())

	right, err := Tick(start(), script(t, true))
	require.NoError(t, err)
	assert.Equal(t, layout("...", ".#:"), right.String())
}

func TestDiagonalSlideReproducibleWithSeed(t *testing.T) {
	g := parseGrid(t,
		".:.",
		".#.",
	)
	for seed := int64(0); seed < 16; seed++ {
		a, err := Tick(g, core.NewRNG(seed))
		require.NoError(t, err)
		b, err := Tick(g, core.NewRNG(seed))
		require.NoError(t, err)
		require.True(t, a.Equal(b), "seed %d not reproducible", seed)

		require.Equal(t, Stone, a.At(1, 0))
		require.Equal(t, Void, a.At(1, 1), "sand stayed in place with seed %d", seed)
		landed := a.At(0, 0) == Sand || a.At(2, 0) == Sand
		require.True(t, landed, "sand missing from both diagonals with seed %d:\n%s", seed, a)
	}
}

func TestDiagonalSlideNeedsBothSides(t *testing.T) {
	// Right side blocked: slide-diagonally fails, slide-left applies.
	g := parseGrid(t,
		".:.",
		".##",
	)
	got, err := Tick(g, script(t))
	require.NoError(t, err)
	assert.Equal(t, layout("...", ":##"), got.String())

	// Left side blocked: slide-right applies.
	g = parseGrid(t,
		".:.",
		"##.",
	)
	got, err = Tick(g, script(t))
	require.NoError(t, err)
	assert.Equal(t, layout("...", "##:"), got.String())
}

func TestDiagonalSlideBlockedByGridEdge(t *testing.T) {
	g := parseGrid(t,
		":.",
		"#.",
	)
	got, err := Tick(g, script(t))
	require.NoError(t, err)
	assert.Equal(t, layout("..", "#:"), got.String())
}

func TestWaterFlowsHorizontally(t *testing.T) {
	g := parseGrid(t, ".~.")

	left, err := Tick(g, script(t, false))
	require.NoError(t, err)
	assert.Equal(t, layout("~.."), left.String())

	right, err := Tick(g, script(t, true))
	require.NoError(t, err)
	assert.Equal(t, layout("..~"), right.String())

	onlyLeft, err := Tick(parseGrid(t, ".~#"), script(t))
	require.NoError(t, err)
	assert.Equal(t, layout("~.#"), onlyLeft.String())

	onlyRight, err := Tick(parseGrid(t, "#~."), script(t))
	require.NoError(t, err)
	assert.Equal(t, layout("#.~"), onlyRight.String())
}

func TestSandDoesNotFlowSideways(t *testing.T) {
	g := parseGrid(t, ".:.")
	got, err := Tick(g, script(t))
	require.NoError(t, err)
	assert.True(t, got.Equal(g))
}

func TestSandSinksThroughWater(t *testing.T) {
	g := parseGrid(t,
		":",
		"~",
	)
	got, err := Tick(g, script(t))
	require.NoError(t, err)
	assert.Equal(t, layout("~", ":"), got.String())

	column := parseGrid(t,
		":",
		":",
		"~",
		"~",
	)
	settled := tickN(t, column, script(t), 10)
	assert.Equal(t, layout("~", "~", ":", ":"), settled.String())
}

func TestWaterDoesNotDisplaceSand(t *testing.T) {
	g := parseGrid(t,
		"~",
		":",
	)
	got := tickN(t, g, script(t), 5)
	assert.True(t, got.Equal(g))
}

func TestEqualDensityDoesNotDisplace(t *testing.T) {
	g := parseGrid(t,
		":",
		":",
		"~",
		"~",
	)
	got, err := Tick(g, script(t))
	require.NoError(t, err)
	// Only the lower sand sinks; sand never swaps with sand, water never with water.
	assert.Equal(t, layout(":", "~", ":", "~"), got.String())
}

func TestSandSinksThroughWaterIntoDeeperPool(t *testing.T) {
	g := parseGrid(t,
		".:.",
		"~~~",
		"~~~",
	)
	got := tickN(t, g, core.NewRNG(3), 8)
	assert.Equal(t, Sand, got.At(1, 0), "sand did not reach the bottom:\n%s", got)
	assert.Equal(t, map[Kind]int{Sand: 1, Water: 6, Void: 2}, got.Count())
}

func TestCellMovesAtMostOncePerTick(t *testing.T) {
	g := parseGrid(t,
		":",
		".",
		".",
	)
	got, err := Tick(g, script(t))
	require.NoError(t, err)
	assert.Equal(t, layout(".", ":", "."), got.String())
}

func TestContestedTargetGoesToFirstVisitedMover(t *testing.T) {
	g := parseGrid(t,
		":.:",
		"#.#",
	)
	got, err := Tick(g, script(t))
	require.NoError(t, err)
	assert.Equal(t, layout("..:", "#:#"), got.String())
}

func TestTickDoesNotMutateInput(t *testing.T) {
	g := parseGrid(t,
		":~:~",
		"~..:",
		"#..=",
	)
	before := g.Clone()
	_, err := Tick(g, core.NewRNG(11))
	require.NoError(t, err)
	assert.True(t, g.Equal(before))
}

func TestTickConservesMass(t *testing.T) {
	rng := core.NewRNG(2024)
	kinds := Kinds()
	g, err := NewGrid(24, 18, func(Coord) Kind {
		return kinds[rng.IntN(len(kinds))]
	})
	require.NoError(t, err)
	want := g.Count()

	e := NewEngine(rng)
	for i := 0; i < 200; i++ {
		g, err = e.Step(g)
		require.NoError(t, err)
		require.Equal(t, want, g.Count(), "tick %d changed the census", i)
	}
}

func TestTickIsDeterministicForSeed(t *testing.T) {
	rng := core.NewRNG(5)
	kinds := Kinds()
	start, err := NewGrid(16, 16, func(Coord) Kind {
		return kinds[rng.IntN(len(kinds))]
	})
	require.NoError(t, err)

	a := tickN(t, start, core.NewRNG(77), 40)
	b := tickN(t, start, core.NewRNG(77), 40)
	assert.True(t, a.Equal(b))
}

func TestTickRejectsCorruptCell(t *testing.T) {
	g := &Grid{w: 2, h: 2, cells: []Kind{Void, Sand, Kind(42), Void}}
	out, err := Tick(g, script(t))
	assert.ErrorIs(t, err, ErrCorruptCell)
	assert.ErrorContains(t, err, "(0; 1)")
	assert.Nil(t, out)

	short := &Grid{w: 2, h: 2, cells: []Kind{Void}}
	_, err = Tick(short, script(t))
	assert.ErrorIs(t, err, ErrCorruptCell)
}

func TestTickRejectsEmptyGrid(t *testing.T) {
	_, err := Tick(&Grid{}, script(t))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = Tick(nil, script(t))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestEngineReusesScratchAcrossSizes(t *testing.T) {
	e := NewEngine(core.NewRNG(1))
	big, err := NewGrid(8, 8, nil)
	require.NoError(t, err)
	_, err = e.Step(big)
	require.NoError(t, err)

	small := parseGrid(t, ":", ".")
	got, err := e.Step(small)
	require.NoError(t, err)
	assert.Equal(t, layout(".", ":"), got.String())
}

func TestNilRandUsesGlobalSource(t *testing.T) {
	g := parseGrid(t, ".:.", ".#.")
	got, err := Tick(g, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Count()[Sand])
	assert.Equal(t, Void, got.At(1, 1))
}
