// Package stats measures powder grids and exports per-tick samples as CSV.
package stats

import (
	"gonum.org/v1/gonum/stat"

	"sandca/pkg/powder"
)

// Sample is one measurement of a grid. Rows are counted from the bottom, so
// a falling material shows a shrinking mean row. Mean rows of absent
// materials are zero.
type Sample struct {
	Seed int64 `csv:"seed"`
	Tick int   `csv:"tick"`

	Void  int `csv:"void"`
	Water int `csv:"water"`
	Sand  int `csv:"sand"`
	Stone int `csv:"stone"`
	Iron  int `csv:"iron"`

	WaterRow float64 `csv:"water_row"`
	SandRow  float64 `csv:"sand_row"`

	// Changed counts cells whose material differs from the previous sample.
	Changed int `csv:"changed"`
}

// Measure takes a census of g. prev may be nil, in which case Changed is 0.
func Measure(seed int64, tick int, g, prev *powder.Grid) Sample {
	counts := g.Count()
	s := Sample{
		Seed:  seed,
		Tick:  tick,
		Void:  counts[powder.Void],
		Water: counts[powder.Water],
		Sand:  counts[powder.Sand],
		Stone: counts[powder.Stone],
		Iron:  counts[powder.Iron],
	}
	s.WaterRow = MeanRow(g, powder.Water)
	s.SandRow = MeanRow(g, powder.Sand)
	if prev != nil {
		s.Changed = Diff(prev, g)
	}
	return s
}

// MeanRow returns the average y of every k cell in g, or 0 if there are none.
func MeanRow(g *powder.Grid, k powder.Kind) float64 {
	w := g.Width()
	var rows []float64
	for i, cell := range g.Cells() {
		if cell == k {
			rows = append(rows, float64(i/w))
		}
	}
	if len(rows) == 0 {
		return 0
	}
	return stat.Mean(rows, nil)
}

// Diff counts the cells that differ between a and b. Grids of different
// sizes differ in every cell of the larger one.
func Diff(a, b *powder.Grid) int {
	ac, bc := a.Cells(), b.Cells()
	if a.Width() != b.Width() || len(ac) != len(bc) {
		return max(len(ac), len(bc))
	}
	n := 0
	for i := range ac {
		if ac[i] != bc[i] {
			n++
		}
	}
	return n
}
