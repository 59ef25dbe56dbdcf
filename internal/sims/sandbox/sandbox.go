package sandbox

import (
	"fmt"

	"sandca/internal/core"
	pcore "sandca/pkg/core"
	"sandca/pkg/powder"
)

// World adapts a powder grid to the core.Sim contract and keeps the brush
// state used by the front ends.
type World struct {
	cfg Config

	grid    *powder.Grid
	engine  *powder.Engine
	rng     *pcore.RNG
	display *core.ByteGrid

	brush  powder.Kind
	radius int
	ticks  int
	seed   int64
	err    error
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options and
// seeded with cfg.Seed. An invalid config leaves the world in an error state
// reported by Err.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:     cfg,
		brush:   cfg.Brush,
		radius:  cfg.BrushRadius,
		display: core.NewByteGrid(cfg.Width, cfg.Height),
	}
	if err := cfg.Validate(); err != nil {
		w.err = err
		return w
	}
	w.Reset(cfg.Seed)
	return w
}

// failedWorld reports err from Err until the next successful Reset.
func failedWorld(err error) *World {
	cfg := DefaultConfig()
	return &World{
		cfg:     cfg,
		brush:   cfg.Brush,
		radius:  cfg.BrushRadius,
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		err:     err,
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sandbox" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.display.W, H: w.display.H} }

// Cells exposes the display buffer, one powder.Kind per cell, top row first.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Grid returns the current grid. Callers must not rely on it staying current
// after the next Step or Paint.
func (w *World) Grid() *powder.Grid { return w.grid }

// Seed returns the seed the current grid was built from.
func (w *World) Seed() int64 { return w.seed }

// Ticks reports how many steps ran since the last Reset.
func (w *World) Ticks() int { return w.ticks }

// Err returns the error that stopped the world, if any.
func (w *World) Err() error { return w.err }

// Counts returns the number of cells per material.
func (w *World) Counts() map[powder.Kind]int {
	if w.grid == nil {
		return map[powder.Kind]int{}
	}
	return w.grid.Count()
}

// Reset rebuilds the configured scenario. A zero seed reuses the config seed.
func (w *World) Reset(seed int64) {
	if err := w.cfg.Validate(); err != nil {
		w.err = err
		return
	}
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.seed = effective
	w.rng = pcore.NewRNG(effective)
	w.engine = powder.NewEngine(w.rng)
	w.ticks = 0
	w.err = nil

	g, err := buildScenario(w.cfg, w.rng)
	if err != nil {
		w.err = fmt.Errorf("building %s scenario: %w", w.cfg.Scenario, err)
		return
	}
	w.grid = g
	w.rebuildDisplay()
}

// Step advances the grid by one tick. After a failed tick the world stays
// frozen on the last valid grid.
func (w *World) Step() {
	if w.err != nil || w.grid == nil {
		return
	}
	next, err := w.engine.Step(w.grid)
	if err != nil {
		w.err = fmt.Errorf("tick %d: %w", w.ticks+1, err)
		return
	}
	w.grid = next
	w.ticks++
	w.rebuildDisplay()
}

// Paint stamps the selected material in a disc around the screen cell (x, y).
// Parts of the disc outside the grid are dropped.
func (w *World) Paint(x, y int) {
	w.PaintKind(x, y, w.brush)
}

// PaintKind stamps k regardless of the current selection.
func (w *World) PaintKind(x, y int, k powder.Kind) {
	if w.grid == nil {
		return
	}
	r := w.radius
	center := w.toGrid(x, y)
	var cells []powder.Coord
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			c := center.Add(dx, dy)
			if w.grid.InBounds(c) {
				cells = append(cells, c)
			}
		}
	}
	if len(cells) == 0 {
		return
	}
	next, err := w.grid.WithCells(cells, k)
	if err != nil {
		w.err = fmt.Errorf("painting %v at (%d, %d): %w", k, x, y, err)
		return
	}
	w.grid = next
	w.rebuildDisplay()
}

// SetBrushRadius changes the paint radius; negative values are clamped to 0.
func (w *World) SetBrushRadius(r int) {
	if r < 0 {
		r = 0
	}
	w.radius = r
}

// BrushRadius returns the paint radius.
func (w *World) BrushRadius() int { return w.radius }

// Options lists the paintable materials in palette order.
func (w *World) Options() []string {
	kinds := powder.Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.String()
	}
	return out
}

// Selected returns the palette index of the brush material.
func (w *World) Selected() int { return int(w.brush) }

// Select sets the brush material by palette index.
func (w *World) Select(index int) bool {
	if index < 0 || index >= len(powder.Kinds()) {
		return false
	}
	w.brush = powder.Kinds()[index]
	return true
}

// Brush returns the selected material.
func (w *World) Brush() powder.Kind { return w.brush }

// toGrid converts a screen cell to a grid coordinate. Screen row 0 is the top
// of the grid.
func (w *World) toGrid(x, y int) powder.Coord {
	return powder.Coord{X: x, Y: w.display.H - 1 - y}
}

func init() {
	core.Register("sandbox", func(opts map[string]string) core.Sim {
		cfg, err := ConfigFromOptions(opts)
		if err != nil {
			return failedWorld(err)
		}
		return NewWithConfig(cfg)
	})
}
