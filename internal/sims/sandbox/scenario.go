package sandbox

import (
	"image"

	pcore "sandca/pkg/core"
	"sandca/pkg/powder"
)

// buildScenario lays out the starting grid. The basin has a water pool on the
// floor, a stone shelf in the middle, an iron bar on the upper left and a
// band of loose sand near the top.
func buildScenario(cfg Config, rng *pcore.RNG) (*powder.Grid, error) {
	w, h := cfg.Width, cfg.Height
	if cfg.Scenario == ScenarioEmpty {
		return powder.NewGrid(w, h, nil)
	}

	sky := h - h/4
	g, err := powder.NewGrid(w, h, func(c powder.Coord) powder.Kind {
		if c.Y >= sky && rng.Chance(cfg.SandChance) {
			return powder.Sand
		}
		return powder.Void
	})
	if err != nil {
		return nil, err
	}

	layers := []struct {
		rect image.Rectangle
		kind powder.Kind
	}{
		{image.Rect(w/2, 0, w, max(1, h/6)), powder.Water},
		{image.Rect(w/4, h/3, w-w/4, h/3+1), powder.Stone},
		{image.Rect(0, 2*h/3, w/3, 2*h/3+1), powder.Iron},
	}
	for _, l := range layers {
		if g, err = g.Fill(l.rect, l.kind); err != nil {
			return nil, err
		}
	}
	return g, nil
}
