package powder

import (
	"fmt"
	"math/rand/v2"
)

// Rand supplies the coin flips that break left/right ties. *core.RNG
// satisfies it; tests can pass a scripted sequence.
type Rand interface {
	Bool() bool
}

type globalRand struct{}

func (globalRand) Bool() bool { return rand.IntN(2) == 1 }

// Engine advances grids one tick at a time. It keeps scratch space between
// calls, so a single Engine must not be used from several goroutines.
type Engine struct {
	rng     Rand
	claimed []bool
}

// NewEngine returns an engine drawing tie-breaks from r. A nil r uses the
// process-wide math/rand/v2 source.
func NewEngine(r Rand) *Engine {
	if r == nil {
		r = globalRand{}
	}
	return &Engine{rng: r}
}

// Tick returns the grid one simulation step after g. The input is not modified.
func Tick(g *Grid, r Rand) (*Grid, error) {
	return NewEngine(r).Step(g)
}

// Step computes the next grid. Every movement decision reads the state g had
// at the start of the tick; swaps are applied to a working copy that becomes
// the result. A cell takes part in at most one swap per tick.
func (e *Engine) Step(g *Grid) (*Grid, error) {
	if g == nil || g.w <= 0 || g.h <= 0 {
		return nil, fmt.Errorf("%w: cannot tick an empty grid", ErrInvalidDimensions)
	}
	if len(g.cells) != g.w*g.h {
		return nil, fmt.Errorf("%w: %d cells for %dx%d grid", ErrCorruptCell, len(g.cells), g.w, g.h)
	}
	for i, k := range g.cells {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: %v at %v", ErrCorruptCell, k, Coord{X: i % g.w, Y: i / g.w})
		}
	}

	if cap(e.claimed) < len(g.cells) {
		e.claimed = make([]bool, len(g.cells))
	} else {
		e.claimed = e.claimed[:len(g.cells)]
		clear(e.claimed)
	}

	out := g.Clone()
	t := pass{
		w:       g.w,
		h:       g.h,
		snap:    g.cells,
		work:    out.cells,
		claimed: e.claimed,
		rng:     e.rng,
	}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			t.visit(x, y)
		}
	}
	return out, nil
}

// pass holds the state of a single tick.
type pass struct {
	w, h    int
	snap    []Kind
	work    []Kind
	claimed []bool
	rng     Rand
}

func (t *pass) visit(x, y int) {
	i := y*t.w + x
	if t.claimed[i] {
		// Already displaced this tick.
		return
	}
	m := &catalog[t.snap[i]]
	for _, r := range m.Rules {
		if t.try(r, x, y, m.Density) {
			return
		}
	}
}

func (t *pass) try(r Rule, x, y int, density float64) bool {
	switch r {
	case FallStraight:
		return t.move(x, y, x, y+down, density)
	case SlideDiagonally:
		return t.moveEither(x, y, x+left, y+down, x+right, y+down, density)
	case SlideLeft:
		return t.move(x, y, x+left, y+down, density)
	case SlideRight:
		return t.move(x, y, x+right, y+down, density)
	case FlowHorizontal:
		return t.moveEither(x, y, x+left, y, x+right, y, density)
	case FlowLeft:
		return t.move(x, y, x+left, y, density)
	case FlowRight:
		return t.move(x, y, x+right, y, density)
	}
	return false
}

// open reports whether a mover of the given density may swap into (x, y).
func (t *pass) open(x, y int, density float64) bool {
	if x < 0 || x >= t.w || y < 0 || y >= t.h {
		return false
	}
	i := y*t.w + x
	return !t.claimed[i] && catalog[t.snap[i]].Density < density
}

func (t *pass) move(x, y, tx, ty int, density float64) bool {
	if !t.open(tx, ty, density) {
		return false
	}
	t.swap(y*t.w+x, ty*t.w+tx)
	return true
}

// moveEither requires both targets to be open and then picks one at random.
func (t *pass) moveEither(x, y, ax, ay, bx, by int, density float64) bool {
	if !t.open(ax, ay, density) || !t.open(bx, by, density) {
		return false
	}
	if t.rng.Bool() {
		ax, ay = bx, by
	}
	t.swap(y*t.w+x, ay*t.w+ax)
	return true
}

func (t *pass) swap(i, j int) {
	t.work[i], t.work[j] = t.work[j], t.work[i]
	t.claimed[i] = true
	t.claimed[j] = true
}
