//go:build !ebiten

package app

import (
	"errors"

	"sandca/internal/core"
)

// ErrNoGUI is returned by the headless build in place of a window.
var ErrNoGUI = errors.New("app: GUI support requires building with the 'ebiten' tag")

// Game keeps the sim so headless builds can still be wired and stepped.
type Game struct {
	sim core.Sim
}

// New returns a Game that cannot open a window.
func New(sim core.Sim, _ int, _ int64) *Game { return &Game{sim: sim} }

// Reset forwards to the sim.
func (g *Game) Reset(seed int64) { g.sim.Reset(seed) }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
