package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sandca/internal/core"
	"sandca/internal/sims/sandbox"
)

type bareSim struct{}

func (bareSim) Name() string    { return "bare" }
func (bareSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (bareSim) Reset(int64)     {}
func (bareSim) Step()           {}
func (bareSim) Cells() []uint8  { return []uint8{0} }

func TestStatusLine(t *testing.T) {
	world := sandbox.New(4, 4)
	world.Step()
	assert.Equal(t, "sandbox tick=1 brush=sand brush_radius=1", StatusLine(world, false))
	assert.Equal(t, "sandbox PAUSED tick=1 brush=sand brush_radius=1", StatusLine(world, true))
	assert.Equal(t, "bare", StatusLine(bareSim{}, false))
}

func TestStatusLineShowsError(t *testing.T) {
	cfg := sandbox.DefaultConfig()
	cfg.Height = -1
	world := sandbox.NewWithConfig(cfg)
	assert.Contains(t, StatusLine(world, false), "error: ")
}
