// Package term runs a simulation inside a terminal using tcell. Each grid
// cell is drawn as two blank columns with the material color as background,
// with a status line under the grid.
package term

import (
	"context"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"sandca/internal/core"
	"sandca/internal/ui"
)

// cellWidth is the number of terminal columns per grid cell. Terminal cells
// are roughly twice as tall as they are wide.
const cellWidth = 2

type brushSizer interface {
	BrushRadius() int
	SetBrushRadius(int)
}

type errReporter interface {
	Err() error
}

// View draws a sim onto a tcell screen and translates input events.
type View struct {
	screen  tcell.Screen
	sim     core.Sim
	styles  []tcell.Style
	seed    int64
	paused  bool
	stepOne bool
}

// NewView binds sim to screen. The screen must already be initialized.
func NewView(screen tcell.Screen, sim core.Sim, seed int64) *View {
	v := &View{screen: screen, sim: sim, seed: seed}
	if p, ok := sim.(core.PaletteProvider); ok {
		v.styles = paletteStyles(p.Palette())
	}
	return v
}

func paletteStyles(palette []color.RGBA) []tcell.Style {
	styles := make([]tcell.Style, len(palette))
	for i, c := range palette {
		if c.A == 0 {
			styles[i] = tcell.StyleDefault
			continue
		}
		styles[i] = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return styles
}

// Paused reports whether automatic stepping is suspended.
func (v *View) Paused() bool { return v.paused }

func (v *View) style(value uint8) tcell.Style {
	if int(value) < len(v.styles) {
		return v.styles[value]
	}
	if value == 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Reverse(true)
}

// Draw renders the grid and the status line into the screen buffer and
// shows it.
func (v *View) Draw() {
	v.screen.Clear()
	size := v.sim.Size()
	cells := v.sim.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			st := v.style(cells[y*size.W+x])
			for i := 0; i < cellWidth; i++ {
				v.screen.SetContent(x*cellWidth+i, y, ' ', nil, st)
			}
		}
	}
	for i, r := range []rune(ui.StatusLine(v.sim, v.paused)) {
		v.screen.SetContent(i, size.H, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}

// HandleEvent applies one input event. It returns false when the user asked
// to quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return true
		}
		if p, ok := v.sim.(core.Painter); ok {
			x, y := ev.Position()
			p.Paint(x/cellWidth, y)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	r := ev.Rune()
	switch {
	case r == 'q':
		return false
	case r == ' ':
		v.paused = !v.paused
	case r == 'n':
		v.stepOne = true
	case r == 'r':
		v.sim.Reset(v.seed)
	case r == 's':
		v.seed++
		v.sim.Reset(v.seed)
	case r >= '1' && r <= '9':
		if sel, ok := v.sim.(core.Selector); ok {
			sel.Select(int(r - '1'))
		}
	case r == '[' || r == ']':
		if b, ok := v.sim.(brushSizer); ok {
			delta := 1
			if r == '[' {
				delta = -1
			}
			b.SetBrushRadius(b.BrushRadius() + delta)
		}
	}
	return true
}

// Advance steps the sim once unless it is paused. A pending single step runs
// even while paused.
func (v *View) Advance() {
	if v.paused && !v.stepOne {
		return
	}
	v.stepOne = false
	if r, ok := v.sim.(errReporter); ok && r.Err() != nil {
		return
	}
	v.sim.Step()
}

// Run drives the view until ctx is done or the user quits. Input is read on
// its own goroutine; stepping and drawing happen on the caller's goroutine
// at the requested ticks per second.
func Run(ctx context.Context, screen tcell.Screen, sim core.Sim, tps int, seed int64) error {
	screen.EnableMouse()
	v := NewView(screen, sim, seed)
	step := core.NewFixedStep(tps)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(step.Interval())
	defer ticker.Stop()
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case now := <-ticker.C:
			if step.ShouldStepAt(now) {
				v.Advance()
			}
			v.Draw()
			if r, ok := sim.(errReporter); ok && r.Err() != nil {
				return r.Err()
			}
		}
	}
}
