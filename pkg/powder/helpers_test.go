package powder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// parseGrid builds a grid from rows given top row first, using the same
// glyphs as Grid.String.
func parseGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	require.NotEmpty(t, rows)
	h, w := len(rows), len(rows[0])
	g, err := NewGrid(w, h, func(c Coord) Kind {
		return glyphKind(t, rows[h-1-c.Y][c.X])
	})
	require.NoError(t, err)
	return g
}

func glyphKind(t *testing.T, b byte) Kind {
	t.Helper()
	switch b {
	case '.':
		return Void
	case '~':
		return Water
	case ':':
		return Sand
	case '#':
		return Stone
	case '=':
		return Iron
	}
	t.Fatalf("unknown glyph %q", b)
	return Void
}

func layout(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}

// scriptedRand replays a fixed sequence of coin flips and fails the test if
// the engine asks for more.
type scriptedRand struct {
	t     *testing.T
	draws []bool
}

func script(t *testing.T, draws ...bool) *scriptedRand {
	return &scriptedRand{t: t, draws: draws}
}

func (s *scriptedRand) Bool() bool {
	if len(s.draws) == 0 {
		s.t.Fatal("unexpected random draw")
		return false
	}
	b := s.draws[0]
	s.draws = s.draws[1:]
	return b
}
