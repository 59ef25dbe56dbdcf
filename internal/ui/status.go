package ui

import (
	"fmt"
	"strings"

	"sandca/internal/core"
)

var statusKeys = []string{"tick", "brush", "brush_radius"}

// StatusLine summarizes the sim parameters in one line.
func StatusLine(sim core.Sim, paused bool) string {
	parts := []string{sim.Name()}
	if paused {
		parts = append(parts, "PAUSED")
	}
	if p, ok := sim.(core.ParameterProvider); ok {
		snap := p.Parameters()
		for _, key := range statusKeys {
			if v, ok := snap.Lookup(key); ok {
				parts = append(parts, fmt.Sprintf("%s=%s", key, v))
			}
		}
	}
	if r, ok := sim.(interface{ Err() error }); ok && r.Err() != nil {
		parts = append(parts, "error: "+r.Err().Error())
	}
	return strings.Join(parts, " ")
}
