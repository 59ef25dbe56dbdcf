package app

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"sandca/internal/core"
)

type errReporter interface {
	Err() error
}

// NewSim builds the selected sim. The -config file is passed to the factory
// under the "config" option; command-line flags override its values.
func (c *Config) NewSim() (core.Sim, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		names := slices.Sorted(maps.Keys(core.Sims()))
		return nil, fmt.Errorf("unknown sim %q (have %s)", c.Sim, strings.Join(names, ", "))
	}
	opts := c.SimOptions()
	if c.Config != "" {
		opts["config"] = c.Config
	}
	sim := factory(opts)
	if r, ok := sim.(errReporter); ok && r.Err() != nil {
		return nil, fmt.Errorf("%s: %w", c.Sim, r.Err())
	}
	return sim, nil
}
