package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("powder", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-tps", "30", "-w", "64", "-brush", "water", "-seed", "9"}))

	assert.Equal(t, 30, cfg.TPS)
	assert.Equal(t, "sandbox", cfg.Sim)
	assert.Equal(t, map[string]string{"seed": "9", "width": "64", "brush": "water"}, cfg.SimOptions())
}

func TestSimOptionsDefaults(t *testing.T) {
	assert.Equal(t, map[string]string{"seed": "42"}, NewConfig().SimOptions())
}
