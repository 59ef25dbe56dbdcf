package sandbox

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"sandca/pkg/powder"
)

// Scenario names accepted by Config.Scenario.
const (
	ScenarioBasin = "basin"
	ScenarioEmpty = "empty"
)

// Config controls the sandbox dimensions, seeding and brush.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Scenario string `yaml:"scenario"`
	// SandChance is the probability of a sand grain per cell in the basin
	// scenario's sky band.
	SandChance float64 `yaml:"sand_chance"`

	Brush       powder.Kind `yaml:"brush"`
	BrushRadius int         `yaml:"brush_radius"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       30,
		Height:      50,
		Seed:        1337,
		Scenario:    ScenarioBasin,
		SandChance:  0.3,
		Brush:       powder.Sand,
		BrushRadius: 1,
	}
}

// Option keys accepted by FromMap and ConfigFromOptions. They match the YAML
// keys of Config; OptionConfig names a YAML file loaded before the others.
const (
	OptionConfig      = "config"
	OptionWidth       = "width"
	OptionHeight      = "height"
	OptionSeed        = "seed"
	OptionScenario    = "scenario"
	OptionSandChance  = "sand_chance"
	OptionBrush       = "brush"
	OptionBrushRadius = "brush_radius"
)

var optionKeys = []string{
	OptionConfig, OptionWidth, OptionHeight, OptionSeed, OptionScenario,
	OptionSandChance, OptionBrush, OptionBrushRadius,
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().apply(cfg)
}

// ConfigFromOptions resolves the options given to the sim factory. The file
// named by OptionConfig is read first and the remaining options override it.
// Unknown keys are rejected.
func ConfigFromOptions(opts map[string]string) (Config, error) {
	for key := range opts {
		if !slices.Contains(optionKeys, key) {
			return Config{}, fmt.Errorf("unknown sandbox option %q", key)
		}
	}
	c := DefaultConfig()
	if path := opts[OptionConfig]; path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		c = loaded
	}
	c = c.apply(opts)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) apply(cfg map[string]string) Config {
	if v, ok := cfg[OptionWidth]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg[OptionHeight]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg[OptionSeed]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg[OptionScenario]; ok {
		c.Scenario = v
	}
	if v, ok := cfg[OptionSandChance]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SandChance = parsed
		}
	}
	if v, ok := cfg[OptionBrush]; ok {
		if k, err := powder.ParseKind(v); err == nil {
			c.Brush = k
		}
	}
	if v, ok := cfg[OptionBrushRadius]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.BrushRadius = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML file on top of the defaults. Keys missing from the
// file keep their default values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading sandbox config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("parsing sandbox config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("sandbox config %s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", powder.ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.Scenario != ScenarioBasin && c.Scenario != ScenarioEmpty {
		return fmt.Errorf("unknown scenario %q", c.Scenario)
	}
	if c.SandChance < 0 || c.SandChance > 1 {
		return fmt.Errorf("sand_chance %v not in [0, 1]", c.SandChance)
	}
	if !c.Brush.Valid() {
		return fmt.Errorf("invalid brush material %v", c.Brush)
	}
	if c.BrushRadius < 0 {
		return fmt.Errorf("negative brush_radius %d", c.BrushRadius)
	}
	return nil
}
