package powder

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Materials []materialEntry `yaml:"materials"`
}

type materialEntry struct {
	Kind    Kind    `yaml:"kind"`
	Density float64 `yaml:"density"`
	Color   struct {
		Alpha float64 `yaml:"alpha"`
		Red   int     `yaml:"red"`
		Green int     `yaml:"green"`
		Blue  int     `yaml:"blue"`
	} `yaml:"color"`
	Rules []Rule `yaml:"rules"`
}

// parseCatalog decodes a catalog document. Entries must appear exactly once
// each and in Kind order, and void must have density zero.
func parseCatalog(data []byte) ([]Material, error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding material catalog: %w", err)
	}
	if len(file.Materials) != int(numKinds) {
		return nil, fmt.Errorf("material catalog has %d entries, want %d", len(file.Materials), numKinds)
	}

	out := make([]Material, numKinds)
	for i, entry := range file.Materials {
		if entry.Kind != Kind(i) {
			return nil, fmt.Errorf("material catalog entry %d is %v, want %v", i, entry.Kind, Kind(i))
		}
		col, err := NewColor(entry.Color.Alpha, entry.Color.Red, entry.Color.Green, entry.Color.Blue)
		if err != nil {
			return nil, fmt.Errorf("material %v: %w", entry.Kind, err)
		}
		if entry.Density < 0 {
			return nil, fmt.Errorf("material %v: negative density %v", entry.Kind, entry.Density)
		}
		out[i] = Material{
			Kind:    entry.Kind,
			Density: entry.Density,
			Color:   col,
			Rules:   append([]Rule(nil), entry.Rules...),
		}
	}
	if out[Void].Density != 0 {
		return nil, fmt.Errorf("material %v must have density 0, got %v", Void, out[Void].Density)
	}
	return out, nil
}

func mustLoadCatalog(data []byte) []Material {
	mats, err := parseCatalog(data)
	if err != nil {
		panic(err)
	}
	return mats
}
