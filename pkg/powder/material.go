package powder

import (
	_ "embed"
	"fmt"
	"image/color"
)

// Kind identifies a material. The set of kinds is closed.
type Kind uint8

const (
	Void Kind = iota
	Water
	Sand
	Stone
	Iron

	numKinds
)

var kindNames = [numKinds]string{
	Void:  "void",
	Water: "water",
	Sand:  "sand",
	Stone: "stone",
	Iron:  "iron",
}

// Material is the immutable description of a kind.
type Material struct {
	Kind    Kind
	Density float64
	Color   Color
	// Rules are tried in order; the first one that moves the cell wins.
	Rules []Rule
}

//go:embed materials.yaml
var catalogYAML []byte

var catalog = mustLoadCatalog(catalogYAML)

// Kinds returns every kind in palette order. The slice is a fresh copy.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Materials returns the full catalog in palette order.
func Materials() []Material {
	out := make([]Material, len(catalog))
	for i, m := range catalog {
		out[i] = m.clone()
	}
	return out
}

// Valid reports whether k names a catalog material.
func (k Kind) Valid() bool { return k < numKinds }

// Lookup resolves a kind to its material.
func Lookup(k Kind) (Material, bool) {
	if !k.Valid() {
		return Material{}, false
	}
	return catalog[k].clone(), true
}

// MustLookup is Lookup for kinds known to be valid. It panics otherwise.
func MustLookup(k Kind) Material {
	m, ok := Lookup(k)
	if !ok {
		panic(fmt.Sprintf("powder: no material for %v", k))
	}
	return m
}

// Material returns the catalog entry for k. It panics on an invalid kind.
func (k Kind) Material() Material { return MustLookup(k) }

// Density is a shortcut for k.Material().Density that avoids copying rules.
func (k Kind) Density() float64 {
	if !k.Valid() {
		panic(fmt.Sprintf("powder: no material for %v", k))
	}
	return catalog[k].Density
}

// RGBA returns the display color of k.
func (k Kind) RGBA() color.RGBA {
	if !k.Valid() {
		return color.RGBA{}
	}
	return catalog[k].Color.RGBA()
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind resolves a material by name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("powder: unknown material %q", name)
}

// UnmarshalText decodes a kind from its name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText encodes a kind as its name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (m Material) clone() Material {
	m.Rules = append([]Rule(nil), m.Rules...)
	return m
}
