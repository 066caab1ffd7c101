package catalog

import (
	"fmt"
	"strings"
)

// PlanetType is one of the eight fixed planet categories. The type a
// planet has decides which raw resources it can supply (see ResourcePlanetMap).
type PlanetType string

const (
	PlanetBarren    PlanetType = "Barren"
	PlanetGas       PlanetType = "Gas"
	PlanetIce       PlanetType = "Ice"
	PlanetLava      PlanetType = "Lava"
	PlanetOceanic   PlanetType = "Oceanic"
	PlanetPlasma    PlanetType = "Plasma"
	PlanetStorm     PlanetType = "Storm"
	PlanetTemperate PlanetType = "Temperate"
)

// AllPlanetTypes lists every planet type in a fixed enumeration order.
// The solver's dependency-closure phase relies on this order being stable.
var AllPlanetTypes = []PlanetType{
	PlanetBarren,
	PlanetGas,
	PlanetIce,
	PlanetLava,
	PlanetOceanic,
	PlanetPlasma,
	PlanetStorm,
	PlanetTemperate,
}

// ParsePlanetType converts a planet type label into a PlanetType.
// Matching is case-insensitive so CLI input like "oceanic" works.
func ParsePlanetType(s string) (PlanetType, error) {
	for _, pt := range AllPlanetTypes {
		if strings.EqualFold(string(pt), s) {
			return pt, nil
		}
	}
	return "", fmt.Errorf("unknown planet type: %q", s)
}

// Valid reports whether the planet type is one of the eight known categories
func (pt PlanetType) Valid() bool {
	for _, known := range AllPlanetTypes {
		if pt == known {
			return true
		}
	}
	return false
}
