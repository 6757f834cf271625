package planet

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

const (
	MinElevation = -5.0
	MaxElevation = 5.0
)

// Material enumerates the solid ground a cell is made of.
type Material uint8

const (
	MaterialUnset Material = iota
	MaterialIgneous
	MaterialSedimentary
	MaterialMetamorphic
	MaterialIce
	MaterialMetal
	MaterialMud
	MaterialRust
)

// Liquid enumerates the liquid layer kinds.
type Liquid uint8

const (
	LiquidNone Liquid = iota
	LiquidSaltWater
	LiquidFreshWater
	LiquidMoltenRock
	LiquidMoltenMetal
)

// Coating enumerates the thin solid layer that can cover the ground.
type Coating uint8

const (
	CoatingNone Coating = iota
	CoatingIce
	CoatingObsidian
	CoatingWaste
)

// Gas enumerates the atmospheric layer kinds.
type Gas uint8

const (
	GasNone Gas = iota
	GasWater
)

type materialProps struct {
	name       string
	low, high  color.NRGBA
	maxTemp    float64
	emissivity float64
}

type liquidProps struct {
	name             string
	minTemp, maxTemp float64
	shade            liquidShade
}

type coatingProps struct {
	name      string
	low, high color.NRGBA
	maxTemp   float64
}

type gasProps struct {
	name    string
	color   color.NRGBA
	minTemp float64
}

// liquidShade colors a liquid by temperature. Depth-shaded liquids also
// blend each end toward its deep color.
type liquidShade struct {
	cold, hot         color.NRGBA
	coldDeep, hotDeep color.NRGBA
	byDepth           bool
}

var materials = [...]materialProps{
	MaterialUnset:       {name: "unset", low: rgb(0x000000), high: rgb(0xffffff), maxTemp: math.Inf(1), emissivity: 1},
	MaterialIgneous:     {name: "igneous", low: rgb(0x1b1b1b), high: rgb(0x3c3c50), maxTemp: 2000, emissivity: 1},
	MaterialSedimentary: {name: "sedimentary", low: rgb(0x96331b), high: rgb(0xc45212), maxTemp: 3000, emissivity: 0.95},
	MaterialMetamorphic: {name: "metamorphic", low: rgb(0x434357), high: rgb(0x817b73), maxTemp: 5000, emissivity: 1},
	MaterialIce:         {name: "ice", low: rgb(0xc8f2ff), high: rgb(0xffffff), maxTemp: 300, emissivity: 0.8},
	MaterialMetal:       {name: "metal", low: rgb(0x948a8a), high: rgb(0xffffff), maxTemp: 7000, emissivity: 0.6},
	MaterialMud:         {name: "mud", low: rgb(0x392b4b), high: rgb(0x833607), maxTemp: 100, emissivity: 1.05},
	MaterialRust:        {name: "rust", low: rgb(0x3d3d41), high: rgb(0xcb461e), maxTemp: 1000, emissivity: 0.9},
}

var liquids = [...]liquidProps{
	LiquidNone: {name: "none", minTemp: 0, maxTemp: 1},
	LiquidSaltWater: {name: "salt water", minTemp: 300, maxTemp: 400, shade: liquidShade{
		cold:     rgb(0x283c5a),
		hot:      rgb(0x3c8cb4),
		coldDeep: rgb(0x051428),
		hotDeep:  rgb(0x142d69),
		byDepth:  true,
	}},
	LiquidFreshWater: {name: "fresh water", minTemp: 300, maxTemp: 400, shade: liquidShade{
		cold:     rgb(0x477288),
		hot:      rgb(0x3e8686),
		coldDeep: rgb(0x1f335e),
		hotDeep:  rgb(0x274e62),
		byDepth:  true,
	}},
	LiquidMoltenRock: {name: "molten rock", minTemp: 1000, maxTemp: 10000, shade: liquidShade{
		cold: rgb(0xff2f00),
		hot:  rgb(0xff8000),
	}},
	LiquidMoltenMetal: {name: "molten metal", minTemp: 2000, maxTemp: 20000, shade: liquidShade{
		cold: rgb(0xff8000),
		hot:  rgb(0xffe285),
	}},
}

var coatings = [...]coatingProps{
	CoatingNone:     {name: "none", low: rgb(0x000000), high: rgb(0xffffff), maxTemp: math.Inf(1)},
	CoatingIce:      {name: "ice", low: rgb(0xd6efff), high: rgb(0xe5e3df), maxTemp: 300},
	CoatingObsidian: {name: "obsidian", low: rgb(0x160a23), high: rgb(0x351f4f), maxTemp: 1000},
	CoatingWaste:    {name: "waste", low: rgb(0x4b4111), high: rgb(0x6b5d1c), maxTemp: 200},
}

var gases = [...]gasProps{
	GasNone:  {name: "none", color: rgb(0x000000), minTemp: math.Inf(-1)},
	GasWater: {name: "water vapour", color: rgb(0xffffff), minTemp: 400},
}

func rgb(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func (m Material) props() materialProps {
	if int(m) >= len(materials) {
		return materials[MaterialUnset]
	}
	return materials[m]
}

func (l Liquid) props() liquidProps {
	if int(l) >= len(liquids) {
		return liquids[LiquidNone]
	}
	return liquids[l]
}

func (c Coating) props() coatingProps {
	if int(c) >= len(coatings) {
		return coatings[CoatingNone]
	}
	return coatings[c]
}

func (g Gas) props() gasProps {
	if int(g) >= len(gases) {
		return gases[GasNone]
	}
	return gases[g]
}

// MaxTemp is the temperature above which the material melts.
func (m Material) MaxTemp() float64 { return m.props().maxTemp }

// MinTemp is the lowest stable temperature of the liquid.
func (l Liquid) MinTemp() float64 { return l.props().minTemp }

// MaxTemp is the highest stable temperature of the liquid.
func (l Liquid) MaxTemp() float64 { return l.props().maxTemp }

// IsWater reports whether the liquid belongs to the water family.
func (l Liquid) IsWater() bool { return l == LiquidSaltWater || l == LiquidFreshWater }

// IsMolten reports whether the liquid belongs to the molten family.
func (l Liquid) IsMolten() bool { return l == LiquidMoltenRock || l == LiquidMoltenMetal }

// MaxTemp is the temperature above which the coating breaks down.
func (c Coating) MaxTemp() float64 { return c.props().maxTemp }

// MinTemp is the temperature below which the gas condenses.
func (g Gas) MinTemp() float64 { return g.props().minTemp }

func (m Material) String() string { return m.props().name }
func (l Liquid) String() string   { return l.props().name }
func (c Coating) String() string  { return c.props().name }
func (g Gas) String() string      { return g.props().name }

// ParseMaterial resolves a material by its lower-case name.
func ParseMaterial(s string) (Material, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, p := range materials {
		if p.name == name {
			return Material(i), nil
		}
	}
	return MaterialUnset, fmt.Errorf("planet: unknown material %q", s)
}

// UnmarshalText lets configuration files name materials.
func (m *Material) UnmarshalText(text []byte) error {
	parsed, err := ParseMaterial(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (m Material) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
