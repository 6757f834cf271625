package planet

import (
	"fmt"
	"math"
)

// Cell is the physical state of one surface position. Each quantity is paired
// with its kind and the two are cleared together.
type Cell struct {
	Temperature float64
	Elevation   float64
	Material    Material

	Liquid      Liquid
	LiquidDepth float64

	Coating          Coating
	CoatingThickness float64
	// CoatingSource remembers which liquid froze into an ice coating so it
	// melts back into the same kind.
	CoatingSource Liquid

	Gas        Gas
	GasDensity float64
}

// Height is the top of the cell's column: ground, liquid and coating.
func (c *Cell) Height() float64 {
	return c.Elevation + c.LiquidDepth + c.CoatingThickness
}

// ChangeElevation shifts the ground, clamped to [MinElevation, MaxElevation].
func (c *Cell) ChangeElevation(amount float64) {
	c.Elevation = clamp(c.Elevation+amount, MinElevation, MaxElevation)
}

// AddLiquid pours amount of kind onto the cell. Same-kind liquid and an empty
// cell simply accumulate; anything else goes through Resolve.
func (c *Cell) AddLiquid(kind Liquid, amount float64, coin func() bool) error {
	if kind == LiquidNone || amount <= 0 {
		return nil
	}
	if c.Liquid == kind || c.Liquid == LiquidNone || c.LiquidDepth <= 0 {
		c.Liquid = kind
		c.LiquidDepth += amount
		return nil
	}
	out, err := Resolve(c.Liquid, c.LiquidDepth, kind, amount, coin)
	if err != nil {
		return err
	}
	c.Liquid = out.Liquid
	c.LiquidDepth = out.Depth
	c.normalizeLiquid()
	if out.Vapor > 0 {
		return c.AddGas(GasWater, out.Vapor)
	}
	return nil
}

// AddGas adds density of kind to the cell. Mixing two different gases is not
// modelled and reports ErrUnsupportedGasInteraction.
func (c *Cell) AddGas(kind Gas, amount float64) error {
	if kind == GasNone || amount <= 0 {
		return nil
	}
	if c.Gas != kind && c.Gas != GasNone && c.GasDensity > 0 {
		return fmt.Errorf("%w: %s into %s", ErrUnsupportedGasInteraction, kind, c.Gas)
	}
	c.Gas = kind
	c.GasDensity += amount
	return nil
}

func (c *Cell) clearLiquid() {
	c.Liquid = LiquidNone
	c.LiquidDepth = 0
}

func (c *Cell) clearCoating() {
	c.Coating = CoatingNone
	c.CoatingThickness = 0
	c.CoatingSource = LiquidNone
}

func (c *Cell) clearGas() {
	c.Gas = GasNone
	c.GasDensity = 0
}

func (c *Cell) normalizeLiquid() {
	if c.LiquidDepth <= 0 || c.Liquid == LiquidNone {
		c.clearLiquid()
	}
}

func (c *Cell) normalizeCoating() {
	if c.CoatingThickness <= 0 || c.Coating == CoatingNone {
		c.clearCoating()
	}
}

func (c *Cell) normalizeGas() {
	if c.GasDensity <= 0 || c.Gas == GasNone {
		c.clearGas()
	}
}

// freeze turns the liquid into an ice coating on top of any coating already
// present.
func (c *Cell) freeze() {
	if c.Coating != CoatingIce {
		c.CoatingSource = c.Liquid
	}
	c.Coating = CoatingIce
	c.CoatingThickness += c.LiquidDepth
	c.clearLiquid()
	c.normalizeCoating()
}

// solidify hardens molten liquid into ground of the given material.
func (c *Cell) solidify(m Material) {
	c.Material = m
	c.ChangeElevation(1)
	c.clearLiquid()
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
