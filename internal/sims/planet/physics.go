package planet

import (
	"math"
	"sort"

	"cube-planet/internal/cube"
)

func (s *Surface) updateCell(p cube.Position) {
	c := s.cell(p)

	s.updateTemperature(p, c)
	s.applyThresholds(c)
	s.updateLiquid(p, c)
	s.updateGas(p, c)
}

// solarStrength is 1 on the equator and falls to 0 at the poles.
func solarStrength(latitude float64) float64 {
	angle := math.Pi/2 + latitude*math.Pi/2
	return math.Sin(angle)
}

func (s *Surface) updateTemperature(p cube.Position, c *Cell) {
	params := s.cfg.Params
	scale := 16 / float64(s.topo.Size())

	solar := solarStrength(s.topo.Latitude(p)) * params.SolarEnergy * scale

	surface := 1.1
	if c.LiquidDepth > 0 {
		surface = 0.9
	}
	// Only the ground counts: liquid and ice columns are unbounded.
	elevation := 1 + c.Elevation*c.Elevation*params.ElevationRadiation
	share := params.HeatRadiation * elevation * c.Material.props().emissivity * surface * scale
	radiation := c.Temperature * clamp(share, 0, 1)

	c.Temperature += solar - radiation

	if params.HeatConductivity <= 0 {
		return
	}
	spread := 4 + 1/params.HeatConductivity
	own := c.Temperature
	for _, n := range s.topo.Neighbors(cube.Cubical, p) {
		c.Temperature += s.prevTemp[s.topo.Index(n)] / spread
	}
	c.Temperature -= own / spread * 4
}

// applyThresholds fires the phase rules of each layer whose stable range the
// temperature has left: coating, then material, then liquid, then gas.
func (s *Surface) applyThresholds(c *Cell) {
	if c.Coating != CoatingNone && c.Temperature > c.Coating.MaxTemp() {
		s.heatCoating(c)
	}
	if c.Temperature > c.Material.MaxTemp() {
		s.meltMaterial(c)
	}
	if c.Liquid != LiquidNone && c.LiquidDepth > 0 {
		switch {
		case c.Temperature > c.Liquid.MaxTemp():
			s.heatLiquid(c)
		case c.Temperature < c.Liquid.MinTemp():
			s.coolLiquid(c)
		}
	}
	if c.Gas != GasNone && c.GasDensity > 0 && c.Temperature < c.Gas.MinTemp() {
		s.condense(c)
	}
}

func (s *Surface) heatCoating(c *Cell) {
	switch c.Coating {
	case CoatingIce:
		source := c.CoatingSource
		if source == LiquidNone {
			source = LiquidSaltWater
		}
		thickness := c.CoatingThickness
		c.clearCoating()
		s.mustAddLiquid(c, source, thickness)
	case CoatingObsidian:
		thickness := c.CoatingThickness
		c.clearCoating()
		s.mustAddLiquid(c, LiquidMoltenRock, thickness)
	case CoatingWaste:
		c.clearCoating()
	}
}

func (s *Surface) meltMaterial(c *Cell) {
	switch c.Material {
	case MaterialIgneous, MaterialSedimentary, MaterialMetamorphic, MaterialRust:
		c.ChangeElevation(-1)
		s.mustAddLiquid(c, LiquidMoltenRock, 1)
	case MaterialIce:
		c.ChangeElevation(-1)
		s.mustAddLiquid(c, LiquidFreshWater, 1)
	case MaterialMetal:
		c.ChangeElevation(-1)
		s.mustAddLiquid(c, LiquidMoltenMetal, 1)
	case MaterialMud:
		c.Material = MaterialSedimentary
	}
}

func (s *Surface) heatLiquid(c *Cell) {
	switch c.Liquid {
	case LiquidSaltWater, LiquidFreshWater:
		c.freeze()
	case LiquidMoltenRock, LiquidMoltenMetal:
		c.clearLiquid()
	}
}

func (s *Surface) coolLiquid(c *Cell) {
	switch c.Liquid {
	case LiquidSaltWater, LiquidFreshWater:
		c.freeze()
	case LiquidMoltenRock:
		c.solidify(MaterialIgneous)
	case LiquidMoltenMetal:
		c.solidify(MaterialMetal)
	}
}

// condense rains the whole gas column out as fresh water.
func (s *Surface) condense(c *Cell) {
	switch c.Gas {
	case GasWater:
		density := c.GasDensity
		c.clearGas()
		s.mustAddLiquid(c, LiquidFreshWater, density)
	}
}

func (s *Surface) updateLiquid(p cube.Position, c *Cell) {
	c.normalizeLiquid()
	if c.Liquid == LiquidNone {
		return
	}
	if s.settled(p, c) && s.warmEnoughToEvaporate(c) && s.chance(s.cfg.Params.EvaporationChance) {
		s.evaporate(c)
		return
	}
	s.flowLiquid(p)
}

// settled reports whether the liquid surface is level with all four
// neighbours.
func (s *Surface) settled(p cube.Position, c *Cell) bool {
	h := c.Height()
	for _, n := range s.topo.Neighbors(cube.Cubical, p) {
		if math.Abs(h-s.cell(n).Height()) >= s.cfg.Params.SettleTolerance {
			return false
		}
	}
	return true
}

func (s *Surface) warmEnoughToEvaporate(c *Cell) bool {
	if !c.Liquid.IsWater() {
		return false
	}
	lo, hi := c.Liquid.MinTemp(), c.Liquid.MaxTemp()
	return c.Temperature > lo+(hi-lo)*s.cfg.Params.EvaporationRangeFraction
}

func (s *Surface) evaporate(c *Cell) {
	depth := c.LiquidDepth
	c.clearLiquid()
	s.mustAddGas(c, GasWater, depth)
}

type flowTarget struct {
	cell   *Cell
	height float64
}

// flowLiquid spreads the cell's liquid over itself and its four neighbours,
// filling the lowest first. Each gap between consecutive heights is shared
// by every cell below it, which approximates levelling in a single pass.
func (s *Surface) flowLiquid(p cube.Position) {
	self := s.cell(p)
	if self.Liquid == LiquidNone || self.LiquidDepth <= 0 {
		return
	}
	kind := self.Liquid

	var targets [5]flowTarget
	for i, n := range s.topo.Neighbors(cube.Cubical, p) {
		nc := s.cell(n)
		h := nc.Elevation + nc.CoatingThickness
		if nc.Liquid == kind {
			h += nc.LiquidDepth
		}
		targets[i] = flowTarget{cell: nc, height: h}
	}
	targets[4] = flowTarget{cell: self, height: self.Elevation + self.CoatingThickness}

	sort.SliceStable(targets[:], func(i, j int) bool {
		return targets[i].height < targets[j].height
	})

	var gaps [5]float64
	for i := 0; i < 4; i++ {
		gaps[i] = targets[i+1].height - targets[i].height
	}
	gaps[4] = math.Inf(1)

	remaining := self.LiquidDepth
	for i, t := range targets {
		change := math.Min(remaining, gaps[i]) / float64(i+1)
		if t.cell != self && change > 0 {
			s.mustAddLiquid(t.cell, kind, change)
			self.LiquidDepth -= change
		}
		remaining -= gaps[i]
		if remaining <= 0 {
			break
		}
	}
	self.normalizeLiquid()
}
