package planet

import (
	"math"
	"testing"

	"cube-planet/internal/cube"
	"cube-planet/pkg/core"
)

func TestFlowFillsDepression(t *testing.T) {
	s := NewSurface(quietConfig(4))
	for i := range s.cells {
		s.cells[i].Liquid = LiquidSaltWater
		s.cells[i].LiquidDepth = 1
	}
	center := pos(cube.FaceFront, 2, 2)
	s.cell(center).Elevation = -2

	neighbors := s.topo.Neighbors(cube.Cubical, center)
	involved := append([]cube.Position{center}, neighbors[:]...)
	before := 0.0
	for _, p := range involved {
		before += s.cell(p).LiquidDepth
	}

	for _, n := range neighbors {
		s.flowLiquid(n)
	}

	after := 0.0
	for _, p := range involved {
		after += s.cell(p).LiquidDepth
	}
	if math.Abs(after-before) > 1e-9 {
		t.Fatalf("depth across the five cells changed: %.6f -> %.6f", before, after)
	}
	if got := s.cell(center).LiquidDepth; got != 2 {
		t.Fatalf("center depth = %.3f, want 2", got)
	}
	// The cell above drains first; once the center is level with the others
	// nothing else moves.
	if got := s.cell(pos(cube.FaceFront, 2, 1)).LiquidDepth; got != 0 {
		t.Fatalf("upper neighbour depth = %.3f, want 0", got)
	}
	for _, p := range []cube.Position{pos(cube.FaceFront, 3, 2), pos(cube.FaceFront, 2, 3), pos(cube.FaceFront, 1, 2)} {
		if got := s.cell(p).LiquidDepth; got != 1 {
			t.Fatalf("%s depth = %.3f, want 1", p, got)
		}
	}
}

func TestFlowConservesUniformLiquid(t *testing.T) {
	s := NewSurface(quietConfig(6))
	rng := core.NewRNG(11)
	for i := range s.cells {
		c := &s.cells[i]
		c.Elevation = math.Round(rng.RandomRange(-4, 4))
		if rng.Bool() {
			c.Liquid = LiquidFreshWater
			c.LiquidDepth = rng.RandomRange(0.1, 3)
		}
	}
	before := s.totalLiquid()

	for pass := 0; pass < 3; pass++ {
		for i := range s.cells {
			s.flowLiquid(s.topo.PositionAt(i))
		}
		after := s.totalLiquid()
		if math.Abs(after-before) > 1e-9 {
			t.Fatalf("pass %d: total liquid %.9f, want %.9f", pass, after, before)
		}
	}
	for i := range s.cells {
		c := &s.cells[i]
		if c.LiquidDepth < 0 {
			t.Fatalf("negative depth at %s", s.topo.PositionAt(i))
		}
		if c.LiquidDepth > 0 && c.Liquid != LiquidFreshWater {
			t.Fatalf("liquid kind changed to %s at %s", c.Liquid, s.topo.PositionAt(i))
		}
	}
}

func TestOverheatedWaterFreezesIntoIce(t *testing.T) {
	s := NewSurface(quietConfig(4))
	p := pos(cube.FaceEast, 1, 2)
	c := s.cell(p)
	c.Liquid = LiquidFreshWater
	c.LiquidDepth = 2
	c.Temperature = 1000

	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got := s.PixelAt(p)
	if got.Liquid != LiquidNone || got.LiquidDepth != 0 {
		t.Fatalf("liquid = %s %.2f, want none", got.Liquid, got.LiquidDepth)
	}
	if got.Coating != CoatingIce || got.CoatingThickness != 2 {
		t.Fatalf("coating = %s %.2f, want ice 2", got.Coating, got.CoatingThickness)
	}
	if got.CoatingSource != LiquidFreshWater {
		t.Fatalf("coating source = %s, want fresh water", got.CoatingSource)
	}

	// Ice above its melting point thaws back into fresh water, which is
	// still above boiling and freezes again within the same tick.
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got = s.PixelAt(p)
	if got.Coating != CoatingIce || got.CoatingThickness != 2 || got.CoatingSource != LiquidFreshWater {
		t.Fatalf("coating = %s %.2f from %s, want ice 2 from fresh water", got.Coating, got.CoatingThickness, got.CoatingSource)
	}
}

func TestCoolingMoltenRockSolidifies(t *testing.T) {
	s := NewSurface(quietConfig(4))
	c := s.cell(pos(cube.FaceNorth, 0, 0))
	c.Elevation = 1
	c.Liquid = LiquidMoltenRock
	c.LiquidDepth = 1
	c.Temperature = 500

	s.applyThresholds(c)

	if c.Liquid != LiquidNone {
		t.Fatalf("liquid = %s, want none", c.Liquid)
	}
	if c.Material != MaterialIgneous || c.Elevation != 2 {
		t.Fatalf("ground = %s at %.1f, want igneous at 2", c.Material, c.Elevation)
	}
}

func TestMeltingGroundReleasesLiquid(t *testing.T) {
	tests := []struct {
		material Material
		temp     float64
		liquid   Liquid
	}{
		{MaterialIgneous, 2500, LiquidMoltenRock},
		{MaterialIce, 350, LiquidFreshWater},
		{MaterialMetal, 8000, LiquidMoltenMetal},
	}
	for _, tt := range tests {
		t.Run(tt.material.String(), func(t *testing.T) {
			s := NewSurface(quietConfig(2))
			c := &Cell{Material: tt.material, Temperature: tt.temp}
			s.meltMaterial(c)
			if c.Elevation != -1 {
				t.Fatalf("elevation = %.1f, want -1", c.Elevation)
			}
			if c.Liquid != tt.liquid || c.LiquidDepth != 1 {
				t.Fatalf("liquid = %s %.1f, want %s 1", c.Liquid, c.LiquidDepth, tt.liquid)
			}
		})
	}

	s := NewSurface(quietConfig(2))
	mud := &Cell{Material: MaterialMud, Temperature: 150}
	s.meltMaterial(mud)
	if mud.Material != MaterialSedimentary || mud.Liquid != LiquidNone {
		t.Fatalf("mud baked into %s with %s, want sedimentary and no liquid", mud.Material, mud.Liquid)
	}
}

func TestCondensationRainsFreshWater(t *testing.T) {
	s := NewSurface(quietConfig(2))
	c := &Cell{Temperature: 350, Gas: GasWater, GasDensity: 3}
	s.applyThresholds(c)
	if c.Gas != GasNone {
		t.Fatalf("gas = %s, want none", c.Gas)
	}
	if c.Liquid != LiquidFreshWater || c.LiquidDepth != 3 {
		t.Fatalf("liquid = %s %.1f, want fresh water 3", c.Liquid, c.LiquidDepth)
	}
}

func TestSettledWarmWaterEvaporates(t *testing.T) {
	cfg := quietConfig(3)
	cfg.Params.EvaporationChance = 1
	s := NewSurface(cfg)
	for i := range s.cells {
		s.cells[i].Liquid = LiquidSaltWater
		s.cells[i].LiquidDepth = 1
		s.cells[i].Temperature = 390
	}
	p := pos(cube.FaceFront, 1, 1)
	c := s.cell(p)

	s.updateLiquid(p, c)

	if c.Liquid != LiquidNone {
		t.Fatalf("liquid = %s, want evaporated", c.Liquid)
	}
	if c.Gas != GasWater || c.GasDensity != 1 {
		t.Fatalf("gas = %s %.2f, want water vapour 1", c.Gas, c.GasDensity)
	}

	// Cool water stays put even when the dice allow it.
	q := pos(cube.FaceBack, 1, 1)
	cool := s.cell(q)
	cool.Temperature = 320
	s.updateLiquid(q, cool)
	if cool.Liquid != LiquidSaltWater {
		t.Fatalf("cool water evaporated")
	}
}

func TestEquatorWarmsFasterThanPoles(t *testing.T) {
	cfg := quietConfig(8)
	cfg.Params.SolarEnergy = 34
	cfg.Params.HeatRadiation = 0.1
	s := NewSurface(cfg)
	for tick := 0; tick < 50; tick++ {
		if err := s.Update(); err != nil {
			t.Fatalf("tick %d: %v", tick, err)
		}
	}
	equator := s.PixelAt(pos(cube.FaceFront, 4, 4)).Temperature
	pole := s.PixelAt(pos(cube.FaceNorth, 4, 4)).Temperature
	if equator <= pole {
		t.Fatalf("equator %.2f should be warmer than pole %.2f", equator, pole)
	}
}

func TestDiffusionMovesHeatToNeighbours(t *testing.T) {
	cfg := quietConfig(4)
	cfg.Params.HeatConductivity = 0.5
	s := NewSurface(cfg)
	for i := range s.cells {
		s.cells[i].Temperature = 100
	}
	hot := pos(cube.FaceFront, 1, 1)
	s.cell(hot).Temperature = 600

	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	// share = 4 + 1/0.5 = 6: the hot cell keeps 600 - 4*(600-100)/6.
	if got, want := s.PixelAt(hot).Temperature, 600-4*500.0/6; math.Abs(got-want) > 1e-9 {
		t.Fatalf("hot cell = %.4f, want %.4f", got, want)
	}
	for _, n := range s.topo.Neighbors(cube.Cubical, hot) {
		if got, want := s.PixelAt(n).Temperature, 100+500.0/6; math.Abs(got-want) > 1e-9 {
			t.Fatalf("%s = %.4f, want %.4f", n, got, want)
		}
	}
}

func TestRadiationIgnoresLiquidColumn(t *testing.T) {
	cfg := quietConfig(4)
	cfg.Params.HeatRadiation = 0.1
	cfg.Params.ElevationRadiation = 0.02
	s := NewSurface(cfg)

	shallow := pos(cube.FaceFront, 1, 1)
	deep := pos(cube.FaceBack, 1, 1)
	for _, p := range []cube.Position{shallow, deep} {
		c := s.cell(p)
		c.Temperature = 390
		c.Elevation = 2
		c.Liquid = LiquidFreshWater
	}
	s.cell(shallow).LiquidDepth = 1
	s.cell(deep).LiquidDepth = 50
	s.cell(deep).Coating = CoatingIce
	s.cell(deep).CoatingThickness = 200

	s.updateTemperature(shallow, s.cell(shallow))
	s.updateTemperature(deep, s.cell(deep))

	got, want := s.PixelAt(deep).Temperature, s.PixelAt(shallow).Temperature
	if got != want {
		t.Fatalf("deep column = %.4f, shallow = %.4f, want equal", got, want)
	}
	// 390 - 390 * 0.1 * (1 + 4*0.02) * 0.9 * 16/4
	if expected := 390 - 390*0.1*1.08*0.9*4; math.Abs(want-expected) > 1e-9 {
		t.Fatalf("temperature = %.4f, want %.4f", want, expected)
	}
}

func TestRadiationNeverOvershoots(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		radiation float64
		elevation float64
	}{
		{"single cell face", 1, 0.1, 0},
		{"tiny face on a peak", 2, 0.3, MaxElevation},
		{"strong radiation", 8, 5, MinElevation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := quietConfig(tt.size)
			cfg.Params.HeatRadiation = tt.radiation
			cfg.Params.ElevationRadiation = 0.02
			s := NewSurface(cfg)
			p := pos(cube.FaceFront, 0, 0)
			c := s.cell(p)
			c.Temperature = 500
			c.Elevation = tt.elevation

			for tick := 0; tick < 20; tick++ {
				s.updateTemperature(p, c)
				if c.Temperature < 0 || c.Temperature > 500 {
					t.Fatalf("tick %d: temperature %.4f left [0, 500]", tick, c.Temperature)
				}
			}
		})
	}
}

func TestEruptionHeatReachesNeighboursSameTick(t *testing.T) {
	cfg := quietConfig(4)
	cfg.Params.HeatConductivity = 0.5
	s := NewSurface(cfg)
	for i := range s.cells {
		s.cells[i].Temperature = 100
	}
	vent := pos(cube.FaceFront, 1, 1)
	s.volcanoes = append(s.volcanoes, vent)

	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	// Each neighbour sees the vent at volcano temperature plus three cells
	// at 100, spread over 4 + 1/0.5.
	want := 100 + (s.cfg.Params.VolcanoTemperature+300-400)/6
	for _, n := range s.topo.Neighbors(cube.Cubical, vent) {
		if got := s.PixelAt(n).Temperature; math.Abs(got-want) > 1e-9 {
			t.Fatalf("%s = %.4f, want %.4f", n, got, want)
		}
	}
}
