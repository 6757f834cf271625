package planet

import "cube-planet/internal/cube"

// quietConfig disables every source of change so a test can drive one
// mechanism at a time.
func quietConfig(size int) Config {
	cfg := DefaultConfig()
	cfg.Size = size
	cfg.Seed = 5
	p := &cfg.Params
	p.SolarEnergy = 0
	p.HeatRadiation = 0
	p.HeatConductivity = 0
	p.AngularVelocity = 0
	p.InitialLiquidDepth = 0
	p.FeatureCount = 0
	p.EvaporationChance = 0
	p.VolcanoSpawnChance = 0
	p.VolcanoRetireChance = 0
	return cfg
}

func pos(face cube.Face, x, y int) cube.Position {
	return cube.Position{Face: face, X: x, Y: y}
}

func (s *Surface) totalLiquid() float64 {
	total := 0.0
	for i := range s.cells {
		total += s.cells[i].LiquidDepth
	}
	return total
}
