package planet

import (
	"math"

	"cube-planet/internal/cube"
)

// seedTerrain fills every cell with the baseline state and stamps the
// randomized round features on top.
func (s *Surface) seedTerrain() {
	params := s.cfg.Params
	base := Cell{
		Temperature: params.BaselineTemperature,
		Material:    params.BaselineMaterial,
	}
	if params.InitialLiquidDepth > 0 {
		base.Liquid = LiquidSaltWater
		base.LiquidDepth = params.InitialLiquidDepth
	}
	for i := range s.cells {
		s.cells[i] = base
		s.prevTemp[i] = base.Temperature
	}

	for i := 0; i < params.FeatureCount; i++ {
		p := s.topo.RandomPosition(s.rng)
		height := s.rng.RandomRange(params.FeatureHeightMin, params.FeatureHeightMax)
		falloff := s.rng.RandomRange(params.FeatureFalloffMin, params.FeatureFalloffMax)
		s.placeRoundFeature(p, height, falloff)
	}
}

// placeRoundFeature raises (or, for negative height, sinks) a cone centred
// on p. The change falls off linearly and reaches zero at radius
// ceil(|height|/falloff). Offsets are walked with spherical adjacency so
// features keep their shape across the poles.
func (s *Surface) placeRoundFeature(p cube.Position, height, falloff float64) {
	peak := math.Abs(height)
	if peak == 0 || falloff <= 0 {
		return
	}
	radius := int(math.Ceil(peak / falloff))
	for x := -radius; x <= radius; x++ {
		for y := -radius; y <= radius; y++ {
			distance := math.Hypot(float64(x), float64(y))
			change := (1 - math.Min(distance*falloff, peak)/peak) * height
			if change == 0 {
				continue
			}
			target := s.topo.StepBy(cube.Spherical, p, cube.Offset{X: x, Y: y})
			s.cell(target).ChangeElevation(change)
		}
	}
}
