package planet

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"cube-planet/internal/cube"
)

const calmEpsilon = 1e-9

type windSample struct {
	cell   *Cell
	offset mgl64.Vec2
}

// windRange is the sampling radius for wind, chosen so the wind footprint
// covers the same share of a face at every resolution.
func (s *Surface) windRange() int {
	r := s.topo.Size() / s.cfg.Params.WindRangeDivisor
	if r < 1 {
		r = 1
	}
	return r
}

// WindAt returns the unit wind direction at p in face-local coordinates and
// the wind speed. A calm cell returns the zero vector. Unlike the tick it
// does not shuffle the samples, so it never draws from the random source.
func (s *Surface) WindAt(p cube.Position) (mgl64.Vec2, float64) {
	return s.windFrom(p, s.cell(p), s.windSamples(p))
}

func (s *Surface) windSamples(p cube.Position) []windSample {
	r := s.windRange()
	samples := make([]windSample, 0, (2*r+1)*(2*r+1))
	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			target := s.topo.StepBy(cube.Spherical, p, cube.Offset{X: x, Y: y})
			samples = append(samples, windSample{
				cell:   s.cell(target),
				offset: mgl64.Vec2{float64(x), float64(y)},
			})
		}
	}
	return samples
}

// wind shuffles the samples so ties between equally hot cells break
// randomly.
func (s *Surface) wind(p cube.Position, c *Cell) (mgl64.Vec2, float64) {
	samples := s.windSamples(p)
	s.rng.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})
	return s.windFrom(p, c, samples)
}

// windFrom blows toward the hottest sampled cell and toward thinner gas,
// then deflects sideways by the planet's spin.
func (s *Surface) windFrom(p cube.Position, c *Cell, samples []windSample) (mgl64.Vec2, float64) {
	params := s.cfg.Params

	hottest := c.Temperature
	var toward mgl64.Vec2
	for _, smp := range samples {
		if smp.cell.Temperature > hottest {
			hottest = smp.cell.Temperature
			toward = unit(smp.offset)
		}
	}
	dist := toward.Mul(math.Abs(c.Temperature - hottest))

	lowest := c.GasDensity
	var thinner mgl64.Vec2
	for _, smp := range samples {
		diff := c.GasDensity - smp.cell.GasDensity
		if diff <= 0 {
			continue
		}
		lowest = math.Min(lowest, smp.cell.GasDensity)
		thinner = thinner.Add(unit(smp.offset).Mul(diff))
	}
	dist = dist.Add(withLength(thinner, (c.GasDensity-lowest)*params.WindDensityFactor))

	spin := mgl64.Vec2{-1, 0}
	if s.topo.Hemisphere(p) == cube.HemisphereNorth && params.AngularVelocity > 0 {
		spin = mgl64.Vec2{1, 0}
	}
	dist = dist.Add(spin.Mul(math.Abs(params.AngularVelocity) * math.Sin(s.topo.Latitude(p))))

	speed := dist.Len()
	return unit(dist), speed
}

// unit normalizes v. Vectors shorter than calmEpsilon are treated as calm:
// opposing samples that cancel leave only rounding noise, which must not be
// amplified into a direction.
func unit(v mgl64.Vec2) mgl64.Vec2 {
	if v.Len() < calmEpsilon {
		return mgl64.Vec2{}
	}
	return v.Normalize()
}

func withLength(v mgl64.Vec2, length float64) mgl64.Vec2 {
	return unit(v).Mul(length)
}

func (s *Surface) updateGas(p cube.Position, c *Cell) {
	c.normalizeGas()
	if c.Gas == GasNone {
		return
	}
	s.flowGas(p, c)
}

// flowGas pushes gas along the wind into the up to four cells bracketing the
// wind vector, weighting each by how close it lies to the exact target.
func (s *Surface) flowGas(p cube.Position, c *Cell) {
	dir, speed := s.wind(p, c)
	if dir.X() == 0 && dir.Y() == 0 {
		return
	}
	strength := math.Min(speed/s.cfg.Params.WindSpeedScale, 1)

	fx, cx := int(math.Floor(dir.X())), int(math.Ceil(dir.X()))
	fy, cy := int(math.Floor(dir.Y())), int(math.Ceil(dir.Y()))
	candidates := [4]cube.Offset{{X: fx, Y: fy}, {X: cx, Y: cy}, {X: fx, Y: cy}, {X: cx, Y: fy}}

	var offsets []cube.Offset
	for _, off := range candidates {
		if off == (cube.Offset{}) || containsOffset(offsets, off) {
			continue
		}
		offsets = append(offsets, off)
	}

	remaining := c.GasDensity
	kind := c.Gas
	for _, off := range offsets {
		miss := math.Abs(float64(off.X)-dir.X()) + math.Abs(float64(off.Y)-dir.Y())
		weight := 1 - clamp(miss, 0, 1)
		change := remaining * strength * weight
		if change <= 0 {
			continue
		}
		target := s.topo.StepBy(cube.Spherical, p, off)
		if target == p {
			continue
		}
		s.mustAddGas(s.cell(target), kind, change)
		remaining -= change
	}
	c.GasDensity = math.Max(0, remaining)
	c.normalizeGas()
}

func containsOffset(list []cube.Offset, off cube.Offset) bool {
	for _, o := range list {
		if o == off {
			return true
		}
	}
	return false
}
