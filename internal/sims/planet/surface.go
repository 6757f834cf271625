package planet

import (
	"errors"
	"fmt"

	"cube-planet/internal/cube"
	"cube-planet/pkg/core"
)

// Surface owns every cell on the six faces of the cube and advances them one
// tick at a time. It is not safe for concurrent use.
type Surface struct {
	cfg  Config
	topo cube.Topology
	rng  *core.RNG

	cells []Cell
	// prevTemp holds the temperatures after this tick's eruptions so
	// diffusion reads a consistent snapshot.
	prevTemp []float64

	volcanoes []cube.Position
	events    []VolcanoEvent

	tick uint64
}

// NewSurface allocates a surface and seeds its terrain from cfg.Seed.
func NewSurface(cfg Config) *Surface {
	return NewSurfaceWithRNG(cfg, core.NewRNG(cfg.Seed))
}

// NewSurfaceWithRNG allocates a surface that draws all randomness from rng.
func NewSurfaceWithRNG(cfg Config, rng *core.RNG) *Surface {
	cfg.sanitize()
	topo := cube.New(cfg.Size)
	s := &Surface{
		cfg:      cfg,
		topo:     topo,
		rng:      rng,
		cells:    make([]Cell, topo.CellCount()),
		prevTemp: make([]float64, topo.CellCount()),
	}
	s.seedTerrain()
	return s
}

// Reset reseeds the random source and rebuilds the terrain.
func (s *Surface) Reset(seed int64) {
	s.rng = core.NewRNG(seed)
	s.volcanoes = s.volcanoes[:0]
	s.events = s.events[:0]
	s.tick = 0
	s.seedTerrain()
}

// Topology exposes the cube geometry the surface lives on.
func (s *Surface) Topology() cube.Topology { return s.topo }

// Size returns the edge length of one face.
func (s *Surface) Size() int { return s.topo.Size() }

// Config returns the active configuration.
func (s *Surface) Config() Config { return s.cfg }

// SetParams swaps the physics constants without touching the cells. Terrain
// parameters apply from the next Reset.
func (s *Surface) SetParams(p Params) {
	cfg := s.cfg
	cfg.Params = p
	cfg.sanitize()
	cfg.Size = s.topo.Size()
	s.cfg = cfg
}

// Tick returns the number of completed updates since the last reset.
func (s *Surface) Tick() uint64 { return s.tick }

// PixelAt returns a copy of the cell at p. It panics if p is off the cube.
func (s *Surface) PixelAt(p cube.Position) Cell {
	return *s.cell(p)
}

func (s *Surface) cell(p cube.Position) *Cell {
	return &s.cells[s.topo.Index(p)]
}

func (s *Surface) coin() bool { return s.rng.Bool() }

func (s *Surface) chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return s.rng.Random(1) < p
}

// Update advances the surface by one tick: volcanoes first, then every cell
// in face order (poles, then the ring), row-major within a face. Cells are
// updated in place, so later cells see the liquid and gas moved by earlier
// ones.
//
// A broken adjacency table or a liquid pair missing from the interaction
// table aborts the tick and is returned as an error; the surface should be
// discarded or reset afterwards.
func (s *Surface) Update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()

	s.updateVolcanoes()
	for i := range s.cells {
		s.prevTemp[i] = s.cells[i].Temperature
	}

	n := s.topo.Size()
	for _, face := range cube.Faces {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				s.updateCell(cube.Position{Face: face, X: x, Y: y})
			}
		}
	}
	s.tick++
	return nil
}

// recovered converts the typed panics raised inside a tick into errors and
// re-raises anything else.
func recovered(r any) error {
	if f, ok := r.(fatal); ok {
		return f.err
	}
	if e, ok := r.(error); ok {
		var topoErr *cube.TopologyError
		if errors.As(e, &topoErr) {
			return fmt.Errorf("planet: update aborted: %w", e)
		}
	}
	panic(r)
}

func (s *Surface) mustAddLiquid(c *Cell, kind Liquid, amount float64) {
	if err := c.AddLiquid(kind, amount, s.coin); err != nil {
		raise(err)
	}
}

func (s *Surface) mustAddGas(c *Cell, kind Gas, amount float64) {
	if err := c.AddGas(kind, amount); err != nil {
		raise(err)
	}
}

// Totals sums conserved quantities over the whole surface.
type Totals struct {
	Liquid          float64 `json:"liquid"`
	Water           float64 `json:"water"`
	Molten          float64 `json:"molten"`
	Coating         float64 `json:"coating"`
	Gas             float64 `json:"gas"`
	MeanTemperature float64 `json:"mean_temperature"`
	MinTemperature  float64 `json:"min_temperature"`
	MaxTemperature  float64 `json:"max_temperature"`
	MeanElevation   float64 `json:"mean_elevation"`
}

// Totals scans every cell once.
func (s *Surface) Totals() Totals {
	var t Totals
	if len(s.cells) == 0 {
		return t
	}
	t.MinTemperature = s.cells[0].Temperature
	t.MaxTemperature = s.cells[0].Temperature
	for i := range s.cells {
		c := &s.cells[i]
		t.Liquid += c.LiquidDepth
		switch {
		case c.Liquid.IsWater():
			t.Water += c.LiquidDepth
		case c.Liquid.IsMolten():
			t.Molten += c.LiquidDepth
		}
		t.Coating += c.CoatingThickness
		t.Gas += c.GasDensity
		t.MeanTemperature += c.Temperature
		t.MeanElevation += c.Elevation
		if c.Temperature < t.MinTemperature {
			t.MinTemperature = c.Temperature
		}
		if c.Temperature > t.MaxTemperature {
			t.MaxTemperature = c.Temperature
		}
	}
	count := float64(len(s.cells))
	t.MeanTemperature /= count
	t.MeanElevation /= count
	return t
}
