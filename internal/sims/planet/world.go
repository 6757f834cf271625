package planet

import (
	"image"

	"cube-planet/internal/core"
	"cube-planet/internal/cube"
	"cube-planet/internal/render"
)

// World adapts a Surface to the core.Sim contract. Its image is the unfolded
// cube net: the ring of four faces with the poles above and below.
type World struct {
	cfg     Config
	surface *Surface
	faces   [cube.FaceCount]*image.RGBA
	events  []VolcanoEvent
	layer   Layer
}

// New returns a planet with the provided face size using defaults.
func New(size int) *World {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns a planet configured from the provided options.
func NewWithConfig(cfg Config) *World {
	s := NewSurface(cfg)
	w := &World{cfg: s.Config(), surface: s}
	n := s.Size()
	for _, face := range cube.Faces {
		w.faces[face] = image.NewRGBA(image.Rect(0, 0, n, n))
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "planet" }

// Size reports the dimensions of the unfolded net.
func (w *World) Size() core.Size {
	nw, nh := w.surface.Topology().NetSize()
	return core.Size{W: nw, H: nh}
}

// Surface exposes the underlying cell grid.
func (w *World) Surface() *Surface { return w.surface }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Reset rebuilds the terrain. A zero seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.cfg.Seed = effective
	w.surface.Reset(effective)
	w.events = w.events[:0]
}

// Step advances one tick.
func (w *World) Step() error {
	err := w.surface.Update()
	w.events = append(w.events, w.surface.DrainEvents()...)
	return err
}

// Events returns and clears the volcano events seen since the last call.
func (w *World) Events() []VolcanoEvent {
	if len(w.events) == 0 {
		return nil
	}
	out := w.events
	w.events = nil
	return out
}

// Render draws the selected layer into dst, which must be at least Size()
// pixels.
func (w *World) Render(dst *image.RGBA) {
	w.RenderLayer(w.layer, dst)
}

// Layer returns the layer Render draws.
func (w *World) Layer() Layer { return w.layer }

// SetLayer selects the layer Render draws.
func (w *World) SetLayer(l Layer) {
	if int(l) < len(layerNames) {
		w.layer = l
	}
}

// CycleLayer advances to the next layer and returns it.
func (w *World) CycleLayer() Layer {
	w.layer = (w.layer + 1) % Layer(len(layerNames))
	return w.layer
}

// RenderLayer draws one debug layer across the whole net.
func (w *World) RenderLayer(layer Layer, dst *image.RGBA) {
	w.surface.RenderLayer(layer, w.faces)
	render.ComposeNet(w.surface.Topology(), w.faces, dst)
}

// Stats summarises the world for HUDs, streams and telemetry.
type Stats struct {
	Tick            uint64 `json:"tick"`
	ActiveVolcanoes int    `json:"active_volcanoes"`
	Totals
}

// Stats scans the surface once.
func (w *World) Stats() Stats {
	return Stats{
		Tick:            w.surface.Tick(),
		ActiveVolcanoes: len(w.surface.volcanoes),
		Totals:          w.surface.Totals(),
	}
}

// WindArrow is the wind at one cell, placed in net pixel coordinates.
type WindArrow struct {
	X, Y   float64
	DX, DY float64
	Speed  float64
}

// WindField samples the wind every spacing cells across the four ring faces,
// where face and net axes agree. Sampling does not draw from the random
// source, so it leaves the run reproducible.
func (w *World) WindField(spacing int) []WindArrow {
	if spacing <= 0 {
		spacing = 1
	}
	topo := w.surface.Topology()
	n := topo.Size()
	var arrows []WindArrow
	for _, face := range []cube.Face{cube.FaceWest, cube.FaceFront, cube.FaceEast, cube.FaceBack} {
		for y := spacing / 2; y < n; y += spacing {
			for x := spacing / 2; x < n; x += spacing {
				p := cube.Position{Face: face, X: x, Y: y}
				dir, speed := w.surface.WindAt(p)
				nx, ny := topo.NetPixel(p)
				arrows = append(arrows, WindArrow{
					X: float64(nx) + 0.5, Y: float64(ny) + 0.5,
					DX: dir.X(), DY: dir.Y(),
					Speed: speed,
				})
			}
		}
	}
	return arrows
}

// VolcanoMarkers returns the net pixel of every active volcano.
func (w *World) VolcanoMarkers() []image.Point {
	topo := w.surface.Topology()
	active := w.surface.Volcanoes()
	out := make([]image.Point, 0, len(active))
	for _, p := range active {
		nx, ny := topo.NetPixel(p)
		out = append(out, image.Pt(nx, ny))
	}
	return out
}

func init() {
	core.Register("planet", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
