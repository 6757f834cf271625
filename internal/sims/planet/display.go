package planet

import (
	"image"
	"image/color"

	"cube-planet/internal/cube"
)

// Layer selects what a rendered pixel shows.
type Layer uint8

const (
	// LayerSurface is the composed look of the planet.
	LayerSurface Layer = iota
	LayerTemperature
	LayerGas
	LayerElevation
	LayerLatitude
)

var layerNames = [...]string{
	LayerSurface:     "surface",
	LayerTemperature: "temperature",
	LayerGas:         "gas",
	LayerElevation:   "elevation",
	LayerLatitude:    "latitude",
}

func (l Layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return "unknown"
}

// ParseLayer looks a layer up by name.
func ParseLayer(name string) (Layer, bool) {
	for i, n := range layerNames {
		if n == name {
			return Layer(i), true
		}
	}
	return LayerSurface, false
}

// Layers lists every layer in display order.
func Layers() []Layer {
	return []Layer{LayerSurface, LayerTemperature, LayerGas, LayerElevation, LayerLatitude}
}

var (
	coldColor = color.NRGBA{R: 30, G: 60, B: 200, A: 255}
	hotColor  = color.NRGBA{R: 255, G: 70, B: 20, A: 255}
	lowColor  = color.NRGBA{R: 10, G: 10, B: 10, A: 255}
	highColor = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
)

// Color is the surface color of p: coating if present, else liquid, else
// the ground, with any gas drawn as a haze on top.
func (s *Surface) Color(p cube.Position) color.NRGBA {
	return s.cellColor(s.cell(p))
}

func (s *Surface) cellColor(c *Cell) color.NRGBA {
	params := s.cfg.Params
	var col color.NRGBA
	switch {
	case c.Coating != CoatingNone:
		props := c.Coating.props()
		col = mapColor(props.high, props.low, props.maxTemp-params.CoatingColorWindow, props.maxTemp, c.Temperature)
	case c.Liquid != LiquidNone && c.LiquidDepth > 0:
		col = liquidColor(c.Liquid, c.Temperature, c.LiquidDepth)
	default:
		props := c.Material.props()
		col = mapColor(props.low, props.high, MinElevation, MaxElevation, c.Elevation)
	}
	if c.Gas != GasNone {
		col = mapColor(col, c.Gas.props().color, 0, params.GasHazeDensity, c.GasDensity)
	}
	return col
}

func liquidColor(l Liquid, temperature, depth float64) color.NRGBA {
	props := l.props()
	shade := props.shade
	cold, hot := shade.cold, shade.hot
	if shade.byDepth {
		cold = mapColor(shade.cold, shade.coldDeep, 0, MaxElevation*2, depth)
		hot = mapColor(shade.hot, shade.hotDeep, 0, MaxElevation*2, depth)
	}
	return mapColor(cold, hot, props.minTemp, props.maxTemp, temperature)
}

func (s *Surface) layerColor(layer Layer, p cube.Position) color.NRGBA {
	c := s.cell(p)
	switch layer {
	case LayerTemperature:
		return mapColor(coldColor, hotColor, 0, 600, c.Temperature)
	case LayerGas:
		return mapColor(lowColor, highColor, 0, s.cfg.Params.GasHazeDensity, c.GasDensity)
	case LayerElevation:
		return mapColor(lowColor, highColor, MinElevation, MaxElevation, c.Elevation)
	case LayerLatitude:
		return mapColor(hotColor, coldColor, 0, 1, s.topo.Latitude(p))
	default:
		return s.cellColor(c)
	}
}

// Render writes the surface colors into one image per face, indexed by
// cube.Face. Each image must cover at least Size x Size pixels; nil entries
// are skipped.
func (s *Surface) Render(dst [cube.FaceCount]*image.RGBA) {
	s.RenderLayer(LayerSurface, dst)
}

// RenderLayer is Render for an arbitrary debug layer.
func (s *Surface) RenderLayer(layer Layer, dst [cube.FaceCount]*image.RGBA) {
	n := s.topo.Size()
	for _, face := range cube.Faces {
		img := dst[face]
		if img == nil {
			continue
		}
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				col := s.layerColor(layer, cube.Position{Face: face, X: x, Y: y})
				off := img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)
				img.Pix[off+0] = col.R
				img.Pix[off+1] = col.G
				img.Pix[off+2] = col.B
				img.Pix[off+3] = col.A
			}
		}
	}
}

// mapColor interpolates from a to b as v moves from lo to hi, clamped at
// both ends.
func mapColor(a, b color.NRGBA, lo, hi, v float64) color.NRGBA {
	if hi <= lo {
		if v >= hi {
			return b
		}
		return a
	}
	return blendColors(a, b, (v-lo)/(hi-lo))
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}
