//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"

	"cube-planet/internal/core"
	"cube-planet/internal/sims/planet"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type windFieldProvider interface {
	WindField(spacing int) []planet.WindArrow
}

type volcanoProvider interface {
	VolcanoMarkers() []image.Point
}

// Overlay draws wind arrows and volcano markers over the net.
type Overlay struct {
	sim         core.Sim
	scale       int
	showWind    bool
	showVolcano bool
	pixel       *ebiten.Image
}

// NewOverlay constructs an overlay for sim drawn at scale.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale, showVolcano: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the layers: 1 for wind, 2 for volcanoes.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showWind = !o.showWind
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showVolcano = !o.showVolcano
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showWind {
		if provider, ok := o.sim.(windFieldProvider); ok {
			o.drawWind(screen, provider.WindField(windSpacing(o.sim.Size())))
		}
	}
	if o.showVolcano {
		if provider, ok := o.sim.(volcanoProvider); ok {
			o.drawVolcanoes(screen, provider.VolcanoMarkers())
		}
	}
}

// windSpacing aims for roughly six arrows across each face.
func windSpacing(size core.Size) int {
	spacing := size.W / 24
	if spacing < 2 {
		spacing = 2
	}
	return spacing
}

func (o *Overlay) drawWind(screen *ebiten.Image, arrows []planet.WindArrow) {
	const (
		calmThreshold = 0.05
		fullSpeed     = 10.0
		headAngle     = math.Pi / 6
	)
	span := float64(windSpacing(o.sim.Size()) * o.scale)
	for _, a := range arrows {
		sx, sy := a.X*float64(o.scale), a.Y*float64(o.scale)
		if a.Speed < calmThreshold {
			o.drawPoint(screen, sx, sy, math.Max(1, float64(o.scale)*0.75), color.NRGBA{R: 90, G: 130, B: 170, A: 120})
			continue
		}
		t := clamp01(a.Speed / fullSpeed)
		length := span * (0.35 + 0.35*math.Sqrt(t))
		head := length * 0.3
		thickness := math.Max(1, float64(o.scale)*(0.6+0.4*t))
		col := windColor(t)

		tipX, tipY := sx+a.DX*length*0.6, sy+a.DY*length*0.6
		tailX, tailY := sx-a.DX*length*0.4, sy-a.DY*length*0.4
		o.drawLine(screen, tailX, tailY, tipX, tipY, thickness, col)

		angle := math.Atan2(a.DY, a.DX)
		for _, side := range []float64{headAngle, -headAngle} {
			hx := tipX - math.Cos(angle+side)*head
			hy := tipY - math.Sin(angle+side)*head
			o.drawLine(screen, tipX, tipY, hx, hy, thickness*0.85, col)
		}
	}
}

func (o *Overlay) drawVolcanoes(screen *ebiten.Image, markers []image.Point) {
	size := math.Max(3, float64(o.scale)*2)
	for _, pt := range markers {
		cx := (float64(pt.X) + 0.5) * float64(o.scale)
		cy := (float64(pt.Y) + 0.5) * float64(o.scale)
		o.drawPoint(screen, cx, cy, size+2, color.NRGBA{A: 200})
		o.drawPoint(screen, cx, cy, size, color.NRGBA{R: 255, G: 120, B: 40, A: 230})
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.NRGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.NRGBA) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func windColor(t float64) color.NRGBA {
	t = clamp01(t)
	return color.NRGBA{
		R: uint8(math.Round(80 + 70*t)),
		G: uint8(math.Round(170 + 70*t)),
		B: uint8(math.Round(230 + 20*t)),
		A: uint8(math.Round(150 + 90*t)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
