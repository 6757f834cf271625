//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"cube-planet/internal/core"
	"cube-planet/internal/sims/planet"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type statsProvider interface {
	Stats() planet.Stats
	Layer() planet.Layer
}

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	alertColor  = color.RGBA{R: 255, G: 110, B: 90, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	idleColor   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD draws the stats readout and the adjustable parameters in a panel to the
// right of the planet net.
type HUD struct {
	sim   core.Sim
	width int

	panel *ebiten.Image
	pixel *ebiten.Image

	controls    []control
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int

	stats  []string
	status string
}

type control struct {
	def      core.ParameterControl
	value    float64
	hasValue bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// NewHUD builds a panel of the given width for sim.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, def := range provider.ParameterControls() {
			h.controls = append(h.controls, control{def: def})
		}
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// SetStatus shows a message under the stats, e.g. why the run is paused.
func (h *HUD) SetStatus(msg string) {
	if h != nil {
		h.status = msg
	}
}

// Update refreshes the stats and control values and handles clicks on the
// panel, which starts at offsetX in screen space.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	h.stats = h.stats[:0]
	if provider, ok := h.sim.(statsProvider); ok {
		st := provider.Stats()
		h.stats = append(h.stats,
			fmt.Sprintf("Tick %d  layer %s", st.Tick, provider.Layer()),
			fmt.Sprintf("Temp %.0f (%.0f..%.0f)", st.MeanTemperature, st.MinTemperature, st.MaxTemperature),
			fmt.Sprintf("Water %.1f  Ice %.1f", st.Water, st.Coating),
			fmt.Sprintf("Vapour %.1f  Molten %.1f", st.Gas, st.Molten),
			fmt.Sprintf("Volcanoes %d", st.ActiveVolcanoes),
		)
	}
	h.layout()
	h.readValues()
	h.handleClick()
}

func (h *HUD) readValues() {
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		return
	}
	values := map[string]string{}
	for _, group := range provider.Parameters().Groups {
		for _, p := range group.Params {
			values[p.Key] = p.Value
		}
	}
	for i := range h.controls {
		c := &h.controls[i]
		raw, found := values[c.def.Key]
		if !found {
			c.hasValue = false
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		c.value, c.hasValue = v, err == nil
	}
}

func (h *HUD) layout() {
	top := panelPadding + headerBaseline + len(h.stats)*statLine + sectionGap
	if h.status != "" {
		top += statLine
	}
	for i := range h.controls {
		c := &h.controls[i]
		c.top = top + i*lineHeight
		y := c.top + (lineHeight-buttonSize)/2
		c.plus = image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
		c.minus = image.Rect(c.plus.Min.X-buttonGap-buttonSize, y, c.plus.Min.X-buttonGap, y+buttonSize)
	}
}

func (h *HUD) handleClick() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if px < 0 {
		return
	}
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pointInRect(px, my, c.minus):
			h.adjust(c, -1)
			return
		case pointInRect(px, my, c.plus):
			h.adjust(c, 1)
			return
		}
	}
}

// target returns the value one step in direction, clamped to the control's
// bounds, and whether it differs from the current value.
func (c *control) target(direction int) (float64, bool) {
	if !c.hasValue {
		return 0, false
	}
	step := c.def.Step
	if step <= 0 {
		step = 0.05
		if c.def.Type == core.ParamTypeInt {
			step = 1
		}
	}
	next := c.value + float64(direction)*step
	if c.def.Type == core.ParamTypeInt {
		next = math.Round(next)
	}
	if c.def.HasMin && next < c.def.Min {
		next = c.def.Min
	}
	if c.def.HasMax && next > c.def.Max {
		next = c.def.Max
	}
	return next, math.Abs(next-c.value) > 1e-9
}

func (h *HUD) adjust(c *control, direction int) {
	next, changed := c.target(direction)
	if !changed {
		return
	}
	ok := false
	switch c.def.Type {
	case core.ParamTypeInt:
		ok = h.intSetter != nil && h.intSetter.SetIntParameter(c.def.Key, int(next))
	case core.ParamTypeFloat:
		ok = h.floatSetter != nil && h.floatSetter.SetFloatParameter(c.def.Key, next)
	}
	if ok {
		c.value = next
	}
}

// Draw paints the panel at offsetX; its height follows the sim at scale.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Planet", face, panelPadding, y, titleColor)
	for _, line := range h.stats {
		y += statLine
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
	}
	if h.status != "" {
		y += statLine
		text.Draw(h.panel, h.status, face, panelPadding, y, alertColor)
	}

	for i := range h.controls {
		c := &h.controls[i]
		labelY := c.top + labelBaseline
		text.Draw(h.panel, c.def.Label, face, panelPadding, labelY, textColor)

		value, col := "--", mutedColor
		if c.hasValue {
			value, col = formatValue(c.def, c.value), textColor
		}
		width := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, c.minus.Min.X-buttonGap-width, labelY, col)

		_, canDec := c.target(-1)
		_, canInc := c.target(1)
		h.drawButton(c.minus, "-", canDec)
		h.drawButton(c.plus, "+", canInc)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, textColor
	if !enabled {
		bg, fg = idleColor, mutedColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func formatValue(def core.ParameterControl, v float64) string {
	if def.Type == core.ParamTypeInt {
		return strconv.Itoa(int(v))
	}
	precision := 1
	switch {
	case def.Step > 0 && def.Step < 0.001:
		precision = 4
	case def.Step > 0 && def.Step < 0.01:
		precision = 3
	case def.Step > 0 && def.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 32
	statLine       = 16
	sectionGap     = 14
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 21
)
