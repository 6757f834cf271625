//go:build ebiten

package app

import (
	"image"
	"time"

	"cube-planet/internal/logger"
	"cube-planet/internal/render"
	"cube-planet/internal/sims/planet"
	"cube-planet/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a planet to the ebiten.Game interface.
type Game struct {
	world   *planet.World
	painter *render.NetPainter
	net     *image.RGBA
	overlay *ui.Overlay
	hud     *ui.HUD
	log     *logger.Logger

	scale    int
	hudWidth int
	paused   bool
	halted   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided planet.
func New(world *planet.World, cfg *Config, log *logger.Logger) *Game {
	size := world.Size()
	return &Game{
		world:    world,
		painter:  render.NewNetPainter(size.W, size.H),
		net:      render.NewNetImage(world.Surface().Topology()),
		overlay:  ui.NewOverlay(world, cfg.Scale),
		hud:      ui.NewHUD(world, cfg.HUDWidth),
		log:      log,
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     world.Config().Seed,
	}
}

// Reset reinitializes the planet with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
	g.halted = false
	g.hud.SetStatus("")
	g.log.Info("reset with seed %d", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.log.Info("showing %s layer", g.world.CycleLayer())
	}

	g.overlay.Update()
	g.hud.Update(g.netWidth())

	if g.halted || (g.paused && !g.tickOnce) {
		return nil
	}
	g.tickOnce = false
	if err := g.world.Step(); err != nil {
		// The surface is inconsistent until the next reset.
		g.halted = true
		g.hud.SetStatus("halted: press R")
		g.log.Error("tick %d aborted: %v", g.world.Surface().Tick(), err)
		return nil
	}
	for _, ev := range g.world.Events() {
		g.log.Event(ev.Kind.String(), ev.Tick, ev.Position.String())
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Render(g.net)
	g.painter.Blit(screen, g.net, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.netWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.netWidth() + g.hudWidth, g.world.Size().H * g.scale
}

func (g *Game) netWidth() int {
	return g.world.Size().W * g.scale
}
