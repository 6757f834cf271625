//go:build ebiten

package main

import (
	"errors"
	"flag"

	"cube-planet/internal/app"
	"cube-planet/internal/logger"
	"cube-planet/internal/sims/planet"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log := logger.New("planet")

	appCfg := app.NewConfig()
	appCfg.Bind(flag.CommandLine)
	planetCfg := planet.DefaultConfig()
	planetCfg.Bind(flag.CommandLine)
	flag.Parse()

	if appCfg.PlanetConfig != "" {
		loaded, err := planet.LoadConfig(appCfg.PlanetConfig)
		if err != nil {
			log.Fatal("%v", err)
		}
		// Explicit flags win over the file.
		planetCfg = mergeFlags(loaded)
	}

	world := planet.NewWithConfig(planetCfg)
	game := app.New(world, appCfg, log)
	size := world.Size()

	ebiten.SetWindowTitle("cube-planet")
	ebiten.SetTPS(appCfg.TPS)
	ebiten.SetWindowSize(size.W*appCfg.Scale+appCfg.HUDWidth, size.H*appCfg.Scale)

	log.Info("face size %d, seed %d", world.Surface().Size(), world.Config().Seed)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("%v", err)
	}
}

// mergeFlags reapplies the command-line flags that were set explicitly on
// top of a config loaded from file.
func mergeFlags(base planet.Config) planet.Config {
	fs := flag.NewFlagSet("planet", flag.ContinueOnError)
	base.Bind(fs)
	flag.Visit(func(f *flag.Flag) {
		if fs.Lookup(f.Name) != nil {
			fs.Set(f.Name, f.Value.String())
		}
	})
	return base
}
