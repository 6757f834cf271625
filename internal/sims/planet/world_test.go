package planet

import (
	"image"
	"slices"
	"testing"

	"cube-planet/internal/core"
	"cube-planet/internal/cube"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 8
	cfg.Seed = 99
	cfg.Params.VolcanoSpawnChance = 0.5
	world := NewWithConfig(cfg)

	initial := slices.Clone(world.Surface().cells)
	for i := 0; i < 5; i++ {
		if err := world.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if slices.Equal(initial, world.Surface().cells) {
		t.Fatal("stepping should change the surface")
	}

	world.Reset(0)
	if !slices.Equal(initial, world.Surface().cells) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if world.Surface().Tick() != 0 || len(world.Surface().Volcanoes()) != 0 {
		t.Fatal("Reset must clear the tick counter and volcanoes")
	}

	world.Reset(777)
	seeded := slices.Clone(world.Surface().cells)
	for i := 0; i < 3; i++ {
		if err := world.Step(); err != nil {
			t.Fatalf("replay step %d: %v", i, err)
		}
	}
	afterSteps := slices.Clone(world.Surface().cells)
	world.Reset(777)
	if !slices.Equal(seeded, world.Surface().cells) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	for i := 0; i < 3; i++ {
		if err := world.Step(); err != nil {
			t.Fatalf("replay step %d: %v", i, err)
		}
	}
	if !slices.Equal(afterSteps, world.Surface().cells) {
		t.Fatal("replaying from the same seed diverged")
	}
}

func TestWorldSizeAndRender(t *testing.T) {
	world := New(5)
	size := world.Size()
	if size.W != 20 || size.H != 15 {
		t.Fatalf("size = %+v, want 20x15", size)
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	world.Render(dst)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if dst.RGBAAt(x, y).A != 255 {
				t.Fatalf("pixel (%d,%d) left transparent", x, y)
			}
		}
	}

	// The front face sits in the second column of the middle row.
	p := pos(cube.FaceFront, 2, 3)
	want := world.Surface().Color(p)
	got := dst.RGBAAt(5+2, 5+3)
	if got.R != want.R || got.G != want.G || got.B != want.B {
		t.Fatalf("front pixel = %v, want %v", got, want)
	}
}

func TestLayerSelection(t *testing.T) {
	world := New(4)
	if world.Layer() != LayerSurface {
		t.Fatalf("default layer = %s", world.Layer())
	}
	seen := map[Layer]bool{}
	for range Layers() {
		seen[world.CycleLayer()] = true
	}
	if len(seen) != len(Layers()) || world.Layer() != LayerSurface {
		t.Fatalf("cycling visited %v and ended on %s", seen, world.Layer())
	}
	world.SetLayer(Layer(99))
	if world.Layer() != LayerSurface {
		t.Fatal("out of range layer accepted")
	}
	world.SetLayer(LayerLatitude)
	dst := image.NewRGBA(image.Rect(0, 0, 16, 12))
	world.Render(dst)
	// The middle of the north face is a pole, drawn at the cold end.
	if got := dst.RGBAAt(4+1, 1); got.B < got.R {
		t.Fatalf("pole pixel = %v, want a cold tint", got)
	}
}

func TestSetParametersUpdateSurface(t *testing.T) {
	world := New(4)
	if !world.SetFloatParameter("solar_energy", 12.5) {
		t.Fatal("solar_energy not accepted")
	}
	if got := world.Surface().Config().Params.SolarEnergy; got != 12.5 {
		t.Fatalf("surface solar energy = %.2f, want 12.5", got)
	}
	if world.SetFloatParameter("size", 3) {
		t.Fatal("size must not be adjustable at runtime")
	}
	if !world.SetIntParameter("volcano_max_active", 0) {
		t.Fatal("volcano_max_active not accepted")
	}
	if got := world.Config().Params.VolcanoMaxActive; got != 1 {
		t.Fatalf("volcano cap = %d, want sanitized to 1", got)
	}
	if world.SetIntParameter("feature_count", -1) {
		t.Fatal("negative feature count accepted")
	}
	if world.Surface().Size() != 4 {
		t.Fatal("changing parameters resized the surface")
	}

	snapshot := world.Parameters()
	found := false
	for _, g := range snapshot.Groups {
		for _, p := range g.Params {
			if p.Key == "solar_energy" {
				found = p.Value == "12.5"
			}
		}
	}
	if !found {
		t.Fatal("snapshot does not report the new solar energy")
	}
	params := world.Config().Params
	for _, ctrl := range world.ParameterControls() {
		if _, ok := params.floatFields()[ctrl.Key]; ok && ctrl.Type == core.ParamTypeFloat {
			continue
		}
		if _, ok := params.intFields()[ctrl.Key]; ok && ctrl.Type == core.ParamTypeInt {
			continue
		}
		t.Fatalf("control %q has no setter", ctrl.Key)
	}
}

func TestRegisteredInCatalogue(t *testing.T) {
	factory, ok := core.Sims()["planet"]
	if !ok {
		t.Fatal("planet not registered")
	}
	sim := factory(map[string]string{"size": "6"})
	if sim.Name() != "planet" || sim.Size().W != 24 {
		t.Fatalf("factory built %s at %+v", sim.Name(), sim.Size())
	}
}

func TestStatsAndMarkers(t *testing.T) {
	cfg := quietConfig(4)
	cfg.Params.InitialLiquidDepth = 1
	world := NewWithConfig(cfg)
	world.Surface().volcanoes = append(world.Surface().volcanoes, pos(cube.FaceSouth, 1, 2))

	stats := world.Stats()
	if stats.ActiveVolcanoes != 1 || stats.Water != 96 {
		t.Fatalf("stats = %+v", stats)
	}
	markers := world.VolcanoMarkers()
	if len(markers) != 1 || markers[0] != image.Pt(4+1, 8+2) {
		t.Fatalf("markers = %v", markers)
	}
	if arrows := world.WindField(2); len(arrows) != 4*2*2 {
		t.Fatalf("wind field has %d arrows, want 16", len(arrows))
	}
}

func TestStepReportsEvents(t *testing.T) {
	cfg := quietConfig(4)
	cfg.Params.VolcanoSpawnChance = 1
	world := NewWithConfig(cfg)
	if err := world.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	events := world.Events()
	if len(events) != 1 || events[0].Kind != VolcanoPromoted {
		t.Fatalf("events = %v, want one promotion", events)
	}
	if world.Events() != nil {
		t.Fatal("events must be cleared after reading")
	}
}
