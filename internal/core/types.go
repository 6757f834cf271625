package core

import "image"

// Size describes the dimensions of a simulation's rendered image.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a simulation must implement. Step returns
// an error when the tick had to be aborted; the state is then undefined until
// the next Reset.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() error
	Render(dst *image.RGBA)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
