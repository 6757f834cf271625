package main

import (
	"context"
	"image"
	"sync"
	"time"

	"cube-planet/internal/core"
	"cube-planet/internal/logger"
	"cube-planet/internal/render"
	"cube-planet/internal/sims/planet"
	"cube-planet/internal/stream"
)

// publisher receives every rendered frame and stats snapshot.
type publisher interface {
	BroadcastFrame(png []byte)
	BroadcastStats(v any)
}

// status is what the stream reports after each tick.
type status struct {
	planet.Stats
	Seed   int64  `json:"seed"`
	Layer  string `json:"layer"`
	Paused bool   `json:"paused"`
	Halted string `json:"halted,omitempty"`
}

// runner owns the world; only its loop goroutine touches it.
type runner struct {
	world   *planet.World
	net     *image.RGBA
	encoder *render.FrameEncoder
	pacer   *core.FixedStep
	out     publisher
	log     *logger.Logger

	paused bool
	halted string
	step   bool

	mu   sync.Mutex
	last status
}

func newRunner(world *planet.World, tps, scale int, out publisher, log *logger.Logger) *runner {
	return &runner{
		world:   world,
		net:     render.NewNetImage(world.Surface().Topology()),
		encoder: render.NewFrameEncoder(scale),
		pacer:   core.NewFixedStep(tps),
		out:     out,
		log:     log,
	}
}

// run polls the pacer until ctx is done, applying viewer commands between
// ticks.
func (r *runner) run(ctx context.Context, commands <-chan stream.Command) {
	poll := time.NewTicker(r.pacer.Interval() / 2)
	defer poll.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-commands:
			r.handle(cmd)
			r.publish()
		case <-poll.C:
			if due := r.pacer.Due(); due > 0 {
				r.advance(due)
				r.publish()
			}
		}
	}
}

func (r *runner) handle(cmd stream.Command) {
	switch cmd.Type {
	case "pause":
		r.paused = true
	case "resume":
		r.paused = false
	case "step":
		r.step = true
		r.advance(1)
	case "reset":
		r.world.Reset(cmd.Seed)
		r.halted = ""
		r.log.Info("reset with seed %d", r.world.Config().Seed)
	case "layer":
		layer, ok := planet.ParseLayer(cmd.Layer)
		if !ok {
			r.log.Warn("unknown layer %q", cmd.Layer)
			return
		}
		r.world.SetLayer(layer)
	default:
		r.log.Warn("unknown command %q", cmd.Type)
	}
}

// advance steps the world up to n ticks unless it is paused or halted. An
// explicit step request runs even while paused.
func (r *runner) advance(n int) {
	if r.halted != "" || (r.paused && !r.step) {
		return
	}
	r.step = false
	for i := 0; i < n; i++ {
		if err := r.world.Step(); err != nil {
			r.halted = err.Error()
			r.log.Error("tick %d aborted: %v", r.world.Surface().Tick(), err)
			return
		}
		for _, ev := range r.world.Events() {
			r.log.Event(ev.Kind.String(), ev.Tick, ev.Position.String())
		}
	}
}

func (r *runner) publish() {
	r.world.Render(r.net)
	frame, err := r.encoder.Encode(r.net)
	if err != nil {
		r.log.Error("encode frame: %v", err)
		return
	}
	st := status{
		Stats:  r.world.Stats(),
		Seed:   r.world.Config().Seed,
		Layer:  r.world.Layer().String(),
		Paused: r.paused,
		Halted: r.halted,
	}
	r.mu.Lock()
	r.last = st
	r.mu.Unlock()

	r.out.BroadcastFrame(frame)
	r.out.BroadcastStats(st)
}

// snapshot returns the status published last; safe from any goroutine.
func (r *runner) snapshot() status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
