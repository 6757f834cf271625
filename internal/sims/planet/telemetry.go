package planet

import "fmt"

// RunResult captures telemetry from a deterministic headless run.
type RunResult struct {
	Seed  int64 `json:"seed"`
	Size  int   `json:"size"`
	Ticks int   `json:"ticks"`

	// Start and End are the surface totals before the first and after the
	// last tick.
	Start Totals `json:"start"`
	End   Totals `json:"end"`

	// PeakMolten is the most molten liquid on the surface at any tick.
	PeakMolten     float64 `json:"peak_molten"`
	PeakMoltenTick int     `json:"peak_molten_tick"`
	// PeakGas is the most vapour in the atmosphere at any tick.
	PeakGas     float64 `json:"peak_gas"`
	PeakGasTick int     `json:"peak_gas_tick"`

	VolcanoesPromoted int `json:"volcanoes_promoted"`
	VolcanoesRetired  int `json:"volcanoes_retired"`
	PeakVolcanoes     int `json:"peak_volcanoes"`

	// Err is set when a tick aborted; Ticks then counts the completed ones.
	Err string `json:"error,omitempty"`
}

// Run builds a planet from cfg, advances it for the requested number of
// ticks and keeps the peaks seen along the way.
func Run(cfg Config, ticks int) RunResult {
	world := NewWithConfig(cfg)
	s := world.Surface()
	result := RunResult{
		Seed:  world.Config().Seed,
		Size:  s.Size(),
		Start: s.Totals(),
	}

	for step := 1; step <= ticks; step++ {
		if err := world.Step(); err != nil {
			result.Err = err.Error()
			break
		}
		result.Ticks = step

		for _, ev := range world.Events() {
			switch ev.Kind {
			case VolcanoPromoted:
				result.VolcanoesPromoted++
			case VolcanoRetired:
				result.VolcanoesRetired++
			}
		}
		if active := len(s.volcanoes); active > result.PeakVolcanoes {
			result.PeakVolcanoes = active
		}

		totals := s.Totals()
		if totals.Molten > result.PeakMolten {
			result.PeakMolten = totals.Molten
			result.PeakMoltenTick = step
		}
		if totals.Gas > result.PeakGas {
			result.PeakGas = totals.Gas
			result.PeakGasTick = step
		}
	}
	result.End = s.Totals()
	return result
}

// Summary renders the result on one line for command output.
func (r RunResult) Summary() string {
	status := "ok"
	if r.Err != "" {
		status = r.Err
	}
	return fmt.Sprintf("seed=%d size=%d ticks=%d temp=%.1f->%.1f water=%.1f->%.1f ice=%.1f molten(peak)=%.1f@%d gas(peak)=%.1f@%d volcanoes=+%d/-%d %s",
		r.Seed, r.Size, r.Ticks,
		r.Start.MeanTemperature, r.End.MeanTemperature,
		r.Start.Water, r.End.Water,
		r.End.Coating,
		r.PeakMolten, r.PeakMoltenTick,
		r.PeakGas, r.PeakGasTick,
		r.VolcanoesPromoted, r.VolcanoesRetired,
		status)
}

// WaterBalance is the change in water held as liquid, ice and vapour. It is
// only approximately conserved: volcanoes boil water and melting ground
// releases more.
func (r RunResult) WaterBalance() float64 {
	before := r.Start.Water + r.Start.Coating + r.Start.Gas
	after := r.End.Water + r.End.Coating + r.End.Gas
	return after - before
}
