package planet

import "cube-planet/internal/cube"

// VolcanoEventKind distinguishes volcano lifecycle events.
type VolcanoEventKind uint8

const (
	VolcanoPromoted VolcanoEventKind = iota
	VolcanoRetired
)

func (k VolcanoEventKind) String() string {
	if k == VolcanoRetired {
		return "retired"
	}
	return "promoted"
}

// VolcanoEvent records a volcano starting or going dormant.
type VolcanoEvent struct {
	Tick     uint64
	Kind     VolcanoEventKind
	Position cube.Position
}

// Volcanoes returns the active volcano positions, oldest first.
func (s *Surface) Volcanoes() []cube.Position {
	out := make([]cube.Position, len(s.volcanoes))
	copy(out, s.volcanoes)
	return out
}

// DrainEvents returns the volcano events recorded since the previous call.
func (s *Surface) DrainEvents() []VolcanoEvent {
	if len(s.events) == 0 {
		return nil
	}
	out := make([]VolcanoEvent, len(s.events))
	copy(out, s.events)
	s.events = s.events[:0]
	return out
}

// Erupt forces p to volcano temperature and feeds it molten rock.
func (s *Surface) Erupt(p cube.Position) error {
	c := s.cell(p)
	c.Temperature = s.cfg.Params.VolcanoTemperature
	return c.AddLiquid(LiquidMoltenRock, s.cfg.Params.VolcanoMagma, s.coin)
}

// updateVolcanoes may promote one random cell, erupts every active volcano
// and may retire the oldest. The active set never exceeds VolcanoMaxActive:
// promoting into a full set retires the oldest first.
func (s *Surface) updateVolcanoes() {
	params := s.cfg.Params
	if s.chance(params.VolcanoSpawnChance) {
		p := s.topo.RandomPosition(s.rng)
		if !s.isVolcano(p) {
			if len(s.volcanoes) >= params.VolcanoMaxActive {
				s.retireOldest()
			}
			s.volcanoes = append(s.volcanoes, p)
			s.events = append(s.events, VolcanoEvent{Tick: s.tick, Kind: VolcanoPromoted, Position: p})
		}
	}

	for _, p := range s.volcanoes {
		if err := s.Erupt(p); err != nil {
			raise(err)
		}
	}

	if len(s.volcanoes) > 0 && s.chance(params.VolcanoRetireChance) {
		s.retireOldest()
	}
}

func (s *Surface) retireOldest() {
	if len(s.volcanoes) == 0 {
		return
	}
	p := s.volcanoes[0]
	s.volcanoes = append(s.volcanoes[:0], s.volcanoes[1:]...)
	s.events = append(s.events, VolcanoEvent{Tick: s.tick, Kind: VolcanoRetired, Position: p})
}

func (s *Surface) isVolcano(p cube.Position) bool {
	for _, v := range s.volcanoes {
		if v == p {
			return true
		}
	}
	return false
}
