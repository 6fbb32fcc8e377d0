package snake

import (
	"github.com/lixenwraith/cubesnake/grid"
)

// Move reports the cells touched by one tick
type Move struct {
	Occupied   grid.Point // new head cell, reported on every tick
	Vacated    grid.Point // former tail cell, valid only when HasVacated
	HasVacated bool
	Bit        bool // this tick ran the head into the body
}

// Tick advances the snake one cell along its heading
// didEat keeps the tail in place so the snake grows by one. Bounds and fruit
// checks belong to the caller: compare NextCell before the tick, check
// OutOfBounds and Bitten after it.
func (s *Snake) Tick(didEat bool) Move {
	next := s.NextCell()

	m := Move{Occupied: next}
	if s.Contains(next) {
		s.markBitten()
		m.Bit = true
	}

	s.growHead(next)

	if !didEat {
		m.Vacated = s.shrinkTail()
		m.HasVacated = true
	}

	return m
}
