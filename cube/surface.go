// Package cube models the lighting surface the game draws on: an N×N×N
// block of cells that are either dark or lit in a role color.
package cube

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/cubesnake/grid"
)

// Role selects the color a lit cell is shown in
type Role uint8

const (
	RoleOff Role = iota
	RoleSnake
	RoleFruit
)

func (r Role) String() string {
	switch r {
	case RoleSnake:
		return "snake"
	case RoleFruit:
		return "fruit"
	}
	return "off"
}

// Surface tracks which cells of the cube are lit
// Writes outside the cube are dropped, the same as an LED that does not exist
type Surface struct {
	bounds grid.Bounds
	lit    mapset.Set[grid.Point]
	fruit  mapset.Set[grid.Point]
}

// NewSurface returns a dark surface for the given cube
func NewSurface(b grid.Bounds) *Surface {
	return &Surface{
		bounds: b,
		lit:    mapset.New[grid.Point](),
		fruit:  mapset.New[grid.Point](),
	}
}

// Bounds returns the cube the surface covers
func (s *Surface) Bounds() grid.Bounds {
	return s.bounds
}

// Fill switches every cell off
func (s *Surface) Fill() {
	s.lit = mapset.New[grid.Point]()
	s.fruit = mapset.New[grid.Point]()
}

// SwitchOn lights p in the given role
// Lighting a fruit cell as snake repaints it
func (s *Surface) SwitchOn(p grid.Point, r Role) {
	if !s.bounds.InBounds(p) || r == RoleOff {
		return
	}
	s.lit.Put(p)
	if r == RoleFruit {
		s.fruit.Put(p)
	} else {
		s.fruit.Remove(p)
	}
}

// SwitchOff darkens p
func (s *Surface) SwitchOff(p grid.Point) {
	s.lit.Remove(p)
	s.fruit.Remove(p)
}

// Lit reports whether p is switched on
func (s *Surface) Lit(p grid.Point) bool {
	return s.lit.Has(p)
}

// Role returns the color role of p, RoleOff when dark
func (s *Surface) Role(p grid.Point) Role {
	switch {
	case s.fruit.Has(p):
		return RoleFruit
	case s.lit.Has(p):
		return RoleSnake
	}
	return RoleOff
}

// Count returns the number of lit cells
func (s *Surface) Count() int {
	return s.lit.Size()
}

// Each calls fn for every lit cell in unspecified order
func (s *Surface) Each(fn func(p grid.Point, r Role)) {
	s.lit.Each(func(p grid.Point) {
		fn(p, s.Role(p))
	})
}
