// Package heading defines the seven axis-aligned directions a snake can face.
//
// A Heading is a closed enumeration; behaviour per variant is table data.
// Only the six unit vectors along one axis plus the zero vector are
// representable, there are no diagonals.
package heading

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/cubesnake/grid"
)

// ErrUnknown is returned by Parse for names outside the enumeration
var ErrUnknown = errors.New("heading: unknown name")

// Heading is a movement direction in the cube
type Heading uint8

const (
	Nowhere Heading = iota // Zero vector, stands in for "no heading"
	Up                     // +Y
	Down                   // -Y
	Left                   // -X
	Right                  // +X
	Ahead                  // -Z
	Back                   // +Z
	HeadingCount
)

var vectors = [HeadingCount]grid.Point{
	Nowhere: {X: 0, Y: 0, Z: 0},
	Up:      {X: 0, Y: 1, Z: 0},
	Down:    {X: 0, Y: -1, Z: 0},
	Left:    {X: -1, Y: 0, Z: 0},
	Right:   {X: 1, Y: 0, Z: 0},
	Ahead:   {X: 0, Y: 0, Z: -1},
	Back:    {X: 0, Y: 0, Z: 1},
}

var names = [HeadingCount]string{
	Nowhere: "Nowhere",
	Up:      "Up",
	Down:    "Down",
	Left:    "Left",
	Right:   "Right",
	Ahead:   "Ahead",
	Back:    "Back",
}

// Vector returns the unit (or zero) offset of h
// Values outside the enumeration yield the zero vector
func (h Heading) Vector() grid.Point {
	if h >= HeadingCount {
		return grid.Point{}
	}
	return vectors[h]
}

func (h Heading) String() string {
	if h >= HeadingCount {
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
	return names[h]
}

// IsRelative reports whether h is accepted as a turn command in the snake's own frame
func (h Heading) IsRelative() bool {
	switch h {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// FromID maps the ordinals 1..6 to Up, Down, Left, Right, Ahead, Back
// Any other id yields Nowhere
func FromID(id int) Heading {
	switch id {
	case 1:
		return Up
	case 2:
		return Down
	case 3:
		return Left
	case 4:
		return Right
	case 5:
		return Ahead
	case 6:
		return Back
	}
	return Nowhere
}

// FromVector classifies a raw offset
// Y is tested before X before Z; the first axis holding ±1 wins
func FromVector(x, y, z int) Heading {
	switch y {
	case 1:
		return Up
	case -1:
		return Down
	}
	switch x {
	case 1:
		return Right
	case -1:
		return Left
	}
	switch z {
	case 1:
		return Back
	case -1:
		return Ahead
	}
	return Nowhere
}

// Parse resolves a case-insensitive heading name
func Parse(name string) (Heading, error) {
	n := strings.TrimSpace(name)
	for h := Nowhere; h < HeadingCount; h++ {
		if strings.EqualFold(n, names[h]) {
			return h, nil
		}
	}
	return Nowhere, fmt.Errorf("%w: %q", ErrUnknown, name)
}
