package grid

import (
	"errors"
	"fmt"
)

// ErrBoundsTooSmall is returned when a cube cannot hold cells at the requested margin
var ErrBoundsTooSmall = errors.New("grid: bounds too small")

// Point is a cell address in the cube
// Comparable, safe to use as a map key
type Point struct {
	X, Y, Z int
}

// P is a convenience constructor for Point
func P(x, y, z int) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

// Sub returns the component-wise difference
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// Scale multiplies every component by s
func (p Point) Scale(s int) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Manhattan returns the L1 length of p treated as an offset
func (p Point) Manhattan() int {
	return abs(p.X) + abs(p.Y) + abs(p.Z)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Adjacent reports whether a and b differ by one unit step along exactly one axis
func Adjacent(a, b Point) bool {
	return a.Sub(b).Manhattan() == 1
}

// Bounds is the edge length of the cube
type Bounds struct {
	Size int
}

// NewBounds returns bounds for a cube with the given edge length
func NewBounds(size int) Bounds {
	return Bounds{Size: size}
}

// InBounds reports whether every coordinate of p lies in [0, Size)
func (b Bounds) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.Size &&
		p.Y >= 0 && p.Y < b.Size &&
		p.Z >= 0 && p.Z < b.Size
}

// Validate checks that at least one cell lies margin cells away from every face
func (b Bounds) Validate(margin int) error {
	if margin < 0 {
		return fmt.Errorf("grid: negative margin %d", margin)
	}
	if b.Size-2*margin <= 0 {
		return fmt.Errorf("%w: size %d with margin %d", ErrBoundsTooSmall, b.Size, margin)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
