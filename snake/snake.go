// Package snake implements the snake body, the relative turn resolver and the
// per-tick movement rule for a snake living in a discrete cube.
//
// A Snake is not safe for concurrent use. The driver owns sequencing: at most
// one Tick, Turn or TurnAbsolute call may be in flight per snake.
package snake

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/cubesnake/grid"
	"github.com/lixenwraith/cubesnake/heading"
)

const (
	// InitialLength is the segment count of a freshly created snake
	InitialLength = 3

	// MinCubeSize is the smallest cube a snake can be created in
	MinCubeSize = 2*SpawnMargin + 1

	// SpawnMargin keeps the spawned head far enough from every face for the tail to fit
	SpawnMargin = InitialLength - 1
)

// Snake is an ordered run of cells, head first, plus its heading history
type Snake struct {
	id       uuid.UUID
	body     []grid.Point
	current  heading.Heading
	previous heading.Heading
	bitten   bool
}

// New places a snake with a random head and a random horizontal heading
// The two tail segments trail behind the head against the heading
func New(rng *rand.Rand, b grid.Bounds) (*Snake, error) {
	if err := b.Validate(SpawnMargin); err != nil {
		return nil, fmt.Errorf("snake: cube size %d below %d: %w", b.Size, MinCubeSize, err)
	}

	// ids 3..6: Left, Right, Ahead, Back
	dir := heading.FromID(rng.Intn(4) + 3)
	head := grid.RandomPoint(rng, b, SpawnMargin)
	v := dir.Vector()

	body := make([]grid.Point, 0, InitialLength)
	for i := 0; i < InitialLength; i++ {
		body = append(body, head.Sub(v.Scale(i)))
	}

	return &Snake{
		id:       uuid.New(),
		body:     body,
		current:  dir,
		previous: heading.Nowhere,
	}, nil
}

// FromBody builds a snake from explicit cells, head first
// Links between consecutive cells must be single axis-aligned steps
func FromBody(points []grid.Point, current, previous heading.Heading) (*Snake, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrDetachedBody)
	}
	for i := 1; i < len(points); i++ {
		if !grid.Adjacent(points[i-1], points[i]) {
			return nil, fmt.Errorf("%w: %v and %v at index %d", ErrDetachedBody, points[i-1], points[i], i)
		}
	}

	body := make([]grid.Point, len(points))
	copy(body, points)

	return &Snake{
		id:       uuid.New(),
		body:     body,
		current:  current,
		previous: previous,
	}, nil
}

// ID identifies the snake across log lines and driver maps
func (s *Snake) ID() uuid.UUID {
	return s.id
}

// Head returns the first body cell
func (s *Snake) Head() grid.Point {
	return s.body[0]
}

// Tail returns the last body cell
func (s *Snake) Tail() grid.Point {
	return s.body[len(s.body)-1]
}

// Len returns the number of body cells
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the cells, head first
func (s *Snake) Body() []grid.Point {
	out := make([]grid.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Heading returns the direction of the next move
func (s *Snake) Heading() heading.Heading {
	return s.current
}

// PreviousHeading returns the heading held before the last relative turn
func (s *Snake) PreviousHeading() heading.Heading {
	return s.previous
}

// Bitten reports whether the snake has ever moved into its own body
func (s *Snake) Bitten() bool {
	return s.bitten
}

// OutOfBounds reports whether the head has left the cube
func (s *Snake) OutOfBounds(b grid.Bounds) bool {
	return !b.InBounds(s.Head())
}

// NextCell returns the cell the head moves into on the next tick
func (s *Snake) NextCell() grid.Point {
	return s.Head().Add(s.current.Vector())
}

// Contains reports whether p is any body cell
func (s *Snake) Contains(p grid.Point) bool {
	for _, c := range s.body {
		if c == p {
			return true
		}
	}
	return false
}

func (s *Snake) growHead(p grid.Point) {
	s.body = append(s.body, grid.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = p
}

// shrinkTail panics with *InvariantViolation on a body of one cell or less
func (s *Snake) shrinkTail() grid.Point {
	n := len(s.body)
	if n <= 1 {
		panic(&InvariantViolation{Op: "shrinkTail", Len: n})
	}
	tail := s.body[n-1]
	s.body = s.body[:n-1]
	return tail
}

func (s *Snake) markBitten() {
	s.bitten = true
}
