package snake

import (
	"testing"

	"github.com/lixenwraith/cubesnake/grid"
	"github.com/lixenwraith/cubesnake/heading"
)

func TestTickShift(t *testing.T) {
	s := mustBody(t, heading.Right, heading.Nowhere, grid.P(2, 0, 0), grid.P(1, 0, 0), grid.P(0, 0, 0))

	m := s.Tick(false)
	if m.Occupied != grid.P(3, 0, 0) {
		t.Errorf("Occupied = %v, want (3,0,0)", m.Occupied)
	}
	if !m.HasVacated || m.Vacated != grid.P(0, 0, 0) {
		t.Errorf("Vacated = %v (has %v), want (0,0,0)", m.Vacated, m.HasVacated)
	}
	if m.Bit || s.Bitten() {
		t.Error("Unexpected bite on a straight move")
	}

	want := []grid.Point{grid.P(3, 0, 0), grid.P(2, 0, 0), grid.P(1, 0, 0)}
	for i, p := range s.Body() {
		if p != want[i] {
			t.Errorf("Body[%d] = %v, want %v", i, p, want[i])
		}
	}
}

func TestTickFeedGrows(t *testing.T) {
	s := mustBody(t, heading.Up, heading.Right, grid.P(0, 1, 0), grid.P(0, 0, 0))

	m := s.Tick(true)
	if m.HasVacated {
		t.Errorf("Feeding tick reported vacated cell %v", m.Vacated)
	}
	if m.Occupied != grid.P(0, 2, 0) {
		t.Errorf("Occupied = %v, want (0,2,0)", m.Occupied)
	}
	if s.Len() != 3 || s.Tail() != grid.P(0, 0, 0) {
		t.Errorf("Expected tail kept: len %d tail %v", s.Len(), s.Tail())
	}
}

func TestTickLengthMonotonic(t *testing.T) {
	s, err := New(grid.NewRand(11), grid.NewBounds(64))
	if err != nil {
		t.Fatal(err)
	}

	// Feed on every third tick; bounds are not the tick's concern
	for i := 0; i < 24; i++ {
		before := s.Len()
		feed := i%3 == 0
		s.Tick(feed)

		want := before
		if feed {
			want++
		}
		if s.Len() != want {
			t.Fatalf("Tick %d (feed=%v): len %d -> %d, want %d", i, feed, before, s.Len(), want)
		}
	}
}

func TestTickSelfCollision(t *testing.T) {
	// Square loop, head at (0,1,0) heading Down onto the tail cell (0,0,0)
	s := mustBody(t, heading.Down, heading.Nowhere,
		grid.P(0, 1, 0), grid.P(1, 1, 0), grid.P(1, 0, 0), grid.P(0, 0, 0))

	if s.NextCell() != grid.P(0, 0, 0) {
		t.Fatalf("Setup: NextCell = %v", s.NextCell())
	}

	m := s.Tick(false)
	if !m.Bit || !s.Bitten() {
		t.Error("Expected bite when moving onto an existing body cell")
	}
	if m.Occupied != grid.P(0, 0, 0) {
		t.Errorf("Occupied = %v", m.Occupied)
	}
	// The vacated tail is the bitten cell itself; the body keeps its length
	if s.Len() != 4 {
		t.Errorf("Expected length 4 after bite, got %d", s.Len())
	}
}

func TestTickSelfCollisionMidBody(t *testing.T) {
	// U-turn into the second segment via an absolute reversal
	s := mustBody(t, heading.Right, heading.Nowhere, grid.P(2, 0, 0), grid.P(1, 0, 0), grid.P(0, 0, 0))
	s.TurnAbsolute(heading.Left)

	m := s.Tick(false)
	if !m.Bit {
		t.Error("Expected bite on reversal")
	}
	if !s.Bitten() {
		t.Error("Expected bitten flag")
	}
}

func TestTickWalksOutOfCube(t *testing.T) {
	b := grid.NewBounds(5)
	s := mustBody(t, heading.Back, heading.Nowhere, grid.P(2, 2, 2), grid.P(2, 2, 1), grid.P(2, 2, 0))

	for i := 0; i < 2; i++ {
		s.Tick(false)
		if s.OutOfBounds(b) {
			t.Fatalf("Left the cube early at tick %d: %v", i, s.Head())
		}
	}
	s.Tick(false)
	if !s.OutOfBounds(b) {
		t.Errorf("Expected head %v outside size 5", s.Head())
	}
	if s.Bitten() {
		t.Error("Wall exit is not a bite")
	}
}

func TestTickNowhereBitesItself(t *testing.T) {
	s := mustBody(t, heading.Nowhere, heading.Nowhere, grid.P(1, 1, 1), grid.P(1, 1, 0))
	m := s.Tick(false)
	if !m.Bit {
		t.Error("Standing still re-enters the head cell")
	}
}
