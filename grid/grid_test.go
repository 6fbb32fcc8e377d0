package grid

import (
	"errors"
	"testing"
)

func TestInBounds(t *testing.T) {
	b := NewBounds(4)

	// Exhaustive over a shell one cell wider than the cube
	for x := -1; x <= 4; x++ {
		for y := -1; y <= 4; y++ {
			for z := -1; z <= 4; z++ {
				want := x >= 0 && x < 4 && y >= 0 && y < 4 && z >= 0 && z < 4
				if got := b.InBounds(P(x, y, z)); got != want {
					t.Errorf("InBounds(%d,%d,%d) = %v, want %v", x, y, z, got, want)
				}
			}
		}
	}
}

func TestInBoundsSingleCell(t *testing.T) {
	b := NewBounds(1)
	if !b.InBounds(P(0, 0, 0)) {
		t.Error("Expected origin to be inside a 1-cell cube")
	}
	if b.InBounds(P(1, 0, 0)) {
		t.Error("Expected (1,0,0) to be outside a 1-cell cube")
	}
}

func TestPointArithmetic(t *testing.T) {
	a := P(1, 2, 3)
	b := P(-1, 0, 4)

	if got := a.Add(b); got != P(0, 2, 7) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != P(2, 2, -1) {
		t.Errorf("Sub = %v", got)
	}
	if got := b.Scale(-2); got != P(2, 0, -8) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.String(); got != "(1,2,3)" {
		t.Errorf("String = %q", got)
	}
}

func TestAdjacent(t *testing.T) {
	tests := []struct {
		a, b Point
		want bool
	}{
		{P(0, 0, 0), P(1, 0, 0), true},
		{P(0, 0, 0), P(0, -1, 0), true},
		{P(3, 3, 3), P(3, 3, 4), true},
		{P(0, 0, 0), P(0, 0, 0), false},
		{P(0, 0, 0), P(1, 1, 0), false},
		{P(0, 0, 0), P(2, 0, 0), false},
	}
	for _, tt := range tests {
		if got := Adjacent(tt.a, tt.b); got != tt.want {
			t.Errorf("Adjacent(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := NewBounds(5).Validate(2); err != nil {
		t.Errorf("Expected size 5 margin 2 to be valid, got %v", err)
	}
	if err := NewBounds(4).Validate(2); !errors.Is(err, ErrBoundsTooSmall) {
		t.Errorf("Expected ErrBoundsTooSmall, got %v", err)
	}
	if err := NewBounds(8).Validate(-1); err == nil {
		t.Error("Expected negative margin to be rejected")
	}
}

func TestRandomPointRespectsMargin(t *testing.T) {
	rng := NewRand(42)
	b := NewBounds(8)
	inner := NewBounds(4)

	for i := 0; i < 2000; i++ {
		p := RandomPoint(rng, b, 2)
		// Shift into the inner cube so the margin check reuses InBounds
		if !inner.InBounds(p.Sub(P(2, 2, 2))) {
			t.Fatalf("Point %v violates margin 2 in size 8", p)
		}
	}
}

func TestRandomPointCoversCube(t *testing.T) {
	rng := NewRand(7)
	b := NewBounds(3)
	seen := make(map[Point]bool)

	for i := 0; i < 5000; i++ {
		p := RandomPoint(rng, b, 0)
		if !b.InBounds(p) {
			t.Fatalf("Point %v out of bounds", p)
		}
		seen[p] = true
	}
	if len(seen) != 27 {
		t.Errorf("Expected all 27 cells to be drawn, got %d", len(seen))
	}
}

func TestRandomPointDeterministic(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)
	bounds := NewBounds(10)
	for i := 0; i < 50; i++ {
		if pa, pb := RandomPoint(a, bounds, 1), RandomPoint(b, bounds, 1); pa != pb {
			t.Fatalf("Draw %d diverged: %v vs %v", i, pa, pb)
		}
	}
}

func TestRandomPointPanicsOnTinyBounds(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for margin larger than the cube")
		}
	}()
	RandomPoint(NewRand(1), NewBounds(3), 2)
}
