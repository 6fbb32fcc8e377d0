package grid

import (
	"golang.org/x/exp/rand"
)

// NewRand returns a generator seeded for reproducible placement
// A zero seed is a valid seed, callers wanting variety pass a time-derived value
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomPoint picks a cell uniformly from those at least margin cells away from every face
// Panics if Validate(margin) fails; check bounds at configuration time
func RandomPoint(rng *rand.Rand, b Bounds, margin int) Point {
	if err := b.Validate(margin); err != nil {
		panic(err)
	}
	span := b.Size - 2*margin
	return Point{
		X: margin + rng.Intn(span),
		Y: margin + rng.Intn(span),
		Z: margin + rng.Intn(span),
	}
}
