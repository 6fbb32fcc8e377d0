package snake

import (
	"fmt"

	"github.com/lixenwraith/cubesnake/heading"
)

// Turn applies a command given in the snake's own frame and returns the new heading
// Only Up, Down, Left and Right are accepted; anything else leaves the snake untouched
func (s *Snake) Turn(cmd heading.Heading) (heading.Heading, error) {
	if !cmd.IsRelative() {
		return s.current, fmt.Errorf("%w: %v", ErrInvalidCommand, cmd)
	}

	next := resolveTurn(s.current, s.previous, cmd)
	s.previous = s.current
	s.current = next
	return next, nil
}

// TurnAbsolute points the snake straight at h
// previous is kept, so a following relative turn still uses the last frame
func (s *Snake) TurnAbsolute(h heading.Heading) {
	s.current = h
}

// resolveTurn maps a relative command onto an absolute heading
// While moving horizontally cur is the forward axis. While climbing or
// diving cur cannot tell left from right, so prev supplies the forward axis.
func resolveTurn(cur, prev, cmd heading.Heading) heading.Heading {
	c, p, d := cur.Vector(), prev.Vector(), cmd.Vector()
	vy := abs(c.Y)

	x := -c.Z*d.X - p.Z*vy*d.X - p.X*c.Y*d.Y

	y := 0
	if c.X != 0 || c.Z != 0 {
		y = d.Y
	}

	z := c.X*d.X + p.X*vy*d.X - p.Z*c.Y*d.Y

	return heading.FromVector(x, y, z)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
