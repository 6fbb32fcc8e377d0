package snake

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCommand rejects turn commands outside Up, Down, Left, Right
	ErrInvalidCommand = errors.New("snake: invalid relative command")

	// ErrDetachedBody rejects bodies with gaps or diagonal links
	ErrDetachedBody = errors.New("snake: body cells not contiguous")
)

// InvariantViolation is the panic value for corrupted snake state
// It is never returned as an ordinary error
type InvariantViolation struct {
	Op  string
	Len int
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("snake: invariant violated in %s (body length %d)", e.Op, e.Len)
}
