package rawcoll

import (
	"errors"
	"fmt"
)

var (
	// ErrReleased is the panic value for any operation on a container
	// after Release.
	ErrReleased = errors.New("rawcoll: use after Release()")

	// ErrDrainActive is the panic value for mutating a vector while a
	// Drain still borrows it.
	ErrDrainActive = errors.New("rawcoll: vector mutated while drained")

	// ErrCapacityOverflow is the panic value when a growth request cannot
	// be expressed as an allocation size.
	ErrCapacityOverflow = errors.New("rawcoll: capacity overflow")
)

// BoundsError reports an index or position outside the valid range of an
// operation. It is raised with panic, like a slice index out of range.
type BoundsError struct {
	Op    string // operation that rejected the index
	Index int
	Limit int // exclusive upper bound accepted by Op
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("rawcoll: %s index %d out of range [0:%d]", e.Op, e.Index, e.Limit)
}

// CheckIndex panics with a *BoundsError unless 0 <= index < limit.
func CheckIndex(op string, index, limit int) {
	if index < 0 || index >= limit {
		panic(&BoundsError{Op: op, Index: index, Limit: limit})
	}
}
