package vec

import (
	"math"
	"unsafe"

	"github.com/pavanmanishd/rawcoll"
)

// rawBuffer owns one allocation sized for cap elements. It does not know
// how many of those slots hold live values.
type rawBuffer[T any] struct {
	ptr *T // nil iff cap == 0
	cap int
}

// elemSize returns the size of one T in bytes.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// allocate returns a pointer to n contiguous, typed, zeroed slots.
// The memory is allocated as []T so the GC scans any pointers stored in it.
func allocate[T any](n int) *T {
	if size := elemSize[T](); size > 0 && uintptr(n) > math.MaxInt/size {
		panic(rawcoll.ErrCapacityOverflow)
	}
	return unsafe.SliceData(make([]T, n))
}

// grow doubles the capacity (or sets it to 1) and moves the existing slots
// to the new allocation. Pointers into the old allocation must not be used
// afterwards.
func (b *rawBuffer[T]) grow() {
	newCap := 1
	if b.cap > 0 {
		if b.cap > math.MaxInt/2 {
			panic(rawcoll.ErrCapacityOverflow)
		}
		newCap = 2 * b.cap
	}
	b.resize(newCap)
}

// reserve grows the allocation to at least n slots.
func (b *rawBuffer[T]) reserve(n int) {
	if n > b.cap {
		b.resize(n)
	}
}

func (b *rawBuffer[T]) resize(newCap int) {
	ptr := allocate[T](newCap)
	if b.cap > 0 {
		old := b.slots(0, b.cap)
		copy(unsafe.Slice(ptr, newCap), old)
		// The old allocation no longer owns its values.
		clear(old)
	}
	b.ptr = ptr
	b.cap = newCap
}

// at returns a pointer to slot i. The caller guarantees 0 <= i < cap.
func (b *rawBuffer[T]) at(i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(b.ptr), uintptr(i)*elemSize[T]()))
}

// slots returns slots [lo, hi) as a slice aliasing the allocation.
func (b *rawBuffer[T]) slots(lo, hi int) []T {
	if hi == lo {
		return nil
	}
	return unsafe.Slice(b.at(lo), hi-lo)
}

// shift moves n slots starting at from to start at to. Overlapping ranges
// are handled like memmove.
func (b *rawBuffer[T]) shift(from, to, n int) {
	if n == 0 {
		return
	}
	copy(b.slots(to, to+n), b.slots(from, from+n))
}

// release drops the allocation. Live values must already have been dropped
// or moved out.
func (b *rawBuffer[T]) release() {
	b.ptr = nil
	b.cap = 0
}
