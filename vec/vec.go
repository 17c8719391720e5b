// Package vec implements a growable contiguous array over a manually
// managed buffer.
//
// A Vec owns its buffer and the values in slots [0, Len()). Capacity grows
// 0, 1, 2, 4, ... on demand. Values leave a Vec either by being moved out
// (Pop, Remove, iteration) or by being dropped (Clear, Release, or Release
// on an unfinished iterator); every value is dropped at most once.
//
// A Vec is not safe for concurrent use.
package vec

import (
	"iter"

	"github.com/pavanmanishd/rawcoll"
)

// Vec is a growable array. The zero value is an empty Vec ready to use.
type Vec[T any] struct {
	buf      rawBuffer[T]
	len      int
	draining bool
	released bool
}

// New returns an empty Vec without an allocation.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// WithCapacity returns an empty Vec that can hold n values before growing.
func WithCapacity[T any](n int) *Vec[T] {
	v := &Vec[T]{}
	if n > 0 {
		v.buf.reserve(n)
	}
	return v
}

// From returns a Vec holding a copy of values.
func From[T any](values ...T) *Vec[T] {
	v := WithCapacity[T](len(values))
	for _, x := range values {
		v.Push(x)
	}
	return v
}

// Len returns the number of live values.
func (v *Vec[T]) Len() int {
	return v.len
}

// Cap returns the number of values the current allocation can hold.
func (v *Vec[T]) Cap() int {
	return v.buf.cap
}

// Push appends elem, growing the buffer when it is full.
func (v *Vec[T]) Push(elem T) {
	v.checkMutable()
	if v.len == v.buf.cap {
		v.buf.grow()
	}
	*v.buf.at(v.len) = elem
	v.len++
}

// Pop removes and returns the last value. It reports false if v is empty.
func (v *Vec[T]) Pop() (T, bool) {
	v.checkMutable()
	if v.len == 0 {
		var zero T
		return zero, false
	}
	v.len--
	return rawcoll.Take(v.buf.at(v.len)), true
}

// Insert places elem at index, shifting later values one slot right.
// It panics with a *rawcoll.BoundsError if index > Len().
func (v *Vec[T]) Insert(index int, elem T) {
	v.checkMutable()
	rawcoll.CheckIndex("insert", index, v.len+1)
	if v.len == v.buf.cap {
		v.buf.grow()
	}
	v.buf.shift(index, index+1, v.len-index)
	*v.buf.at(index) = elem
	v.len++
}

// Remove removes and returns the value at index, shifting later values one
// slot left. It panics with a *rawcoll.BoundsError if index >= Len().
func (v *Vec[T]) Remove(index int) T {
	v.checkMutable()
	rawcoll.CheckIndex("remove", index, v.len)
	result := *v.buf.at(index)
	v.buf.shift(index+1, index, v.len-index-1)
	v.len--
	// The vacated last slot still holds a copy of the old tail value.
	rawcoll.Take(v.buf.at(v.len))
	return result
}

// At returns a pointer to the value at index. The pointer is invalidated
// by any operation that grows or shifts the buffer.
func (v *Vec[T]) At(index int) *T {
	v.checkLive()
	rawcoll.CheckIndex("at", index, v.len)
	return v.buf.at(index)
}

// Slice returns the live values as a slice aliasing the buffer. Writes
// through it are visible in v. Like At, it is invalidated by growth.
func (v *Vec[T]) Slice() []T {
	v.checkLive()
	return v.buf.slots(0, v.len)
}

// All returns an iterator over index-value pairs that leaves v unchanged.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(i, *v.buf.at(i)) {
				return
			}
		}
	}
}

// Clear drops every live value and keeps the allocation.
func (v *Vec[T]) Clear() {
	v.checkMutable()
	for v.len > 0 {
		v.len--
		rawcoll.Drop(v.buf.at(v.len))
	}
}

// Release drops every live value and frees the buffer. Release is
// idempotent; any other use afterwards panics with rawcoll.ErrReleased.
func (v *Vec[T]) Release() {
	if v.released {
		return
	}
	v.Clear()
	v.buf.release()
	v.released = true
}

// Drain empties v and returns an iterator over the values it held. v keeps
// its buffer but cannot be mutated until the Drain is released.
func (v *Vec[T]) Drain() *Drain[T] {
	v.checkMutable()
	d := &Drain[T]{vec: v, iter: newValIter(&v.buf, v.len)}
	v.len = 0
	v.draining = true
	return d
}

// IntoIter moves the buffer and its values into a new iterator and leaves
// v empty with no allocation.
func (v *Vec[T]) IntoIter() *IntoIter[T] {
	v.checkMutable()
	it := &IntoIter[T]{buf: v.buf}
	it.iter = newValIter(&it.buf, v.len)
	v.buf = rawBuffer[T]{}
	v.len = 0
	return it
}

func (v *Vec[T]) checkLive() {
	if v.released {
		panic(rawcoll.ErrReleased)
	}
}

func (v *Vec[T]) checkMutable() {
	v.checkLive()
	if v.draining {
		panic(rawcoll.ErrDrainActive)
	}
}
