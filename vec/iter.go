package vec

import (
	"iter"

	"github.com/pavanmanishd/rawcoll"
)

// IntoIter yields the values of a consumed Vec from either end. It owns
// the buffer; Release drops whatever was not yielded and frees it.
type IntoIter[T any] struct {
	buf      rawBuffer[T]
	iter     valIter[T]
	released bool
}

// Next yields the next value from the front.
func (it *IntoIter[T]) Next() (T, bool) {
	it.checkLive()
	return it.iter.next()
}

// NextBack yields the next value from the back.
func (it *IntoIter[T]) NextBack() (T, bool) {
	it.checkLive()
	return it.iter.nextBack()
}

// Len returns the number of values not yet yielded.
func (it *IntoIter[T]) Len() int {
	return it.iter.len()
}

// Release drops every value not yet yielded and frees the buffer.
// It is idempotent.
func (it *IntoIter[T]) Release() {
	if it.released {
		return
	}
	it.iter.dropRest()
	it.buf.release()
	it.released = true
}

// All yields the remaining values front to back and releases the iterator
// when the loop ends, including on break.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return consume(it.Next, it.Release)
}

// Backward is like All but yields back to front.
func (it *IntoIter[T]) Backward() iter.Seq[T] {
	return consume(it.NextBack, it.Release)
}

func (it *IntoIter[T]) checkLive() {
	if it.released {
		panic(rawcoll.ErrReleased)
	}
}

// Drain yields the values a Vec held when Drain was called. The Vec keeps
// its buffer; Release drops whatever was not yielded and hands the Vec
// back to its owner.
type Drain[T any] struct {
	vec  *Vec[T]
	iter valIter[T]
}

// Next yields the next value from the front.
func (d *Drain[T]) Next() (T, bool) {
	d.checkLive()
	return d.iter.next()
}

// NextBack yields the next value from the back.
func (d *Drain[T]) NextBack() (T, bool) {
	d.checkLive()
	return d.iter.nextBack()
}

// Len returns the number of values not yet yielded.
func (d *Drain[T]) Len() int {
	return d.iter.len()
}

// Release drops every value not yet yielded and ends the borrow of the
// Vec. It is idempotent.
func (d *Drain[T]) Release() {
	if d.vec == nil {
		return
	}
	d.iter.dropRest()
	d.vec.draining = false
	d.vec = nil
}

// All yields the remaining values front to back and releases the drain
// when the loop ends, including on break.
func (d *Drain[T]) All() iter.Seq[T] {
	return consume(d.Next, d.Release)
}

func (d *Drain[T]) checkLive() {
	if d.vec == nil {
		panic(rawcoll.ErrReleased)
	}
}

func consume[T any](next func() (T, bool), release func()) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer release()
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
