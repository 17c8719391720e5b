package list

import (
	"iter"

	"github.com/pavanmanishd/rawcoll"
	"github.com/pavanmanishd/rawcoll/arena"
)

// IntoIter yields the elements of a consumed List head to tail. Each node
// is freed as its element is yielded; Release drops the rest and frees the
// node slab.
type IntoIter[T any] struct {
	nodes     *arena.Slab[node[T]]
	cur       link
	remaining int
	released  bool
}

// Next yields the next element.
func (it *IntoIter[T]) Next() (T, bool) {
	if it.released {
		panic(rawcoll.ErrReleased)
	}
	if !it.cur.ok {
		var zero T
		return zero, false
	}
	n := it.nodes.Free(it.cur.ref)
	it.cur = n.next
	it.remaining--
	return n.elem, true
}

// Len returns the number of elements not yet yielded.
func (it *IntoIter[T]) Len() int {
	return it.remaining
}

// Release drops every element not yet yielded and frees the node slab.
// It is idempotent.
func (it *IntoIter[T]) Release() {
	if it.released {
		return
	}
	for it.cur.ok {
		n := it.nodes.Free(it.cur.ref)
		it.cur = n.next
		rawcoll.Drop(&n.elem)
	}
	it.remaining = 0
	if it.nodes != nil {
		it.nodes.Release()
		it.nodes = nil
	}
	it.released = true
}

// All yields the remaining elements and releases the iterator when the
// loop ends, including on break.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Release()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
