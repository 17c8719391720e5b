// Package list implements a singly linked list whose nodes live in an
// arena.Slab and are linked by generation-checked references.
//
// Push and RemoveFront are O(1). Pop is O(n): without backward links the
// new tail is found by walking from the head.
//
// A List is not safe for concurrent use.
package list

import (
	"iter"

	"github.com/pavanmanishd/rawcoll"
	"github.com/pavanmanishd/rawcoll/arena"
)

// link points at the following node. The zero link means there is none.
type link struct {
	ref arena.Ref
	ok  bool
}

func linkTo(r arena.Ref) link {
	return link{ref: r, ok: true}
}

type node[T any] struct {
	elem T
	next link
}

// List is a singly linked list with tracked head and tail.
type List[T any] struct {
	nodes      *arena.Slab[node[T]]
	chunkSize  int
	start, end link
	len        int
	released   bool
}

// New returns an empty list whose nodes are allocated in chunks of
// arena.DefaultChunkSize.
func New[T any]() *List[T] {
	return NewWithChunkSize[T](0)
}

// NewWithChunkSize returns an empty list that allocates nodes chunkSize at
// a time. If chunkSize <= 0, arena.DefaultChunkSize is used.
func NewWithChunkSize[T any](chunkSize int) *List[T] {
	return &List[T]{chunkSize: chunkSize}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.len
}

// Push appends elem after the tail.
func (l *List[T]) Push(elem T) {
	l.checkLive()
	r := l.slab().Alloc(node[T]{elem: elem})
	if l.len == 0 {
		l.start = linkTo(r)
	} else {
		l.node(l.end).next = linkTo(r)
	}
	l.end = linkTo(r)
	l.len++
}

// Pop removes and returns the tail element, reporting false if the list
// is empty. It walks the whole list to find the new tail.
func (l *List[T]) Pop() (T, bool) {
	l.checkLive()
	if l.len == 0 {
		var zero T
		return zero, false
	}
	last := l.end
	if l.len == 1 {
		l.start, l.end = link{}, link{}
	} else {
		prev := l.start
		for n := l.node(prev); n.next.ref != last.ref; n = l.node(prev) {
			prev = n.next
		}
		l.node(prev).next = link{}
		l.end = prev
	}
	l.len--
	return l.nodes.Free(last.ref).elem, true
}

// Insert places elem so that it ends up at position pos. It panics with a
// *rawcoll.BoundsError if pos > Len().
func (l *List[T]) Insert(pos int, elem T) {
	l.checkLive()
	rawcoll.CheckIndex("insert", pos, l.len+1)
	if pos == l.len {
		l.Push(elem)
		return
	}
	if pos == 0 {
		l.start = linkTo(l.slab().Alloc(node[T]{elem: elem, next: l.start}))
		l.len++
		return
	}
	prev := l.start
	for i := 1; i < pos; i++ {
		prev = l.node(prev).next
	}
	p := l.node(prev)
	r := l.slab().Alloc(node[T]{elem: elem, next: p.next})
	// Alloc may have grown the slab; p is still valid because chunks never move.
	p.next = linkTo(r)
	l.len++
}

// RemoveFront removes and returns the head element, reporting false if the
// list is empty.
func (l *List[T]) RemoveFront() (T, bool) {
	l.checkLive()
	if l.len == 0 {
		var zero T
		return zero, false
	}
	head := l.nodes.Free(l.start.ref)
	l.start = head.next
	l.len--
	if l.len == 0 {
		l.end = link{}
	}
	return head.elem, true
}

// Front returns a pointer to the head element, reporting false if the list
// is empty.
func (l *List[T]) Front() (*T, bool) {
	return l.peek(l.start)
}

// Last returns a pointer to the tail element, reporting false if the list
// is empty.
func (l *List[T]) Last() (*T, bool) {
	return l.peek(l.end)
}

// All returns an iterator over the elements, head to tail, that leaves the
// list unchanged.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.start; cur.ok; {
			n := l.node(cur)
			if !yield(n.elem) {
				return
			}
			cur = n.next
		}
	}
}

// Clear drops every element and keeps the node slab for reuse.
func (l *List[T]) Clear() {
	l.checkLive()
	for cur := l.start; cur.ok; {
		n := l.nodes.Free(cur.ref)
		cur = n.next
		rawcoll.Drop(&n.elem)
	}
	l.start, l.end = link{}, link{}
	l.len = 0
}

// Release drops every element and frees the node slab. Release is
// idempotent; any other use afterwards panics with rawcoll.ErrReleased.
func (l *List[T]) Release() {
	if l.released {
		return
	}
	l.Clear()
	if l.nodes != nil {
		l.nodes.Release()
		l.nodes = nil
	}
	l.released = true
}

// IntoIter moves every node into a new iterator and leaves l empty.
func (l *List[T]) IntoIter() *IntoIter[T] {
	l.checkLive()
	it := &IntoIter[T]{nodes: l.nodes, cur: l.start, remaining: l.len}
	l.nodes = nil
	l.start, l.end = link{}, link{}
	l.len = 0
	return it
}

// Metrics returns a snapshot of the node slab statistics.
func (l *List[T]) Metrics() arena.Metrics {
	if l.nodes == nil {
		return arena.Metrics{}
	}
	return l.nodes.Metrics()
}

func (l *List[T]) peek(at link) (*T, bool) {
	l.checkLive()
	if !at.ok {
		return nil, false
	}
	return &l.node(at).elem, true
}

func (l *List[T]) node(at link) *node[T] {
	return l.nodes.Get(at.ref)
}

// slab returns the node slab, creating it on first use.
func (l *List[T]) slab() *arena.Slab[node[T]] {
	if l.nodes == nil {
		l.nodes = arena.NewSlab[node[T]](l.chunkSize)
	}
	return l.nodes
}

func (l *List[T]) checkLive() {
	if l.released {
		panic(rawcoll.ErrReleased)
	}
}
