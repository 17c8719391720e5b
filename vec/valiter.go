package vec

import "github.com/pavanmanishd/rawcoll"

// valIter yields the values in slots [start, end) of a buffer it does not
// own. Each yielded slot is zeroed so no slot is handed out twice and the
// buffer no longer references the value.
type valIter[T any] struct {
	buf        *rawBuffer[T]
	start, end int
}

func newValIter[T any](buf *rawBuffer[T], n int) valIter[T] {
	return valIter[T]{buf: buf, end: n}
}

func (it *valIter[T]) next() (T, bool) {
	if it.start == it.end {
		var zero T
		return zero, false
	}
	v := rawcoll.Take(it.buf.at(it.start))
	it.start++
	return v, true
}

func (it *valIter[T]) nextBack() (T, bool) {
	if it.start == it.end {
		var zero T
		return zero, false
	}
	it.end--
	return rawcoll.Take(it.buf.at(it.end)), true
}

func (it *valIter[T]) len() int {
	return it.end - it.start
}

// dropRest drops every value not yet yielded.
func (it *valIter[T]) dropRest() {
	for ; it.start < it.end; it.start++ {
		rawcoll.Drop(it.buf.at(it.start))
	}
}
