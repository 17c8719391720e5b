package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/rawcoll"
)

func collect[T any](next func() (T, bool)) []T {
	var out []T
	for {
		v, ok := next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestIntoIterRoundTrip(t *testing.T) {
	v := From(1, 2, 3, 4, 5)
	it := v.IntoIter()
	defer it.Release()

	assert.Equal(t, 5, it.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, collect(it.Next))
	assert.Zero(t, it.Len())

	_, ok := it.Next()
	assert.False(t, ok, "exhausted iterator must keep reporting false")
}

func TestIntoIterMovesBuffer(t *testing.T) {
	v := From("a", "b")
	ptr := v.buf.ptr

	it := v.IntoIter()
	defer it.Release()

	assert.Zero(t, v.Len())
	assert.Zero(t, v.Cap())
	assert.Nil(t, v.buf.ptr, "source must not keep the moved allocation")
	assert.Same(t, ptr, it.buf.ptr)

	// The source is an empty, usable Vec with a fresh allocation.
	v.Push("c")
	assert.NotSame(t, ptr, v.buf.ptr)
	assert.Equal(t, []string{"a", "b"}, collect(it.Next))
	assert.Equal(t, []string{"c"}, v.Slice())
}

func TestIntoIterDoubleEnded(t *testing.T) {
	it := From(1, 2, 3, 4, 5).IntoIter()
	defer it.Release()

	var got []int
	front, back := true, false
	for it.Len() > 0 {
		var x int
		var ok bool
		if front {
			x, ok = it.Next()
		} else {
			x, ok = it.NextBack()
		}
		require.True(t, ok)
		got = append(got, x)
		front, back = back, front
	}

	assert.Equal(t, []int{1, 5, 2, 4, 3}, got)
	_, ok := it.NextBack()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestIntoIterBackward(t *testing.T) {
	var got []int
	for x := range From(1, 2, 3).IntoIter().Backward() {
		got = append(got, x)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestIntoIterReleaseDropsRemaining(t *testing.T) {
	values, drops := newTracked(6)
	it := From(values...).IntoIter()

	first, _ := it.Next()
	last, _ := it.NextBack()
	it.Release()
	it.Release()

	assert.Equal(t, 0, first.id)
	assert.Equal(t, 5, last.id)
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1, 4: 1}, drops)
	assert.Nil(t, it.buf.ptr)

	assert.PanicsWithValue(t, rawcoll.ErrReleased, func() { it.Next() })
}

func TestIntoIterAllReleasesOnBreak(t *testing.T) {
	values, drops := newTracked(4)
	it := From(values...).IntoIter()

	for x := range it.All() {
		if x.id == 1 {
			break
		}
	}

	assert.Equal(t, map[int]int{2: 1, 3: 1}, drops)
	assert.True(t, it.released)
}

func TestDrain(t *testing.T) {
	v := From(1, 2, 3, 4)
	d := v.Drain()

	assert.Zero(t, v.Len(), "Drain must empty the Vec immediately")
	assert.Equal(t, 4, v.Cap())
	assert.Equal(t, 4, d.Len())

	var got []int
	for x := range d.All() {
		got = append(got, x)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	// The borrow is over; the buffer is reused without growing.
	v.Push(9)
	assert.Equal(t, []int{9}, v.Slice())
	assert.Equal(t, 4, v.Cap())
}

func TestDrainDoubleEnded(t *testing.T) {
	v := From("a", "b", "c")
	d := v.Drain()
	defer d.Release()

	x, _ := d.NextBack()
	y, _ := d.Next()
	z, _ := d.NextBack()
	assert.Equal(t, []string{"c", "a", "b"}, []string{x, y, z})
	_, ok := d.Next()
	assert.False(t, ok)
}

func TestDrainReleaseDropsRemaining(t *testing.T) {
	values, drops := newTracked(5)
	v := From(values...)
	d := v.Drain()

	taken, _ := d.Next()
	d.Release()
	d.Release()

	assert.Equal(t, 0, taken.id)
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1, 4: 1}, drops)

	// Tearing down the Vec must not touch the drained slots again.
	v.Release()
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1, 4: 1}, drops)
	assert.PanicsWithValue(t, rawcoll.ErrReleased, func() { d.Next() })
}

func TestDrainBlocksMutation(t *testing.T) {
	v := From(1, 2, 3)
	d := v.Drain()

	mutations := map[string]func(){
		"Push":     func() { v.Push(4) },
		"Pop":      func() { v.Pop() },
		"Insert":   func() { v.Insert(0, 4) },
		"Remove":   func() { v.Remove(0) },
		"Clear":    func() { v.Clear() },
		"Release":  func() { v.Release() },
		"Drain":    func() { v.Drain() },
		"IntoIter": func() { v.IntoIter() },
	}
	for name, f := range mutations {
		assert.PanicsWithValue(t, rawcoll.ErrDrainActive, f, name)
	}

	assert.Equal(t, []int{1, 2, 3}, collect(d.Next))
	d.Release()
	assert.NotPanics(t, func() { v.Push(4) })
}

func TestDrainEmpty(t *testing.T) {
	v := New[int]()
	d := v.Drain()
	_, ok := d.Next()
	assert.False(t, ok)
	d.Release()
	v.Release()
}
