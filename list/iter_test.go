package list

import (
	"slices"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/rawcoll"
)

func TestScenarioPushInsertRemoveFrontIterate(t *testing.T) {
	l := New[int]()
	for _, v := range []int{5, 6, 7, 8} {
		l.Push(v)
	}
	require.Equal(t, []int{5, 6, 7, 8}, slices.Collect(l.All()))

	l.Insert(0, 9)
	require.Equal(t, []int{9, 5, 6, 7, 8}, slices.Collect(l.All()))
	require.Equal(t, 5, l.Len())

	l.RemoveFront()
	require.Equal(t, []int{5, 6, 7, 8}, slices.Collect(l.All()))
	require.Equal(t, 4, l.Len())

	var got []int
	for v := range l.IntoIter().All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{5, 6, 7, 8}, got)
	assert.Zero(t, l.Len())
}

func TestIntoIterMovesNodes(t *testing.T) {
	l := fill(New[string](), "a", "b", "c")
	slab := l.nodes

	it := l.IntoIter()
	defer it.Release()

	assert.Nil(t, l.nodes, "source must not keep the moved slab")
	assert.Same(t, slab, it.nodes)
	assert.Zero(t, l.Len())
	_, ok := l.Last()
	assert.False(t, ok)

	// The source starts over with its own slab.
	l.Push("z")
	assert.NotSame(t, slab, l.nodes)

	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 2, it.Len())
	assert.Equal(t, 2, slab.Live(), "yielded nodes are freed immediately")
}

func TestIntoIterExhaustion(t *testing.T) {
	it := fill(New[int](), 1).IntoIter()
	defer it.Release()

	v, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	for i := 0; i < 3; i++ {
		_, ok = it.Next()
		assert.False(t, ok)
	}
	assert.Zero(t, it.Len())
}

func TestIntoIterOfEmptyList(t *testing.T) {
	it := New[int]().IntoIter()
	_, ok := it.Next()
	assert.False(t, ok)
	assert.NotPanics(t, it.Release)
}

func TestIntoIterReleaseDropsRemaining(t *testing.T) {
	l, drops := trackedList(5)
	it := l.IntoIter()

	first, _ := it.Next()
	second, _ := it.Next()
	it.Release()
	it.Release()

	assert.Equal(t, []int{0, 1}, []int{first.id, second.id})
	assert.Equal(t, map[int]int{2: 1, 3: 1, 4: 1}, drops)
	assert.Nil(t, it.nodes)
	assert.PanicsWithValue(t, rawcoll.ErrReleased, func() { it.Next() })

	// Releasing the consumed list must not reach the moved nodes.
	l.Release()
	assert.Equal(t, map[int]int{2: 1, 3: 1, 4: 1}, drops)
}

func TestIntoIterAllReleasesOnBreak(t *testing.T) {
	l, drops := trackedList(4)
	it := l.IntoIter()

	for v := range it.All() {
		if v.id == 0 {
			break
		}
	}

	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, drops)
	assert.True(t, it.released)
}

// TestAgainstSliceModel applies random operations to a List and to a plain
// slice and checks they never diverge.
func TestAgainstSliceModel(t *testing.T) {
	for round := 0; round < 20; round++ {
		l := NewWithChunkSize[string](randomdata.Number(1, 8))
		var model []string

		for step := 0; step < 150; step++ {
			switch randomdata.Number(0, 4) {
			case 0:
				x := randomdata.SillyName()
				l.Push(x)
				model = append(model, x)
			case 1:
				got, ok := l.Pop()
				require.Equal(t, len(model) > 0, ok)
				if ok {
					require.Equal(t, model[len(model)-1], got)
					model = model[:len(model)-1]
				}
			case 2:
				i := randomdata.Number(0, len(model)+1)
				x := randomdata.SillyName()
				l.Insert(i, x)
				model = slices.Insert(model, i, x)
			case 3:
				got, ok := l.RemoveFront()
				require.Equal(t, len(model) > 0, ok)
				if ok {
					require.Equal(t, model[0], got)
					model = model[1:]
				}
			}

			checkInvariants(t, l)
			require.Equal(t, len(model), l.Len())
			if last, ok := l.Last(); ok {
				require.Equal(t, model[len(model)-1], *last)
			}
		}

		got := slices.Collect(l.IntoIter().All())
		if len(model) == 0 {
			require.Empty(t, got)
		} else {
			require.Equal(t, model, got)
		}
	}
}
