// Package rawcoll provides container primitives built over manually managed
// memory instead of Go's built-in slices and maps.
//
// # Overview
//
// The module has two containers and the allocator they share ideas with:
//
//   - vec.Vec: a growable contiguous array over a raw buffer
//   - list.List: a singly linked list whose nodes live in an arena.Slab
//   - arena.Slab: a chunked slot allocator addressed by generation-checked refs
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // Drop remaining values, free the buffer
//
//	v.Push(1)
//	v.Insert(0, 0)
//	x := v.Remove(1)
//
//	// Consume the vector; v is left empty
//	for x := range v.IntoIter().All() {
//		fmt.Println(x)
//	}
//
//	l := list.New[string]()
//	l.Push("a")
//	l.Insert(0, "b")
//	l.RemoveFront()
//
// # Ownership
//
// Every value has exactly one owner. A value leaves a container either by
// being moved out (Pop, Remove, RemoveFront, iteration) or by being dropped
// (Clear, Release). If a value implements Dropper, its Drop method runs
// exactly once when it is dropped and never when it is moved out.
//
// IntoIter moves a container's storage into the iterator and resets the
// container to empty. Drain leaves the storage with the vector but blocks
// mutation until the drain is released.
//
// Go has no destructors, so teardown is explicit: call Release on
// containers and on iterators that were not run to completion. Iterators
// consumed with range over All release themselves.
//
// # Errors
//
// Misuse panics, as indexing a slice out of range does:
//
//   - *BoundsError for an index or position outside the operation's range
//   - ErrReleased for use after Release
//   - ErrDrainActive for mutating a vector that is being drained
//   - ErrCapacityOverflow when a buffer cannot grow any further
//
// Empty containers are not an error: Pop, RemoveFront and Last report
// false instead of a value.
//
// # Thread Safety
//
// No type in this module is safe for concurrent use. Callers that share a
// container between goroutines must synchronize access themselves.
package rawcoll
