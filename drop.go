package rawcoll

// Dropper is implemented by element types that hold resources of their own.
// Containers call Drop exactly once for every element they discard, never
// for elements that were moved out to the caller.
type Dropper interface {
	Drop()
}

// Drop runs the element's Drop hook, if any, and zeroes *p so the slot no
// longer keeps anything reachable.
func Drop[T any](p *T) {
	if d, ok := any(*p).(Dropper); ok {
		d.Drop()
	}
	var zero T
	*p = zero
}

// Take moves the value out of *p and zeroes the slot without dropping it.
func Take[T any](p *T) T {
	v := *p
	var zero T
	*p = zero
	return v
}
