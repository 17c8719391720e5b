package arena

// Live returns the number of slots currently owned by a Ref.
func (s *Slab[T]) Live() int {
	return s.live
}

// NumChunks returns the number of chunks currently allocated by the slab.
func (s *Slab[T]) NumChunks() int {
	return len(s.chunks)
}

// Capacity returns the total number of slots across all chunks.
func (s *Slab[T]) Capacity() int {
	return len(s.chunks) * s.chunkSize
}

// FreeSlots returns the number of freed slots waiting to be reused.
func (s *Slab[T]) FreeSlots() int {
	if s.free == nil {
		return 0
	}
	return s.free.Length()
}

// Utilization returns the ratio of live slots to total capacity (0.0 to 1.0).
// Returns 0.0 if the slab has no capacity.
func (s *Slab[T]) Utilization() float64 {
	capacity := s.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(s.Live()) / float64(capacity)
}

// ChunkSize returns the number of slots per chunk.
func (s *Slab[T]) ChunkSize() int {
	return s.chunkSize
}

// Metrics returns a snapshot of slab statistics.
func (s *Slab[T]) Metrics() Metrics {
	return Metrics{
		Live:        s.Live(),
		Capacity:    s.Capacity(),
		NumChunks:   s.NumChunks(),
		ChunkSize:   s.ChunkSize(),
		FreeSlots:   s.FreeSlots(),
		Utilization: s.Utilization(),
	}
}

// Metrics contains statistical information about a slab.
type Metrics struct {
	Live        int     `yaml:"live"`        // Slots owned by a Ref
	Capacity    int     `yaml:"capacity"`    // Total slots
	NumChunks   int     `yaml:"chunks"`      // Number of chunks
	ChunkSize   int     `yaml:"chunk_size"`  // Slots per chunk
	FreeSlots   int     `yaml:"free_slots"`  // Freed slots awaiting reuse
	Utilization float64 `yaml:"utilization"` // Ratio of live to total slots (0.0-1.0)
}
