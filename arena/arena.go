// Package arena implements a chunked, typed slab allocator.
// Values live in fixed-size chunks that never move once allocated and are
// addressed by generation-checked Ref handles. Freed slots are recycled
// through a FIFO free-list before new chunk space is used.
package arena

import (
	"errors"

	"github.com/eapache/queue"

	"github.com/pavanmanishd/rawcoll"
)

// DefaultChunkSize is the default number of slots per chunk.
const DefaultChunkSize = 1 << 6

// ErrStaleRef is the panic value when a Ref is used after its slot was freed.
var ErrStaleRef = errors.New("arena: stale reference")

// Ref addresses one slot of a Slab. A Ref is only valid until the slot is
// freed; the generation check catches any later use.
type Ref struct {
	index uint32
	gen   uint32
}

// slot holds one value plus the generation of the Ref that owns it.
type slot[T any] struct {
	val  T
	gen  uint32
	live bool
}

// chunk represents a single block of slots within a slab.
type chunk[T any] struct {
	slots  []slot[T] // backing memory
	offset int       // bump offset within slots
}

// Slab is a chunked slot allocator. Not goroutine-safe.
type Slab[T any] struct {
	chunks       []*chunk[T]
	chunkSize    int
	current      int // index of currentChunk in chunks
	currentChunk *chunk[T]
	free         *queue.Queue // recycled slot indices
	live         int
	released     bool
}

// NewSlab creates a new Slab with the specified chunk size in slots.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSlab[T any](chunkSize int) *Slab[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	s := &Slab[T]{chunkSize: chunkSize, free: queue.New()}
	s.grow()
	return s
}

// Alloc stores v in a free slot and returns the Ref that owns it.
func (s *Slab[T]) Alloc(v T) Ref {
	s.panicIfReleased()

	var index int
	if s.free.Length() > 0 {
		index = s.free.Remove().(int)
	} else {
		// Fast path: bump within the cached current chunk
		c := s.currentChunk
		if c.offset == len(c.slots) {
			c = s.nextChunk()
		}
		index = s.current*s.chunkSize + c.offset
		c.offset++
	}

	sl := s.slotAt(index)
	sl.val = v
	sl.gen++
	sl.live = true
	s.live++
	return Ref{index: uint32(index), gen: sl.gen}
}

// Get returns a pointer to the value owned by r. The pointer stays valid
// until r is freed or the slab is reset or released.
func (s *Slab[T]) Get(r Ref) *T {
	return &s.lookup(r).val
}

// Free moves the value out of r's slot and makes the slot reusable.
// Any later use of r panics with ErrStaleRef.
func (s *Slab[T]) Free(r Ref) T {
	sl := s.lookup(r)
	v := rawcoll.Take(&sl.val)
	sl.live = false
	sl.gen++
	s.live--
	s.free.Add(int(r.index))
	return v
}

// Reset invalidates every outstanding Ref but keeps allocated chunks for
// reuse. Values still live are zeroed, not dropped.
func (s *Slab[T]) Reset() {
	s.panicIfReleased()
	for _, c := range s.chunks {
		for i := range c.slots[:c.offset] {
			sl := &c.slots[i]
			if sl.live {
				var zero T
				sl.val = zero
				sl.live = false
			}
			sl.gen++
		}
		c.offset = 0
	}
	s.free = queue.New()
	s.live = 0
	// Reset cached chunk to first chunk
	s.current = 0
	s.currentChunk = s.chunks[0]
}

// Release drops all chunks and makes the slab unusable.
// Any subsequent operations will panic.
func (s *Slab[T]) Release() {
	s.chunks = nil
	s.currentChunk = nil
	s.free = nil
	s.live = 0
	s.released = true
}

// Released reports whether Release has been called.
func (s *Slab[T]) Released() bool {
	return s.released
}

// nextChunk advances to the following chunk, reusing one kept by Reset
// before growing.
func (s *Slab[T]) nextChunk() *chunk[T] {
	if s.current+1 < len(s.chunks) {
		s.current++
		s.currentChunk = s.chunks[s.current]
		return s.currentChunk
	}
	s.grow()
	return s.currentChunk
}

// grow appends a new chunk and makes it current.
func (s *Slab[T]) grow() {
	c := &chunk[T]{slots: make([]slot[T], s.chunkSize)}
	s.chunks = append(s.chunks, c)
	s.current = len(s.chunks) - 1
	s.currentChunk = c
}

func (s *Slab[T]) slotAt(index int) *slot[T] {
	return &s.chunks[index/s.chunkSize].slots[index%s.chunkSize]
}

// lookup resolves r to its slot, panicking if r no longer owns it.
func (s *Slab[T]) lookup(r Ref) *slot[T] {
	s.panicIfReleased()
	index := int(r.index)
	if r.gen == 0 || index >= len(s.chunks)*s.chunkSize {
		panic(ErrStaleRef)
	}
	sl := s.slotAt(index)
	if !sl.live || sl.gen != r.gen {
		panic(ErrStaleRef)
	}
	return sl
}

// panicIfReleased panics if the slab has been released.
func (s *Slab[T]) panicIfReleased() {
	if s.released {
		panic(rawcoll.ErrReleased)
	}
}
