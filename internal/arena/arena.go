// Package arena is a minimal chunked allocator for a single object type.
//
// It is adapted from the teacher's plain (non-generation-tagged)
// pkg/store/object_store.go: objects are handed out from growable chunks
// and are never individually freed. That fits the piece graph exactly -
// spec.md notes that pieces live for the lifetime of the Editor, even once
// spliced out of the logical chain, because Changes keep referencing them.
// Bulk teardown is simply letting the Store be garbage collected.
package arena

const chunkSize = 1024

// Reference is a stable handle to an object allocated from a Store. The
// zero value is the nil Reference and never refers to a live object.
type Reference[O any] struct {
	chunk  int32
	offset int32
}

// IsNil reports whether r is the nil Reference, i.e. was never returned by
// Alloc.
func (r Reference[O]) IsNil() bool {
	return r.chunk == 0 && r.offset == 0
}

// Store allocates objects of type O from a sequence of growable chunks.
// Once a chunk is appended its backing array is never replaced, so a
// pointer handed out by Get remains valid for the lifetime of the Store.
type Store[O any] struct {
	chunks [][]O
}

// New creates an empty Store.
func New[O any]() *Store[O] {
	return &Store[O]{}
}

// Alloc reserves a new zero-valued object and returns a Reference to it
// along with a pointer to the object itself.
func (s *Store[O]) Alloc() (Reference[O], *O) {
	last := len(s.chunks) - 1
	if last < 0 || len(s.chunks[last]) == cap(s.chunks[last]) {
		s.chunks = append(s.chunks, make([]O, 0, chunkSize))
		last++
	}

	chunk := &s.chunks[last]
	*chunk = (*chunk)[:len(*chunk)+1]
	offset := len(*chunk) - 1

	ref := Reference[O]{
		chunk:  int32(last) + 1,
		offset: int32(offset) + 1,
	}
	return ref, &(*chunk)[offset]
}

// Get resolves a Reference to a pointer to its backing object. Passing a
// nil Reference, or one not produced by this Store, is a programming error
// and panics.
func (s *Store[O]) Get(r Reference[O]) *O {
	if r.IsNil() {
		panic("arena: Get called with a nil Reference")
	}
	return &s.chunks[r.chunk-1][r.offset-1]
}

// Len returns the number of objects ever allocated from this Store.
func (s *Store[O]) Len() int {
	n := 0
	for _, c := range s.chunks {
		n += len(c)
	}
	return n
}
