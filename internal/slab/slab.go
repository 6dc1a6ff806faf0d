// Package slab is the append-only insertion buffer pool described in
// spec.md §4.1. It is adapted from the teacher's
// pkg/store/bytestore/byte_slab.go, simplified down to a single size class:
// inserted text has no natural slot size, so each Store call below just
// claims the next free bytes from the current slab, growing a new one when
// there isn't room.
package slab

import "github.com/fmstephe/flib/fmath"

// MinSlabSize is the smallest slab ever allocated, matching spec.md's
// MIN_SLAB.
const MinSlabSize = 1 << 20 // 1 MiB

// Pool owns a sequence of append-only byte slabs. Once bytes are copied
// into a slab they are never moved or reclaimed individually; Pool only
// grows until the owning Editor is discarded.
type Pool struct {
	slabs []*bufSlab
}

type bufSlab struct {
	bytes []byte
	fill  int
}

func (b *bufSlab) remaining() int {
	return len(b.bytes) - b.fill
}

// New returns an empty Pool.
func New() *Pool {
	return &Pool{}
}

// Store copies data into the pool and returns a stable slice pointing at
// the copy. Two calls to Store may or may not return contiguous slices;
// callers must not assume anything about their relative placement.
//
// If the current slab does not have room for len(data), a new slab sized
// max(len(data), MinSlabSize), rounded up to a power of two, is allocated
// and the remainder of the old slab is abandoned - wasted by design, so
// that the slice returned here is never invalidated by a later Store call.
func (p *Pool) Store(data []byte) []byte {
	if len(p.slabs) == 0 || p.slabs[len(p.slabs)-1].remaining() < len(data) {
		p.slabs = append(p.slabs, newBufSlab(len(data)))
	}

	s := p.slabs[len(p.slabs)-1]
	start := s.fill
	n := copy(s.bytes[start:], data)
	s.fill += n

	return s.bytes[start : start+n : start+n]
}

// SlabCount reports how many slabs have been allocated so far.
func (p *Pool) SlabCount() int {
	return len(p.slabs)
}

func newBufSlab(need int) *bufSlab {
	size := need
	if size < MinSlabSize {
		size = MinSlabSize
	}
	size = int(fmath.NxtPowerOfTwo(int64(size)))

	return &bufSlab{
		bytes: make([]byte, size),
	}
}
