package piecetable

import "github.com/pieceedit/piecetable/internal/arena"

// pieceRef is a handle to a piece in the arena. The zero value is never a
// valid piece in this package - even the sentinels are allocated normally.
type pieceRef = arena.Reference[pieceData]

// pieceData is a view of an immutable byte range: either a slice of the
// mmap-ed original file, or a slice returned by the insertion buffer pool.
// content is nil and empty for the begin/end sentinels.
//
// prev/next form the logical chain - the only structure needed to find a
// piece's neighbours. Per spec.md §9, the allocation list spec.md §3
// describes is simply the arena these pieces are allocated from: nothing
// here tracks "every piece ever allocated" separately, and nothing is ever
// freed back to the arena, so that Changes can keep referencing pieces that
// have been spliced out of the current chain.
type pieceData struct {
	content []byte
	prev    pieceRef
	next    pieceRef
}

func (p *pieceData) length() uint64 {
	return uint64(len(p.content))
}
