package piecetable

// Stats reports basic bookkeeping counters about an Editor, in the spirit
// of the teacher's pervasive GetStats() accessors (byteSlab.GetStats,
// objectstore.Store.GetStats). It is not part of spec.md's external
// interface but is useful for tests and for a front-end status line.
type Stats struct {
	// Size is the current document size in bytes.
	Size uint64
	// Pieces is the number of pieces ever allocated, including the two
	// sentinels and any piece since spliced out of the chain.
	Pieces int
	// Slabs is the number of insertion buffer slabs allocated so far.
	Slabs int
	// UndoDepth and RedoDepth are the number of actions on each stack.
	UndoDepth int
	RedoDepth int
}

// Stats returns a snapshot of the Editor's bookkeeping counters.
func (e *Editor) Stats() Stats {
	return Stats{
		Size:      e.docSize,
		Pieces:    e.pieces.Len(),
		Slabs:     e.buffers.SlabCount(),
		UndoDepth: len(e.undo),
		RedoDepth: len(e.redo),
	}
}
