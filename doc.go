// Package piecetable implements an in-memory text-editing engine backed by
// a piece table: the logical document is a doubly-linked chain of pieces,
// each a view into either the memory-mapped original file or an
// append-only insertion buffer. Edits never copy or free document bytes,
// they only rewire the chain, which makes every edit O(pieces touched)
// regardless of document size and lets undo/redo work by swapping spans of
// pieces back in and out of the chain.
//
//	ed, err := piecetable.Open("draft.txt")
//	if err != nil {
//		// handle err
//	}
//	defer ed.Close()
//
//	if err := ed.Insert(0, "# "); err != nil {
//		// handle err
//	}
//
//	ed.Snapshot() // future edits start a new undo group
//
//	if err := ed.Save("draft.txt"); err != nil {
//		// handle err
//	}
//
// An Editor is not safe for concurrent use: it is a single-threaded,
// non-reentrant value, and none of its operations may be called while an
// Iterate callback for the same Editor is still running.
package piecetable
