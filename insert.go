package piecetable

import "github.com/fmstephe/flib/funsafe"

// Insert copies text into the document at byte offset pos, per spec.md
// §4.5. pos must satisfy 0 <= pos <= Size().
//
// text is taken as a Go string rather than the original's NUL-terminated
// char*: its length is explicit, so embedded NUL bytes are inserted
// faithfully instead of truncating the insert, resolving spec.md §9's open
// question in favour of an explicit length.
func (e *Editor) Insert(pos uint64, text string) error {
	if e.closed {
		return ErrClosed
	}
	if pos > e.docSize {
		return ErrOutOfRange
	}
	if len(text) == 0 {
		return nil
	}

	stored := e.buffers.Store(funsafe.StringToBytes(text))
	act := e.beginChange()

	if e.docSize == 0 {
		// the chain may still hold zero-length pieces left by earlier
		// edits; link after them so undoing those edits finds them in place
		ref, p := e.pieces.Alloc()
		*p = pieceData{content: stored, prev: e.pieces.Get(e.end).prev, next: e.end}
		newSpan := e.spanInit(ref, ref)

		e.spanSwap(emptySpan(), newSpan)
		act.changes = append(act.changes, change{old: emptySpan(), new: newSpan})
		return nil
	}

	pieceAt, off := e.locate(pos)
	atPiece := e.pieces.Get(pieceAt)

	if off == atPiece.length() {
		// between pieceAt and its successor - no split needed
		ref, p := e.pieces.Alloc()
		*p = pieceData{content: stored, prev: pieceAt, next: atPiece.next}
		newSpan := e.spanInit(ref, ref)

		e.spanSwap(emptySpan(), newSpan)
		act.changes = append(act.changes, change{old: emptySpan(), new: newSpan})
		return nil
	}

	// split pieceAt into a "before" piece, the new inserted piece, and an
	// "after" piece; off == 0 is the degenerate case spec.md §4.5/§9
	// describes, producing a zero-length "before" piece anchored at
	// pieceAt.prev
	beforeRef, before := e.pieces.Alloc()
	middleRef, middle := e.pieces.Alloc()
	afterRef, after := e.pieces.Alloc()

	*before = pieceData{content: atPiece.content[:off], prev: atPiece.prev, next: middleRef}
	*middle = pieceData{content: stored, prev: beforeRef, next: afterRef}
	*after = pieceData{content: atPiece.content[off:], prev: middleRef, next: atPiece.next}

	oldSpan := e.spanInit(pieceAt, pieceAt)
	newSpan := e.spanInit(beforeRef, afterRef)

	e.spanSwap(oldSpan, newSpan)
	act.changes = append(act.changes, change{old: oldSpan, new: newSpan})
	return nil
}
