package piecetable

// span is a contiguous subrange of the logical chain, identified by its
// inclusive endpoints, per spec.md §3. The empty span is the zero value:
// start == end == the nil pieceRef, length == 0.
type span struct {
	start, end pieceRef
	length     uint64
}

func emptySpan() span {
	return span{}
}

func (s span) isEmpty() bool {
	return s.length == 0
}

// spanInit walks from start to end (inclusive) accumulating piece lengths.
// Passing a nil start/end produces the empty span, matching spec.md §4.3.
func (e *Editor) spanInit(start, end pieceRef) span {
	if start.IsNil() && end.IsNil() {
		return emptySpan()
	}

	length := uint64(0)
	cur := start
	for {
		p := e.pieces.Get(cur)
		length += p.length()
		if cur == end {
			break
		}
		cur = p.next
	}

	return span{start: start, end: end, length: length}
}

// spanSwap replaces old with new in the logical chain and updates the
// document size accordingly. It implements the four cases of spec.md §4.3.
//
// The caller must already have wired new.start.prev and new.end.next to the
// pieces that are to surround new; spanSwap then points those neighbours
// back at new (or, when new is empty, at each other) so that the chain is
// well linked after the swap in both directions - this is what makes
// spanSwap(new, old) exactly undo spanSwap(old, new).
func (e *Editor) spanSwap(old, new span) {
	switch {
	case old.isEmpty() && new.isEmpty():
		// no-op

	case old.isEmpty():
		// splice new in at the location implied by new's own
		// boundary pieces
		newStart := e.pieces.Get(new.start)
		newEnd := e.pieces.Get(new.end)
		e.pieces.Get(newStart.prev).next = new.start
		e.pieces.Get(newEnd.next).prev = new.end

	case new.isEmpty():
		// unlink old
		oldStart := e.pieces.Get(old.start)
		oldEnd := e.pieces.Get(old.end)
		e.pieces.Get(oldStart.prev).next = oldEnd.next
		e.pieces.Get(oldEnd.next).prev = oldStart.prev

	default:
		// replace old with new
		oldStart := e.pieces.Get(old.start)
		oldEnd := e.pieces.Get(old.end)
		e.pieces.Get(oldStart.prev).next = new.start
		e.pieces.Get(oldEnd.next).prev = new.end
	}

	e.docSize = e.docSize - old.length + new.length
}
