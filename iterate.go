package piecetable

// Iterate walks the logical document from byte offset start, invoking fn
// once per contiguous run of bytes (normally once per piece, with the
// first call trimmed to start inside whatever piece contains it). fn
// receives the absolute byte position of the first byte in data, and
// returns whether iteration should continue.
//
// Per spec.md §4.9, behaviour is undefined if the document is mutated
// while an Iterate call for it is still in progress - callers must treat
// the Editor as read-only for the duration of fn.
func (e *Editor) Iterate(start uint64, fn func(pos uint64, data []byte) bool) error {
	if e.closed {
		return ErrClosed
	}
	if start > e.docSize {
		return ErrOutOfRange
	}
	if start == e.docSize {
		return nil
	}

	cur, off := e.locate(start)
	pos := start

	for cur != e.end {
		p := e.pieces.Get(cur)
		data := p.content[off:]
		if len(data) > 0 {
			if !fn(pos, data) {
				return nil
			}
			pos += uint64(len(data))
		}
		cur = p.next
		off = 0
	}

	return nil
}
