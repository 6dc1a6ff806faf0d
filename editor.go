package piecetable

import (
	"os"

	"github.com/pieceedit/piecetable/internal/arena"
	"github.com/pieceedit/piecetable/internal/slab"
)

// Editor owns the complete state of one open document: the read-only
// original mapping, the insertion buffer pool, the piece arena, the two
// sentinel pieces, the undo/redo stacks and the current in-progress action.
//
// Editor is not reentrant and must not be shared across goroutines; see the
// package doc comment.
type Editor struct {
	pieces *arena.Store[pieceData]
	begin  pieceRef
	end    pieceRef

	buffers *slab.Pool

	docSize uint64

	undo    []*action
	redo    []*action
	current *action
	saved   *action

	// original file backing, present only when Open was called with a
	// non-empty path
	path     string
	origFile *os.File
	origMap  []byte

	closed bool
}

// newEditor builds an Editor with its sentinels wired together and an
// empty document, ready for load to install the original file's content.
func newEditor() *Editor {
	e := &Editor{
		pieces:  arena.New[pieceData](),
		buffers: slab.New(),
	}

	beginRef, _ := e.pieces.Alloc()
	endRef, _ := e.pieces.Alloc()
	e.begin = beginRef
	e.end = endRef

	beginP := e.pieces.Get(e.begin)
	endP := e.pieces.Get(e.end)
	beginP.next = e.end
	endP.prev = e.begin

	return e
}

// Size returns the current document size in bytes.
func (e *Editor) Size() uint64 {
	return e.docSize
}

// locate maps a byte offset to the piece that contains it, and the offset
// within that piece's content, per spec.md §4.4. It walks the chain from
// begin.next; pos must satisfy 0 <= pos <= Size() and the document must be
// non-empty - Insert special-cases the empty document before ever calling
// locate, matching spec.md §9's resolution of that open question.
func (e *Editor) locate(pos uint64) (pieceRef, uint64) {
	cur := e.pieces.Get(e.begin).next
	acc := uint64(0)
	for cur != e.end {
		p := e.pieces.Get(cur)
		if pos <= acc+p.length() {
			return cur, pos - acc
		}
		acc += p.length()
		cur = p.next
	}

	panic("piecetable: locate called with an out-of-range position")
}

// beginChange returns the action that new changes should be appended to,
// creating one - and discarding the entire redo stack - if there is no
// action currently open. This is spec.md §4.8's change_alloc.
func (e *Editor) beginChange() *action {
	if e.current == nil {
		e.current = &action{}
		e.undo = append(e.undo, e.current)
		e.redo = nil
	}
	return e.current
}
