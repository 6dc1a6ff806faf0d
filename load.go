package piecetable

import (
	"fmt"
	"os"

	"github.com/pieceedit/piecetable/internal/mmapfile"
)

// Open loads path into a new Editor, per spec.md §4.10. Passing an empty
// path returns an empty, unbacked Editor - the programmatic equivalent of
// "new, unsaved document". The original file, if any, is memory-mapped
// read-only and referenced by a single piece spanning its full contents; a
// zero-length file yields an empty document rather than an initial piece.
//
// The returned Editor must eventually be closed with Close, which also
// releases the underlying mapping.
func Open(path string) (*Editor, error) {
	e := newEditor()

	if path == "" {
		return e, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("piecetable: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("piecetable: stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	e.path = path
	e.origFile = f

	if info.Size() == 0 {
		return e, nil
	}

	data, err := mmapfile.OpenReadOnly(f, info.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	e.origMap = data

	ref, p := e.pieces.Alloc()
	*p = pieceData{content: data, prev: e.begin, next: e.end}

	beginP := e.pieces.Get(e.begin)
	endP := e.pieces.Get(e.end)
	beginP.next = ref
	endP.prev = ref

	e.docSize = uint64(len(data))

	return e, nil
}

// Close releases the Editor's resources: the original file's mapping and
// descriptor, if any. It does not touch anything on disk. After Close,
// Insert, Delete, Replace, Iterate and Save return ErrClosed; a second
// Close returns nil.
func (e *Editor) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	var err error
	if e.origMap != nil {
		err = mmapfile.Close(e.origMap)
		e.origMap = nil
	}
	if e.origFile != nil {
		if cerr := e.origFile.Close(); err == nil {
			err = cerr
		}
		e.origFile = nil
	}
	return err
}
