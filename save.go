package piecetable

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pieceedit/piecetable/internal/mmapfile"
)

// Save writes the current document to path, atomically: content is
// written to a sibling temp file which is then renamed over path, per
// spec.md §4.11. On any failure, path is left untouched; the temp file may
// remain on disk for the caller to clean up or retry.
//
// Unlike the original's save routine - which spec.md §9 notes falls
// through into an unconditional failure return even on the success path -
// this returns nil on success.
func (e *Editor) Save(path string) error {
	if e.closed {
		return ErrClosed
	}

	tmpPath := tempName(path)

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("piecetable: create %s: %w", tmpPath, err)
	}

	if err := saveInto(e, f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("piecetable: close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("piecetable: rename %s to %s: %w", tmpPath, path, err)
	}

	e.saved = e.undoTop()
	e.Snapshot()
	return nil
}

func saveInto(e *Editor, f *os.File) error {
	size := int64(e.docSize)

	if err := f.Truncate(size); err != nil {
		return fmt.Errorf("piecetable: truncate: %w", err)
	}
	if size == 0 {
		return nil
	}

	data, err := mmapfile.OpenWritable(f, size)
	if err != nil {
		return err
	}
	defer mmapfile.Close(data)

	cur := data
	err = e.Iterate(0, func(_ uint64, chunk []byte) bool {
		n := copy(cur, chunk)
		cur = cur[n:]
		return true
	})
	if err != nil {
		return fmt.Errorf("piecetable: iterate while saving: %w", err)
	}

	return nil
}

func tempName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+".tmp")
}
