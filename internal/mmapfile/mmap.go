// Package mmapfile wraps the handful of mmap(2) calls the editor needs:
// mapping a file read-only at load time, and a writable scratch mapping at
// save time. It is adapted from the teacher's
// offheap/internal/pointerstore/mmap.go (golang.org/x/sys/unix usage) and
// from SnellerInc/sneller's ion/blockfmt/mmap_linux.go and
// cmd/sdb/mmap_linux.go (mapping a real, already-open *os.File).
package mmapfile

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// OpenReadOnly maps the full contents of f, which must already be open for
// reading, as a shared read-only region. size must match f's current
// length. The returned slice is valid until Close is called.
func OpenReadOnly(f fder, size int64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmapfile: mapping %d bytes read-only: %w", size, err)
	}
	return data, nil
}

// OpenWritable maps the full contents of f, which must already be open for
// read-write access and sized to exactly size bytes, as a shared writable
// region.
func OpenWritable(f fder, size int64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmapfile: mapping %d bytes writable: %w", size, err)
	}
	return data, nil
}

// Close unmaps a region previously returned by OpenReadOnly or OpenWritable.
// Close on a nil slice (the zero-length-file case) is a no-op.
func Close(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("mmapfile: unmap: %w", err)
	}
	return nil
}

// fder is satisfied by *os.File; narrowed to ease testing.
type fder interface {
	Fd() uintptr
}
