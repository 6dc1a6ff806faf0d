package piecetable

import "errors"

// Sentinel errors returned by Editor operations. Use errors.Is to test for
// them; wrapped I/O errors remain inspectable via errors.Unwrap.
var (
	// ErrOutOfRange is returned when a requested position or range falls
	// outside [0, Size()].
	ErrOutOfRange = errors.New("piecetable: position out of range")

	// ErrNotRegularFile is returned by Open when the target path exists
	// but is not a regular file (a directory, device, etc).
	ErrNotRegularFile = errors.New("piecetable: not a regular file")

	// ErrClosed is returned by Insert, Delete, Replace, Iterate and Save
	// when called on an Editor after Close has been called on it.
	ErrClosed = errors.New("piecetable: editor is closed")
)
