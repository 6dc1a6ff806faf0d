package piecetable

// change records one span-for-span replacement: new replaces old at the
// same chain location, per spec.md §3. Both spans stay referenced by the
// action holding this change forever, so that undo/redo can reinstall
// either one.
type change struct {
	old, new span
}
