package piecetable

// action is an ordered group of changes undone/redone as a single unit, per
// spec.md §3. Unlike the original's singly-linked, most-recent-first change
// list, changes here are kept in a plain slice in the order they were made;
// Undo walks it back to front and Redo walks it front to back, which is the
// same ordering the spec requires expressed with a Go slice instead of
// hand-rolled pointer links (see spec.md §4.8's ordering requirement).
type action struct {
	changes []change
}
