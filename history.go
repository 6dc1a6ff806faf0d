package piecetable

// Snapshot closes the currently open action, per spec.md §4.8. The next
// edit after a Snapshot call starts a new action, so that a subsequent
// Undo will not unwind edits made before the snapshot.
func (e *Editor) Snapshot() {
	e.current = nil
}

// Undo reverses the most recent action not yet undone, moving it onto the
// redo stack. It returns false if there is nothing left to undo.
func (e *Editor) Undo() bool {
	if len(e.undo) == 0 {
		return false
	}

	a := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]

	for i := len(a.changes) - 1; i >= 0; i-- {
		c := a.changes[i]
		e.spanSwap(c.new, c.old)
	}

	e.redo = append(e.redo, a)
	e.current = nil
	return true
}

// Redo reapplies the most recently undone action, moving it back onto the
// undo stack. It returns false if there is nothing left to redo.
func (e *Editor) Redo() bool {
	if len(e.redo) == 0 {
		return false
	}

	a := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]

	for _, c := range a.changes {
		e.spanSwap(c.old, c.new)
	}

	e.undo = append(e.undo, a)
	e.current = nil
	return true
}

// Modified reports whether the document has changed since the last Save
// (or since Open, if it has never been saved), per spec.md §4.8: it
// compares the current top of the undo stack against the action recorded
// at the last save.
func (e *Editor) Modified() bool {
	return e.undoTop() != e.saved
}

func (e *Editor) undoTop() *action {
	if len(e.undo) == 0 {
		return nil
	}
	return e.undo[len(e.undo)-1]
}
