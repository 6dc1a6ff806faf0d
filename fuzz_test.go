package piecetable_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/pieceedit/piecetable"
	"github.com/pieceedit/piecetable/internal/fuzzutil"
)

// FuzzEditor drives random sequences of Insert/Delete/Replace/Undo/Redo/
// Snapshot calls against an Editor and checks, after every step, the
// universally-quantified invariants spec.md §8 lists: document size equals
// the iterated byte count, and modified()/undo/redo depth track a
// hand-maintained model exactly. This is the same step-sequence-plus-
// shadow-model technique as offheap/fuzz_test.go and
// pkg/store/bytestore/fuzz_test.go, adapted from allocate/free/mutate steps
// over an object store to insert/delete/replace/undo/redo/snapshot steps
// over a document.
func FuzzEditor(f *testing.F) {
	testCases := fuzzutil.MakeRandomTestCases()
	for _, tc := range testCases {
		f.Add(tc)
	}
	f.Fuzz(func(t *testing.T, bytes []byte) {
		tr := newFuzzTestRun(bytes)
		tr.Run()
	})
}

func newFuzzTestRun(data []byte) *fuzzutil.TestRun {
	h := newFuzzHarness()

	stepMaker := func(bc *fuzzutil.ByteConsumer) fuzzutil.Step {
		chooser := bc.Byte()
		switch chooser % 6 {
		case 0:
			return newInsertStep(h, bc)
		case 1:
			return newDeleteStep(h, bc)
		case 2:
			return newReplaceStep(h, bc)
		case 3:
			return newUndoStep(h)
		case 4:
			return newRedoStep(h)
		case 5:
			return newSnapshotStep(h)
		}
		panic("unreachable")
	}

	cleanup := func() {
		h.ed.Close()
	}

	return fuzzutil.NewTestRun(data, stepMaker, cleanup)
}

// fuzzHarness pairs a live Editor with a plain-bytes model of its expected
// content, plus shadow undo/redo stacks mirroring history.go's action
// grouping (a new baseline is recorded only when the first edit of a group
// happens, exactly like Editor.beginChange).
type fuzzHarness struct {
	ed *piecetable.Editor

	content []byte
	undo    [][]byte
	redo    [][]byte

	groupOpen bool
}

func newFuzzHarness() *fuzzHarness {
	ed, err := piecetable.Open("")
	if err != nil {
		panic(err)
	}
	return &fuzzHarness{ed: ed}
}

// beginEdit records a new undo baseline the first time a group is entered,
// and discards the redo stack, mirroring beginChange in editor.go.
func (h *fuzzHarness) beginEdit() {
	if !h.groupOpen {
		h.undo = append(h.undo, append([]byte(nil), h.content...))
		h.redo = nil
		h.groupOpen = true
	}
}

func (h *fuzzHarness) checkAll() {
	var got []byte
	err := h.ed.Iterate(0, func(_ uint64, data []byte) bool {
		got = append(got, data...)
		return true
	})
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(got, h.content) {
		panic(fmt.Sprintf("content mismatch\n\tgot:  %q\n\twant: %q", got, h.content))
	}
	if h.ed.Size() != uint64(len(h.content)) {
		panic(fmt.Sprintf("size mismatch: got %d want %d", h.ed.Size(), len(h.content)))
	}

	stats := h.ed.Stats()
	if stats.UndoDepth != len(h.undo) {
		panic(fmt.Sprintf("undo depth mismatch: got %d want %d", stats.UndoDepth, len(h.undo)))
	}
	if stats.RedoDepth != len(h.redo) {
		panic(fmt.Sprintf("redo depth mismatch: got %d want %d", stats.RedoDepth, len(h.redo)))
	}

	wantModified := len(h.undo) > 0
	if h.ed.Modified() != wantModified {
		panic(fmt.Sprintf("modified mismatch: got %v want %v", h.ed.Modified(), wantModified))
	}
}

func normalizePos(v uint32, n int) uint64 {
	return uint64(v) % uint64(n+1)
}

// InsertStep inserts a small random run of bytes at a random position.
type InsertStep struct {
	h    *fuzzHarness
	pos  uint64
	text []byte
}

func newInsertStep(h *fuzzHarness, bc *fuzzutil.ByteConsumer) *InsertStep {
	pos := normalizePos(bc.Uint32(), len(h.content))
	size := int(bc.Byte() % 9)
	return &InsertStep{h: h, pos: pos, text: bc.Bytes(size)}
}

func (s *InsertStep) DoStep() {
	if len(s.text) == 0 {
		return
	}

	if err := s.h.ed.Insert(s.pos, string(s.text)); err != nil {
		panic(fmt.Sprintf("unexpected Insert error at %d: %s", s.pos, err))
	}
	s.h.beginEdit()

	next := make([]byte, 0, len(s.h.content)+len(s.text))
	next = append(next, s.h.content[:s.pos]...)
	next = append(next, s.text...)
	next = append(next, s.h.content[s.pos:]...)
	s.h.content = next

	s.h.checkAll()
}

// DeleteStep deletes a random run of bytes that fits within the document.
type DeleteStep struct {
	h      *fuzzHarness
	pos    uint64
	length uint64
}

func newDeleteStep(h *fuzzHarness, bc *fuzzutil.ByteConsumer) *DeleteStep {
	pos := normalizePos(bc.Uint32(), len(h.content))
	maxLength := uint64(len(h.content)) - pos
	length := uint64(bc.Uint32()) % (maxLength + 1)
	return &DeleteStep{h: h, pos: pos, length: length}
}

func (s *DeleteStep) DoStep() {
	if s.length == 0 {
		return
	}

	if err := s.h.ed.Delete(s.pos, s.length); err != nil {
		panic(fmt.Sprintf("unexpected Delete error at %d,%d: %s", s.pos, s.length, err))
	}
	s.h.beginEdit()

	next := make([]byte, 0, len(s.h.content)-int(s.length))
	next = append(next, s.h.content[:s.pos]...)
	next = append(next, s.h.content[s.pos+s.length:]...)
	s.h.content = next

	s.h.checkAll()
}

// ReplaceStep substitutes len(text) bytes at a random position with text.
// When pos+len(text) overruns the document, Replace is expected to fail
// with ErrOutOfRange and leave the document untouched - see DESIGN.md's
// Open Question 5.
type ReplaceStep struct {
	h    *fuzzHarness
	pos  uint64
	text []byte
}

func newReplaceStep(h *fuzzHarness, bc *fuzzutil.ByteConsumer) *ReplaceStep {
	pos := normalizePos(bc.Uint32(), len(h.content))
	size := int(bc.Byte() % 9)
	return &ReplaceStep{h: h, pos: pos, text: bc.Bytes(size)}
}

func (s *ReplaceStep) DoStep() {
	textLen := uint64(len(s.text))

	if s.pos+textLen > uint64(len(s.h.content)) {
		err := s.h.ed.Replace(s.pos, string(s.text))
		if !errors.Is(err, piecetable.ErrOutOfRange) {
			panic(fmt.Sprintf("expected ErrOutOfRange replacing %d bytes at %d in a %d-byte document, got %v",
				textLen, s.pos, len(s.h.content), err))
		}
		s.h.checkAll()
		return
	}

	if err := s.h.ed.Replace(s.pos, string(s.text)); err != nil {
		panic(fmt.Sprintf("unexpected Replace error at %d: %s", s.pos, err))
	}
	if textLen == 0 {
		s.h.checkAll()
		return
	}
	s.h.beginEdit()

	next := make([]byte, 0, len(s.h.content))
	next = append(next, s.h.content[:s.pos]...)
	next = append(next, s.text...)
	next = append(next, s.h.content[s.pos+textLen:]...)
	s.h.content = next

	s.h.checkAll()
}

type UndoStep struct {
	h *fuzzHarness
}

func newUndoStep(h *fuzzHarness) *UndoStep {
	return &UndoStep{h: h}
}

func (s *UndoStep) DoStep() {
	want := len(s.h.undo) > 0
	got := s.h.ed.Undo()
	if got != want {
		panic(fmt.Sprintf("Undo() returned %v, want %v", got, want))
	}
	if !got {
		s.h.checkAll()
		return
	}

	baseline := s.h.undo[len(s.h.undo)-1]
	s.h.undo = s.h.undo[:len(s.h.undo)-1]
	s.h.redo = append(s.h.redo, append([]byte(nil), s.h.content...))
	s.h.content = baseline
	s.h.groupOpen = false

	s.h.checkAll()
}

type RedoStep struct {
	h *fuzzHarness
}

func newRedoStep(h *fuzzHarness) *RedoStep {
	return &RedoStep{h: h}
}

func (s *RedoStep) DoStep() {
	want := len(s.h.redo) > 0
	got := s.h.ed.Redo()
	if got != want {
		panic(fmt.Sprintf("Redo() returned %v, want %v", got, want))
	}
	if !got {
		s.h.checkAll()
		return
	}

	after := s.h.redo[len(s.h.redo)-1]
	s.h.redo = s.h.redo[:len(s.h.redo)-1]
	s.h.undo = append(s.h.undo, append([]byte(nil), s.h.content...))
	s.h.content = after
	s.h.groupOpen = false

	s.h.checkAll()
}

type SnapshotStep struct {
	h *fuzzHarness
}

func newSnapshotStep(h *fuzzHarness) *SnapshotStep {
	return &SnapshotStep{h: h}
}

func (s *SnapshotStep) DoStep() {
	s.h.ed.Snapshot()
	s.h.groupOpen = false
	s.h.checkAll()
}
