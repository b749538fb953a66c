// Package history keeps the versions of an edited image.
//
// A History is a list of buffer snapshots and a cursor pointing at the
// current one. Committing while the cursor is behind the newest version drops
// every version after the cursor; there is no redo tree. The history never
// changes the caller's working buffer: after Undo or Redo the caller copies
// Current back itself.
package history

import "github.com/ha1tch/canved/canvas"

// History is a linear undo/redo stack of buffer snapshots.
type History struct {
	versions []*canvas.Buffer
	cursor   int
	limit    int
}

// New returns a history holding a copy of initial. A positive limit caps the
// number of versions kept; older versions are forgotten first.
func New(initial *canvas.Buffer, limit int) *History {
	return &History{
		versions: []*canvas.Buffer{initial.Clone()},
		limit:    max(0, limit),
	}
}

// Commit stores a copy of buf as the newest version and moves the cursor to
// it. Versions after the cursor are discarded.
func (h *History) Commit(buf *canvas.Buffer) {
	if h.cursor < len(h.versions)-1 {
		clear(h.versions[h.cursor+1:])
		h.versions = h.versions[:h.cursor+1]
	}

	h.versions = append(h.versions, buf.Clone())

	if h.limit > 0 && len(h.versions) > h.limit {
		drop := len(h.versions) - h.limit
		clear(h.versions[:drop])
		h.versions = h.versions[drop:]
	}
	h.cursor = len(h.versions) - 1
}

// Undo moves the cursor one version back and reports whether it moved.
func (h *History) Undo() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	return true
}

// Redo moves the cursor one version forward and reports whether it moved.
func (h *History) Redo() bool {
	if h.cursor == len(h.versions)-1 {
		return false
	}
	h.cursor++
	return true
}

func (h *History) CanUndo() bool { return h.cursor > 0 }

func (h *History) CanRedo() bool { return h.cursor < len(h.versions)-1 }

// Current returns the version under the cursor. It must not be modified;
// clone it before editing.
func (h *History) Current() *canvas.Buffer {
	return h.versions[h.cursor]
}

// At returns version i.
func (h *History) At(i int) *canvas.Buffer {
	return h.versions[i]
}

func (h *History) Len() int { return len(h.versions) }

func (h *History) Cursor() int { return h.cursor }
