package history

import (
	"testing"

	"github.com/ha1tch/canved/canvas"
)

// version returns a 1x1 buffer holding c, so versions can be told apart.
func version(c canvas.Color) *canvas.Buffer {
	b := canvas.New(1, 1)
	b.Set(0, 0, c)
	return b
}

func contents(h *History) []canvas.Color {
	out := make([]canvas.Color, h.Len())
	for i := range out {
		out[i] = h.At(i).At(0, 0)
	}
	return out
}

func checkContents(t *testing.T, h *History, want ...canvas.Color) {
	t.Helper()
	got := contents(h)
	if len(got) != len(want) {
		t.Fatalf("versions=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("versions=%v, want %v", got, want)
		}
	}
}

func TestHistory_New(t *testing.T) {
	src := version(7)
	h := New(src, 0)

	if h.Len() != 1 || h.Cursor() != 0 {
		t.Fatalf("len=%d cursor=%d, want 1, 0", h.Len(), h.Cursor())
	}
	if h.CanUndo() || h.CanRedo() {
		t.Fatalf("expected CanUndo=false, CanRedo=false")
	}

	src.Set(0, 0, 8)
	if got := h.Current().At(0, 0); got != 7 {
		t.Fatalf("snapshot changed with the source: %d", got)
	}
}

func TestHistory_UndoThenCommitTruncates(t *testing.T) {
	h := New(version(0), 0)
	for _, c := range []canvas.Color{1, 2, 3} {
		h.Commit(version(c))
	}
	checkContents(t, h, 0, 1, 2, 3)
	if h.Cursor() != 3 {
		t.Fatalf("cursor=%d, want 3", h.Cursor())
	}

	h.Undo()
	h.Undo()
	if h.Cursor() != 1 {
		t.Fatalf("cursor=%d, want 1", h.Cursor())
	}
	if got := h.Current().At(0, 0); got != 1 {
		t.Fatalf("current=%d, want 1", got)
	}

	h.Commit(version(9))
	checkContents(t, h, 0, 1, 9)
	if h.Cursor() != 2 {
		t.Fatalf("cursor=%d, want 2", h.Cursor())
	}
	if h.CanRedo() {
		t.Fatalf("expected CanRedo=false after commit")
	}
}

func TestHistory_UndoRedoClamp(t *testing.T) {
	h := New(version(0), 0)
	h.Commit(version(1))

	if !h.Undo() {
		t.Fatalf("expected Undo=true")
	}
	if h.Undo() {
		t.Fatalf("expected Undo=false at the first version")
	}
	if h.Cursor() != 0 {
		t.Fatalf("cursor=%d, want 0", h.Cursor())
	}

	if !h.Redo() {
		t.Fatalf("expected Redo=true")
	}
	if h.Redo() {
		t.Fatalf("expected Redo=false at the last version")
	}
	if h.Cursor() != 1 {
		t.Fatalf("cursor=%d, want 1", h.Cursor())
	}
}

func TestHistory_CommitCopies(t *testing.T) {
	h := New(version(0), 0)
	work := version(1)
	h.Commit(work)

	work.Set(0, 0, 2)
	if got := h.Current().At(0, 0); got != 1 {
		t.Fatalf("committed version changed with the working buffer: %d", got)
	}
}

func TestHistory_CommitKeepsSizes(t *testing.T) {
	h := New(canvas.New(8, 6), 0)
	work := canvas.New(8, 6)
	work.Crop(1, 1, 3, 2)
	h.Commit(work)

	h.Undo()
	if c := h.Current(); c.Width() != 8 || c.Height() != 6 {
		t.Fatalf("undo size=%dx%d, want 8x6", c.Width(), c.Height())
	}
	h.Redo()
	if c := h.Current(); c.Width() != 3 || c.Height() != 2 {
		t.Fatalf("redo size=%dx%d, want 3x2", c.Width(), c.Height())
	}
}

func TestHistory_Limit(t *testing.T) {
	h := New(version(0), 3)
	for _, c := range []canvas.Color{1, 2, 3, 4} {
		h.Commit(version(c))
	}
	checkContents(t, h, 2, 3, 4)
	if h.Cursor() != 2 {
		t.Fatalf("cursor=%d, want 2", h.Cursor())
	}

	h.Undo()
	h.Undo()
	if h.Undo() {
		t.Fatalf("expected Undo=false past the oldest kept version")
	}
	h.Commit(version(5))
	checkContents(t, h, 2, 5)
}
