// Package editor runs canved editing sessions.
//
// An Editor owns the working buffer, the version history, the active mode and
// the brush. Every tick it turns a Frame into mode input, lets the active mode
// act on the working buffer, commits finished gestures and returns a fresh
// composite buffer for display. Edit drives an Editor from a Host until the
// host asks to quit.
package editor

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ha1tch/canved/canvas"
	"github.com/ha1tch/canved/history"
	"github.com/ha1tch/canved/letterbox"
	"github.com/ha1tch/canved/mode"
)

// Editor is the state of one editing session.
type Editor struct {
	working *canvas.Buffer
	history *history.History

	mode     mode.Mode
	brush    mode.Brush
	palette  []canvas.RGB
	selected int

	log *slog.Logger
}

// New starts a session on a copy of initial. opts should have passed
// Validate.
func New(initial *canvas.Buffer, opts Options) *Editor {
	palette := make([]canvas.RGB, len(opts.Palette))
	copy(palette, opts.Palette)

	e := &Editor{
		working: initial.Clone(),
		history: history.New(initial, opts.MaxVersions),
		mode:    mode.New(opts.Mode),
		brush:   opts.Brush,
		palette: palette,
		log:     Logger().With("session", uuid.NewString()),
	}
	e.log.Info("session started",
		"width", initial.Width(), "height", initial.Height(), "tool", e.mode.Tool())
	return e
}

// Working returns the working buffer.
func (e *Editor) Working() *canvas.Buffer { return e.working }

func (e *Editor) History() *history.History { return e.history }

func (e *Editor) Mode() mode.Mode { return e.mode }

func (e *Editor) Brush() mode.Brush { return e.brush }

// Selected returns the index of the highlighted palette swatch.
func (e *Editor) Selected() int { return e.selected }

// Tick processes one frame and returns the composite buffer to display.
func (e *Editor) Tick(f Frame) *canvas.Buffer {
	composite := e.working.Clone()

	if e.mode.Step(e.input(f), &e.brush, e.working, composite) == mode.Save {
		e.history.Commit(e.working)
		e.log.Debug("commit",
			"tool", e.mode.Tool(), "versions", e.history.Len(), "cursor", e.history.Cursor())
	}

	restored := e.handleKeys(f)

	if restored || composite.Width() != e.working.Width() || composite.Height() != e.working.Height() {
		composite = e.working.Clone()
	}

	if e.mode.Tool() == mode.ToolBrush {
		composite.DrawColorbar(e.palette, e.selected, canvas.ColorbarTop)
	}
	return composite
}

// input converts the frame's pointer into buffer coordinates.
func (e *Editor) input(f Frame) mode.Input {
	in := mode.Input{
		Down:   f.Down,
		Scroll: f.Scroll,
	}
	if f.HasCursor && f.WindowWidth > 0 && f.WindowHeight > 0 {
		in.Cursor = letterbox.Map(f.Cursor.X, f.Cursor.Y,
			f.WindowWidth, f.WindowHeight, e.working.Width(), e.working.Height())
		in.HasCursor = true
	}
	return in
}

// handleKeys applies the frame's shortcuts and reports whether the working
// buffer was replaced from the history.
func (e *Editor) handleKeys(f Frame) bool {
	restored := false
	for _, k := range f.Pressed {
		switch {
		case f.Ctrl && (k == KeyY || (k == KeyZ && f.Shift)):
			restored = e.Redo() || restored
		case f.Ctrl && k == KeyZ:
			restored = e.Undo() || restored
		case k == KeyEscape:
			e.SetTool(mode.ToolView)
		case k == KeyB:
			e.SetTool(mode.ToolBrush)
		case k == KeyC:
			e.SetTool(mode.ToolCrop)
		case k >= Key1 && k <= Key9:
			e.SelectColor(int(k - Key1))
		}
	}
	return restored
}

// SetTool switches to a fresh mode for t, dropping any gesture in progress.
func (e *Editor) SetTool(t mode.Tool) {
	e.mode = mode.New(t)
	e.log.Debug("tool", "tool", t)
}

// SelectColor highlights palette entry i and loads it into the brush.
// Indices past the end select the last entry.
func (e *Editor) SelectColor(i int) {
	if len(e.palette) == 0 {
		return
	}
	e.selected = min(max(i, 0), len(e.palette)-1)
	e.brush.Color = e.palette[e.selected]
	e.log.Debug("color", "index", e.selected, "color", e.brush.Color)
}

// Undo restores the previous version into the working buffer.
func (e *Editor) Undo() bool {
	if !e.history.Undo() {
		return false
	}
	e.restore("undo")
	return true
}

// Redo restores the next version into the working buffer.
func (e *Editor) Redo() bool {
	if !e.history.Redo() {
		return false
	}
	e.restore("redo")
	return true
}

// restore copies the current version into the working buffer. A gesture in
// progress refers to the replaced buffer and is dropped.
func (e *Editor) restore(op string) {
	e.working = e.history.Current().Clone()
	e.mode = mode.New(e.mode.Tool())
	e.log.Debug(op, "versions", e.history.Len(), "cursor", e.history.Cursor())
}

// Edit runs a session on host until a frame asks to quit and returns the
// final working buffer. On a host error the working buffer at that point is
// returned along with the error.
func Edit(host Host, initial *canvas.Buffer, opts Options) (*canvas.Buffer, error) {
	e := New(initial, opts)

	for {
		f, err := host.Poll()
		if err != nil {
			return e.working, fmt.Errorf("editor: poll: %w", err)
		}
		if f.Quit {
			break
		}
		if err := host.Present(e.Tick(f)); err != nil {
			return e.working, fmt.Errorf("editor: present: %w", err)
		}
	}

	e.log.Info("session ended",
		"width", e.working.Width(), "height", e.working.Height(), "versions", e.history.Len())
	return e.working, nil
}
