package editor

import (
	"image"

	"github.com/ha1tch/canved/canvas"
)

// Key is a key the editor reacts to, independent of the window library.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyB
	KeyC
	KeyY
	KeyZ
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// Frame is the input of a single tick as reported by the host window.
type Frame struct {
	WindowWidth  int
	WindowHeight int

	// Cursor is in window pixels and only meaningful when HasCursor is set.
	Cursor    image.Point
	HasCursor bool

	Down   bool // left button held
	Scroll int  // wheel movement, only the sign is used

	Pressed     []Key // keys pressed since the previous frame, repeats included
	Ctrl, Shift bool  // modifiers held

	// Quit ends the session. The frame's other fields are ignored.
	Quit bool
}

// Host is the window an editing session runs in.
type Host interface {
	// Poll waits for the next frame.
	Poll() (Frame, error)
	// Present shows the composite buffer of the latest tick.
	Present(composite *canvas.Buffer) error
}
