// Package mode implements the editing tools of canved.
//
// Exactly one Mode is active at a time. Every tick the editor hands the
// active mode the pointer state together with the working buffer, which holds
// the image, and the composite buffer, which is shown to the user and thrown
// away after the tick. The mode answers with a Decision telling the editor
// whether the working buffer should become a new version.
package mode

import (
	"fmt"
	"image"
	"strings"

	"github.com/ha1tch/canved/canvas"
)

// Tool names a mode.
type Tool int

const (
	ToolBrush Tool = iota
	ToolCrop
	ToolView
)

var toolNames = []string{"brush", "crop", "view"}

func (t Tool) String() string {
	if int(t) >= 0 && int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

func (t Tool) MarshalText() ([]byte, error) {
	if int(t) < 0 || int(t) >= len(toolNames) {
		return nil, fmt.Errorf("mode: unknown tool %d", int(t))
	}
	return []byte(toolNames[t]), nil
}

func (t *Tool) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range toolNames {
		if n == name {
			*t = Tool(i)
			return nil
		}
	}
	return fmt.Errorf("mode: unknown tool %q", text)
}

// Decision is the outcome of a tick.
type Decision int

const (
	// Continue leaves the version history alone.
	Continue Decision = iota
	// Save asks the editor to commit the working buffer.
	Save
)

func (d Decision) String() string {
	if d == Save {
		return "save"
	}
	return "continue"
}

// Brush is the paint brush shared by all brush strokes.
type Brush struct {
	Size  int        `toml:"size"`
	Color canvas.RGB `toml:"color"`
}

// MinBrushSize is the smallest brush the scroll wheel can produce.
const MinBrushSize = 2

// Input is the pointer state of one tick in buffer coordinates.
type Input struct {
	Cursor    image.Point
	HasCursor bool // false when the pointer is not tracked
	Down      bool // left button held
	Scroll    int  // only the sign is used
}

// point returns the cursor while the button is held.
func (in Input) point() (image.Point, bool) {
	if in.Down && in.HasCursor {
		return in.Cursor, true
	}
	return image.Point{}, false
}

// Mode is one of *BrushMode, *CropMode or ViewMode.
type Mode interface {
	Tool() Tool
	Step(in Input, brush *Brush, working, composite *canvas.Buffer) Decision

	mode()
}

// New returns a mode for t with no gesture in progress.
func New(t Tool) Mode {
	switch t {
	case ToolBrush:
		return &BrushMode{}
	case ToolCrop:
		return &CropMode{}
	default:
		return ViewMode{}
	}
}

// ViewMode shows the image without overlays and ignores the pointer.
type ViewMode struct{}

func (ViewMode) Tool() Tool { return ToolView }

func (ViewMode) Step(Input, *Brush, *canvas.Buffer, *canvas.Buffer) Decision {
	return Continue
}

func (ViewMode) mode() {}
