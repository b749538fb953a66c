package mode

import (
	"image"

	"github.com/ha1tch/canved/canvas"
)

// CropSelection is the rectangle being dragged out, in buffer coordinates.
type CropSelection struct {
	Start image.Point
	End   image.Point
}

// Rect returns the selection with Min at the top-left corner.
func (s CropSelection) Rect() image.Rectangle {
	return image.Rect(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}

// CropMode crops the working buffer to a rectangle dragged with the pointer.
type CropMode struct {
	Selection *CropSelection // nil when no drag is in progress
}

func (*CropMode) Tool() Tool { return ToolCrop }

func (m *CropMode) Step(in Input, _ *Brush, working, composite *canvas.Buffer) Decision {
	cur, down := in.point()

	if m.Selection == nil {
		if down {
			m.Selection = &CropSelection{Start: cur, End: cur}
		}
		return Continue
	}

	if down {
		m.Selection.End = cur
		composite.DrawGuides(m.Selection.Start, m.Selection.End)
		return Continue
	}

	r := m.Selection.Rect()
	m.Selection = nil

	w, h := r.Dx(), r.Dy()
	if w > 0 && h > 0 && w < working.Width() && h < working.Height() {
		if working.Crop(r.Min.X, r.Min.Y, w, h) {
			return Save
		}
	}
	return Continue
}

func (*CropMode) mode() {}
