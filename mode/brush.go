package mode

import (
	"image"

	"seehuhn.de/go/geom/vec"

	"github.com/ha1tch/canved/canvas"
)

// BrushMode paints square dabs while the button is held. A stroke lasts from
// press to release and is committed as one version.
type BrushMode struct {
	Last     image.Point // where the previous tick painted
	Painting bool        // whether Last is set
}

func (*BrushMode) Tool() Tool { return ToolBrush }

func (m *BrushMode) Step(in Input, brush *Brush, working, composite *canvas.Buffer) Decision {
	decision := Continue
	cur, down := in.point()

	if down != m.Painting || (down && cur != m.Last) {
		if down {
			stamp := func(x, y int) {
				c := brush.Color.Pack()
				working.DrawSquare(x, y, brush.Size, c)
				composite.DrawSquare(x, y, brush.Size, c)
			}
			if m.Painting {
				interpolate(m.Last, cur, stamp)
			}
			stamp(cur.X, cur.Y)
		} else {
			decision = Save
		}
	}

	brush.Size = max(MinBrushSize, brush.Size+sign(in.Scroll))

	// preview
	if in.HasCursor {
		composite.DrawSquare(in.Cursor.X, in.Cursor.Y, brush.Size, brush.Color.Pack())
	}

	m.Last, m.Painting = cur, down
	return decision
}

func (*BrushMode) mode() {}

// interpolate calls stamp at unit steps from one point toward another so that
// a fast pointer leaves a continuous line. The start point itself is skipped.
func interpolate(from, to image.Point, stamp func(x, y int)) {
	a := vec.Vec2{X: float64(from.X), Y: float64(from.Y)}
	d := vec.Vec2{X: float64(to.X), Y: float64(to.Y)}.Sub(a)

	dist := d.Length()
	if dist == 0 {
		return
	}
	dir := d.Mul(1 / dist)

	for i := 1; i <= int(dist); i++ {
		p := a.Add(dir.Mul(float64(i)))
		stamp(int(p.X), int(p.Y))
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
