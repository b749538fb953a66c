package canvas

import (
	"image"
	"math"
)

// ColorbarPos selects the edge the palette bar is drawn along.
type ColorbarPos int

const (
	ColorbarTop ColorbarPos = iota
	ColorbarBottom
)

// FillRect fills the w×h rectangle at (x, y), clipped to the buffer.
func (b *Buffer) FillRect(x, y, w, h uint, c Color) {
	bw, bh := uint(b.width), uint(b.height)

	xMin, xMax := min(x, bw), min(addSat(x, w), bw)
	yMin, yMax := min(y, bh), min(addSat(y, h), bh)

	b.fill(int(xMin), int(yMin), int(xMax), int(yMax), c)
}

// FillRectS is FillRect for signed coordinates. Rectangles that do not
// intersect the buffer are ignored.
func (b *Buffer) FillRectS(x, y, w, h int, c Color) {
	xMin, xMax := clampInt(x, 0, b.width), clampInt(x+w, 0, b.width)
	yMin, yMax := clampInt(y, 0, b.height), clampInt(y+h, 0, b.height)

	b.fill(xMin, yMin, xMax, yMax, c)
}

// DrawSquare fills a size×size square around (cx, cy). The offset is
// size/2 rounded toward zero, so odd squares reach one pixel further
// right and down than left and up.
func (b *Buffer) DrawSquare(cx, cy, size int, c Color) {
	half := size / 2
	b.FillRectS(cx-half, cy-half, size, size, c)
}

func (b *Buffer) fill(xMin, yMin, xMax, yMax int, c Color) {
	if xMax <= xMin || yMax <= yMin {
		return
	}
	for y := yMin; y < yMax; y++ {
		row := b.data[b.index(xMin, y):b.index(xMax, y)]
		for i := range row {
			row[i] = c
		}
	}
}

// DrawColorbar draws one swatch per palette entry from left to right. The
// swatch at index selected gets an inverted border, every other one a black
// border.
func (b *Buffer) DrawColorbar(palette []RGB, selected int, pos ColorbarPos) {
	count := len(palette)
	if count == 0 {
		return
	}

	boxSize := min(32, max(3, b.width/count))
	padding := min(2, max(0, b.width-boxSize*count)/count)
	margin := min(2, padding)
	border := min(2, boxSize/3)

	y := margin
	if pos == ColorbarBottom {
		y = b.height - margin - boxSize
	}

	for i, rgb := range palette {
		c := rgb.Pack()
		x := margin + (boxSize+padding)*i

		var bc Color
		if i == selected {
			bc = c.Invert()
		}

		b.FillRectS(x, y, boxSize, boxSize, bc)
		b.FillRectS(x+border, y+border, boxSize-2*border, boxSize-2*border, c)
	}
}

// DrawGuides inverts the rows through a.Y and b.Y and the columns through
// a.X and b.X. A line on the first row or column, or outside the buffer, is
// not drawn; a line shared by both points is inverted once.
func (b *Buffer) DrawGuides(a, p image.Point) {
	if a.Y > 0 && a.Y < b.height {
		b.invertRow(a.Y)
	}
	if p.Y > 0 && p.Y < b.height && p.Y != a.Y {
		b.invertRow(p.Y)
	}
	if a.X > 0 && a.X < b.width {
		b.invertColumn(a.X)
	}
	if p.X > 0 && p.X < b.width && p.X != a.X {
		b.invertColumn(p.X)
	}
}

func (b *Buffer) invertRow(y int) {
	for x := 0; x < b.width; x++ {
		b.Set(x, y, b.At(x, y).Invert())
	}
}

func (b *Buffer) invertColumn(x int) {
	for y := 0; y < b.height; y++ {
		b.Set(x, y, b.At(x, y).Invert())
	}
}

func addSat(a, b uint) uint {
	if s := a + b; s >= a {
		return s
	}
	return math.MaxUint
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
