// Package canvas implements the pixel buffer edited by canved.
//
// A Buffer is a row-major grid of packed RGB colors. Drawing operations clamp
// to the buffer and never fail; Crop validates before it touches anything.
package canvas

import "fmt"

// Buffer is a rectangular grid of packed colors.
type Buffer struct {
	data   []Color
	width  int
	height int
}

// New returns a black buffer of the given size.
func New(width, height int) *Buffer {
	return &Buffer{
		data:   make([]Color, width*height),
		width:  width,
		height: height,
	}
}

// NewFromData wraps data, which must hold exactly width*height pixels.
func NewFromData(data []Color, width, height int) (*Buffer, error) {
	if width < 0 || height < 0 || len(data) != width*height {
		return nil, fmt.Errorf("canvas: %d pixels do not fill %dx%d", len(data), width, height)
	}
	return &Buffer{data: data, width: width, height: height}, nil
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Data returns the pixels in row-major order.
func (b *Buffer) Data() []Color {
	return b.data
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]Color, len(b.data))
	copy(data, b.data)
	return &Buffer{data: data, width: b.width, height: b.height}
}

func (b *Buffer) index(x, y int) int {
	return y*b.width + x
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// At returns the pixel at (x, y). The point must be in bounds.
func (b *Buffer) At(x, y int) Color {
	return b.data[b.index(x, y)]
}

// Set stores c at (x, y). The point must be in bounds.
func (b *Buffer) Set(x, y int, c Color) {
	b.data[b.index(x, y)] = c
}

// Crop keeps the w×h rectangle at (x, y) and reports whether it did so.
// The buffer is left untouched when the rectangle is empty or its far corner
// lies outside the buffer.
func (b *Buffer) Crop(x, y, w, h int) bool {
	if x < 0 || y < 0 || w <= 0 || h <= 0 {
		return false
	}
	if x+w > b.width || y+h > b.height {
		return false
	}

	data := make([]Color, w*h)
	for j := 0; j < h; j++ {
		src := b.index(x, y+j)
		copy(data[j*w:(j+1)*w], b.data[src:src+w])
	}

	b.data = data
	b.width = w
	b.height = h
	return true
}
