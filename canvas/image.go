package canvas

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage copies img into a new buffer. Alpha is discarded.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	b := New(width, height)
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < width; x++ {
			p := row[x*4:]
			b.Set(x, y, RGB{p[0], p[1], p[2]}.Pack())
		}
	}
	return b
}

// Image returns an opaque copy of the buffer as an *image.RGBA.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for i, c := range b.data {
		rgb := c.RGB()
		p := img.Pix[i*4 : i*4+4]
		p[0], p[1], p[2], p[3] = rgb[0], rgb[1], rgb[2], 0xFF
	}
	return img
}
