// Package letterbox maps between window and buffer coordinates when a buffer
// is shown scaled to fit a window without distortion.
//
// Window and buffer sizes must be non-zero.
package letterbox

import "image"

// Rect is the area of the window covered by the scaled buffer.
type Rect struct {
	X, Y float64
	W, H float64
}

// Fit returns where a bufW×bufH buffer lands in a windowW×windowH window.
// The buffer fills one axis and is centered on the other.
func Fit(windowW, windowH, bufW, bufH int) Rect {
	ww, wh := float64(windowW), float64(windowH)
	bw, bh := float64(bufW), float64(bufH)

	r := Rect{W: ww, H: wh}
	if ww/wh > bw/bh {
		// bars left and right
		r.W = bw * wh / bh
		r.X = (ww - r.W) / 2
	} else {
		// bars above and below
		r.H = bh * ww / bw
		r.Y = (wh - r.H) / 2
	}
	return r
}

// Map converts a window point into buffer coordinates, truncating toward
// zero. Points in the bars map outside the buffer.
func Map(x, y, windowW, windowH, bufW, bufH int) image.Point {
	r := Fit(windowW, windowH, bufW, bufH)
	return image.Point{
		X: int((float64(x) - r.X) * float64(bufW) / r.W),
		Y: int((float64(y) - r.Y) * float64(bufH) / r.H),
	}
}
