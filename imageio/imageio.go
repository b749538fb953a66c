// Package imageio loads and saves canvas buffers.
//
// Images are read from a file or standard input in any registered format
// (PNG, JPEG, GIF, BMP, TIFF and WebP) and written as PNG, JPEG, GIF, BMP,
// TIFF or a single page PDF.
package imageio

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ha1tch/canved/canvas"
)

// Target is where an image comes from or goes to.
type Target struct {
	// Path is the file path. Empty means standard input or output.
	Path string
}

// Stdio is the standard input or output target.
var Stdio = Target{}

// ParseTarget returns Stdio for "-" and a file target otherwise.
func ParseTarget(s string) Target {
	if s == "-" {
		return Stdio
	}
	return Target{Path: s}
}

// IsStdio reports whether t is standard input or output.
func (t Target) IsStdio() bool { return t.Path == "" }

func (t Target) String() string {
	if t.IsStdio() {
		return "-"
	}
	return t.Path
}

// Decode reads an image in any registered format from r.
func Decode(r io.Reader) (*canvas.Buffer, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	b := canvas.FromImage(img)
	Logger().Debug("decoded", "format", name, "width", b.Width(), "height", b.Height())
	return b, nil
}

// Read decodes the image at t.
func Read(t Target) (*canvas.Buffer, error) {
	if t.IsStdio() {
		return Decode(bufio.NewReader(os.Stdin))
	}

	f, err := os.Open(t.Path)
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()

	b, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Path, err)
	}
	return b, nil
}

// Write encodes b to t. With FormatAuto, standard output gets PNG and files
// get the format of their extension.
func Write(t Target, b *canvas.Buffer, format Format) error {
	if t.IsStdio() {
		if format == FormatAuto {
			format = FormatPNG
		}
		w := bufio.NewWriter(os.Stdout)
		if err := Encode(w, b, format); err != nil {
			return err
		}
		return w.Flush()
	}

	if format == FormatAuto {
		var err error
		if format, err = FormatFromPath(t.Path); err != nil {
			return err
		}
	}

	f, err := os.Create(t.Path)
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := Encode(w, b, format); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", t.Path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("imageio: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	Logger().Info("wrote image", "path", t.Path, "format", format)
	return nil
}
