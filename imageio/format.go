package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned when no encoder matches a name or extension.
var ErrUnknownFormat = errors.New("imageio: unknown format")

// Format selects an encoder.
type Format int

const (
	// FormatAuto picks the format from the target: PNG on stdout, the file
	// extension otherwise.
	FormatAuto Format = iota
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatBMP
	FormatTIFF
	FormatPDF
)

var formatNames = map[Format]string{
	FormatAuto: "auto",
	FormatPNG:  "png",
	FormatJPEG: "jpeg",
	FormatGIF:  "gif",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
	FormatPDF:  "pdf",
}

var formatAliases = map[string]Format{
	"":     FormatAuto,
	"auto": FormatAuto,
	"png":  FormatPNG,
	"jpeg": FormatJPEG,
	"jpg":  FormatJPEG,
	"gif":  FormatGIF,
	"bmp":  FormatBMP,
	"tiff": FormatTIFF,
	"tif":  FormatTIFF,
	"pdf":  FormatPDF,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format named s, case-insensitively. "jpg" and
// "tif" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// FormatFromPath returns the format matching the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return FormatAuto, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	f, err := ParseFormat(ext)
	if err != nil || f == FormatAuto {
		return FormatAuto, fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
	}
	return f, nil
}

func (f Format) MarshalText() ([]byte, error) {
	name, ok := formatNames[f]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return []byte(name), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
