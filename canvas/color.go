package canvas

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color is a pixel packed as 0x00RRGGBB.
type Color uint32

// White is the mask used to invert a packed color.
const White Color = 0xFFFFFF

// RGB holds the red, green and blue components of a color.
type RGB [3]uint8

// Pack converts the components into a packed Color.
func (c RGB) Pack() Color {
	return Color(c[0])<<16 | Color(c[1])<<8 | Color(c[2])
}

// RGB unpacks c into its components. Bits above the low 24 are ignored.
func (c Color) RGB() RGB {
	return RGB{uint8(c >> 16), uint8(c >> 8), uint8(c)}
}

// Invert returns the color with every component flipped.
func (c Color) Invert() Color {
	return (c ^ White) & White
}

// MarshalText encodes the color as #rrggbb.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte("#" + hex.EncodeToString(c[:])), nil
}

// UnmarshalText accepts #rrggbb, rrggbb and the short #rgb form.
func (c *RGB) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fmt.Errorf("canvas: invalid color %q", text)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("canvas: invalid color %q: %w", text, err)
	}
	copy(c[:], b)
	return nil
}

func (c RGB) String() string {
	b, _ := c.MarshalText()
	return string(b)
}
