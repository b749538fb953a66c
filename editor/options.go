package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ha1tch/canved/canvas"
	"github.com/ha1tch/canved/mode"
)

var (
	ErrBrushSize   = errors.New("editor: brush size below minimum")
	ErrMaxVersions = errors.New("editor: negative max_versions")
)

// Options configures an editing session.
type Options struct {
	Brush   mode.Brush   `toml:"brush"`
	Mode    mode.Tool    `toml:"mode"`
	Palette []canvas.RGB `toml:"palette"`

	// MaxVersions caps the version history; 0 keeps every version.
	MaxVersions int `toml:"max_versions"`
}

// DefaultOptions returns a 2px red brush in brush mode with an eight color
// palette.
func DefaultOptions() Options {
	return Options{
		Brush: mode.Brush{
			Size:  2,
			Color: canvas.RGB{0xFF, 0x00, 0x00},
		},
		Mode: mode.ToolBrush,
		Palette: []canvas.RGB{
			{0, 0, 0},
			{255, 255, 255},
			{255, 0, 0},
			{0, 255, 0},
			{0, 0, 255},
			{255, 255, 0},
			{255, 0, 255},
			{0, 255, 255},
		},
	}
}

// Validate checks the options for values the editor cannot run with.
func (o Options) Validate() error {
	if o.Brush.Size < mode.MinBrushSize {
		return fmt.Errorf("%w: %d < %d", ErrBrushSize, o.Brush.Size, mode.MinBrushSize)
	}
	if o.MaxVersions < 0 {
		return fmt.Errorf("%w: %d", ErrMaxVersions, o.MaxVersions)
	}
	return nil
}

// DecodeOptions reads TOML options from r. Keys missing from r keep their
// default values; unknown keys are an error.
//
//	mode = "brush"
//	max_versions = 50
//	palette = ["#000000", "#ffffff", "#ff8800"]
//
//	[brush]
//	size = 4
//	color = "#ff8800"
func DecodeOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()

	md, err := toml.NewDecoder(r).Decode(&opts)
	if err != nil {
		return Options{}, fmt.Errorf("editor: decode options: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, fmt.Errorf("editor: unknown option keys: %s", strings.Join(keys, ", "))
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadOptions reads TOML options from the file at path.
func LoadOptions(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("editor: open options: %w", err)
	}
	defer f.Close()

	return DecodeOptions(f)
}
