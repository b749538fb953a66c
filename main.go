// Command canved opens an image in a window for painting and cropping and
// writes the result.
//
// Usage:
//
//	canved [flags] input
//
// input is a file path or - for standard input. Keys: B brush, C crop,
// Escape view, 1-9 palette, mouse wheel brush size, Ctrl+Z undo,
// Ctrl+Shift+Z or Ctrl+Y redo, Q or closing the window to finish.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ha1tch/canved/editor"
	"github.com/ha1tch/canved/imageio"
	"github.com/ha1tch/canved/internal/rlhost"
)

type config struct {
	input   imageio.Target
	output  string
	format  imageio.Format
	options editor.Options
	verbose bool
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "canved: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	editor.SetLogger(logger)
	imageio.SetLogger(logger)

	initial, err := imageio.Read(cfg.input)
	if err != nil {
		return err
	}
	if initial.Width() == 0 || initial.Height() == 0 {
		return fmt.Errorf("%s: empty image", cfg.input)
	}

	host := rlhost.Open(initial.Width(), initial.Height())
	final, err := editor.Edit(host, initial, cfg.options)
	host.Close()
	if err != nil {
		return err
	}

	if cfg.output == "" {
		logger.Info("no output given, result discarded")
		return nil
	}
	return imageio.Write(imageio.ParseTarget(cfg.output), final, cfg.format)
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	var (
		cfg        config
		configPath string
	)

	fs := flag.NewFlagSet("canved", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: canved [flags] input")
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.output, "o", "", "write the result to `path` (- for stdout)")
	fs.StringVar(&cfg.output, "output", "", "same as -o")
	fs.TextVar(&cfg.format, "F", imageio.FormatAuto, "output `format`: png, jpeg, gif, bmp, tiff or pdf")
	fs.TextVar(&cfg.format, "format", imageio.FormatAuto, "same as -F")
	fs.StringVar(&configPath, "config", "", "read editor options from a TOML `file`")
	fs.BoolVar(&cfg.verbose, "v", false, "log debug messages to stderr")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return config{}, errors.New("expected exactly one input")
	}
	cfg.input = imageio.ParseTarget(fs.Arg(0))

	cfg.options = editor.DefaultOptions()
	if configPath != "" {
		opts, err := editor.LoadOptions(configPath)
		if err != nil {
			return config{}, err
		}
		cfg.options = opts
	}
	return cfg, nil
}
