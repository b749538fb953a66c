package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/ha1tch/canved/editor"
	"github.com/ha1tch/canved/imageio"
	"github.com/ha1tch/canved/mode"
)

func TestParseArgs(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := parseArgs([]string{"-o", "out.pdf", "-F", "jpg", "-v", "in.png"}, &stderr)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if cfg.input.Path != "in.png" || cfg.output != "out.pdf" {
		t.Fatalf("input=%v output=%q", cfg.input, cfg.output)
	}
	if cfg.format != imageio.FormatJPEG || !cfg.verbose {
		t.Fatalf("format=%v verbose=%v", cfg.format, cfg.verbose)
	}
	if cfg.options.Brush != editor.DefaultOptions().Brush {
		t.Fatalf("options=%+v, want defaults", cfg.options)
	}
}

func TestParseArgs_LongForms(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := parseArgs([]string{"-output", "-", "-format", "gif", "-"}, &stderr)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !cfg.input.IsStdio() || cfg.output != "-" || cfg.format != imageio.FormatGIF {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestParseArgs_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canved.toml")
	if err := os.WriteFile(path, []byte("mode = \"crop\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	cfg, err := parseArgs([]string{"-config", path, "in.png"}, &stderr)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if cfg.options.Mode != mode.ToolCrop {
		t.Fatalf("mode=%v, want crop", cfg.options.Mode)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.toml")

	tests := []struct {
		name string
		args []string
	}{
		{"no input", nil},
		{"two inputs", []string{"a.png", "b.png"}},
		{"bad format", []string{"-F", "tga", "in.png"}},
		{"unknown flag", []string{"-x", "in.png"}},
		{"missing config", []string{"-config", missing, "in.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if _, err := parseArgs(tt.args, &stderr); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stderr bytes.Buffer
	if err := run([]string{"-h"}, &stderr); err != nil {
		t.Fatalf("run -h: %v", err)
	}
	if _, err := parseArgs([]string{"-h"}, &stderr); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err=%v, want flag.ErrHelp", err)
	}
	if !bytes.Contains(stderr.Bytes(), []byte("usage: canved")) {
		t.Fatalf("usage not printed:\n%s", stderr.String())
	}
}

func TestRun_MissingInput(t *testing.T) {
	var stderr bytes.Buffer
	err := run([]string{filepath.Join(t.TempDir(), "missing.png")}, &stderr)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v, want os.ErrNotExist", err)
	}
}
