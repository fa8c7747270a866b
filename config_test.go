package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"matr/core"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(nil, envMap(nil), io.Discard)
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}

	want := Config{
		Width:    20,
		Height:   10,
		Fill:     '-',
		Char:     'x',
		From:     core.Coord{X: 3, Y: 3},
		To:       core.Coord{X: 5, Y: 6},
		Interval: 100 * time.Millisecond,
	}
	if cfg != want {
		t.Errorf("parseConfig() = %+v, want %+v", cfg, want)
	}
}

func TestParseConfig_FlagsOverrideEnv(t *testing.T) {
	env := envMap(map[string]string{
		"MATR_WIDTH":    "30",
		"MATR_HEIGHT":   "12",
		"MATR_FILL":     ".",
		"MATR_INTERVAL": "250ms",
	})

	cfg, err := parseConfig([]string{"-width", "8", "-char", "*", "-line", "0,0,6.5,2", "-frames", "4", "-mode", "plain"}, env, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}

	if cfg.Width != 8 {
		t.Errorf("Width = %d, want 8 (flag)", cfg.Width)
	}
	if cfg.Height != 12 {
		t.Errorf("Height = %d, want 12 (env)", cfg.Height)
	}
	if cfg.Fill != '.' || cfg.Char != '*' {
		t.Errorf("Fill, Char = %q, %q, want '.', '*'", cfg.Fill, cfg.Char)
	}
	if cfg.Interval != 250*time.Millisecond {
		t.Errorf("Interval = %v, want 250ms", cfg.Interval)
	}
	if cfg.From != (core.Coord{X: 0, Y: 0}) || cfg.To != (core.Coord{X: 6.5, Y: 2}) {
		t.Errorf("line = %v-%v, want {0 0}-{6.5 2}", cfg.From, cfg.To)
	}
	if cfg.Frames != 4 || cfg.Mode != "plain" {
		t.Errorf("Frames, Mode = %d, %q, want 4, plain", cfg.Frames, cfg.Mode)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"Multi-character fill", []string{"-fill", "ab"}, nil},
		{"Empty char", []string{"-char", ""}, nil},
		{"Short line", []string{"-line", "1,2,3"}, nil},
		{"Non-numeric line", []string{"-line", "1,2,x,4"}, nil},
		{"Unknown mode", []string{"-mode", "sixel"}, nil},
		{"Negative frames", []string{"-frames", "-1"}, nil},
		{"Stray argument", []string{"extra"}, nil},
		{"Bad env width", nil, map[string]string{"MATR_WIDTH": "wide"}},
		{"Bad env interval", nil, map[string]string{"MATR_INTERVAL": "soon"}},
		{"Bad env fill", nil, map[string]string{"MATR_FILL": "--"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseConfig(tt.args, envMap(tt.env), io.Discard); err == nil {
				t.Error("parseConfig() error = nil, want error")
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := parseConfig([]string{"-h"}, envMap(nil), io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("parseConfig(-h) error = %v, want flag.ErrHelp", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("MATR_HEIGHT=7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MATR_HEIGHT", "")
	os.Unsetenv("MATR_HEIGHT")

	path, err := loadDotEnv(nested)
	if err != nil {
		t.Fatalf("loadDotEnv() error = %v", err)
	}
	if path != filepath.Join(root, ".env") {
		t.Errorf("loadDotEnv() path = %q, want %q", path, filepath.Join(root, ".env"))
	}
	if got := os.Getenv("MATR_HEIGHT"); got != "7" {
		t.Errorf("MATR_HEIGHT = %q, want 7", got)
	}
}

func TestRunOnce(t *testing.T) {
	cfg := Config{
		Width:  5,
		Height: 5,
		Fill:   'b',
		Char:   'x',
		From:   core.Coord{X: 9, Y: 0},
		To:     core.Coord{X: 0, Y: 0},
		Once:   true,
	}

	if err := run(cfg, nil); err == nil {
		t.Error("run() with out-of-bounds line error = nil, want error")
	}

	cfg.Width = 0
	if err := run(cfg, nil); err == nil {
		t.Error("run() with zero width error = nil, want error")
	}
}
