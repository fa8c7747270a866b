package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"

	"matr/core"
	"matr/render"
)

// Config holds the settings for one run.
type Config struct {
	Width, Height int
	Fill          rune
	Char          rune
	From, To      core.Coord
	Interval      time.Duration
	Frames        int
	Once          bool
	Validate      bool

	// Mode is empty unless -mode was given.
	Mode string
}

// loadDotEnv loads the nearest .env file at or above dir. Variables already
// set in the environment win.
func loadDotEnv(dir string) (string, error) {
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return envPath, godotenv.Load(envPath)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// parseConfig reads flags from args. Environment values from getenv supply
// the defaults flags fall back to.
func parseConfig(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	defaults := Config{
		Width:    20,
		Height:   10,
		Fill:     '-',
		Char:     'x',
		From:     core.Coord{X: 3, Y: 3},
		To:       core.Coord{X: 5, Y: 6},
		Interval: render.DefaultInterval,
	}
	if err := applyEnv(&defaults, getenv); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("matr", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		width    = fs.Int("width", defaults.Width, "Grid width, terminator column included")
		height   = fs.Int("height", defaults.Height, "Grid height")
		fill     = fs.String("fill", string(defaults.Fill), "Background character")
		char     = fs.String("char", string(defaults.Char), "Line character")
		line     = fs.String("line", formatLine(defaults.From, defaults.To), "Line endpoints as x1,y1,x2,y2")
		interval = fs.Duration("interval", defaults.Interval, "Delay between frames")
		frames   = fs.Int("frames", 0, "Stop after this many frames (0 = until interrupted)")
		mode     = fs.String("mode", "", "Presenter: plain, ansi or screen (auto-detect if not specified)")
		once     = fs.Bool("once", false, "Render a single frame to stdout and exit")
		validate = fs.Bool("validate", false, "Check every rendered frame and log problems")
	)

	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: matr [options]\n\n")
		fmt.Fprintf(output, "Draws a line on a character grid and redraws it on the terminal.\n\n")
		fmt.Fprintf(output, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(output, "\nEnvironment (also read from .env):\n")
		fmt.Fprintf(output, "  MATR_WIDTH, MATR_HEIGHT, MATR_FILL, MATR_INTERVAL, MATR_TERMINAL_MODE\n")
		fmt.Fprintf(output, "\nExamples:\n")
		fmt.Fprintf(output, "  matr -once                         # Print one frame\n")
		fmt.Fprintf(output, "  matr -line 0,0,15,8 -char '*'      # Animate a different line\n")
		fmt.Fprintf(output, "  matr -mode screen                  # Full-screen, q to quit\n")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Config{
		Width:    *width,
		Height:   *height,
		Interval: *interval,
		Frames:   *frames,
		Once:     *once,
		Validate: *validate,
		Mode:     *mode,
	}

	var err error
	if cfg.Fill, err = parseGlyph("fill", *fill); err != nil {
		return Config{}, err
	}
	if cfg.Char, err = parseGlyph("char", *char); err != nil {
		return Config{}, err
	}
	if cfg.From, cfg.To, err = parseLine(*line); err != nil {
		return Config{}, err
	}
	if cfg.Mode != "" {
		if _, ok := render.ParseMode(cfg.Mode); !ok {
			return Config{}, fmt.Errorf("unknown mode %q", cfg.Mode)
		}
	}
	if cfg.Frames < 0 {
		return Config{}, fmt.Errorf("frames must not be negative: %d", cfg.Frames)
	}

	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("MATR_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MATR_WIDTH: %w", err)
		}
		cfg.Width = n
	}
	if v := getenv("MATR_HEIGHT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MATR_HEIGHT: %w", err)
		}
		cfg.Height = n
	}
	if v := getenv("MATR_FILL"); v != "" {
		r, err := parseGlyph("MATR_FILL", v)
		if err != nil {
			return err
		}
		cfg.Fill = r
	}
	if v := getenv("MATR_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("MATR_INTERVAL: %w", err)
		}
		cfg.Interval = d
	}
	return nil
}

// parseGlyph accepts exactly one character.
func parseGlyph(name, s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%s must be a single character, got %q", name, s)
	}
	return r, nil
}

func parseLine(s string) (from, to core.Coord, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return from, to, errors.New("line must be x1,y1,x2,y2")
	}

	var v [4]float64
	for i, p := range parts {
		v[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return from, to, fmt.Errorf("line: %w", err)
		}
	}
	return core.Coord{X: v[0], Y: v[1]}, core.Coord{X: v[2], Y: v[3]}, nil
}

func formatLine(from, to core.Coord) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return strings.Join([]string{f(from.X), f(from.Y), f(to.X), f(to.Y)}, ",")
}
