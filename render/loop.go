package render

import (
	"context"
	"fmt"
	"log"
	"time"

	"matr/core"
)

// DefaultInterval is the pause between frames.
const DefaultInterval = 100 * time.Millisecond

// Scene draws one frame onto the canvas.
type Scene func(c core.Canvas, frame int) error

// LineScene returns a scene that fills the canvas with background and draws
// a single line from one point to another with ch.
func LineScene(background rune, from, to core.Coord, ch rune) Scene {
	return func(c core.Canvas, frame int) error {
		if err := c.Fill(background); err != nil {
			return err
		}
		return c.DrawLine(from.X, from.Y, to.X, to.Y, ch)
	}
}

// Loop repeatedly draws a scene and presents the rendered canvas.
type Loop struct {
	Canvas    core.Canvas
	Presenter Presenter
	Scene     Scene

	// Interval between frames; DefaultInterval when zero.
	Interval time.Duration

	// Frames stops the loop after that many frames; zero runs until the
	// context is cancelled.
	Frames int

	// Logger receives progress messages; log.Default() when nil.
	Logger *log.Logger
}

// Run draws frames until ctx is cancelled or the frame limit is reached.
// A scene or presenter error stops the loop and is returned.
func (l *Loop) Run(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	frame := 0
	for {
		if err := l.step(frame); err != nil {
			return err
		}
		frame++

		if l.Frames > 0 && frame >= l.Frames {
			logger.Printf("rendered %d frames", frame)
			return nil
		}

		select {
		case <-ctx.Done():
			logger.Printf("stopped after %d frames", frame)
			return nil
		case <-ticker.C:
		}
	}
}

func (l *Loop) step(frame int) error {
	if l.Scene != nil {
		if err := l.Scene(l.Canvas, frame); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
	}
	if err := l.Presenter.Present(l.Canvas.Render()); err != nil {
		return fmt.Errorf("frame %d: %w", frame, err)
	}
	return nil
}
