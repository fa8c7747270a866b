package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"matr/canvas"
	"matr/render"
	"matr/validation"
)

func main() {
	logger := log.New(os.Stderr, "matr: ", 0)

	if dir, err := os.Getwd(); err == nil {
		if path, err := loadDotEnv(dir); err != nil {
			logger.Printf("loading %s failed: %v", path, err)
		}
	}

	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, logger *log.Logger) error {
	grid, err := canvas.NewGridFilled(cfg.Width, cfg.Height, cfg.Fill)
	if err != nil {
		return err
	}
	scene := render.LineScene(cfg.Fill, cfg.From, cfg.To, cfg.Char)

	if cfg.Once {
		if err := scene(grid, 0); err != nil {
			return err
		}
		frame := grid.Render()
		if cfg.Validate {
			if errs := validation.NewFrameValidator(cfg.Width, cfg.Height).Validate(frame); len(errs) > 0 {
				return errors.New(validation.FormatErrors(errs))
			}
		}
		fmt.Print(frame)
		return nil
	}

	caps := render.DetectCapabilities()
	if mode, ok := render.ParseMode(cfg.Mode); ok {
		caps.Mode = mode
	}
	if !caps.UTF8 && (cfg.Fill > 0x7F || cfg.Char > 0x7F) {
		logger.Printf("locale is not UTF-8; non-ASCII characters may not display")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	presenter, err := newPresenter(ctx, caps.Mode, stop)
	if err != nil {
		return err
	}
	defer func() {
		if err := presenter.Close(); err != nil {
			logger.Printf("closing terminal failed: %v", err)
		}
	}()

	if cfg.Validate {
		presenter = &validatingPresenter{
			Presenter: presenter,
			validator: validation.NewFrameValidator(cfg.Width, cfg.Height),
			logger:    logger,
		}
	}

	loop := &render.Loop{
		Canvas:    grid,
		Presenter: presenter,
		Scene:     scene,
		Interval:  cfg.Interval,
		Frames:    cfg.Frames,
		Logger:    logger,
	}
	return loop.Run(ctx)
}

// newPresenter builds the presenter for mode. For the full-screen presenter,
// stop is called when the user quits from the keyboard.
func newPresenter(ctx context.Context, mode render.Mode, stop context.CancelFunc) (render.Presenter, error) {
	switch mode {
	case render.ModeScreen:
		p, err := render.NewScreenPresenter()
		if err != nil {
			return nil, err
		}
		go func() {
			select {
			case <-p.Done():
				stop()
			case <-ctx.Done():
			}
		}()
		return p, nil
	case render.ModeANSI:
		return render.NewStreamPresenter(os.Stdout, true), nil
	default:
		return render.NewStreamPresenter(os.Stdout, false), nil
	}
}

// validatingPresenter logs frames that do not match the grid output format
// before passing them on.
type validatingPresenter struct {
	render.Presenter
	validator *validation.FrameValidator
	logger    *log.Logger
	frame     int
}

func (p *validatingPresenter) Present(frame string) error {
	if errs := p.validator.Validate(frame); len(errs) > 0 {
		p.logger.Printf("frame %d: %s", p.frame, validation.FormatErrors(errs))
	}
	p.frame++
	return p.Presenter.Present(frame)
}
