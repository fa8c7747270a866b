package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ScreenPresenter draws frames on a full-screen tcell display.
//
// Each line of a frame becomes one screen row; the row terminators are not
// drawn. Pressing q, Esc or Ctrl-C closes the channel returned by Done.
type ScreenPresenter struct {
	screen tcell.Screen
	style  tcell.Style

	done     chan struct{}
	doneOnce sync.Once
	finiOnce sync.Once
}

// NewScreenPresenter opens the terminal as a tcell screen.
func NewScreenPresenter() (*ScreenPresenter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewScreenPresenterWith(screen), nil
}

// NewScreenPresenterWith wraps an already initialized screen.
func NewScreenPresenterWith(screen tcell.Screen) *ScreenPresenter {
	p := &ScreenPresenter{
		screen: screen,
		style:  tcell.StyleDefault,
		done:   make(chan struct{}),
	}
	screen.HideCursor()
	go p.pollEvents()
	return p
}

// Done is closed once the user asks to quit.
func (p *ScreenPresenter) Done() <-chan struct{} {
	return p.done
}

// Size returns the screen size in cells.
func (p *ScreenPresenter) Size() (width, height int) {
	return p.screen.Size()
}

// Present clears the screen and draws frame from the top-left corner.
// Cells beyond the screen edge are dropped.
func (p *ScreenPresenter) Present(frame string) error {
	p.screen.Clear()

	lines := strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
	for y, line := range lines {
		x := 0
		for _, r := range line {
			p.screen.SetContent(x, y, r, nil, p.style)
			x++
		}
	}

	p.screen.Show()
	return nil
}

// Close restores the terminal.
func (p *ScreenPresenter) Close() error {
	p.finiOnce.Do(p.screen.Fini)
	p.quit()
	return nil
}

func (p *ScreenPresenter) quit() {
	p.doneOnce.Do(func() { close(p.done) })
}

func (p *ScreenPresenter) pollEvents() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			p.quit()
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				p.quit()
			}
		case *tcell.EventResize:
			p.screen.Sync()
		}
	}
}
