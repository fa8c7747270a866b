package render

import (
	"fmt"
	"io"
)

// ClearScreen erases the terminal and moves the cursor home.
const ClearScreen = "\x1b[2J\x1b[H"

// Presenter shows rendered frames.
type Presenter interface {
	// Present replaces whatever is shown with frame.
	Present(frame string) error

	// Close releases the terminal.
	Close() error
}

// StreamPresenter writes frames to an io.Writer, optionally clearing the
// screen before each one.
type StreamPresenter struct {
	w     io.Writer
	clear bool
}

// NewStreamPresenter creates a presenter writing to w. With clear set each
// frame is preceded by ClearScreen.
func NewStreamPresenter(w io.Writer, clear bool) *StreamPresenter {
	return &StreamPresenter{w: w, clear: clear}
}

// Present writes frame.
func (p *StreamPresenter) Present(frame string) error {
	if p.clear {
		if _, err := io.WriteString(p.w, ClearScreen); err != nil {
			return fmt.Errorf("clear screen: %w", err)
		}
	}
	if _, err := io.WriteString(p.w, frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Close does nothing; the writer belongs to the caller.
func (p *StreamPresenter) Close() error {
	return nil
}
