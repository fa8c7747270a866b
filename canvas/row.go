package canvas

import (
	"fmt"
	"strings"

	"matr/buffer"
)

// Row is a fixed-width line of characters whose last cell is the terminator.
//
// A row of width W holds W-1 visible cells, addressed 0..W-2, followed by the
// Terminator at W-1. Only the visible cells live in the underlying buffer; the
// terminator is appended when the row is serialized, so no mutation path can
// reach it.
type Row struct {
	cells *buffer.Locked[rune]
	width int
}

// NewRow creates a row of the given width with every visible cell blank.
func NewRow(width int) (*Row, error) {
	if width <= 0 {
		return nil, fmt.Errorf("row width %d: %w", width, ErrInvalidDimensions)
	}

	cells, err := buffer.NewLocked[rune](width - 1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < width-1; i++ {
		if err := cells.Insert(Blank); err != nil {
			return nil, err
		}
	}

	return &Row{cells: cells, width: width}, nil
}

// Width returns the row width, terminator included.
func (r *Row) Width() int {
	return r.width
}

// Fill overwrites every visible cell with ch. The terminator is untouched.
func (r *Row) Fill(ch rune) error {
	if err := checkGlyph(ch); err != nil {
		return err
	}
	for i := 0; i < r.cells.Len(); i++ {
		if _, err := r.cells.Replace(i, ch); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the character at i.
func (r *Row) Get(i int) (rune, error) {
	if err := r.check(i); err != nil {
		return 0, err
	}
	return r.cells.Get(i)
}

// Replace writes ch at i and returns the character it replaced.
func (r *Row) Replace(i int, ch rune) (rune, error) {
	if err := r.check(i); err != nil {
		return 0, err
	}
	if err := checkGlyph(ch); err != nil {
		return 0, err
	}
	return r.cells.Replace(i, ch)
}

// Text returns exactly Width characters: the visible cells followed by the
// terminator.
func (r *Row) Text() string {
	var sb strings.Builder
	sb.Grow(r.width)
	r.writeTo(&sb)
	return sb.String()
}

// String implements fmt.Stringer.
func (r *Row) String() string {
	return r.Text()
}

func (r *Row) writeTo(sb *strings.Builder) {
	for _, ch := range r.cells.Values() {
		sb.WriteRune(ch)
	}
	sb.WriteRune(Terminator)
}

func (r *Row) check(i int) error {
	if i == r.width-1 {
		return fmt.Errorf("index %d: %w", i, ErrTerminatorProtected)
	}
	if i < 0 || i >= r.width {
		return fmt.Errorf("index %d (width %d): %w", i, r.width, ErrIndexOutOfBounds)
	}
	return nil
}
