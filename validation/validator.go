// Package validation checks rendered frames against the grid output format.
package validation

import (
	"fmt"
	"strings"

	"matr/canvas"
)

// FrameValidator checks that a rendered frame has the exact shape a grid of a
// given size produces: height rows of width characters, each row ending in
// the terminator, with every other cell a single-width glyph.
type FrameValidator struct {
	width, height int
	errors        []ValidationError
}

// ValidationError represents a validation error with location information.
type ValidationError struct {
	X, Y    int
	Char    rune
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("(%d,%d) %q: %s", e.X, e.Y, e.Char, e.Message)
}

// NewFrameValidator creates a validator for frames of the given grid size.
func NewFrameValidator(width, height int) *FrameValidator {
	return &FrameValidator{width: width, height: height}
}

// Validate checks a rendered frame and returns every problem found.
func (v *FrameValidator) Validate(frame string) []ValidationError {
	v.errors = nil
	if v.width <= 0 || v.height <= 0 {
		v.addError(-1, -1, 0, fmt.Sprintf("invalid frame size %dx%d", v.width, v.height))
		return v.errors
	}

	runes := []rune(frame)
	if want := v.width * v.height; len(runes) != want {
		v.addError(-1, -1, 0, fmt.Sprintf("frame has %d characters, want %d", len(runes), want))
	}

	for i, r := range runes {
		x, y := i%v.width, i/v.width
		if y >= v.height {
			v.addError(x, y, r, "character past the last row")
			continue
		}

		if x == v.width-1 {
			if r != canvas.Terminator {
				v.addError(x, y, r, "row does not end in the terminator")
			}
			continue
		}
		if !canvas.ValidGlyph(r) {
			v.addError(x, y, r, "cell is not a single-width glyph")
		}
	}

	return v.errors
}

func (v *FrameValidator) addError(x, y int, r rune, msg string) {
	v.errors = append(v.errors, ValidationError{X: x, Y: y, Char: r, Message: msg})
}

// FormatErrors formats validation errors for display.
func FormatErrors(errors []ValidationError) string {
	if len(errors) == 0 {
		return "No validation errors found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d validation errors:\n", len(errors)))
	for _, err := range errors {
		sb.WriteString("  ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}
