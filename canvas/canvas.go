// Package canvas provides a fixed-size character grid with point and line
// drawing that renders to a newline-delimited text block.
package canvas

import (
	"errors"

	"matr/buffer"
	"matr/core"
)

// Common errors
var (
	ErrInvalidDimensions   = errors.New("invalid grid dimensions")
	ErrOutOfBounds         = errors.New("position out of bounds")
	ErrTerminatorProtected = errors.New("terminator cell is not addressable")
	ErrInvalidGlyph        = errors.New("glyph is not a single-width printable character")

	// ErrIndexOutOfBounds is the buffer error, re-exported so callers of Row
	// need not import the buffer package.
	ErrIndexOutOfBounds = buffer.ErrIndexOutOfBounds
)

const (
	// Terminator ends every row in the rendered output.
	Terminator = '\n'

	// DefaultGlyph fills a grid constructed without an explicit fill character.
	DefaultGlyph = 'x'

	// Blank is what a freshly constructed row holds before any fill.
	Blank = ' '
)

// Canvas is re-exported from core for convenience.
type Canvas = core.Canvas

var _ Canvas = (*Grid)(nil)
