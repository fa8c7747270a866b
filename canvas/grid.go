package canvas

import (
	"fmt"
	"strings"

	"matr/buffer"
	"matr/core"
)

// Grid is a fixed-size character grid with point and line drawing.
//
// Thread Safety:
// Grid is NOT thread-safe. It holds no locks and every operation completes
// immediately, so callers sharing a Grid across goroutines must serialize all
// access to it externally:
//
//	var mu sync.Mutex
//	mu.Lock()
//	grid.DrawLine(0, 0, 3, 3, '*')
//	mu.Unlock()
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward, Y increases downward
//   - Drawable cells are x in [0, width-2] and y in [0, height-1]; column
//     width-1 holds the row terminator and is never drawable
//   - Coordinates are reals, rounded half away from zero to a cell
//
// Performance Characteristics:
//   - DrawPoint/Get: O(1)
//   - DrawLine: O(max(|x2-x1|, |y2-y1|))
//   - Fill/Render: O(width × height)
type Grid struct {
	rows   *buffer.Locked[*Row]
	width  int
	height int
	glyph  rune
}

// NewGrid creates a grid filled with DefaultGlyph.
func NewGrid(width, height int) (*Grid, error) {
	return NewGridFilled(width, height, DefaultGlyph)
}

// NewGridFilled creates a grid whose visible cells all hold fill.
func NewGridFilled(width, height int, fill rune) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	if err := checkGlyph(fill); err != nil {
		return nil, err
	}

	rows, err := buffer.NewLocked[*Row](height)
	if err != nil {
		return nil, err
	}
	// Every row is built on its own so that no two rows share storage.
	for y := 0; y < height; y++ {
		row, err := NewRow(width)
		if err != nil {
			return nil, err
		}
		if err := row.Fill(fill); err != nil {
			return nil, err
		}
		if err := rows.Insert(row); err != nil {
			return nil, err
		}
	}

	return &Grid{
		rows:   rows,
		width:  width,
		height: height,
		glyph:  fill,
	}, nil
}

// Size returns the width (terminator column included) and height of the grid.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Fill overwrites every visible cell with ch. Terminators are preserved.
func (g *Grid) Fill(ch rune) error {
	if err := checkGlyph(ch); err != nil {
		return err
	}
	for y := 0; y < g.height; y++ {
		if err := g.row(y).Fill(ch); err != nil {
			return err
		}
	}
	return nil
}

// Clear refills the grid with the glyph it was constructed with.
func (g *Grid) Clear() {
	// The construction glyph was validated, so Fill cannot fail here.
	_ = g.Fill(g.glyph)
}

// Get returns the character in the drawable cell (x, y).
func (g *Grid) Get(x, y int) (rune, error) {
	p := core.Point{X: x, Y: y}
	if !g.inBounds(p) {
		return 0, g.boundsError(p)
	}
	return g.row(y).Get(x)
}

// DrawPoint stamps ch at the cell nearest to (x, y).
func (g *Grid) DrawPoint(x, y float64, ch rune) error {
	if err := checkGlyph(ch); err != nil {
		return err
	}
	c := core.Coord{X: x, Y: y}
	if !c.Finite() {
		return fmt.Errorf("point (%v, %v): %w", x, y, ErrOutOfBounds)
	}
	p := c.Cell()
	if !g.inBounds(p) {
		return g.boundsError(p)
	}
	return g.set(p, ch)
}

// Render returns every row's text in order, each ending in the terminator.
// The result is exactly width × height characters.
func (g *Grid) Render() string {
	var sb strings.Builder
	sb.Grow(g.width * g.height)
	for y := 0; y < g.height; y++ {
		g.row(y).writeTo(&sb)
	}
	return sb.String()
}

// String returns the rendered grid.
func (g *Grid) String() string {
	return g.Render()
}

func (g *Grid) set(p core.Point, ch rune) error {
	_, err := g.row(p.Y).Replace(p.X, ch)
	return err
}

// row returns row y, which must be in range.
func (g *Grid) row(y int) *Row {
	r, err := g.rows.Get(y)
	if err != nil {
		panic(fmt.Sprintf("canvas: row %d of %d: %v", y, g.height, err))
	}
	return r
}

func (g *Grid) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.width-1 && p.Y >= 0 && p.Y < g.height
}

func (g *Grid) boundsError(p core.Point) error {
	return fmt.Errorf("cell (%d, %d) outside %dx%d drawable area: %w",
		p.X, p.Y, g.width-1, g.height, ErrOutOfBounds)
}
