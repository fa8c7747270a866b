package canvas

import (
	"fmt"

	"matr/core"
	"matr/geometry"
)

// LineStepper walks the cells approximating the segment between two points
// using digital differential analyzer stepping. It allocates nothing.
//
// The dominant axis advances by at most one cell per step, so consecutive
// cells are always adjacent. Both endpoints are always visited; a segment
// whose endpoints coincide yields exactly one cell. Each step adds the
// per-step increment to the previous position and rounds half away from zero;
// the far endpoint is taken exactly rather than accumulated.
//
// Usage:
//
//	s := NewLineStepper(0, 0, 3, 3)
//	for p, ok := s.Next(); ok; p, ok = s.Next() {
//		...
//	}
type LineStepper struct {
	from, to core.Coord
	pos      core.Coord
	dx, dy   float64
	steps    int
	i        int
}

// NewLineStepper creates a stepper from (x1, y1) to (x2, y2).
// Endpoints must be finite. A segment longer than MaxLineSpan is sampled at
// MaxLineSpan+1 points, so its cells are no longer adjacent, but both
// endpoints are still visited.
func NewLineStepper(x1, y1, x2, y2 float64) LineStepper {
	s := LineStepper{
		from: core.Coord{X: x1, Y: y1},
		to:   core.Coord{X: x2, Y: y2},
		pos:  core.Coord{X: x1, Y: y1},
	}
	if span := geometry.Span(x1, y1, x2, y2); span > MaxLineSpan {
		s.steps = MaxLineSpan
	} else {
		s.steps = geometry.Steps(span)
	}
	if s.steps > 0 {
		s.dx = (x2 - x1) / float64(s.steps)
		s.dy = (y2 - y1) / float64(s.steps)
	}
	return s
}

// Len returns the total number of cells the stepper visits.
func (s *LineStepper) Len() int {
	return s.steps + 1
}

// Next returns the next cell on the line, or false once the far endpoint has
// been returned.
func (s *LineStepper) Next() (core.Point, bool) {
	if s.i > s.steps {
		return core.Point{}, false
	}

	c := s.pos
	if s.i == s.steps && s.steps > 0 {
		c = s.to
	}
	s.pos.X += s.dx
	s.pos.Y += s.dy
	s.i++

	return c.Cell(), true
}

// MaxLineSpan bounds the dominant-axis length Rasterize accepts and the
// number of steps a LineStepper takes.
const MaxLineSpan = 1 << 20

// Rasterize returns the cells a line from (x1, y1) to (x2, y2) covers, in
// drawing order. It returns nil if either endpoint is not finite or the line
// spans more than MaxLineSpan cells.
func Rasterize(x1, y1, x2, y2 float64) []core.Point {
	if !(core.Coord{X: x1, Y: y1}).Finite() || !(core.Coord{X: x2, Y: y2}).Finite() {
		return nil
	}
	if geometry.Span(x1, y1, x2, y2) > MaxLineSpan {
		return nil
	}

	s := NewLineStepper(x1, y1, x2, y2)
	points := make([]core.Point, 0, s.Len())
	for p, ok := s.Next(); ok; p, ok = s.Next() {
		points = append(points, p)
	}
	return points
}

// DrawLine stamps ch on every cell of the line from (x1, y1) to (x2, y2).
//
// If any cell of the line falls outside the drawable area the call fails with
// ErrOutOfBounds and the grid is left unchanged.
func (g *Grid) DrawLine(x1, y1, x2, y2 float64, ch rune) error {
	if err := checkGlyph(ch); err != nil {
		return err
	}

	// Cells never fall outside the box spanned by the endpoint cells.
	for _, c := range []core.Coord{{X: x1, Y: y1}, {X: x2, Y: y2}} {
		if !c.Finite() {
			return fmt.Errorf("line (%v, %v)-(%v, %v): %w", x1, y1, x2, y2, ErrOutOfBounds)
		}
		if p := c.Cell(); !g.inBounds(p) {
			return fmt.Errorf("line (%v, %v)-(%v, %v): %w", x1, y1, x2, y2, g.boundsError(p))
		}
	}

	check := NewLineStepper(x1, y1, x2, y2)
	for p, ok := check.Next(); ok; p, ok = check.Next() {
		if !g.inBounds(p) {
			return fmt.Errorf("line (%v, %v)-(%v, %v): %w", x1, y1, x2, y2, g.boundsError(p))
		}
	}

	stamp := NewLineStepper(x1, y1, x2, y2)
	for p, ok := stamp.Next(); ok; p, ok = stamp.Next() {
		if err := g.set(p, ch); err != nil {
			return err
		}
	}
	return nil
}
