// Package core contains the fundamental types shared by the grid and its collaborators.
package core

import "math"

// Point is a cell position on the grid.
type Point struct {
	X, Y int
}

// Coord is a real-valued position. Drawing operations accept coordinates as
// reals so the line rasterizer can step fractionally; they are rounded to a
// cell only at the point of drawing.
type Coord struct {
	X, Y float64
}

// Cell rounds the coordinate to the nearest cell, halves away from zero.
func (c Coord) Cell() Point {
	return Point{
		X: int(math.Round(c.X)),
		Y: int(math.Round(c.Y)),
	}
}

// Finite reports whether both components are finite numbers.
func (c Coord) Finite() bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) &&
		!math.IsNaN(c.Y) && !math.IsInf(c.Y, 0)
}

// Canvas is the drawing surface external collaborators program against.
type Canvas interface {
	// Size returns the full width (terminator column included) and height.
	Size() (width, height int)

	// Fill overwrites every visible cell with ch.
	Fill(ch rune) error

	// DrawPoint stamps ch at the cell nearest to (x, y).
	DrawPoint(x, y float64, ch rune) error

	// DrawLine stamps ch along the segment from (x1, y1) to (x2, y2).
	DrawLine(x1, y1, x2, y2 float64, ch rune) error

	// Render returns the whole grid as a newline-terminated text block.
	Render() string
}
