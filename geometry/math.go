// Package geometry holds the numeric helpers behind line rasterization.
package geometry

import "math"

// Span returns the length of the segment from (x1,y1) to (x2,y2) along its
// dominant axis, max(|dx|, |dy|).
func Span(x1, y1, x2, y2 float64) float64 {
	return math.Max(math.Abs(x2-x1), math.Abs(y2-y1))
}

// Steps returns the number of unit increments needed to cover span. A
// fractional span is rounded up so the far endpoint is always reached.
func Steps(span float64) int {
	if span <= 0 || math.IsNaN(span) {
		return 0
	}
	return int(math.Ceil(span))
}
