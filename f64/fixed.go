// SPDX-License-Identifier: Unlicense OR MIT

package f64

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Fixed converts p to 26.6 fixed point, the coordinates used by text
// shaping, rounding to the nearest 1/64.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

// FromFixed converts a 26.6 fixed point coordinate to a Point.
func FromFixed(p fixed.Point26_6) Point {
	return Point{X: fromFixed(p.X), Y: fromFixed(p.Y)}
}

// Fixed converts r to a 26.6 fixed point rectangle.
func (r Rectangle) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: r.Min().Fixed(), Max: r.Max().Fixed()}
}

// RectFromFixed converts a 26.6 fixed point rectangle to a Rectangle.
func RectFromFixed(r fixed.Rectangle26_6) Rectangle {
	return span(FromFixed(r.Min), FromFixed(r.Max))
}

// toFixed saturates values outside the 26.6 range of about ±2^25.
func toFixed(v float64) fixed.Int26_6 {
	v = math.Round(v * 64)
	switch {
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	case math.IsNaN(v):
		return 0
	}
	return fixed.Int26_6(v)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
