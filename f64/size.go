// SPDX-License-Identifier: Unlicense OR MIT

package f64

import (
	"math"
	"strconv"

	"tfui.org/vector"
)

// Size is a width and a height.
type Size struct {
	Width, Height float64
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// SquareSize returns a Size with both dimensions set to v.
func SquareSize(v float64) Size {
	return Size{Width: v, Height: v}
}

func (s Size) String() string {
	return strconv.FormatFloat(s.Width, 'f', -1, 64) +
		"x" + strconv.FormatFloat(s.Height, 'f', -1, 64)
}

// AspectRatio returns Width / Height.
func (s Size) AspectRatio() float64 {
	return s.Width / s.Height
}

// Point converts s to the point (Width, Height).
func (s Size) Point() Point {
	return Point{X: s.Width, Y: s.Height}
}

// Scale returns s with both dimensions multiplied by k.
func (s Size) Scale(k float64) Size {
	return Size{Width: s.Width * k, Height: s.Height * k}
}

// Grow returns s with v added to both dimensions. A negative v shrinks.
func (s Size) Grow(v float64) Size {
	return Size{Width: s.Width + v, Height: s.Height + v}
}

// Fit returns the largest size with the aspect ratio of s that fits in
// bounds.
func (s Size) Fit(bounds Size) Size {
	ratio := math.Min(bounds.Width/s.Width, bounds.Height/s.Height)
	return s.Scale(ratio)
}

// AsVector returns [Width, Height].
func (s Size) AsVector() vector.Vector {
	return vector.Vector{s.Width, s.Height}
}

// FromVector returns the size [Width, Height] of v.
func (Size) FromVector(v vector.Vector) Size {
	return Size{Width: v.At(0), Height: v.At(1)}
}

func (Size) Dim() int { return 2 }
