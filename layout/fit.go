// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"tfui.org/f64"
)

// Fit scales a child to fit a space.
type Fit uint8

const (
	// Unscaled does not alter the scale of a child.
	Unscaled Fit = iota
	// Contain scales the child as large as possible without cropping
	// and it preserves aspect-ratio.
	Contain
	// Cover scales the child to cover the space and preserves
	// aspect-ratio.
	Cover
	// ScaleDown scales the child smaller without cropping, when it
	// exceeds the space. It preserves aspect-ratio.
	ScaleDown
	// Fill stretches the child to the space and does not preserve
	// aspect-ratio.
	Fill
)

// Scale returns the per axis scale that fits child to space. Children
// with an empty dimension are not scaled.
func (fit Fit) Scale(child, space f64.Size) f64.Point {
	if fit == Unscaled || child.Width == 0 || child.Height == 0 {
		return f64.Point{X: 1, Y: 1}
	}
	scale := f64.Point{
		X: space.Width / child.Width,
		Y: space.Height / child.Height,
	}
	switch fit {
	case Contain:
		if scale.Y < scale.X {
			scale.X = scale.Y
		} else {
			scale.Y = scale.X
		}
	case Cover:
		if scale.Y > scale.X {
			scale.X = scale.Y
		} else {
			scale.Y = scale.X
		}
	case ScaleDown:
		if scale.Y < scale.X {
			scale.X = scale.Y
		} else {
			scale.Y = scale.X
		}
		// The child would need to be scaled up, no change needed.
		if scale.X >= 1 {
			return f64.Point{X: 1, Y: 1}
		}
	case Fill:
	}
	return scale
}

// Frame returns the scaled child placed in bounds at pos. The frame may
// extend past bounds for Unscaled and Cover.
func (fit Fit) Frame(child f64.Size, bounds f64.Rectangle, pos Direction) f64.Rectangle {
	s := fit.Scale(child, bounds.Size)
	sz := f64.Size{Width: child.Width * s.X, Height: child.Height * s.Y}
	return pos.Frame(sz, bounds)
}

// Transform returns the affine transform that maps a child laid out at
// the origin onto its fitted frame in bounds.
func (fit Fit) Transform(child f64.Size, bounds f64.Rectangle, pos Direction) f64.Affine2D {
	s := fit.Scale(child, bounds.Size)
	r := fit.Frame(child, bounds, pos)
	return f64.Affine2D{}.Scale(f64.Point{}, s).Offset(r.Origin)
}
