// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the arithmetic behind container, scroll view
and filler layout: placing a child inside insetted space, measuring
overscroll and distributing spare height.

Every function is pure and works on the value types of package f64, so
the results can be blended between frames with package vector.
*/
package layout

import (
	"tfui.org/f64"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Direction is the alignment of a child relative to a containing
// space.
type Direction uint8

const (
	Horizontal Axis = iota
	Vertical
)

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

// Position returns the offset that places a child of size child inside
// space according to d. A child larger than space gets a negative
// offset along that axis.
func (d Direction) Position(child, space f64.Size) f64.Point {
	var p f64.Point
	switch d {
	case N, S, Center:
		p.X = (space.Width - child.Width) / 2
	case NE, SE, E:
		p.X = space.Width - child.Width
	}
	switch d {
	case W, Center, E:
		p.Y = (space.Height - child.Height) / 2
	case SW, S, SE:
		p.Y = space.Height - child.Height
	}
	return p
}

// Frame returns the rectangle of a child of size child placed in
// bounds according to d.
func (d Direction) Frame(child f64.Size, bounds f64.Rectangle) f64.Rectangle {
	return f64.Rectangle{
		Origin: bounds.Origin.Add(d.Position(child, bounds.Size)),
		Size:   child,
	}
}

// Convert a point in (x, y) coordinates to (main, cross) coordinates,
// or vice versa. Specifically, Convert((x, y)) returns (x, y) unchanged
// for the horizontal axis, or (y, x) for the vertical axis.
func (a Axis) Convert(pt f64.Point) f64.Point {
	if a == Horizontal {
		return pt
	}
	return f64.Point{X: pt.Y, Y: pt.X}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case Center:
		return "Center"
	default:
		panic("unreachable")
	}
}
