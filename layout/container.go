// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"tfui.org/f64"
)

// Alignment is how a Container places its child in the space left
// after insets.
type Alignment uint8

const (
	// Stretch pins the child to every inset edge.
	Stretch Alignment = iota
	// Left pins the child to the left, top and bottom edges. Its width
	// is at most the available width.
	Left
	// Right pins the child to the right, top and bottom edges.
	Right
	// Top pins the child to the top, left and right edges. Its height
	// is at most the available height.
	Top
	// Bottom pins the child to the bottom, left and right edges.
	Bottom
	// CenterHorizontally pins the child to the top and bottom edges and
	// centers it horizontally in the container.
	CenterHorizontally
	// CenterVertically pins the child to the left and right edges and
	// centers it vertically in the container.
	CenterVertically
)

// Container describes a single child placed inside insets. The insets
// that apply are the sum of the fixed Insets, the Overscroll insets of a
// stretchy edge and the SafeArea insets of the edges in SafeAreaEdges.
type Container struct {
	Insets        f64.Insets
	Overscroll    f64.Insets
	SafeArea      f64.Insets
	SafeAreaEdges f64.Edges
	Alignment     Alignment
}

// AccumulatedInsets returns the total insets applied to the child.
func (c Container) AccumulatedInsets() f64.Insets {
	return c.Insets.Add(c.Overscroll).Add(c.SafeArea.Filter(c.SafeAreaEdges))
}

// Frame returns the frame of a child whose preferred size is child,
// inside a container occupying bounds. Space made negative by the insets
// is clamped to zero.
func (c Container) Frame(bounds f64.Rectangle, child f64.Size) f64.Rectangle {
	in := c.AccumulatedInsets()
	avail := bounds.Inset(in)
	avail.Size.Width = math.Max(avail.Size.Width, 0)
	avail.Size.Height = math.Max(avail.Size.Height, 0)
	switch c.Alignment {
	case Stretch:
		return avail
	case Left, Right:
		w := math.Min(child.Width, avail.Size.Width)
		x := avail.Origin.X
		if c.Alignment == Right {
			x = avail.Max().X - w
		}
		return f64.Rect(x, avail.Origin.Y, w, avail.Size.Height)
	case Top, Bottom:
		h := math.Min(child.Height, avail.Size.Height)
		y := avail.Origin.Y
		if c.Alignment == Bottom {
			y = avail.Max().Y - h
		}
		return f64.Rect(avail.Origin.X, y, avail.Size.Width, h)
	case CenterHorizontally:
		x := bounds.Center().X - child.Width/2
		return f64.Rect(x, avail.Origin.Y, child.Width, avail.Size.Height)
	case CenterVertically:
		y := bounds.Center().Y - child.Height/2
		return f64.Rect(avail.Origin.X, y, avail.Size.Width, child.Height)
	default:
		panic("unreachable")
	}
}

// OverscrollInsets returns the insets that let a child overflow the
// edges in e while a scroll view is pulled past them. Overscroll is
// negative past the top and left edges and positive past the bottom
// and right edges, as reported by Scroll.Overscroll.
func OverscrollInsets(overscroll f64.Point, e f64.Edges) f64.Insets {
	in := f64.Insets{
		Top:    math.Min(overscroll.Y, 0),
		Left:   math.Min(overscroll.X, 0),
		Bottom: math.Min(-overscroll.Y, 0),
		Right:  math.Min(-overscroll.X, 0),
	}
	return in.Filter(e)
}

func (a Alignment) String() string {
	switch a {
	case Stretch:
		return "Stretch"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case CenterHorizontally:
		return "CenterHorizontally"
	case CenterVertically:
		return "CenterVertically"
	default:
		panic("unreachable")
	}
}
