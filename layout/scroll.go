// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"tfui.org/f64"
)

// Scroll is the geometry of a scroll view: its visible Bounds, the size
// of its Content, the content Inset around the content and the current
// content Offset.
type Scroll struct {
	Bounds  f64.Size
	Content f64.Size
	Inset   f64.Insets
	Offset  f64.Point
}

// ScreenPosition is where OffsetFor places a child on screen.
type ScreenPosition uint8

const (
	ScreenTop ScreenPosition = iota
	ScreenCenter
	ScreenBottom
)

// ScrollableDistance returns how far the content can scroll along each
// axis.
func (s Scroll) ScrollableDistance() f64.Size {
	return f64.Size{
		Width:  s.Content.Width - (s.Bounds.Width + s.Inset.Horizontal()),
		Height: s.Content.Height - (s.Bounds.Height + s.Inset.Vertical()),
	}
}

// VisibleContentSize returns the size available to content before it
// needs to scroll: the bounds minus the insets.
func (s Scroll) VisibleContentSize() f64.Size {
	return f64.Size{
		Width:  s.Bounds.Width - s.Inset.Horizontal(),
		Height: s.Bounds.Height - s.Inset.Vertical(),
	}
}

// Overscroll returns how far the content is pulled past its edges. X is
// negative past the left edge and positive past the right edge, Y is
// negative past the top edge and positive past the bottom edge.
func (s Scroll) Overscroll() f64.Point {
	return f64.Point{
		X: s.horizontalOverscroll(s.Offset.X),
		Y: s.verticalOverscroll(s.Offset.Y),
	}
}

func (s Scroll) verticalOverscroll(y float64) float64 {
	top := math.Min(0, s.Inset.Top+y)
	bottom := math.Max(0, s.Bounds.Height-s.Content.Height-s.Inset.Vertical()+y)
	return top + bottom
}

func (s Scroll) horizontalOverscroll(x float64) float64 {
	left := math.Min(0, s.Inset.Left+x)
	content := math.Max(s.Content.Width, s.Bounds.Width)
	right := math.Max(0, s.Bounds.Width-content-s.Inset.Horizontal()+x)
	return left + right
}

// ScrolledOffset returns the vertical distance scrolled from the resting
// position.
func (s Scroll) ScrolledOffset() float64 {
	return s.Offset.Y + s.Inset.Top
}

// IsAtTop reports whether the content rests at or above its top edge.
func (s Scroll) IsAtTop() bool {
	return math.RoundToEven(s.Offset.Y+s.Inset.Top) <= 0
}

// IsAtBottom reports whether the content cannot scroll further down.
func (s Scroll) IsAtBottom() bool {
	return s.DistanceFromBottom() == 0
}

// DistanceFromBottom returns the distance left to scroll to the bottom.
// It is 0 at or past the bottom.
func (s Scroll) DistanceFromBottom() float64 {
	off := s.Offset.Y - s.Inset.Vertical()
	return -math.Min(0, off+s.Bounds.Height-s.Content.Height)
}

// CanScrollVertically reports whether the content is taller than the
// bounds.
func (s Scroll) CanScrollVertically() bool {
	return s.Content.Height > s.Bounds.Height
}

// ScrollBy returns s with its offset moved by d.
func (s Scroll) ScrollBy(d f64.Point) Scroll {
	s.Offset = s.Offset.Add(d)
	return s
}

// OffsetFor returns the content offset that brings the child frame to
// pos on screen without scrolling past the content edges. It reports
// false, with the current offset, when the content fits and cannot
// scroll.
func (s Scroll) OffsetFor(child f64.Rectangle, pos ScreenPosition) (f64.Point, bool) {
	if s.Content.Height <= s.VisibleContentSize().Height {
		return s.Offset, false
	}
	var y float64
	switch pos {
	case ScreenTop:
		y = child.Min().Y - s.Inset.Top
	case ScreenCenter:
		y = child.Center().Y - s.Bounds.Height/2
	case ScreenBottom:
		y = child.Max().Y + s.Inset.Bottom - s.Bounds.Height
	default:
		panic("unreachable")
	}
	y -= s.verticalOverscroll(y)
	return f64.Point{X: s.Offset.X, Y: y}, true
}
