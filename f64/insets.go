// SPDX-License-Identifier: Unlicense OR MIT

package f64

import (
	"strings"

	"tfui.org/vector"
)

// Insets is the space inside each edge of a rectangle.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Edges is a bitmask of rectangle edges.
type Edges uint8

const (
	EdgeLeft Edges = 1 << iota
	EdgeTop
	EdgeRight
	EdgeBottom

	EdgeNone Edges = 0
	EdgeAll        = EdgeLeft | EdgeTop | EdgeRight | EdgeBottom
)

// UniformInsets returns Insets with v on every edge.
func UniformInsets(v float64) Insets {
	return Insets{Top: v, Left: v, Bottom: v, Right: v}
}

// SymmetricInsets returns Insets with h on the left and right edges and
// v on the top and bottom edges.
func SymmetricInsets(h, v float64) Insets {
	return Insets{Top: v, Left: h, Bottom: v, Right: h}
}

// Add returns the edge-wise sum of in and in2.
func (in Insets) Add(in2 Insets) Insets {
	return Insets{
		Top:    in.Top + in2.Top,
		Left:   in.Left + in2.Left,
		Bottom: in.Bottom + in2.Bottom,
		Right:  in.Right + in2.Right,
	}
}

// Sub returns the edge-wise difference in-in2.
func (in Insets) Sub(in2 Insets) Insets {
	return Insets{
		Top:    in.Top - in2.Top,
		Left:   in.Left - in2.Left,
		Bottom: in.Bottom - in2.Bottom,
		Right:  in.Right - in2.Right,
	}
}

// Mul returns in with every edge multiplied by s.
func (in Insets) Mul(s float64) Insets {
	return vector.Scale(in, s)
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }

// OnlyVertical returns in with the left and right edges cleared.
func (in Insets) OnlyVertical() Insets {
	return Insets{Top: in.Top, Bottom: in.Bottom}
}

// OnlyHorizontal returns in with the top and bottom edges cleared.
func (in Insets) OnlyHorizontal() Insets {
	return Insets{Left: in.Left, Right: in.Right}
}

// Filter returns in with the edges not in e cleared.
func (in Insets) Filter(e Edges) Insets {
	var out Insets
	if e.Has(EdgeTop) {
		out.Top = in.Top
	}
	if e.Has(EdgeLeft) {
		out.Left = in.Left
	}
	if e.Has(EdgeBottom) {
		out.Bottom = in.Bottom
	}
	if e.Has(EdgeRight) {
		out.Right = in.Right
	}
	return out
}

// AsVector returns [Top, Left, Bottom, Right].
func (in Insets) AsVector() vector.Vector {
	return vector.Vector{in.Top, in.Left, in.Bottom, in.Right}
}

// FromVector returns the insets [Top, Left, Bottom, Right] of v.
func (Insets) FromVector(v vector.Vector) Insets {
	return Insets{Top: v.At(0), Left: v.At(1), Bottom: v.At(2), Right: v.At(3)}
}

func (Insets) Dim() int { return 4 }

// Has reports whether all edges of e2 are in e.
func (e Edges) Has(e2 Edges) bool {
	return e&e2 == e2
}

func (e Edges) String() string {
	switch e {
	case EdgeNone:
		return "None"
	case EdgeAll:
		return "All"
	}
	var names []string
	for _, n := range []struct {
		e    Edges
		name string
	}{
		{EdgeLeft, "Left"},
		{EdgeTop, "Top"},
		{EdgeRight, "Right"},
		{EdgeBottom, "Bottom"},
	} {
		if e.Has(n.e) {
			names = append(names, n.name)
		}
	}
	if e&^EdgeAll != 0 {
		panic("unreachable")
	}
	return strings.Join(names, "|")
}
