// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f64 implements float64 geometry for layout code: points, sizes,
rectangles, edge insets and affine transforms.

The coordinate space has the origin in the top left corner with the
axes extending right and down.

Every type implements vector.Representable, so the functions of package
vector apply to all of them. For example

	mid := vector.Interpolate(r0, r1, 0.5)

blends two rectangles component by component.
*/
package f64

import (
	"strconv"

	"tfui.org/vector"
)

// A Point is a two dimensional point.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String return a string representation of p.
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) +
		"," + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// AsVector returns [X, Y].
func (p Point) AsVector() vector.Vector {
	return vector.Vector{p.X, p.Y}
}

// FromVector returns the point [X, Y] of v.
func (Point) FromVector(v vector.Vector) Point {
	return Point{X: v.At(0), Y: v.At(1)}
}

func (Point) Dim() int { return 2 }

// A Rectangle is an origin and a size. Unlike image.Rectangle it is
// stored as a size rather than a maximum corner so that the size is
// preserved exactly through arithmetic.
type Rectangle struct {
	Origin Point
	Size   Size
}

// Rect is shorthand for Rectangle{Point{x, y}, Size{w, h}}.
func Rect(x, y, w, h float64) Rectangle {
	return Rectangle{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// String return a string representation of r.
func (r Rectangle) String() string {
	return r.Origin.String() + "+" + r.Size.String()
}

// Min returns the top left corner of r.
func (r Rectangle) Min() Point {
	return r.Origin
}

// Max returns the bottom right corner of r.
func (r Rectangle) Max() Point {
	return Point{X: r.Origin.X + r.Size.Width, Y: r.Origin.Y + r.Size.Height}
}

// Dx returns r's width.
func (r Rectangle) Dx() float64 {
	return r.Size.Width
}

// Dy returns r's height.
func (r Rectangle) Dy() float64 {
	return r.Size.Height
}

// Center returns the midpoint of r.
func (r Rectangle) Center() Point {
	return Point{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}

// TopLeft and the other anchors return the corners and edge midpoints
// of r, with y growing downwards.
func (r Rectangle) TopLeft() Point      { return r.Origin }
func (r Rectangle) TopCenter() Point    { return Point{X: r.Center().X, Y: r.Origin.Y} }
func (r Rectangle) TopRight() Point     { return Point{X: r.Max().X, Y: r.Origin.Y} }
func (r Rectangle) BottomLeft() Point   { return Point{X: r.Origin.X, Y: r.Max().Y} }
func (r Rectangle) BottomCenter() Point { return Point{X: r.Center().X, Y: r.Max().Y} }
func (r Rectangle) BottomRight() Point  { return r.Max() }

// Add offsets r with the vector p.
func (r Rectangle) Add(p Point) Rectangle {
	r.Origin = r.Origin.Add(p)
	return r
}

// Sub offsets r with the vector -p.
func (r Rectangle) Sub(p Point) Rectangle {
	r.Origin = r.Origin.Sub(p)
	return r
}

// Scaled returns r scaled by s around its center.
func (r Rectangle) Scaled(s float64) Rectangle {
	return Rect(
		r.Origin.X-r.Size.Width*(s-1)*0.5,
		r.Origin.Y-r.Size.Height*(s-1)*0.5,
		r.Size.Width*s,
		r.Size.Height*s,
	)
}

// ScaleBy scales the origin and size of r per axis.
func (r Rectangle) ScaleBy(s Size) Rectangle {
	return Rect(
		r.Origin.X*s.Width,
		r.Origin.Y*s.Height,
		r.Size.Width*s.Width,
		r.Size.Height*s.Height,
	)
}

// WidenBy grows the width of r by d, keeping its horizontal center.
// Rectangles whose width is zero or not finite are returned unchanged.
func (r Rectangle) WidenBy(d float64) Rectangle {
	if !vector.IsNormal(r.Size.Width) {
		return r
	}
	r.Origin.X -= d / 2
	r.Size.Width += d
	return r
}

// AspectFit returns the largest rectangle with r's aspect ratio that
// fits in the space s, centered in it.
func (r Rectangle) AspectFit(s Size) Rectangle {
	sz := r.Size.Fit(s)
	return Rectangle{
		Origin: Point{X: (s.Width - sz.Width) / 2, Y: (s.Height - sz.Height) / 2},
		Size:   sz,
	}
}

// Inset shrinks r by in on every edge.
func (r Rectangle) Inset(in Insets) Rectangle {
	return Rect(
		r.Origin.X+in.Left,
		r.Origin.Y+in.Top,
		r.Size.Width-in.Horizontal(),
		r.Size.Height-in.Vertical(),
	)
}

// Outset grows r by in on every edge.
func (r Rectangle) Outset(in Insets) Rectangle {
	return r.Inset(in.Mul(-1))
}

// Empty reports whether r represents the empty area.
func (r Rectangle) Empty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Canon returns the canonical version of r, where the size is not
// negative.
func (r Rectangle) Canon() Rectangle {
	if r.Size.Width < 0 {
		r.Origin.X += r.Size.Width
		r.Size.Width = -r.Size.Width
	}
	if r.Size.Height < 0 {
		r.Origin.Y += r.Size.Height
		r.Size.Height = -r.Size.Height
	}
	return r
}

// Intersect returns the intersection of r and s. Disjoint rectangles
// give an empty rectangle.
func (r Rectangle) Intersect(s Rectangle) Rectangle {
	rmin, rmax := r.Min(), r.Max()
	smin, smax := s.Min(), s.Max()
	if rmin.X < smin.X {
		rmin.X = smin.X
	}
	if rmin.Y < smin.Y {
		rmin.Y = smin.Y
	}
	if rmax.X > smax.X {
		rmax.X = smax.X
	}
	if rmax.Y > smax.Y {
		rmax.Y = smax.Y
	}
	if rmax.X < rmin.X || rmax.Y < rmin.Y {
		return Rectangle{}
	}
	return span(rmin, rmax)
}

// Union returns the smallest rectangle containing r and s.
func (r Rectangle) Union(s Rectangle) Rectangle {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	rmin, rmax := r.Min(), r.Max()
	smin, smax := s.Min(), s.Max()
	if rmin.X > smin.X {
		rmin.X = smin.X
	}
	if rmin.Y > smin.Y {
		rmin.Y = smin.Y
	}
	if rmax.X < smax.X {
		rmax.X = smax.X
	}
	if rmax.Y < smax.Y {
		rmax.Y = smax.Y
	}
	return span(rmin, rmax)
}

func span(lo, hi Point) Rectangle {
	return Rect(lo.X, lo.Y, hi.X-lo.X, hi.Y-lo.Y)
}

// AsVector returns [X, Y, Width, Height].
func (r Rectangle) AsVector() vector.Vector {
	return vector.Vector{r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height}
}

// FromVector returns the rectangle [x, y, width, height] of v.
func (Rectangle) FromVector(v vector.Vector) Rectangle {
	return Rect(v.At(0), v.At(1), v.At(2), v.At(3))
}

func (Rectangle) Dim() int { return 4 }
