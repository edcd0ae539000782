// SPDX-License-Identifier: Unlicense OR MIT

package f64

import (
	"math"
	"strconv"

	"tfui.org/vector"
)

// Affine2D represents an affine 2D transformation. The zero value of
// Affine2D represents the identity transform.
type Affine2D struct {
	// The matrix
	//
	//	[sx, hx, ox]
	//	[hy, sy, oy]
	//	[ 0,  0,  1]
	//
	// is stored with the identity subtracted, a = sx-1 and e = sy-1, so
	// that the zero value is the identity.
	a, b, c float64
	d, e, f float64
}

// NewAffine2D creates a new Affine2D transform from the matrix elements
// in row major order. The rows are: [sx, hx, ox], [hy, sy, oy], [0, 0, 1].
func NewAffine2D(sx, hx, ox, hy, sy, oy float64) Affine2D {
	return Affine2D{
		a: sx - 1, b: hx, c: ox,
		d: hy, e: sy - 1, f: oy,
	}
}

// Offset the transformation.
func (a Affine2D) Offset(offset Point) Affine2D {
	return Affine2D{
		a.a, a.b, a.c + offset.X,
		a.d, a.e, a.f + offset.Y,
	}
}

// Scale the transformation around the given origin.
func (a Affine2D) Scale(origin, factor Point) Affine2D {
	if origin == (Point{}) {
		return a.scale(factor)
	}
	a = a.Offset(origin.Mul(-1))
	a = a.scale(factor)
	return a.Offset(origin)
}

// Rotate the transformation by the given angle (in radians) counter
// clockwise around the given origin.
func (a Affine2D) Rotate(origin Point, radians float64) Affine2D {
	if origin == (Point{}) {
		return a.rotate(radians)
	}
	a = a.Offset(origin.Mul(-1))
	a = a.rotate(radians)
	return a.Offset(origin)
}

// RotateDegrees is like Rotate with the angle in degrees.
func (a Affine2D) RotateDegrees(origin Point, degrees float64) Affine2D {
	return a.Rotate(origin, degrees*math.Pi/180)
}

// Shear the transformation by the given angle (in radians) around the
// given origin.
func (a Affine2D) Shear(origin Point, radiansX, radiansY float64) Affine2D {
	if origin == (Point{}) {
		return a.shear(radiansX, radiansY)
	}
	a = a.Offset(origin.Mul(-1))
	a = a.shear(radiansX, radiansY)
	return a.Offset(origin)
}

// Mul returns A*B.
func (A Affine2D) Mul(B Affine2D) (r Affine2D) {
	A.a += 1
	A.e += 1
	B.a += 1
	B.e += 1
	r.a = A.a*B.a + A.b*B.d - 1
	r.b = A.a*B.b + A.b*B.e
	r.c = A.a*B.c + A.b*B.f + A.c
	r.d = A.d*B.a + A.e*B.d
	r.e = A.d*B.b + A.e*B.e - 1
	r.f = A.d*B.c + A.e*B.f + A.f
	return r
}

// Invert the transformation. Note that if the matrix is close to
// singular numerical errors may become large or infinity.
func (a Affine2D) Invert() Affine2D {
	if a.a == 0 && a.b == 0 && a.d == 0 && a.e == 0 {
		return Affine2D{a: 0, b: 0, c: -a.c, d: 0, e: 0, f: -a.f}
	}
	a.a += 1
	a.e += 1
	det := a.a*a.e - a.b*a.d
	a.a, a.e = a.e/det, a.a/det
	a.b, a.d = -a.b/det, -a.d/det
	temp := a.c
	a.c = -a.a*a.c - a.b*a.f
	a.f = -a.d*temp - a.e*a.f
	a.a -= 1
	a.e -= 1
	return a
}

// Transform p by returning a*p.
func (a Affine2D) Transform(p Point) Point {
	return Point{
		X: p.X*(a.a+1) + p.Y*a.b + a.c,
		Y: p.X*a.d + p.Y*(a.e+1) + a.f,
	}
}

// Elems returns the matrix elements of the transform in row-major order.
// The rows are: [sx, hx, ox], [hy, sy, oy], [0, 0, 1].
func (a Affine2D) Elems() (sx, hx, ox, hy, sy, oy float64) {
	return a.a + 1, a.b, a.c, a.d, a.e + 1, a.f
}

// Rotation returns the angle in radians of the rotation component of a.
func (a Affine2D) Rotation() float64 {
	return math.Atan2(a.d, a.a+1)
}

func (a Affine2D) String() string {
	sx, hx, ox, hy, sy, oy := a.Elems()
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }
	return "[[" + f(sx) + " " + f(hx) + " " + f(ox) + "] [" +
		f(hy) + " " + f(sy) + " " + f(oy) + "]]"
}

// AsVector returns the six matrix elements relative to the identity:
// [sx-1, hx, ox, hy, sy-1, oy]. Interpolating two transforms blends
// their matrices, and the magnitude of a transform is its distance
// from the identity.
func (a Affine2D) AsVector() vector.Vector {
	return vector.Vector{a.a, a.b, a.c, a.d, a.e, a.f}
}

// FromVector is the inverse of AsVector; missing components are those
// of the identity.
func (Affine2D) FromVector(v vector.Vector) Affine2D {
	return Affine2D{
		a: v.At(0), b: v.At(1), c: v.At(2),
		d: v.At(3), e: v.At(4), f: v.At(5),
	}
}

// Dim returns 6.
func (Affine2D) Dim() int { return 6 }

func (a Affine2D) scale(factor Point) Affine2D {
	return Affine2D{
		(a.a+1)*factor.X - 1, a.b * factor.X, a.c * factor.X,
		a.d * factor.Y, (a.e+1)*factor.Y - 1, a.f * factor.Y,
	}
}

func (a Affine2D) rotate(radians float64) Affine2D {
	s, c := math.Sincos(radians)
	return Affine2D{
		(a.a+1)*c - a.d*s - 1, a.b*c - (a.e+1)*s, a.c*c - a.f*s,
		(a.a+1)*s + a.d*c, a.b*s + (a.e+1)*c - 1, a.c*s + a.f*c,
	}
}

func (a Affine2D) shear(radiansX, radiansY float64) Affine2D {
	tx := math.Tan(radiansX)
	ty := math.Tan(radiansY)
	return Affine2D{
		(a.a + 1) + a.d*tx - 1, a.b + (a.e+1)*tx, a.c + a.f*tx,
		(a.a+1)*ty + a.d, a.b*ty + (a.e + 1) - 1, a.c*ty + a.f,
	}
}
