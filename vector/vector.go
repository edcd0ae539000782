// SPDX-License-Identifier: Unlicense OR MIT

/*
Package vector implements arithmetic over geometric values that
decompose into an ordered list of float64 components.

A type opts in by implementing Representable. Every operation in this
package is then available for it: element-wise arithmetic, magnitude,
normalization, interpolation, random sampling and rounding.

Operations never fail. Division by zero, normalization of a zero value
and operands of mismatched length resolve to defined fallback values,
which suits layout and animation code evaluated once per frame.
*/
package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Vector is the ordered list of components of a value.
type Vector []float64

// Representable is implemented by values that convert to and from a
// Vector. The component order is fixed per type.
type Representable[T any] interface {
	// AsVector decomposes the value into its components.
	AsVector() Vector
	// FromVector builds a value from v. The receiver is ignored.
	// Missing trailing components are 0 and extra components are
	// dropped.
	FromVector(v Vector) T
	// Dim returns the number of components of the type.
	Dim() int
}

// Lerper is implemented by values that interpolate themselves without
// a round trip through Vector.
type Lerper[T any] interface {
	Lerp(end T, t float64) T
}

// minNormal is the smallest positive normal float64. It replaces zero
// divisors in Div.
const minNormal = 0x1p-1022

// At returns the i'th component of v, or 0 if i is out of range.
func (v Vector) At(i int) float64 {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}

// Scale returns a with every component multiplied by k.
func Scale[T Representable[T]](a T, k float64) T {
	va := a.AsVector()
	res := make(Vector, len(va))
	floats.ScaleTo(res, k, va)
	return a.FromVector(res)
}

// Mul returns the element-wise product of a and b. Components missing
// from b count as 0, so they mask the matching components of a.
func Mul[T Representable[T]](a, b T) T {
	return zip(a, b, func(x, y float64) float64 { return x * y })
}

// Add returns the element-wise sum of a and b.
func Add[T Representable[T]](a, b T) T {
	return zip(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns the element-wise difference a-b.
func Sub[T Representable[T]](a, b T) T {
	return zip(a, b, func(x, y float64) float64 { return x - y })
}

// Div returns the element-wise quotient a/b. A zero divisor is replaced
// by the smallest positive normal float64, and a quotient that then
// overflows saturates at ±math.MaxFloat64.
func Div[T Representable[T]](a, b T) T {
	return zip(a, b, div)
}

func div(x, y float64) float64 {
	if y != 0 {
		return x / y
	}
	q := x / minNormal
	if math.IsInf(q, 0) && !math.IsInf(x, 0) {
		q = math.Copysign(math.MaxFloat64, q)
	}
	return q
}

func zip[T Representable[T]](a, b T, op func(x, y float64) float64) T {
	va, vb := a.AsVector(), b.AsVector()
	res := make(Vector, len(va))
	for i, x := range va {
		res[i] = op(x, vb.At(i))
	}
	return a.FromVector(res)
}

// Magnitude returns the Euclidean length of a's components. It is
// never negative.
func Magnitude[T Representable[T]](a T) float64 {
	return magnitude(a.AsVector())
}

func magnitude(v Vector) float64 {
	if len(v) == 1 {
		return math.Abs(v[0])
	}
	return floats.Norm(v, 2)
}

// ManhattanDistance returns the sum of a's components. The components
// are summed as is, without taking absolute values.
func ManhattanDistance[T Representable[T]](a T) float64 {
	return floats.Sum(a.AsVector())
}

// Delta returns a-b.
func Delta[T Representable[T]](a, b T) T {
	return Sub(a, b)
}

// Distance returns the magnitude of a-b.
func Distance[T Representable[T]](a, b T) float64 {
	return Magnitude(Delta(a, b))
}

// Normalized returns a scaled to unit magnitude. Values whose magnitude
// is zero, subnormal or not finite are returned unchanged.
func Normalized[T Representable[T]](a T) T {
	m := Magnitude(a)
	if !IsNormal(m) {
		return a
	}
	return Scale(a, 1/m)
}

// IsNormal reports whether f is a normal float64: neither zero,
// subnormal, infinite nor NaN.
func IsNormal(f float64) bool {
	f = math.Abs(f)
	return f >= minNormal && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Interpolate returns the linear blend start*(1-t) + end*t. Values
// implementing Lerper interpolate themselves; their result must equal
// the component-wise blend.
func Interpolate[T Representable[T]](start, end T, t float64) T {
	if l, ok := any(start).(Lerper[T]); ok {
		return l.Lerp(end, t)
	}
	vs, ve := start.AsVector(), end.AsVector()
	res := make(Vector, len(vs))
	for i, s := range vs {
		res[i] = lerp(s, ve.At(i), t)
	}
	return start.FromVector(res)
}

func lerp(start, end, t float64) float64 {
	return (1-t)*start + t*end
}

// Interpolation returns a function sampling the blend from start to end
// at progress t.
func Interpolation[T Representable[T]](start, end T) func(t float64) T {
	return func(t float64) T {
		return Interpolate(start, end, t)
	}
}

// Rounded returns a with every component rounded to the given number of
// decimal places, halves away from zero.
func Rounded[T Representable[T]](a T, decimals int) T {
	va := a.AsVector()
	res := make(Vector, len(va))
	for i, x := range va {
		res[i] = scalar.Round(x, decimals)
	}
	return a.FromVector(res)
}
