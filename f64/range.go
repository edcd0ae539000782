// SPDX-License-Identifier: Unlicense OR MIT

package f64

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Range is the closed interval [Min, Max].
type Range struct {
	Min, Max float64
}

// Center returns the midpoint of r.
func (r Range) Center() float64 {
	return (r.Min + r.Max) / 2
}

// Len returns Max - Min.
func (r Range) Len() float64 {
	return r.Max - r.Min
}

// Sample returns the value at position pos of r, where 0 is Min and 1
// is Max.
func (r Range) Sample(pos float64) float64 {
	return r.Min + pos*r.Len()
}

// Clamp limits v to r.
func (r Range) Clamp(v float64) float64 {
	return Clamp(v, r.Min, r.Max)
}

// Percentage returns the position of v in r, the inverse of Sample.
// An empty range gives 0.
func (r Range) Percentage(v float64) float64 {
	l := r.Len()
	if l == 0 {
		return 0
	}
	return (v - r.Min) / l
}

// Map converts v from a position in r to the same relative position in
// to. For example 0.5 in [0, 1] maps to 1 in [0, 2].
func (r Range) Map(v float64, to Range) float64 {
	return to.Sample(r.Percentage(v))
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundToMultiple rounds v to a nearby multiple of step. The remainder
// is dropped unless it exceeds half a step, in which case v rounds up.
// A zero step returns v.
func RoundToMultiple[T constraints.Float](v, step T) T {
	if step == 0 {
		return v
	}
	d := T(math.Mod(float64(v), float64(step)))
	if d > step/2 {
		return v + (step - d)
	}
	return v - d
}
