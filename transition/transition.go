// SPDX-License-Identifier: Unlicense OR MIT

/*
Package transition computes the appearance of views moving between
hidden and visible.

A hidden view is transparent, slightly enlarged, rotated and pushed
away from the screen center. Views further from the top left corner
start later, so a screen of views appears as a wave. Appearance
implements vector.Representable, so a frame of the transition is

	vector.Interpolate(hidden, transition.Visible, progress)
*/
package transition

import (
	"math/rand/v2"
	"time"

	"tfui.org/f64"
	"tfui.org/vector"
)

// Appearance is the opacity and transform of a view.
type Appearance struct {
	Alpha     float64
	Transform f64.Affine2D
}

// Visible is the appearance of a fully shown view.
var Visible = Appearance{Alpha: 1}

const (
	// Duration is the length of a visibility animation.
	Duration = 500 * time.Millisecond
	// Damping is the spring damping ratio of a visibility animation.
	Damping = 0.8
	// DefaultDelay is the delay of views on an empty screen.
	DefaultDelay = 300 * time.Millisecond

	hiddenScale = 1.1
)

var (
	jitter   = f64.Range{Min: -0.2, Max: 0.2}
	rotation = f64.Range{Min: 0.05, Max: 0.15}
	push     = f64.Range{Min: 40, Max: 80}
	lag      = f64.Range{Min: 0, Max: 0.1}
)

// Hidden returns the appearance of the view with the given frame on the
// given screen while it is hidden. Randomness is drawn from src; a nil
// src uses the global generator. An empty screen gives a transparent
// view without a transform.
func Hidden(src rand.Source, frame, screen f64.Rectangle) Appearance {
	if screen.Empty() {
		return Appearance{}
	}
	// Position of the view relative to the screen center, -1 to 1 on
	// each axis for views inside the screen.
	half := screen.Size.Point().Mul(0.5)
	offset := vector.Div(frame.Center().Sub(screen.Center()), half)
	offset = offset.Add(vector.Random[f64.Point](src, jitter.Min, jitter.Max))
	relWidth := vector.Interpolate(vector.Scalar(1), vector.Scalar(0), f64.Clamp(frame.Dx()/screen.Dx(), 0, 1))
	angle := float64(vector.Random[vector.Scalar](src, rotation.Min, rotation.Max)) * offset.X * float64(relWidth)
	dist := float64(vector.Random[vector.Scalar](src, push.Min, push.Max))
	tr := f64.Affine2D{}.
		Offset(offset.Mul(dist)).
		Rotate(f64.Point{}, angle).
		Scale(f64.Point{}, f64.Pt(hiddenScale, hiddenScale))
	return Appearance{Transform: tr}
}

// Delay returns the start delay of the animation of the view with the
// given frame. Views closer to the top left corner of the screen start
// sooner. An empty screen gives DefaultDelay.
func Delay(src rand.Source, frame, screen f64.Rectangle) time.Duration {
	if screen.Empty() {
		return DefaultDelay
	}
	pos := frame.Center().Sub(screen.Origin)
	preferred := vector.ManhattanDistance(pos) / (vector.ManhattanDistance(screen.Size) * 2)
	d := preferred + float64(vector.Random[vector.Scalar](src, lag.Min, lag.Max)) - 0.2
	if !(d > 0) {
		return 0
	}
	return time.Duration(d * float64(time.Second))
}

// At returns the appearance at progress t of a transition from start to
// end.
func At(start, end Appearance, t float64) Appearance {
	return vector.Interpolate(start, end, t)
}

// AsVector returns [Alpha, transform components...].
func (a Appearance) AsVector() vector.Vector {
	return append(vector.Vector{a.Alpha}, a.Transform.AsVector()...)
}

func (Appearance) FromVector(v vector.Vector) Appearance {
	var rest vector.Vector
	if len(v) > 1 {
		rest = v[1:]
	}
	return Appearance{
		Alpha:     v.At(0),
		Transform: f64.Affine2D{}.FromVector(rest),
	}
}

func (Appearance) Dim() int { return 1 + f64.Affine2D{}.Dim() }
