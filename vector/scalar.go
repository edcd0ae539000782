// SPDX-License-Identifier: Unlicense OR MIT

package vector

// Scalar is a single float64 component.
type Scalar float64

func (s Scalar) AsVector() Vector {
	return Vector{float64(s)}
}

// FromVector returns the first component of v.
func (Scalar) FromVector(v Vector) Scalar {
	return Scalar(v.At(0))
}

func (Scalar) Dim() int { return 1 }

// Lerp interpolates s towards end directly.
func (s Scalar) Lerp(end Scalar, t float64) Scalar {
	return Scalar(lerp(float64(s), float64(end), t))
}
