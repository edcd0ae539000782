// SPDX-License-Identifier: Unlicense OR MIT

package vector

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Random returns a value of type T whose components are drawn
// independently and uniformly from [lo, hi]. The bounds may be given in
// either order. A nil src draws from the global generator.
func Random[T Representable[T]](src rand.Source, lo, hi float64) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	var zero T
	res := make(Vector, zero.Dim())
	if lo == hi {
		for i := range res {
			res[i] = lo
		}
		return zero.FromVector(res)
	}
	u := distuv.Uniform{Min: lo, Max: hi, Src: src}
	for i := range res {
		res[i] = u.Rand()
	}
	return zero.FromVector(res)
}
