// SPDX-License-Identifier: Unlicense OR MIT

package vector_test

import (
	"fmt"
	"math/rand/v2"

	"tfui.org/f64"
	"tfui.org/vector"
)

func ExampleInterpolate() {
	from := f64.Rect(0, 0, 100, 100)
	to := f64.Rect(50, 50, 200, 100)
	for _, t := range []float64{0, 0.5, 1} {
		fmt.Println(vector.Interpolate(from, to, t))
	}

	// Output:
	// (0,0)+100x100
	// (25,25)+150x100
	// (50,50)+200x100
}

func ExampleScale() {
	fmt.Println(vector.Scale(f64.Rect(0, 0, 10, 20), 2))

	// Output:
	// (0,0)+20x40
}

func ExampleRounded() {
	fmt.Println(vector.Rounded(f64.Pt(1.2345, -1.236), 2))

	// Output:
	// (1.23,-1.24)
}

func ExampleRandom() {
	// A seeded source gives reproducible values.
	p := vector.Random[f64.Point](rand.NewPCG(1, 2), 0, 10)
	q := vector.Random[f64.Point](rand.NewPCG(1, 2), 0, 10)
	fmt.Println(p == q)

	// Output:
	// true
}
