// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "math"

// Filler is flexible space in scrolling content that grows until the
// content fills the visible height.
type Filler struct {
	// Min is the smallest height of the filler.
	Min float64
	// Max is the largest height of the filler. Zero or less means no
	// maximum.
	Max float64
	// Height is the height currently assigned to the filler, included
	// in the content height passed to FillHeights.
	Height float64
}

func (f Filler) bounded() bool { return f.Max > 0 }

// FillHeights returns new heights for fillers so that content of height
// contentHeight, which includes the current filler heights, fills the
// available height. The deficit is shared evenly; the share a bounded
// filler cannot take is spread over the unbounded ones. Heights are
// clamped to each filler's range and rounded down.
func FillHeights(contentHeight, available float64, fillers []Filler) []float64 {
	if len(fillers) == 0 {
		return nil
	}
	current := contentHeight
	unbounded := 0
	for _, f := range fillers {
		current -= f.Height
		if !f.bounded() {
			unbounded++
		}
	}
	preferred := (available - current) / float64(len(fillers))
	var excess float64
	for _, f := range fillers {
		if f.bounded() && preferred > f.Max {
			excess += preferred - f.Max
		}
	}
	var extra float64
	if unbounded > 0 {
		extra = excess / float64(unbounded)
	}
	heights := make([]float64, len(fillers))
	for i, f := range fillers {
		h := preferred + extra
		if f.bounded() {
			h = math.Min(f.Max, h)
		}
		heights[i] = math.Floor(math.Max(f.Min, h))
	}
	return heights
}
