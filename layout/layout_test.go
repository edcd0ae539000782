// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"reflect"
	"testing"

	"tfui.org/f64"
)

func TestDirectionPosition(t *testing.T) {
	child, space := f64.Sz(10, 10), f64.Sz(100, 50)
	for _, tc := range []struct {
		d    Direction
		want f64.Point
	}{
		{NW, f64.Pt(0, 0)},
		{N, f64.Pt(45, 0)},
		{NE, f64.Pt(90, 0)},
		{E, f64.Pt(90, 20)},
		{SE, f64.Pt(90, 40)},
		{S, f64.Pt(45, 40)},
		{SW, f64.Pt(0, 40)},
		{W, f64.Pt(0, 20)},
		{Center, f64.Pt(45, 20)},
	} {
		if got := tc.d.Position(child, space); got != tc.want {
			t.Errorf("%v: have %v, want %v", tc.d, got, tc.want)
		}
	}
	got := SE.Frame(child, f64.Rect(5, 5, 100, 50))
	if want := f64.Rect(95, 45, 10, 10); got != want {
		t.Errorf("Frame: have %v, want %v", got, want)
	}
}

func TestAxisConvert(t *testing.T) {
	p := f64.Pt(1, 2)
	if got := Horizontal.Convert(p); got != p {
		t.Errorf("Horizontal: have %v, want %v", got, p)
	}
	if got, want := Vertical.Convert(p), f64.Pt(2, 1); got != want {
		t.Errorf("Vertical: have %v, want %v", got, want)
	}
}

func TestContainerFrame(t *testing.T) {
	bounds := f64.Rect(0, 0, 100, 200)
	for _, tc := range []struct {
		align Alignment
		child f64.Size
		want  f64.Rectangle
	}{
		{Stretch, f64.Sz(1, 1), f64.Rect(10, 10, 80, 180)},
		{Left, f64.Sz(50, 30), f64.Rect(10, 10, 50, 180)},
		{Left, f64.Sz(500, 30), f64.Rect(10, 10, 80, 180)},
		{Right, f64.Sz(50, 30), f64.Rect(40, 10, 50, 180)},
		{Top, f64.Sz(30, 50), f64.Rect(10, 10, 80, 50)},
		{Bottom, f64.Sz(30, 50), f64.Rect(10, 140, 80, 50)},
		{CenterHorizontally, f64.Sz(40, 1), f64.Rect(30, 10, 40, 180)},
		{CenterVertically, f64.Sz(1, 60), f64.Rect(10, 70, 80, 60)},
	} {
		c := Container{Insets: f64.UniformInsets(10), Alignment: tc.align}
		if got := c.Frame(bounds, tc.child); got != tc.want {
			t.Errorf("%v: have %v, want %v", tc.align, got, tc.want)
		}
	}
}

func TestContainerNegativeSpace(t *testing.T) {
	c := Container{Insets: f64.UniformInsets(60)}
	got := c.Frame(f64.Rect(0, 0, 100, 100), f64.Size{})
	if got.Size != (f64.Size{}) {
		t.Errorf("have %v, want empty size", got)
	}
}

func TestAccumulatedInsets(t *testing.T) {
	c := Container{
		Insets:        f64.Insets{Top: 1, Left: 2},
		Overscroll:    f64.Insets{Top: -5},
		SafeArea:      f64.Insets{Top: 20, Bottom: 30},
		SafeAreaEdges: f64.EdgeTop,
	}
	if got, want := c.AccumulatedInsets(), (f64.Insets{Top: 16, Left: 2}); got != want {
		t.Errorf("have %v, want %v", got, want)
	}
}

func TestOverscrollInsets(t *testing.T) {
	if got, want := OverscrollInsets(f64.Pt(0, -30), f64.EdgeTop), (f64.Insets{Top: -30}); got != want {
		t.Errorf("pulled down: have %v, want %v", got, want)
	}
	if got, want := OverscrollInsets(f64.Pt(0, 30), f64.EdgeAll), (f64.Insets{Bottom: -30}); got != want {
		t.Errorf("pulled up: have %v, want %v", got, want)
	}
	if got := OverscrollInsets(f64.Pt(-10, -30), f64.EdgeBottom); got != (f64.Insets{}) {
		t.Errorf("filtered: have %v, want zero", got)
	}
}

func TestScrollOverscroll(t *testing.T) {
	s := Scroll{Bounds: f64.Sz(100, 200), Content: f64.Sz(100, 500)}
	for _, tc := range []struct {
		off  f64.Point
		want f64.Point
	}{
		{f64.Pt(0, 0), f64.Pt(0, 0)},
		{f64.Pt(0, -50), f64.Pt(0, -50)},
		{f64.Pt(0, 100), f64.Pt(0, 0)},
		{f64.Pt(0, 350), f64.Pt(0, 50)},
		{f64.Pt(-10, 0), f64.Pt(-10, 0)},
		{f64.Pt(10, 0), f64.Pt(10, 0)},
	} {
		s.Offset = tc.off
		if got := s.Overscroll(); got != tc.want {
			t.Errorf("offset %v: have %v, want %v", tc.off, got, tc.want)
		}
	}
}

func TestScrollMetrics(t *testing.T) {
	s := Scroll{
		Bounds:  f64.Sz(100, 200),
		Content: f64.Sz(100, 500),
		Inset:   f64.Insets{Top: 10, Bottom: 20},
	}
	if got, want := s.ScrollableDistance(), f64.Sz(0, 270); got != want {
		t.Errorf("ScrollableDistance: have %v, want %v", got, want)
	}
	if got, want := s.VisibleContentSize(), f64.Sz(100, 170); got != want {
		t.Errorf("VisibleContentSize: have %v, want %v", got, want)
	}
	if !s.CanScrollVertically() {
		t.Error("CanScrollVertically: have false")
	}
	s.Offset = f64.Pt(0, -10)
	if !s.IsAtTop() || s.ScrolledOffset() != 0 {
		t.Errorf("at rest: IsAtTop %v, ScrolledOffset %v", s.IsAtTop(), s.ScrolledOffset())
	}
	s = s.ScrollBy(f64.Pt(0, 110))
	if s.IsAtTop() {
		t.Error("IsAtTop after scrolling: have true")
	}
	if got := s.DistanceFromBottom(); got != 230 {
		t.Errorf("DistanceFromBottom: have %v, want 230", got)
	}
	s.Offset.Y = 330
	if !s.IsAtBottom() {
		t.Error("IsAtBottom: have false")
	}
}

func TestScrollOffsetFor(t *testing.T) {
	s := Scroll{Bounds: f64.Sz(100, 200), Content: f64.Sz(100, 500)}
	child := f64.Rect(0, 400, 100, 50)
	for _, tc := range []struct {
		pos  ScreenPosition
		want float64
	}{
		{ScreenTop, 300},
		{ScreenCenter, 300},
		{ScreenBottom, 250},
	} {
		got, ok := s.OffsetFor(child, tc.pos)
		if !ok || got.Y != tc.want {
			t.Errorf("%d: have %v, %v, want %v", tc.pos, got, ok, tc.want)
		}
	}
	s.Content.Height = 150
	if _, ok := s.OffsetFor(child, ScreenTop); ok {
		t.Error("content that fits scrolled")
	}
}

func TestFillHeights(t *testing.T) {
	for _, tc := range []struct {
		name               string
		content, available float64
		fillers            []Filler
		want               []float64
	}{
		{"even", 300, 500, []Filler{{}, {}}, []float64{100, 100}},
		{"bounded", 300, 500, []Filler{{Max: 40}, {}}, []float64{40, 160}},
		{"all bounded", 300, 500, []Filler{{Max: 40}, {Max: 50}}, []float64{40, 50}},
		{"minimum", 300, 500, []Filler{{Min: 150}, {}}, []float64{150, 100}},
		{"current heights", 400, 500, []Filler{{Height: 100}, {Height: 100}}, []float64{150, 150}},
		{"rounded down", 300, 301, []Filler{{}, {}}, []float64{0, 0}},
		{"overflow", 600, 500, []Filler{{Min: 10}}, []float64{10}},
		{"none", 300, 500, nil, nil},
	} {
		got := FillHeights(tc.content, tc.available, tc.fillers)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: have %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFit(t *testing.T) {
	type test struct {
		Dims  f64.Size
		Scale f64.Point
	}

	fittests := [...][]test{
		Unscaled: {
			{Dims: f64.Sz(0, 0), Scale: f64.Pt(1, 1)},
			{Dims: f64.Sz(50, 200), Scale: f64.Pt(1, 1)},
		},
		Contain: {
			{Dims: f64.Sz(50, 25), Scale: f64.Pt(2, 2)},
			{Dims: f64.Sz(50, 200), Scale: f64.Pt(0.5, 0.5)},
		},
		Cover: {
			{Dims: f64.Sz(50, 25), Scale: f64.Pt(4, 4)},
			{Dims: f64.Sz(50, 200), Scale: f64.Pt(2, 2)},
		},
		ScaleDown: {
			{Dims: f64.Sz(50, 25), Scale: f64.Pt(1, 1)},
			{Dims: f64.Sz(50, 200), Scale: f64.Pt(0.5, 0.5)},
		},
		Fill: {
			{Dims: f64.Sz(50, 25), Scale: f64.Pt(2, 4)},
			{Dims: f64.Sz(50, 200), Scale: f64.Pt(2, 0.5)},
		},
	}

	space := f64.Sz(100, 100)
	for fit, tests := range fittests {
		for i, test := range tests {
			if got := Fit(fit).Scale(test.Dims, space); got != test.Scale {
				t.Errorf("%d/%d: have scale %v, want %v", fit, i, got, test.Scale)
			}
		}
	}
}

func TestFitFrame(t *testing.T) {
	bounds := f64.Rect(0, 0, 100, 100)
	child := f64.Sz(50, 25)
	if got, want := Contain.Frame(child, bounds, Center), f64.Rect(0, 25, 100, 50); got != want {
		t.Errorf("Frame: have %v, want %v", got, want)
	}
	tr := Contain.Transform(child, bounds, Center)
	if got, want := tr.Transform(f64.Pt(50, 25)), f64.Pt(100, 75); got != want {
		t.Errorf("Transform: have %v, want %v", got, want)
	}
}

func TestStrings(t *testing.T) {
	if got := Center.String(); got != "Center" {
		t.Errorf("have %q", got)
	}
	if got := Vertical.String(); got != "Vertical" {
		t.Errorf("have %q", got)
	}
	if got := CenterVertically.String(); got != "CenterVertically" {
		t.Errorf("have %q", got)
	}
}

func BenchmarkContainerFrame(b *testing.B) {
	c := Container{
		Insets:        f64.UniformInsets(8),
		SafeArea:      f64.Insets{Top: 44},
		SafeAreaEdges: f64.EdgeTop,
		Alignment:     CenterHorizontally,
	}
	bounds := f64.Rect(0, 0, 375, 812)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.Frame(bounds, f64.Sz(200, 40))
	}
}
