package internal

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestRoundedRectSpansPill(t *testing.T) {
	rect := sdl.Rect{X: 10, Y: 5, W: 120, H: 40}
	spans := RoundedRectSpans(rect, rect.H/2)

	if len(spans) != int(rect.H) {
		t.Fatalf("got %d spans, want %d", len(spans), rect.H)
	}

	for i, s := range spans {
		if s.Y != rect.Y+int32(i) {
			t.Fatalf("span %d at y=%d, want %d", i, s.Y, rect.Y+int32(i))
		}
		if s.X1 < rect.X || s.X2 > rect.X+rect.W || s.X1 > s.X2 {
			t.Fatalf("span %d = [%d,%d) outside %+v", i, s.X1, s.X2, rect)
		}

		mirror := spans[len(spans)-1-i]
		if s.X1 != mirror.X1 || s.X2 != mirror.X2 {
			t.Errorf("row %d [%d,%d) not mirrored by row %d [%d,%d)", i, s.X1, s.X2, len(spans)-1-i, mirror.X1, mirror.X2)
		}
	}

	top, mid := spans[0], spans[rect.H/2]
	if top.X2-top.X1 >= mid.X2-mid.X1 {
		t.Errorf("top row width %d not narrower than middle %d", top.X2-top.X1, mid.X2-mid.X1)
	}
	if mid.X1 > rect.X+1 || mid.X2 < rect.X+rect.W-1 {
		t.Errorf("middle row [%d,%d) does not reach the sides", mid.X1, mid.X2)
	}
}

func TestRoundedRectSpansSquareCorners(t *testing.T) {
	rect := sdl.Rect{X: 0, Y: 0, W: 8, H: 4}
	for _, s := range RoundedRectSpans(rect, 0) {
		if s.X1 != 0 || s.X2 != 8 {
			t.Errorf("row %d = [%d,%d), want [0,8)", s.Y, s.X1, s.X2)
		}
	}
}

func TestRoundedRectSpansEmpty(t *testing.T) {
	if spans := RoundedRectSpans(sdl.Rect{W: 0, H: 10}, 5); spans != nil {
		t.Errorf("zero width produced %d spans", len(spans))
	}
}

func TestClampRadius(t *testing.T) {
	if got := clampRadius(sdl.Rect{W: 100, H: 20}, 50); got != 10 {
		t.Errorf("clampRadius = %d, want 10", got)
	}
	if got := clampRadius(sdl.Rect{W: 6, H: 20}, 50); got != 3 {
		t.Errorf("clampRadius = %d, want 3", got)
	}
	if got := clampRadius(sdl.Rect{W: 6, H: 20}, -2); got != 0 {
		t.Errorf("clampRadius = %d, want 0", got)
	}
}
