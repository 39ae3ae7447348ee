package internal

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// Span is one horizontal run of a filled shape.
type Span struct {
	Y      int32
	X1, X2 int32 // inclusive start, exclusive end
}

// RoundedRectSpans rasterizes a rectangle with circular corners into
// horizontal spans, one per row. A radius of at least half the height gives a pill.
func RoundedRectSpans(rect sdl.Rect, radius int32) []Span {
	if rect.W <= 0 || rect.H <= 0 {
		return nil
	}
	radius = clampRadius(rect, radius)

	spans := make([]Span, 0, rect.H)
	for row := int32(0); row < rect.H; row++ {
		inset := cornerInset(row, rect.H, radius)
		spans = append(spans, Span{
			Y:  rect.Y + row,
			X1: rect.X + inset,
			X2: rect.X + rect.W - inset,
		})
	}
	return spans
}

func clampRadius(rect sdl.Rect, radius int32) int32 {
	if radius < 0 {
		return 0
	}
	if radius > rect.H/2 {
		radius = rect.H / 2
	}
	if radius > rect.W/2 {
		radius = rect.W / 2
	}
	return radius
}

// cornerInset is how far a row is pulled in from the side by the corner arc.
func cornerInset(row, height, radius int32) int32 {
	if radius == 0 {
		return 0
	}

	var dy float64
	switch {
	case row < radius:
		dy = float64(radius) - float64(row) - 0.5
	case row >= height-radius:
		dy = float64(row-(height-radius)) + 0.5
	default:
		return 0
	}

	r := float64(radius)
	dx := math.Sqrt(math.Max(0, r*r-dy*dy))
	return int32(math.Round(r - dx))
}

// DrawRoundedRect fills a rectangle with rounded corners.
func DrawRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, radius int32, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	for _, s := range RoundedRectSpans(rect, radius) {
		if s.X2 > s.X1 {
			renderer.DrawLine(s.X1, s.Y, s.X2-1, s.Y)
		}
	}
}

// DrawPill fills a fully rounded rectangle with an outline of the given width.
func DrawPill(renderer *sdl.Renderer, rect sdl.Rect, border int32, borderColor, fill sdl.Color) {
	radius := rect.H / 2
	if border > 0 {
		DrawRoundedRect(renderer, rect, radius, borderColor)
	}
	inner := sdl.Rect{X: rect.X + border, Y: rect.Y + border, W: rect.W - 2*border, H: rect.H - 2*border}
	DrawRoundedRect(renderer, inner, inner.H/2, fill)
}

// DrawFrame outlines a rectangle with lines of the given thickness.
func DrawFrame(renderer *sdl.Renderer, rect sdl.Rect, thickness int32, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	for i := int32(0); i < thickness; i++ {
		r := sdl.Rect{X: rect.X + i, Y: rect.Y + i, W: rect.W - 2*i, H: rect.H - 2*i}
		if r.W <= 0 || r.H <= 0 {
			return
		}
		renderer.DrawRect(&r)
	}
}
