package togglebutton

import (
	"github.com/veandco/go-sdl2/sdl"
)

// ElementKind distinguishes the parts a ToggleButton is drawn from.
type ElementKind int

const (
	ElementSegment ElementKind = iota
	ElementDivider
)

func (k ElementKind) String() string {
	if k == ElementDivider {
		return "divider"
	}
	return "segment"
}

// Element is one drawn part of the control. For segments Index is the option
// position; for dividers it is the position of the segment to its left.
type Element struct {
	Kind  ElementKind
	Index int
}

// Elements returns the draw order for count options: the first segment, a
// divider, every middle segment followed by a divider, then the last segment.
// Zero options produce nothing and a single option produces one bare segment.
func Elements(count int) []Element {
	switch {
	case count <= 0:
		return nil
	case count == 1:
		return []Element{{Kind: ElementSegment, Index: 0}}
	}

	elements := make([]Element, 0, 2*count-1)
	elements = append(elements,
		Element{Kind: ElementSegment, Index: 0},
		Element{Kind: ElementDivider, Index: 0},
	)
	for i := 1; i < count-1; i++ {
		elements = append(elements,
			Element{Kind: ElementSegment, Index: i},
			Element{Kind: ElementDivider, Index: i},
		)
	}
	return append(elements, Element{Kind: ElementSegment, Index: count - 1})
}

// layoutMetrics are the pixel sizes a layout is computed with.
type layoutMetrics struct {
	Height       int32 // Outer height of the pill
	Border       int32
	PaddingX     int32 // Horizontal padding on each side of a segment's content
	DividerWidth int32
	MinWidth     int32 // Width of the empty shell when there are no options
}

// Placement is an Element positioned on screen.
type Placement struct {
	Element
	Rect sdl.Rect
}

// layoutToggle positions the elements for segments whose content is
// contentWidths wide, with the pill's top-left corner at origin.
// It returns the placements and the outer bounds of the pill.
func layoutToggle(origin sdl.Point, contentWidths []int32, m layoutMetrics) ([]Placement, sdl.Rect) {
	elements := Elements(len(contentWidths))
	innerH := m.Height - 2*m.Border
	if innerH < 0 {
		innerH = 0
	}

	placements := make([]Placement, 0, len(elements))
	x := origin.X + m.Border
	y := origin.Y + m.Border

	for _, el := range elements {
		var w int32
		if el.Kind == ElementSegment {
			w = contentWidths[el.Index] + 2*m.PaddingX
		} else {
			w = m.DividerWidth
		}
		placements = append(placements, Placement{
			Element: el,
			Rect:    sdl.Rect{X: x, Y: y, W: w, H: innerH},
		})
		x += w
	}

	width := x + m.Border - origin.X
	if len(elements) == 0 && width < m.MinWidth {
		width = m.MinWidth
	}

	return placements, sdl.Rect{X: origin.X, Y: origin.Y, W: width, H: m.Height}
}

// centeredOrigin returns the top-left corner that centers a box of w×h on center.
func centeredOrigin(center sdl.Point, w, h int32) sdl.Point {
	return sdl.Point{X: center.X - w/2, Y: center.Y - h/2}
}

// hitTest returns the option index of the segment containing (x, y).
// Dividers and the border are not clickable.
func hitTest(placements []Placement, x, y int32) (int, bool) {
	for _, p := range placements {
		if p.Kind != ElementSegment {
			continue
		}
		r := p.Rect
		if x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H {
			return p.Index, true
		}
	}
	return -1, false
}
