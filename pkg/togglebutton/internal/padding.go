package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// Horizontal is the combined left and right padding.
func (p Padding) Horizontal() int32 {
	return p.Left + p.Right
}

// Vertical is the combined top and bottom padding.
func (p Padding) Vertical() int32 {
	return p.Top + p.Bottom
}

// Scale returns the padding multiplied by factor, rounded to the nearest pixel.
func (p Padding) Scale(factor float32) Padding {
	s := func(v int32) int32 { return int32(float32(v)*factor + 0.5) }
	return Padding{Top: s(p.Top), Right: s(p.Right), Bottom: s(p.Bottom), Left: s(p.Left)}
}
