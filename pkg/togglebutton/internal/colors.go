package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

// HexToColor converts 0xRRGGBB into an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ParseHexColor parses "#RRGGBB", "RRGGBB" or "#RRGGBBAA".
func ParseHexColor(raw string) (sdl.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(s) != 6 && len(s) != 8 {
		return sdl.Color{}, fmt.Errorf("color %q: want 6 or 8 hex digits", raw)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("color %q: %w", raw, err)
	}

	if len(s) == 6 {
		return HexToColor(uint32(v)), nil
	}
	return sdl.Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
