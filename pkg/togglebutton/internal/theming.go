package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the toolkit.
// The toggle button colors default to a white surface with a blue selected
// tint and light grey for everything unselected.
type Theme struct {
	AccentColor         sdl.Color // Focus ring
	TextColor           sdl.Color // Default text color
	HintColor           sdl.Color // Help text
	BackgroundColor     sdl.Color // Screen background and segment surface
	TitleBarColor       sdl.Color // Title bar surface
	TitleTextColor      sdl.Color // Title bar text
	SelectedTint        sdl.Color // Label and icon of a selected segment
	UnselectedTint      sdl.Color // Label and icon of an unselected segment
	BorderColor         sdl.Color // Pill outline
	DividerColor        sdl.Color // Separator between adjacent segments
	FontPath            string    // Path to the primary UI font
	BackgroundImagePath string    // Path to the background image
}

var currentTheme = DefaultTheme()

// DefaultTheme returns the stock light theme.
func DefaultTheme() Theme {
	return Theme{
		AccentColor:     HexToColor(0x6200EE),
		TextColor:       HexToColor(0x000000),
		HintColor:       HexToColor(0x757575),
		BackgroundColor: HexToColor(0xFFFFFF),
		TitleBarColor:   HexToColor(0x6200EE),
		TitleTextColor:  HexToColor(0xFFFFFF),
		SelectedTint:    HexToColor(0x0000FF),
		UnselectedTint:  HexToColor(0xD3D3D3),
		BorderColor:     HexToColor(0xD3D3D3),
		DividerColor:    HexToColor(0xD3D3D3),
	}
}

// SetTheme sets the active theme for the toolkit.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}
