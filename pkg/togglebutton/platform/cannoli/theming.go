// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/internal"
)

// DefaultFontPath is where Cannoli installs its system font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a dark theme with Cannoli's teal accent and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		AccentColor:     internal.HexToColor(0x008080),
		TextColor:       internal.HexToColor(0xFFFFFF),
		HintColor:       internal.HexToColor(0xB4B4B4),
		BackgroundColor: internal.HexToColor(0x000000),
		TitleBarColor:   internal.HexToColor(0x008080),
		TitleTextColor:  internal.HexToColor(0xFFFFFF),
		SelectedTint:    internal.HexToColor(0x00C0C0),
		UnselectedTint:  internal.HexToColor(0x808080),
		BorderColor:     internal.HexToColor(0x808080),
		DividerColor:    internal.HexToColor(0x505050),
		FontPath:        fontPath,
	}
}
