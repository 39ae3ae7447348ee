// Package togglebutton provides a segmented toggle button control for SDL
// applications on handhelds and small touch screens, together with the
// toolkit plumbing needed to show it: SDL initialization, input mapping,
// theming and logging.
//
// The control itself (ToggleButton) is pure state and can be driven and
// tested without a display; ToggleScreen mounts it in a window.
package togglebutton

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/constants"
	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/internal"
	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/platform/cannoli"
)

// Theme describes colors and fonts used by the toolkit.
type Theme = internal.Theme

// WindowOptions selects SDL window flags.
type WindowOptions = internal.WindowOptions

// Options configures toolkit initialization.
type Options struct {
	WindowTitle          string        // Window title displayed in windowed mode
	ShowBackground       bool          // Whether to render the theme background image
	WindowOptions        WindowOptions // SDL window flags; zero picks defaults for the environment
	PrimaryThemeColorHex uint32        // Custom accent color applied on top of the theme
	IsCannoli            bool          // Use the Cannoli CFW theme and font
	Theme                *Theme        // Explicit theme; takes precedence over IsCannoli
	FontPath             string        // Overrides the theme font
	LogPath              string        // Full path for log file including filename (creates parent directories)
	FlipFaceButtons      bool          // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap
	HardwareButtonDevice string        // evdev device to read handheld buttons from, e.g. /dev/input/event1
}

// Init initializes the SDL subsystems, theming, and input handling.
// Must be called before ToggleScreen.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.NitratesEnvVar) != "" || os.Getenv(constants.InputCaptureEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	internal.SetFlipFaceButtons(options.FlipFaceButtons)

	switch {
	case options.Theme != nil:
		internal.SetTheme(*options.Theme)
	case options.IsCannoli:
		internal.SetTheme(cannoli.InitCannoliTheme(cannoli.DefaultFontPath))
	default:
		internal.SetTheme(internal.DefaultTheme())
	}

	theme := internal.GetTheme()
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	if options.FontPath != "" {
		theme.FontPath = options.FontPath
	}
	internal.SetTheme(theme)

	err := internal.Init(internal.InitConfig{
		Title:                options.WindowTitle,
		ShowBackground:       options.ShowBackground,
		WindowOptions:        options.WindowOptions,
		HardwareButtonDevice: options.HardwareButtonDevice,
	})
	if err != nil {
		internal.GetInternalLogger().Error("Toolkit initialization failed", "error", err)
		return NewInfrastructureError("init", err)
	}
	return nil
}

// Close releases all SDL resources and shuts down the toolkit.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// DefaultTheme returns the stock light theme.
func DefaultTheme() Theme {
	return internal.DefaultTheme()
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" into a theme color.
var ParseHexColor = internal.ParseHexColor

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetFlipFaceButtons enables or disables direct face button mapping.
// Can also be set via the FLIP_FACE_BUTTONS environment variable.
// Call before Init() to take effect.
func SetFlipFaceButtons(flip bool) {
	internal.SetFlipFaceButtons(flip)
}

// RequestQuit makes the running screen return ErrCancelled at its next frame.
// Safe to call from any goroutine.
func RequestQuit() {
	internal.RequestQuit()
}
