// Package constants defines shared constants, types, and configuration values
// used throughout the togglebutton toolkit.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the toolkit.
const (
	EnvironmentEnvVar     = "ENVIRONMENT"
	BackgroundPathEnvVar  = "BACKGROUND_PATH"
	WindowWidthEnvVar     = "WINDOW_WIDTH"
	WindowHeightEnvVar    = "WINDOW_HEIGHT"
	FlipFaceButtonsEnvVar = "FLIP_FACE_BUTTONS"
	NitratesEnvVar        = "NITRATES"
	InputCaptureEnvVar    = "INPUT_CAPTURE"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// This abstraction allows the toolkit to work with different controller configurations.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonPower
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonPower:
		return "Power"
	default:
		return "Unknown"
	}
}

// Default timing constants.
const (
	DefaultInputDelay = 20 * time.Millisecond // Debounce delay between input events
	FrameDelay        = 16                    // Milliseconds between frames when idle
)

// Toggle button metrics, in unscaled pixels.
const (
	ToggleHeight          int32 = 52
	ToggleBorderWidth     int32 = 1
	SegmentPaddingX       int32 = 14
	DividerWidth          int32 = 2
	IconPaddingLeft       int32 = 4
	IconPaddingVertical   int32 = 2
	IconPaddingRight      int32 = 2
	TitleBarHeight        int32 = 56
	FocusRingInset        int32 = 4
	BaseScaleWindowHeight int32 = 480
)
