package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions selects the SDL window flags used at startup.
type WindowOptions struct {
	Borderless        bool // Remove window decorations
	Resizable         bool // Allow window resizing
	FullscreenDesktop bool // Fullscreen at desktop resolution
	Hidden            bool // Start hidden
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}

// Window wraps the SDL window and renderer with the toolkit's frame state.
type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	width, height     int32
	hasVSync          bool
	lastPresentTime   uint64
}

// devWindowSize returns the windowed size used in dev mode, honoring
// WINDOW_WIDTH and WINDOW_HEIGHT.
func devWindowSize() (int32, int32) {
	return envDimension(constants.WindowWidthEnvVar, 1024), envDimension(constants.WindowHeightEnvVar, 768)
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window dimension; using default", "env", name, "value", v)
		return fallback
	}
	return int32(n)
}

func initWindow(title string, displayBackground bool, winOpts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	var width, height int32

	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width, height = devWindowSize()
	} else {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			return nil, fmt.Errorf("get display mode: %w", err)
		}
		width, height = displayMode.W, displayMode.H
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			sdlWindow.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:            sdlWindow,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
		width:             width,
		height:            height,
		hasVSync:          vsync,
	}

	win.loadBackground()

	return win, nil
}

func (window *Window) loadBackground() {
	if !window.DisplayBackground {
		return
	}

	path := GetTheme().BackgroundImagePath
	if env := os.Getenv(constants.BackgroundPathEnvVar); env != "" {
		path = env
	}
	if path == "" {
		return
	}

	bgTexture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		GetInternalLogger().Warn("Failed to load background image", "path", path, "error", err)
		return
	}
	window.Background = bgTexture
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// GetWidth returns the logical width used for layout.
func (window *Window) GetWidth() int32 {
	return window.width
}

// GetHeight returns the logical height used for layout.
func (window *Window) GetHeight() int32 {
	return window.height
}

func (window *Window) RenderBackground() {
	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.width, H: window.height})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < constants.FrameDelay {
			sdl.Delay(uint32(constants.FrameDelay - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}

// GetScaleFactor returns how much larger than the base handheld resolution
// the window is. It never drops below 1.
func GetScaleFactor() float32 {
	if window == nil {
		return 1
	}
	return ScaleFor(window.height)
}

// ScaleFor computes the scale factor for a window of the given height.
func ScaleFor(height int32) float32 {
	scale := float32(height) / float32(constants.BaseScaleWindowHeight)
	if scale < 1 {
		return 1
	}
	return scale
}

// Scaled multiplies a base pixel size by the current scale factor.
func Scaled(v int32) int32 {
	return int32(float32(v)*GetScaleFactor() + 0.5)
}
