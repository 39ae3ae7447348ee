// Package internal contains the core infrastructure for the togglebutton toolkit.
// This includes SDL initialization, input processing, theming, and rendering utilities.
// Types and functions in this package are not part of the public API.
package internal

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"go.uber.org/atomic"
)

var (
	window        *Window
	quitRequested atomic.Bool
	hardware      *HardwareButtons
)

// InitConfig carries everything the SDL layer needs at startup.
type InitConfig struct {
	Title                string
	ShowBackground       bool
	WindowOptions        WindowOptions
	HardwareButtonDevice string
}

func Init(cfg InitConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	img.Init(img.INIT_PNG | img.INIT_JPG)

	if err := InitInputProcessor(); err != nil {
		return err
	}

	winOpts := cfg.WindowOptions
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true, FullscreenDesktop: true}
		}
	}

	w, err := initWindow(cfg.Title, cfg.ShowBackground, winOpts)
	if err != nil {
		return err
	}
	window = w

	if err := initFonts(DefaultFontSizes); err != nil {
		return err
	}

	watchSignals()

	if !constants.IsDevMode() && cfg.HardwareButtonDevice != "" {
		hb, err := StartHardwareButtons(cfg.HardwareButtonDevice, DefaultHardwareKeyMap(), GetInputProcessor().HardwareEventType())
		if err != nil {
			// The touch screen and SDL controllers still work without it.
			GetInternalLogger().Warn("Hardware buttons unavailable", "device", cfg.HardwareButtonDevice, "error", err)
		} else {
			hardware = hb
		}
	}

	return nil
}

func watchSignals() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-ch
		GetInternalLogger().Debug("Signal received, requesting quit", "signal", sig.String())
		RequestQuit()
	}()
}

// RequestQuit asks the running screen loop to exit at the next frame.
// Safe to call from any goroutine.
func RequestQuit() {
	quitRequested.Store(true)
}

// QuitRequested reports whether RequestQuit has been called.
func QuitRequested() bool {
	return quitRequested.Load()
}

func SDLCleanup() {
	if hardware != nil {
		hardware.Stop()
	}
	if window != nil {
		window.closeWindow()
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
