package togglebutton

import (
	"errors"
	"time"

	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/constants"
	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// ToggleScreenSettings configures the toggle button screen.
type ToggleScreenSettings struct {
	// ConfirmButton exits the screen with the current selection (default: VirtualButtonStart)
	ConfirmButton constants.VirtualButton
	// BackButton cancels the screen (default: VirtualButtonB)
	BackButton constants.VirtualButton
	// ActionButton exits with ToggleActionTriggered; unassigned disables it
	ActionButton constants.VirtualButton
	// DisableBackButton ignores the back button
	DisableBackButton bool
	// HelpText is drawn along the bottom edge; empty hides it
	HelpText string
}

type toggleScreenController struct {
	title       string
	button      *ToggleButton
	settings    ToggleScreenSettings
	focused     int
	showFocus   bool
	directional internal.DirectionalInput

	inputDelay    time.Duration
	lastInputTime time.Time

	finished  bool
	cancelled bool
	action    ToggleAction

	titleTexture *sdl.Texture
	helpTexture  *sdl.Texture
}

func newToggleScreenController(title string, button *ToggleButton, settings ToggleScreenSettings) *toggleScreenController {
	if settings.ConfirmButton == constants.VirtualButtonUnassigned {
		settings.ConfirmButton = constants.VirtualButtonStart
	}
	if settings.BackButton == constants.VirtualButtonUnassigned {
		settings.BackButton = constants.VirtualButtonB
	}

	return &toggleScreenController{
		title:       title,
		button:      button,
		settings:    settings,
		directional: internal.NewDirectionalInput(),
		inputDelay:  constants.DefaultInputDelay,
	}
}

// ToggleScreen shows title above button, centered on screen, until the user
// confirms or cancels. Clicks and taps on a segment, or A on the focused
// segment, are passed to button.HandleClick, so button's change callback
// fires while the screen is up.
//
// Returns ErrCancelled if the user presses the back button, the window is
// closed, or the process is asked to quit.
func ToggleScreen(title string, button *ToggleButton, settings ToggleScreenSettings) (*ToggleScreenResult, error) {
	window := internal.GetWindow()
	if window == nil || internal.Fonts.MediumFont == nil {
		return nil, NewInfrastructureError("toggle_screen", errors.New("toolkit not initialized"))
	}

	controller := newToggleScreenController(title, button, settings)
	defer controller.destroy()

	view := newToggleView(button, internal.Fonts.MediumFont, internal.GetTheme())
	defer view.destroy()

	for !controller.finished {
		if internal.QuitRequested() {
			controller.cancelled = true
			break
		}

		controller.handleEvents(view)
		if dir := controller.directional.Update(); dir != internal.DirectionNone {
			controller.moveFocus(dir.Step())
		}

		controller.render(window, view)
	}

	if controller.cancelled {
		return nil, ErrCancelled
	}

	return &ToggleScreenResult{
		Selected: button.CurrentSelection(),
		Action:   controller.action,
	}, nil
}

func (c *toggleScreenController) handleEvents(view *toggleView) {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			c.finished = true
			return

		case *sdl.MouseButtonEvent:
			// Touch taps arrive here too, synthesized by SDL.
			if e.Type == sdl.MOUSEBUTTONUP && e.Button == sdl.BUTTON_LEFT {
				c.handlePointer(view, e.X, e.Y)
			}

		default:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil {
				continue
			}
			if !inputEvent.Pressed {
				c.directional.SetHeld(inputEvent.Button, false)
				continue
			}
			if time.Since(c.lastInputTime) < c.inputDelay {
				continue
			}
			c.lastInputTime = time.Now()

			c.handleButton(inputEvent.Button)
			if c.finished {
				return
			}
		}
	}
}

// handlePointer clicks the segment under (x, y), if any.
func (c *toggleScreenController) handlePointer(view *toggleView, x, y int32) {
	index, ok := view.segmentAt(x, y)
	if !ok {
		return
	}
	c.focused = index
	c.showFocus = false
	c.button.HandleClickAt(index)
}

func (c *toggleScreenController) handleButton(button constants.VirtualButton) {
	if c.directional.SetHeld(button, true) {
		if button == constants.VirtualButtonLeft {
			c.moveFocus(-1)
		} else {
			c.moveFocus(1)
		}
		return
	}

	switch button {
	case constants.VirtualButtonA:
		if c.button.Len() > 0 {
			c.showFocus = true
			c.button.HandleClickAt(c.focused)
		}
	case c.settings.ConfirmButton:
		c.action = ToggleActionConfirmed
		c.finished = true
	case c.settings.BackButton:
		if !c.settings.DisableBackButton {
			c.cancelled = true
			c.finished = true
		}
	case constants.VirtualButtonPower:
		c.cancelled = true
		c.finished = true
	default:
		if c.settings.ActionButton != constants.VirtualButtonUnassigned && button == c.settings.ActionButton {
			c.action = ToggleActionTriggered
			c.finished = true
		}
	}
}

// moveFocus moves the focus ring by step segments, wrapping at either end.
func (c *toggleScreenController) moveFocus(step int) {
	n := c.button.Len()
	if n == 0 || step == 0 {
		return
	}
	c.showFocus = true
	c.focused = ((c.focused+step)%n + n) % n
}

func (c *toggleScreenController) focusIndex() int {
	if !c.showFocus {
		return -1
	}
	return c.focused
}

func (c *toggleScreenController) render(window *internal.Window, view *toggleView) {
	renderer := window.Renderer
	theme := internal.GetTheme()
	width, height := window.GetWidth(), window.GetHeight()

	bg := theme.BackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.Clear()
	window.RenderBackground()

	titleBarHeight := internal.Scaled(constants.TitleBarHeight)
	bar := theme.TitleBarColor
	renderer.SetDrawColor(bar.R, bar.G, bar.B, bar.A)
	renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: width, H: titleBarHeight})

	if c.titleTexture == nil {
		c.titleTexture = renderText(renderer, c.title, internal.Fonts.LargeFont, theme.TitleTextColor)
	}
	copyCentered(renderer, c.titleTexture, sdl.Point{X: width / 2, Y: titleBarHeight / 2})

	contentCenter := sdl.Point{X: width / 2, Y: titleBarHeight + (height-titleBarHeight)/2}
	view.render(renderer, contentCenter, c.focusIndex())

	if c.settings.HelpText != "" {
		if c.helpTexture == nil {
			c.helpTexture = renderText(renderer, c.settings.HelpText, internal.Fonts.SmallFont, theme.HintColor)
		}
		margin := internal.Scaled(20)
		copyCentered(renderer, c.helpTexture, sdl.Point{X: width / 2, Y: height - margin})
	}

	window.Present()
}

func (c *toggleScreenController) destroy() {
	for _, t := range []*sdl.Texture{c.titleTexture, c.helpTexture} {
		if t != nil {
			t.Destroy()
		}
	}
}

func renderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color) *sdl.Texture {
	if text == "" || font == nil {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}

	return texture
}

func copyCentered(renderer *sdl.Renderer, texture *sdl.Texture, center sdl.Point) {
	if texture == nil {
		return
	}
	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}
	renderer.Copy(texture, nil, &sdl.Rect{X: center.X - w/2, Y: center.Y - h/2, W: w, H: h})
}
