package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a physical input translated into a virtual button transition.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// InputProcessor maps keyboard, game controller and hardware button events
// onto virtual buttons.
type InputProcessor struct {
	keyMap            map[sdl.Keycode]constants.VirtualButton
	controllerMap     map[sdl.GameControllerButton]constants.VirtualButton
	hardwareEventType uint32
}

var (
	inputProcessor  *InputProcessor
	controllers     []*sdl.GameController
	flipFaceButtons bool
)

// SetFlipFaceButtons selects direct face button mapping (A=A, B=B) over the
// default Nintendo-style swap. Must be called before InitInputProcessor.
func SetFlipFaceButtons(flip bool) {
	flipFaceButtons = flip
}

func flipFromEnv() bool {
	v := os.Getenv(constants.FlipFaceButtonsEnvVar)
	if v == "" {
		return false
	}
	flip, err := strconv.ParseBool(v)
	return err == nil && flip
}

// DefaultKeyMap is the keyboard layout used in dev mode.
func DefaultKeyMap() map[sdl.Keycode]constants.VirtualButton {
	return map[sdl.Keycode]constants.VirtualButton{
		sdl.K_UP:        constants.VirtualButtonUp,
		sdl.K_DOWN:      constants.VirtualButtonDown,
		sdl.K_LEFT:      constants.VirtualButtonLeft,
		sdl.K_RIGHT:     constants.VirtualButtonRight,
		sdl.K_a:         constants.VirtualButtonA,
		sdl.K_SPACE:     constants.VirtualButtonA,
		sdl.K_b:         constants.VirtualButtonB,
		sdl.K_ESCAPE:    constants.VirtualButtonB,
		sdl.K_BACKSPACE: constants.VirtualButtonB,
		sdl.K_x:         constants.VirtualButtonX,
		sdl.K_y:         constants.VirtualButtonY,
		sdl.K_RETURN:    constants.VirtualButtonStart,
		sdl.K_TAB:       constants.VirtualButtonSelect,
		sdl.K_m:         constants.VirtualButtonMenu,
	}
}

// ControllerMap returns the game controller layout. Without flip the bottom and
// right face buttons are swapped, matching the labels printed on most handhelds.
func ControllerMap(flip bool) map[sdl.GameControllerButton]constants.VirtualButton {
	m := map[sdl.GameControllerButton]constants.VirtualButton{
		sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
		sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
		sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
		sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
		sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonStart,
		sdl.CONTROLLER_BUTTON_BACK:       constants.VirtualButtonSelect,
		sdl.CONTROLLER_BUTTON_GUIDE:      constants.VirtualButtonMenu,
	}

	if flip {
		m[sdl.CONTROLLER_BUTTON_A] = constants.VirtualButtonA
		m[sdl.CONTROLLER_BUTTON_B] = constants.VirtualButtonB
		m[sdl.CONTROLLER_BUTTON_X] = constants.VirtualButtonX
		m[sdl.CONTROLLER_BUTTON_Y] = constants.VirtualButtonY
	} else {
		m[sdl.CONTROLLER_BUTTON_A] = constants.VirtualButtonB
		m[sdl.CONTROLLER_BUTTON_B] = constants.VirtualButtonA
		m[sdl.CONTROLLER_BUTTON_X] = constants.VirtualButtonY
		m[sdl.CONTROLLER_BUTTON_Y] = constants.VirtualButtonX
	}
	return m
}

// NewInputProcessor builds a processor. hardwareEventType is the SDL user
// event type that hardware button readers post; zero disables it.
func NewInputProcessor(flip bool, hardwareEventType uint32) *InputProcessor {
	return &InputProcessor{
		keyMap:            DefaultKeyMap(),
		controllerMap:     ControllerMap(flip),
		hardwareEventType: hardwareEventType,
	}
}

func InitInputProcessor() error {
	eventType := sdl.RegisterEvents(1)
	if eventType == ^uint32(0) {
		return fmt.Errorf("register hardware button event: %v", sdl.GetError())
	}

	inputProcessor = NewInputProcessor(flipFaceButtons || flipFromEnv(), eventType)

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			GetInternalLogger().Debug("Opened game controller", "index", i, "name", c.Name())
			controllers = append(controllers, c)
		}
	}
	return nil
}

func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

// HardwareEventType is the SDL user event type carrying hardware button presses.
func (p *InputProcessor) HardwareEventType() uint32 {
	return p.hardwareEventType
}

// ProcessSDLEvent translates an SDL event. It returns nil for events that do
// not map to a virtual button, including keyboard auto-repeat.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := p.keyMap[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerButtonEvent:
		button, ok := p.controllerMap[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.UserEvent:
		if p.hardwareEventType == 0 || e.Type != p.hardwareEventType {
			return nil
		}
		button, pressed := DecodeHardwareCode(e.Code)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: pressed}
	}
	return nil
}

// EncodeHardwareCode packs a button transition into a UserEvent code.
func EncodeHardwareCode(button constants.VirtualButton, pressed bool) int32 {
	code := int32(button) << 1
	if pressed {
		code |= 1
	}
	return code
}

// DecodeHardwareCode reverses EncodeHardwareCode.
func DecodeHardwareCode(code int32) (constants.VirtualButton, bool) {
	return constants.VirtualButton(code >> 1), code&1 == 1
}

func CloseAllControllers() {
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
}
