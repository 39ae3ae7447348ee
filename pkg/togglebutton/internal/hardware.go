package internal

import (
	"fmt"

	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/constants"
	"github.com/holoplot/go-evdev"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// HardwareButtons reads key events straight from an evdev device and posts
// them into the SDL event queue. Handheld d-pads and power keys often bypass
// SDL's joystick layer, so this is the only way to see them.
type HardwareButtons struct {
	device    *evdev.InputDevice
	keyMap    map[evdev.EvCode]constants.VirtualButton
	eventType uint32
	running   atomic.Bool
	done      chan struct{}
}

// DefaultHardwareKeyMap covers the keys most handheld kernels report.
func DefaultHardwareKeyMap() map[evdev.EvCode]constants.VirtualButton {
	return map[evdev.EvCode]constants.VirtualButton{
		evdev.KEY_UP:     constants.VirtualButtonUp,
		evdev.KEY_DOWN:   constants.VirtualButtonDown,
		evdev.KEY_LEFT:   constants.VirtualButtonLeft,
		evdev.KEY_RIGHT:  constants.VirtualButtonRight,
		evdev.BTN_EAST:   constants.VirtualButtonA,
		evdev.BTN_SOUTH:  constants.VirtualButtonB,
		evdev.BTN_START:  constants.VirtualButtonStart,
		evdev.BTN_SELECT: constants.VirtualButtonSelect,
		evdev.KEY_POWER:  constants.VirtualButtonPower,
	}
}

// StartHardwareButtons opens devicePath and starts forwarding key events.
func StartHardwareButtons(devicePath string, keyMap map[evdev.EvCode]constants.VirtualButton, eventType uint32) (*HardwareButtons, error) {
	device, err := evdev.Open(devicePath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", devicePath, err)
	}

	hb := &HardwareButtons{
		device:    device,
		keyMap:    keyMap,
		eventType: eventType,
		done:      make(chan struct{}),
	}
	hb.running.Store(true)

	go hb.loop()

	return hb, nil
}

func (hb *HardwareButtons) loop() {
	defer close(hb.done)

	for hb.running.Load() {
		ev, err := hb.device.ReadOne()
		if err != nil {
			if hb.running.Load() {
				GetInternalLogger().Error("Hardware button read failed", "error", err)
			}
			return
		}

		button, pressed, ok := hb.translate(ev)
		if !ok {
			continue
		}

		if button == constants.VirtualButtonPower && pressed {
			RequestQuit()
		}

		if _, err := sdl.PushEvent(&sdl.UserEvent{
			Type: hb.eventType,
			Code: EncodeHardwareCode(button, pressed),
		}); err != nil {
			GetInternalLogger().Warn("Failed to post hardware button event", "button", button.GetName(), "error", err)
		}
	}
}

// translate maps an evdev event to a button transition. Auto-repeat (value 2)
// and non-key events are dropped.
func (hb *HardwareButtons) translate(ev *evdev.InputEvent) (constants.VirtualButton, bool, bool) {
	if ev.Type != evdev.EV_KEY || ev.Value > 1 {
		return constants.VirtualButtonUnassigned, false, false
	}
	button, ok := hb.keyMap[ev.Code]
	if !ok {
		return constants.VirtualButtonUnassigned, false, false
	}
	return button, ev.Value == 1, true
}

// Stop closes the device, which unblocks the reader, and waits for it to exit.
func (hb *HardwareButtons) Stop() {
	if !hb.running.CompareAndSwap(true, false) {
		return
	}
	if err := hb.device.Close(); err != nil {
		GetInternalLogger().Warn("Failed to close hardware button device", "error", err)
	}
	<-hb.done
}
