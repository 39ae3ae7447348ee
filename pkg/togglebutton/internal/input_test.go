package internal

import (
	"testing"

	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/constants"
	"github.com/veandco/go-sdl2/sdl"
)

func TestHardwareCodeRoundTrip(t *testing.T) {
	for _, b := range []constants.VirtualButton{constants.VirtualButtonLeft, constants.VirtualButtonA, constants.VirtualButtonPower} {
		for _, pressed := range []bool{true, false} {
			gotButton, gotPressed := DecodeHardwareCode(EncodeHardwareCode(b, pressed))
			if gotButton != b || gotPressed != pressed {
				t.Errorf("round trip %s/%v = %s/%v", b.GetName(), pressed, gotButton.GetName(), gotPressed)
			}
		}
	}
}

func TestControllerMapFaceButtons(t *testing.T) {
	swapped := ControllerMap(false)
	if swapped[sdl.CONTROLLER_BUTTON_A] != constants.VirtualButtonB || swapped[sdl.CONTROLLER_BUTTON_B] != constants.VirtualButtonA {
		t.Error("default mapping does not swap A and B")
	}

	direct := ControllerMap(true)
	if direct[sdl.CONTROLLER_BUTTON_A] != constants.VirtualButtonA || direct[sdl.CONTROLLER_BUTTON_Y] != constants.VirtualButtonY {
		t.Error("flipped mapping is not direct")
	}
}

func TestProcessSDLEvent(t *testing.T) {
	const hwType = 0x8001
	p := NewInputProcessor(false, hwType)

	tests := []struct {
		name  string
		event sdl.Event
		want  *Event
	}{
		{
			name:  "arrow key press",
			event: &sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_RIGHT}},
			want:  &Event{Button: constants.VirtualButtonRight, Pressed: true},
		},
		{
			name:  "key release",
			event: &sdl.KeyboardEvent{State: sdl.RELEASED, Keysym: sdl.Keysym{Sym: sdl.K_SPACE}},
			want:  &Event{Button: constants.VirtualButtonA, Pressed: false},
		},
		{
			name:  "key repeat",
			event: &sdl.KeyboardEvent{State: sdl.PRESSED, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_RIGHT}},
		},
		{
			name:  "unmapped key",
			event: &sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_F5}},
		},
		{
			name:  "controller start",
			event: &sdl.ControllerButtonEvent{State: sdl.PRESSED, Button: uint8(sdl.CONTROLLER_BUTTON_START)},
			want:  &Event{Button: constants.VirtualButtonStart, Pressed: true},
		},
		{
			name:  "hardware button",
			event: &sdl.UserEvent{Type: hwType, Code: EncodeHardwareCode(constants.VirtualButtonLeft, true)},
			want:  &Event{Button: constants.VirtualButtonLeft, Pressed: true},
		},
		{
			name:  "foreign user event",
			event: &sdl.UserEvent{Type: hwType + 1, Code: EncodeHardwareCode(constants.VirtualButtonLeft, true)},
		},
		{
			name:  "quit",
			event: &sdl.QuitEvent{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ProcessSDLEvent(tt.event)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("got %+v, want nil", got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
