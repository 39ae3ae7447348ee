package internal

import (
	"time"

	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/constants"
)

// Direction is a horizontal navigation step across segments.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// Step returns -1, 0 or +1 for moving focus across segments.
func (d Direction) Step() int {
	switch d {
	case DirectionLeft:
		return -1
	case DirectionRight:
		return 1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}

// DirectionalInput tracks a held left/right button and decides when a held
// button should repeat.
type DirectionalInput struct {
	held           Direction
	heldSince      time.Time
	lastRepeatTime time.Time
	hasRepeated    bool
	repeatDelay    time.Duration
	repeatInterval time.Duration
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 80ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 80*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		now:            time.Now,
	}
}

// SetHeld updates the held state from a virtual button.
// Returns true if the button was a horizontal directional button.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	var dir Direction
	switch button {
	case constants.VirtualButtonLeft:
		dir = DirectionLeft
	case constants.VirtualButtonRight:
		dir = DirectionRight
	default:
		return false
	}

	if held {
		d.held = dir
		d.heldSince = d.now()
		d.lastRepeatTime = d.heldSince
		d.hasRepeated = false
	} else if d.held == dir {
		d.Reset()
	}
	return true
}

// Update returns the held direction when a repeat is due, DirectionNone otherwise.
// Call once per frame.
func (d *DirectionalInput) Update() Direction {
	if d.held == DirectionNone {
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	now := d.now()
	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.held
	}
	return DirectionNone
}

// Reset clears the held direction and timing state.
func (d *DirectionalInput) Reset() {
	d.held = DirectionNone
	d.hasRepeated = false
}
