package internal

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/constants"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time            { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestDirectionalRepeat(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
	d.now = clock.now

	if !d.SetHeld(constants.VirtualButtonRight, true) {
		t.Fatal("right not treated as directional")
	}

	clock.advance(299 * time.Millisecond)
	if got := d.Update(); got != DirectionNone {
		t.Fatalf("repeat before delay: %v", got)
	}

	clock.advance(time.Millisecond)
	if got := d.Update(); got != DirectionRight {
		t.Fatalf("first repeat = %v, want right", got)
	}

	clock.advance(49 * time.Millisecond)
	if got := d.Update(); got != DirectionNone {
		t.Fatalf("repeat before interval: %v", got)
	}
	clock.advance(time.Millisecond)
	if got := d.Update(); got != DirectionRight {
		t.Fatalf("second repeat = %v, want right", got)
	}

	d.SetHeld(constants.VirtualButtonRight, false)
	clock.advance(time.Second)
	if got := d.Update(); got != DirectionNone {
		t.Errorf("repeat after release: %v", got)
	}
}

func TestDirectionalIgnoresVertical(t *testing.T) {
	d := NewDirectionalInput()
	if d.SetHeld(constants.VirtualButtonUp, true) {
		t.Error("up treated as horizontal")
	}
	if d.SetHeld(constants.VirtualButtonA, true) {
		t.Error("A treated as directional")
	}
}

func TestDirectionalReleaseOfOtherDirection(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := NewDirectionalInputWithTiming(10*time.Millisecond, 10*time.Millisecond)
	d.now = clock.now

	d.SetHeld(constants.VirtualButtonLeft, true)
	d.SetHeld(constants.VirtualButtonRight, false)

	clock.advance(10 * time.Millisecond)
	if got := d.Update(); got != DirectionLeft {
		t.Errorf("releasing right cancelled held left: %v", got)
	}
}

func TestDirectionStep(t *testing.T) {
	if DirectionLeft.Step() != -1 || DirectionRight.Step() != 1 || DirectionNone.Step() != 0 {
		t.Error("unexpected steps")
	}
}
