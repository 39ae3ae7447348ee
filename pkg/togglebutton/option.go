package togglebutton

import (
	"fmt"
	"strings"
)

// Option is a single selectable entry of a ToggleButton.
// Text is both the label and the key that identifies the option within one
// control, so two options with the same Text are the same option regardless
// of IconID. IconID is optional and names an icon registered with RegisterIcon.
type Option struct {
	Text   string
	IconID string
}

// Key returns the identity of the option within a control.
func (o Option) Key() string {
	return o.Text
}

// HasIcon reports whether the option carries an icon identifier.
func (o Option) HasIcon() bool {
	return o.IconID != ""
}

// SelectionMode controls how many segments may be selected at once.
type SelectionMode int

const (
	SelectionModeNone     SelectionMode = iota // Clicks never select anything
	SelectionModeSingle                        // Exactly the last clicked option is selected
	SelectionModeMultiple                      // Each option toggles independently
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionModeNone:
		return "none"
	case SelectionModeSingle:
		return "single"
	case SelectionModeMultiple:
		return "multiple"
	default:
		return fmt.Sprintf("SelectionMode(%d)", int(m))
	}
}

// ParseSelectionMode converts "none", "single" or "multiple" (any case) into a SelectionMode.
func ParseSelectionMode(raw string) (SelectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none":
		return SelectionModeNone, nil
	case "single", "":
		return SelectionModeSingle, nil
	case "multiple", "multi":
		return SelectionModeMultiple, nil
	default:
		return SelectionModeNone, fmt.Errorf("unknown selection mode %q", raw)
	}
}
