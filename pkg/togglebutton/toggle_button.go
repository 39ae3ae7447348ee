package togglebutton

import (
	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/internal"
)

// ToggleButton is a segmented control: a row of options inside a pill where
// clicks select options according to a SelectionMode.
//
// A ToggleButton is not safe for concurrent use. All calls are expected to
// come from the UI event loop.
type ToggleButton struct {
	options  []Option
	index    map[string]int
	mode     SelectionMode
	state    *SelectionState
	onChange func(selected []Option)
}

// New creates a ToggleButton with an empty selection.
// onChange is called after every click that was applied, with the full
// selection; it may be nil. Options sharing a key are rejected with
// ErrInvalidConfiguration.
func New(options []Option, mode SelectionMode, onChange func(selected []Option)) (*ToggleButton, error) {
	index := make(map[string]int, len(options))
	for i, option := range options {
		if first, dup := index[option.Key()]; dup {
			internal.GetInternalLogger().Debug("Rejecting toggle button with duplicate option",
				"key", option.Key(), "first", first, "duplicate", i)
			return nil, &InvalidConfigurationError{
				Key:    option.Key(),
				Index:  i,
				Reason: "duplicate key",
			}
		}
		index[option.Key()] = i
	}

	switch mode {
	case SelectionModeNone, SelectionModeSingle, SelectionModeMultiple:
	default:
		return nil, &InvalidConfigurationError{Index: -1, Reason: "unknown selection mode " + mode.String()}
	}

	return &ToggleButton{
		options:  append([]Option(nil), options...),
		index:    index,
		mode:     mode,
		state:    newSelectionState(),
		onChange: onChange,
	}, nil
}

// Options returns the configured options in display order.
func (t *ToggleButton) Options() []Option {
	return append([]Option(nil), t.options...)
}

// Mode returns the selection mode fixed at construction.
func (t *ToggleButton) Mode() SelectionMode {
	return t.mode
}

// Len returns the number of configured options.
func (t *ToggleButton) Len() int {
	return len(t.options)
}

// HandleClick applies the selection policy for a click on option and then
// reports the full selection to the change callback.
//
// Clicks on options that were not configured are ignored, as are all clicks
// in SelectionModeNone; neither changes the selection or calls the callback.
func (t *ToggleButton) HandleClick(option Option) {
	key := option.Key()
	if _, ok := t.index[key]; !ok {
		internal.GetInternalLogger().Debug("Ignoring click on unknown option", "key", key)
		return
	}

	switch t.mode {
	case SelectionModeNone:
		return
	case SelectionModeSingle:
		for _, configured := range t.options {
			if configured.Key() == key {
				t.state.Insert(configured)
			} else {
				t.state.Remove(configured.Key())
			}
		}
	case SelectionModeMultiple:
		if t.state.Contains(key) {
			t.state.Remove(key)
		} else {
			t.state.Insert(t.options[t.index[key]])
		}
	}

	if t.onChange != nil {
		t.onChange(t.CurrentSelection())
	}
}

// HandleClickAt clicks the option at display position i. Out of range positions are ignored.
func (t *ToggleButton) HandleClickAt(i int) {
	if i < 0 || i >= len(t.options) {
		return
	}
	t.HandleClick(t.options[i])
}

// CurrentSelection returns a copy of the selected options in display order.
// Callers must treat it as an unordered set.
func (t *ToggleButton) CurrentSelection() []Option {
	return t.state.Snapshot(t.options)
}

// IsSelected reports whether option is currently selected.
func (t *ToggleButton) IsSelected(option Option) bool {
	return t.state.Contains(option.Key())
}
