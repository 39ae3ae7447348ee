package togglebutton

// SelectionState holds the currently selected options keyed by Option.Key.
// It is owned by exactly one ToggleButton and is only mutated by its click policy.
type SelectionState struct {
	selected map[string]Option
}

func newSelectionState() *SelectionState {
	return &SelectionState{selected: make(map[string]Option)}
}

// Insert marks the option as selected, replacing any entry with the same key.
func (s *SelectionState) Insert(option Option) {
	s.selected[option.Key()] = option
}

// Remove drops the option from the selection. Removing an absent key is a no-op.
func (s *SelectionState) Remove(key string) {
	delete(s.selected, key)
}

// Contains reports whether the key is selected.
func (s *SelectionState) Contains(key string) bool {
	_, ok := s.selected[key]
	return ok
}

// Len returns the number of selected options.
func (s *SelectionState) Len() int {
	return len(s.selected)
}

// Snapshot returns a copy of the selection in the given display order.
// Keys not present in order are not returned; the state never holds such keys.
func (s *SelectionState) Snapshot(order []Option) []Option {
	out := make([]Option, 0, len(s.selected))
	for _, option := range order {
		if selected, ok := s.selected[option.Key()]; ok {
			out = append(out, selected)
		}
	}
	return out
}
