package togglebutton

// ToggleAction represents how the user left a ToggleScreen.
type ToggleAction int

const (
	ToggleActionConfirmed ToggleAction = iota // User confirmed the selection (Start button)
	ToggleActionTriggered                     // User pressed the action button (X button)
)

// ToggleScreenResult is returned when a ToggleScreen exits without being cancelled.
type ToggleScreenResult struct {
	Selected []Option    // Selection at exit, in display order
	Action   ToggleAction
}
