package constants

// Built-in icon identifiers. Each resolves to an SVG embedded in the
// togglebutton package.
const (
	IconStar     = "star"
	IconUpcoming = "upcoming"
	IconCheck    = "check"
)
