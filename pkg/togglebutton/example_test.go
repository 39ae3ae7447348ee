package togglebutton_test

import (
	"fmt"

	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton"
)

func labels(options []togglebutton.Option) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		out = append(out, o.Text)
	}
	return out
}

// Example shows the single-select demo control: each click selects exactly
// the clicked option.
func Example() {
	options := []togglebutton.Option{
		{Text: "Projects", IconID: "star"},
		{Text: "Upcoming", IconID: "upcoming"},
	}

	button, err := togglebutton.New(options, togglebutton.SelectionModeSingle, func(selected []togglebutton.Option) {
		fmt.Println("selected:", labels(selected))
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	button.HandleClick(options[0])
	button.HandleClick(options[1])
	button.HandleClick(options[1])

	// Output:
	// selected: [Projects]
	// selected: [Upcoming]
	// selected: [Upcoming]
}

// Example_multiple demonstrates checkbox-like toggling.
func Example_multiple() {
	options := []togglebutton.Option{{Text: "Bold"}, {Text: "Italic"}, {Text: "Underline"}}

	button, _ := togglebutton.New(options, togglebutton.SelectionModeMultiple, func(selected []togglebutton.Option) {
		fmt.Println("selected:", labels(selected))
	})

	button.HandleClick(options[2])
	button.HandleClick(options[0])
	button.HandleClick(options[2])

	// Output:
	// selected: [Underline]
	// selected: [Bold Underline]
	// selected: [Bold]
}

// ExampleElements prints the draw order for a three option control.
func ExampleElements() {
	for _, el := range togglebutton.Elements(3) {
		fmt.Println(el.Kind, el.Index)
	}

	// Output:
	// segment 0
	// divider 0
	// segment 1
	// divider 1
	// segment 2
}

func ExampleNew_duplicate() {
	_, err := togglebutton.New([]togglebutton.Option{{Text: "Inbox"}, {Text: "Inbox"}}, togglebutton.SelectionModeSingle, nil)
	fmt.Println(togglebutton.IsInvalidConfiguration(err))
	fmt.Println(err)

	// Output:
	// true
	// invalid toggle button configuration: option 1 ("Inbox"): duplicate key
}
