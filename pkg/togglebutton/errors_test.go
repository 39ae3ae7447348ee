package togglebutton_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton"
)

func TestErrorHelpers(t *testing.T) {
	infra := togglebutton.NewInfrastructureError("init", errors.New("no display"))
	wrapped := fmt.Errorf("start demo: %w", infra)

	if !togglebutton.IsInfrastructureError(wrapped) {
		t.Error("wrapped infrastructure error not detected")
	}
	if got, want := infra.Error(), "togglebutton: init: no display"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if togglebutton.IsCancelled(wrapped) {
		t.Error("infrastructure error reported as cancelled")
	}
	if !togglebutton.IsCancelled(fmt.Errorf("screen: %w", togglebutton.ErrCancelled)) {
		t.Error("wrapped ErrCancelled not detected")
	}
}

func TestInvalidConfigurationError(t *testing.T) {
	err := error(&togglebutton.InvalidConfigurationError{Key: "Projects", Index: 2, Reason: "duplicate key"})

	if !togglebutton.IsInvalidConfiguration(err) {
		t.Error("not matched by IsInvalidConfiguration")
	}
	want := `invalid toggle button configuration: option 2 ("Projects"): duplicate key`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var cfgErr *togglebutton.InvalidConfigurationError
	if !errors.As(fmt.Errorf("build: %w", err), &cfgErr) || cfgErr.Index != 2 {
		t.Errorf("errors.As failed or lost the index: %+v", cfgErr)
	}
}
