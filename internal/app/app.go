// Package app wires the toggle button demo together: configuration,
// translations, the control, and the screen that hosts it.
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/togglebutton/internal/config"
	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton"
	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/locale"
	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/platform/cannoli"
)

// Demo is a fully configured demo that has not touched SDL yet.
type Demo struct {
	Config     config.Config
	Title      string
	Help       string
	Button     *togglebutton.ToggleButton
	Translator *locale.Translator

	logger  *slog.Logger
	changes int
}

// Build resolves translations and constructs the control. It does not open a window.
func Build(cfg config.Config, logger *slog.Logger) (*Demo, error) {
	tr, err := locale.New(cfg.Locale)
	if err != nil {
		return nil, err
	}

	mode, err := cfg.SelectionMode()
	if err != nil {
		return nil, err
	}

	d := &Demo{
		Config:     cfg,
		Title:      cfg.Title,
		Help:       tr.Text(locale.MessageHelp),
		Translator: tr,
		logger:     logger,
	}
	if d.Title == "" {
		d.Title = tr.Text(locale.MessageTitle)
	}

	d.Button, err = togglebutton.New(cfg.ResolveOptions(tr), mode, d.onChange)
	if err != nil {
		return nil, fmt.Errorf("build toggle button: %w", err)
	}
	return d, nil
}

func (d *Demo) onChange(selected []togglebutton.Option) {
	d.changes++
	labels := make([]string, 0, len(selected))
	for _, o := range selected {
		labels = append(labels, o.Text)
	}
	d.logger.Info(d.Translator.Text(locale.MessageSelectionChanged),
		"mode", d.Button.Mode().String(),
		"selected", labels,
	)
}

// Changes returns how many selection changes have been reported.
func (d *Demo) Changes() int {
	return d.changes
}

// InitOptions maps the configuration onto toolkit options.
func (d *Demo) InitOptions() (togglebutton.Options, error) {
	opts := togglebutton.Options{
		WindowTitle:          d.Title,
		ShowBackground:       d.Config.BackgroundPath != "",
		IsCannoli:            d.Config.Cannoli,
		FontPath:             d.Config.FontPath,
		LogPath:              d.Config.LogPath,
		FlipFaceButtons:      d.Config.FlipFaceButtons,
		HardwareButtonDevice: d.Config.HardwareButtonDevice,
	}

	base := togglebutton.DefaultTheme()
	if d.Config.Cannoli {
		base = cannoli.InitCannoliTheme(cannoli.DefaultFontPath)
	}
	theme, err := d.Config.Theme.Apply(base)
	if err != nil {
		return opts, err
	}
	theme.BackgroundImagePath = d.Config.BackgroundPath
	opts.Theme = &theme
	return opts, nil
}

// Run opens the window, shows the control until the user leaves, and closes SDL.
// A cancelled screen is not an error.
func (d *Demo) Run() (*togglebutton.ToggleScreenResult, error) {
	opts, err := d.InitOptions()
	if err != nil {
		return nil, err
	}
	if err := togglebutton.Init(opts); err != nil {
		return nil, err
	}
	defer togglebutton.Close()

	result, err := togglebutton.ToggleScreen(d.Title, d.Button, togglebutton.ToggleScreenSettings{
		HelpText: d.Help,
	})
	if errors.Is(err, togglebutton.ErrCancelled) {
		d.logger.Info("Demo cancelled", "changes", d.changes)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(result.Selected))
	for _, o := range result.Selected {
		labels = append(labels, o.Text)
	}
	d.logger.Info("Demo confirmed", "selected", labels, "changes", d.changes)
	return result, nil
}
