package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton"
	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/locale"
)

func TestLoadDemo(t *testing.T) {
	cfg, err := Load("testdata/demo.toml")
	if err != nil {
		t.Fatal(err)
	}

	mode, err := cfg.SelectionMode()
	if err != nil {
		t.Fatal(err)
	}
	if mode != togglebutton.SelectionModeMultiple {
		t.Errorf("mode = %v, want multiple", mode)
	}
	if cfg.Title != "Inbox filter" || cfg.Locale != "de" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected header fields: %+v", cfg)
	}

	tr, err := locale.New(cfg.Locale)
	if err != nil {
		t.Fatal(err)
	}
	want := []togglebutton.Option{
		{Text: "Projekte", IconID: "star"},
		{Text: "Someday"},
		{Text: "Anstehend", IconID: "upcoming"},
	}
	if diff := cmp.Diff(want, cfg.ResolveOptions(tr)); diff != "" {
		t.Errorf("ResolveOptions mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(`title = "Plain"`)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "single" || cfg.LogLevel != "info" {
		t.Errorf("defaults not applied: mode=%q log_level=%q", cfg.Mode, cfg.LogLevel)
	}
	if diff := cmp.Diff(DefaultOptions(), cfg.Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestParseExplicitlyEmptyOptions(t *testing.T) {
	cfg, err := Parse(`option = []`)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Options) != 0 {
		t.Errorf("got %d options, want none", len(cfg.Options))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "unknown key", doc: "colour = \"red\"\nzoom = 2", want: "unknown keys: colour, zoom"},
		{name: "bad mode", doc: `mode = "several"`, want: "several"},
		{name: "bad color", doc: "[theme]\nborder = \"#12\"", want: "theme.border"},
		{name: "empty option", doc: "[[option]]\nicon = \"star\"", want: "option 0"},
		{name: "syntax", doc: `title = `, want: "config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.doc)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestThemeApply(t *testing.T) {
	base := togglebutton.DefaultTheme()
	got, err := ThemeConfig{SelectedTint: "#1E88E5", Divider: "#CCCCCC80"}.Apply(base)
	if err != nil {
		t.Fatal(err)
	}

	want := base
	want.SelectedTint = sdl.Color{R: 0x1E, G: 0x88, B: 0xE5, A: 255}
	want.DividerColor = sdl.Color{R: 0xCC, G: 0xCC, B: 0xCC, A: 0x80}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveOptionsWithoutTranslator(t *testing.T) {
	got := Default().ResolveOptions(nil)
	want := []togglebutton.Option{
		{Text: "Projects", IconID: "star"},
		{Text: "Upcoming", IconID: "upcoming"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
