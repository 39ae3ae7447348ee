// Package config loads the demo's TOML configuration.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton"
	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/constants"
	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/locale"
)

// Config is the demo configuration file.
type Config struct {
	Title                string         `toml:"title"`
	Locale               string         `toml:"locale"`
	Mode                 string         `toml:"mode"`
	LogLevel             string         `toml:"log_level"`
	LogPath              string         `toml:"log_path"`
	FontPath             string         `toml:"font_path"`
	BackgroundPath       string         `toml:"background_path"`
	Cannoli              bool           `toml:"cannoli"`
	FlipFaceButtons      bool           `toml:"flip_face_buttons"`
	HardwareButtonDevice string         `toml:"hardware_button_device"`
	Theme                ThemeConfig    `toml:"theme"`
	Options              []OptionConfig `toml:"option"`
}

// OptionConfig is one [[option]] table. Message, when set, is a message ID
// whose translation becomes the label; Text is used when there is none.
type OptionConfig struct {
	Text    string `toml:"text"`
	Message string `toml:"message"`
	Icon    string `toml:"icon"`
}

// ThemeConfig overrides theme colors with "#RRGGBB" or "#RRGGBBAA" strings.
type ThemeConfig struct {
	Accent         string `toml:"accent"`
	Text           string `toml:"text"`
	Hint           string `toml:"hint"`
	Background     string `toml:"background"`
	TitleBar       string `toml:"title_bar"`
	TitleText      string `toml:"title_text"`
	SelectedTint   string `toml:"selected_tint"`
	UnselectedTint string `toml:"unselected_tint"`
	Border         string `toml:"border"`
	Divider        string `toml:"divider"`
}

// DefaultOptions are the two options of the stock demo.
func DefaultOptions() []OptionConfig {
	return []OptionConfig{
		{Text: "Projects", Message: locale.MessageOptionProjects, Icon: constants.IconStar},
		{Text: "Upcoming", Message: locale.MessageOptionUpcoming, Icon: constants.IconUpcoming},
	}
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mode:     togglebutton.SelectionModeSingle.String(),
		LogLevel: "info",
		Options:  DefaultOptions(),
	}
}

// Load reads and validates a configuration file.
func Load(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return finish(cfg, md, path)
}

// Parse reads and validates configuration from a TOML document.
func Parse(doc string) (Config, error) {
	var cfg Config
	md, err := toml.Decode(doc, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return finish(cfg, md, "config")
}

func finish(cfg Config, md toml.MetaData, source string) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", source, strings.Join(keys, ", "))
	}

	if !md.IsDefined("option") {
		cfg.Options = DefaultOptions()
	}
	if cfg.Mode == "" {
		cfg.Mode = togglebutton.SelectionModeSingle.String()
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// Validate checks the values that can be checked without SDL.
func (c Config) Validate() error {
	if _, err := togglebutton.ParseSelectionMode(c.Mode); err != nil {
		return err
	}
	for i, o := range c.Options {
		if o.Text == "" && o.Message == "" {
			return fmt.Errorf("option %d: text or message is required", i)
		}
	}
	_, err := c.Theme.Apply(togglebutton.DefaultTheme())
	return err
}

// SelectionMode returns the configured mode.
func (c Config) SelectionMode() (togglebutton.SelectionMode, error) {
	return togglebutton.ParseSelectionMode(c.Mode)
}

// ResolveOptions turns the option tables into control options, translating labels.
func (c Config) ResolveOptions(tr *locale.Translator) []togglebutton.Option {
	options := make([]togglebutton.Option, 0, len(c.Options))
	for _, o := range c.Options {
		text := o.Text
		if o.Message != "" && tr != nil {
			text = tr.TextOr(o.Message, o.Text)
		}
		options = append(options, togglebutton.Option{Text: text, IconID: o.Icon})
	}
	return options
}

// Apply returns base with every non-empty color override parsed and set.
func (t ThemeConfig) Apply(base togglebutton.Theme) (togglebutton.Theme, error) {
	overrides := []struct {
		name  string
		value string
		dst   *sdl.Color
	}{
		{"accent", t.Accent, &base.AccentColor},
		{"text", t.Text, &base.TextColor},
		{"hint", t.Hint, &base.HintColor},
		{"background", t.Background, &base.BackgroundColor},
		{"title_bar", t.TitleBar, &base.TitleBarColor},
		{"title_text", t.TitleText, &base.TitleTextColor},
		{"selected_tint", t.SelectedTint, &base.SelectedTint},
		{"unselected_tint", t.UnselectedTint, &base.UnselectedTint},
		{"border", t.Border, &base.BorderColor},
		{"divider", t.Divider, &base.DividerColor},
	}

	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		c, err := togglebutton.ParseHexColor(o.value)
		if err != nil {
			return base, fmt.Errorf("theme.%s: %w", o.name, err)
		}
		*o.dst = c
	}
	return base, nil
}
