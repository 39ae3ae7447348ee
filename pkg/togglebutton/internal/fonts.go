package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes before window scaling.
type FontSizes struct {
	Small  int
	Medium int
	Large  int
}

var DefaultFontSizes = FontSizes{
	Small:  14,
	Medium: 16,
	Large:  20,
}

// fallbackFontPaths are tried in order when the theme names no font or the
// themed font cannot be opened.
var fallbackFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

type fontsManager struct {
	SmallFont  *ttf.Font
	MediumFont *ttf.Font
	LargeFont  *ttf.Font
}

var Fonts fontsManager

// ResolveFontPath returns the first readable font among the preferred path and
// the fallbacks.
func ResolveFontPath(preferred string, fallbacks []string) (string, error) {
	candidates := append([]string{}, fallbacks...)
	if preferred != "" {
		candidates = append([]string{preferred}, candidates...)
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", errors.New("no usable font found")
}

func initFonts(sizes FontSizes) error {
	path, err := ResolveFontPath(GetTheme().FontPath, fallbackFontPaths)
	if err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	scale := GetScaleFactor()
	open := func(size int) (*ttf.Font, error) {
		return ttf.OpenFont(path, int(float32(size)*scale))
	}

	if Fonts.SmallFont, err = open(sizes.Small); err != nil {
		return fmt.Errorf("open font %s: %w", path, err)
	}
	if Fonts.MediumFont, err = open(sizes.Medium); err != nil {
		return fmt.Errorf("open font %s: %w", path, err)
	}
	if Fonts.LargeFont, err = open(sizes.Large); err != nil {
		return fmt.Errorf("open font %s: %w", path, err)
	}

	GetInternalLogger().Debug("Fonts loaded", "path", path, "scale", scale)
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{Fonts.SmallFont, Fonts.MediumFont, Fonts.LargeFont} {
		if f != nil {
			f.Close()
		}
	}
	Fonts = fontsManager{}
}
