package togglebutton

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"path"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed icons/*.svg
var builtinIcons embed.FS

var (
	iconsOnce sync.Once
	iconsMu   sync.RWMutex
	iconSVGs  map[string][]byte
)

func loadBuiltinIcons() {
	iconsOnce.Do(func() {
		iconSVGs = make(map[string][]byte)
		entries, err := builtinIcons.ReadDir("icons")
		if err != nil {
			return
		}
		for _, e := range entries {
			data, err := builtinIcons.ReadFile(path.Join("icons", e.Name()))
			if err != nil {
				continue
			}
			iconSVGs[strings.TrimSuffix(e.Name(), ".svg")] = data
		}
	})
}

// RegisterIcon makes an SVG available to options under id, replacing any
// icon already registered with that id. The SVG is parsed once here so that
// broken icons are reported at registration rather than while drawing.
func RegisterIcon(id string, svg []byte) error {
	if id == "" {
		return fmt.Errorf("register icon: empty id")
	}
	if _, err := oksvg.ReadIconStream(bytes.NewReader(svg)); err != nil {
		return fmt.Errorf("register icon %q: %w", id, err)
	}

	loadBuiltinIcons()
	iconsMu.Lock()
	defer iconsMu.Unlock()
	iconSVGs[id] = append([]byte(nil), svg...)
	return nil
}

// LookupIcon returns the SVG source registered for id.
func LookupIcon(id string) ([]byte, bool) {
	loadBuiltinIcons()
	iconsMu.RLock()
	defer iconsMu.RUnlock()
	svg, ok := iconSVGs[id]
	return svg, ok
}

// RasterizeIcon renders svg into a size×size alpha mask: every covered pixel
// is white and only alpha carries the shape, so the result can be tinted.
func RasterizeIcon(svg []byte, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("rasterize icon: invalid size %d", size)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("rasterize icon: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	mask := &image.NRGBA{Pix: rgba.Pix, Stride: rgba.Stride, Rect: rgba.Rect}
	for i := 0; i < len(mask.Pix); i += 4 {
		if mask.Pix[i+3] == 0 {
			mask.Pix[i], mask.Pix[i+1], mask.Pix[i+2] = 0, 0, 0
			continue
		}
		mask.Pix[i], mask.Pix[i+1], mask.Pix[i+2] = 255, 255, 255
	}
	return mask, nil
}
