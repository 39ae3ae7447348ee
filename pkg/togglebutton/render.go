package togglebutton

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/constants"
	"github.com/BrandonKowalski/togglebutton/pkg/togglebutton/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// toggleView draws a ToggleButton with SDL and remembers where each segment
// landed so clicks can be mapped back to options.
type toggleView struct {
	button      *ToggleButton
	font        *ttf.Font
	theme       internal.Theme
	metrics     layoutMetrics
	iconPadding internal.Padding

	textures     *internal.TextureCache
	iconTextures map[string]*sdl.Texture
	missingIcons map[string]bool

	placements []Placement
	bounds     sdl.Rect
}

func newToggleView(button *ToggleButton, font *ttf.Font, theme internal.Theme) *toggleView {
	scale := internal.GetScaleFactor()
	s := func(v int32) int32 { return int32(float32(v)*scale + 0.5) }

	return &toggleView{
		button: button,
		font:   font,
		theme:  theme,
		metrics: layoutMetrics{
			Height:       s(constants.ToggleHeight),
			Border:       s(constants.ToggleBorderWidth),
			PaddingX:     s(constants.SegmentPaddingX),
			DividerWidth: s(constants.DividerWidth),
			MinWidth:     s(constants.ToggleHeight),
		},
		iconPadding: internal.Padding{
			Top:    constants.IconPaddingVertical,
			Right:  constants.IconPaddingRight,
			Bottom: constants.IconPaddingVertical,
			Left:   constants.IconPaddingLeft,
		}.Scale(scale),
		textures:     internal.NewTextureCacheWithSize(2*button.Len() + 1),
		iconTextures: make(map[string]*sdl.Texture),
		missingIcons: make(map[string]bool),
	}
}

// iconSize matches the label height but never overflows the segment.
func (v *toggleView) iconSize() int32 {
	size := int32(v.font.Height())
	if limit := v.metrics.Height - 2*v.metrics.Border - v.iconPadding.Vertical(); size > limit {
		size = limit
	}
	return size
}

// contentWidth is the label width plus the icon and its padding, if any.
func (v *toggleView) contentWidth(option Option) int32 {
	w, _, err := v.font.SizeUTF8(option.Text)
	if err != nil {
		w = 0
	}
	width := int32(w)
	if v.hasIcon(option) {
		width += v.iconPadding.Horizontal() + v.iconSize()
	}
	return width
}

func (v *toggleView) hasIcon(option Option) bool {
	if !option.HasIcon() {
		return false
	}
	if _, ok := LookupIcon(option.IconID); ok {
		return true
	}
	if !v.missingIcons[option.IconID] {
		v.missingIcons[option.IconID] = true
		internal.GetInternalLogger().Warn("Unknown icon, rendering label only", "icon", option.IconID, "option", option.Key())
	}
	return false
}

// layout recomputes placements with the pill centered on center.
func (v *toggleView) layout(center sdl.Point) {
	options := v.button.options
	widths := make([]int32, len(options))
	for i, option := range options {
		widths[i] = v.contentWidth(option)
	}

	_, bounds := layoutToggle(sdl.Point{}, widths, v.metrics)
	v.placements, v.bounds = layoutToggle(centeredOrigin(center, bounds.W, bounds.H), widths, v.metrics)
}

// segmentAt maps a point to the option index under it.
func (v *toggleView) segmentAt(x, y int32) (int, bool) {
	return hitTest(v.placements, x, y)
}

// tint picks the selected or unselected color for option. Nothing else affects it.
func (v *toggleView) tint(option Option) sdl.Color {
	if v.button.IsSelected(option) {
		return v.theme.SelectedTint
	}
	return v.theme.UnselectedTint
}

// render draws the pill, every segment and every divider. focused is the
// option index that gets a focus ring, or -1.
func (v *toggleView) render(renderer *sdl.Renderer, center sdl.Point, focused int) {
	v.layout(center)

	internal.DrawPill(renderer, v.bounds, v.metrics.Border, v.theme.BorderColor, v.theme.BackgroundColor)

	for _, p := range v.placements {
		switch p.Kind {
		case ElementSegment:
			v.renderSegment(renderer, p, p.Index == focused)
		case ElementDivider:
			c := v.theme.DividerColor
			renderer.SetDrawColor(c.R, c.G, c.B, c.A)
			renderer.FillRect(&p.Rect)
		}
	}
}

func (v *toggleView) renderSegment(renderer *sdl.Renderer, p Placement, focused bool) {
	option := v.button.options[p.Index]
	color := v.tint(option)
	selected := v.button.IsSelected(option)

	x := p.Rect.X + v.metrics.PaddingX
	midY := p.Rect.Y + p.Rect.H/2

	if label := v.labelTexture(renderer, option, selected, color); label != nil {
		_, _, w, h, err := label.Query()
		if err == nil {
			renderer.Copy(label, nil, &sdl.Rect{X: x, Y: midY - h/2, W: w, H: h})
			x += w
		}
	}

	if v.hasIcon(option) {
		size := v.iconSize()
		if icon := v.iconTexture(renderer, option.IconID, size); icon != nil {
			icon.SetColorMod(color.R, color.G, color.B)
			icon.SetAlphaMod(color.A)
			renderer.Copy(icon, nil, &sdl.Rect{X: x + v.iconPadding.Left, Y: midY - size/2, W: size, H: size})
		}
	}

	if focused {
		inset := internal.Scaled(constants.FocusRingInset)
		ring := sdl.Rect{X: p.Rect.X + inset, Y: p.Rect.Y + inset, W: p.Rect.W - 2*inset, H: p.Rect.H - 2*inset}
		internal.DrawFrame(renderer, ring, internal.Scaled(1), v.theme.AccentColor)
	}
}

func (v *toggleView) labelTexture(renderer *sdl.Renderer, option Option, selected bool, color sdl.Color) *sdl.Texture {
	if option.Text == "" {
		return nil
	}
	key := fmt.Sprintf("%s|%t", option.Key(), selected)
	if t := v.textures.Get(key); t != nil {
		return t
	}

	surface, err := v.font.RenderUTF8Blended(option.Text, color)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render label", "option", option.Key(), "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to create label texture", "option", option.Key(), "error", err)
		return nil
	}
	v.textures.Set(key, texture)
	return texture
}

func (v *toggleView) iconTexture(renderer *sdl.Renderer, id string, size int32) *sdl.Texture {
	if t, ok := v.iconTextures[id]; ok {
		return t
	}

	texture, err := createIconTexture(renderer, id, size)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to load icon", "icon", id, "error", err)
		v.iconTextures[id] = nil
		return nil
	}
	v.iconTextures[id] = texture
	return texture
}

func createIconTexture(renderer *sdl.Renderer, id string, size int32) (*sdl.Texture, error) {
	svg, ok := LookupIcon(id)
	if !ok {
		return nil, fmt.Errorf("icon %q not registered", id)
	}

	mask, err := RasterizeIcon(svg, int(size))
	if err != nil {
		return nil, NewInfrastructureError("rasterize_icon", err)
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&mask.Pix[0]),
		size, size, 32, int32(mask.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, NewInfrastructureError("icon_surface", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	runtime.KeepAlive(mask)
	if err != nil {
		return nil, NewInfrastructureError("icon_texture", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

func (v *toggleView) destroy() {
	v.textures.Destroy()
	for _, t := range v.iconTextures {
		if t != nil {
			t.Destroy()
		}
	}
	v.iconTextures = nil
}
