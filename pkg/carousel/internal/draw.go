package internal

import (
	"image"
	"image/color"
	"unsafe"

	"github.com/BrandonKowalski/carousel/pkg/carousel/constants"
	"github.com/BrandonKowalski/carousel/pkg/carousel/icon"
	"github.com/BrandonKowalski/carousel/pkg/carousel/layout"
	"github.com/BrandonKowalski/carousel/pkg/carousel/transition"
	"github.com/BrandonKowalski/carousel/pkg/carousel/widget"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

var labelPadding = Padding{Left: constants.DefaultTextPadding, Right: constants.DefaultTextPadding}

// Painter draws screens and navigation buttons. It owns the text and icon
// textures it creates.
type Painter struct {
	renderer *sdl.Renderer
	fonts    *Fonts
	cache    *TextureCache
	width    int32
	height   int32
}

// NewPainter creates a painter for the window opened by Init.
func NewPainter() *Painter {
	return &Painter{
		renderer: window.Renderer,
		fonts:    fonts,
		cache:    NewTextureCache(),
		width:    window.Width,
		height:   window.Height,
	}
}

func (p *Painter) Destroy() {
	p.cache.Destroy()
}

// DrawScreen draws a screen at its current position. Screens wholly outside
// the viewport are skipped.
func (p *Painter) DrawScreen(s *widget.Screen) {
	pos := s.Position()
	if pos.X >= p.width || pos.X+p.width <= 0 {
		return
	}

	bg := Or(s.Background, GetTheme().ScreenColor)
	p.fillRect(widget.Rect{X: pos.X, Y: pos.Y, W: p.width, H: p.height}, bg)

	for _, e := range s.Elements {
		p.DrawElement(e, pos)
	}
}

// DrawNavBar draws the window-level navigation buttons over everything else.
func (p *Painter) DrawNavBar(nav *widget.NavBar) {
	for _, b := range nav.Buttons() {
		p.DrawElement(b, transition.Origin)
		if b.Target == nav.Current() {
			p.outline(b.Bounds, b.Style.Radius, GetTheme().FocusColor)
		}
	}
}

// DrawElement draws e with its bounds shifted by origin.
func (p *Painter) DrawElement(e *widget.Element, origin transition.Point) {
	b := e.Bounds.Offset(origin)

	switch e.Kind {
	case layout.KindButton:
		p.drawButton(e, b)
	case layout.KindLabel:
		p.drawLabel(e, b)
	case layout.KindSlider:
		p.drawSlider(e, b)
	case layout.KindCheckBox:
		p.drawCheckBox(e, b)
	}
}

func (p *Painter) drawButton(e *widget.Element, b widget.Rect) {
	p.roundedFill(b, e.Style.Radius, Or(e.Fill(), GetTheme().AccentColor))
	if e.Style.BorderWidth > 0 {
		p.roundedBorder(b, e.Style, e.Style.BorderColor)
	}

	text := Or(e.Style.TextColor, GetTheme().TextColor)
	caption, hasCaption := p.text(e.Text, e.Style.FontSize, text)

	var glyph CachedTexture
	hasIcon := false
	if e.Icon != "" {
		glyph, hasIcon = p.icon(e.Icon, iconSize(b), text)
	}

	const gap = 6
	total := int32(0)
	if hasCaption {
		total += caption.W
	}
	if hasIcon {
		total += glyph.W
		if hasCaption {
			total += gap
		}
	}

	x := b.X + (b.W-total)/2
	if hasIcon {
		p.renderer.Copy(glyph.Texture, nil, &sdl.Rect{X: x, Y: b.Y + (b.H-glyph.H)/2, W: glyph.W, H: glyph.H})
		x += glyph.W + gap
	}
	if hasCaption {
		p.renderer.Copy(caption.Texture, nil, &sdl.Rect{X: x, Y: b.Y + (b.H-caption.H)/2, W: caption.W, H: caption.H})
	}
}

func (p *Painter) drawLabel(e *widget.Element, b widget.Rect) {
	if !e.Style.BackgroundColor.IsZero() {
		p.roundedFill(b, e.Style.Radius, ToSDL(e.Style.BackgroundColor))
	}
	if e.Style.BorderWidth > 0 {
		p.roundedBorder(b, e.Style, e.Style.BorderColor)
	}

	tex, ok := p.text(e.Text, e.Style.FontSize, Or(e.Style.TextColor, GetTheme().TextColor))
	if !ok {
		return
	}
	area := labelPadding.Apply(toSDLRect(b))
	p.copyLeft(tex, area)
}

func (p *Painter) drawSlider(e *widget.Element, b widget.Rect) {
	if e.Slider == nil {
		return
	}
	g := widget.LayoutSlider(b, *e.Slider)
	accent := Or(e.Style.AccentColor, GetTheme().AccentColor)
	groove := Or(e.Style.BorderColor, HexToColor(0xCCCCCC))

	p.roundedFill(g.Track, minRadius(g.Track), groove)
	if !g.Fill.Empty() {
		p.roundedFill(g.Fill, minRadius(g.Fill), accent)
	}
	for _, t := range g.Ticks {
		p.fillRect(t, Or(e.Style.TextColor, GetTheme().TextColor))
	}

	c := g.Thumb.Center()
	r := g.Thumb.W / 2
	gfx.FilledCircleColor(p.renderer, c.X, c.Y, r, HexToColor(0xFFFFFF))
	gfx.FilledCircleColor(p.renderer, c.X, c.Y, r-2, accent)
	gfx.AACircleColor(p.renderer, c.X, c.Y, r, groove)
}

func (p *Painter) drawCheckBox(e *widget.Element, b widget.Rect) {
	box, textX := widget.CheckBoxGeometry(b, e.Style.FontSize)
	border := Or(e.Style.BorderColor, HexToColor(0x888888))
	accent := Or(e.Style.AccentColor, GetTheme().AccentColor)

	p.roundedFill(box, 3, HexToColor(0xFFFFFF))
	p.outline(box, 3, border)

	if e.Checked {
		inner := box.Inset(3)
		p.roundedFill(inner, 2, accent)
		x0, y0 := inner.X+inner.W/5, inner.Y+inner.H/2
		x1, y1 := inner.X+inner.W*2/5, inner.Y+inner.H*3/4
		x2, y2 := inner.X+inner.W*4/5, inner.Y+inner.H/4
		mark := HexToColor(0xFFFFFF)
		gfx.ThickLineColor(p.renderer, x0, y0, x1, y1, 2, mark)
		gfx.ThickLineColor(p.renderer, x1, y1, x2, y2, 2, mark)
	}

	tex, ok := p.text(e.Text, e.Style.FontSize, Or(e.Style.TextColor, GetTheme().TextColor))
	if !ok {
		return
	}
	area := sdl.Rect{X: textX, Y: b.Y, W: b.X + b.W - textX, H: b.H}
	p.copyLeft(tex, area)
}

// copyLeft draws tex left-aligned and vertically centred in area, clipping
// it at the right edge.
func (p *Painter) copyLeft(tex CachedTexture, area sdl.Rect) {
	w := tex.W
	if w > area.W {
		w = area.W
	}
	src := &sdl.Rect{W: w, H: tex.H}
	p.renderer.Copy(tex.Texture, src, &sdl.Rect{X: area.X, Y: area.Y + (area.H-tex.H)/2, W: w, H: tex.H})
}

func (p *Painter) fillRect(r widget.Rect, c sdl.Color) {
	p.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	rect := toSDLRect(r)
	p.renderer.FillRect(&rect)
}

func (p *Painter) roundedFill(r widget.Rect, radius int32, c sdl.Color) {
	if r.Empty() {
		return
	}
	if radius <= 0 {
		gfx.BoxColor(p.renderer, r.X, r.Y, r.X+r.W-1, r.Y+r.H-1, c)
		return
	}
	gfx.RoundedBoxColor(p.renderer, r.X, r.Y, r.X+r.W-1, r.Y+r.H-1, radius, c)
}

func (p *Painter) roundedBorder(r widget.Rect, style layout.Style, c layout.Color) {
	for i := int32(0); i < style.BorderWidth; i++ {
		p.outline(r.Inset(i), style.Radius, ToSDL(c))
	}
}

func (p *Painter) outline(r widget.Rect, radius int32, c sdl.Color) {
	if r.Empty() || c.A == 0 {
		return
	}
	if radius <= 0 {
		gfx.RectangleColor(p.renderer, r.X, r.Y, r.X+r.W-1, r.Y+r.H-1, c)
		return
	}
	gfx.RoundedRectangleColor(p.renderer, r.X, r.Y, r.X+r.W-1, r.Y+r.H-1, radius, c)
}

// text returns the cached texture for a caption, rendering it on a miss.
func (p *Painter) text(s string, size int32, c sdl.Color) (CachedTexture, bool) {
	if s == "" {
		return CachedTexture{}, false
	}

	key := TextKey(s, size, c)
	if entry, ok := p.cache.Get(key); ok {
		return entry, true
	}

	font, err := p.fonts.Get(size)
	if err != nil {
		GetInternalLogger().Error("Failed to get font", "size", size, "error", err)
		return CachedTexture{}, false
	}

	surface, err := font.RenderUTF8Blended(s, c)
	if err != nil {
		GetInternalLogger().Error("Failed to render text", "text", s, "error", err)
		return CachedTexture{}, false
	}
	defer surface.Free()

	texture, err := p.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Error("Failed to create text texture", "text", s, "error", err)
		return CachedTexture{}, false
	}

	entry := CachedTexture{Texture: texture, W: surface.W, H: surface.H}
	p.cache.Set(key, entry)
	return entry, true
}

// icon returns the cached texture for a glyph, rasterizing it on a miss.
func (p *Painter) icon(name string, size int32, c sdl.Color) (CachedTexture, bool) {
	key := IconKey(name, size, c)
	if entry, ok := p.cache.Get(key); ok {
		return entry, true
	}

	img, err := icon.Rasterize(name, int(size), color.NRGBA(c))
	if err != nil {
		GetInternalLogger().Error("Failed to rasterize icon", "icon", name, "error", err)
		return CachedTexture{}, false
	}
	unpremultiply(img, c)

	texture, err := p.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), sdl.TEXTUREACCESS_STATIC, size, size)
	if err != nil {
		GetInternalLogger().Error("Failed to create icon texture", "icon", name, "error", err)
		return CachedTexture{}, false
	}
	if err := texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		texture.Destroy()
		GetInternalLogger().Error("Failed to upload icon", "icon", name, "error", err)
		return CachedTexture{}, false
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	entry := CachedTexture{Texture: texture, W: size, H: size}
	p.cache.Set(key, entry)
	return entry, true
}

// unpremultiply rewrites a tinted icon as straight alpha for BLENDMODE_BLEND.
func unpremultiply(img *image.RGBA, c sdl.Color) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i+3] == 0 {
			continue
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = c.R, c.G, c.B
	}
}

func iconSize(b widget.Rect) int32 {
	size := int32(constants.DefaultIconSize)
	if b.H-8 < size {
		size = b.H - 8
	}
	if size < 8 {
		size = 8
	}
	return size
}

func minRadius(r widget.Rect) int32 {
	if r.W < r.H {
		return r.W / 2
	}
	return r.H / 2
}

func toSDLRect(r widget.Rect) sdl.Rect {
	return sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
