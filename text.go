package stage

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"strings"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
)

// DefaultCharacterSize is the character size a new Text starts with, in
// pixels.
const DefaultCharacterSize = 30

// Text draws a string under its Transformable state. The string is shaped
// and rasterized once through gg/text into an offscreen texture, then drawn
// like a sprite so the full affine transform (rotation, mirroring,
// non-uniform scale) applies. The raster is refreshed lazily whenever the
// string, font, size or color changes, using the same generation-counter
// memoization as the transform itself.
//
// Newlines split the string into lines advanced by the face's line height.
type Text struct {
	Transformable

	font  *Font
	str   string
	size  float64
	color gg.RGBA

	// gen counts content mutations, independently of the transform's own
	// counter.
	gen    uint64
	raster textRaster
}

// textRaster is the cached rasterization of a Text's content.
type textRaster struct {
	tex    *Texture
	width  float64
	height float64
	gen    uint64
	ok     bool
}

// NewText creates a text drawable. The font may be nil; drawing a font-less
// Text is a no-op.
func NewText(font *Font, str string) *Text {
	return &Text{
		Transformable: NewTransformable(),
		font:          font,
		str:           str,
		size:          DefaultCharacterSize,
		color:         gg.White,
	}
}

// String returns the displayed string.
func (t *Text) String() string { return t.str }

// SetString sets the displayed string.
func (t *Text) SetString(s string) {
	if t.str == s {
		return
	}
	t.str = s
	t.gen++
}

// Font returns the font.
func (t *Text) Font() *Font { return t.font }

// SetFont sets the font.
func (t *Text) SetFont(f *Font) {
	t.font = f
	t.gen++
}

// CharacterSize returns the character size in pixels.
func (t *Text) CharacterSize() float64 { return t.size }

// SetCharacterSize sets the character size in pixels.
func (t *Text) SetCharacterSize(size float64) {
	if t.size == size {
		return
	}
	t.size = size
	t.gen++
}

// Color returns the text color.
func (t *Text) Color() gg.RGBA { return t.color }

// SetColor sets the text color.
func (t *Text) SetColor(c gg.RGBA) {
	if t.color == c {
		return
	}
	t.color = c
	t.gen++
}

// ensureRaster refreshes the cached rasterization if the content changed.
func (t *Text) ensureRaster() *textRaster {
	if t.raster.ok && t.raster.gen == t.gen {
		return &t.raster
	}
	if t.font == nil || t.str == "" {
		t.raster = textRaster{gen: t.gen, ok: true}
		return &t.raster
	}

	face := t.font.Face(t.size)
	metrics := face.Metrics()
	lineHeight := metrics.Ascent + metrics.Descent + metrics.LineGap
	lines := strings.Split(t.str, "\n")

	width := 0.0
	for _, line := range lines {
		width = math.Max(width, face.Advance(line))
	}
	height := metrics.Ascent + metrics.Descent + lineHeight*float64(len(lines)-1)

	w := int(math.Ceil(width))
	h := int(math.Ceil(height))
	if w <= 0 || h <= 0 {
		t.raster = textRaster{gen: t.gen, ok: true}
		return &t.raster
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	baseline := metrics.Ascent
	for _, line := range lines {
		ggtext.Draw(img, line, face, 0, baseline, t.color.Color())
		baseline += lineHeight
	}

	Logger().Debug("text raster refreshed",
		slog.String("font", t.font.Name()),
		slog.Int("width", w),
		slog.Int("height", h),
	)

	t.raster = textRaster{
		tex:    NewTextureFromImage(img),
		width:  width,
		height: height,
		gen:    t.gen,
		ok:     true,
	}
	return &t.raster
}

// LocalBounds returns the untransformed bounds of the rendered string,
// anchored at the local origin with the first baseline at the face's ascent.
func (t *Text) LocalBounds() Rect {
	r := t.ensureRaster()
	if r.tex == nil {
		return EmptyRect()
	}
	return RectFromSize(0, 0, r.width, r.height)
}

// GlobalBounds returns the axis-aligned enclosure of the four transformed
// corners of LocalBounds.
func (t *Text) GlobalBounds() Rect {
	return t.LocalBounds().Transformed(t.Transform())
}

// Draw renders the text onto c.
func (t *Text) Draw(c *Canvas, state RenderState) error {
	r := t.ensureRaster()
	if r.tex == nil {
		return nil
	}

	m := state.Transform.Multiply(t.Transform())
	inv := m.Invert()
	tex := r.tex

	brush := gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		local := inv.TransformPoint(gg.Pt(x, y))
		return tex.At(local.X, local.Y)
	}).WithName("text")

	dc := c.ctx
	popBlend := pushBlend(dc, state)
	dc.Push()
	dc.SetTransform(m)
	dc.MoveTo(0, 0)
	dc.LineTo(r.width, 0)
	dc.LineTo(r.width, r.height)
	dc.LineTo(0, r.height)
	dc.ClosePath()
	dc.SetFillBrush(fadeBrush(brush, state.Opacity))
	err := dc.Fill()
	dc.Pop()
	popBlend()
	if err != nil {
		return fmt.Errorf("stage: draw text: %w", err)
	}
	return nil
}
