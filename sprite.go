package stage

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Sprite draws a texture (or a sub-rectangle of one, for atlases) under its
// Transformable state. The texture is sampled through the inverse of the
// combined draw matrix, so rotation, mirroring and non-uniform scale all
// work the same way as for shapes.
type Sprite struct {
	Transformable

	tex  *Texture
	view *Texture // atlas sub-rectangle; nil means the whole texture
	tint gg.RGBA
}

// NewSprite creates a sprite for the given texture. The texture may be nil;
// drawing a texture-less sprite is a no-op.
func NewSprite(tex *Texture) *Sprite {
	return &Sprite{
		Transformable: NewTransformable(),
		tex:           tex,
		tint:          gg.White,
	}
}

// Texture returns the sprite's full texture.
func (s *Sprite) Texture() *Texture { return s.tex }

// SetTexture replaces the sprite's texture and clears any texture rectangle.
func (s *Sprite) SetTexture(tex *Texture) {
	s.tex = tex
	s.view = nil
}

// SetTextureRect restricts the sprite to a sub-rectangle of its texture.
func (s *Sprite) SetTextureRect(x, y, width, height int) {
	if s.tex == nil {
		return
	}
	s.view = s.tex.Sub(x, y, width, height)
}

// Tint returns the color modulating the texture, white by default.
func (s *Sprite) Tint() gg.RGBA { return s.tint }

// SetTint sets a color multiplied component-wise into every sampled texel.
func (s *Sprite) SetTint(c gg.RGBA) { s.tint = c }

// source returns the texture actually sampled when drawing.
func (s *Sprite) source() *Texture {
	if s.view != nil {
		return s.view
	}
	return s.tex
}

// LocalBounds returns the untransformed bounds: the texture rectangle placed
// at the local origin.
func (s *Sprite) LocalBounds() Rect {
	src := s.source()
	if src == nil {
		return EmptyRect()
	}
	w, h := src.Size()
	return RectFromSize(0, 0, float64(w), float64(h))
}

// GlobalBounds returns the axis-aligned enclosure of the four transformed
// corners of LocalBounds.
func (s *Sprite) GlobalBounds() Rect {
	return s.LocalBounds().Transformed(s.Transform())
}

// Draw renders the sprite onto c under state.Transform combined with the
// sprite's own transform.
func (s *Sprite) Draw(c *Canvas, state RenderState) error {
	src := s.source()
	lb := s.LocalBounds()
	if src == nil || lb.IsEmpty() {
		return nil
	}

	m := state.Transform.Multiply(s.Transform())
	inv := m.Invert()
	tint := s.tint

	brush := gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		local := inv.TransformPoint(gg.Pt(x, y))
		col := src.At(local.X, local.Y)
		col.R *= tint.R
		col.G *= tint.G
		col.B *= tint.B
		col.A *= tint.A
		return col
	}).WithName("sprite")

	dc := c.ctx
	popBlend := pushBlend(dc, state)
	dc.Push()
	dc.SetTransform(m)
	dc.MoveTo(lb.MinX, lb.MinY)
	dc.LineTo(lb.MaxX, lb.MinY)
	dc.LineTo(lb.MaxX, lb.MaxY)
	dc.LineTo(lb.MinX, lb.MaxY)
	dc.ClosePath()
	dc.SetFillBrush(fadeBrush(brush, state.Opacity))
	err := dc.Fill()
	dc.Pop()
	popBlend()
	if err != nil {
		return fmt.Errorf("stage: draw sprite: %w", err)
	}
	return nil
}
