package stage

import "github.com/gogpu/gg"

// Drawable is anything that can render itself onto a Canvas. Implementations
// read the entity's own Transformable, combine it with the transform carried
// by the RenderState, and issue backend draw calls under the result.
type Drawable interface {
	Draw(c *Canvas, state RenderState) error
}

// RenderState carries per-draw parameters supplied by the caller (or by the
// Canvas itself, which seeds Transform with the active view's matrix).
type RenderState struct {
	// Transform is left-multiplied with the drawable's own transform.
	Transform gg.Matrix

	// Opacity scales the alpha of everything the drawable paints.
	// 1 is opaque, 0 invisible.
	Opacity float64

	// Blend selects how the drawable's pixels composite onto the canvas.
	// Anything other than BlendNormal renders through an offscreen layer.
	Blend gg.BlendMode
}

// DefaultRenderState returns an identity transform at full opacity with
// normal blending.
func DefaultRenderState() RenderState {
	return RenderState{
		Transform: gg.Identity(),
		Opacity:   1,
		Blend:     gg.BlendNormal,
	}
}

// pushBlend opens a compositing layer on dc when the state asks for a
// non-default blend mode. The returned func closes it; it is a no-op for
// BlendNormal, which draws straight onto the current surface.
func pushBlend(dc *gg.Context, state RenderState) func() {
	if state.Blend == gg.BlendNormal {
		return func() {}
	}
	dc.PushLayer(state.Blend, 1)
	return dc.PopLayer
}

// fadeBrush wraps b so that every sampled color has its alpha scaled by
// opacity. Returns b unchanged when no fading is needed.
func fadeBrush(b gg.Brush, opacity float64) gg.Brush {
	if opacity >= 1 {
		return b
	}
	if opacity <= 0 {
		return gg.Solid(gg.Transparent)
	}
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		c := b.ColorAt(x, y)
		c.A *= opacity
		return c
	}).WithName("fade")
}
