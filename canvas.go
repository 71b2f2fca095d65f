package stage

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gg"
)

// Canvas is an offscreen render target. It owns a gg drawing context and an
// active View whose matrix is combined with every draw. All rasterization
// happens in the backend; Canvas only manages the transform chain
//
//	viewport pixels · view · render state · drawable
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	ctx    *gg.Context
	view   View
	width  int
	height int
}

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	ctxOpts []gg.ContextOption
}

// WithRenderer injects a custom gg renderer (e.g. a GPU backend) into the
// canvas's drawing context.
func WithRenderer(r gg.Renderer) CanvasOption {
	return func(o *canvasOptions) {
		o.ctxOpts = append(o.ctxOpts, gg.WithRenderer(r))
	}
}

// NewCanvas creates a canvas of the given pixel size with the default view
// (the whole canvas, unrotated, one world unit per pixel).
func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("stage: invalid canvas size %dx%d", width, height)
	}
	var o canvasOptions
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{
		ctx:    gg.NewContext(width, height, o.ctxOpts...),
		view:   NewView(gg.Pt(float64(width)/2, float64(height)/2), gg.Pt(float64(width), float64(height))),
		width:  width,
		height: height,
	}
	Logger().Debug("canvas created",
		slog.Int("width", width),
		slog.Int("height", height),
	)
	return c, nil
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Context returns the underlying gg drawing context for direct backend
// drawing. The canvas's view is not applied to calls made on it.
func (c *Canvas) Context() *gg.Context {
	return c.ctx
}

// View returns the active view.
func (c *Canvas) View() View {
	return c.view
}

// SetView replaces the active view. It affects every subsequent draw.
func (c *Canvas) SetView(v View) {
	c.view = v
}

// ResetView restores the default view: the whole canvas, one world unit per
// pixel.
func (c *Canvas) ResetView() {
	c.view = NewView(
		gg.Pt(float64(c.width)/2, float64(c.height)/2),
		gg.Pt(float64(c.width), float64(c.height)),
	)
}

// viewTransform returns the full world-to-pixel matrix for the active view:
// the view's unit-square mapping scaled into its viewport's pixel rectangle.
func (c *Canvas) viewTransform() gg.Matrix {
	vp := c.view.Viewport()
	px := RectFromSize(
		vp.MinX*float64(c.width),
		vp.MinY*float64(c.height),
		vp.Width()*float64(c.width),
		vp.Height()*float64(c.height),
	)
	return gg.Translate(px.MinX, px.MinY).
		Multiply(gg.Scale(px.Width(), px.Height())).
		Multiply(c.view.Transform())
}

// Clear fills the whole canvas with a color, ignoring the view.
func (c *Canvas) Clear(col gg.RGBA) {
	c.ctx.ClearWithColor(col)
}

// Draw renders a drawable under the active view with default render state.
func (c *Canvas) Draw(d Drawable) error {
	return c.DrawWithState(d, DefaultRenderState())
}

// DrawWithState renders a drawable with a caller-supplied render state. The
// state's transform is applied in world space, between the view and the
// drawable's own transform.
func (c *Canvas) DrawWithState(d Drawable, state RenderState) error {
	if d == nil {
		return nil
	}
	state.Transform = c.viewTransform().Multiply(state.Transform)
	return d.Draw(c, state)
}

// MapPixelToCoords converts a canvas pixel position to world coordinates
// under the active view.
func (c *Canvas) MapPixelToCoords(p gg.Point) gg.Point {
	return c.viewTransform().Invert().TransformPoint(p)
}

// MapCoordsToPixel converts world coordinates to a canvas pixel position
// under the active view.
func (c *Canvas) MapCoordsToPixel(p gg.Point) gg.Point {
	return c.viewTransform().TransformPoint(p)
}

// Image returns the rendered pixels as a standard image.
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// SavePNG writes the rendered pixels to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("stage: save canvas: %w", err)
	}
	return nil
}

// Close releases backend resources held by the drawing context.
func (c *Canvas) Close() error {
	if err := c.ctx.Close(); err != nil {
		Logger().Warn("canvas close failed", slog.String("error", err.Error()))
		return fmt.Errorf("stage: close canvas: %w", err)
	}
	return nil
}
