package stage

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// shapeStyle is the paint state shared by all shape drawables: a fill brush,
// an optional outline brush and the outline thickness in local units.
type shapeStyle struct {
	fill      gg.Brush
	outline   gg.Brush
	thickness float64
}

func defaultShapeStyle() shapeStyle {
	return shapeStyle{
		fill:    gg.Solid(gg.White),
		outline: gg.Solid(gg.Transparent),
	}
}

// FillBrush returns the brush used for the interior.
func (s *shapeStyle) FillBrush() gg.Brush { return s.fill }

// SetFillBrush sets the interior brush. Any gg brush works, including
// gradients and custom brushes.
func (s *shapeStyle) SetFillBrush(b gg.Brush) { s.fill = b }

// SetFillColor sets a solid interior color.
func (s *shapeStyle) SetFillColor(c gg.RGBA) { s.fill = gg.Solid(c) }

// OutlineBrush returns the brush used for the outline.
func (s *shapeStyle) OutlineBrush() gg.Brush { return s.outline }

// SetOutlineBrush sets the outline brush.
func (s *shapeStyle) SetOutlineBrush(b gg.Brush) { s.outline = b }

// SetOutlineColor sets a solid outline color.
func (s *shapeStyle) SetOutlineColor(c gg.RGBA) { s.outline = gg.Solid(c) }

// OutlineThickness returns the outline width in local units.
func (s *shapeStyle) OutlineThickness() float64 { return s.thickness }

// SetOutlineThickness sets the outline width in local units. The stroke is
// centered on the shape's edge and scales with the shape's transform. Zero
// or negative disables the outline.
func (s *shapeStyle) SetOutlineThickness(t float64) { s.thickness = t }

// maxScaleFactor returns the largest factor by which m stretches any
// direction, taken from the column norms of its linear part. Used to convert
// outline widths from local to device units.
func maxScaleFactor(m gg.Matrix) float64 {
	sx := math.Hypot(m.A, m.D)
	sy := math.Hypot(m.B, m.E)
	return math.Max(sx, sy)
}

// vertexBounds returns the axis-aligned bounds of a vertex list.
func vertexBounds(points []gg.Point) Rect {
	out := EmptyRect()
	for _, p := range points {
		out = out.UnionPoint(p)
	}
	return out
}

// drawOutlined fills and strokes a closed vertex loop under the combined
// matrix m. The stroke width is converted to device units with the matrix's
// largest scale factor, matching how the filled area grows.
func drawOutlined(c *Canvas, m gg.Matrix, style shapeStyle, state RenderState, points []gg.Point) error {
	if len(points) < 3 {
		return nil
	}

	dc := c.ctx
	popBlend := pushBlend(dc, state)
	dc.Push()
	dc.SetTransform(m)
	dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()

	dc.SetFillBrush(fadeBrush(style.fill, state.Opacity))
	err := dc.FillPreserve()
	if err == nil && style.thickness > 0 {
		dc.SetStrokeBrush(fadeBrush(style.outline, state.Opacity))
		dc.SetLineWidth(style.thickness * maxScaleFactor(m))
		err = dc.Stroke()
	} else {
		dc.ClearPath()
	}
	dc.Pop()
	popBlend()
	return err
}

// RectangleShape is an axis-aligned (pre-transform) filled rectangle with
// its top-left corner at the local origin.
type RectangleShape struct {
	Transformable
	shapeStyle

	size gg.Point
}

// NewRectangleShape creates a rectangle of the given size.
func NewRectangleShape(size gg.Point) *RectangleShape {
	return &RectangleShape{
		Transformable: NewTransformable(),
		shapeStyle:    defaultShapeStyle(),
		size:          size,
	}
}

// Size returns the rectangle dimensions.
func (r *RectangleShape) Size() gg.Point { return r.size }

// SetSize sets the rectangle dimensions.
func (r *RectangleShape) SetSize(size gg.Point) { r.size = size }

func (r *RectangleShape) points() []gg.Point {
	return []gg.Point{
		{X: 0, Y: 0},
		{X: r.size.X, Y: 0},
		{X: r.size.X, Y: r.size.Y},
		{X: 0, Y: r.size.Y},
	}
}

// LocalBounds returns (0, 0, size.X, size.Y) inflated by the outline.
func (r *RectangleShape) LocalBounds() Rect {
	return RectFromSize(0, 0, r.size.X, r.size.Y).Inflate(r.thickness / 2)
}

// GlobalBounds returns the enclosure of the four transformed corners of
// LocalBounds.
func (r *RectangleShape) GlobalBounds() Rect {
	return r.LocalBounds().Transformed(r.Transform())
}

// Draw renders the rectangle onto c.
func (r *RectangleShape) Draw(c *Canvas, state RenderState) error {
	m := state.Transform.Multiply(r.Transform())
	if err := drawOutlined(c, m, r.shapeStyle, state, r.points()); err != nil {
		return fmt.Errorf("stage: draw rectangle: %w", err)
	}
	return nil
}

// CircleShape is a filled circle approximated by a regular polygon. Its
// local bounds span (0, 0) to (2r, 2r), so the default origin is the
// top-left of the enclosing square, not the center.
type CircleShape struct {
	Transformable
	shapeStyle

	radius     float64
	pointCount int
}

// defaultCirclePoints is the default polygon resolution for circles.
const defaultCirclePoints = 30

// NewCircleShape creates a circle with the given radius.
func NewCircleShape(radius float64) *CircleShape {
	return &CircleShape{
		Transformable: NewTransformable(),
		shapeStyle:    defaultShapeStyle(),
		radius:        radius,
		pointCount:    defaultCirclePoints,
	}
}

// Radius returns the circle radius.
func (c *CircleShape) Radius() float64 { return c.radius }

// SetRadius sets the circle radius.
func (c *CircleShape) SetRadius(r float64) { c.radius = r }

// PointCount returns the polygon resolution.
func (c *CircleShape) PointCount() int { return c.pointCount }

// SetPointCount sets the polygon resolution. Values below 3 are raised to 3.
func (c *CircleShape) SetPointCount(n int) {
	if n < 3 {
		n = 3
	}
	c.pointCount = n
}

func (c *CircleShape) points() []gg.Point {
	pts := make([]gg.Point, c.pointCount)
	step := 2 * math.Pi / float64(c.pointCount)
	for i := range pts {
		angle := step * float64(i)
		pts[i] = gg.Pt(
			c.radius+c.radius*math.Cos(angle),
			c.radius+c.radius*math.Sin(angle),
		)
	}
	return pts
}

// LocalBounds returns (0, 0, 2r, 2r) inflated by the outline.
func (c *CircleShape) LocalBounds() Rect {
	d := 2 * c.radius
	return RectFromSize(0, 0, d, d).Inflate(c.thickness / 2)
}

// GlobalBounds returns the enclosure of the four transformed corners of
// LocalBounds.
func (c *CircleShape) GlobalBounds() Rect {
	return c.LocalBounds().Transformed(c.Transform())
}

// Draw renders the circle onto cv.
func (c *CircleShape) Draw(cv *Canvas, state RenderState) error {
	m := state.Transform.Multiply(c.Transform())
	if err := drawOutlined(cv, m, c.shapeStyle, state, c.points()); err != nil {
		return fmt.Errorf("stage: draw circle: %w", err)
	}
	return nil
}

// ConvexShape is a filled polygon with caller-supplied vertices in local
// space. Vertices must describe a convex loop in order; concave input is not
// rejected but may fill with artifacts.
type ConvexShape struct {
	Transformable
	shapeStyle

	vertices []gg.Point
}

// NewConvexShape creates a polygon with the given vertices.
func NewConvexShape(vertices ...gg.Point) *ConvexShape {
	return &ConvexShape{
		Transformable: NewTransformable(),
		shapeStyle:    defaultShapeStyle(),
		vertices:      vertices,
	}
}

// PointCount returns the number of vertices.
func (s *ConvexShape) PointCount() int { return len(s.vertices) }

// Point returns the i-th vertex, or a zero point if i is out of range.
func (s *ConvexShape) Point(i int) gg.Point {
	if i < 0 || i >= len(s.vertices) {
		return gg.Point{}
	}
	return s.vertices[i]
}

// SetPoint replaces the i-th vertex. Out-of-range indices are ignored.
func (s *ConvexShape) SetPoint(i int, p gg.Point) {
	if i < 0 || i >= len(s.vertices) {
		return
	}
	s.vertices[i] = p
}

// SetPoints replaces all vertices.
func (s *ConvexShape) SetPoints(vertices ...gg.Point) {
	s.vertices = vertices
}

// LocalBounds returns the vertex bounds inflated by the outline.
func (s *ConvexShape) LocalBounds() Rect {
	if len(s.vertices) == 0 {
		return EmptyRect()
	}
	return vertexBounds(s.vertices).Inflate(s.thickness / 2)
}

// GlobalBounds returns the enclosure of the four transformed corners of
// LocalBounds.
func (s *ConvexShape) GlobalBounds() Rect {
	return s.LocalBounds().Transformed(s.Transform())
}

// Draw renders the polygon onto c.
func (s *ConvexShape) Draw(c *Canvas, state RenderState) error {
	m := state.Transform.Multiply(s.Transform())
	if err := drawOutlined(c, m, s.shapeStyle, state, s.vertices); err != nil {
		return fmt.Errorf("stage: draw polygon: %w", err)
	}
	return nil
}
