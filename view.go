package stage

import "github.com/gogpu/gg"

// View is a 2D camera: a rectangular region of the world (center and size,
// optionally rotated) mapped onto a viewport, a fractional sub-rectangle of
// the render target. Rotation is in degrees and uses the same clockwise
// convention as Transformable; rotating the view turns the world the
// opposite way on screen.
//
// The world-to-viewport matrix and its inverse are memoized with the same
// generation-counter scheme as Transformable.
type View struct {
	center   gg.Point
	size     gg.Point
	rotation float64
	viewport Rect

	gen       uint64
	transform matrixMemo
	inverse   matrixMemo
}

// NewView creates a view showing the world region of the given size centered
// on center, covering the whole render target.
func NewView(center, size gg.Point) View {
	return View{
		center:   center,
		size:     size,
		viewport: RectFromSize(0, 0, 1, 1),
	}
}

// NewViewFromRect creates a view showing exactly the given world rectangle.
func NewViewFromRect(r Rect) View {
	return NewView(r.Center(), gg.Pt(r.Width(), r.Height()))
}

// Center returns the world point at the center of the view.
func (v *View) Center() gg.Point { return v.center }

// SetCenter sets the world point at the center of the view.
func (v *View) SetCenter(p gg.Point) {
	v.center = p
	v.gen++
}

// Size returns the size of the visible world region.
func (v *View) Size() gg.Point { return v.size }

// SetSize sets the size of the visible world region.
func (v *View) SetSize(s gg.Point) {
	v.size = s
	v.gen++
}

// Rotation returns the view rotation in degrees.
func (v *View) Rotation() float64 { return v.rotation }

// SetRotation sets the view rotation in degrees. The angle is not
// normalized.
func (v *View) SetRotation(deg float64) {
	v.rotation = deg
	v.gen++
}

// Viewport returns the fractional target rectangle the view maps onto.
func (v *View) Viewport() Rect { return v.viewport }

// SetViewport sets the fractional target rectangle, e.g.
// RectFromSize(0, 0, 0.5, 1) for the left half of the target. Content is
// mapped into the viewport but not clipped to it; clip on the backend
// context if hard edges are needed.
func (v *View) SetViewport(r Rect) {
	v.viewport = r
	v.gen++
}

// MoveBy translates the view center by delta.
func (v *View) MoveBy(delta gg.Point) {
	v.SetCenter(v.center.Add(delta))
}

// RotateBy adds deg to the view rotation.
func (v *View) RotateBy(deg float64) {
	v.SetRotation(v.rotation + deg)
}

// Zoom scales the visible region by factor. Factors above 1 show more of
// the world (zoom out), below 1 less (zoom in).
func (v *View) Zoom(factor float64) {
	v.SetSize(v.size.Mul(factor))
}

// Transform returns the matrix mapping world coordinates to the unit
// viewport square: the view center lands on (0.5, 0.5) and the visible
// region spans [0,1] on both axes. The render target scales this to
// viewport pixels.
func (v *View) Transform() gg.Matrix {
	if m, ok := v.transform.get(v.gen); ok {
		return m
	}

	// A camera matrix is the inverse of an entity rotation: turning the view
	// clockwise turns the world counter-clockwise on screen.
	m := gg.Translate(0.5, 0.5).
		Multiply(gg.Scale(1/v.size.X, 1/v.size.Y)).
		Multiply(gg.Rotate(-v.rotation * degToRad)).
		Multiply(gg.Translate(-v.center.X, -v.center.Y))
	v.transform.put(m, v.gen)
	return m
}

// InverseTransform returns the memoized inverse of Transform, mapping unit
// viewport coordinates back to world coordinates.
func (v *View) InverseTransform() gg.Matrix {
	if m, ok := v.inverse.get(v.gen); ok {
		return m
	}
	m := v.Transform().Invert()
	v.inverse.put(m, v.gen)
	return m
}
