package stage

import (
	"math"

	"github.com/gogpu/gg"
)

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// matrixMemo holds a lazily computed matrix together with the generation
// of the source state it was computed from. The zero value is empty.
type matrixMemo struct {
	m   gg.Matrix
	gen uint64
	ok  bool
}

// get returns the memoized matrix if it is still current for gen.
func (c *matrixMemo) get(gen uint64) (gg.Matrix, bool) {
	if !c.ok || c.gen != gen {
		return gg.Matrix{}, false
	}
	return c.m, true
}

// put stores a matrix computed from state at gen.
func (c *matrixMemo) put(m gg.Matrix, gen uint64) {
	c.m = m
	c.gen = gen
	c.ok = true
}

// Transformable holds a decomposed 2D transform: an origin (the local pivot
// for rotation and scaling), a position in parent space, a rotation in
// degrees, and per-axis scale factors. The combined matrix
//
//	translate(position) * rotate(rotation) * scale(scale) * translate(-origin)
//
// and its inverse are computed lazily and memoized until the next mutation.
//
// Rotation is measured in degrees, clockwise in the Y-down screen coordinate
// system used by gg. The angle is not wrapped: SetRotation(370) and
// SetRotation(10) produce the same matrix but report different Rotation()
// values. Scale accepts zero and negative factors; a negative factor mirrors
// along that axis, a zero factor collapses it (the inverse then degrades to
// gg.Matrix.Invert's identity fallback).
//
// Transformable is meant to be embedded by drawable types. It is plain value
// state with no synchronization; callers that share one across goroutines
// must serialize access themselves.
type Transformable struct {
	origin   gg.Point
	position gg.Point
	rotation float64
	scale    gg.Point

	// gen counts mutations. The memos below are valid only while their
	// recorded generation matches gen.
	gen       uint64
	transform matrixMemo
	inverse   matrixMemo
}

// NewTransformable returns a Transformable in its default state:
// origin (0,0), position (0,0), rotation 0, scale (1,1). Its transform is
// the identity matrix.
func NewTransformable() Transformable {
	return Transformable{scale: gg.Pt(1, 1)}
}

// Origin returns the local pivot point.
func (t *Transformable) Origin() gg.Point { return t.origin }

// Position returns the translation in parent space.
func (t *Transformable) Position() gg.Point { return t.position }

// Rotation returns the rotation in degrees, exactly as last set.
func (t *Transformable) Rotation() float64 { return t.rotation }

// Scale returns the per-axis scale factors.
func (t *Transformable) Scale() gg.Point { return t.scale }

// SetOrigin sets the local pivot point about which rotation and scaling are
// applied.
func (t *Transformable) SetOrigin(p gg.Point) {
	t.origin = p
	t.gen++
}

// SetPosition sets the translation applied after rotation and scaling.
func (t *Transformable) SetPosition(p gg.Point) {
	t.position = p
	t.gen++
}

// SetRotation sets the rotation in degrees. Any value is accepted; the angle
// is not normalized into [0,360).
func (t *Transformable) SetRotation(deg float64) {
	t.rotation = deg
	t.gen++
}

// SetScale sets the per-axis scale factors. Zero and negative factors are
// accepted.
func (t *Transformable) SetScale(s gg.Point) {
	t.scale = s
	t.gen++
}

// MoveBy translates the position by delta.
func (t *Transformable) MoveBy(delta gg.Point) {
	t.SetPosition(t.position.Add(delta))
}

// RotateBy adds deg to the current rotation.
func (t *Transformable) RotateBy(deg float64) {
	t.SetRotation(t.rotation + deg)
}

// ScaleBy multiplies the current scale factors component-wise.
func (t *Transformable) ScaleBy(factor gg.Point) {
	t.SetScale(gg.Pt(t.scale.X*factor.X, t.scale.Y*factor.Y))
}

// Transform returns the combined transformation matrix. The matrix is
// recomputed only if the state changed since the last call.
func (t *Transformable) Transform() gg.Matrix {
	if m, ok := t.transform.get(t.gen); ok {
		return m
	}

	// The rotation is stored clockwise in degrees; negate it to get the
	// counter-clockwise radians the matrix convention expects.
	angle := -t.rotation * degToRad
	cos := math.Cos(angle)
	sin := math.Sin(angle)

	sxc := t.scale.X * cos
	syc := t.scale.Y * cos
	sxs := t.scale.X * sin
	sys := t.scale.Y * sin
	tx := -t.origin.X*sxc - t.origin.Y*sys + t.position.X
	ty := t.origin.X*sxs - t.origin.Y*syc + t.position.Y

	m := gg.Matrix{
		A: sxc, B: sys, C: tx,
		D: -sxs, E: syc, F: ty,
	}
	t.transform.put(m, t.gen)
	return m
}

// InverseTransform returns the inverse of Transform, memoized the same way.
// If the matrix is not invertible (a zero scale factor) the result is
// gg.Matrix.Invert's identity fallback.
func (t *Transformable) InverseTransform() gg.Matrix {
	if m, ok := t.inverse.get(t.gen); ok {
		return m
	}
	m := t.Transform().Invert()
	t.inverse.put(m, t.gen)
	return m
}

// TransformPoint maps a point from local to parent space.
func (t *Transformable) TransformPoint(p gg.Point) gg.Point {
	return t.Transform().TransformPoint(p)
}
