package stage

import (
	"math"

	"github.com/gogpu/gg"
)

// Rect is an axis-aligned rectangle in min/max form.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// R creates a Rect from min/max coordinates.
func R(minX, minY, maxX, maxY float64) Rect {
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// RectFromSize creates a Rect from a top-left corner and dimensions.
func RectFromSize(x, y, width, height float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// EmptyRect returns an empty rectangle with inverted bounds, suitable as the
// starting value for union operations.
func EmptyRect() Rect {
	return Rect{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Width returns the width of the rectangle, or 0 if it is empty.
func (r Rect) Width() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle, or 0 if it is empty.
func (r Rect) Height() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// Min returns the top-left corner.
func (r Rect) Min() gg.Point { return gg.Pt(r.MinX, r.MinY) }

// Max returns the bottom-right corner.
func (r Rect) Max() gg.Point { return gg.Pt(r.MaxX, r.MaxY) }

// Center returns the center point.
func (r Rect) Center() gg.Point {
	return gg.Pt((r.MinX+r.MaxX)/2, (r.MinY+r.MaxY)/2)
}

// Contains returns true if p lies inside the rectangle. Points on the
// minimum edges are inside, points on the maximum edges are outside, so
// adjacent rectangles do not both claim their shared edge.
func (r Rect) Contains(p gg.Point) bool {
	return p.X >= r.MinX && p.X < r.MaxX &&
		p.Y >= r.MinY && p.Y < r.MaxY
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, other.MinX),
		MinY: math.Min(r.MinY, other.MinY),
		MaxX: math.Max(r.MaxX, other.MaxX),
		MaxY: math.Max(r.MaxY, other.MaxY),
	}
}

// UnionPoint expands the rectangle to include p.
func (r Rect) UnionPoint(p gg.Point) Rect {
	return Rect{
		MinX: math.Min(r.MinX, p.X),
		MinY: math.Min(r.MinY, p.Y),
		MaxX: math.Max(r.MaxX, p.X),
		MaxY: math.Max(r.MaxY, p.Y),
	}
}

// Intersect returns the overlap of r and other. The second result is false
// if the rectangles do not overlap; the returned Rect is then empty.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	out := Rect{
		MinX: math.Max(r.MinX, other.MinX),
		MinY: math.Max(r.MinY, other.MinY),
		MaxX: math.Min(r.MaxX, other.MaxX),
		MaxY: math.Min(r.MaxY, other.MaxY),
	}
	if out.IsEmpty() {
		return EmptyRect(), false
	}
	return out, true
}

// Inflate grows the rectangle by d on every side. A negative d shrinks it.
func (r Rect) Inflate(d float64) Rect {
	return Rect{
		MinX: r.MinX - d,
		MinY: r.MinY - d,
		MaxX: r.MaxX + d,
		MaxY: r.MaxY + d,
	}
}

// Transformed maps the rectangle through m and returns the axis-aligned
// enclosure of its four transformed corners. This is how world-space bounds
// are derived everywhere in this package: the composed matrix stays
// authoritative, and no backend bounds query is involved. Under rotation the
// result is larger than the rotated rectangle itself.
func (r Rect) Transformed(m gg.Matrix) Rect {
	if r.IsEmpty() {
		return EmptyRect()
	}
	corners := [4]gg.Point{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}
	out := EmptyRect()
	for _, c := range corners {
		out = out.UnionPoint(m.TransformPoint(c))
	}
	return out
}
