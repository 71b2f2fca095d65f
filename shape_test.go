package stage

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestRectangleShapeBounds(t *testing.T) {
	r := NewRectangleShape(gg.Pt(30, 40))
	if got := r.LocalBounds(); got != RectFromSize(0, 0, 30, 40) {
		t.Fatalf("LocalBounds = %+v", got)
	}

	r.SetOutlineThickness(4)
	if got := r.LocalBounds(); got != R(-2, -2, 32, 42) {
		t.Errorf("LocalBounds with outline = %+v", got)
	}

	r.SetOutlineThickness(0)
	r.SetPosition(gg.Pt(10, 20))
	r.SetScale(gg.Pt(2, 1))
	want := R(10, 20, 70, 60)
	if got := r.GlobalBounds(); !rectNear(got, want, 1e-9) {
		t.Errorf("GlobalBounds = %+v, want %+v", got, want)
	}
}

func TestRectangleShapeCenterPivot(t *testing.T) {
	r := NewRectangleShape(gg.Pt(20, 20))
	r.SetOrigin(gg.Pt(10, 10))
	r.SetPosition(gg.Pt(50, 50))
	r.SetRotation(45)

	// Rotating about the center keeps the center fixed.
	if got := r.TransformPoint(gg.Pt(10, 10)); !pointNear(got, gg.Pt(50, 50), 1e-9) {
		t.Errorf("center maps to %v, want (50,50)", got)
	}
}

func TestCircleShapeBounds(t *testing.T) {
	c := NewCircleShape(25)
	if got := c.LocalBounds(); got != RectFromSize(0, 0, 50, 50) {
		t.Errorf("LocalBounds = %+v", got)
	}
}

func TestCircleShapePointCountClamp(t *testing.T) {
	c := NewCircleShape(5)
	if c.PointCount() != defaultCirclePoints {
		t.Fatalf("default point count = %d", c.PointCount())
	}
	c.SetPointCount(2)
	if c.PointCount() != 3 {
		t.Errorf("point count after SetPointCount(2) = %d, want 3", c.PointCount())
	}
}

func TestCircleShapeVerticesOnCircle(t *testing.T) {
	c := NewCircleShape(10)
	c.SetPointCount(8)
	for i, p := range c.points() {
		d := p.Sub(gg.Pt(10, 10)).Length()
		if d < 9.999 || d > 10.001 {
			t.Errorf("vertex %d at %v is %v from center, want 10", i, p, d)
		}
	}
}

func TestConvexShapeBounds(t *testing.T) {
	s := NewConvexShape(gg.Pt(0, 0), gg.Pt(10, 0), gg.Pt(5, 8))
	if got := s.LocalBounds(); got != R(0, 0, 10, 8) {
		t.Fatalf("LocalBounds = %+v", got)
	}

	empty := NewConvexShape()
	if !empty.LocalBounds().IsEmpty() {
		t.Error("empty polygon should have empty bounds")
	}
}

func TestConvexShapePointAccess(t *testing.T) {
	s := NewConvexShape(gg.Pt(1, 1), gg.Pt(2, 2))
	if got := s.Point(1); got != gg.Pt(2, 2) {
		t.Errorf("Point(1) = %v", got)
	}
	if got := s.Point(5); got != (gg.Point{}) {
		t.Errorf("out-of-range Point = %v, want zero", got)
	}
	s.SetPoint(0, gg.Pt(9, 9))
	if got := s.Point(0); got != gg.Pt(9, 9) {
		t.Errorf("SetPoint did not stick: %v", got)
	}
	s.SetPoint(5, gg.Pt(1, 1)) // ignored
	if s.PointCount() != 2 {
		t.Errorf("PointCount = %d", s.PointCount())
	}
}

func TestShapeOutlineDrawn(t *testing.T) {
	c, err := NewCanvas(60, 60)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	c.Clear(gg.White)

	box := NewRectangleShape(gg.Pt(20, 20))
	box.SetFillColor(gg.White)
	box.SetOutlineColor(gg.Blue)
	box.SetOutlineThickness(4)
	box.SetPosition(gg.Pt(20, 20))
	if err := c.Draw(box); err != nil {
		t.Fatal(err)
	}

	// The stroke is centered on the edge, so a point on the edge itself is
	// solidly outline-colored.
	r, _, b, _ := rgbaAt(t, c, 30, 20)
	if b < 150 || r > 150 {
		t.Errorf("edge pixel = r%d b%d, want blue outline", r, b)
	}
}

func TestConvexShapeTooFewPointsDrawIsNoop(t *testing.T) {
	c, err := NewCanvas(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	s := NewConvexShape(gg.Pt(0, 0), gg.Pt(5, 5))
	if err := c.Draw(s); err != nil {
		t.Errorf("drawing degenerate polygon: %v", err)
	}
}
