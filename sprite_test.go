package stage

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg"
)

func TestSpriteLocalBounds(t *testing.T) {
	tex := NewTextureFromImage(solidImage(16, 8, color.NRGBA{R: 255, A: 255}))
	s := NewSprite(tex)

	if got := s.LocalBounds(); got != RectFromSize(0, 0, 16, 8) {
		t.Fatalf("LocalBounds = %+v", got)
	}

	s.SetTextureRect(4, 0, 8, 8)
	if got := s.LocalBounds(); got != RectFromSize(0, 0, 8, 8) {
		t.Errorf("LocalBounds after SetTextureRect = %+v", got)
	}
}

func TestSpriteGlobalBoundsFollowTransform(t *testing.T) {
	tex := NewTextureFromImage(solidImage(10, 20, color.NRGBA{R: 255, A: 255}))
	s := NewSprite(tex)
	s.SetPosition(gg.Pt(100, 100))
	s.SetRotation(90)

	got := s.GlobalBounds()
	want := R(80, 100, 100, 110)
	if !rectNear(got, want, 1e-9) {
		t.Errorf("GlobalBounds = %+v, want %+v", got, want)
	}
}

func TestSpriteNilTextureDrawIsNoop(t *testing.T) {
	c, err := NewCanvas(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	s := NewSprite(nil)
	if err := c.Draw(s); err != nil {
		t.Errorf("drawing texture-less sprite: %v", err)
	}
	if !s.LocalBounds().IsEmpty() {
		t.Error("texture-less sprite should have empty bounds")
	}
}

func TestSpriteDrawPixels(t *testing.T) {
	c, err := NewCanvas(40, 40)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	c.Clear(gg.Black)

	tex := NewTextureFromImage(solidImage(10, 10, color.NRGBA{R: 255, A: 255}))
	s := NewSprite(tex)
	s.SetPosition(gg.Pt(10, 10))
	if err := c.Draw(s); err != nil {
		t.Fatal(err)
	}

	r, _, _, _ := rgbaAt(t, c, 15, 15)
	if r < 200 {
		t.Errorf("sprite interior red channel = %d, want red", r)
	}
	r, g, b, _ := rgbaAt(t, c, 35, 35)
	if r > 55 || g > 55 || b > 55 {
		t.Errorf("outside sprite = r%d g%d b%d, want black", r, g, b)
	}
}

func TestSpriteTintAndOpacity(t *testing.T) {
	c, err := NewCanvas(20, 20)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	c.Clear(gg.Black)

	tex := NewTextureFromImage(solidImage(20, 20, color.NRGBA{R: 255, G: 255, B: 255, A: 255}))
	s := NewSprite(tex)
	s.SetTint(gg.RGB(1, 0, 0))

	st := DefaultRenderState()
	st.Opacity = 0.5
	if err := c.DrawWithState(s, st); err != nil {
		t.Fatal(err)
	}

	r, g, _, _ := rgbaAt(t, c, 10, 10)
	if g > 55 {
		t.Errorf("tint failed: green channel %d", g)
	}
	// Half-opaque red over black should land near mid red.
	if r < 80 || r > 200 {
		t.Errorf("opacity failed: red channel %d, want mid-range", r)
	}
}

func TestSpriteScaledDraw(t *testing.T) {
	c, err := NewCanvas(40, 40)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	c.Clear(gg.Black)

	tex := NewTextureFromImage(solidImage(4, 4, color.NRGBA{G: 255, A: 255}))
	s := NewSprite(tex)
	s.SetScale(gg.Pt(8, 8)) // covers 32x32
	s.SetPosition(gg.Pt(4, 4))
	if err := c.Draw(s); err != nil {
		t.Fatal(err)
	}

	_, g, _, _ := rgbaAt(t, c, 20, 20)
	if g < 200 {
		t.Errorf("scaled sprite interior green = %d", g)
	}
}
