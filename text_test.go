package stage

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestTextWithoutFontIsNoop(t *testing.T) {
	c, err := NewCanvas(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	txt := NewText(nil, "hello")
	if !txt.LocalBounds().IsEmpty() {
		t.Error("font-less text should have empty bounds")
	}
	if err := c.Draw(txt); err != nil {
		t.Errorf("drawing font-less text: %v", err)
	}
}

func TestTextEmptyStringIsNoop(t *testing.T) {
	txt := NewText(nil, "")
	if !txt.GlobalBounds().IsEmpty() {
		t.Error("empty string should have empty bounds")
	}
}

func TestTextSettersInvalidateRaster(t *testing.T) {
	txt := NewText(nil, "a")
	gen := txt.gen

	txt.SetString("b")
	if txt.gen == gen {
		t.Error("SetString did not bump the content generation")
	}
	gen = txt.gen

	txt.SetString("b") // unchanged value, no invalidation
	if txt.gen != gen {
		t.Error("SetString with the same value must not invalidate")
	}

	txt.SetCharacterSize(48)
	if txt.gen == gen {
		t.Error("SetCharacterSize did not bump the content generation")
	}
	gen = txt.gen

	txt.SetColor(gg.Red)
	if txt.gen == gen {
		t.Error("SetColor did not bump the content generation")
	}
	gen = txt.gen

	txt.SetFont(nil)
	if txt.gen == gen {
		t.Error("SetFont did not bump the content generation")
	}
}

func TestTextRasterMemoized(t *testing.T) {
	txt := NewText(nil, "abc")
	a := txt.ensureRaster()
	b := txt.ensureRaster()
	if a.gen != b.gen || a.ok != b.ok {
		t.Error("repeated ensureRaster recomputed without a content change")
	}
}

func TestTextTransformStillWorksWithoutFont(t *testing.T) {
	// The transform cache is independent of the raster cache.
	txt := NewText(nil, "x")
	txt.SetPosition(gg.Pt(3, 4))
	if got := txt.TransformPoint(gg.Pt(0, 0)); got != gg.Pt(3, 4) {
		t.Errorf("TransformPoint = %v, want (3,4)", got)
	}
}

func TestTextDefaults(t *testing.T) {
	txt := NewText(nil, "x")
	if txt.CharacterSize() != DefaultCharacterSize {
		t.Errorf("CharacterSize = %v", txt.CharacterSize())
	}
	if txt.Color() != gg.White {
		t.Errorf("Color = %+v, want white", txt.Color())
	}
	if txt.String() != "x" {
		t.Errorf("String = %q", txt.String())
	}
}
