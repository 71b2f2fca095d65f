package stage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// Texture is an immutable pixel source for sprites. It owns a gg.ImageBuf
// and samples it in texel coordinates with bilinear filtering.
type Texture struct {
	buf *gg.ImageBuf
}

// LoadTexture reads an image file (PNG, JPEG or WebP) into a Texture.
func LoadTexture(path string) (*Texture, error) {
	buf, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("stage: load texture %q: %w", path, err)
	}
	return &Texture{buf: buf}, nil
}

// NewTextureFromBytes decodes in-memory image data (PNG or JPEG) into a
// Texture. Useful for embedded assets.
func NewTextureFromBytes(data []byte) (*Texture, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("stage: decode texture: %w", err)
	}
	return NewTextureFromImage(img), nil
}

// NewTextureFromImage copies a standard image.Image into a Texture.
func NewTextureFromImage(img image.Image) *Texture {
	return &Texture{buf: gg.ImageBufFromImage(img)}
}

// NewTextureFromBuf wraps an existing ImageBuf without copying. The caller
// must not mutate the buffer afterwards.
func NewTextureFromBuf(buf *gg.ImageBuf) *Texture {
	return &Texture{buf: buf}
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) {
	return t.buf.Bounds()
}

// Buf returns the underlying image buffer.
func (t *Texture) Buf() *gg.ImageBuf {
	return t.buf
}

// Sub returns a texture sharing pixels with t, restricted to the given
// region. Used for sprite atlases.
func (t *Texture) Sub(x, y, width, height int) *Texture {
	return &Texture{buf: t.buf.SubImage(x, y, width, height)}
}

// Image copies the texture into a standard *image.RGBA.
func (t *Texture) Image() *image.RGBA {
	w, h := t.buf.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := t.buf.GetRGBA(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = a
		}
	}
	return img
}

// Scaled returns a new texture resampled to width x height with the
// Catmull-Rom kernel.
func (t *Texture) Scaled(width, height int) *Texture {
	src := t.Image()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return NewTextureFromImage(dst)
}

// At samples the texture at texel coordinates (x, y) with bilinear
// filtering. Coordinates outside the texture clamp to the edge; sampling has
// no failure mode.
func (t *Texture) At(x, y float64) gg.RGBA {
	w, h := t.buf.Bounds()
	if w == 0 || h == 0 {
		return gg.Transparent
	}

	// Texel centers sit at half-integer coordinates.
	x -= 0.5
	y -= 0.5

	x0 := clampInt(ifloor(x), 0, w-1)
	y0 := clampInt(ifloor(y), 0, h-1)
	x1 := clampInt(x0+1, 0, w-1)
	y1 := clampInt(y0+1, 0, h-1)
	fx := clamp01(x - float64(x0))
	fy := clamp01(y - float64(y0))

	c00 := t.texel(x0, y0)
	c10 := t.texel(x1, y0)
	c01 := t.texel(x0, y1)
	c11 := t.texel(x1, y1)

	top := c00.Lerp(c10, fx)
	bottom := c01.Lerp(c11, fx)
	return top.Lerp(bottom, fy)
}

func (t *Texture) texel(x, y int) gg.RGBA {
	r, g, b, a := t.buf.GetRGBA(x, y)
	return gg.RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

func ifloor(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
