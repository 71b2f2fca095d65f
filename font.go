package stage

import (
	"fmt"

	"github.com/gogpu/gg/text"
)

// Font owns a parsed font source. One Font can serve faces at any size;
// close it only after every Text using it is done drawing.
type Font struct {
	src *text.FontSource
}

// LoadFontFromFile parses a TTF/OTF file into a Font.
func LoadFontFromFile(path string) (*Font, error) {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("stage: load font %q: %w", path, err)
	}
	return &Font{src: src}, nil
}

// NewFontFromBytes parses in-memory TTF/OTF data into a Font.
func NewFontFromBytes(data []byte) (*Font, error) {
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("stage: parse font: %w", err)
	}
	return &Font{src: src}, nil
}

// Name returns the font's family name.
func (f *Font) Name() string {
	return f.src.Name()
}

// Face returns a shaping face at the given size in pixels.
func (f *Font) Face(size float64) text.Face {
	return f.src.Face(size)
}

// Close releases the parsed font data.
func (f *Font) Close() error {
	return f.src.Close()
}
