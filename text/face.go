package text

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face is a FontSource at a specific pixel size.
//
// The underlying rasterizer keeps scratch buffers, so every method takes
// the face lock. Face is safe for concurrent use.
type Face struct {
	source  *FontSource
	size    float64
	metrics Metrics

	mu   sync.Mutex
	face font.Face
}

func newFace(s *FontSource, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("text: invalid face size %v", size)
	}
	ff, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}

	m := ff.Metrics()
	metrics := Metrics{
		Ascent:    fixedToFloat64(m.Ascent),
		Descent:   fixedToFloat64(m.Descent),
		XHeight:   fixedToFloat64(m.XHeight),
		CapHeight: fixedToFloat64(m.CapHeight),
	}
	if gap := fixedToFloat64(m.Height) - metrics.Ascent - metrics.Descent; gap > 0 {
		metrics.LineGap = gap
	}

	return &Face{source: s, size: size, metrics: metrics, face: ff}, nil
}

// Source returns the font the face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Size returns the size in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the scaled font metrics.
func (f *Face) Metrics() Metrics { return f.metrics }

// Advance returns the advance width of r. Runes the font lacks measure as
// the .notdef glyph that DrawGlyph paints for them.
func (f *Face) Advance(r rune) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	adv, _ := f.face.GlyphAdvance(r)
	return fixedToFloat64(adv)
}

// Kern returns the kerning adjustment between a and b.
func (f *Face) Kern(a, b rune) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fixedToFloat64(f.face.Kern(a, b))
}

// HasGlyph reports whether the font maps r to a glyph.
func (f *Face) HasGlyph(r rune) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, _, ok := f.face.GlyphBounds(r)
	return ok
}

// Measure returns the advance width of s, kerning included.
func (f *Face) Measure(s string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fixedToFloat64(font.MeasureString(f.face, s))
}

// DrawGlyph composites the coverage of r onto dst with its origin on the
// baseline at (x, y). Fractional positions are honored.
func (f *Face) DrawGlyph(dst draw.Image, x, y float64, r rune) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: f.face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(string(r))
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

func floatToFixed(v float64) fixed.Int26_6 {
	if v < 0 {
		return fixed.Int26_6(v*64 - 0.5)
	}
	return fixed.Int26_6(v*64 + 0.5)
}
