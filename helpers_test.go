package ggthumb

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/ggthumb/text"
)

// newTestRenderer returns a renderer that only sees the bundled fonts.
func newTestRenderer(t *testing.T, opts ...RendererOption) *Renderer {
	t.Helper()
	fonts := text.NewResolver(
		text.WithSystemFonts(false),
		text.WithCacheDir(t.TempDir()),
	)
	base := []RendererOption{WithFontResolver(fonts)}
	return NewRenderer(append(base, opts...)...)
}

func mustCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := NewCanvas(w, h)
	if err != nil {
		t.Fatalf("NewCanvas(%d, %d): %v", w, h, err)
	}
	return c
}

// writePNG writes a w×h image of color c into dir and returns its path.
func writePNG(t *testing.T, dir string, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, "img.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// nearNRGBA reports whether every channel of got is within tol of want.
func nearNRGBA(got, want color.NRGBA, tol int) bool {
	return absDiff(got.R, want.R) <= tol &&
		absDiff(got.G, want.G) <= tol &&
		absDiff(got.B, want.B) <= tol &&
		absDiff(got.A, want.A) <= tol
}

func pixelAt(pm *Pixmap, x, y int) color.NRGBA {
	return pm.Image().NRGBAAt(x, y)
}

// countPixels counts the pixels of pm for which match returns true.
func countPixels(pm *Pixmap, match func(color.NRGBA) bool) int {
	n := 0
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if match(pixelAt(pm, x, y)) {
				n++
			}
		}
	}
	return n
}
