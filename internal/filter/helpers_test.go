package filter

import (
	"image"
	"image/color"
)

// Test helper functions shared across filter tests.

// createTestImage creates an image filled with the given color.
func createTestImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// createDotMask creates a w×h mask with a single opaque pixel at (x, y).
func createDotMask(w, h, x, y int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	m.SetAlpha(x, y, color.Alpha{A: 255})
	return m
}

// colorApproxEqual compares two colors with a per-channel tolerance.
func colorApproxEqual(a, b color.NRGBA, tolerance int) bool {
	return absi(int(a.R)-int(b.R)) <= tolerance &&
		absi(int(a.G)-int(b.G)) <= tolerance &&
		absi(int(a.B)-int(b.B)) <= tolerance &&
		absi(int(a.A)-int(b.A)) <= tolerance
}

func absi(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sumAlpha(m *image.Alpha) int {
	s := 0
	for _, v := range m.Pix {
		s += int(v)
	}
	return s
}
