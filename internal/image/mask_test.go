package image

import (
	"image"
	"image/color"
	"testing"
)

func TestAlphaOfAndTint(t *testing.T) {
	src := solid(4, 4, color.NRGBA{1, 2, 3, 200})
	m := AlphaOf(src)
	if m.AlphaAt(2, 2).A != 200 {
		t.Fatalf("alpha = %d", m.AlphaAt(2, 2).A)
	}
	tinted := Tint(m, color.NRGBA{255, 0, 0, 128})
	if got := tinted.NRGBAAt(2, 2); got.R != 255 || got.A != 100 {
		t.Errorf("tint = %v", got)
	}
}

func TestMultiplyAndScaleAlpha(t *testing.T) {
	img := solid(2, 1, color.NRGBA{9, 9, 9, 255})
	m := image.NewAlpha(image.Rect(0, 0, 2, 1))
	m.SetAlpha(0, 0, color.Alpha{A: 255})
	MultiplyAlpha(img, m)
	if img.NRGBAAt(0, 0).A != 255 || img.NRGBAAt(1, 0).A != 0 {
		t.Errorf("MultiplyAlpha = %v %v", img.NRGBAAt(0, 0), img.NRGBAAt(1, 0))
	}
	ScaleAlpha(img, 0.5)
	if got := img.NRGBAAt(0, 0).A; got != 128 {
		t.Errorf("ScaleAlpha(0.5) = %d, want 128", got)
	}
}

func TestPad(t *testing.T) {
	img := solid(2, 3, color.NRGBA{5, 5, 5, 255})
	out := Pad(img, 4)
	if out.Bounds() != image.Rect(0, 0, 10, 11) {
		t.Fatalf("bounds = %v", out.Bounds())
	}
	if out.NRGBAAt(3, 3).A != 0 || out.NRGBAAt(4, 4).A != 255 || out.NRGBAAt(5, 6).A != 255 {
		t.Error("content not placed at the margin")
	}
}
