package text

import (
	"errors"
	"image"
	"math"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("garbage")); err == nil {
		t.Error("NewFontSource accepted garbage")
	}

	src, err := NewFontSource(gobold.TTF)
	if err != nil {
		t.Fatal(err)
	}
	d := src.Describe()
	if d.Family == "" || src.Name() != d.Family {
		t.Errorf("Describe = %+v, Name = %q", d, src.Name())
	}
	if d.Weight != WeightBold || d.Italic {
		t.Errorf("Describe = %+v, want bold upright", d)
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("missing file loaded")
	}
	path := writeFont(t, t.TempDir(), "r.ttf", goregular.TTF)
	if _, err := NewFontSourceFromFile(path); err != nil {
		t.Fatal(err)
	}
}

func TestFaceMetrics(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := src.Face(0); err == nil {
		t.Error("Face(0) succeeded")
	}

	small, _ := src.Face(10)
	large, _ := src.Face(40)
	if small.Size() != 10 || large.Size() != 40 {
		t.Fatalf("sizes = %v, %v", small.Size(), large.Size())
	}
	ms, ml := small.Metrics(), large.Metrics()
	if ms.Ascent <= 0 || ms.Descent <= 0 {
		t.Fatalf("metrics = %+v", ms)
	}
	if math.Abs(ml.Ascent/ms.Ascent-4) > 0.2 {
		t.Errorf("ascent does not scale: %v vs %v", ms.Ascent, ml.Ascent)
	}
	if ms.Height() != ms.Ascent+ms.Descent {
		t.Error("Height != Ascent+Descent")
	}
	if ms.LineHeight() < ms.Height() {
		t.Error("LineHeight < Height")
	}
}

func TestFaceMeasure(t *testing.T) {
	src, _ := NewFontSource(goregular.TTF)
	face, _ := src.Face(20)

	if face.Measure("") != 0 {
		t.Error("empty string has width")
	}
	w := face.Measure("WWW")
	if w <= face.Measure("iii") {
		t.Errorf("Measure(WWW) = %v not wider than iii", w)
	}
	sum := 3 * face.Advance('W')
	if math.Abs(w-sum) > 1 {
		t.Errorf("Measure(WWW) = %v, advances sum %v", w, sum)
	}
	if !face.HasGlyph('A') {
		t.Error("HasGlyph('A') = false")
	}
	if face.HasGlyph('\U0001F600') {
		t.Error("Go font claims an emoji glyph")
	}
}

func TestFaceDrawGlyph(t *testing.T) {
	src, _ := NewFontSource(goregular.TTF)
	face, _ := src.Face(32)
	m := face.Metrics()

	dst := image.NewAlpha(image.Rect(0, 0, 40, 40))
	face.DrawGlyph(dst, 4, m.Ascent, 'H')

	var ink int
	for _, a := range dst.Pix {
		if a > 0 {
			ink++
		}
	}
	if ink == 0 {
		t.Fatal("DrawGlyph drew nothing")
	}

	blank := image.NewAlpha(image.Rect(0, 0, 40, 40))
	face.DrawGlyph(blank, 4, m.Ascent, ' ')
	for _, a := range blank.Pix {
		if a != 0 {
			t.Fatal("space drew ink")
		}
	}
}
