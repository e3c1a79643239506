package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(3, 2, color.NRGBA{10, 20, 30, 128})); err != nil {
		t.Fatal(err)
	}
	img, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{10, 20, 30, 128}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("Decode(nil) = %v, want ErrEmptyData", err)
	}
	if _, err := Decode([]byte("not an image")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode(garbage) = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	var buf bytes.Buffer
	png.Encode(&buf, solid(2, 2, color.NRGBA{255, 0, 0, 255}))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.NRGBAAt(0, 0).R != 255 {
		t.Errorf("pixel = %v", img.NRGBAAt(0, 0))
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load(missing) succeeded")
	}
}

func TestEncodeJPEGFlattensOnWhite(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJPEG(&buf, solid(8, 8, color.NRGBA{}), 150); err != nil {
		t.Fatalf("EncodeJPEG: %v", err)
	}
	img, err := jpeg.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := img.At(4, 4).RGBA()
	if r>>8 < 250 || g>>8 < 250 || b>>8 < 250 {
		t.Errorf("transparent pixel encoded as (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}

func TestToNRGBAOffsetOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 7))
	src.Set(5, 5, color.RGBA{0, 0, 255, 255})
	out := ToNRGBA(src)
	if out.Bounds().Min != (image.Point{}) {
		t.Fatalf("origin = %v", out.Bounds().Min)
	}
	if out.NRGBAAt(0, 0) != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("pixel = %v", out.NRGBAAt(0, 0))
	}
}
