package blend

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestChannel(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		s, d float64
		want float64
	}{
		{"normal", Normal, 0.3, 0.9, 0.3},
		{"multiply", Multiply, 0.5, 0.5, 0.25},
		{"screen", Screen, 0.5, 0.5, 0.75},
		{"overlay dark dst", Overlay, 0.5, 0.25, 0.25},
		{"overlay light dst", Overlay, 0.5, 0.75, 0.75},
		{"darken", Darken, 0.2, 0.7, 0.2},
		{"lighten", Lighten, 0.2, 0.7, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Channel(tt.mode, tt.s, tt.d); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Channel(%v, %v, %v) = %v, want %v", tt.mode, tt.s, tt.d, got, tt.want)
			}
		})
	}
}

func TestMultiplyWhiteIdentity(t *testing.T) {
	for _, s := range []float64{0, 0.1, 0.5, 0.77, 1} {
		if got := Channel(Multiply, s, 1); math.Abs(got-s) > 1e-12 {
			t.Errorf("Multiply(%v, white) = %v, want %v", s, got, s)
		}
		if got := Channel(Screen, s, 0); math.Abs(got-s) > 1e-12 {
			t.Errorf("Screen(%v, black) = %v, want %v", s, got, s)
		}
	}
}

func TestPixelOpaqueDestination(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		src     [4]uint8
		dst     [4]uint8
		opacity float64
		want    [4]uint8
	}{
		{"normal opaque", Normal, [4]uint8{10, 20, 30, 255}, [4]uint8{200, 200, 200, 255}, 1, [4]uint8{10, 20, 30, 255}},
		{"normal half opacity", Normal, [4]uint8{0, 0, 0, 255}, [4]uint8{200, 100, 50, 255}, 0.5, [4]uint8{100, 50, 25, 255}},
		{"multiply white dst", Multiply, [4]uint8{10, 128, 250, 255}, [4]uint8{255, 255, 255, 255}, 1, [4]uint8{10, 128, 250, 255}},
		{"screen black dst", Screen, [4]uint8{10, 128, 250, 255}, [4]uint8{0, 0, 0, 255}, 1, [4]uint8{10, 128, 250, 255}},
		{"darken", Darken, [4]uint8{100, 200, 50, 255}, [4]uint8{150, 150, 150, 255}, 1, [4]uint8{100, 150, 50, 255}},
		{"lighten", Lighten, [4]uint8{100, 200, 50, 255}, [4]uint8{150, 150, 150, 255}, 1, [4]uint8{150, 200, 150, 255}},
		{"transparent source", Multiply, [4]uint8{0, 0, 0, 0}, [4]uint8{1, 2, 3, 255}, 1, [4]uint8{1, 2, 3, 255}},
		{"zero opacity", Normal, [4]uint8{0, 0, 0, 255}, [4]uint8{1, 2, 3, 255}, 0, [4]uint8{1, 2, 3, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := tt.dst
			Pixel(dst[:], tt.src[:], tt.mode, tt.opacity)
			for i := range dst {
				if diff(dst[i], tt.want[i]) > 1 {
					t.Fatalf("Pixel = %v, want %v", dst, tt.want)
				}
			}
		})
	}
}

func TestPixelTransparentDestination(t *testing.T) {
	// Any mode over nothing yields the source itself.
	for _, m := range []Mode{Normal, Multiply, Screen, Overlay, Darken, Lighten} {
		dst := [4]uint8{}
		src := [4]uint8{40, 80, 120, 200}
		Pixel(dst[:], src[:], m, 1)
		if dst != src {
			t.Errorf("%v over transparent = %v, want %v", m, dst, src)
		}
	}
}

func TestDrawClips(t *testing.T) {
	dst := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := 0; i < len(src.Pix); i += 4 {
		copy(src.Pix[i:], []uint8{255, 0, 0, 255})
	}
	Draw(dst, src, image.Pt(2, -1), Normal, 1)

	if got := dst.NRGBAAt(3, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("(3,0) = %v, want red", got)
	}
	if got := dst.NRGBAAt(3, 2); got != (color.NRGBA{}) {
		t.Errorf("(3,2) = %v, want untouched", got)
	}
	if got := dst.NRGBAAt(1, 0); got != (color.NRGBA{}) {
		t.Errorf("(1,0) = %v, want untouched", got)
	}
}

func TestParse(t *testing.T) {
	for i, n := range modeNames {
		m, ok := Parse(n)
		if !ok || m != Mode(i) {
			t.Errorf("Parse(%q) = %v, %v", n, m, ok)
		}
	}
	if _, ok := Parse("hue"); ok {
		t.Error("Parse(hue) should fail")
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
