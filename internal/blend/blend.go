// Package blend implements the separable blend modes used to merge a layer
// onto the accumulated canvas, and straight-alpha source-over compositing.
//
// Blending follows the W3C Compositing and Blending Level 1 model: the
// blended color is mixed = (1 - Da)*S + Da*B(S, D), which is then
// composited source-over with the source alpha scaled by the layer
// opacity. Over an opaque destination this reduces to
//
//	out = B(s, d)*Sa*opacity + d*(1 - Sa*opacity)
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// Mode represents a blending mode.
type Mode int

const (
	Normal   Mode = iota // S
	Multiply             // S * D
	Screen               // 1 - (1-S)*(1-D)
	Overlay              // D < 0.5 ? 2*S*D : 1 - 2*(1-S)*(1-D)
	Darken               // min(S, D)
	Lighten              // max(S, D)
)

var modeNames = [...]string{"normal", "multiply", "screen", "overlay", "darken", "lighten"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Parse returns the mode with the given case-insensitive name.
func Parse(s string) (Mode, bool) {
	for i, n := range modeNames {
		if strings.EqualFold(s, n) {
			return Mode(i), true
		}
	}
	return Normal, false
}

// Channel applies the blend function to one normalized channel.
func Channel(m Mode, s, d float64) float64 {
	switch m {
	case Multiply:
		return s * d
	case Screen:
		return 1 - (1-s)*(1-d)
	case Overlay:
		if d < 0.5 {
			return 2 * s * d
		}
		return 1 - 2*(1-s)*(1-d)
	case Darken:
		return math.Min(s, d)
	case Lighten:
		return math.Max(s, d)
	default:
		return s
	}
}

// Pixel composites one straight-alpha RGBA source pixel onto a
// straight-alpha destination pixel in place. Both slices hold 4 bytes.
func Pixel(dst, src []uint8, m Mode, opacity float64) {
	sa := float64(src[3]) / 255 * opacity
	if sa <= 0 {
		return
	}
	da := float64(dst[3]) / 255
	if m == Normal && sa >= 1 {
		copy(dst[:4], src[:4])
		return
	}

	outA := sa + da*(1-sa)
	for c := 0; c < 3; c++ {
		s := float64(src[c]) / 255
		d := float64(dst[c]) / 255
		mixed := s
		if m != Normal {
			mixed = (1-da)*s + da*Channel(m, s, d)
		}
		v := (mixed*sa + d*da*(1-sa)) / outA
		dst[c] = to8(v)
	}
	dst[3] = to8(outA)
}

// Draw composites src onto dst with its top-left corner at dp, clipped
// to dst's bounds.
func Draw(dst, src *image.NRGBA, dp image.Point, m Mode, opacity float64) {
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	sb := src.Bounds()
	r := image.Rectangle{Min: dp, Max: dp.Add(sb.Size())}.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		sy := y - dp.Y + sb.Min.Y
		for x := r.Min.X; x < r.Max.X; x++ {
			sx := x - dp.X + sb.Min.X
			si := src.PixOffset(sx, sy)
			di := dst.PixOffset(x, y)
			Pixel(dst.Pix[di:di+4], src.Pix[si:si+4], m, opacity)
		}
	}
}

func to8(v float64) uint8 {
	v = v*255 + 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
