package filter

import (
	"image"
	"math"
)

// DropShadow returns the shadow mask of src: src shifted by
// (offsetX, offsetY) and blurred with the given radius. The result has
// the bounds of src, which must leave room for the offset and the blur.
func DropShadow(src *image.Alpha, offsetX, offsetY, radius float64) *image.Alpha {
	b := src.Bounds()
	shifted := image.NewAlpha(b)
	dx, dy := int(math.Round(offsetX)), int(math.Round(offsetY))
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		sy := y - dy
		if sy < 0 || sy >= h {
			continue
		}
		for x := 0; x < w; x++ {
			sx := x - dx
			if sx < 0 || sx >= w {
				continue
			}
			shifted.Pix[y*shifted.Stride+x] = src.Pix[sy*src.Stride+sx]
		}
	}
	return BlurAlpha(shifted, radius)
}

// Glow returns the glow mask of src: src dilated by max(1, radius/2),
// blurred with radius and scaled by opacity.
func Glow(src *image.Alpha, radius, opacity float64) *image.Alpha {
	grown := Dilate(src, math.Max(1, radius/2))
	out := BlurAlpha(grown, radius)
	Scale(out, opacity)
	return out
}
