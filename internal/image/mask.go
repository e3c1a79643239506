package image

import (
	"image"
	"image/color"
)

// AlphaOf returns the alpha channel of img as a mask with the same bounds.
func AlphaOf(img *image.NRGBA) *image.Alpha {
	b := img.Bounds()
	m := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, y):]
		dst := m.Pix[m.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			dst[x] = src[x*4+3]
		}
	}
	return m
}

// MultiplyAlpha scales the alpha of img by mask in place. The mask is
// sampled at the same coordinates; pixels outside it become transparent.
func MultiplyAlpha(img *image.NRGBA, mask *image.Alpha) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y) + 3
			img.Pix[i] = uint8(uint16(img.Pix[i]) * uint16(mask.AlphaAt(x, y).A) / 255)
		}
	}
}

// ScaleAlpha multiplies the alpha of img by f in [0, 1] in place.
func ScaleAlpha(img *image.NRGBA, f float64) {
	if f >= 1 {
		return
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(float64(img.Pix[i])*f + 0.5)
	}
}

// Tint returns an image of color c whose alpha is c's alpha times mask.
func Tint(mask *image.Alpha, c color.NRGBA) *image.NRGBA {
	b := mask.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := mask.Pix[mask.PixOffset(x, y)]
			if a == 0 {
				continue
			}
			i := out.PixOffset(x, y)
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = uint8(uint16(a) * uint16(c.A) / 255)
		}
	}
	return out
}

// Pad returns a copy of img with margin transparent pixels on every side.
// The result starts at the origin.
func Pad(img *image.NRGBA, margin int) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx()+2*margin, b.Dy()+2*margin))
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):][:b.Dx()*4]
		copy(out.Pix[out.PixOffset(margin, margin+y):], src)
	}
	return out
}
