package image

import (
	"image"
	"math"
)

// DefaultKeyTolerance is the color distance, in 0..255 channel units,
// under which a pixel counts as background.
const DefaultKeyTolerance = 40

// KeyBackground cuts out the uniform backdrop of a product-style photo.
// The backdrop color is the mean of the four corners; every pixel
// connected to the image border whose color lies within tolerance of it
// becomes transparent. Foreground pixels touching the cut get a soft edge.
// The input is not modified.
func KeyBackground(img *image.NRGBA, tolerance float64) *image.NRGBA {
	out := ToNRGBA(cloneNRGBA(img))
	b := out.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return out
	}

	var ref [3]float64
	for _, p := range [4][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		i := out.PixOffset(p[0], p[1])
		for c := 0; c < 3; c++ {
			ref[c] += float64(out.Pix[i+c]) / 4
		}
	}
	dist := func(x, y int) float64 {
		i := out.PixOffset(x, y)
		dr := float64(out.Pix[i+0]) - ref[0]
		dg := float64(out.Pix[i+1]) - ref[1]
		db := float64(out.Pix[i+2]) - ref[2]
		return math.Sqrt(dr*dr + dg*dg + db*db)
	}

	bg := make([]bool, w*h)
	queue := make([]int, 0, 2*(w+h))
	push := func(x, y int) {
		k := y*w + x
		if bg[k] || dist(x, y) > tolerance {
			return
		}
		bg[k] = true
		queue = append(queue, k)
	}
	for x := 0; x < w; x++ {
		push(x, 0)
		push(x, h-1)
	}
	for y := 0; y < h; y++ {
		push(0, y)
		push(w-1, y)
	}
	for len(queue) > 0 {
		k := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		x, y := k%w, k/w
		if x > 0 {
			push(x-1, y)
		}
		if x < w-1 {
			push(x+1, y)
		}
		if y > 0 {
			push(x, y-1)
		}
		if y < h-1 {
			push(x, y+1)
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := out.PixOffset(x, y) + 3
			if bg[y*w+x] {
				out.Pix[i] = 0
				continue
			}
			if !touches(bg, w, h, x, y) {
				continue
			}
			// Feather: pixels close to the key color fade out.
			if d := dist(x, y); d < 2*tolerance {
				f := (d - tolerance) / tolerance
				out.Pix[i] = uint8(float64(out.Pix[i]) * math.Max(0, f))
			}
		}
	}
	return out
}

func touches(bg []bool, w, h, x, y int) bool {
	return (x > 0 && bg[y*w+x-1]) || (x < w-1 && bg[y*w+x+1]) ||
		(y > 0 && bg[(y-1)*w+x]) || (y < h-1 && bg[(y+1)*w+x])
}

func cloneNRGBA(img *image.NRGBA) *image.NRGBA {
	out := &image.NRGBA{
		Pix:    make([]uint8, len(img.Pix)),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	copy(out.Pix, img.Pix)
	return out
}
