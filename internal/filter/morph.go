package filter

import (
	"image"
	"math"
)

// Dilate returns a copy of mask grown by radius pixels with an
// anti-aliased round structuring element. Each output pixel takes the
// maximum of its neighbors within the disk, weighted by how much of the
// neighbor lies inside the disk edge.
func Dilate(mask *image.Alpha, radius float64) *image.Alpha {
	b := mask.Bounds()
	out := image.NewAlpha(b)
	if radius <= 0 {
		copy(out.Pix, mask.Pix)
		return out
	}

	r := int(math.Ceil(radius))
	type tap struct {
		dx, dy int
		w      float64
	}
	var taps []tap
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			cov := radius + 0.5 - math.Hypot(float64(dx), float64(dy))
			if cov <= 0 {
				continue
			}
			taps = append(taps, tap{dx, dy, math.Min(cov, 1)})
		}
	}

	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := mask.Pix[y*mask.Stride+x]
			if v == 0 {
				continue
			}
			// Stamp this pixel onto its neighborhood.
			for _, t := range taps {
				nx, ny := x+t.dx, y+t.dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				s := uint8(float64(v)*t.w + 0.5)
				if p := &out.Pix[ny*out.Stride+nx]; s > *p {
					*p = s
				}
			}
		}
	}
	return out
}

// Subtract clears the coverage of cut from mask in place:
// mask = mask * (1 - cut). Both masks must share bounds.
func Subtract(mask, cut *image.Alpha) {
	for i := range mask.Pix {
		mask.Pix[i] = uint8(uint16(mask.Pix[i]) * uint16(255-cut.Pix[i]) / 255)
	}
}

// Scale multiplies every mask value by f in [0, 1] in place.
func Scale(mask *image.Alpha, f float64) {
	if f >= 1 {
		return
	}
	for i, v := range mask.Pix {
		mask.Pix[i] = uint8(float64(v)*f + 0.5)
	}
}
