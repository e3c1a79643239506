package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier handle length for a quarter circle.
const kappa = 0.5522847498

// Rect rasterizes an axis-aligned rectangle at (x, y) of size rw×rh with
// corners rounded by radius into a w×h mask. The radius is clamped to
// half the shorter side.
func Rect(w, h int, x, y, rw, rh, radius float64) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	roundedRect(z, x, y, rw, rh, radius, false)
	return draw(z, w, h)
}

// Ring rasterizes the band between a rounded rectangle and the same
// rectangle inset by width. The result covers the inner edge of the
// shape, so a stroke drawn with it stays inside the shape bounds.
func Ring(w, h int, x, y, rw, rh, radius, width float64) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	roundedRect(z, x, y, rw, rh, radius, false)
	if iw, ih := rw-2*width, rh-2*width; iw > 0 && ih > 0 {
		roundedRect(z, x+width, y+width, iw, ih, math.Max(0, radius-width), true)
	}
	return draw(z, w, h)
}

// Ellipse rasterizes the ellipse inscribed in the box at (x, y) of size
// rw×rh into a w×h mask.
func Ellipse(w, h int, x, y, rw, rh float64) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	ellipse(z, x, y, rw, rh, false)
	return draw(z, w, h)
}

// EllipseRing rasterizes the band between an ellipse and the same
// ellipse inset by width.
func EllipseRing(w, h int, x, y, rw, rh, width float64) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	ellipse(z, x, y, rw, rh, false)
	if iw, ih := rw-2*width, rh-2*width; iw > 0 && ih > 0 {
		ellipse(z, x+width, y+width, iw, ih, true)
	}
	return draw(z, w, h)
}

// Frame returns a w×h mask that is opaque on the band of the given
// width starting offset pixels inside every edge.
func Frame(w, h, width, offset int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		dy := min(y, h-1-y)
		for x := 0; x < w; x++ {
			d := min(dy, min(x, w-1-x))
			if d >= offset && d < offset+width {
				m.Pix[y*m.Stride+x] = 255
			}
		}
	}
	return m
}

func draw(z *vector.Rasterizer, w, h int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// roundedRect adds a closed rounded rectangle to z. reverse flips the
// winding so the path cuts a hole in a shape added before it.
func roundedRect(z *vector.Rasterizer, x, y, w, h, r float64, reverse bool) {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		pts := [][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
		if reverse {
			pts[1], pts[3] = pts[3], pts[1]
		}
		z.MoveTo(f32(pts[0][0]), f32(pts[0][1]))
		for _, p := range pts[1:] {
			z.LineTo(f32(p[0]), f32(p[1]))
		}
		z.ClosePath()
		return
	}

	k := r * kappa
	// Each segment: line end point, then the corner curve.
	type seg struct{ lx, ly, c1x, c1y, c2x, c2y, ex, ey float64 }
	segs := []seg{
		{x + w - r, y, x + w - r + k, y, x + w, y + r - k, x + w, y + r},
		{x + w, y + h - r, x + w, y + h - r + k, x + w - r + k, y + h, x + w - r, y + h},
		{x + r, y + h, x + r - k, y + h, x, y + h - r + k, x, y + h - r},
		{x, y + r, x, y + r - k, x + r - k, y, x + r, y},
	}
	if !reverse {
		z.MoveTo(f32(x+r), f32(y))
		for _, s := range segs {
			z.LineTo(f32(s.lx), f32(s.ly))
			z.CubeTo(f32(s.c1x), f32(s.c1y), f32(s.c2x), f32(s.c2y), f32(s.ex), f32(s.ey))
		}
		z.ClosePath()
		return
	}
	// Walk the same outline backwards.
	z.MoveTo(f32(x+r), f32(y))
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		z.CubeTo(f32(s.c2x), f32(s.c2y), f32(s.c1x), f32(s.c1y), f32(s.lx), f32(s.ly))
		prev := segs[(i+len(segs)-1)%len(segs)]
		z.LineTo(f32(prev.ex), f32(prev.ey))
	}
	z.ClosePath()
}

func ellipse(z *vector.Rasterizer, x, y, w, h float64, reverse bool) {
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	kx, ky := rx*kappa, ry*kappa
	sign := 1.0
	if reverse {
		sign = -1
	}
	z.MoveTo(f32(cx+rx), f32(cy))
	z.CubeTo(f32(cx+rx), f32(cy+sign*ky), f32(cx+kx), f32(cy+sign*ry), f32(cx), f32(cy+sign*ry))
	z.CubeTo(f32(cx-kx), f32(cy+sign*ry), f32(cx-rx), f32(cy+sign*ky), f32(cx-rx), f32(cy))
	z.CubeTo(f32(cx-rx), f32(cy-sign*ky), f32(cx-kx), f32(cy-sign*ry), f32(cx), f32(cy-sign*ry))
	z.CubeTo(f32(cx+kx), f32(cy-sign*ry), f32(cx+rx), f32(cy-sign*ky), f32(cx+rx), f32(cy))
	z.ClosePath()
}

func f32(v float64) float32 { return float32(v) }
