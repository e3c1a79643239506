package ggthumb

import (
	"image"
	"math"

	"github.com/gogpu/ggthumb/internal/blend"
	"github.com/gogpu/ggthumb/internal/filter"
	ggimage "github.com/gogpu/ggthumb/internal/image"
)

// composite draws img onto acc with its top-left corner at (x, y). The
// glow, shadow and stroke passes of effects are drawn beneath img from
// its alpha, and the result is merged once at opacity.
func composite(acc, img *image.NRGBA, x, y float64, effects []Effect, opacity float64) {
	pt := image.Pt(int(math.Round(x)), int(math.Round(y)))
	set := splitEffects(effects, 1)
	if !set.empty() {
		var m int
		img, m = decorate(img, set)
		pt = pt.Sub(image.Pt(m, m))
	}
	blend.Draw(acc, img, pt, blend.Normal, opacity)
}

// decorate returns img padded by the reach of set, with its glows,
// shadows and strokes drawn beneath it, and the padding used.
func decorate(img *image.NRGBA, set effectSet) (*image.NRGBA, int) {
	m := set.margin()
	padded := ggimage.Pad(img, m)
	alpha := ggimage.AlphaOf(padded)
	out := image.NewNRGBA(padded.Bounds())
	paintEffects(out, alpha, set)
	blend.Draw(out, padded, image.Point{}, blend.Normal, 1)
	return out, m
}

// paintEffects draws the glow, shadow and stroke passes of set derived
// from alpha onto dst, in that order.
func paintEffects(dst *image.NRGBA, alpha *image.Alpha, set effectSet) {
	for _, g := range set.glows {
		if g.Opacity > 0 {
			paintMask(dst, filter.Glow(alpha, g.Radius, g.Opacity), g.Color)
		}
	}
	for _, s := range set.shadows {
		paintMask(dst, filter.DropShadow(alpha, s.OffsetX, s.OffsetY, s.BlurRadius), s.Color)
	}
	for _, s := range set.strokes {
		paintMask(dst, filter.Dilate(alpha, s.Width), s.Color)
	}
}

// paintMask composites c through mask onto dst.
func paintMask(dst *image.NRGBA, mask *image.Alpha, c Color) {
	if c.A <= 0 {
		return
	}
	blend.Draw(dst, ggimage.Tint(mask, c.NRGBA()), mask.Bounds().Min, blend.Normal, 1)
}
