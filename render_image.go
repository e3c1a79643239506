package ggthumb

import (
	"context"
	"image"

	ggimage "github.com/gogpu/ggthumb/internal/image"
	"github.com/gogpu/ggthumb/internal/raster"
)

func (r *Renderer) renderImage(ctx context.Context, acc *image.NRGBA, l *ImageLayer) error {
	img, err := r.loadImage(ctx, l.Source)
	if err != nil {
		return err
	}
	if l.RemoveBackground {
		if img, err = r.removeBackground(ctx, img); err != nil {
			return err
		}
	}
	img = ggimage.Resize(img, l.Width, l.Height)
	if l.BorderRadius > 0 {
		img = roundCorners(img, l.BorderRadius)
	}

	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	b := acc.Bounds()
	x, y := placeBox(l.Position, l.Align, w, h, b.Dx(), b.Dy())
	if l.Rotation != 0 {
		rotated := ggimage.Rotate(img, l.Rotation)
		pt := rotatedOrigin(x, y, w, h, rotated.Bounds())
		img, x, y = rotated, float64(pt.X), float64(pt.Y)
	}
	composite(acc, img, x, y, l.Effects, l.opacity())
	return nil
}

// roundCorners returns a copy of img clipped to a rectangle with corners
// rounded by radius.
func roundCorners(img *image.NRGBA, radius float64) *image.NRGBA {
	out := ggimage.Pad(img, 0)
	w, h := out.Bounds().Dx(), out.Bounds().Dy()
	ggimage.MultiplyAlpha(out, raster.Rect(w, h, 0, 0, float64(w), float64(h), radius))
	return out
}
