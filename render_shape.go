package ggthumb

import (
	"image"
	"math"

	"github.com/gogpu/ggthumb/internal/blend"
	ggimage "github.com/gogpu/ggthumb/internal/image"
	"github.com/gogpu/ggthumb/internal/raster"
)

func (r *Renderer) renderShape(acc *image.NRGBA, l *ShapeLayer) error {
	img := rasterizeShape(l)
	b := acc.Bounds()
	x, y := placeBox(l.Position, l.Align, l.Width, l.Height, b.Dx(), b.Dy())
	if l.Rotation != 0 {
		rotated := ggimage.Rotate(img, l.Rotation)
		pt := rotatedOrigin(x, y, float64(img.Bounds().Dx()), float64(img.Bounds().Dy()), rotated.Bounds())
		img, x, y = rotated, float64(pt.X), float64(pt.Y)
	}
	composite(acc, img, x, y, l.Effects, l.opacity())
	return nil
}

// rasterizeShape draws the fill and the inner stroke of l into a buffer
// the size of its bounding box.
func rasterizeShape(l *ShapeLayer) *image.NRGBA {
	w, h := int(math.Ceil(l.Width)), int(math.Ceil(l.Height))

	var fill, ring *image.Alpha
	switch l.Shape {
	case ShapeEllipse:
		fill = raster.Ellipse(w, h, 0, 0, l.Width, l.Height)
		if l.StrokeWidth > 0 {
			ring = raster.EllipseRing(w, h, 0, 0, l.Width, l.Height, l.StrokeWidth)
		}
	default:
		fill = raster.Rect(w, h, 0, 0, l.Width, l.Height, l.BorderRadius)
		if l.StrokeWidth > 0 {
			ring = raster.Ring(w, h, 0, 0, l.Width, l.Height, l.BorderRadius, l.StrokeWidth)
		}
	}

	img := ggimage.Tint(fill, l.FillColor.NRGBA())
	if ring != nil && l.StrokeColor.A > 0 {
		blend.Draw(img, ggimage.Tint(ring, l.StrokeColor.NRGBA()), image.Point{}, blend.Normal, 1)
	}
	return img
}
