package ggthumb

import (
	"context"
	"fmt"
	"image"

	"github.com/gogpu/ggthumb/internal/blend"
	"github.com/gogpu/ggthumb/internal/filter"
	ggimage "github.com/gogpu/ggthumb/internal/image"
)

func (r *Renderer) renderBackground(ctx context.Context, acc *image.NRGBA, l *BackgroundLayer) error {
	w, h := acc.Bounds().Dx(), acc.Bounds().Dy()

	var buf *image.NRGBA
	switch f := l.Fill.(type) {
	case Color:
		buf = solid(w, h, f)
	case Gradient:
		g, err := rasterizeGradient(f, w, h)
		if err != nil {
			return err
		}
		buf = g
	case ImageFill:
		img, err := r.loadImage(ctx, f.Source)
		if err != nil {
			return err
		}
		buf = ggimage.FitTo(img, w, h, imageFit(f.Fit))
	default:
		return &RenderingError{Op: "background", Err: fmt.Errorf("unsupported fill %T", f)}
	}

	adjust(buf, l)
	blend.Draw(acc, buf, image.Point{}, l.BlendMode, l.opacity())
	return nil
}

// adjust applies the color adjustments and blur of l to buf in place.
func adjust(buf *image.NRGBA, l *BackgroundLayer) {
	m := filter.Identity
	changed := false
	if v := valueOr(l.Brightness, 1); v != 1 {
		m, changed = m.Then(filter.Brightness(float32(v))), true
	}
	if v := valueOr(l.Contrast, 1); v != 1 {
		m, changed = m.Then(filter.Contrast(float32(v))), true
	}
	if v := valueOr(l.Saturation, 1); v != 1 {
		m, changed = m.Then(filter.Saturation(float32(v))), true
	}
	if changed {
		m.Apply(buf)
	}
	if l.BlurRadius > 0 {
		filter.Blur(buf, l.BlurRadius)
	}
}

func solid(w, h int, c Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	px := c.NRGBA()
	if px.A == 0 {
		return img
	}
	row := img.Pix[:w*4]
	for x := 0; x < w; x++ {
		row[x*4+0], row[x*4+1], row[x*4+2], row[x*4+3] = px.R, px.G, px.B, px.A
	}
	for y := 1; y < h; y++ {
		copy(img.Pix[y*img.Stride:], row)
	}
	return img
}

// rasterizeGradient evaluates g at every pixel center of a w×h canvas.
func rasterizeGradient(g Gradient, w, h int) (*image.NRGBA, error) {
	if len(g.ColorStops()) == 0 {
		return nil, &RenderingError{Op: "gradient", Err: ErrEmptyStops}
	}
	at := g.shader(w, h)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			px := at(x, y).NRGBA()
			row[x*4+0], row[x*4+1], row[x*4+2], row[x*4+3] = px.R, px.G, px.B, px.A
		}
	}
	return img, nil
}

func imageFit(m FitMode) ggimage.Fit {
	switch m {
	case FitCover:
		return ggimage.FitCover
	case FitContain:
		return ggimage.FitContain
	default:
		return ggimage.FitFill
	}
}
