package ggthumb

import (
	"image"

	"github.com/gogpu/ggthumb/internal/blend"
	ggimage "github.com/gogpu/ggthumb/internal/image"
	"github.com/gogpu/ggthumb/internal/raster"
)

// renderOutline draws a frame Width pixels thick, inset Offset pixels from
// the canvas edge.
func (r *Renderer) renderOutline(acc *image.NRGBA, l *OutlineLayer) error {
	b := acc.Bounds()
	frame := raster.Frame(b.Dx(), b.Dy(), l.Width, l.Offset)
	blend.Draw(acc, ggimage.Tint(frame, l.Color.NRGBA()), image.Point{}, blend.Normal, l.opacity())
	return nil
}
