package ggthumb

import (
	"context"
	"image"
	"math"

	"github.com/gogpu/ggthumb/internal/blend"
	ggimage "github.com/gogpu/ggthumb/internal/image"
	"github.com/gogpu/ggthumb/internal/raster"
	"github.com/gogpu/ggthumb/text"
)

// textStyle is the resolved paint of one span.
type textStyle struct {
	color   Color
	effects []Effect
}

// spans resolves the parts of l against the layer defaults.
func (r *Renderer) spans(l *TextLayer) ([]text.Span, []textStyle) {
	base := text.Span{
		Family:        l.Font.Family,
		Weight:        l.Font.Weight,
		Italic:        l.Font.Italic,
		Size:          l.Size,
		LetterSpacing: l.LetterSpacing,
	}
	if base.Family == "" {
		base.Family = r.opts.defaultFont
	}

	if len(l.Parts) == 0 {
		base.Text = l.Content
		return []text.Span{base}, []textStyle{{color: l.Color, effects: withoutBadges(l.Effects)}}
	}

	spans := make([]text.Span, len(l.Parts))
	styles := make([]textStyle, len(l.Parts))
	for i, p := range l.Parts {
		sp := base
		sp.Text = p.Text
		if p.Family != "" {
			sp.Family = p.Family
		}
		if p.Weight != 0 {
			sp.Weight = p.Weight
		}
		if p.Italic != nil {
			sp.Italic = *p.Italic
		}
		if p.Size > 0 {
			sp.Size = p.Size
		}
		if p.LetterSpacing != nil {
			sp.LetterSpacing = *p.LetterSpacing
		}
		spans[i] = sp

		st := textStyle{color: l.Color, effects: withoutBadges(l.Effects)}
		if p.Color != nil {
			st.color = *p.Color
		}
		if p.Effects != nil {
			st.effects = p.Effects
		}
		styles[i] = st
	}
	return spans, styles
}

// blockBadges returns the badges drawn behind the whole block.
func blockBadges(l *TextLayer) []Effect {
	var out []Effect
	if l.Badge != nil {
		out = append(out, *l.Badge)
	}
	for _, e := range l.Effects {
		if b, ok := e.(Badge); ok {
			out = append(out, b)
		}
	}
	return out
}

func withoutBadges(effects []Effect) []Effect {
	var out []Effect
	for _, e := range effects {
		if _, ok := e.(Badge); !ok {
			out = append(out, e)
		}
	}
	return out
}

func textAlignment(a *Align) text.Alignment {
	if a == nil {
		return text.AlignLeft
	}
	switch a.H {
	case AlignCenter:
		return text.AlignCenter
	case AlignRight:
		return text.AlignRight
	default:
		return text.AlignLeft
	}
}

func (r *Renderer) renderText(ctx context.Context, acc *image.NRGBA, l *TextLayer) error {
	spans, styles := r.spans(l)
	empty := true
	for _, sp := range spans {
		if sp.Text != "" {
			empty = false
			break
		}
	}
	if empty {
		return nil
	}

	block, err := text.Layout(ctx, r.fonts(), spans, text.Options{
		MaxWidth:   l.MaxWidth,
		MaxHeight:  l.MaxHeight,
		AutoScale:  l.AutoScale,
		LineHeight: l.LineHeight,
		Align:      textAlignment(l.Align),
	})
	if err != nil {
		return err
	}
	if block.Scale != 1 {
		r.logger().Debug("ggthumb: text auto-scaled", "scale", block.Scale, "width", block.Width, "height", block.Height)
	}

	img, m := paintBlock(block, spans, styles, splitEffects(blockBadges(l), block.Scale))

	b := acc.Bounds()
	x, y := placeBox(l.Position, l.Align, block.Width, block.Height, b.Dx(), b.Dy())
	pt := image.Pt(int(math.Round(x))-m, int(math.Round(y))-m)
	if l.Rotation != 0 {
		rotated := ggimage.Rotate(img, l.Rotation)
		pt = rotatedOrigin(float64(pt.X), float64(pt.Y), float64(img.Bounds().Dx()), float64(img.Bounds().Dy()), rotated.Bounds())
		img = rotated
	}
	blend.Draw(acc, img, pt, blend.Normal, l.opacity())
	return nil
}

// paintBlock rasterizes a laid-out block with its badges and effects. The
// block origin sits at (m, m) in the returned buffer.
func paintBlock(block *text.Block, spans []text.Span, styles []textStyle, badges effectSet) (*image.NRGBA, int) {
	sets := make([]effectSet, len(styles))
	var reach, maxSize float64
	for i, st := range styles {
		sets[i] = splitEffects(st.effects, block.Scale)
		reach = math.Max(reach, float64(sets[i].margin()))
		for _, bd := range sets[i].badges {
			reach = math.Max(reach, maxPadding(bd.Padding))
		}
		maxSize = math.Max(maxSize, spans[i].Size*block.Scale)
	}
	for _, bd := range badges.badges {
		reach = math.Max(reach, maxPadding(bd.Padding))
	}
	// Room for glyph ink outside the line boxes.
	m := int(math.Ceil(reach)) + int(math.Ceil(0.3*maxSize)) + 2

	w := int(math.Ceil(block.Width)) + 2*m
	h := int(math.Ceil(block.Height)) + 2*m
	bounds := image.Rect(0, 0, w, h)
	out := image.NewNRGBA(bounds)
	origin := float64(m)

	for _, bd := range badges.badges {
		paintBadge(out, bd, origin, origin, block.Width, block.Height)
	}

	masks := make([]*image.Alpha, len(spans))
	for _, line := range block.Lines {
		for _, run := range line.Runs {
			if masks[run.Span] == nil {
				masks[run.Span] = image.NewAlpha(bounds)
			}
			for _, g := range run.Glyphs {
				run.Face.DrawGlyph(masks[run.Span], origin+line.X+g.X, origin+line.Baseline, g.Rune)
			}
			for _, bd := range sets[run.Span].badges {
				fm := run.Face.Metrics()
				paintBadge(out, bd, origin+line.X+run.X, origin+line.Baseline-fm.Ascent, run.Width, fm.Ascent+fm.Descent)
			}
		}
	}

	for i, mask := range masks {
		if mask != nil {
			paintEffects(out, mask, effectSet{glows: sets[i].glows})
		}
	}
	for i, mask := range masks {
		if mask != nil {
			paintEffects(out, mask, effectSet{shadows: sets[i].shadows})
		}
	}
	for i, mask := range masks {
		if mask != nil {
			paintEffects(out, mask, effectSet{strokes: sets[i].strokes})
		}
	}
	for i, mask := range masks {
		if mask != nil {
			paintMask(out, mask, styles[i].color)
		}
	}
	return out, m
}

// paintBadge fills the box at (x, y) of size w×h grown by the badge padding.
func paintBadge(dst *image.NRGBA, bd Badge, x, y, w, h float64) {
	p := bd.Padding
	b := dst.Bounds()
	mask := raster.Rect(b.Dx(), b.Dy(), x-p.Left, y-p.Top, w+p.Left+p.Right, h+p.Top+p.Bottom, bd.BorderRadius)
	paintMask(dst, mask, bd.Color)
}

func maxPadding(p Padding) float64 {
	return math.Max(math.Max(p.Top, p.Bottom), math.Max(p.Left, p.Right))
}
