package text

import (
	"context"
	"math"
)

// Alignment specifies horizontal alignment of lines within a block.
type Alignment int

const (
	// AlignLeft aligns lines to the left edge of the block.
	AlignLeft Alignment = iota
	// AlignCenter centers lines within the block.
	AlignCenter
	// AlignRight aligns lines to the right edge of the block.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Layout defaults.
const (
	// DefaultLineHeight multiplies ascent+descent to give the baseline
	// distance between lines.
	DefaultLineHeight = 1.2

	// DefaultMinSize is the smallest size auto-scale shrinks to.
	DefaultMinSize = 1.0
)

// FaceProvider supplies faces for layout. *Resolver implements it.
type FaceProvider interface {
	Face(ctx context.Context, family string, weight int, italic bool, size float64) (*Face, error)
}

// Span is a run of text with one resolved style.
type Span struct {
	Text          string
	Family        string
	Weight        int
	Italic        bool
	Size          float64
	LetterSpacing float64
}

// Options controls line breaking and sizing.
type Options struct {
	// MaxWidth wraps lines at this width. Zero disables wrapping.
	MaxWidth float64

	// MaxHeight bounds the block height for auto-scale. Zero means unbounded.
	MaxHeight float64

	// AutoScale shrinks every span uniformly until the block fits
	// MaxWidth and MaxHeight.
	AutoScale bool

	// MinSize is the smallest size auto-scale tries (default 1).
	MinSize float64

	// BaseSize is the size auto-scale factors are relative to.
	// Zero means the largest span size.
	BaseSize float64

	// LineHeight multiplies each line's ascent+descent (default 1.2).
	LineHeight float64

	// Align positions lines of different widths within the block.
	Align Alignment
}

// Glyph is one positioned rune. X is relative to the start of its line.
type Glyph struct {
	Rune rune
	X    float64
}

// Run is the part of a line that comes from a single span.
type Run struct {
	Span          int // index into the spans passed to Layout
	Face          *Face
	Text          string
	X             float64 // start of the run relative to the line
	Width         float64
	LetterSpacing float64 // scaled spacing applied after each glyph
	Glyphs        []Glyph
}

// Line is one laid-out line.
type Line struct {
	Runs     []Run
	X        float64 // offset of the line within the block
	Top      float64 // top of the line box relative to the block
	Baseline float64 // baseline relative to the block top
	Width    float64
	Height   float64 // line box height (line advance)
	Ascent   float64
	Descent  float64
}

// Block is the result of laying out a list of spans.
type Block struct {
	Lines  []Line
	Width  float64
	Height float64

	// Scale is the factor auto-scale applied to sizes and spacing; 1 when
	// the text fit as given.
	Scale float64
}

// Layout lays out spans and, when requested, shrinks them to fit.
//
// Auto-scale searches integer sizes between MinSize and BaseSize-1 for the
// largest that fits; if none does, the minimum size is used.
func Layout(ctx context.Context, faces FaceProvider, spans []Span, opts Options) (*Block, error) {
	if opts.LineHeight <= 0 {
		opts.LineHeight = DefaultLineHeight
	}
	if opts.MinSize <= 0 {
		opts.MinSize = DefaultMinSize
	}

	b, err := layoutScaled(ctx, faces, spans, opts, 1)
	if err != nil || !opts.AutoScale || fits(b, opts) {
		return b, err
	}

	base := opts.BaseSize
	if base <= 0 {
		for _, sp := range spans {
			base = math.Max(base, sp.Size)
		}
	}
	if base <= opts.MinSize {
		return b, nil
	}

	var best *Block
	lo, hi := int(math.Ceil(opts.MinSize)), int(math.Ceil(base))-1
	for lo <= hi {
		mid := (lo + hi) / 2
		cand, err := layoutScaled(ctx, faces, spans, opts, float64(mid)/base)
		if err != nil {
			return nil, err
		}
		if fits(cand, opts) {
			best = cand
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if best == nil {
		Logger().Debug("text: auto-scale reached minimum size", "min", opts.MinSize, "base", base)
		return layoutScaled(ctx, faces, spans, opts, opts.MinSize/base)
	}
	return best, nil
}

func fits(b *Block, opts Options) bool {
	const eps = 1e-6
	if opts.MaxWidth > 0 && b.Width > opts.MaxWidth+eps {
		return false
	}
	if opts.MaxHeight > 0 && b.Height > opts.MaxHeight+eps {
		return false
	}
	return true
}

func layoutScaled(ctx context.Context, provider FaceProvider, spans []Span, opts Options, scale float64) (*Block, error) {
	faces := make([]*Face, len(spans))
	spacing := make([]float64, len(spans))
	for i, sp := range spans {
		size := sp.Size
		if scale != 1 {
			size = math.Max(1, size*scale)
		}
		f, err := provider.Face(ctx, sp.Family, sp.Weight, sp.Italic, size)
		if err != nil {
			return nil, err
		}
		faces[i] = f
		spacing[i] = sp.LetterSpacing * scale
	}

	measure := func(ps []piece) float64 {
		_, w := shapeLine(ps, faces, spacing)
		return w
	}

	b := &Block{Scale: scale}
	if len(spans) == 0 {
		return b, nil
	}

	var top float64
	for _, p := range splitParagraphs(spans) {
		for _, ps := range wrapParagraph(p, opts.MaxWidth, measure) {
			runs, width := shapeLine(ps, faces, spacing)
			line := Line{Runs: runs, Width: width, Top: top}
			if len(runs) == 0 {
				m := faces[p.span].Metrics()
				line.Ascent, line.Descent = m.Ascent, m.Descent
			}
			for _, r := range runs {
				m := r.Face.Metrics()
				line.Ascent = math.Max(line.Ascent, m.Ascent)
				line.Descent = math.Max(line.Descent, m.Descent)
			}
			natural := line.Ascent + line.Descent
			line.Height = natural * opts.LineHeight
			line.Baseline = top + (line.Height-natural)/2 + line.Ascent
			top += line.Height

			b.Width = math.Max(b.Width, width)
			b.Lines = append(b.Lines, line)
		}
	}
	b.Height = top

	for i := range b.Lines {
		l := &b.Lines[i]
		switch opts.Align {
		case AlignCenter:
			l.X = (b.Width - l.Width) / 2
		case AlignRight:
			l.X = b.Width - l.Width
		}
	}
	return b, nil
}

// shapeLine positions the glyphs of one line. Letter spacing follows every
// glyph but the last of the line; kerning applies within a run.
func shapeLine(ps []piece, faces []*Face, spacing []float64) ([]Run, float64) {
	var (
		runs     []Run
		pen      float64
		prev     rune
		prevSpan = -1
	)
	for _, p := range ps {
		face := faces[p.span]
		if len(runs) == 0 || runs[len(runs)-1].Span != p.span {
			runs = append(runs, Run{
				Span:          p.span,
				Face:          face,
				X:             pen,
				LetterSpacing: spacing[p.span],
			})
		}
		run := &runs[len(runs)-1]
		run.Text += p.text
		for _, r := range p.text {
			if prevSpan >= 0 {
				pen += spacing[prevSpan]
				if prevSpan == p.span {
					pen += face.Kern(prev, r)
				}
			}
			if len(run.Glyphs) == 0 {
				run.X = pen
			}
			run.Glyphs = append(run.Glyphs, Glyph{Rune: r, X: pen})
			pen += face.Advance(r)
			prev, prevSpan = r, p.span
		}
		run.Width = pen - run.X
	}
	return runs, pen
}

