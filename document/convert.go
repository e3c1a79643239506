package document

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggthumb"
	"github.com/gogpu/ggthumb/text"
)

// Canvas builds the canvas described by d. Layer errors are reported as
// *ggthumb.LayerError.
func (d *Document) Canvas() (*ggthumb.Canvas, error) {
	c, err := ggthumb.NewCanvas(d.Width, d.Height)
	if err != nil {
		return nil, err
	}
	for i := range d.Layers {
		l, err := d.Layers[i].layer()
		if err != nil {
			le := &ggthumb.LayerError{Index: i, Kind: d.Layers[i].Type, Err: err}
			var ve *ggthumb.ValidationError
			if errors.As(err, &ve) {
				le.Field = ve.Field
			}
			return nil, le
		}
		c.Add(l)
	}
	return c, nil
}

func invalid(field, format string, args ...any) error {
	return &ggthumb.ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (l *Layer) layer() (ggthumb.Layer, error) {
	switch l.Type {
	case "background":
		return l.background()
	case "text":
		return l.text()
	case "image":
		return l.image()
	case "shape":
		return l.shape()
	case "outline":
		return l.outline()
	case "":
		return nil, invalid("type", "missing layer type")
	}
	return nil, invalid("type", "unknown layer type %q", l.Type)
}

func (l *Layer) background() (ggthumb.Layer, error) {
	var fills []ggthumb.Fill
	if l.Color != nil {
		fills = append(fills, *l.Color)
	}
	if l.Gradient != nil {
		g, err := l.Gradient.fill()
		if err != nil {
			return nil, err
		}
		fills = append(fills, g)
	}
	if l.Image != "" {
		f := ggthumb.ImageFill{Source: l.Image}
		if l.Fit != "" {
			m, err := ggthumb.ParseFitMode(l.Fit)
			if err != nil {
				return nil, err
			}
			f.Fit = m
		}
		fills = append(fills, f)
	}
	if len(fills) != 1 {
		return nil, invalid("fill", "background needs exactly one of color, gradient or image")
	}

	b := ggthumb.NewBackground(fills[0])
	b.Opacity = clone(l.Opacity)
	if l.BlendMode != "" {
		m, err := ggthumb.ParseBlendMode(l.BlendMode)
		if err != nil {
			return nil, err
		}
		b.BlendMode = m
	}
	b.Brightness = clone(l.Brightness)
	b.Contrast = clone(l.Contrast)
	b.Saturation = clone(l.Saturation)
	b.BlurRadius = l.Blur
	return b, nil
}

func (g *Gradient) fill() (ggthumb.Fill, error) {
	switch g.Type {
	case "", "linear":
		lg := ggthumb.NewLinearGradient(g.Angle)
		for _, s := range g.Stops {
			lg.AddColorStop(s.Offset, s.Color)
		}
		return lg, nil
	case "radial":
		rg := ggthumb.NewRadialGradient()
		if len(g.Center) == 2 {
			rg.SetCenter(g.Center[0], g.Center[1])
		} else if g.Center != nil {
			return nil, invalid("gradient.center", "center needs two values")
		}
		for _, s := range g.Stops {
			rg.AddColorStop(s.Offset, s.Color)
		}
		return rg, nil
	}
	return nil, invalid("gradient.type", "unknown gradient type %q", g.Type)
}

func (l *Layer) position() (*ggthumb.Position, error) {
	if l.Position == nil {
		return nil, nil
	}
	if len(l.Position) != 2 {
		return nil, invalid("position", "position needs two coordinates, got %d", len(l.Position))
	}
	return &ggthumb.Position{X: ggthumb.Coord(l.Position[0]), Y: ggthumb.Coord(l.Position[1])}, nil
}

func (l *Layer) text() (ggthumb.Layer, error) {
	t := ggthumb.NewText("")
	if l.Content != nil {
		t.Content = l.Content.Text
		for i, p := range l.Content.Parts {
			part, err := p.part()
			if err != nil {
				var ve *ggthumb.ValidationError
				if errors.As(err, &ve) {
					ve.Field = fmt.Sprintf("parts[%d].%s", i, ve.Field)
				}
				return nil, err
			}
			t.Parts = append(t.Parts, part)
		}
	}
	t.Font.Family = l.Font
	t.Font.Italic = l.Italic
	switch {
	case l.Weight != nil:
		t.Font.Weight = int(*l.Weight)
	case l.Bold:
		t.Font.Weight = text.WeightBold
	}
	if l.Size > 0 {
		t.Size = l.Size
	}
	if l.Color != nil {
		t.Color = *l.Color
	}
	pos, err := l.position()
	if err != nil {
		return nil, err
	}
	t.Position = pos
	t.Align = l.Align
	t.MaxWidth = l.MaxWidth
	t.MaxHeight = l.MaxHeight
	t.AutoScale = l.AutoScale
	if l.LineHeight > 0 {
		t.LineHeight = l.LineHeight
	}
	t.LetterSpacing = l.LetterSpacing
	t.Rotation = l.Rotation
	t.Opacity = clone(l.Opacity)

	// A background entry in the layer effects frames the whole block.
	effects, err := convertEffects(l.Effects)
	if err != nil {
		return nil, err
	}
	for _, e := range effects {
		if b, ok := e.(ggthumb.Badge); ok && t.Badge == nil {
			t.Badge = &b
			continue
		}
		t.Effects = append(t.Effects, e)
	}
	return t, nil
}

func (p *Part) part() (ggthumb.TextPart, error) {
	tp := ggthumb.TextPart{
		Text:          p.Text,
		Color:         p.Color,
		Family:        p.Font,
		Italic:        p.Italic,
		Size:          p.Size,
		LetterSpacing: p.LetterSpacing,
	}
	switch {
	case p.Weight != nil:
		tp.Weight = int(*p.Weight)
	case p.Bold != nil && *p.Bold:
		tp.Weight = text.WeightBold
	case p.Bold != nil:
		tp.Weight = text.WeightRegular
	}
	if p.Effects != nil {
		effects, err := convertEffects(*p.Effects)
		if err != nil {
			return tp, err
		}
		tp.Effects = append([]ggthumb.Effect{}, effects...)
	}
	return tp, nil
}

func (l *Layer) image() (ggthumb.Layer, error) {
	im := ggthumb.NewImage(l.Path)
	pos, err := l.position()
	if err != nil {
		return nil, err
	}
	im.Position = pos
	im.Align = l.Align
	im.Width, im.Height = int(l.Width), int(l.Height)
	im.Opacity = clone(l.Opacity)
	im.Rotation = l.Rotation
	im.RemoveBackground = l.RemoveBackground
	im.BorderRadius = l.BorderRadius
	if im.Effects, err = convertEffects(l.Effects); err != nil {
		return nil, err
	}
	return im, nil
}

func (l *Layer) shape() (ggthumb.Layer, error) {
	kind, err := ggthumb.ParseShapeKind(l.Shape)
	if err != nil {
		return nil, err
	}
	fill := ggthumb.Black
	if l.Color != nil {
		fill = *l.Color
	}
	s := ggthumb.NewShape(kind, l.Width, l.Height, fill)
	if s.Position, err = l.position(); err != nil {
		return nil, err
	}
	s.Align = l.Align
	if l.StrokeColor != nil {
		s.StrokeColor = *l.StrokeColor
	}
	s.StrokeWidth = l.StrokeWidth
	s.BorderRadius = l.BorderRadius
	s.Opacity = clone(l.Opacity)
	s.Rotation = l.Rotation
	if s.Effects, err = convertEffects(l.Effects); err != nil {
		return nil, err
	}
	return s, nil
}

func (l *Layer) outline() (ggthumb.Layer, error) {
	c := ggthumb.Black
	if l.Color != nil {
		c = *l.Color
	}
	o := ggthumb.NewOutline(int(l.Width), c)
	o.Offset = l.Offset
	o.Opacity = clone(l.Opacity)
	return o, nil
}

func convertEffects(in []Effect) ([]ggthumb.Effect, error) {
	var out []ggthumb.Effect
	for i, e := range in {
		ge, err := e.effect()
		if err != nil {
			var ve *ggthumb.ValidationError
			if errors.As(err, &ve) {
				ve.Field = fmt.Sprintf("effects[%d].%s", i, ve.Field)
			}
			return nil, err
		}
		out = append(out, ge)
	}
	return out, nil
}

func (e *Effect) color(def ggthumb.Color) ggthumb.Color {
	if e.Color != nil {
		return *e.Color
	}
	return def
}

func (e *Effect) effect() (ggthumb.Effect, error) {
	switch e.Type {
	case "stroke":
		return ggthumb.Stroke{Width: e.Width, Color: e.color(ggthumb.Black)}, nil
	case "shadow":
		return ggthumb.Shadow{
			OffsetX:    e.OffsetX,
			OffsetY:    e.OffsetY,
			Color:      e.color(ggthumb.Black),
			BlurRadius: e.BlurRadius,
		}, nil
	case "glow":
		g := ggthumb.NewGlow(e.color(ggthumb.White), e.Radius)
		if e.Opacity != nil {
			g.Opacity = *e.Opacity
		}
		return g, nil
	case "background":
		c := e.color(ggthumb.Black)
		if e.Opacity != nil {
			c = c.WithAlpha(c.A * *e.Opacity)
		}
		b := ggthumb.Badge{Color: c, BorderRadius: e.BorderRadius}
		if e.Padding != nil {
			b.Padding = ggthumb.Padding(*e.Padding)
		}
		return b, nil
	}
	return nil, invalid("type", "unknown effect type %q", e.Type)
}

// FromCanvas converts c into its serialized form.
func FromCanvas(c *ggthumb.Canvas) (*Document, error) {
	if c == nil {
		return nil, invalid("canvas", "canvas is nil")
	}
	d := &Document{Width: c.Width(), Height: c.Height(), Layers: []Layer{}}
	for i, gl := range c.Layers() {
		l, err := fromLayer(gl)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		d.Layers = append(d.Layers, l)
	}
	return d, nil
}

func ptr[T any](v T) *T { return &v }

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return ptr(*p)
}

func fromLayer(gl ggthumb.Layer) (Layer, error) {
	switch v := gl.(type) {
	case *ggthumb.BackgroundLayer:
		return fromBackground(v)
	case *ggthumb.TextLayer:
		return fromText(v), nil
	case *ggthumb.ImageLayer:
		return Layer{
			Type:             "image",
			Path:             v.Source,
			Position:         fromPosition(v.Position),
			Align:            v.Align,
			Width:            float64(v.Width),
			Height:           float64(v.Height),
			Opacity:          clone(v.Opacity),
			Rotation:         v.Rotation,
			RemoveBackground: v.RemoveBackground,
			BorderRadius:     v.BorderRadius,
			Effects:          fromEffects(v.Effects),
		}, nil
	case *ggthumb.ShapeLayer:
		l := Layer{
			Type:         "shape",
			Shape:        v.Shape.String(),
			Position:     fromPosition(v.Position),
			Align:        v.Align,
			Width:        v.Width,
			Height:       v.Height,
			Color:        ptr(v.FillColor),
			StrokeWidth:  v.StrokeWidth,
			BorderRadius: v.BorderRadius,
			Opacity:      clone(v.Opacity),
			Rotation:     v.Rotation,
			Effects:      fromEffects(v.Effects),
		}
		if v.StrokeWidth > 0 {
			l.StrokeColor = ptr(v.StrokeColor)
		}
		return l, nil
	case *ggthumb.OutlineLayer:
		return Layer{
			Type:    "outline",
			Width:   float64(v.Width),
			Color:   ptr(v.Color),
			Offset:  v.Offset,
			Opacity: clone(v.Opacity),
		}, nil
	case nil:
		return Layer{}, invalid("layer", "layer is nil")
	}
	return Layer{}, invalid("type", "unsupported layer %T", gl)
}

func fromBackground(b *ggthumb.BackgroundLayer) (Layer, error) {
	l := Layer{Type: "background", Opacity: clone(b.Opacity), Blur: b.BlurRadius}
	switch f := b.Fill.(type) {
	case ggthumb.Color:
		l.Color = ptr(f)
	case *ggthumb.LinearGradient:
		l.Gradient = &Gradient{Type: "linear", Angle: f.Angle, Stops: fromStops(f.Stops)}
	case *ggthumb.RadialGradient:
		l.Gradient = &Gradient{
			Type:   "radial",
			Center: []float64{f.CenterX, f.CenterY},
			Stops:  fromStops(f.Stops),
		}
	case ggthumb.ImageFill:
		l.Image = f.Source
		l.Fit = f.Fit.String()
	default:
		return Layer{}, invalid("fill", "unsupported fill %T", b.Fill)
	}
	if b.BlendMode != ggthumb.BlendNormal {
		l.BlendMode = b.BlendMode.String()
	}
	l.Brightness = clone(b.Brightness)
	l.Contrast = clone(b.Contrast)
	l.Saturation = clone(b.Saturation)
	return l, nil
}

func fromStops(stops []ggthumb.ColorStop) []Stop {
	out := make([]Stop, len(stops))
	for i, s := range stops {
		out[i] = Stop{Color: s.Color, Offset: s.Offset}
	}
	return out
}

func fromText(t *ggthumb.TextLayer) Layer {
	l := Layer{
		Type:          "text",
		Font:          t.Font.Family,
		Italic:        t.Font.Italic,
		Size:          t.Size,
		Color:         ptr(t.Color),
		Position:      fromPosition(t.Position),
		Align:         t.Align,
		MaxWidth:      t.MaxWidth,
		MaxHeight:     t.MaxHeight,
		AutoScale:     t.AutoScale,
		LineHeight:    t.LineHeight,
		LetterSpacing: t.LetterSpacing,
		Rotation:      t.Rotation,
		Opacity:       clone(t.Opacity),
		Effects:       fromEffects(t.Effects),
	}
	if t.Font.Weight != 0 {
		l.Weight = ptr(Weight(t.Font.Weight))
	}
	if t.Badge != nil {
		l.Effects = append([]Effect{fromEffect(*t.Badge)}, l.Effects...)
	}
	if len(t.Parts) == 0 {
		l.Content = &Content{Text: t.Content}
		return l
	}
	parts := make([]Part, len(t.Parts))
	for i, p := range t.Parts {
		parts[i] = Part{
			Text:          p.Text,
			Color:         p.Color,
			Font:          p.Family,
			Size:          p.Size,
			Italic:        p.Italic,
			LetterSpacing: p.LetterSpacing,
		}
		if p.Weight != 0 {
			parts[i].Weight = ptr(Weight(p.Weight))
		}
		if p.Effects != nil {
			parts[i].Effects = ptr(fromEffects(p.Effects))
			if *parts[i].Effects == nil {
				*parts[i].Effects = []Effect{}
			}
		}
	}
	l.Content = &Content{Parts: parts}
	return l
}

func fromPosition(p *ggthumb.Position) []Coord {
	if p == nil {
		return nil
	}
	return []Coord{Coord(p.X), Coord(p.Y)}
}

func fromEffects(effects []ggthumb.Effect) []Effect {
	var out []Effect
	for _, e := range effects {
		out = append(out, fromEffect(e))
	}
	return out
}

func fromEffect(e ggthumb.Effect) Effect {
	switch v := e.(type) {
	case ggthumb.Stroke:
		return Effect{Type: "stroke", Width: v.Width, Color: ptr(v.Color)}
	case ggthumb.Shadow:
		return Effect{
			Type:       "shadow",
			OffsetX:    v.OffsetX,
			OffsetY:    v.OffsetY,
			Color:      ptr(v.Color),
			BlurRadius: v.BlurRadius,
		}
	case ggthumb.Glow:
		return Effect{Type: "glow", Color: ptr(v.Color), Radius: v.Radius, Opacity: ptr(v.Opacity)}
	case ggthumb.Badge:
		return Effect{
			Type:         "background",
			Color:        ptr(v.Color),
			Padding:      ptr(Padding(v.Padding)),
			BorderRadius: v.BorderRadius,
		}
	}
	return Effect{Type: e.EffectKind()}
}
