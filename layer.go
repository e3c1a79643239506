package ggthumb

import (
	"fmt"

	"github.com/gogpu/ggthumb/internal/blend"
)

// BlendMode selects how a background layer merges with the layers below.
type BlendMode = blend.Mode

// Blend modes.
const (
	BlendNormal   = blend.Normal
	BlendMultiply = blend.Multiply
	BlendScreen   = blend.Screen
	BlendOverlay  = blend.Overlay
	BlendDarken   = blend.Darken
	BlendLighten  = blend.Lighten
)

// ParseBlendMode parses a blend mode name such as "multiply".
func ParseBlendMode(s string) (BlendMode, error) {
	m, ok := blend.Parse(s)
	if !ok {
		return BlendNormal, &ValidationError{Field: "blend_mode", Reason: fmt.Sprintf("unknown blend mode %q", s)}
	}
	return m, nil
}

// Layer is one element of a canvas stack. Implemented by
// *BackgroundLayer, *TextLayer, *ImageLayer, *ShapeLayer and *OutlineLayer.
type Layer interface {
	// Kind returns the layer kind: "background", "text", "image",
	// "shape" or "outline".
	Kind() string

	// Validate reports structurally invalid parameters.
	Validate() error

	isLayer()
}

// BackgroundLayer covers the whole canvas with a color, gradient or image.
type BackgroundLayer struct {
	Fill      Fill
	Opacity   *float64 // nil means 1
	BlendMode BlendMode

	// Adjustment factors; nil or 1 leaves the image unchanged.
	Brightness *float64
	Contrast   *float64
	Saturation *float64

	// BlurRadius is the Gaussian blur radius in pixels; 0 disables it.
	BlurRadius float64
}

// NewBackground returns an opaque, unadjusted background layer.
func NewBackground(fill Fill) *BackgroundLayer {
	return &BackgroundLayer{Fill: fill, BlendMode: BlendNormal}
}

// Float returns a pointer to v, for the optional layer fields.
func Float(v float64) *float64 { return &v }

// valueOr returns *p, or def when p is nil.
func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func (l *BackgroundLayer) opacity() float64 { return valueOr(l.Opacity, 1) }
func (l *TextLayer) opacity() float64       { return valueOr(l.Opacity, 1) }
func (l *ImageLayer) opacity() float64      { return valueOr(l.Opacity, 1) }
func (l *ShapeLayer) opacity() float64      { return valueOr(l.Opacity, 1) }
func (l *OutlineLayer) opacity() float64    { return valueOr(l.Opacity, 1) }

// FontSpec is a logical font request.
type FontSpec struct {
	Family string // Family name, font file path or font URL; empty selects the default font
	Weight int    // 100..900; 0 means 400
	Italic bool
}

// TextPart is one styled run of rich text. Unset fields inherit from the
// owning TextLayer.
type TextPart struct {
	Text          string
	Color         *Color
	Family        string
	Weight        int
	Italic        *bool
	Size          float64
	LetterSpacing *float64

	// Effects replaces the layer effects for this part when non-nil.
	Effects []Effect
}

// TextLayer draws plain or rich text.
type TextLayer struct {
	// Content is used when Parts is empty.
	Content string
	Parts   []TextPart

	Font  FontSpec
	Size  float64
	Color Color

	Position *Position
	Align    *Align

	// MaxWidth enables word wrap; 0 disables it.
	MaxWidth float64
	// MaxHeight bounds the block height when AutoScale is set; 0 means unbounded.
	MaxHeight float64
	AutoScale bool

	LetterSpacing float64
	// LineHeight multiplies the natural line advance.
	LineHeight float64

	Rotation float64  // Degrees, clockwise
	Opacity  *float64 // nil means 1
	Effects  []Effect

	// Badge draws a background behind the whole text block.
	Badge *Badge
}

// Text layer defaults.
const (
	DefaultTextSize   = 16
	DefaultLineHeight = 1.2
)

// NewText returns a black, opaque text layer at the default size.
func NewText(content string) *TextLayer {
	return &TextLayer{
		Content:    content,
		Size:       DefaultTextSize,
		Color:      Black,
		LineHeight: DefaultLineHeight,
	}
}

// NewRichText returns a text layer made of styled parts.
func NewRichText(parts ...TextPart) *TextLayer {
	t := NewText("")
	t.Parts = parts
	return t
}

// ImageLayer draws an image read from a local path or an http(s) URL.
type ImageLayer struct {
	Source   string
	Position *Position
	Align    *Align

	// Width and Height of the drawn image. When only one is set the other
	// follows the aspect ratio; when neither is set the natural size is kept.
	Width, Height int

	Opacity          *float64 // nil means 1
	Rotation         float64  // Degrees, clockwise
	RemoveBackground bool
	BorderRadius     float64
	Effects          []Effect
}

// NewImage returns an opaque image layer.
func NewImage(source string) *ImageLayer {
	return &ImageLayer{Source: source}
}

// ShapeKind selects the geometry of a shape layer.
type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota
	ShapeEllipse
)

func (k ShapeKind) String() string {
	if k == ShapeEllipse {
		return "ellipse"
	}
	return "rectangle"
}

// ParseShapeKind parses "rectangle" or "ellipse".
func ParseShapeKind(s string) (ShapeKind, error) {
	switch s {
	case "rectangle", "rect":
		return ShapeRectangle, nil
	case "ellipse", "circle":
		return ShapeEllipse, nil
	}
	return 0, &ValidationError{Field: "shape", Reason: fmt.Sprintf("unknown shape %q", s)}
}

// ShapeLayer draws a filled and optionally stroked rectangle or ellipse.
// The stroke lies inside the shape bounds.
type ShapeLayer struct {
	Shape         ShapeKind
	Position      *Position
	Align         *Align
	Width, Height float64

	FillColor    Color
	StrokeColor  Color
	StrokeWidth  float64
	BorderRadius float64

	Opacity  *float64 // nil means 1
	Rotation float64  // Degrees, clockwise
	Effects  []Effect
}

// NewShape returns an opaque shape layer.
func NewShape(kind ShapeKind, width, height float64, fill Color) *ShapeLayer {
	return &ShapeLayer{Shape: kind, Width: width, Height: height, FillColor: fill}
}

// OutlineLayer frames the canvas edge. The frame is Width pixels thick
// and inset Offset pixels from the edge.
type OutlineLayer struct {
	Width   int
	Color   Color
	Offset  int
	Opacity *float64 // nil means 1
}

// NewOutline returns an opaque outline layer.
func NewOutline(width int, c Color) *OutlineLayer {
	return &OutlineLayer{Width: width, Color: c}
}

func (*BackgroundLayer) isLayer() {}
func (*TextLayer) isLayer()       {}
func (*ImageLayer) isLayer()      {}
func (*ShapeLayer) isLayer()      {}
func (*OutlineLayer) isLayer()    {}

func (*BackgroundLayer) Kind() string { return "background" }
func (*TextLayer) Kind() string       { return "text" }
func (*ImageLayer) Kind() string      { return "image" }
func (*ShapeLayer) Kind() string      { return "shape" }
func (*OutlineLayer) Kind() string    { return "outline" }

// Validate reports structurally invalid parameters.
func (l *BackgroundLayer) Validate() error {
	if err := validateOpacity(l.Opacity); err != nil {
		return err
	}
	switch f := l.Fill.(type) {
	case nil:
		return &ValidationError{Field: "fill", Reason: "a color, gradient or image is required"}
	case Color:
	case Gradient:
		if err := validateStops(f.ColorStops()); err != nil {
			return err
		}
	case ImageFill:
		if f.Source == "" {
			return &ValidationError{Field: "fill.source", Reason: "empty image source"}
		}
	default:
		return &ValidationError{Field: "fill", Reason: fmt.Sprintf("unsupported fill %T", f)}
	}
	for _, a := range []struct {
		name string
		v    float64
	}{
		{"brightness", valueOr(l.Brightness, 1)},
		{"contrast", valueOr(l.Contrast, 1)},
		{"saturation", valueOr(l.Saturation, 1)},
		{"blur_radius", l.BlurRadius},
	} {
		if a.v < 0 {
			return &ValidationError{Field: a.name, Reason: fmt.Sprintf("must be >= 0, got %v", a.v)}
		}
	}
	if l.BlendMode < BlendNormal || l.BlendMode > BlendLighten {
		return &ValidationError{Field: "blend_mode", Reason: fmt.Sprintf("unknown blend mode %d", int(l.BlendMode))}
	}
	return nil
}

// Validate reports structurally invalid parameters.
func (l *TextLayer) Validate() error {
	if l.Size <= 0 {
		return &ValidationError{Field: "size", Reason: fmt.Sprintf("must be > 0, got %v", l.Size)}
	}
	if l.Content != "" && len(l.Parts) > 0 {
		return &ValidationError{Field: "content", Reason: "content and parts are mutually exclusive"}
	}
	if err := validateAlign(l.Align); err != nil {
		return err
	}
	if err := validateWeight(l.Font.Weight, "font.weight"); err != nil {
		return err
	}
	if l.MaxWidth < 0 || l.MaxHeight < 0 {
		return &ValidationError{Field: "max_width", Reason: "must be >= 0"}
	}
	if l.LineHeight < 0 {
		return &ValidationError{Field: "line_height", Reason: fmt.Sprintf("must be >= 0, got %v", l.LineHeight)}
	}
	if err := validateOpacity(l.Opacity); err != nil {
		return err
	}
	if err := validateEffects(l.Effects, true); err != nil {
		return err
	}
	if l.Badge != nil {
		if err := l.Badge.validate(); err != nil {
			return err
		}
	}
	for i, p := range l.Parts {
		if p.Size < 0 {
			return &ValidationError{Field: fmt.Sprintf("parts[%d].size", i), Reason: "must be >= 0"}
		}
		if err := validateWeight(p.Weight, fmt.Sprintf("parts[%d].weight", i)); err != nil {
			return err
		}
		if err := validateEffects(p.Effects, true); err != nil {
			return err
		}
	}
	return nil
}

// Validate reports structurally invalid parameters.
func (l *ImageLayer) Validate() error {
	if l.Source == "" {
		return &ValidationError{Field: "source", Reason: "empty image source"}
	}
	if l.Width < 0 || l.Height < 0 {
		return &ValidationError{Field: "size", Reason: "must be >= 0"}
	}
	if l.BorderRadius < 0 {
		return &ValidationError{Field: "border_radius", Reason: "must be >= 0"}
	}
	if err := validateAlign(l.Align); err != nil {
		return err
	}
	if err := validateOpacity(l.Opacity); err != nil {
		return err
	}
	return validateEffects(l.Effects, false)
}

// Validate reports structurally invalid parameters.
func (l *ShapeLayer) Validate() error {
	if l.Shape != ShapeRectangle && l.Shape != ShapeEllipse {
		return &ValidationError{Field: "shape", Reason: fmt.Sprintf("unknown shape %d", int(l.Shape))}
	}
	if l.Width <= 0 || l.Height <= 0 {
		return &ValidationError{Field: "size", Reason: fmt.Sprintf("must be > 0, got %vx%v", l.Width, l.Height)}
	}
	if l.StrokeWidth < 0 || l.BorderRadius < 0 {
		return &ValidationError{Field: "stroke_width", Reason: "must be >= 0"}
	}
	if err := validateAlign(l.Align); err != nil {
		return err
	}
	if err := validateOpacity(l.Opacity); err != nil {
		return err
	}
	return validateEffects(l.Effects, false)
}

// Validate reports structurally invalid parameters.
func (l *OutlineLayer) Validate() error {
	if l.Width <= 0 {
		return &ValidationError{Field: "width", Reason: fmt.Sprintf("must be > 0, got %d", l.Width)}
	}
	if l.Offset < 0 {
		return &ValidationError{Field: "offset", Reason: fmt.Sprintf("must be >= 0, got %d", l.Offset)}
	}
	return validateOpacity(l.Opacity)
}

func validateOpacity(p *float64) error {
	if p == nil {
		return nil
	}
	if v := *p; v < 0 || v > 1 {
		return &ValidationError{Field: "opacity", Reason: fmt.Sprintf("must be in [0, 1], got %v", v)}
	}
	return nil
}

func validateWeight(w int, field string) error {
	if w != 0 && (w < 100 || w > 900) {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be in 100..900, got %d", w)}
	}
	return nil
}
