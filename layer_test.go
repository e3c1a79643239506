package ggthumb

import (
	"errors"
	"testing"
)

func TestLayerValidate(t *testing.T) {
	tests := []struct {
		name      string
		layer     Layer
		wantField string
	}{
		{"background ok", NewBackground(Red), ""},
		{"background no fill", &BackgroundLayer{}, "fill"},
		{"background empty stops", NewBackground(NewLinearGradient(0)), "stops"},
		{"background stop offset", NewBackground(NewRadialGradient().AddColorStop(1.5, Red)), "stops[0].offset"},
		{"background empty image", NewBackground(ImageFill{}), "fill.source"},
		{"background negative blur", func() Layer { l := NewBackground(Red); l.BlurRadius = -1; return l }(), "blur_radius"},
		{"background bad blend", func() Layer { l := NewBackground(Red); l.BlendMode = 99; return l }(), "blend_mode"},

		{"text ok", NewText("hi"), ""},
		{"text zero size", func() Layer { l := NewText("hi"); l.Size = 0; return l }(), "size"},
		{"text content and parts", func() Layer { l := NewRichText(TextPart{Text: "a"}); l.Content = "b"; return l }(), "content"},
		{"text weight", func() Layer { l := NewText("hi"); l.Font.Weight = 50; return l }(), "font.weight"},
		{"text part weight", NewRichText(TextPart{Text: "a", Weight: 1000}), "parts[0].weight"},
		{"text stroke", func() Layer { l := NewText("hi"); l.Effects = []Effect{Stroke{}}; return l }(), "stroke.width"},
		{"text align", &TextLayer{Content: "hi", Size: 12, Align: &Align{H: 7}}, "align"},
		{"text literal", &TextLayer{Content: "hi", Size: 12}, ""},
		{"background adjustment", &BackgroundLayer{Fill: Red, Contrast: Float(-1)}, "contrast"},
		{"text badge padding", func() Layer { l := NewText("hi"); l.Badge = &Badge{Padding: UniformPadding(-1)}; return l }(), "background.padding"},

		{"image ok", NewImage("a.png"), ""},
		{"image no source", NewImage(""), "source"},
		{"image align", &ImageLayer{Source: "a.png", Align: &Align{V: -1}}, "align"},
		{"image badge", func() Layer { l := NewImage("a.png"); l.Effects = []Effect{Badge{}}; return l }(), "effects[0]"},

		{"shape ok", NewShape(ShapeRectangle, 10, 10, Red), ""},
		{"shape align", &ShapeLayer{Width: 1, Height: 1, Align: &Align{H: AlignRight, V: 3}}, "align"},
		{"shape zero height", NewShape(ShapeEllipse, 10, 0, Red), "size"},
		{"shape glow opacity", func() Layer {
			l := NewShape(ShapeRectangle, 10, 10, Red)
			l.Effects = []Effect{Glow{Radius: 2, Opacity: 3}}
			return l
		}(), "glow.opacity"},

		{"outline ok", NewOutline(3, Black), ""},
		{"outline zero width", NewOutline(0, Black), "width"},
		{"outline opacity", &OutlineLayer{Width: 1, Opacity: Float(1.5)}, "opacity"},
		{"outline negative offset", &OutlineLayer{Width: 1, Offset: -2}, "offset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layer.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate = %v, want nil", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate = %v, want *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestEmptyStopsSentinel(t *testing.T) {
	err := NewBackground(NewLinearGradient(90)).Validate()
	if !errors.Is(err, ErrEmptyStops) {
		t.Errorf("err = %v, want ErrEmptyStops", err)
	}
	if _, err := rasterizeGradient(NewLinearGradient(90), 2, 2); !errors.Is(err, ErrEmptyStops) {
		t.Errorf("rasterizeGradient err = %v, want ErrEmptyStops", err)
	}
}

func TestParseEnums(t *testing.T) {
	if m, err := ParseBlendMode("multiply"); err != nil || m != BlendMultiply {
		t.Errorf("ParseBlendMode(multiply) = %v, %v", m, err)
	}
	if _, err := ParseBlendMode("dodge"); err == nil {
		t.Error("ParseBlendMode(dodge) succeeded")
	}
	if k, err := ParseShapeKind("circle"); err != nil || k != ShapeEllipse {
		t.Errorf("ParseShapeKind(circle) = %v, %v", k, err)
	}
	if _, err := ParseShapeKind("star"); err == nil {
		t.Error("ParseShapeKind(star) succeeded")
	}
	if f, err := ParseFitMode("Contain"); err != nil || f != FitContain {
		t.Errorf("ParseFitMode(Contain) = %v, %v", f, err)
	}
	if _, err := ParseFitMode("zoom"); err == nil {
		t.Error("ParseFitMode(zoom) succeeded")
	}
}
