package ggthumb

import (
	"fmt"
	"math"
)

// Effect is a decoration rendered around text, image or shape alpha.
// Implemented by Stroke, Shadow, Glow and Badge.
//
// Effects render in a fixed order regardless of list order: Badge,
// Glow, Shadow, Stroke (in list order, outermost first), then the fill.
type Effect interface {
	// EffectKind returns the effect name, e.g. "stroke".
	EffectKind() string

	validate() error
	scaled(f float64) Effect
}

// Stroke outlines glyphs or shapes.
type Stroke struct {
	Width float64
	Color Color
}

// Shadow draws a blurred, offset copy of the alpha beneath it.
type Shadow struct {
	OffsetX, OffsetY float64
	Color            Color
	BlurRadius       float64
}

// Glow draws a dilated, blurred halo of the alpha beneath it.
// An Opacity of zero draws nothing; NewGlow sets it to 1.
type Glow struct {
	Color   Color
	Radius  float64
	Opacity float64
}

// NewGlow returns a fully opaque glow.
func NewGlow(c Color, radius float64) Glow {
	return Glow{Color: c, Radius: radius, Opacity: 1}
}

// Badge draws a filled, optionally rounded rectangle behind text.
type Badge struct {
	Color        Color
	Padding      Padding
	BorderRadius float64
}

// Padding is the space between text and the edge of a badge.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// UniformPadding pads all four sides by v.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// SymmetricPadding pads top and bottom by vertical, left and right by horizontal.
func SymmetricPadding(vertical, horizontal float64) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

func (Stroke) EffectKind() string { return "stroke" }
func (Shadow) EffectKind() string { return "shadow" }
func (Glow) EffectKind() string   { return "glow" }
func (Badge) EffectKind() string  { return "background" }

func (e Stroke) validate() error {
	if e.Width <= 0 {
		return &ValidationError{Field: "stroke.width", Reason: fmt.Sprintf("must be > 0, got %v", e.Width)}
	}
	return nil
}

func (e Shadow) validate() error {
	if e.BlurRadius < 0 {
		return &ValidationError{Field: "shadow.blur_radius", Reason: fmt.Sprintf("must be >= 0, got %v", e.BlurRadius)}
	}
	return nil
}

func (e Glow) validate() error {
	if e.Radius <= 0 {
		return &ValidationError{Field: "glow.radius", Reason: fmt.Sprintf("must be > 0, got %v", e.Radius)}
	}
	if e.Opacity < 0 || e.Opacity > 1 {
		return &ValidationError{Field: "glow.opacity", Reason: fmt.Sprintf("must be in [0, 1], got %v", e.Opacity)}
	}
	return nil
}

func (e Badge) validate() error {
	p := e.Padding
	if p.Top < 0 || p.Right < 0 || p.Bottom < 0 || p.Left < 0 {
		return &ValidationError{Field: "background.padding", Reason: "must be >= 0"}
	}
	if e.BorderRadius < 0 {
		return &ValidationError{Field: "background.border_radius", Reason: fmt.Sprintf("must be >= 0, got %v", e.BorderRadius)}
	}
	return nil
}

func (e Stroke) scaled(f float64) Effect {
	e.Width *= f
	return e
}

func (e Shadow) scaled(f float64) Effect {
	e.OffsetX *= f
	e.OffsetY *= f
	e.BlurRadius *= f
	return e
}

func (e Glow) scaled(f float64) Effect {
	e.Radius *= f
	return e
}

func (e Badge) scaled(f float64) Effect {
	e.Padding = Padding{Top: e.Padding.Top * f, Right: e.Padding.Right * f, Bottom: e.Padding.Bottom * f, Left: e.Padding.Left * f}
	e.BorderRadius *= f
	return e
}

// effectSet is an effect list split by render pass.
type effectSet struct {
	badges  []Badge
	glows   []Glow
	shadows []Shadow
	strokes []Stroke
}

func splitEffects(effects []Effect, scale float64) effectSet {
	var s effectSet
	for _, e := range effects {
		if scale != 1 {
			e = e.scaled(scale)
		}
		switch e := e.(type) {
		case Badge:
			s.badges = append(s.badges, e)
		case Glow:
			s.glows = append(s.glows, e)
		case Shadow:
			s.shadows = append(s.shadows, e)
		case Stroke:
			s.strokes = append(s.strokes, e)
		}
	}
	return s
}

func (s effectSet) empty() bool {
	return len(s.badges)+len(s.glows)+len(s.shadows)+len(s.strokes) == 0
}

// margin returns how far the effects can reach outside the alpha bounds.
func (s effectSet) margin() int {
	var m float64
	for _, g := range s.glows {
		m = math.Max(m, glowExpansion(g.Radius)+g.Radius*3)
	}
	for _, sh := range s.shadows {
		m = math.Max(m, sh.BlurRadius*3+math.Max(math.Abs(sh.OffsetX), math.Abs(sh.OffsetY)))
	}
	for _, st := range s.strokes {
		m = math.Max(m, st.Width)
	}
	return int(math.Ceil(m)) + 1
}

func glowExpansion(radius float64) float64 {
	return math.Max(1, radius/2)
}

func validateEffects(effects []Effect, allowBadge bool) error {
	for i, e := range effects {
		if e == nil {
			return &ValidationError{Field: fmt.Sprintf("effects[%d]", i), Reason: "nil effect"}
		}
		if _, ok := e.(Badge); ok && !allowBadge {
			return &ValidationError{Field: fmt.Sprintf("effects[%d]", i), Reason: "background effect is only supported on text"}
		}
		if err := e.validate(); err != nil {
			return err
		}
	}
	return nil
}
