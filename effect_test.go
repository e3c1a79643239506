package ggthumb

import (
	"testing"
)

func TestSplitEffects(t *testing.T) {
	effects := []Effect{
		Stroke{Width: 2, Color: Black},
		Badge{Color: Red, Padding: UniformPadding(4), BorderRadius: 2},
		NewGlow(Blue, 4),
		Shadow{OffsetX: 2, OffsetY: -3, BlurRadius: 1, Color: Black},
		Stroke{Width: 1, Color: White},
	}
	s := splitEffects(effects, 1)
	if len(s.badges) != 1 || len(s.glows) != 1 || len(s.shadows) != 1 || len(s.strokes) != 2 {
		t.Fatalf("split = %+v", s)
	}
	// Strokes keep list order.
	if s.strokes[0].Width != 2 || s.strokes[1].Width != 1 {
		t.Errorf("strokes = %+v", s.strokes)
	}
	if s.empty() {
		t.Error("empty() = true")
	}
	if !splitEffects(nil, 1).empty() {
		t.Error("empty() = false for no effects")
	}
}

func TestSplitEffectsScaled(t *testing.T) {
	s := splitEffects([]Effect{
		Stroke{Width: 4},
		Shadow{OffsetX: 10, OffsetY: -6, BlurRadius: 2},
		Glow{Radius: 8, Opacity: 0.5},
		Badge{Padding: SymmetricPadding(2, 4), BorderRadius: 6},
	}, 0.5)

	if got := s.strokes[0].Width; got != 2 {
		t.Errorf("stroke width = %v, want 2", got)
	}
	if sh := s.shadows[0]; sh.OffsetX != 5 || sh.OffsetY != -3 || sh.BlurRadius != 1 {
		t.Errorf("shadow = %+v", sh)
	}
	if g := s.glows[0]; g.Radius != 4 || g.Opacity != 0.5 {
		t.Errorf("glow = %+v, opacity must not scale", g)
	}
	want := Padding{Top: 1, Right: 2, Bottom: 1, Left: 2}
	if b := s.badges[0]; b.Padding != want || b.BorderRadius != 3 {
		t.Errorf("badge = %+v", b)
	}
}

func TestEffectMargin(t *testing.T) {
	tests := []struct {
		name    string
		effects []Effect
		want    int
	}{
		{"none", nil, 1},
		{"stroke", []Effect{Stroke{Width: 3}}, 4},
		{"shadow", []Effect{Shadow{OffsetX: -5, OffsetY: 2, BlurRadius: 1}}, 9},
		{"glow", []Effect{Glow{Radius: 2, Opacity: 1}}, 8},
		{"largest wins", []Effect{Stroke{Width: 20}, Glow{Radius: 2, Opacity: 1}}, 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitEffects(tt.effects, 1).margin(); got != tt.want {
				t.Errorf("margin = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPaddingForms(t *testing.T) {
	if p := UniformPadding(3); p != (Padding{3, 3, 3, 3}) {
		t.Errorf("UniformPadding = %+v", p)
	}
	if p := SymmetricPadding(1, 2); p != (Padding{Top: 1, Right: 2, Bottom: 1, Left: 2}) {
		t.Errorf("SymmetricPadding = %+v", p)
	}
}

func TestEffectKinds(t *testing.T) {
	tests := []struct {
		e    Effect
		want string
	}{
		{Stroke{}, "stroke"},
		{Shadow{}, "shadow"},
		{Glow{}, "glow"},
		{Badge{}, "background"},
	}
	for _, tt := range tests {
		if got := tt.e.EffectKind(); got != tt.want {
			t.Errorf("%T.EffectKind() = %q, want %q", tt.e, got, tt.want)
		}
	}
}
