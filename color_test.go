package ggthumb

import (
	"errors"
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.NRGBA
	}{
		{"hex6", "#FF0000", color.NRGBA{255, 0, 0, 255}},
		{"hex6 lower", "#3498db", color.NRGBA{0x34, 0x98, 0xdb, 255}},
		{"hex8", "#00FF0080", color.NRGBA{0, 255, 0, 128}},
		{"hex3", "#0F0", color.NRGBA{0, 255, 0, 255}},
		{"hex4", "#F008", color.NRGBA{255, 0, 0, 0x88}},
		{"rgb", "rgb(10, 20, 30)", color.NRGBA{10, 20, 30, 255}},
		{"rgba int alpha", "rgba(10,20,30,128)", color.NRGBA{10, 20, 30, 128}},
		{"rgba float alpha", "RGBA(10, 20, 30, 0.5)", color.NRGBA{10, 20, 30, 128}},
		{"whitespace", "  #000000 ", color.NRGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got := c.NRGBA(); got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "red", "#12", "#GGHHII", "rgb(1,2)", "rgb(300,0,0)", "rgba(1,2,3)", "rgb(a,b,c)"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("ParseColor(%q) error = %v, want *ValidationError", in, err)
			}
			if ve.Field != "color" {
				t.Errorf("Field = %q, want color", ve.Field)
			}
		})
	}
}

func TestHexInvalidIsBlack(t *testing.T) {
	if got := Hex("nope"); got != Black {
		t.Errorf("Hex(invalid) = %v, want Black", got)
	}
	if got := Hex("FFFFFF"); got != White {
		t.Errorf("Hex(FFFFFF) = %v, want White", got)
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Red, "#FF0000"},
		{RGBA8(1, 2, 3, 4), "#01020304"},
		{Transparent, "#00000000"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestColorTextRoundTrip(t *testing.T) {
	in := RGBA8(0x12, 0x34, 0x56, 0x78)
	b, err := in.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var out Color
	if err := out.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if out.NRGBA() != in.NRGBA() {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestColorLerp(t *testing.T) {
	a := Color{0, 0, 0, 0}
	b := Color{1, 1, 1, 1}
	got := a.Lerp(b, 0.5)
	want := Color{0.5, 0.5, 0.5, 0.5}
	if !colorsEqual(got, want, gradientEpsilon) {
		t.Errorf("Lerp(0.5) = %v, want %v", got, want)
	}
	if got := a.Lerp(b, 0); !colorsEqual(got, a, gradientEpsilon) {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{255, 128, 0, 255})
	if got.NRGBA() != (color.NRGBA{255, 128, 0, 255}) {
		t.Errorf("FromColor = %v", got)
	}
}
