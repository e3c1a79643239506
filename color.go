package ggthumb

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a straight (non-premultiplied) sRGB color.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// RGBA8 creates a color from 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}

// NRGBA converts the color to 8-bit straight alpha.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Lerp performs channel-wise linear interpolation between two colors,
// alpha included.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// String returns the color as "#RRGGBB", or "#RRGGBBAA" when translucent.
func (c Color) String() string {
	n := c.NRGBA()
	if n.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor parses a color expression.
// Supported formats:
//
//	#RGB #RGBA #RRGGBB #RRGGBBAA
//	rgb(r, g, b)         components 0..255
//	rgba(r, g, b, a)     a is 0..255, or 0..1 when written with a decimal point
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		return parseFuncColor(s, s[5:len(s)-1], 4)
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		return parseFuncColor(s, s[4:len(s)-1], 3)
	}
	return Color{}, &ValidationError{Field: "color", Reason: fmt.Sprintf("unsupported color %q", s)}
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex creates a color from a hex string, with or without the leading '#'.
// Invalid input yields opaque black.
func Hex(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")
	c, err := parseHexColor(hex)
	if err != nil {
		return Black
	}
	return c
}

func parseHexColor(hex string) (Color, error) {
	var v [4]uint8
	v[3] = 255
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			d, ok := hexDigit(hex[i])
			if !ok {
				return Color{}, badHex(hex)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return Color{}, badHex(hex)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Color{}, badHex(hex)
	}
	return RGBA8(v[0], v[1], v[2], v[3]), nil
}

func badHex(hex string) error {
	return &ValidationError{Field: "color", Reason: fmt.Sprintf("invalid hex color %q", "#"+hex)}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func parseFuncColor(orig, args string, n int) (Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return Color{}, &ValidationError{Field: "color", Reason: fmt.Sprintf("%q needs %d components", orig, n)}
	}
	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		p = strings.TrimSpace(p)
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Color{}, &ValidationError{Field: "color", Reason: fmt.Sprintf("%q: bad component %q", orig, p)}
		}
		switch {
		case i == 3 && strings.Contains(p, "."):
			v[i] = clamp01(f)
		default:
			if f < 0 || f > 255 {
				return Color{}, &ValidationError{Field: "color", Reason: fmt.Sprintf("%q: component %v out of range 0..255", orig, f)}
			}
			v[i] = f / 255
		}
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func to8(x float64) uint8 {
	return uint8(clamp255(x*255) + 0.5)
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = Color{}
)
