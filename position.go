package ggthumb

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord is one axis of a position: either pixels or a percentage of the
// canvas extent along that axis.
type Coord struct {
	Value   float64
	Percent bool
}

// Px returns a pixel coordinate.
func Px(v float64) Coord { return Coord{Value: v} }

// Pct returns a percentage coordinate (50 means half the canvas).
func Pct(v float64) Coord { return Coord{Value: v, Percent: true} }

// Resolve converts the coordinate to pixels for a canvas extent.
func (c Coord) Resolve(extent int) float64 {
	if c.Percent {
		return c.Value * float64(extent) / 100
	}
	return c.Value
}

func (c Coord) String() string {
	v := strconv.FormatFloat(c.Value, 'f', -1, 64)
	if c.Percent {
		return v + "%"
	}
	return v
}

// MarshalText implements encoding.TextMarshaler.
func (c Coord) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Coord) UnmarshalText(b []byte) error {
	v, err := ParseCoord(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseCoord parses "120", "120px" or "50%".
func ParseCoord(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	pct := strings.HasSuffix(s, "%")
	num := strings.TrimSuffix(strings.TrimSuffix(s, "%"), "px")
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Coord{}, &ValidationError{Field: "position", Reason: fmt.Sprintf("invalid coordinate %q", s)}
	}
	return Coord{Value: v, Percent: pct}, nil
}

// Position is an explicit placement point.
type Position struct {
	X, Y Coord
}

// At returns a pixel position.
func At(x, y float64) *Position {
	return &Position{X: Px(x), Y: Px(y)}
}

// AtPercent returns a position in canvas percentages.
func AtPercent(x, y float64) *Position {
	return &Position{X: Pct(x), Y: Pct(y)}
}

// HAlign is horizontal alignment.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is vertical alignment.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Align is one of the nine anchor points of a box.
type Align struct {
	H HAlign
	V VAlign
}

var hNames = map[string]HAlign{"left": AlignLeft, "center": AlignCenter, "right": AlignRight}
var vNames = map[string]VAlign{"top": AlignTop, "middle": AlignMiddle, "bottom": AlignBottom}

// ParseAlign parses alignments like "center", "top-left", "right bottom"
// or "center,middle". Missing axes default to center and middle.
func ParseAlign(s string) (Align, error) {
	a := Align{H: AlignCenter, V: AlignMiddle}
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == ','
	})
	if len(fields) == 0 || len(fields) > 2 {
		return Align{}, &ValidationError{Field: "align", Reason: fmt.Sprintf("invalid alignment %q", s)}
	}
	var seenH, seenV bool
	for _, f := range fields {
		if h, ok := hNames[f]; ok && !seenH {
			a.H, seenH = h, true
			continue
		}
		if v, ok := vNames[f]; ok && !seenV {
			a.V, seenV = v, true
			continue
		}
		return Align{}, &ValidationError{Field: "align", Reason: fmt.Sprintf("invalid alignment %q", s)}
	}
	return a, nil
}

func (a Align) valid() bool {
	return a.H >= AlignLeft && a.H <= AlignRight && a.V >= AlignTop && a.V <= AlignBottom
}

func (a Align) String() string {
	if !a.valid() {
		return fmt.Sprintf("Align(%d,%d)", int(a.H), int(a.V))
	}
	h := [...]string{"left", "center", "right"}[a.H]
	v := [...]string{"top", "middle", "bottom"}[a.V]
	return h + "-" + v
}

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, &ValidationError{Field: "align", Reason: "invalid alignment " + a.String()}
	}
	return []byte(a.String()), nil
}

func validateAlign(a *Align) error {
	if a != nil && !a.valid() {
		return &ValidationError{Field: "align", Reason: "invalid alignment " + a.String()}
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(b []byte) error {
	v, err := ParseAlign(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Align) fractions() (fx, fy float64) {
	return float64(a.H) / 2, float64(a.V) / 2
}

// placeBox returns the top-left corner of a w×h box on a canvas.
// The anchor point is the explicit position when given, otherwise the
// canvas point matching align, otherwise the origin. The box is then
// shifted so that its own align point sits on the anchor.
func placeBox(pos *Position, align *Align, w, h float64, canvasW, canvasH int) (x, y float64) {
	switch {
	case pos != nil:
		x, y = pos.X.Resolve(canvasW), pos.Y.Resolve(canvasH)
	case align != nil:
		fx, fy := align.fractions()
		x, y = fx*float64(canvasW), fy*float64(canvasH)
	}
	if align != nil {
		fx, fy := align.fractions()
		x -= fx * w
		y -= fy * h
	}
	return x, y
}
