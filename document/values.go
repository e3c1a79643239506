package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggthumb"
	"github.com/gogpu/ggthumb/text"
)

// Coord is a coordinate written either as a number of pixels or as a
// percentage string such as "50%".
type Coord ggthumb.Coord

func (c Coord) value() any {
	if c.Percent {
		return strconv.FormatFloat(c.Value, 'f', -1, 64) + "%"
	}
	return c.Value
}

func (c *Coord) parse(s string) error {
	v, err := ggthumb.ParseCoord(s)
	if err != nil {
		return err
	}
	*c = Coord(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Coord) MarshalJSON() ([]byte, error) { return json.Marshal(c.value()) }

// UnmarshalJSON implements json.Unmarshaler.
func (c *Coord) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*c = Coord{Value: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("coordinate must be a number or a percentage string: %s", b)
	}
	return c.parse(s)
}

// MarshalYAML implements yaml.Marshaler.
func (c Coord) MarshalYAML() (any, error) { return c.value(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Coord) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: coordinate must be a scalar", n.Line)
	}
	return c.parse(n.Value)
}

// Weight is a font weight written as a number (100..900) or a name such
// as "bold".
type Weight int

func (w *Weight) parse(s string) error {
	v, err := text.ParseWeight(s)
	if err != nil {
		return err
	}
	*w = Weight(v)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (w *Weight) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return w.parse(s)
	}
	return w.parse(string(bytes.TrimSpace(b)))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *Weight) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: weight must be a scalar", n.Line)
	}
	return w.parse(n.Value)
}

// Padding is written as one number, a [vertical, horizontal] pair or a
// [top, right, bottom, left] list.
type Padding ggthumb.Padding

func (p *Padding) fromList(v []float64) error {
	switch len(v) {
	case 1:
		*p = Padding(ggthumb.UniformPadding(v[0]))
	case 2:
		*p = Padding(ggthumb.SymmetricPadding(v[0], v[1]))
	case 4:
		*p = Padding{Top: v[0], Right: v[1], Bottom: v[2], Left: v[3]}
	default:
		return fmt.Errorf("padding needs 1, 2 or 4 values, got %d", len(v))
	}
	return nil
}

func (p Padding) value() any {
	if p.Top == p.Right && p.Top == p.Bottom && p.Top == p.Left {
		return p.Top
	}
	if p.Top == p.Bottom && p.Left == p.Right {
		return []float64{p.Top, p.Right}
	}
	return []float64{p.Top, p.Right, p.Bottom, p.Left}
}

// MarshalJSON implements json.Marshaler.
func (p Padding) MarshalJSON() ([]byte, error) { return json.Marshal(p.value()) }

// UnmarshalJSON implements json.Unmarshaler.
func (p *Padding) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		return p.fromList([]float64{n})
	}
	var v []float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("padding must be a number or a list of numbers: %s", b)
	}
	return p.fromList(v)
}

// MarshalYAML implements yaml.Marshaler.
func (p Padding) MarshalYAML() (any, error) { return p.value(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Padding) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		var v float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		return p.fromList([]float64{v})
	}
	var v []float64
	if err := n.Decode(&v); err != nil {
		return err
	}
	return p.fromList(v)
}

// Stop is a gradient color stop written as a [color, offset] pair.
type Stop struct {
	Color  ggthumb.Color
	Offset float64
}

func (s *Stop) set(color string, offset float64) error {
	c, err := ggthumb.ParseColor(color)
	if err != nil {
		return err
	}
	s.Color, s.Offset = c, offset
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Stop) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{s.Color.String(), s.Offset})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Stop) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil || len(pair) != 2 {
		return fmt.Errorf("color stop must be a [color, offset] pair: %s", b)
	}
	var (
		color  string
		offset float64
	)
	if err := json.Unmarshal(pair[0], &color); err != nil {
		return fmt.Errorf("color stop color: %w", err)
	}
	if err := json.Unmarshal(pair[1], &offset); err != nil {
		return fmt.Errorf("color stop offset: %w", err)
	}
	return s.set(color, offset)
}

// MarshalYAML implements yaml.Marshaler.
func (s Stop) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	n.Content = []*yaml.Node{
		{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: s.Color.String()},
		{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(s.Offset, 'f', -1, 64)},
	}
	return n, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Stop) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode || len(n.Content) != 2 {
		return fmt.Errorf("line %d: color stop must be a [color, offset] pair", n.Line)
	}
	var offset float64
	if err := n.Content[1].Decode(&offset); err != nil {
		return err
	}
	return s.set(n.Content[0].Value, offset)
}

// Content is the text of a text layer: a plain string or a list of
// styled parts.
type Content struct {
	Text  string
	Parts []Part
}

// MarshalJSON implements json.Marshaler.
func (c Content) MarshalJSON() ([]byte, error) {
	if c.Parts != nil {
		return json.Marshal(c.Parts)
	}
	return json.Marshal(c.Text)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Content) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		return dec.Decode(&c.Parts)
	}
	return json.Unmarshal(b, &c.Text)
}

// MarshalYAML implements yaml.Marshaler.
func (c Content) MarshalYAML() (any, error) {
	if c.Parts != nil {
		return c.Parts, nil
	}
	return c.Text, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Content) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.SequenceNode {
		return n.Decode(&c.Parts)
	}
	return n.Decode(&c.Text)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
