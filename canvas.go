package ggthumb

import (
	"fmt"
	"strconv"
	"strings"
)

// Canvas is an ordered stack of layers over a fixed-size surface.
// The first layer is the bottom of the stack.
type Canvas struct {
	width, height int
	layers        []Layer
}

// NewCanvas creates an empty canvas. Both dimensions must be positive.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, &ValidationError{Field: "size", Reason: fmt.Sprintf("canvas must be at least 1x1, got %dx%d", width, height)}
	}
	return &Canvas{width: width, height: height}, nil
}

// FromAspectRatio creates a canvas baseWidth pixels wide with the height
// implied by a "W:H" ratio such as "16:9".
func FromAspectRatio(ratio string, baseWidth int) (*Canvas, error) {
	w, h, ok := strings.Cut(ratio, ":")
	if !ok {
		return nil, &ValidationError{Field: "aspect_ratio", Reason: fmt.Sprintf("expected W:H, got %q", ratio)}
	}
	rw, err1 := strconv.ParseFloat(strings.TrimSpace(w), 64)
	rh, err2 := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err1 != nil || err2 != nil || rw <= 0 || rh <= 0 {
		return nil, &ValidationError{Field: "aspect_ratio", Reason: fmt.Sprintf("invalid ratio %q", ratio)}
	}
	return NewCanvas(baseWidth, int(float64(baseWidth)*rh/rw))
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Layers returns a copy of the layer stack, bottom first.
func (c *Canvas) Layers() []Layer {
	out := make([]Layer, len(c.layers))
	copy(out, c.layers)
	return out
}

// Add appends layers to the top of the stack.
// Returns the canvas for method chaining.
func (c *Canvas) Add(layers ...Layer) *Canvas {
	c.layers = append(c.layers, layers...)
	return c
}

// Validate checks every layer and returns a *LayerError for the first
// invalid one.
func (c *Canvas) Validate() error {
	for i, l := range c.layers {
		if l == nil {
			return &LayerError{Index: i, Kind: "nil", Err: &ValidationError{Reason: "nil layer"}}
		}
		if err := l.Validate(); err != nil {
			return layerErr(i, l, err)
		}
	}
	return nil
}

// AddBackground appends an opaque background layer painted with fill.
func (c *Canvas) AddBackground(fill Fill) *Canvas {
	return c.Add(NewBackground(fill))
}

// AddText appends a text layer of the given size and color, aligned on
// the canvas.
func (c *Canvas) AddText(content string, size float64, color Color, align Align) *Canvas {
	l := NewText(content)
	l.Size = size
	l.Color = color
	l.Align = &align
	return c.Add(l)
}

// AddImage appends an image layer with its top-left corner at pos.
func (c *Canvas) AddImage(source string, pos *Position) *Canvas {
	l := NewImage(source)
	l.Position = pos
	return c.Add(l)
}

// AddShape appends a shape layer with its top-left corner at pos.
func (c *Canvas) AddShape(kind ShapeKind, pos *Position, width, height float64, fill Color) *Canvas {
	l := NewShape(kind, width, height, fill)
	l.Position = pos
	return c.Add(l)
}

// AddOutline appends a frame of the given width around the canvas edge.
func (c *Canvas) AddOutline(width int, color Color) *Canvas {
	return c.Add(NewOutline(width, color))
}
