// Package document reads and writes canvases as JSON or YAML documents.
//
// A document lists layers bottom to top. Every layer is a flat object
// whose "type" field selects its kind:
//
//	{
//	  "width": 1280,
//	  "height": 720,
//	  "layers": [
//	    {"type": "background", "color": "#1A1A2E"},
//	    {"type": "text", "content": "Hello", "size": 96, "color": "#FFFFFF",
//	     "align": "center", "effects": [{"type": "stroke", "width": 4, "color": "#000000"}]}
//	  ]
//	}
//
// Decoding is strict: unknown fields are rejected.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggthumb"
)

// Document is the serialized form of a canvas.
type Document struct {
	Width  int     `json:"width" yaml:"width"`
	Height int     `json:"height" yaml:"height"`
	Layers []Layer `json:"layers" yaml:"layers"`
}

// Layer is one flat layer object. Only the fields that apply to Type are
// read.
type Layer struct {
	Type string `json:"type" yaml:"type"`

	// background
	Color      *ggthumb.Color `json:"color,omitempty" yaml:"color,omitempty"`
	Gradient   *Gradient      `json:"gradient,omitempty" yaml:"gradient,omitempty"`
	Image      string         `json:"image,omitempty" yaml:"image,omitempty"`
	Fit        string         `json:"fit,omitempty" yaml:"fit,omitempty"`
	BlendMode  string         `json:"blend_mode,omitempty" yaml:"blend_mode,omitempty"`
	Brightness *float64       `json:"brightness,omitempty" yaml:"brightness,omitempty"`
	Contrast   *float64       `json:"contrast,omitempty" yaml:"contrast,omitempty"`
	Saturation *float64       `json:"saturation,omitempty" yaml:"saturation,omitempty"`
	Blur       float64        `json:"blur,omitempty" yaml:"blur,omitempty"`

	// text
	Content       *Content `json:"content,omitempty" yaml:"content,omitempty"`
	Font          string   `json:"font,omitempty" yaml:"font,omitempty"`
	Size          float64  `json:"size,omitempty" yaml:"size,omitempty"`
	Bold          bool     `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic        bool     `json:"italic,omitempty" yaml:"italic,omitempty"`
	Weight        *Weight  `json:"weight,omitempty" yaml:"weight,omitempty"`
	MaxWidth      float64  `json:"max_width,omitempty" yaml:"max_width,omitempty"`
	MaxHeight     float64  `json:"max_height,omitempty" yaml:"max_height,omitempty"`
	AutoScale     bool     `json:"auto_scale,omitempty" yaml:"auto_scale,omitempty"`
	LineHeight    float64  `json:"line_height,omitempty" yaml:"line_height,omitempty"`
	LetterSpacing float64  `json:"letter_spacing,omitempty" yaml:"letter_spacing,omitempty"`

	// image
	Path             string `json:"path,omitempty" yaml:"path,omitempty"`
	RemoveBackground bool   `json:"remove_background,omitempty" yaml:"remove_background,omitempty"`

	// shape
	Shape       string         `json:"shape,omitempty" yaml:"shape,omitempty"`
	StrokeColor *ggthumb.Color `json:"stroke_color,omitempty" yaml:"stroke_color,omitempty"`
	StrokeWidth float64        `json:"stroke_width,omitempty" yaml:"stroke_width,omitempty"`

	// image, shape, outline
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Offset int     `json:"offset,omitempty" yaml:"offset,omitempty"`

	// shared
	Position     []Coord        `json:"position,omitempty" yaml:"position,omitempty,flow"`
	Align        *ggthumb.Align `json:"align,omitempty" yaml:"align,omitempty"`
	Rotation     float64        `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	BorderRadius float64        `json:"border_radius,omitempty" yaml:"border_radius,omitempty"`
	Opacity      *float64       `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Effects      []Effect       `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// Gradient is a linear or radial background gradient.
type Gradient struct {
	Type   string    `json:"type" yaml:"type"`
	Angle  float64   `json:"angle,omitempty" yaml:"angle,omitempty"`
	Center []float64 `json:"center,omitempty" yaml:"center,omitempty,flow"`
	Stops  []Stop    `json:"stops" yaml:"stops"`
}

// Part is one styled run of rich text content.
type Part struct {
	Text          string         `json:"text" yaml:"text"`
	Color         *ggthumb.Color `json:"color,omitempty" yaml:"color,omitempty"`
	Font          string         `json:"font,omitempty" yaml:"font,omitempty"`
	Size          float64        `json:"size,omitempty" yaml:"size,omitempty"`
	Bold          *bool          `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic        *bool          `json:"italic,omitempty" yaml:"italic,omitempty"`
	Weight        *Weight        `json:"weight,omitempty" yaml:"weight,omitempty"`
	LetterSpacing *float64       `json:"letter_spacing,omitempty" yaml:"letter_spacing,omitempty"`

	// Effects replaces the layer effects when present, even if empty.
	Effects *[]Effect `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// Effect is a stroke, shadow, glow or background (badge) decoration.
type Effect struct {
	Type         string         `json:"type" yaml:"type"`
	Color        *ggthumb.Color `json:"color,omitempty" yaml:"color,omitempty"`
	Width        float64        `json:"width,omitempty" yaml:"width,omitempty"`
	OffsetX      float64        `json:"offset_x,omitempty" yaml:"offset_x,omitempty"`
	OffsetY      float64        `json:"offset_y,omitempty" yaml:"offset_y,omitempty"`
	BlurRadius   float64        `json:"blur_radius,omitempty" yaml:"blur_radius,omitempty"`
	Radius       float64        `json:"radius,omitempty" yaml:"radius,omitempty"`
	Opacity      *float64       `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Padding      *Padding       `json:"padding,omitempty" yaml:"padding,omitempty"`
	BorderRadius float64        `json:"border_radius,omitempty" yaml:"border_radius,omitempty"`
}

// Format is a document serialization.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// Detect guesses the format of data: a leading '{' means JSON.
func Detect(data []byte) Format {
	if t := bytes.TrimSpace(data); len(t) > 0 && t[0] == '{' {
		return JSON
	}
	return YAML
}

// Parse decodes data in the given format into a Document.
func Parse(data []byte, f Format) (*Document, error) {
	var d Document
	var err error
	if f == YAML {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
	} else {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&d)
	}
	if err != nil {
		return nil, &ggthumb.ValidationError{
			Field:  "document",
			Reason: fmt.Sprintf("parse %s: %v", f, err),
			Err:    err,
		}
	}
	return &d, nil
}

// Marshal encodes d in the given format. JSON output is indented.
func (d *Document) Marshal(f Format) ([]byte, error) {
	if f == YAML {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	}
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return append(b, '\n'), nil
}

// Decode parses a JSON or YAML document and builds its canvas.
func Decode(data []byte) (*ggthumb.Canvas, error) {
	d, err := Parse(data, Detect(data))
	if err != nil {
		return nil, err
	}
	return d.Canvas()
}

// Encode serializes c as an indented JSON document.
func Encode(c *ggthumb.Canvas) ([]byte, error) {
	d, err := FromCanvas(c)
	if err != nil {
		return nil, err
	}
	return d.Marshal(JSON)
}

// EncodeYAML serializes c as a YAML document.
func EncodeYAML(c *ggthumb.Canvas) ([]byte, error) {
	d, err := FromCanvas(c)
	if err != nil {
		return nil, err
	}
	return d.Marshal(YAML)
}

// Load reads a document file and builds its canvas. The format follows
// the extension (.json, .yaml, .yml) and falls back to Detect. Relative
// image and font file paths are resolved against the document directory.
func Load(path string) (*ggthumb.Canvas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	var f Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f = JSON
	case ".yaml", ".yml":
		f = YAML
	default:
		f = Detect(data)
	}
	d, err := Parse(data, f)
	if err != nil {
		return nil, err
	}
	d.resolvePaths(filepath.Dir(path))
	return d.Canvas()
}

func (d *Document) resolvePaths(dir string) {
	rel := func(p string) string {
		if p == "" || isURL(p) || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	font := func(p string) string {
		switch strings.ToLower(filepath.Ext(p)) {
		case ".ttf", ".otf", ".ttc":
			return rel(p)
		}
		return p
	}
	for i := range d.Layers {
		l := &d.Layers[i]
		l.Image = rel(l.Image)
		l.Path = rel(l.Path)
		l.Font = font(l.Font)
		if l.Content != nil {
			for j := range l.Content.Parts {
				l.Content.Parts[j].Font = font(l.Content.Parts[j].Font)
			}
		}
	}
}
