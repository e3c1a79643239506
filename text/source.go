package text

import (
	"bytes"
	"fmt"
	"os"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data []byte
	font *opentype.Font
	desc Description
}

// Description is the family and style a font file declares about itself.
type Description struct {
	Family string
	Weight int
	Italic bool
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	s := &FontSource{data: dataCopy, font: f}
	if d, ok := describeData(dataCopy); ok {
		s.desc = d
	} else {
		s.desc = Description{Family: sfntName(f, sfnt.NameIDFamily), Weight: WeightRegular}
	}
	// A weight named by the style subfamily wins over the OS/2 weight class.
	if w, ok := namedWeight(sfntName(f, sfnt.NameIDSubfamily)); ok {
		s.desc.Weight = w
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the family name declared by the font.
func (s *FontSource) Name() string { return s.desc.Family }

// Describe returns the family, weight and style declared by the font.
func (s *FontSource) Describe() Description { return s.desc }

// Face creates a face at size pixels per em.
func (s *FontSource) Face(size float64) (*Face, error) {
	return newFace(s, size)
}

// describeData reads the name and OS/2 tables through go-text, which knows
// the typographic family and style conventions better than sfnt.
func describeData(data []byte) (Description, bool) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return Description{}, false
	}
	return fromGoText(face.Describe())
}

func fromGoText(d gotext.Description) (Description, bool) {
	if d.Family == "" {
		return Description{}, false
	}
	w := int(d.Aspect.Weight+50) / 100 * 100
	if w < 100 || w > 900 {
		w = WeightRegular
	}
	return Description{
		Family: d.Family,
		Weight: w,
		Italic: d.Aspect.Style == gotext.StyleItalic,
	}, true
}

func sfntName(f *opentype.Font, id sfnt.NameID) string {
	var buf sfnt.Buffer
	name, err := f.Name(&buf, id)
	if err != nil {
		return ""
	}
	return name
}
