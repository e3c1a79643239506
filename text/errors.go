package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotFound is returned when no source provides the requested family.
	ErrFontNotFound = errors.New("text: font not found")
)

// FontLoadError reports a font request that could not be satisfied:
// unknown family, failed download, or an unreadable font file.
type FontLoadError struct {
	Family string
	Weight int
	Italic bool
	Err    error
}

func (e *FontLoadError) Error() string {
	style := "normal"
	if e.Italic {
		style = "italic"
	}
	return fmt.Sprintf("text: load font %q (weight %d, %s): %v", e.Family, e.Weight, style, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }
