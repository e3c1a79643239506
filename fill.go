package ggthumb

import (
	"fmt"
	"strings"
)

// Fill is the paint of a background layer: a Color, a *LinearGradient,
// a *RadialGradient or an ImageFill.
type Fill interface {
	isFill()
}

func (Color) isFill() {}

// FitMode controls how an image fill is scaled to the canvas.
type FitMode int

const (
	// FitFill stretches the image to the canvas size.
	FitFill FitMode = iota
	// FitCover scales the image to cover the canvas and crops the overflow
	// around the center.
	FitCover
	// FitContain scales the image to fit inside the canvas and centers it,
	// leaving the rest transparent.
	FitContain
)

var fitNames = [...]string{"fill", "cover", "contain"}

func (m FitMode) String() string {
	if int(m) < len(fitNames) {
		return fitNames[m]
	}
	return fmt.Sprintf("FitMode(%d)", int(m))
}

// ParseFitMode parses "fill", "cover" or "contain".
func ParseFitMode(s string) (FitMode, error) {
	for i, n := range fitNames {
		if strings.EqualFold(s, n) {
			return FitMode(i), nil
		}
	}
	return 0, &ValidationError{Field: "fit", Reason: fmt.Sprintf("unknown fit mode %q", s)}
}

// MarshalText implements encoding.TextMarshaler.
func (m FitMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *FitMode) UnmarshalText(b []byte) error {
	v, err := ParseFitMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ImageFill paints a background with an image read from a local path or
// an http(s) URL.
type ImageFill struct {
	Source string
	Fit    FitMode
}

func (ImageFill) isFill() {}
