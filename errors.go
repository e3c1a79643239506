package ggthumb

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggthumb/text"
)

// Sentinel errors for the ggthumb package.
var (
	// ErrUnsupportedFormat is returned when an output format cannot be encoded.
	ErrUnsupportedFormat = errors.New("ggthumb: unsupported output format")

	// ErrQualityNotSupported is returned when a quality setting is given
	// for a lossless format.
	ErrQualityNotSupported = errors.New("ggthumb: quality is only supported for JPEG and WEBP")

	// ErrNoBackgroundRemover is returned when an image layer asks for
	// background removal and no remover is configured.
	ErrNoBackgroundRemover = errors.New("ggthumb: no background remover configured")
)

// FontLoadError reports a font that could not be resolved or loaded.
type FontLoadError = text.FontLoadError

// ValidationError reports a structurally invalid canvas, layer or effect
// parameter.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "ggthumb: invalid: " + e.Reason
	}
	return fmt.Sprintf("ggthumb: invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ImageLoadError reports an image source that could not be read,
// fetched or decoded.
type ImageLoadError struct {
	Source string
	Err    error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("ggthumb: load image %q: %v", e.Source, e.Err)
}

func (e *ImageLoadError) Unwrap() error { return e.Err }

// RenderingError reports a failure while rasterizing or encoding.
type RenderingError struct {
	Op  string
	Err error
}

func (e *RenderingError) Error() string {
	return fmt.Sprintf("ggthumb: %s: %v", e.Op, e.Err)
}

func (e *RenderingError) Unwrap() error { return e.Err }

// LayerError identifies the layer whose rasterization aborted a render.
// Err is one of *ValidationError, *FontLoadError, *ImageLoadError or
// *RenderingError.
type LayerError struct {
	Index int    // Position in the layer stack, 0 = bottom
	Kind  string // Layer kind, e.g. "text"
	Field string // Offending field, if known
	Err   error
}

func (e *LayerError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("ggthumb: layer %d (%s) %s: %v", e.Index, e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("ggthumb: layer %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *LayerError) Unwrap() error { return e.Err }

// layerErr wraps err for the layer at index, picking up the field of a
// wrapped ValidationError.
func layerErr(index int, l Layer, err error) error {
	le := &LayerError{Index: index, Kind: l.Kind(), Err: err}
	var ve *ValidationError
	if errors.As(err, &ve) {
		le.Field = ve.Field
	}
	var fe *FontLoadError
	if errors.As(err, &fe) {
		le.Field = "font"
	}
	var ie *ImageLoadError
	if errors.As(err, &ie) {
		le.Field = "source"
	}
	return le
}
