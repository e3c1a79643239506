package ggthumb

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/gogpu/ggthumb/internal/fetch"
	ggimage "github.com/gogpu/ggthumb/internal/image"
)

// Format is an output image format.
type Format int

const (
	// FormatAuto encodes PNG, except in SaveFile where the file
	// extension decides.
	FormatAuto Format = iota
	FormatPNG
	FormatJPEG
	FormatWEBP
)

// DefaultJPEGQuality is used when a JPEG is encoded without a quality.
const DefaultJPEGQuality = 90

var formatNames = [...]string{"auto", "png", "jpeg", "webp"}

func (f Format) String() string {
	if int(f) >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// MIMEType returns the media type of f, e.g. "image/png".
func (f Format) MIMEType() string {
	if f == FormatAuto {
		f = FormatPNG
	}
	return "image/" + f.String()
}

// ParseFormat parses "png", "jpeg", "jpg" or "webp".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "webp":
		return FormatWEBP, nil
	}
	return 0, &RenderingError{Op: "export", Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)}
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, &RenderingError{Op: "export", Err: fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)}
	}
	return ParseFormat(ext)
}

// EncodeOptions controls encoding. The zero value encodes PNG.
type EncodeOptions struct {
	Format Format

	// Quality is the quality in 1..100 for JPEG and WEBP; 0 means the
	// format default. Setting it for PNG is an error. WEBP output is
	// lossless, so its quality is validated but has no effect.
	Quality int
}

// EncodedFormat returns the format Encode writes for o.
func (o EncodeOptions) EncodedFormat() Format {
	if o.Format == FormatAuto {
		return FormatPNG
	}
	return o.Format
}

// Encode writes img to w.
func Encode(w io.Writer, img image.Image, opts EncodeOptions) error {
	if opts.Quality < 0 || opts.Quality > 100 {
		return &ValidationError{Field: "quality", Reason: fmt.Sprintf("must be in 1..100, got %d", opts.Quality)}
	}
	var err error
	switch opts.EncodedFormat() {
	case FormatPNG:
		if opts.Quality != 0 {
			return &RenderingError{Op: "export", Err: ErrQualityNotSupported}
		}
		err = ggimage.EncodePNG(w, img)
	case FormatJPEG:
		q := opts.Quality
		if q == 0 {
			q = DefaultJPEGQuality
		}
		err = ggimage.EncodeJPEG(w, img, q)
	case FormatWEBP:
		err = ggimage.EncodeWEBP(w, img)
	default:
		return &RenderingError{Op: "export", Err: fmt.Errorf("%w: %v", ErrUnsupportedFormat, opts.Format)}
	}
	if err != nil {
		return &RenderingError{Op: "export", Err: err}
	}
	return nil
}

// EncodeBytes encodes img into a byte slice.
func EncodeBytes(img image.Image, opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeBase64 encodes img and returns the standard base64 encoding.
func EncodeBase64(img image.Image, opts EncodeOptions) (string, error) {
	data, err := EncodeBytes(img, opts)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DataURL encodes img as a data URL, e.g. "data:image/png;base64,...".
func DataURL(img image.Image, opts EncodeOptions) (string, error) {
	s, err := EncodeBase64(img, opts)
	if err != nil {
		return "", err
	}
	return "data:" + opts.EncodedFormat().MIMEType() + ";base64," + s, nil
}

// SaveFile encodes img to path. With FormatAuto the format follows the
// file extension. The file is replaced atomically.
func SaveFile(path string, img image.Image, opts EncodeOptions) error {
	if opts.Format == FormatAuto {
		f, err := FormatFromPath(path)
		if err != nil {
			return err
		}
		opts.Format = f
	}
	data, err := EncodeBytes(img, opts)
	if err != nil {
		return err
	}
	if err := fetch.WriteFileAtomic(path, data); err != nil {
		return &RenderingError{Op: "save", Err: err}
	}
	return nil
}
