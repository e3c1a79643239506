package image

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Fit selects how Fit scales an image into a box.
type Fit int

const (
	FitFill    Fit = iota // stretch to the box
	FitCover              // cover the box, crop around the center
	FitContain            // fit inside the box, center on transparent
)

// Resize scales img to width×height with a Lanczos filter. When one of
// the dimensions is zero it follows the aspect ratio; when both are
// zero img is returned unchanged.
func Resize(img *image.NRGBA, width, height int) *image.NRGBA {
	b := img.Bounds()
	if width <= 0 && height <= 0 {
		return img
	}
	if width <= 0 {
		width = max(1, int(math.Round(float64(b.Dx())*float64(height)/float64(b.Dy()))))
	}
	if height <= 0 {
		height = max(1, int(math.Round(float64(b.Dy())*float64(width)/float64(b.Dx()))))
	}
	if width == b.Dx() && height == b.Dy() {
		return img
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// FitTo scales img into a width×height image using mode.
func FitTo(img *image.NRGBA, width, height int, mode Fit) *image.NRGBA {
	switch mode {
	case FitCover:
		return imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
	case FitContain:
		scaled := imaging.Fit(img, width, height, imaging.Lanczos)
		// imaging.Fit never upscales.
		sb := scaled.Bounds()
		if sb.Dx() < width && sb.Dy() < height {
			f := math.Min(float64(width)/float64(sb.Dx()), float64(height)/float64(sb.Dy()))
			scaled = imaging.Resize(scaled, int(float64(sb.Dx())*f), int(float64(sb.Dy())*f), imaging.Lanczos)
		}
		dst := imaging.New(width, height, color.NRGBA{})
		return imaging.PasteCenter(dst, scaled)
	default:
		return imaging.Resize(img, width, height, imaging.Lanczos)
	}
}

// Rotate turns img clockwise by degrees about its center. The canvas
// grows to hold the rotated content; uncovered pixels are transparent.
func Rotate(img *image.NRGBA, degrees float64) *image.NRGBA {
	if math.Mod(degrees, 360) == 0 {
		return img
	}
	// imaging rotates counter-clockwise.
	return imaging.Rotate(img, -degrees, color.NRGBA{})
}
