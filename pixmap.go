package ggthumb

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/ggthumb/internal/blend"
	ggimage "github.com/gogpu/ggthumb/internal/image"
)

// Pixmap is a rendered thumbnail: a straight-alpha RGBA pixel buffer.
type Pixmap struct {
	img *image.NRGBA
}

// NewPixmap creates a transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// FromImage creates a pixmap holding a copy of img.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Rect, img, b.Min, draw.Src)
	return &Pixmap{img: n}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw pixel data (straight-alpha RGBA, 4 bytes per pixel).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return
	}
	p.img.SetNRGBA(x, y, c.NRGBA())
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) Color {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return Transparent
	}
	n := p.img.NRGBAAt(x, y)
	return RGBA8(n.R, n.G, n.B, n.A)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	n := c.NRGBA()
	for i := 0; i < len(p.img.Pix); i += 4 {
		p.img.Pix[i+0] = n.R
		p.img.Pix[i+1] = n.G
		p.img.Pix[i+2] = n.B
		p.img.Pix[i+3] = n.A
	}
}

// Blit composites src onto the pixmap with its top-left corner at (x, y).
func (p *Pixmap) Blit(src image.Image, x, y int, mode BlendMode, opacity float64) {
	blend.Draw(p.img, ggimage.ToNRGBA(src), image.Pt(x, y), mode, opacity)
}

// Image returns the underlying image. It shares memory with the pixmap.
func (p *Pixmap) Image() *image.NRGBA {
	return p.img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
