package ggthumb

import (
	"context"
	"image"
	"log/slog"

	ggimage "github.com/gogpu/ggthumb/internal/image"
	"github.com/gogpu/ggthumb/text"
)

// Fetcher downloads remote images. It is the same contract the text
// package uses for web fonts.
type Fetcher = text.Fetcher

// FontProvider supplies sized font faces. *text.Resolver implements it.
type FontProvider = text.FaceProvider

// BackgroundRemover cuts the backdrop out of an image layer.
type BackgroundRemover interface {
	RemoveBackground(ctx context.Context, img *image.NRGBA) (*image.NRGBA, error)
}

// KeyRemover removes the uniform backdrop connected to the image border.
// Tolerance is the color distance in 0..255 units; 0 selects the default.
type KeyRemover struct {
	Tolerance float64
}

// RemoveBackground implements BackgroundRemover.
func (k KeyRemover) RemoveBackground(_ context.Context, img *image.NRGBA) (*image.NRGBA, error) {
	tol := k.Tolerance
	if tol <= 0 {
		tol = ggimage.DefaultKeyTolerance
	}
	return ggimage.KeyBackground(img, tol), nil
}

// RendererOption configures a Renderer.
//
// Example:
//
//	r := ggthumb.NewRenderer(
//	    ggthumb.WithFontResolver(text.NewResolver(text.WithFontDirs("./fonts"))),
//	    ggthumb.WithDefaultFont("Inter"),
//	)
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	fonts       FontProvider
	fetcher     Fetcher
	remover     BackgroundRemover
	defaultFont string
	logger      *slog.Logger
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		remover: KeyRemover{},
	}
}

// WithFontResolver sets the font provider. The default is text.Default().
func WithFontResolver(fonts FontProvider) RendererOption {
	return func(o *rendererOptions) {
		o.fonts = fonts
	}
}

// WithFetcher sets the downloader for remote images.
func WithFetcher(f Fetcher) RendererOption {
	return func(o *rendererOptions) {
		o.fetcher = f
	}
}

// WithBackgroundRemover sets the provider behind ImageLayer.RemoveBackground.
// Pass nil to disable background removal.
func WithBackgroundRemover(r BackgroundRemover) RendererOption {
	return func(o *rendererOptions) {
		o.remover = r
	}
}

// WithDefaultFont sets the family used by text layers that name none.
func WithDefaultFont(family string) RendererOption {
	return func(o *rendererOptions) {
		o.defaultFont = family
	}
}

// WithLogger sets a logger for this renderer only. Without it the
// package logger (see SetLogger) is used.
func WithLogger(l *slog.Logger) RendererOption {
	return func(o *rendererOptions) {
		o.logger = l
	}
}
