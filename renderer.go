package ggthumb

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gogpu/ggthumb/internal/fetch"
	ggimage "github.com/gogpu/ggthumb/internal/image"
	"github.com/gogpu/ggthumb/text"
)

// Renderer rasterizes canvases. A Renderer holds no per-render state and
// is safe for concurrent use; the font cache it shares is single-flight.
type Renderer struct {
	opts rendererOptions
}

// NewRenderer creates a renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Render rasterizes c with a renderer using default options.
func Render(ctx context.Context, c *Canvas) (*Pixmap, error) {
	return NewRenderer().Render(ctx, c)
}

func (r *Renderer) logger() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return Logger()
}

func (r *Renderer) fonts() FontProvider {
	if r.opts.fonts != nil {
		return r.opts.fonts
	}
	return text.Default()
}

func (r *Renderer) fetcher() Fetcher {
	if r.opts.fetcher != nil {
		return r.opts.fetcher
	}
	return fetch.DefaultDownloader()
}

// Render rasterizes the layer stack of c bottom-up.
//
// The canvas is validated first and local image sources are checked for
// existence before any pixel is drawn. Any layer failure aborts the render
// with a *LayerError; no partial image is returned.
func (r *Renderer) Render(ctx context.Context, c *Canvas) (*Pixmap, error) {
	if c == nil {
		return nil, &ValidationError{Field: "canvas", Reason: "nil canvas"}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := checkImageSources(c.layers); err != nil {
		return nil, err
	}

	log := r.logger()
	start := time.Now()
	acc := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for i, l := range c.layers {
		t := time.Now()
		if err := r.renderLayer(ctx, acc, l); err != nil {
			return nil, layerErr(i, l, err)
		}
		log.Debug("ggthumb: layer rendered", "index", i, "kind", l.Kind(), "elapsed", time.Since(t))
	}
	log.Debug("ggthumb: canvas rendered",
		"width", c.width, "height", c.height, "layers", len(c.layers), "elapsed", time.Since(start))
	return &Pixmap{img: acc}, nil
}

func (r *Renderer) renderLayer(ctx context.Context, acc *image.NRGBA, l Layer) error {
	switch l := l.(type) {
	case *BackgroundLayer:
		return r.renderBackground(ctx, acc, l)
	case *TextLayer:
		return r.renderText(ctx, acc, l)
	case *ImageLayer:
		return r.renderImage(ctx, acc, l)
	case *ShapeLayer:
		return r.renderShape(acc, l)
	case *OutlineLayer:
		return r.renderOutline(acc, l)
	default:
		return &RenderingError{Op: "render", Err: fmt.Errorf("unsupported layer %T", l)}
	}
}

// checkImageSources fails fast on local image paths that do not exist.
func checkImageSources(layers []Layer) error {
	for i, l := range layers {
		var src string
		switch l := l.(type) {
		case *ImageLayer:
			src = l.Source
		case *BackgroundLayer:
			if f, ok := l.Fill.(ImageFill); ok {
				src = f.Source
			}
		}
		if src == "" || text.IsURL(src) {
			continue
		}
		if _, err := os.Stat(src); err != nil {
			return layerErr(i, l, &ImageLoadError{Source: src, Err: err})
		}
	}
	return nil
}

// loadImage reads an image from a local path or an http(s) URL.
func (r *Renderer) loadImage(ctx context.Context, src string) (*image.NRGBA, error) {
	var (
		img *image.NRGBA
		err error
	)
	if text.IsURL(src) {
		var data []byte
		data, err = r.fetcher().Fetch(ctx, src)
		if err == nil {
			img, err = ggimage.Decode(data)
		}
	} else {
		img, err = ggimage.Load(src)
	}
	if err != nil {
		return nil, &ImageLoadError{Source: src, Err: err}
	}
	return img, nil
}

// removeBackground runs the configured background remover.
func (r *Renderer) removeBackground(ctx context.Context, img *image.NRGBA) (*image.NRGBA, error) {
	if r.opts.remover == nil {
		return nil, &RenderingError{Op: "remove background", Err: ErrNoBackgroundRemover}
	}
	out, err := r.opts.remover.RemoveBackground(ctx, img)
	if err != nil {
		var re *RenderingError
		if errors.As(err, &re) {
			return nil, err
		}
		return nil, &RenderingError{Op: "remove background", Err: err}
	}
	return out, nil
}

// rotatedOrigin returns where a buffer rotated from a w×h box placed at
// (x, y) must go so that the box center stays put.
func rotatedOrigin(x, y, w, h float64, rotated image.Rectangle) image.Point {
	cx, cy := x+w/2, y+h/2
	return image.Pt(
		int(math.Round(cx-float64(rotated.Dx())/2)),
		int(math.Round(cy-float64(rotated.Dy())/2)),
	)
}
