package ggthumb

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"testing"

	"github.com/gogpu/ggthumb/text"
)

type stubFetcher struct{ data []byte }

func (f stubFetcher) Fetch(context.Context, string) ([]byte, error) { return f.data, nil }

func TestRendererOptions(t *testing.T) {
	r := NewRenderer()
	if _, ok := r.opts.remover.(KeyRemover); !ok {
		t.Errorf("default remover = %T, want KeyRemover", r.opts.remover)
	}
	if r.fonts() != FontProvider(text.Default()) {
		t.Error("default fonts are not text.Default()")
	}
	if r.fetcher() == nil {
		t.Error("default fetcher is nil")
	}
	if r.logger() != Logger() {
		t.Error("default logger is not the package logger")
	}

	fonts := text.NewResolver(text.WithSystemFonts(false))
	logger := slog.New(slog.DiscardHandler)
	f := &stubFetcher{}
	r = NewRenderer(
		WithFontResolver(fonts),
		WithFetcher(f),
		WithBackgroundRemover(nil),
		WithDefaultFont("Go Mono"),
		WithLogger(logger),
	)
	if r.fonts() != FontProvider(fonts) {
		t.Error("WithFontResolver not applied")
	}
	if r.fetcher() != Fetcher(f) {
		t.Error("WithFetcher not applied")
	}
	if r.opts.remover != nil {
		t.Error("WithBackgroundRemover(nil) did not disable removal")
	}
	if r.opts.defaultFont != "Go Mono" {
		t.Errorf("defaultFont = %q", r.opts.defaultFont)
	}
	if r.logger() != logger {
		t.Error("WithLogger not applied")
	}
}

func TestKeyRemover(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 9, 9))
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 250, G: 250, B: 250, A: 255})
		}
	}
	img.SetNRGBA(4, 4, color.NRGBA{R: 10, G: 20, B: 200, A: 255})

	out, err := KeyRemover{}.RemoveBackground(context.Background(), img)
	if err != nil {
		t.Fatalf("RemoveBackground: %v", err)
	}
	if a := out.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("backdrop alpha = %d, want 0", a)
	}
	if a := out.NRGBAAt(4, 4).A; a == 0 {
		t.Error("foreground pixel was removed")
	}
	if img.NRGBAAt(0, 0).A != 255 {
		t.Error("input was modified")
	}
}

func TestRendererFetcherForImages(t *testing.T) {
	var buf []byte
	{
		pm := NewPixmap(2, 2)
		pm.Clear(Green)
		data, err := EncodeBytes(pm, EncodeOptions{})
		if err != nil {
			t.Fatal(err)
		}
		buf = data
	}

	r := newTestRenderer(t, WithFetcher(stubFetcher{data: buf}))
	c := mustCanvas(t, 2, 2).Add(NewBackground(ImageFill{Source: "https://example.com/bg.png"}))
	pm, err := r.Render(context.Background(), c)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := pixelAt(pm, 1, 1); !nearNRGBA(got, green, 2) {
		t.Errorf("pixel = %v, want green", got)
	}
}
