package ggthumb

import (
	"errors"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	tests := []struct {
		w, h    int
		wantErr bool
	}{
		{1280, 720, false},
		{1, 1, false},
		{0, 10, true},
		{10, -1, true},
	}
	for _, tt := range tests {
		c, err := NewCanvas(tt.w, tt.h)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewCanvas(%d, %d) err = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			continue
		}
		if err != nil {
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("NewCanvas(%d, %d) err = %T, want *ValidationError", tt.w, tt.h, err)
			}
			continue
		}
		if c.Width() != tt.w || c.Height() != tt.h {
			t.Errorf("size = %dx%d, want %dx%d", c.Width(), c.Height(), tt.w, tt.h)
		}
	}
}

func TestFromAspectRatio(t *testing.T) {
	tests := []struct {
		ratio      string
		base       int
		wantHeight int
	}{
		{"16:9", 1280, 720},
		{"1:1", 500, 500},
		{"4:3", 800, 600},
		{" 9 : 16 ", 720, 1280},
	}
	for _, tt := range tests {
		c, err := FromAspectRatio(tt.ratio, tt.base)
		if err != nil {
			t.Fatalf("FromAspectRatio(%q): %v", tt.ratio, err)
		}
		if c.Width() != tt.base || c.Height() != tt.wantHeight {
			t.Errorf("FromAspectRatio(%q, %d) = %dx%d, want %dx%d",
				tt.ratio, tt.base, c.Width(), c.Height(), tt.base, tt.wantHeight)
		}
	}

	for _, bad := range []string{"16x9", "a:b", "0:1", "16:"} {
		if _, err := FromAspectRatio(bad, 100); err == nil {
			t.Errorf("FromAspectRatio(%q) succeeded", bad)
		}
	}
}

func TestCanvasBuilders(t *testing.T) {
	c := mustCanvas(t, 100, 100)
	c.AddBackground(White).
		AddText("title", 32, Black, Align{H: AlignCenter, V: AlignTop}).
		AddImage("logo.png", At(5, 5)).
		AddShape(ShapeEllipse, AtPercent(50, 50), 10, 10, Red).
		AddOutline(2, Black)

	layers := c.Layers()
	kinds := []string{"background", "text", "image", "shape", "outline"}
	if len(layers) != len(kinds) {
		t.Fatalf("len(Layers) = %d, want %d", len(layers), len(kinds))
	}
	for i, k := range kinds {
		if layers[i].Kind() != k {
			t.Errorf("layer %d kind = %q, want %q", i, layers[i].Kind(), k)
		}
	}
	if tl := layers[1].(*TextLayer); tl.Size != 32 || tl.Align == nil || tl.Align.H != AlignCenter {
		t.Errorf("text layer = %+v", tl)
	}

	// Layers returns a copy.
	layers[0] = nil
	if c.Layers()[0] == nil {
		t.Error("Layers exposed the internal slice")
	}
}

func TestCanvasValidate(t *testing.T) {
	c := mustCanvas(t, 10, 10)
	c.AddBackground(White).Add(nil)
	err := c.Validate()
	var le *LayerError
	if !errors.As(err, &le) || le.Index != 1 {
		t.Fatalf("Validate = %v, want LayerError at index 1", err)
	}

	c = mustCanvas(t, 10, 10)
	bad := NewText("x")
	bad.Opacity = Float(2)
	c.AddBackground(White).Add(bad)
	err = c.Validate()
	if !errors.As(err, &le) || le.Index != 1 || le.Kind != "text" || le.Field != "opacity" {
		t.Fatalf("Validate = %v, want text opacity LayerError", err)
	}
	if !errors.Is(err, le.Err) {
		t.Error("LayerError does not unwrap to its cause")
	}
}
