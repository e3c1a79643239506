// Package ggthumb composes thumbnails from a stack of layers.
//
// # Overview
//
// A Canvas holds an ordered stack of layers: backgrounds (solid color,
// gradient or image), text (plain or rich, with stroke, shadow, glow and
// badge effects), images, shapes and an outline frame. A Renderer
// rasterizes the stack bottom-up into a Pixmap, which can then be encoded
// as PNG or JPEG.
//
// # Quick Start
//
//	c, _ := ggthumb.NewCanvas(1280, 720)
//	c.Add(ggthumb.NewBackground(
//	    ggthumb.NewLinearGradient(45).
//	        AddColorStop(0, ggthumb.Hex("#1e3c72")).
//	        AddColorStop(1, ggthumb.Hex("#2a5298")),
//	))
//	title := ggthumb.NewText("Hello, thumbnails")
//	title.Size = 96
//	title.Color = ggthumb.White
//	title.Align = &ggthumb.Align{H: ggthumb.AlignCenter, V: ggthumb.AlignMiddle}
//	title.Effects = []ggthumb.Effect{ggthumb.Stroke{Width: 4, Color: ggthumb.Black}}
//	c.Add(title)
//
//	pm, err := ggthumb.Render(ctx, c)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = ggthumb.SaveFile("thumb.png", pm, ggthumb.EncodeOptions{})
//
// # Compositing
//
// Each layer is rasterized into its own buffer and merged onto the
// accumulated result. Background layers merge with their blend mode
// (normal, multiply, screen, overlay, darken, lighten); every other
// layer uses normal alpha compositing. Layer opacity scales the layer's
// alpha during the merge.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 is right, increases clockwise
//
// # Errors
//
// A render either succeeds completely or returns a *LayerError naming the
// layer that failed; no partial image is produced. The wrapped error is a
// *ValidationError, *FontLoadError, *ImageLoadError or *RenderingError.
package ggthumb
