// Package text resolves fonts and lays out text for ggthumb.
//
// The package is split in two halves:
//
//   - Font resolution: a [Resolver] maps a logical request (family, weight,
//     italic) to a concrete font file. Bundled fonts and explicitly
//     registered files are searched first, then the configured font
//     directories, then the platform font directories. A family that is an
//     http(s) URL is downloaded once and kept in an on-disk cache.
//   - Layout: [Layout] turns styled spans into positioned glyph runs,
//     wrapping words greedily at a maximum width and shrinking the font
//     size when auto-scale is requested.
//
// # Example usage
//
//	r := text.NewResolver(text.WithFontDirs("./fonts"))
//	face, err := r.Face(ctx, "Roboto", text.WeightBold, false, 48)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(face.Measure("Hello"))
//
// FontSource is heavyweight and shared; a Face is a FontSource at one size.
// Faces returned by a Resolver are cached and safe for concurrent use.
package text
