// Package filter provides the pixel filters used by layer rendering:
//   - Gaussian blur (separable) for RGBA images and alpha masks
//   - Morphological dilation of alpha masks (stroke and glow expansion)
//   - Drop shadow and glow masks built from the two above
//   - Color matrix transformations (brightness, contrast, saturation)
//
// RGBA images are straight-alpha *image.NRGBA; blurring happens on
// premultiplied values so transparent pixels do not bleed black.
package filter
