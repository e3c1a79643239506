// Package raster rasterizes the shape primitives used by layers into
// anti-aliased alpha masks: rectangles with optional rounded corners,
// ellipses, and canvas-edge frames.
package raster
