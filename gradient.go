package ggthumb

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptyStops is returned when a gradient has no color stops.
var ErrEmptyStops = errors.New("ggthumb: gradient has no color stops")

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  Color   // Color at this position
}

// Gradient is a color field over the canvas. Implemented by
// *LinearGradient and *RadialGradient.
type Gradient interface {
	Fill

	// ColorAt returns the color of pixel (x, y) on a width×height canvas.
	ColorAt(x, y, width, height int) Color

	// ColorStops returns the stops sorted by offset.
	ColorStops() []ColorStop

	// shader returns a per-pixel sampler prepared for one canvas size.
	shader(width, height int) func(x, y int) Color
}

// sortStops returns a copy of stops sorted by offset. Stops sharing an
// offset keep their relative order.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}

	// Create a copy to avoid modifying the original
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}

// validateStops checks the stop list of a gradient fill.
func validateStops(stops []ColorStop) error {
	if len(stops) == 0 {
		return &ValidationError{Field: "stops", Reason: "at least one color stop is required", Err: ErrEmptyStops}
	}
	for i, s := range stops {
		if s.Offset < 0 || s.Offset > 1 {
			return &ValidationError{Field: fmt.Sprintf("stops[%d].offset", i), Reason: fmt.Sprintf("offset %v outside [0, 1]", s.Offset)}
		}
	}
	return nil
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// colorAtOffset returns the interpolated color at offset t of sorted
// stops. Interpolation is channel-wise in straight sRGB, alpha included.
// Offsets outside the stop range take the nearest stop's color.
func colorAtOffset(sorted []ColorStop, t float64) Color {
	switch len(sorted) {
	case 0:
		return Transparent
	case 1:
		return sorted[0].Color
	}

	// All stops coincide: the first one wins everywhere.
	if sorted[0].Offset == sorted[len(sorted)-1].Offset {
		return sorted[0].Color
	}

	t = clamp01(t)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})

	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]

	// Avoid division by zero for coincident stops
	if stop2.Offset == stop1.Offset {
		return stop2.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return stop1.Color.Lerp(stop2.Color, localT)
}
