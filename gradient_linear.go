package ggthumb

import "math"

// LinearGradient is a straight color transition across the whole canvas.
//
// Angle is in degrees: 0 runs left to right and the direction turns
// clockwise as the angle grows (90 runs top to bottom). The gradient is
// normalized so that the first stop lands on the extreme canvas corner
// behind the axis and the last stop on the extreme corner ahead of it.
//
// Example:
//
//	g := ggthumb.NewLinearGradient(45).
//	    AddColorStop(0, ggthumb.Red).
//	    AddColorStop(1, ggthumb.Blue)
type LinearGradient struct {
	Angle float64     // Direction in degrees, clockwise from +x
	Stops []ColorStop // Color stops defining the gradient
}

// NewLinearGradient creates an empty linear gradient at angle degrees.
func NewLinearGradient(angle float64) *LinearGradient {
	return &LinearGradient{Angle: angle}
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c Color) *LinearGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

func (*LinearGradient) isFill() {}

// ColorStops returns the stops sorted by offset.
func (g *LinearGradient) ColorStops() []ColorStop { return sortStops(g.Stops) }

// ColorAt returns the color of pixel (x, y) on a width×height canvas.
func (g *LinearGradient) ColorAt(x, y, width, height int) Color {
	return g.shader(width, height)(x, y)
}

func (g *LinearGradient) shader(width, height int) func(x, y int) Color {
	stops := sortStops(g.Stops)
	rad := g.Angle * math.Pi / 180
	ux, uy := math.Cos(rad), math.Sin(rad)

	// Project the four extreme pixel centers onto the axis.
	x0, y0 := 0.5, 0.5
	x1, y1 := float64(width)-0.5, float64(height)-0.5
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range [4][2]float64{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		p := c[0]*ux + c[1]*uy
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	span := hi - lo

	return func(x, y int) Color {
		if span <= 1e-9 {
			return colorAtOffset(stops, 0)
		}
		p := (float64(x)+0.5)*ux + (float64(y)+0.5)*uy
		return colorAtOffset(stops, (p-lo)/span)
	}
}
