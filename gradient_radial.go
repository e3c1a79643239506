package ggthumb

import "math"

// RadialGradient is a circular color transition centered at a point given
// in canvas fractions. Offset 1 is reached at the canvas corner farthest
// from the center.
type RadialGradient struct {
	CenterX, CenterY float64     // Center in [0, 1] canvas fractions
	Stops            []ColorStop // Color stops defining the gradient
}

// NewRadialGradient creates an empty radial gradient centered on the canvas.
func NewRadialGradient() *RadialGradient {
	return &RadialGradient{CenterX: 0.5, CenterY: 0.5}
}

// SetCenter sets the center in canvas fractions.
// Returns the gradient for method chaining.
func (g *RadialGradient) SetCenter(cx, cy float64) *RadialGradient {
	g.CenterX, g.CenterY = cx, cy
	return g
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (g *RadialGradient) AddColorStop(offset float64, c Color) *RadialGradient {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

func (*RadialGradient) isFill() {}

// ColorStops returns the stops sorted by offset.
func (g *RadialGradient) ColorStops() []ColorStop { return sortStops(g.Stops) }

// ColorAt returns the color of pixel (x, y) on a width×height canvas.
func (g *RadialGradient) ColorAt(x, y, width, height int) Color {
	return g.shader(width, height)(x, y)
}

func (g *RadialGradient) shader(width, height int) func(x, y int) Color {
	stops := sortStops(g.Stops)
	w, h := float64(width), float64(height)
	cx, cy := g.CenterX*w, g.CenterY*h

	var maxDist float64
	for _, c := range [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		maxDist = math.Max(maxDist, math.Hypot(c[0]-cx, c[1]-cy))
	}

	return func(x, y int) Color {
		if maxDist == 0 {
			return colorAtOffset(stops, 0)
		}
		d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
		return colorAtOffset(stops, d/maxDist)
	}
}
