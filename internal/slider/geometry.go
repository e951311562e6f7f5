// Package slider maps pointer gestures on progress sliders to ratios.
package slider

import (
	"errors"
	"fmt"
)

// ErrGeometry is returned when a slider has no measurable extent along its
// active axis.
var ErrGeometry = errors.New("slider has no measurable extent")

// Orientation is the active axis of a slider.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Point is a pointer position in surface coordinates.
type Point struct {
	X, Y float64
}

// Geometry is a snapshot of a slider's bounds. It is taken when a gesture
// starts and must not be cached across layouts.
type Geometry struct {
	Origin      Point
	Width       float64
	Height      float64
	Orientation Orientation
}

// Contains reports whether p lies inside the slider bounds.
func (g Geometry) Contains(p Point) bool {
	return p.X >= g.Origin.X && p.X < g.Origin.X+g.Width &&
		p.Y >= g.Origin.Y && p.Y < g.Origin.Y+g.Height
}

// Validate returns an error wrapping ErrGeometry if the active axis has no
// positive extent.
func (g Geometry) Validate() error {
	switch g.Orientation {
	case Vertical:
		if !(g.Height > 0) {
			return fmt.Errorf("%w: %s height %v", ErrGeometry, g.Orientation, g.Height)
		}
	default:
		if !(g.Width > 0) {
			return fmt.Errorf("%w: %s width %v", ErrGeometry, g.Orientation, g.Width)
		}
	}
	return nil
}

// Ratio converts a pointer position to a position along the slider in [0,1].
// Vertical sliders are inverted so that moving up increases the ratio.
// Positions outside the slider are clamped.
func Ratio(p Point, g Geometry) (float64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}

	var k float64
	if g.Orientation == Vertical {
		k = 1 - (p.Y-g.Origin.Y)/g.Height
	} else {
		k = (p.X - g.Origin.X) / g.Width
	}
	return Clamp(k), nil
}

// Clamp limits v to [0,1]. NaN maps to 0.
func Clamp(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
