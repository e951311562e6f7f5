package slider

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hbar = Geometry{Origin: Point{X: 10, Y: 2}, Width: 100, Height: 1, Orientation: Horizontal}
	vbar = Geometry{Origin: Point{X: 50, Y: 0}, Width: 1, Height: 20, Orientation: Vertical}
)

func TestRatio_Horizontal(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{10, 0},
		{35, 0.25},
		{60, 0.5},
		{110, 1},
		{-500, 0},
		{9000, 1},
	}
	for _, tt := range tests {
		got, err := Ratio(Point{X: tt.x, Y: 2}, hbar)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "x=%v", tt.x)
	}
}

func TestRatio_VerticalIsInverted(t *testing.T) {
	tests := []struct {
		y    float64
		want float64
	}{
		{0, 1},
		{5, 0.75},
		{10, 0.5},
		{20, 0},
		{-3, 1},
		{400, 0},
	}
	for _, tt := range tests {
		got, err := Ratio(Point{X: 50, Y: tt.y}, vbar)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "y=%v", tt.y)
	}
}

func TestRatio_BoundedAndMonotonic(t *testing.T) {
	prevH, prevV := -1.0, 2.0
	for i := -200; i <= 300; i++ {
		c := float64(i) / 2
		h, err := Ratio(Point{X: c}, hbar)
		require.NoError(t, err)
		v, err := Ratio(Point{Y: c}, vbar)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, h, 0.0)
		assert.LessOrEqual(t, h, 1.0)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)

		assert.GreaterOrEqual(t, h, prevH, "horizontal must not decrease as x grows")
		assert.LessOrEqual(t, v, prevV, "vertical must not increase as y grows")
		prevH, prevV = h, v
	}
}

func TestRatio_ZeroExtentIsGeometryError(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
	}{
		{"zero width", Geometry{Width: 0, Height: 1, Orientation: Horizontal}},
		{"negative width", Geometry{Width: -4, Height: 1, Orientation: Horizontal}},
		{"zero height", Geometry{Width: 1, Height: 0, Orientation: Vertical}},
		{"nan width", Geometry{Width: math.NaN(), Height: 1, Orientation: Horizontal}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Ratio(Point{X: 1, Y: 1}, tt.g)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrGeometry))
			assert.False(t, math.IsNaN(got))
		})
	}
}

func TestRatio_OnlyActiveAxisMatters(t *testing.T) {
	// A horizontal slider one row high with zero height is still measurable.
	g := Geometry{Width: 10, Height: 0, Orientation: Horizontal}
	got, err := Ratio(Point{X: 5}, g)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestGeometry_Contains(t *testing.T) {
	assert.True(t, hbar.Contains(Point{X: 10, Y: 2}))
	assert.True(t, hbar.Contains(Point{X: 109.5, Y: 2.5}))
	assert.False(t, hbar.Contains(Point{X: 110, Y: 2}))
	assert.False(t, hbar.Contains(Point{X: 20, Y: 3}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1))
	assert.Equal(t, 0.0, Clamp(math.NaN()))
	assert.Equal(t, 0.3, Clamp(0.3))
	assert.Equal(t, 1.0, Clamp(math.Inf(1)))
}
