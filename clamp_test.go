package movable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(size float64) Box {
	return Box{Width: size, Height: size}
}

func TestBounds_Axes(t *testing.T) {
	tests := []struct {
		name    string
		area    Box
		content Box
		scale   float64
		want    Bounds
	}{
		{"content fits", square(200), square(100), 1, Bounds{0, 100, 0, 100}},
		{"content larger", square(20), square(100), 1, Bounds{-80, 0, -80, 0}},
		{"scaled to the area", square(200), square(100), 2, Bounds{50, 50, 50, 50}},
		{"scaled down", square(200), square(100), 0.5, Bounds{-25, 125, -25, 125}},
		{"mixed axes", Box{Width: 200, Height: 50}, square(100), 1, Bounds{0, 100, -50, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeBounds(tt.scale, tt.area, tt.content))
		})
	}
}

func TestClamp_Hard(t *testing.T) {
	assert := assert.New(t)

	x, y := Clamp(150, -10, 1, square(200), square(100), false, false)
	assert.Equal(100.0, x)
	assert.Equal(0.0, y)

	x, y = Clamp(10, -100, 1, square(20), square(100), false, false)
	assert.Equal(0.0, x)
	assert.Equal(-80.0, y)

	// Without the elastic flag the out of bounds mode still cuts the overshoot.
	x, _ = Clamp(116, 0, 1, square(200), square(100), true, false)
	assert.Equal(100.0, x)
}

func TestClamp_Elastic(t *testing.T) {
	assert := assert.New(t)

	x, y := Clamp(116, -9, 1, square(200), square(100), true, true)
	assert.Equal(104.0, x)
	assert.Equal(-3.0, y)

	// Elasticity is only applied with out of bounds enabled.
	x, y = Clamp(116, -9, 1, square(200), square(100), false, true)
	assert.Equal(100.0, x)
	assert.Equal(0.0, y)
}

func TestClamp_ZeroSizedArea(t *testing.T) {
	assert := assert.New(t)

	x, y := Clamp(30, 40, 2, Box{Width: 0, Height: 100}, square(100), false, false)
	assert.Equal(50.0, x)
	assert.Equal(50.0, y)

	x, y = Clamp(30, 40, 1, Box{}, square(100), true, true)
	assert.Equal(0.0, x)
	assert.Equal(0.0, y)
}

func TestClamp_NaN(t *testing.T) {
	x, y := Clamp(math.NaN(), 20, 1, square(20), square(100), false, false)
	assert.Equal(t, -80.0, x)
	assert.Equal(t, 0.0, y)
}

func TestClamp_Idempotent(t *testing.T) {
	areas := []Box{square(200), square(20), {Width: 300, Height: 40}}
	scales := []float64{0.5, 1, 1.7, 3}

	for _, area := range areas {
		for _, scale := range scales {
			b := ComputeBounds(scale, area, square(100))
			for x := -400.0; x <= 400; x += 37 {
				for y := -400.0; y <= 400; y += 41 {
					cx, cy := Clamp(x, y, scale, area, square(100), false, false)
					if !b.Contains(cx, cy) {
						t.Fatalf("clamp(%v, %v) at scale %v in %v = (%v, %v), outside of %+v", x, y, scale, area, cx, cy, b)
					}
					nx, ny := Clamp(cx, cy, scale, area, square(100), false, false)
					if nx != cx || ny != cy {
						t.Fatalf("clamp is not idempotent for (%v, %v): got (%v, %v)", cx, cy, nx, ny)
					}
				}
			}
		}
	}
}

func TestDiff(t *testing.T) {
	dx, dy := Diff(Box{Width: 100, Height: 40}, 1.5)
	assert.Equal(t, 25.0, dx)
	assert.Equal(t, 10.0, dy)
}
