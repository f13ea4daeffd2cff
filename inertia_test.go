package movable

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInertia_Constants(t *testing.T) {
	assert := assert.New(t)

	assert.InDelta(70.71, InertiaUnit(2), 0.01)
	assert.Equal(100.0, InertiaUnit(1))
	assert.Equal(0.6, ReboundDuration(20))
	assert.Equal(1.0, Velocity(0, 100, 100*time.Millisecond))
	assert.Equal(-0.5, Velocity(50, 0, 100*time.Millisecond))
	assert.Equal(0.0, Velocity(0, 100, 0))
}

func TestInertia_Project(t *testing.T) {
	assert := assert.New(t)

	opts := DefaultOptions()
	opts.Inertia = true

	r := Project(10, 0, 1, 0, 1, square(200), square(100), opts)
	assert.Equal(ReleaseInertia, r.Kind)
	assert.InDelta(10+100/math.Sqrt2, r.X, 1e-9)
	assert.Equal(0.0, r.Y)
	assert.Equal(0.3, r.Duration)

	// Slow releases coast for less than the maximum duration.
	r = Project(10, 0, 0.1, 0, 1, square(200), square(100), opts)
	assert.InDelta(0.1, r.Duration, 1e-9)

	// A projection past the bound is hard clamped.
	r = Project(90, 0, 5, 0, 1, square(200), square(100), opts)
	assert.Equal(100.0, r.X)
}

func TestInertia_Rebound(t *testing.T) {
	assert := assert.New(t)

	opts := DefaultOptions()
	opts.Inertia = true
	opts.Damping = 40

	r := Project(-4, 120, 3, 3, 1, square(200), square(100), opts)
	assert.Equal(ReleaseRebound, r.Kind)
	assert.Equal(0.0, r.X)
	assert.Equal(100.0, r.Y)
	assert.Equal(0.3, r.Duration)
}

func TestInertia_Stay(t *testing.T) {
	r := Project(40, 30, 2, 2, 1, square(200), square(100), DefaultOptions())
	assert.Equal(t, Release{Kind: ReleaseStay, X: 40, Y: 30}, r)
	assert.Equal(t, "stay", r.Kind.String())
}
