package movable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale_PinchRatio(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2.0, PinchRatio(40, 10))
	assert.Equal(0.5, PinchRatio(25, 100))
	assert.Equal(1.0, PinchRatio(40, 0))
	assert.Equal(3.0, RelayedRatio(9))
	assert.Equal(1.0, RelayedRatio(math.NaN()))
}

func TestScale_Resolve(t *testing.T) {
	assert := assert.New(t)
	content, area := square(100), square(200)

	// Pinch from 10 to 40 pixels apart.
	scale, ok := ResolveScale(PinchRatio(40, 10), 1, 0.5, 10, content, area, true)
	assert.True(ok)
	assert.Equal(2.0, scale)

	// Same pinch with a lower upper bound.
	scale, ok = ResolveScale(PinchRatio(40, 10), 1, 0.5, 1.5, content, area, true)
	assert.False(ok)
	assert.Equal(1.0, scale)

	// The bounds are exclusive.
	_, ok = ResolveScale(2, 5, 0.5, 10, content, area, true)
	assert.False(ok)
	_, ok = ResolveScale(0.5, 1, 0.5, 10, content, area, true)
	assert.False(ok)

	scale, ok = ResolveScale(1.5, 2, 0.5, 10, content, area, true)
	assert.True(ok)
	assert.Equal(3.0, scale)
}

func TestScale_Rejected(t *testing.T) {
	assert := assert.New(t)

	_, ok := ResolveScale(2, 1, 0.5, 10, square(100), square(200), false)
	assert.False(ok, "scaling disabled")

	_, ok = ResolveScale(2, 1, 0.5, 10, square(200), square(200), true)
	assert.False(ok, "content as large as the area")

	_, ok = ResolveScale(2, 1, 0.5, 10, Box{Width: 100, Height: 300}, square(200), true)
	assert.False(ok, "content taller than the area")
}
