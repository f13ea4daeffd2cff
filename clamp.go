package movable

import "math"

// Bounds holds the allowed translation range of a View at a given scale.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Contains reports whether (x, y) lies inside the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Diff returns the offset of the scaled content's origin from its unscaled
// top-left corner. Scaling happens around the content center.
func Diff(content Box, scale float64) (float64, float64) {
	return content.Width * (scale - 1) / 2, content.Height * (scale - 1) / 2
}

// ComputeBounds returns the translation range of content scaled by scale inside area.
// Each axis is resolved on its own: when the scaled content fits the area
// the range is [diff, diff+maxTranslate], otherwise it is inverted
// to [maxTranslate+diff, diff] so the content always covers the area.
func ComputeBounds(scale float64, area, content Box) Bounds {
	var b Bounds
	b.MinX, b.MaxX = axisBounds(area.Width, content.Width, scale)
	b.MinY, b.MaxY = axisBounds(area.Height, content.Height, scale)
	return b
}

func axisBounds(area, content, scale float64) (lo, hi float64) {
	diff := content * (scale - 1) / 2
	maxTranslate := area - content*scale
	if maxTranslate >= 0 {
		return diff, diff + maxTranslate
	}
	return maxTranslate + diff, diff
}

// Clamp maps the candidate position (x, y) to the allowed one.
//
// With outOfBounds and elastic both set an overshoot is not cut but compressed
// to bound ∓ √|overshoot|, producing the rubber-band effect. An area without
// dimensions is considered fully out of bounds and the diff offset is returned.
func Clamp(x, y, scale float64, area, content Box, outOfBounds, elastic bool) (float64, float64) {
	if area.Width == 0 || area.Height == 0 {
		return Diff(content, scale)
	}
	b := ComputeBounds(scale, area, content)
	rubber := outOfBounds && elastic

	return clampAxis(x, b.MinX, b.MaxX, rubber), clampAxis(y, b.MinY, b.MaxY, rubber)
}

func clampAxis(v, lo, hi float64, rubber bool) float64 {
	switch {
	case math.IsNaN(v):
		return lo
	case v < lo:
		if rubber {
			return lo - math.Sqrt(lo-v)
		}
		return lo
	case v > hi:
		if rubber {
			return hi + math.Sqrt(v-hi)
		}
		return hi
	}
	return v
}
