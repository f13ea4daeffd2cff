package movable

import "math"

// PinchRatio converts the current and initial finger distances into the ratio
// applied to the cached scale. The square root dampens the perceived sensitivity.
func PinchRatio(distance, initial float64) float64 {
	if initial <= 0 || distance < 0 {
		return 1
	}
	return math.Sqrt(distance / initial)
}

// RelayedRatio converts the raw distance ratio relayed by an Area.
func RelayedRatio(ratio float64) float64 {
	if ratio < 0 || math.IsNaN(ratio) {
		return 1
	}
	return math.Sqrt(ratio)
}

// ResolveScale combines the cached base scale with a pinch ratio.
// The new scale is reported only when scaling is enabled, the unscaled content
// is smaller than the area on both axes and the result lies strictly inside
// (scaleMin, scaleMax). Otherwise cacheScale is returned with ok set to false.
func ResolveScale(ratio, cacheScale, scaleMin, scaleMax float64, content, area Box, enabled bool) (scale float64, ok bool) {
	if !enabled {
		return cacheScale, false
	}
	if content.Width >= area.Width || content.Height >= area.Height {
		return cacheScale, false
	}
	scale = cacheScale * ratio
	if math.IsNaN(scale) || scale <= scaleMin || scale >= scaleMax {
		return cacheScale, false
	}
	return scale, true
}
