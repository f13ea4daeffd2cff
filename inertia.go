package movable

import (
	"math"
	"time"
)

// maxInertiaDuration caps the coasting duration, in seconds.
const maxInertiaDuration = 0.3

// ReleaseKind enumerates the possible outcomes of a touch release.
type ReleaseKind int

const (
	// ReleaseStay leaves the content where the finger released it.
	ReleaseStay ReleaseKind = iota
	// ReleaseRebound animates the content back inside the hard bounds.
	ReleaseRebound
	// ReleaseInertia lets the content coast along the release velocity.
	ReleaseInertia
)

func (k ReleaseKind) String() string {
	switch k {
	case ReleaseStay:
		return "stay"
	case ReleaseRebound:
		return "rebound"
	case ReleaseInertia:
		return "inertia"
	}
	return "unknown"
}

// Release is the final position and the transition duration (in seconds)
// computed for a touch release.
type Release struct {
	Kind     ReleaseKind
	X, Y     float64
	Duration float64
}

// InertiaUnit returns the distance, in pixels, travelled per px/ms of release velocity.
func InertiaUnit(friction float64) float64 {
	return 100 / math.Sqrt(friction)
}

// ReboundDuration returns the rebound animation duration in seconds.
func ReboundDuration(damping float64) float64 {
	return 12 / damping
}

// Velocity returns the velocity in px/ms between two samples taken dt apart.
func Velocity(from, to float64, dt time.Duration) float64 {
	ms := float64(dt) / float64(time.Millisecond)
	if ms <= 0 {
		return 0
	}
	return (to - from) / ms
}

// Project computes the post-release motion of content released at (x, y)
// with the velocity (vx, vy) expressed in px/ms.
//
// The release position is hard clamped first. When that moves it the content
// rebounds into the bounds without any inertia. Otherwise, with inertia enabled,
// the projected delta is added and clamped again, honouring the elastic mode.
func Project(x, y, vx, vy, scale float64, area, content Box, opts Options) Release {
	cx, cy := Clamp(x, y, scale, area, content, false, false)
	if cx != x || cy != y {
		return Release{
			Kind:     ReleaseRebound,
			X:        cx,
			Y:        cy,
			Duration: ReboundDuration(opts.Damping),
		}
	}
	if !opts.Inertia {
		return Release{Kind: ReleaseStay, X: x, Y: y}
	}

	unit := InertiaUnit(opts.Friction)
	nx, ny := Clamp(x+vx*unit, y+vy*unit, scale, area, content, opts.OutOfBounds, true)

	return Release{
		Kind:     ReleaseInertia,
		X:        nx,
		Y:        ny,
		Duration: math.Min(math.Abs(math.Max(vx, vy)), maxInertiaDuration),
	}
}
