package movable

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/esimov/movable/utils"
	"github.com/tidwall/gjson"
)

// SetAttributes applies a JSON object of attribute values, the way a host framework
// forwards its declarative attributes (e.g. {"direction":"all","scaleMax":"4"}).
// Numbers may be given as JSON numbers or numeric strings. Values which cannot be
// parsed are ignored; only a malformed payload returns an error.
func (v *View) SetAttributes(payload string) error {
	if !gjson.Valid(payload) {
		return fmt.Errorf("invalid attributes payload: %q", payload)
	}
	attrs := gjson.Parse(payload)
	if !attrs.IsObject() {
		return fmt.Errorf("attributes payload is not an object: %q", payload)
	}

	opts := v.opts
	if r := attrs.Get("direction"); r.Exists() {
		opts.Direction = Direction(strings.ToLower(strings.TrimSpace(r.String())))
	}
	for key, dst := range map[string]*bool{
		"scale":       &opts.Scale,
		"disabled":    &opts.Disabled,
		"outOfBounds": &opts.OutOfBounds,
		"inertia":     &opts.Inertia,
	} {
		if r := attrs.Get(key); r.Exists() {
			*dst = r.Bool()
		}
	}
	for key, dst := range map[string]*float64{
		"damping":  &opts.Damping,
		"friction": &opts.Friction,
		"scaleMin": &opts.ScaleMin,
		"scaleMax": &opts.ScaleMax,
	} {
		if r := attrs.Get(key); r.Exists() {
			if n := numeric(r); utils.IsFinite(n) {
				*dst = n
			} else {
				v.surface.logf("view %q: ignoring attribute %s=%s", v.id, key, r.Raw)
			}
		}
	}
	v.SetOptions(opts)

	if r := attrs.Get("scaleValue"); r.Exists() {
		v.SetScaleValue(numeric(r))
	}

	x, y := math.NaN(), math.NaN()
	if r := attrs.Get("x"); r.Exists() {
		x = numeric(r)
	}
	if r := attrs.Get("y"); r.Exists() {
		y = numeric(r)
	}
	if !math.IsNaN(x) || !math.IsNaN(y) {
		v.SetPosition(x, y)
	}
	return nil
}

// numeric returns the float value of r, or NaN when r holds no number.
func numeric(r gjson.Result) float64 {
	switch r.Type {
	case gjson.Number:
		return r.Num
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}
