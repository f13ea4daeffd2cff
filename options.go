package movable

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/esimov/movable/utils"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of the environment variables read by ParseEnv.
const EnvPrefix = "MOVABLE_"

const (
	defaultDamping  = 20
	defaultFriction = 2
	defaultScaleMin = 0.5
	defaultScaleMax = 10

	// maxScale is the upper limit of the scale bounds.
	maxScale = 10
)

// Options holds the configurable attributes of a View.
type Options struct {
	// Direction enables translation along the given axes.
	Direction Direction `yaml:"direction" env:"DIRECTION"`
	// Scale enables pinch scaling.
	Scale bool `yaml:"scale" env:"SCALE"`
	// Disabled freezes the gesture handling. Programmatic updates still apply.
	Disabled bool `yaml:"disabled" env:"DISABLED"`
	// OutOfBounds selects the elastic rubber-band clamp instead of the hard one.
	OutOfBounds bool `yaml:"outOfBounds" env:"OUT_OF_BOUNDS"`
	// Damping controls the rebound speed. Higher is snappier.
	Damping float64 `yaml:"damping" env:"DAMPING"`
	// Friction controls the inertia unit. Higher means shorter coasting.
	Friction float64 `yaml:"friction" env:"FRICTION"`
	// Inertia enables the post-release coasting.
	Inertia  bool    `yaml:"inertia" env:"INERTIA"`
	ScaleMin float64 `yaml:"scaleMin" env:"SCALE_MIN"`
	ScaleMax float64 `yaml:"scaleMax" env:"SCALE_MAX"`

	// Initial position and scale.
	X          float64 `yaml:"x" env:"X"`
	Y          float64 `yaml:"y" env:"Y"`
	ScaleValue float64 `yaml:"scaleValue" env:"SCALE_VALUE"`
}

// DefaultOptions returns the attribute defaults.
func DefaultOptions() Options {
	return Options{
		Direction:  DirectionNone,
		Damping:    defaultDamping,
		Friction:   defaultFriction,
		ScaleMin:   defaultScaleMin,
		ScaleMax:   defaultScaleMax,
		ScaleValue: 1,
	}
}

// Normalize corrects the invalid values in place. It never fails: an offending
// bound is pulled toward its counterpart and unusable values fall back to the defaults.
func (o *Options) Normalize() {
	if !o.Direction.Valid() {
		o.Direction = DirectionNone
	}
	if !utils.IsFinite(o.ScaleMax) || o.ScaleMax <= 0 {
		o.ScaleMax = defaultScaleMax
	}
	if o.ScaleMax > maxScale {
		o.ScaleMax = maxScale
	}
	if !utils.IsFinite(o.ScaleMin) || o.ScaleMin <= 0 {
		o.ScaleMin = defaultScaleMin
	}
	if o.ScaleMin > o.ScaleMax {
		o.ScaleMin = o.ScaleMax
	}
	if !utils.IsFinite(o.Damping) || o.Damping <= 0 {
		o.Damping = defaultDamping
	}
	if !utils.IsFinite(o.Friction) || o.Friction <= 0 {
		o.Friction = defaultFriction
	}
	if !utils.IsFinite(o.X) {
		o.X = 0
	}
	if !utils.IsFinite(o.Y) {
		o.Y = 0
	}
	if !utils.IsFinite(o.ScaleValue) || o.ScaleValue <= 0 {
		o.ScaleValue = 1
	}
	o.ScaleValue = utils.Clamp(o.ScaleValue, o.ScaleMin, o.ScaleMax)
}

// LoadOptions reads the options from a YAML file. The fields missing
// from the file keep their default values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse options YAML: %w", err)
	}
	return opts, nil
}

// ParseEnv overrides the options with the MOVABLE_* environment variables.
func ParseEnv(opts *Options) error {
	if err := env.ParseWithOptions(opts, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
