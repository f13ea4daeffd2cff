package movable

import (
	"time"

	"github.com/esimov/movable/geom"
)

// Tween plays the transitions declared through ViewState on the renderer side.
// A state with a non-zero TransitionDuration starts a new transition from the
// currently painted position; a zero duration jumps to the state.
type Tween struct {
	from, to Frame
	start    time.Duration
	duration time.Duration
}

// Frame is a painted position and scale.
type Frame struct {
	X, Y, Scale float64
}

// Update records the rendered state at time now.
func (t *Tween) Update(now time.Duration, s ViewState) {
	target := Frame{X: s.X, Y: s.Y, Scale: s.ScaleValue}
	if s.TransitionDuration <= 0 {
		t.from, t.to = target, target
		t.duration = 0
		return
	}
	if target == t.to && t.Active(now) {
		return
	}
	t.from = t.At(now)
	t.to = target
	t.start = now
	t.duration = seconds(s.TransitionDuration)
}

// Active reports whether a transition is running at now.
func (t *Tween) Active(now time.Duration) bool {
	return t.duration > 0 && now < t.start+t.duration
}

// At returns the painted frame at time now. The progress follows a cubic ease-out.
func (t *Tween) At(now time.Duration) Frame {
	if !t.Active(now) {
		return t.to
	}
	p := float64(now-t.start) / float64(t.duration)
	if p < 0 {
		p = 0
	}
	p = 1 - (1-p)*(1-p)*(1-p)
	return Frame{
		X:     t.from.X + (t.to.X-t.from.X)*p,
		Y:     t.from.Y + (t.to.Y-t.from.Y)*p,
		Scale: t.from.Scale + (t.to.Scale-t.from.Scale)*p,
	}
}

// TweenMeasurer reports the live transform of a tweened element
// and delegates everything else to a StaticMeasurer.
type TweenMeasurer struct {
	*StaticMeasurer
	Tweens map[string]*Tween
	Clock  func() time.Duration
}

// NewTweenMeasurer creates a measurer reading the tween clock from clock.
func NewTweenMeasurer(clock func() time.Duration) *TweenMeasurer {
	return &TweenMeasurer{
		StaticMeasurer: NewStaticMeasurer(),
		Tweens:         make(map[string]*Tween),
		Clock:          clock,
	}
}

// Tween returns the tween of the element id, creating it on first use.
func (m *TweenMeasurer) Tween(id string) *Tween {
	t, ok := m.Tweens[id]
	if !ok {
		t = &Tween{}
		m.Tweens[id] = t
	}
	return t
}

// Render returns a Handlers.Render callback feeding the tween of id.
func (m *TweenMeasurer) Render(id string) func(ViewState) {
	return func(s ViewState) {
		m.Tween(id).Update(m.Clock(), s)
	}
}

func (m *TweenMeasurer) Transform(id string) string {
	t, ok := m.Tweens[id]
	if !ok {
		return m.StaticMeasurer.Transform(id)
	}
	f := t.At(m.Clock())
	return geom.FormatMatrix(geom.Transform(f.X, f.Y, f.Scale))
}
