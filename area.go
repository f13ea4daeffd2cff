package movable

import (
	"fmt"

	"github.com/esimov/movable/geom"
)

// ScaleStatus is the phase of a relayed pinch.
type ScaleStatus int

const (
	// ScaleBegin asks the View to cache its current scale.
	ScaleBegin ScaleStatus = iota
	// ScaleApply asks the View to apply the relayed ratio.
	ScaleApply
)

// ScaleMessage is the payload relayed by an Area to its View when a pinch
// lands on the empty container space.
type ScaleMessage struct {
	// Scale is the raw ratio between the current and the initial finger distance.
	Scale        float64
	TargetViewID string
	Status       ScaleStatus
}

// ScaleTopic returns the bus message type a View subscribes to.
func ScaleTopic(viewID string) string {
	return "movable.scale:" + viewID
}

// Area is the fixed-size container defining the drag and scale bounds
// of its single View.
type Area struct {
	id       string
	surface  *Surface
	measurer Measurer
	box      Box
	child    *View
	caps     lifecycle

	pinch struct {
		active       bool
		began        bool
		initDistance float64
	}
}

// NewArea creates and attaches an Area. An empty id is replaced by a generated one.
func (s *Surface) NewArea(id string, m Measurer) (*Area, error) {
	if id == "" {
		id = s.Registry.NewID("area")
	}
	a := &Area{id: id, surface: s, measurer: m}
	a.caps = lifecycle{
		funcCapability{name: "measure", attach: func() error {
			a.measure()
			return nil
		}},
	}
	if err := s.Registry.Register(a); err != nil {
		return nil, err
	}
	if err := a.caps.attach(); err != nil {
		s.Registry.Unregister(id)
		return nil, fmt.Errorf("area %q: %w", id, err)
	}
	return a, nil
}

// ID returns the area id.
func (a *Area) ID() string { return a.id }

// Box returns the box measured at attach time or at the start of the last gesture.
func (a *Area) Box() Box { return a.box }

// Child returns the attached View, if any.
func (a *Area) Child() *View { return a.child }

func (a *Area) measure() {
	a.box = a.measurer.Box(a.id)
	if a.box.Empty() {
		a.surface.logf("area %q measured as empty box %v", a.id, a.box)
	}
}

func (a *Area) attachChild(v *View) error {
	if a.child != nil && a.child != v {
		return fmt.Errorf("area %q: %w", a.id, ErrAlreadyAttached)
	}
	a.child = v
	return nil
}

func (a *Area) detachChild(v *View) {
	if a.child == v {
		a.child = nil
	}
}

// HandleTouch processes a touch event bubbled up to the area. Only the
// two-finger sequences started on the area itself are considered: they are
// relayed to the child View as scale messages.
func (a *Area) HandleTouch(ev TouchEvent) {
	if a.child == nil || ev.Target != a.id {
		return
	}
	switch ev.Type {
	case TouchStart:
		if a.pinch.active || len(ev.Touches) != 2 {
			return
		}
		a.measure()
		t0, t1 := ev.Touches[0], ev.Touches[1]
		a.pinch.active = true
		a.pinch.began = false
		a.pinch.initDistance = geom.Distance(t0.PageX, t0.PageY, t1.PageX, t1.PageY)
	case TouchMove:
		if !a.pinch.active || len(ev.Touches) < 2 || a.pinch.initDistance <= 0 {
			return
		}
		t0, t1 := ev.Touches[0], ev.Touches[1]
		ratio := geom.Distance(t0.PageX, t0.PageY, t1.PageX, t1.PageY) / a.pinch.initDistance
		if !a.pinch.began {
			a.pinch.began = true
			a.relay(ScaleMessage{TargetViewID: a.child.ID(), Status: ScaleBegin})
		}
		a.relay(ScaleMessage{Scale: ratio, TargetViewID: a.child.ID(), Status: ScaleApply})
	case TouchEnd, TouchCancel:
		if len(ev.Touches) < 2 || ev.Type == TouchCancel {
			a.pinch.active = false
			a.pinch.began = false
		}
	}
}

func (a *Area) relay(m ScaleMessage) {
	a.surface.Bus.Fire(Message{Type: ScaleTopic(m.TargetViewID), Data: m})
}

// Destroy detaches the area. Its View, if any, keeps its last state
// but receives no more relayed messages.
func (a *Area) Destroy() {
	a.caps.detach()
	a.child = nil
	a.surface.Registry.Unregister(a.id)
}
