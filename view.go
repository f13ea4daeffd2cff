package movable

import (
	"fmt"
	"math"
	"time"

	"gioui.org/io/pointer"
	"github.com/esimov/movable/geom"
	"github.com/esimov/movable/utils"
)

// moveThreshold is the displacement, in pixels, a finger has to travel on
// at least one axis before a touch is classified as a drag. Below it the
// nested interactive content still receives its clicks.
const moveThreshold = 2

// ActivateType is the operation a gesture session drives.
type ActivateType int

const (
	ActivateNone ActivateType = iota
	ActivateTranslate
	ActivateScale
)

func (t ActivateType) String() string {
	switch t {
	case ActivateTranslate:
		return "translate"
	case ActivateScale:
		return "scale"
	}
	return "none"
}

// Point is a position in page coordinates.
type Point struct {
	X, Y float64
}

// GestureSession is the scratch state of one touch sequence.
// Its operation is fixed at touchstart: fingers added or removed
// later do not classify it again.
type GestureSession struct {
	FingerCount             int
	MoveStartPositionInView Point
	ScaleInitDistance       float64
	// LastFingerPosition and LastFingerTime are the velocity sample
	// taken when the sequence started.
	LastFingerPosition Point
	LastFingerTime     time.Duration
	ViewActivateType   ActivateType
	FirstDirection     Direction

	touchID    pointer.ID
	startTouch Point
	lastTouch  Point
	moved      bool
}

// View is the content widget translated and scaled inside its Area.
type View struct {
	id       string
	surface  *Surface
	area     *Area
	measurer Measurer
	opts     Options
	handlers Handlers
	caps     lifecycle

	state        ViewState
	box, areaBox Box
	diffX, diffY float64
	cacheScale   float64

	session            *GestureSession
	touches            int
	lastWasDoubleScale bool

	reset     Timer
	animating bool
	off       func()
}

// NewView creates a View, attaches it to area and subscribes it to the scale
// messages relayed by the area. The options are normalized first.
func (s *Surface) NewView(id string, area *Area, m Measurer, opts Options, h Handlers) (*View, error) {
	if area == nil {
		return nil, ErrNoArea
	}
	if id == "" {
		id = s.Registry.NewID("view")
	}
	opts.Normalize()

	v := &View{
		id:       id,
		surface:  s,
		area:     area,
		measurer: m,
		opts:     opts,
		handlers: h,
		state: ViewState{
			X:          opts.X,
			Y:          opts.Y,
			ScaleValue: opts.ScaleValue,
			Direction:  opts.Direction,
		},
		cacheScale: opts.ScaleValue,
	}
	v.caps = lifecycle{
		funcCapability{
			name: "measure",
			attach: func() error {
				v.measure()
				v.state.X, v.state.Y = v.clampHard(v.state.X, v.state.Y)
				return nil
			},
		},
		funcCapability{
			name: "area-channel",
			attach: func() error {
				v.off = s.Bus.On(ScaleTopic(v.id), v.onScaleMessage)
				return nil
			},
			detach: func() {
				if v.off != nil {
					v.off()
					v.off = nil
				}
			},
		},
		funcCapability{
			name:   "transition",
			detach: v.stopTimer,
		},
	}

	if err := s.Registry.Register(v); err != nil {
		return nil, err
	}
	if err := area.attachChild(v); err != nil {
		s.Registry.Unregister(id)
		return nil, err
	}
	if err := v.caps.attach(); err != nil {
		area.detachChild(v)
		s.Registry.Unregister(id)
		return nil, fmt.Errorf("view %q: %w", id, err)
	}
	v.render()

	return v, nil
}

// ID returns the view id.
func (v *View) ID() string { return v.id }

// Area returns the container of the view.
func (v *View) Area() *Area { return v.area }

// State returns the current state record.
func (v *View) State() ViewState { return v.state }

// Options returns the normalized options.
func (v *View) Options() Options { return v.opts }

// Diff returns the offset of the scaled content's origin from its unscaled top-left corner.
func (v *View) Diff() (float64, float64) { return v.diffX, v.diffY }

// Gesture returns a copy of the active gesture session.
func (v *View) Gesture() (GestureSession, bool) {
	if v.session == nil {
		return GestureSession{}, false
	}
	return *v.session, true
}

// Capabilities returns the names of the attached capabilities in attach order.
func (v *View) Capabilities() []string { return v.caps.names() }

// HandleTouch feeds a touch event to the gesture classifier.
func (v *View) HandleTouch(ev TouchEvent) {
	if v.opts.Disabled {
		return
	}
	switch ev.Type {
	case TouchStart:
		v.touchStart(ev)
	case TouchMove:
		v.touchMove(ev)
	case TouchEnd:
		v.touchEnd(ev, false)
	case TouchCancel:
		v.touchEnd(ev, true)
	}
}

func (v *View) touchStart(ev TouchEvent) {
	v.touches = len(ev.Touches)
	if v.session != nil {
		v.session.FingerCount = v.touches
		return
	}
	if v.touches == 0 || v.touches > 2 {
		return
	}
	v.cancelTransition()
	v.measure()

	s := &GestureSession{FingerCount: v.touches}
	switch v.touches {
	case 1:
		t := ev.Touches[0]
		s.ViewActivateType = ActivateTranslate
		s.touchID = t.ID
		s.startTouch = Point{t.PageX, t.PageY}
		s.lastTouch = s.startTouch
		s.LastFingerPosition = s.startTouch
		s.LastFingerTime = ev.Time
		s.MoveStartPositionInView = Point{t.PageX - v.state.X, t.PageY - v.state.Y}
	case 2:
		t0, t1 := ev.Touches[0], ev.Touches[1]
		s.ViewActivateType = ActivateScale
		s.ScaleInitDistance = geom.Distance(t0.PageX, t0.PageY, t1.PageX, t1.PageY)
		v.cacheScale = v.state.ScaleValue
	}
	v.session = s
	v.setDuration(0)
}

func (v *View) touchMove(ev TouchEvent) {
	s := v.session
	if s == nil {
		return
	}
	v.touches = len(ev.Touches)

	switch s.ViewActivateType {
	case ActivateTranslate:
		if !v.lastWasDoubleScale {
			v.translate(s, ev)
		}
	case ActivateScale:
		if v.lastWasDoubleScale || len(ev.Touches) < 2 {
			return
		}
		t0, t1 := ev.Touches[0], ev.Touches[1]
		d := geom.Distance(t0.PageX, t0.PageY, t1.PageX, t1.PageY)
		v.applyScale(PinchRatio(d, s.ScaleInitDistance), SourceTouch)
	}
}

func (v *View) translate(s *GestureSession, ev TouchEvent) {
	t, ok := findTouch(ev.Touches, s.touchID)
	if !ok {
		return
	}
	s.lastTouch = Point{t.PageX, t.PageY}
	if v.opts.Direction == DirectionNone {
		return
	}

	dx, dy := t.PageX-s.startTouch.X, t.PageY-s.startTouch.Y
	if !s.moved {
		if utils.Abs(dx) < moveThreshold && utils.Abs(dy) < moveThreshold {
			return
		}
		s.moved = true
		if utils.Abs(dx) > utils.Abs(dy) {
			s.FirstDirection = DirectionHorizontal
		} else {
			s.FirstDirection = DirectionVertical
		}
	}
	v.handlers.passthrough(s.FirstDirection, ev)

	x, y := v.state.X, v.state.Y
	if v.opts.Direction.horizontal() {
		x = t.PageX - s.MoveStartPositionInView.X
	}
	if v.opts.Direction.vertical() {
		y = t.PageY - s.MoveStartPositionInView.Y
	}
	x, y = Clamp(x, y, v.state.ScaleValue, v.areaBox, v.box, v.opts.OutOfBounds, true)
	v.moveTo(x, y, SourceTouch)
}

func (v *View) touchEnd(ev TouchEvent, cancel bool) {
	v.touches = len(ev.Touches)
	s := v.session
	if s == nil {
		if v.touches == 0 || cancel {
			v.lastWasDoubleScale = false
		}
		return
	}
	s.FingerCount = v.touches

	switch {
	case cancel:
		v.lastWasDoubleScale = false
	case s.ViewActivateType == ActivateScale && v.touches == 1:
		v.lastWasDoubleScale = true
	}
	if v.touches > 0 && !cancel {
		return
	}

	v.session = nil
	v.lastWasDoubleScale = false
	if s.ViewActivateType == ActivateTranslate && s.moved {
		v.release(s, ev)
	}
}

// release runs the inertia projector for a finished drag.
func (v *View) release(s *GestureSession, ev TouchEvent) {
	end := s.lastTouch
	if t, ok := findTouch(ev.Changed, s.touchID); ok {
		end = Point{t.PageX, t.PageY}
	}
	dt := ev.Time - s.LastFingerTime

	var vx, vy float64
	if v.opts.Direction.horizontal() {
		vx = Velocity(s.LastFingerPosition.X, end.X, dt)
	}
	if v.opts.Direction.vertical() {
		vy = Velocity(s.LastFingerPosition.Y, end.Y, dt)
	}

	r := Project(v.state.X, v.state.Y, vx, vy, v.state.ScaleValue, v.areaBox, v.box, v.opts)
	v.surface.logf("view %q released with velocity (%v, %v): %s to (%v, %v) in %vs",
		v.id, vx, vy, r.Kind, r.X, r.Y, r.Duration)
	v.animateTo(r.X, r.Y, r.Duration, SourceFriction)
}

func (v *View) onScaleMessage(m Message) {
	sm, ok := m.Data.(ScaleMessage)
	if !ok || sm.TargetViewID != v.id || v.opts.Disabled {
		return
	}
	switch sm.Status {
	case ScaleBegin:
		v.cancelTransition()
		v.measure()
		v.cacheScale = v.state.ScaleValue
		v.setDuration(0)
	case ScaleApply:
		v.applyScale(RelayedRatio(sm.Scale), SourceTouch)
	}
}

// applyScale multiplies the cached scale by ratio, then re-centers the content
// by checking each of its four edges against the bounds at the new scale.
func (v *View) applyScale(ratio float64, src ChangeSource) {
	scale, ok := ResolveScale(ratio, v.cacheScale, v.opts.ScaleMin, v.opts.ScaleMax, v.box, v.areaBox, v.opts.Scale)
	if !ok || scale == v.state.ScaleValue {
		return
	}
	v.state.ScaleValue = scale
	v.updateDiff()

	x, y := v.fitEdges(v.state.X, v.state.Y)
	moved := x != v.state.X || y != v.state.Y
	v.state.X, v.state.Y = x, y

	v.handlers.scale(ScaleEvent{X: x, Y: y, Scale: scale})
	if moved {
		v.state.ChangeStatus = src
		v.handlers.change(ChangeEvent{X: x, Y: y, Source: src})
	}
	v.render()
}

func (v *View) fitEdges(x, y float64) (float64, float64) {
	if v.areaBox.Empty() {
		return x, y
	}
	b := ComputeBounds(v.state.ScaleValue, v.areaBox, v.box)
	if x < b.MinX {
		x = b.MinX
	}
	if x > b.MaxX {
		x = b.MaxX
	}
	if y < b.MinY {
		y = b.MinY
	}
	if y > b.MaxY {
		y = b.MaxY
	}
	return x, y
}

func (v *View) clampHard(x, y float64) (float64, float64) {
	if v.areaBox.Empty() {
		return x, y
	}
	return Clamp(x, y, v.state.ScaleValue, v.areaBox, v.box, false, false)
}

// moveTo moves the view immediately and fires the change event.
func (v *View) moveTo(x, y float64, src ChangeSource) bool {
	if x == v.state.X && y == v.state.Y {
		return false
	}
	v.state.X, v.state.Y = x, y
	v.state.ChangeStatus = src
	v.handlers.change(ChangeEvent{X: x, Y: y, Source: src})
	v.render()
	return true
}

// animateTo declares the final position and the transition duration (in seconds)
// to the renderer and schedules the duration reset.
func (v *View) animateTo(x, y, duration float64, src ChangeSource) {
	v.stopTimer()
	v.state.TransitionDuration = duration

	changed := x != v.state.X || y != v.state.Y
	if changed {
		v.state.X, v.state.Y = x, y
		v.state.ChangeStatus = src
		v.handlers.change(ChangeEvent{X: x, Y: y, Source: src})
	}
	v.render()

	if duration > 0 {
		v.animating = changed
		v.reset = v.surface.Loop.AfterFunc(seconds(duration), v.transitionEnd)
	}
}

func (v *View) transitionEnd() {
	v.reset = nil
	v.animating = false
	v.state.TransitionDuration = 0

	// An elastic coast may have ended past the hard bounds.
	if x, y := v.clampHard(v.state.X, v.state.Y); x != v.state.X || y != v.state.Y {
		v.animateTo(x, y, ReboundDuration(v.opts.Damping), SourceFriction)
		return
	}
	v.render()
}

func (v *View) stopTimer() {
	if v.reset != nil {
		v.reset.Stop()
		v.reset = nil
	}
}

// cancelTransition interrupts a pending transition. The content stops where it
// is currently painted, which is read back from its live transform.
func (v *View) cancelTransition() {
	v.stopTimer()
	if !v.animating {
		return
	}
	v.animating = false

	transform := v.measurer.Transform(v.id)
	if transform == "" {
		return
	}
	x, y, ok := geom.ParseTranslate(transform)
	if !ok {
		v.surface.logf("view %q: ignoring unreadable transform %q", v.id, transform)
		return
	}
	v.state.X, v.state.Y = x, y
}

func (v *View) setDuration(d float64) {
	if v.state.TransitionDuration == d {
		return
	}
	v.state.TransitionDuration = d
	v.render()
}

func (v *View) measure() {
	v.area.measure()
	v.areaBox = v.area.Box()
	v.box = v.measurer.Box(v.id)
	v.updateDiff()
}

func (v *View) updateDiff() {
	v.diffX, v.diffY = Diff(v.box, v.state.ScaleValue)
}

func (v *View) render() {
	v.handlers.render(v.state)
}

// Remeasure refreshes the cached boxes, for instance once the layout is
// ready, and pulls the content back inside the bounds.
func (v *View) Remeasure() {
	v.measure()
	x, y := v.clampHard(v.state.X, v.state.Y)
	v.moveTo(x, y, SourceAPI)
}

// SetX moves the view horizontally. A NaN value is ignored.
func (v *View) SetX(x float64) {
	v.SetPosition(x, math.NaN())
}

// SetY moves the view vertically. A NaN value is ignored.
func (v *View) SetY(y float64) {
	v.SetPosition(math.NaN(), y)
}

// SetPosition moves the view to the clamped (x, y). A NaN coordinate keeps the
// current value of its axis. Outside of a gesture the move is animated
// with the rebound duration.
func (v *View) SetPosition(x, y float64) {
	if math.IsNaN(x) {
		x = v.state.X
	}
	if math.IsNaN(y) {
		y = v.state.Y
	}
	x, y = v.clampHard(x, y)
	if x == v.state.X && y == v.state.Y {
		return
	}
	if v.session != nil {
		v.moveTo(x, y, SourceAPI)
		return
	}
	v.animateTo(x, y, ReboundDuration(v.opts.Damping), SourceAPI)
}

// SetScaleValue changes the scale. The value is clamped to the scale bounds
// and a NaN value is ignored.
func (v *View) SetScaleValue(scale float64) {
	if math.IsNaN(scale) {
		v.surface.logf("view %q: ignoring NaN scale value", v.id)
		return
	}
	scale = utils.Clamp(scale, v.opts.ScaleMin, v.opts.ScaleMax)
	if scale == v.state.ScaleValue {
		return
	}
	v.state.ScaleValue = scale
	v.cacheScale = scale
	v.updateDiff()

	x, y := v.fitEdges(v.state.X, v.state.Y)
	moved := x != v.state.X || y != v.state.Y
	v.state.X, v.state.Y = x, y

	v.handlers.scale(ScaleEvent{X: x, Y: y, Scale: scale})
	if moved {
		v.state.ChangeStatus = SourceAPI
		v.handlers.change(ChangeEvent{X: x, Y: y, Source: SourceAPI})
	}
	v.render()
}

// SetOptions replaces the options. The initial position and scale fields are
// ignored; use SetPosition and SetScaleValue instead.
func (v *View) SetOptions(opts Options) {
	opts.Normalize()
	opts.X, opts.Y, opts.ScaleValue = v.opts.X, v.opts.Y, v.opts.ScaleValue
	v.opts = opts
	v.state.Direction = opts.Direction

	if opts.Disabled {
		v.session = nil
		v.lastWasDoubleScale = false
	}
	if s := utils.Clamp(v.state.ScaleValue, opts.ScaleMin, opts.ScaleMax); s != v.state.ScaleValue {
		v.SetScaleValue(s)
		return
	}
	v.render()
}

// Destroy detaches the view from its area and the surface. The state is discarded.
func (v *View) Destroy() {
	v.caps.detach()
	v.area.detachChild(v)
	v.surface.Registry.Unregister(v.id)
	v.session = nil
	v.state = ViewState{}
}

func seconds(d float64) time.Duration {
	return time.Duration(d * float64(time.Second))
}
