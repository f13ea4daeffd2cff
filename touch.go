package movable

import (
	"time"

	"gioui.org/io/pointer"
)

// TouchType is the phase of a touch sequence.
type TouchType uint8

const (
	TouchStart TouchType = iota
	TouchMove
	TouchEnd
	TouchCancel
)

func (t TouchType) String() string {
	switch t {
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	case TouchCancel:
		return "touchcancel"
	}
	return "unknown"
}

// Touch is a single contact point, in page coordinates.
type Touch struct {
	ID    pointer.ID
	PageX float64
	PageY float64
}

// TouchEvent is an already classified touch input event.
type TouchEvent struct {
	Type TouchType
	// Touches lists the contacts still active once the event is applied.
	Touches []Touch
	// Changed lists the contacts which triggered the event.
	Changed []Touch
	// Target is the id of the element the sequence started on.
	Target     string
	Time       time.Duration
	Cancelable bool
}

func findTouch(touches []Touch, id pointer.ID) (Touch, bool) {
	for _, t := range touches {
		if t.ID == id {
			return t, true
		}
	}
	return Touch{}, false
}

// Tracker turns a stream of gio pointer events into TouchEvents.
// gio reports one event per pointer. Presses and drags sharing the same
// timestamp are coalesced, so two fingers landing together produce a single
// touchstart holding both contacts.
type Tracker struct {
	// Target is stamped on the produced events.
	Target string
	active []Touch
}

// Active returns the number of contacts currently down.
func (t *Tracker) Active() int {
	return len(t.active)
}

// Collect converts the pointer events into touch events.
// Events of other kinds (hover moves, scrolls, enter/leave) are dropped.
func (t *Tracker) Collect(events []pointer.Event) []TouchEvent {
	var out []TouchEvent
	for _, e := range events {
		touch := Touch{
			ID:    e.PointerID,
			PageX: float64(e.Position.X),
			PageY: float64(e.Position.Y),
		}

		var (
			typ     TouchType
			changed = []Touch{touch}
		)
		switch e.Type {
		case pointer.Press:
			typ = TouchStart
			t.upsert(touch)
		case pointer.Drag:
			if !t.update(touch) {
				continue
			}
			typ = TouchMove
		case pointer.Release:
			if !t.remove(touch.ID) {
				continue
			}
			typ = TouchEnd
		case pointer.Cancel:
			if len(t.active) == 0 {
				continue
			}
			typ = TouchCancel
			changed = t.snapshot()
			t.active = t.active[:0]
		default:
			continue
		}

		if n := len(out); n > 0 && (typ == TouchStart || typ == TouchMove) &&
			out[n-1].Type == typ && out[n-1].Time == e.Time {
			out[n-1].Changed = append(out[n-1].Changed, touch)
			out[n-1].Touches = t.snapshot()
			continue
		}
		out = append(out, TouchEvent{
			Type:       typ,
			Touches:    t.snapshot(),
			Changed:    changed,
			Target:     t.Target,
			Time:       e.Time,
			Cancelable: typ != TouchCancel,
		})
	}
	return out
}

func (t *Tracker) upsert(touch Touch) {
	if !t.update(touch) {
		t.active = append(t.active, touch)
	}
}

func (t *Tracker) update(touch Touch) bool {
	for i := range t.active {
		if t.active[i].ID == touch.ID {
			t.active[i] = touch
			return true
		}
	}
	return false
}

func (t *Tracker) remove(id pointer.ID) bool {
	for i := range t.active {
		if t.active[i].ID == id {
			t.active = append(t.active[:i], t.active[i+1:]...)
			return true
		}
	}
	return false
}

func (t *Tracker) snapshot() []Touch {
	s := make([]Touch, len(t.active))
	copy(s, t.active)
	return s
}
