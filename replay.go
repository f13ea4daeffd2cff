package movable

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"gioui.org/io/pointer"
	"github.com/esimov/movable/utils"
	"gopkg.in/yaml.v3"
)

// Element ids used by the replayed surface.
const (
	ReplayAreaID = "area"
	ReplayViewID = "view"
)

// maxSettleRounds bounds the transitions drained after the last step.
const maxSettleRounds = 16

// TouchPoint is a contact point of a scenario step.
type TouchPoint struct {
	ID int     `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// Step is a single scenario instruction.
type Step struct {
	// Type is one of start, move, end, cancel, wait or attrs.
	Type string `yaml:"type"`
	// At is the step time in milliseconds from the scenario start.
	At int64 `yaml:"at"`
	// Target is the element the touch sequence started on: view (default) or area.
	Target  string       `yaml:"target"`
	Touches []TouchPoint `yaml:"touches"`
	Changed []TouchPoint `yaml:"changed"`
	// Attrs is the JSON payload of an attrs step.
	Attrs string `yaml:"attrs"`
}

// Scenario is a scripted gesture session.
type Scenario struct {
	Area    Box     `yaml:"area"`
	View    Box     `yaml:"view"`
	Options Options `yaml:"options"`
	Steps   []Step  `yaml:"steps"`
}

// DecodeScenario reads a YAML scenario. The options missing from the
// scenario keep the values of base.
func DecodeScenario(r io.Reader, base Options) (*Scenario, error) {
	sc := &Scenario{Options: base}
	if err := yaml.NewDecoder(r).Decode(sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scenario")
		}
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	return sc, nil
}

// Record is an event emitted by the view during a replay.
type Record struct {
	At     time.Duration
	Kind   string
	X, Y   float64
	Scale  float64
	Source ChangeSource
}

func (r Record) String() string {
	line := fmt.Sprintf("%6s %-10s x=%s y=%s", utils.FormatDuration(r.At), r.Kind,
		utils.FormatFloat(r.X), utils.FormatFloat(r.Y))
	switch r.Kind {
	case "change":
		line += " source=" + string(r.Source)
	case "scale":
		line += " scale=" + utils.FormatFloat(r.Scale)
	}
	return line
}

// ReplayResult holds the outcome of a replayed scenario.
type ReplayResult struct {
	Records []Record
	State   ViewState
	// Elapsed is the loop clock once every transition settled.
	Elapsed time.Duration
	Area    Box
	View    Box
}

// Replay runs the scenario steps through a fresh surface. Pending transitions
// are settled after the last step. A nil logger discards the debug traces.
func Replay(sc *Scenario, logger *log.Logger) (*ReplayResult, error) {
	s := NewSurface()
	if logger != nil {
		s.Logger = logger
	}
	m := NewTweenMeasurer(s.Loop.Now)
	m.SetBox(ReplayAreaID, sc.Area)
	m.SetBox(ReplayViewID, sc.View)

	res := &ReplayResult{Area: sc.Area, View: sc.View}
	record := func(kind string, x, y, scale float64, src ChangeSource) {
		res.Records = append(res.Records, Record{
			At: s.Loop.Now(), Kind: kind, X: x, Y: y, Scale: scale, Source: src,
		})
	}
	touchRecord := func(kind string) func(TouchEvent) {
		return func(e TouchEvent) {
			if len(e.Touches) > 0 {
				record(kind, e.Touches[0].PageX, e.Touches[0].PageY, 0, SourceTouch)
			}
		}
	}

	area, err := s.NewArea(ReplayAreaID, m)
	if err != nil {
		return nil, err
	}
	view, err := s.NewView(ReplayViewID, area, m, sc.Options, Handlers{
		Change: func(e ChangeEvent) { record("change", e.X, e.Y, 0, e.Source) },
		Scale:  func(e ScaleEvent) { record("scale", e.X, e.Y, e.Scale, SourceNone) },

		HTouchMove: touchRecord("htouchmove"),
		VTouchMove: touchRecord("vtouchmove"),
		Render:     m.Render(ReplayViewID),
	})
	if err != nil {
		return nil, err
	}

	for i, st := range sc.Steps {
		at := time.Duration(st.At) * time.Millisecond
		if at < s.Loop.Now() {
			return nil, fmt.Errorf("step %d: time %v is before %v", i, at, s.Loop.Now())
		}
		s.Loop.Advance(at)

		switch st.Type {
		case "wait":
		case "attrs":
			if err := view.SetAttributes(st.Attrs); err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
		default:
			typ, ok := parseTouchType(st.Type)
			if !ok {
				return nil, fmt.Errorf("step %d: unknown step type %q", i, st.Type)
			}
			target, err := stepTarget(st.Target)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			ev := TouchEvent{
				Type:       typ,
				Touches:    touchesOf(st.Touches),
				Changed:    touchesOf(st.Changed),
				Target:     target,
				Time:       at,
				Cancelable: typ != TouchCancel,
			}
			// The event bubbles from the view up to its area.
			if target == ReplayViewID {
				view.HandleTouch(ev)
			}
			area.HandleTouch(ev)
		}
	}

	for i := 0; i < maxSettleRounds; i++ {
		next, ok := s.Loop.Next()
		if !ok {
			break
		}
		s.Loop.Advance(next)
	}

	res.State = view.State()
	res.Elapsed = s.Loop.Now()
	return res, nil
}

func parseTouchType(s string) (TouchType, bool) {
	switch strings.ToLower(s) {
	case "start", "touchstart":
		return TouchStart, true
	case "move", "touchmove":
		return TouchMove, true
	case "end", "touchend":
		return TouchEnd, true
	case "cancel", "touchcancel":
		return TouchCancel, true
	}
	return 0, false
}

func stepTarget(target string) (string, error) {
	switch target {
	case "", ReplayViewID:
		return ReplayViewID, nil
	case ReplayAreaID:
		return ReplayAreaID, nil
	}
	return "", fmt.Errorf("unknown target %q", target)
}

func touchesOf(points []TouchPoint) []Touch {
	if len(points) == 0 {
		return nil
	}
	touches := make([]Touch, len(points))
	for i, p := range points {
		touches[i] = Touch{ID: pointer.ID(p.ID), PageX: p.X, PageY: p.Y}
	}
	return touches
}
