package movable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTween_Transition(t *testing.T) {
	assert := assert.New(t)
	var tw Tween

	tw.Update(0, ViewState{X: 0, Y: 0, ScaleValue: 1})
	assert.False(tw.Active(0))
	assert.Equal(Frame{X: 0, Y: 0, Scale: 1}, tw.At(0))

	tw.Update(0, ViewState{X: 100, Y: 0, ScaleValue: 1, TransitionDuration: 0.5})
	assert.True(tw.Active(100 * time.Millisecond))

	mid := tw.At(250 * time.Millisecond)
	assert.InDelta(87.5, mid.X, 1e-9)
	assert.Equal(Frame{X: 100, Y: 0, Scale: 1}, tw.At(time.Second))

	// Redeclaring the running transition does not restart it.
	tw.Update(250*time.Millisecond, ViewState{X: 100, Y: 0, ScaleValue: 1, TransitionDuration: 0.5})
	assert.InDelta(87.5, tw.At(250*time.Millisecond).X, 1e-9)

	// A zero duration jumps.
	tw.Update(300*time.Millisecond, ViewState{X: 10, Y: 0, ScaleValue: 1})
	assert.Equal(Frame{X: 10, Y: 0, Scale: 1}, tw.At(300*time.Millisecond))
}

func TestTween_Measurer(t *testing.T) {
	assert := assert.New(t)

	var now time.Duration
	m := NewTweenMeasurer(func() time.Duration { return now })
	m.SetTransform("static", "none")
	assert.Equal("none", m.Transform("static"))

	render := m.Render("view")
	render(ViewState{X: 0, ScaleValue: 1})
	render(ViewState{X: 100, Y: 20, ScaleValue: 2, TransitionDuration: 1})
	assert.Equal("matrix(1, 0, 0, 1, 0, 0)", m.Transform("view"))

	now = 2 * time.Second
	assert.Equal("matrix(2, 0, 0, 2, 100, 20)", m.Transform("view"))
}

func TestTween_RecoversPaintedPosition(t *testing.T) {
	assert := assert.New(t)

	s := NewSurface()
	m := NewTweenMeasurer(s.Loop.Now)
	m.SetBox(areaID, square(200))
	m.SetBox(viewID, square(100))

	area, err := s.NewArea(areaID, m)
	assert.NoError(err)
	view, err := s.NewView(viewID, area, m, DefaultOptions(), Handlers{Render: m.Render(viewID)})
	assert.NoError(err)

	view.SetX(100)
	assert.Equal(0.6, view.State().TransitionDuration)

	s.Loop.Advance(300 * time.Millisecond)
	view.HandleTouch(TouchEvent{Type: TouchStart, Target: viewID, Touches: []Touch{pt(1, 50, 50)}, Time: 300 * time.Millisecond})

	x := view.State().X
	assert.InDelta(87.5, x, 1e-4)
	assert.Equal(0.0, view.State().TransitionDuration)
	assert.Zero(s.Loop.Pending())
}
