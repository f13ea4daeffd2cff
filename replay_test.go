package movable

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inertiaScenario = `
area: {width: 200, height: 200}
view: {width: 100, height: 100}
options:
  direction: all
  inertia: true
steps:
  - {type: start, at: 0, touches: [{id: 1, x: 0, y: 0}]}
  - {type: move, at: 10, touches: [{id: 1, x: 10, y: 0}]}
  - {type: end, at: 10, changed: [{id: 1, x: 10, y: 0}]}
`

func TestReplay_Inertia(t *testing.T) {
	assert := assert.New(t)

	sc, err := DecodeScenario(strings.NewReader(inertiaScenario), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(DirectionAll, sc.Options.Direction)
	assert.Equal(2.0, sc.Options.Friction)
	assert.Len(sc.Steps, 3)

	res, err := Replay(sc, nil)
	require.NoError(t, err)

	assert.InDelta(10+100/math.Sqrt2, res.State.X, 1e-9)
	assert.Equal(0.0, res.State.TransitionDuration)
	assert.Equal(310*time.Millisecond, res.Elapsed)

	require.Len(t, res.Records, 3)
	assert.Equal("htouchmove", res.Records[0].Kind)
	assert.Equal(Record{At: 10 * time.Millisecond, Kind: "change", X: 10, Source: SourceTouch}, res.Records[1])
	assert.Equal(SourceFriction, res.Records[2].Source)
	assert.Equal("  10ms change     x=80.71 y=0 source=friction", res.Records[2].String())
}

func TestReplay_AreaPinchAndAttributes(t *testing.T) {
	assert := assert.New(t)

	scenario := `
area: {width: 200, height: 200}
view: {width: 100, height: 100}
options: {scale: true, x: 50, y: 50}
steps:
  - {type: start, at: 0, target: area, touches: [{id: 1, x: 0, y: 0}, {id: 2, x: 10, y: 0}]}
  - {type: move, at: 16, target: area, touches: [{id: 1, x: 0, y: 0}, {id: 2, x: 40, y: 0}]}
  - {type: end, at: 32, target: area}
  - {type: attrs, at: 40, attrs: '{"scaleMax": 1.5}'}
`
	sc, err := DecodeScenario(strings.NewReader(scenario), DefaultOptions())
	require.NoError(t, err)

	res, err := Replay(sc, nil)
	require.NoError(t, err)
	assert.Equal(1.5, res.State.ScaleValue)

	var scales []float64
	for _, r := range res.Records {
		if r.Kind == "scale" {
			scales = append(scales, r.Scale)
		}
	}
	assert.Equal([]float64{2, 1.5}, scales)
}

func TestReplay_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown step":    "steps: [{type: jump}]",
		"unknown target":  "steps: [{type: start, target: window}]",
		"time goes back":  "steps: [{type: wait, at: 20}, {type: wait, at: 10}]",
		"invalid payload": "steps: [{type: attrs, attrs: '{'}]",
	}
	for name, scenario := range tests {
		t.Run(name, func(t *testing.T) {
			sc, err := DecodeScenario(strings.NewReader(scenario), DefaultOptions())
			require.NoError(t, err)
			_, err = Replay(sc, nil)
			assert.Error(t, err)
		})
	}

	_, err := DecodeScenario(strings.NewReader(""), DefaultOptions())
	assert.EqualError(t, err, "empty scenario")

	_, err = DecodeScenario(strings.NewReader("steps: {"), DefaultOptions())
	assert.ErrorContains(t, err, "failed to decode scenario")
}
