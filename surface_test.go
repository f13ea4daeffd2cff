package movable

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_Delivery(t *testing.T) {
	assert := assert.New(t)
	b := NewBus()

	var got []string
	offA := b.On("topic", func(m Message) { got = append(got, "a:"+m.Data.(string)) })
	b.On("topic", func(m Message) { got = append(got, "b:"+m.Data.(string)) })
	b.On("other", func(m Message) { got = append(got, "other") })

	assert.Equal(2, b.Fire(Message{Type: "topic", Data: "1"}))
	assert.Equal([]string{"a:1", "b:1"}, got)

	offA()
	offA()
	assert.Equal(1, b.Fire(Message{Type: "topic", Data: "2"}))
	assert.Equal(1, b.Subscribers("topic"))
	assert.Zero(b.Fire(Message{Type: "missing"}))
}

func TestBus_UnsubscribeWhileFiring(t *testing.T) {
	b := NewBus()

	var calls int
	var off func()
	off = b.On("topic", func(Message) {
		calls++
		off()
	})
	b.On("topic", func(Message) { calls++ })

	assert.Equal(t, 2, b.Fire(Message{Type: "topic"}))
	assert.Equal(t, 1, b.Fire(Message{Type: "topic"}))
	assert.Equal(t, 3, calls)
}

type widget string

func (w widget) ID() string { return string(w) }

func TestRegistry(t *testing.T) {
	assert := assert.New(t)
	r := NewRegistry()

	require.NoError(t, r.Register(widget("a")))
	err := r.Register(widget("a"))
	assert.True(errors.Is(err, ErrDuplicateID))

	w, ok := r.Lookup("a")
	assert.True(ok)
	assert.Equal(widget("a"), w)

	id := r.NewID("view")
	assert.True(strings.HasPrefix(id, "view-"))
	assert.Len(id, len("view-")+8)
	assert.NotEqual(id, r.NewID("view"))

	r.Unregister("a")
	assert.Zero(r.Len())
}

func TestCapability_Lifecycle(t *testing.T) {
	assert := assert.New(t)

	var trace []string
	capability := func(name string, fail bool) Capability {
		return funcCapability{
			name: name,
			attach: func() error {
				trace = append(trace, "attach "+name)
				if fail {
					return errors.New("boom")
				}
				return nil
			},
			detach: func() { trace = append(trace, "detach "+name) },
		}
	}

	l := lifecycle{capability("a", false), capability("b", false)}
	require.NoError(t, l.attach())
	l.detach()
	assert.Equal([]string{"attach a", "attach b", "detach b", "detach a"}, trace)

	trace = nil
	l = lifecycle{capability("a", false), capability("b", false), capability("c", true)}
	err := l.attach()
	assert.EqualError(err, "attach c: boom")
	assert.Equal([]string{"attach a", "attach b", "attach c", "detach b", "detach a"}, trace)
}

func TestSurface_Logger(t *testing.T) {
	var buf bytes.Buffer
	s := NewSurface()
	s.Logger = log.New(&buf, "", 0)

	m := NewStaticMeasurer()
	_, err := s.NewArea("empty", m)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `area "empty" measured as empty box`)
}
