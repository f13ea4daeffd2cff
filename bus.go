package movable

// Message is a notification exchanged between widgets of the same surface.
type Message struct {
	Type string
	Data any
}

// MessageHandler processes a Message.
type MessageHandler func(Message)

type subscription struct {
	id uint32
	fn MessageHandler
}

// Bus is a synchronous publish/subscribe channel scoped to a rendering surface.
// Handlers run inside Fire, in subscription order, so the causal order
// relative to the event which produced a message is preserved.
type Bus struct {
	subs   map[string][]subscription
	nextID uint32
}

// NewBus creates an empty message bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]subscription)}
}

// On registers fn for the messages of type typ.
// The returned function removes the subscription.
func (b *Bus) On(typ string, fn MessageHandler) (off func()) {
	b.nextID++
	id := b.nextID
	b.subs[typ] = append(b.subs[typ], subscription{id: id, fn: fn})

	return func() {
		subs := b.subs[typ]
		for i, s := range subs {
			if s.id == id {
				b.subs[typ] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
		if len(b.subs[typ]) == 0 {
			delete(b.subs, typ)
		}
	}
}

// Fire delivers m to every handler subscribed to its type and returns
// the number of handlers invoked.
func (b *Bus) Fire(m Message) int {
	subs := b.subs[m.Type]
	if len(subs) == 0 {
		return 0
	}
	// Handlers are allowed to unsubscribe while the message is dispatched.
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		s.fn(m)
	}
	return len(snapshot)
}

// Subscribers returns the number of handlers registered for typ.
func (b *Bus) Subscribers(typ string) int {
	return len(b.subs[typ])
}
