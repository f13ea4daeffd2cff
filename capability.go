package movable

import "fmt"

// Capability is an optional behaviour plugged into a widget.
// A widget attaches its capabilities in their declared order and
// detaches them in the reverse order.
type Capability interface {
	Name() string
	Attach() error
	Detach()
}

type lifecycle []Capability

func (l lifecycle) attach() error {
	for i, c := range l {
		if err := c.Attach(); err != nil {
			for j := i - 1; j >= 0; j-- {
				l[j].Detach()
			}
			return fmt.Errorf("attach %s: %w", c.Name(), err)
		}
	}
	return nil
}

func (l lifecycle) detach() {
	for i := len(l) - 1; i >= 0; i-- {
		l[i].Detach()
	}
}

func (l lifecycle) names() []string {
	names := make([]string, len(l))
	for i, c := range l {
		names[i] = c.Name()
	}
	return names
}

// funcCapability adapts a pair of functions to the Capability interface.
type funcCapability struct {
	name   string
	attach func() error
	detach func()
}

func (c funcCapability) Name() string { return c.name }

func (c funcCapability) Attach() error {
	if c.attach == nil {
		return nil
	}
	return c.attach()
}

func (c funcCapability) Detach() {
	if c.detach != nil {
		c.detach()
	}
}
