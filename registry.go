package movable

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateID is returned when a widget id is already taken on a surface.
	ErrDuplicateID = errors.New("widget id already registered")
	// ErrNoArea is returned when a View is created without its Area.
	ErrNoArea = errors.New("view requires an area")
	// ErrAlreadyAttached is returned when an Area already holds a View.
	ErrAlreadyAttached = errors.New("area already holds a view")
)

// Widget is implemented by every widget tracked by a Registry.
type Widget interface {
	ID() string
}

// Registry keeps track of the widgets living on a surface. It is handed
// explicitly to every widget at construction time.
type Registry struct {
	widgets map[string]Widget
}

// NewRegistry creates an empty widget registry.
func NewRegistry() *Registry {
	return &Registry{widgets: make(map[string]Widget)}
}

// NewID generates a surface unique id with the given prefix.
func (r *Registry) NewID(prefix string) string {
	for {
		id := prefix + "-" + uuid.New().String()[:8]
		if _, ok := r.widgets[id]; !ok {
			return id
		}
	}
}

// Register adds w to the registry.
func (r *Registry) Register(w Widget) error {
	if _, ok := r.widgets[w.ID()]; ok {
		return fmt.Errorf("register %q: %w", w.ID(), ErrDuplicateID)
	}
	r.widgets[w.ID()] = w
	return nil
}

// Unregister removes the widget with the given id.
func (r *Registry) Unregister(id string) {
	delete(r.widgets, id)
}

// Lookup returns the widget registered under id.
func (r *Registry) Lookup(id string) (Widget, bool) {
	w, ok := r.widgets[id]
	return w, ok
}

// Len returns the number of registered widgets.
func (r *Registry) Len() int {
	return len(r.widgets)
}
