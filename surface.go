package movable

import (
	"io"
	"log"
)

// Surface groups the collaborators shared by the widgets of one rendering surface.
type Surface struct {
	Bus      *Bus
	Registry *Registry
	Loop     *Loop
	// Logger receives the debug traces of the silent corrections.
	Logger *log.Logger
}

// NewSurface creates a surface with a fresh bus, registry and task loop.
// Logging is discarded until Logger is replaced.
func NewSurface() *Surface {
	return &Surface{
		Bus:      NewBus(),
		Registry: NewRegistry(),
		Loop:     NewLoop(),
		Logger:   log.New(io.Discard, "movable: ", 0),
	}
}

func (s *Surface) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
