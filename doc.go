/*
Package movable implements the bounded drag and pinch-zoom transform engine behind
a pair of cooperating widgets: an Area, which defines the bounds, and a View, its single
draggable and scalable child.

The engine consumes an already classified stream of touch events, clamps the content
inside its container (optionally with an elastic rubber-band effect), resolves pinch
scaling and projects the post-release inertial motion. It never renders anything by itself:
its output is a ViewState record (position, scale and transition duration) which a
compositing layer turns into a visual transform.

Widgets living on the same rendering surface share a Surface, which carries the message bus
used for the Area to View scale relay, the widget registry and the single-threaded task loop
driving the transition timers.

	surface := movable.NewSurface()
	area, _ := surface.NewArea("area", measurer)
	view, _ := surface.NewView("view", area, measurer, movable.Options{
		Direction: movable.DirectionAll,
		Scale:     true,
		Inertia:   true,
	}, movable.Handlers{
		Change: func(e movable.ChangeEvent) {
			fmt.Printf("x: %v, y: %v (%s)\n", e.X, e.Y, e.Source)
		},
	})

	view.HandleTouch(event)
	surface.Loop.Advance(now)

None of the types are safe for concurrent use. The host is expected to serialize the touch
input, the programmatic updates and the task loop ticks, the same way a UI event loop does.
*/
package movable
