package movable

// ChangeEvent is fired each time the View position changes.
type ChangeEvent struct {
	X, Y   float64
	Source ChangeSource
}

// ScaleEvent is fired each time the View scale changes.
type ScaleEvent struct {
	X, Y  float64
	Scale float64
}

// Handlers holds the user facing callbacks of a View. Any of them can be nil.
type Handlers struct {
	Change func(ChangeEvent)
	Scale  func(ScaleEvent)
	// HTouchMove and VTouchMove pass the raw moves through when the
	// first movement of the drag was horizontal or vertical respectively.
	HTouchMove func(TouchEvent)
	VTouchMove func(TouchEvent)
	// Render receives the state every time the rendering layer has to update.
	Render func(ViewState)
}

func (h Handlers) change(e ChangeEvent) {
	if h.Change != nil {
		h.Change(e)
	}
}

func (h Handlers) scale(e ScaleEvent) {
	if h.Scale != nil {
		h.Scale(e)
	}
}

func (h Handlers) passthrough(dir Direction, e TouchEvent) {
	switch {
	case dir == DirectionHorizontal && h.HTouchMove != nil:
		h.HTouchMove(e)
	case dir == DirectionVertical && h.VTouchMove != nil:
		h.VTouchMove(e)
	}
}

func (h Handlers) render(s ViewState) {
	if h.Render != nil {
		h.Render(s)
	}
}
