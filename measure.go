package movable

// Measurer isolates the engine from the live layout tree.
type Measurer interface {
	// Box returns the unscaled layout box of the element with the given id.
	Box(id string) Box
	// Transform returns the current visual transform of the element, in the
	// matrix(...) notation. It is used only to recover a mid-animation position.
	Transform(id string) string
}

// StaticMeasurer is a map backed Measurer. Unknown elements measure as empty boxes.
type StaticMeasurer struct {
	Boxes      map[string]Box
	Transforms map[string]string
}

var _ Measurer = (*StaticMeasurer)(nil)

// NewStaticMeasurer creates an empty StaticMeasurer.
func NewStaticMeasurer() *StaticMeasurer {
	return &StaticMeasurer{
		Boxes:      make(map[string]Box),
		Transforms: make(map[string]string),
	}
}

// SetBox stores the box of the element id.
func (m *StaticMeasurer) SetBox(id string, b Box) {
	m.Boxes[id] = b
}

// SetTransform stores the visual transform of the element id.
func (m *StaticMeasurer) SetTransform(id, transform string) {
	m.Transforms[id] = transform
}

func (m *StaticMeasurer) Box(id string) Box {
	return m.Boxes[id]
}

func (m *StaticMeasurer) Transform(id string) string {
	return m.Transforms[id]
}
