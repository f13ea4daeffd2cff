package movable

import "fmt"

// Direction defines the axes along which a View can be translated.
type Direction string

const (
	DirectionNone       Direction = "none"
	DirectionAll        Direction = "all"
	DirectionHorizontal Direction = "horizontal"
	DirectionVertical   Direction = "vertical"
)

// Valid reports whether d is one of the supported directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionNone, DirectionAll, DirectionHorizontal, DirectionVertical:
		return true
	}
	return false
}

func (d Direction) horizontal() bool { return d == DirectionAll || d == DirectionHorizontal }
func (d Direction) vertical() bool   { return d == DirectionAll || d == DirectionVertical }

// ChangeSource tells what caused a position change.
type ChangeSource string

const (
	SourceNone     ChangeSource = ""
	SourceTouch    ChangeSource = "touch"
	SourceFriction ChangeSource = "friction"
	SourceAPI      ChangeSource = "api"
)

// Box is the measured layout box of an element.
type Box struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
}

// Empty reports whether the box has no area, which is the case
// for elements not laid out yet.
func (b Box) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

func (b Box) String() string {
	return fmt.Sprintf("%vx%v@(%v,%v)", b.Width, b.Height, b.Left, b.Top)
}

// ViewState is the reactive record the rendering layer converts into
// a visual transform and a transition duration.
type ViewState struct {
	X          float64
	Y          float64
	ScaleValue float64
	Direction  Direction
	// ChangeStatus holds the source of the last position change.
	ChangeStatus ChangeSource
	// TransitionDuration is expressed in seconds.
	TransitionDuration float64
}
