package movable

import (
	"image"
	"image/color"
	"log"
	"math"
	"time"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/esimov/movable/geom"
	"golang.org/x/image/colornames"
)

// Element ids of the preview surface.
const (
	PreviewAreaID = "preview-area"
	PreviewViewID = "preview-view"
)

// scrollStep is the scroll distance doubling the scale.
const scrollStep = 200

var (
	areaColor    = color.NRGBA(colornames.Whitesmoke)
	contentColor = color.NRGBA(colornames.Steelblue)
)

// Preview opens a window acting as the Area of a square View which can be
// dragged with the mouse or a finger and pinched on touch screens.
// Scrolling over the window changes the scale when scaling is enabled.
type Preview struct {
	Title   string
	Width   float64
	Height  float64
	Content float64
	Options Options
	Logger  *log.Logger

	surface *Surface
	area    *Area
	view    *View
	m       *TweenMeasurer
	tracker Tracker
	now     time.Duration
	window  *app.Window
}

// NewPreview creates the preview of a content square of the given size.
func NewPreview(width, height, content float64, opts Options) *Preview {
	return &Preview{
		Title:   "Movable preview",
		Width:   width,
		Height:  height,
		Content: content,
		Options: opts,
	}
}

// Run spawns the window and blocks until it is closed with ESC or destroyed.
// It has to be called from a goroutine other than the one running app.Main.
func (p *Preview) Run() error {
	if err := p.init(); err != nil {
		return err
	}
	p.window = app.NewWindow(
		app.Title(p.Title),
		app.Size(unit.Dp(p.Width), unit.Dp(p.Height)),
	)
	return p.run()
}

func (p *Preview) init() error {
	p.surface = NewSurface()
	if p.Logger != nil {
		p.surface.Logger = p.Logger
	}
	p.m = NewTweenMeasurer(func() time.Duration { return p.now })
	p.m.SetBox(PreviewAreaID, Box{Width: p.Width, Height: p.Height})
	p.m.SetBox(PreviewViewID, Box{Width: p.Content, Height: p.Content})

	var err error
	if p.area, err = p.surface.NewArea(PreviewAreaID, p.m); err != nil {
		return err
	}
	p.view, err = p.surface.NewView(PreviewViewID, p.area, p.m, p.Options, Handlers{
		Change: func(e ChangeEvent) { p.surface.logf("change x=%v y=%v source=%s", e.X, e.Y, e.Source) },
		Scale:  func(e ScaleEvent) { p.surface.logf("scale %v", e.Scale) },
		Render: p.m.Render(PreviewViewID),
	})
	return err
}

// run the Gio main thread until a DestroyEvent or an ESC key event is captured.
func (p *Preview) run() error {
	var (
		ops   op.Ops
		start time.Time
	)
	for e := range p.window.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			if start.IsZero() {
				start = e.Now
			}
			p.now = e.Now.Sub(start)
			gtx := layout.NewContext(&ops, e)

			p.resize(gtx.Constraints.Max)
			p.handle(gtx)
			p.surface.Loop.Advance(p.now)
			p.draw(gtx)

			if p.m.Tween(PreviewViewID).Active(p.now) || p.surface.Loop.Pending() > 0 {
				op.InvalidateOp{}.Add(gtx.Ops)
			}
			e.Frame(gtx.Ops)
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}

// resize updates the area box once the window is laid out with its real pixel size.
func (p *Preview) resize(size image.Point) {
	b := p.m.Box(PreviewAreaID)
	if b.Width == float64(size.X) && b.Height == float64(size.Y) {
		return
	}
	p.m.SetBox(PreviewAreaID, Box{Width: float64(size.X), Height: float64(size.Y)})
	p.view.Remeasure()
}

func (p *Preview) handle(gtx layout.Context) {
	var events []pointer.Event
	for _, ev := range gtx.Events(p) {
		switch ev := ev.(type) {
		case key.Event:
			if ev.Name == key.NameEscape && ev.State == key.Press {
				p.window.Perform(system.ActionClose)
			}
		case pointer.Event:
			if ev.Type == pointer.Scroll {
				p.scroll(ev.Scroll.Y)
				continue
			}
			events = append(events, ev)
		}
	}
	if p.tracker.Active() == 0 {
		for _, pe := range events {
			if pe.Type == pointer.Press {
				p.tracker.Target = p.hitTest(pe.Position)
				break
			}
		}
	}
	for _, ev := range p.tracker.Collect(events) {
		if ev.Target == PreviewViewID {
			p.view.HandleTouch(ev)
		}
		p.area.HandleTouch(ev)
	}
}

func (p *Preview) scroll(dy float32) {
	opts := p.view.Options()
	if !opts.Scale || opts.Disabled {
		return
	}
	scale := p.view.State().ScaleValue * math.Pow(2, -float64(dy)/scrollStep)
	p.view.SetScaleValue(scale)
}

// hitTest returns the id of the element painted under pos.
func (p *Preview) hitTest(pos f32.Point) string {
	f := p.m.Tween(PreviewViewID).At(p.now)
	size := p.Content * f.Scale
	left := f.X - p.Content*(f.Scale-1)/2
	top := f.Y - p.Content*(f.Scale-1)/2

	x, y := float64(pos.X), float64(pos.Y)
	if x >= left && x <= left+size && y >= top && y <= top+size {
		return PreviewViewID
	}
	return PreviewAreaID
}

func (p *Preview) draw(gtx layout.Context) {
	paint.Fill(gtx.Ops, areaColor)

	input := clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops)
	pointer.InputOp{
		Tag:          p,
		Types:        pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
		ScrollBounds: image.Rect(0, -scrollStep, 0, scrollStep),
	}.Add(gtx.Ops)
	key.InputOp{Tag: p, Keys: key.NameEscape}.Add(gtx.Ops)
	input.Pop()

	f := p.m.Tween(PreviewViewID).At(p.now)
	c := int(math.Round(p.Content))
	tr := op.Affine(geom.Affine(f.X, f.Y, f.Scale, p.Content, p.Content)).Push(gtx.Ops)
	paint.FillShape(gtx.Ops, contentColor, clip.Rect{Max: image.Pt(c, c)}.Op())
	tr.Pop()
}
