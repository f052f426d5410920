package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/AirframeDesk/internal/export"
	"github.com/piwi3910/AirframeDesk/internal/model"
)

// Layer colors, matching the PDF data sheet.
var layerColors = map[string]color.NRGBA{
	export.LayerFuselage: {R: 158, G: 158, B: 158, A: 255}, // grey
	export.LayerWing:     {R: 33, G: 150, B: 243, A: 255},  // blue
	export.LayerHTail:    {R: 76, G: 175, B: 80, A: 255},   // green
	export.LayerVTail:    {R: 0, G: 188, B: 212, A: 255},   // cyan
	export.LayerCanard:   {R: 156, G: 39, B: 176, A: 255},  // purple
	export.LayerNacelles: {R: 255, G: 152, B: 0, A: 255},   // orange
	export.LayerEngines:  {R: 244, G: 67, B: 54, A: 255},   // red
	export.LayerGears:    {R: 121, G: 85, B: 72, A: 255},   // brown
}

// TopViewCanvas renders the plan view of the committed aircraft. The nose
// points left and the right wing up.
type TopViewCanvas struct {
	widget.BaseWidget
	view      export.TopView
	maxWidth  float32
	maxHeight float32
}

// NewTopViewCanvas creates a canvas fitting view within maxW x maxH.
func NewTopViewCanvas(view export.TopView, maxW, maxH float32) *TopViewCanvas {
	tc := &TopViewCanvas{
		view:      view,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	tc.ExtendBaseWidget(tc)
	return tc
}

// SetView replaces the drawn view.
func (tc *TopViewCanvas) SetView(view export.TopView) {
	tc.view = view
	tc.Refresh()
}

func (tc *TopViewCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newTopViewRenderer(tc)
}

type topViewRenderer struct {
	tc      *TopViewCanvas
	objects []fyne.CanvasObject
}

func newTopViewRenderer(tc *TopViewCanvas) *topViewRenderer {
	r := &topViewRenderer{tc: tc}
	r.rebuild()
	return r
}

// scale returns the drawing scale and the model bounds.
func (r *topViewRenderer) scale() (scale float32, minX, maxY float64, w, h float32, ok bool) {
	minX, minY, maxX, maxY, ok := r.tc.view.Bounds()
	if !ok {
		return 0, 0, 0, 0, 0, false
	}
	spanX, spanY := float32(maxX-minX), float32(maxY-minY)
	if spanX <= 0 || spanY <= 0 {
		return 0, 0, 0, 0, 0, false
	}
	scale = r.tc.maxWidth / spanX
	if s := r.tc.maxHeight / spanY; s < scale {
		scale = s
	}
	return scale, minX, maxY, spanX * scale, spanY * scale, true
}

func (r *topViewRenderer) rebuild() {
	r.objects = nil

	scale, minX, maxY, w, h, ok := r.scale()
	if !ok {
		return
	}
	at := func(x, y float64) fyne.Position {
		return fyne.NewPos(float32(x-minX)*scale, float32(maxY-y)*scale)
	}

	bg := canvas.NewRectangle(color.NRGBA{R: 245, G: 245, B: 245, A: 255})
	bg.Resize(fyne.NewSize(w, h))
	r.objects = append(r.objects, bg)

	for _, o := range r.tc.view.Outlines {
		col := layerColors[o.Layer]
		for i := range o.Points {
			a, b := o.Points[i], o.Points[(i+1)%len(o.Points)]
			line := canvas.NewLine(col)
			line.StrokeWidth = 2
			line.Position1 = at(a[0], a[1])
			line.Position2 = at(b[0], b[1])
			r.objects = append(r.objects, line)
		}
	}

	for _, m := range r.tc.view.Markers {
		col := layerColors[m.Layer]
		rad := float32(m.Radius) * scale
		if rad < 3 {
			rad = 3
		}
		c := canvas.NewCircle(color.Transparent)
		c.StrokeColor = col
		c.StrokeWidth = 2
		centre := at(m.X, m.Y)
		c.Position1 = fyne.NewPos(centre.X-rad, centre.Y-rad)
		c.Position2 = fyne.NewPos(centre.X+rad, centre.Y+rad)
		r.objects = append(r.objects, c)

		label := canvas.NewText(m.Label, color.Black)
		label.TextSize = 9
		label.Move(fyne.NewPos(centre.X+rad+2, centre.Y-6))
		r.objects = append(r.objects, label)
	}
}

func (r *topViewRenderer) Layout(size fyne.Size)        {}
func (r *topViewRenderer) Refresh()                     { r.rebuild(); canvas.Refresh(r.tc) }
func (r *topViewRenderer) Destroy()                     {}
func (r *topViewRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *topViewRenderer) MinSize() fyne.Size {
	if _, _, _, w, h, ok := r.scale(); ok {
		return fyne.NewSize(w, h)
	}
	return fyne.NewSize(0, 0)
}

// RenderTopView creates the preview tab content of ac.
func RenderTopView(ac *model.Aircraft) fyne.CanvasObject {
	view := export.BuildTopView(ac)
	if _, _, _, _, ok := view.Bounds(); !ok {
		return widget.NewLabel("No geometry yet. Fill in the fuselage, wing or engines, then click Update.")
	}

	header := widget.NewLabel(fmt.Sprintf("%s: %d outlines, %d markers", ac.Name, len(view.Outlines), len(view.Markers)))
	header.TextStyle = fyne.TextStyle{Bold: true}

	var legend []fyne.CanvasObject
	for _, layer := range view.Layers() {
		swatch := canvas.NewRectangle(layerColors[layer])
		swatch.SetMinSize(fyne.NewSize(12, 12))
		legend = append(legend, container.NewHBox(swatch, widget.NewLabel(layer)))
	}

	return container.NewVScroll(container.NewVBox(
		header,
		NewTopViewCanvas(view, 800, 500),
		widget.NewSeparator(),
		container.NewHBox(legend...),
	))
}
