package export

import (
	"fmt"
	"math"

	"github.com/piwi3910/AirframeDesk/internal/model"
)

// Outline is a closed shape of the top view, in meters. X runs aft and Y
// to the right wing tip.
type Outline struct {
	Layer  string
	Label  string
	Points [][2]float64
}

// Marker is a point feature of the top view, such as an engine or a wheel.
type Marker struct {
	Layer  string
	Label  string
	X, Y   float64
	Radius float64
}

// TopView is the plan view of an aircraft.
type TopView struct {
	Outlines []Outline
	Markers  []Marker
}

// Layer names shared by the drawing exports.
const (
	LayerFuselage = "FUSELAGE"
	LayerWing     = "WING"
	LayerHTail    = "HTAIL"
	LayerVTail    = "VTAIL"
	LayerCanard   = "CANARD"
	LayerNacelles = "NACELLES"
	LayerEngines  = "ENGINES"
	LayerGears    = "LANDING_GEARS"
)

// markerRadius is the size of point features, in meters.
const markerRadius = 0.25

// BuildTopView computes the plan view of ac from its committed geometry.
// Absent components are left out; lifting surfaces without panels only
// show their apex.
func BuildTopView(ac *model.Aircraft) TopView {
	var v TopView
	if ac == nil {
		return v
	}

	if f := ac.Fuselage; f != nil && f.Length.SI() > 0 {
		x, y, _ := f.Position.Meters()
		half := f.SectionWidth.SI() / 2
		v.Outlines = append(v.Outlines, Outline{
			Layer: LayerFuselage,
			Label: "Fuselage",
			Points: [][2]float64{
				{x, y - half}, {x + f.Length.SI(), y - half},
				{x + f.Length.SI(), y + half}, {x, y + half},
			},
		})
	}

	v.addSurface(LayerWing, "Wing", ac.Wing, true)
	v.addSurface(LayerHTail, "Horizontal Tail", ac.HTail, true)
	v.addSurface(LayerVTail, "Vertical Tail", ac.VTail, false)
	v.addSurface(LayerCanard, "Canard", ac.Canard, true)

	for i, n := range ac.Nacelles {
		x, y, _ := n.Position.Meters()
		l, half := n.Length.SI(), n.MaxDiameter.SI()/2
		if l <= 0 || half <= 0 {
			v.Markers = append(v.Markers, Marker{Layer: LayerNacelles, Label: componentLabel("Nacelle", i), X: x, Y: y, Radius: markerRadius})
			continue
		}
		v.Outlines = append(v.Outlines, Outline{
			Layer:  LayerNacelles,
			Label:  componentLabel("Nacelle", i),
			Points: [][2]float64{{x, y - half}, {x + l, y - half}, {x + l, y + half}, {x, y + half}},
		})
	}

	for i, e := range ac.Engines {
		x, y, _ := e.Position.Meters()
		r := markerRadius
		if d := e.PropellerDiameter.SI(); d > 0 {
			r = d / 2
		}
		v.Markers = append(v.Markers, Marker{Layer: LayerEngines, Label: componentLabel("Engine", i), X: x, Y: y, Radius: r})
	}

	if g := ac.LandingGears; g != nil {
		nx, ny, _ := g.NosePosition.Meters()
		mx, my, _ := g.MainPosition.Meters()
		v.Markers = append(v.Markers,
			Marker{Layer: LayerGears, Label: "Nose gear", X: nx, Y: ny, Radius: markerRadius},
			Marker{Layer: LayerGears, Label: "Main gear", X: mx, Y: my, Radius: markerRadius},
		)
		if my != 0 {
			v.Markers = append(v.Markers, Marker{Layer: LayerGears, Label: "Main gear", X: mx, Y: -my, Radius: markerRadius})
		}
	}
	return v
}

// addSurface adds the outline of a lifting surface built from its panels.
// Symmetric surfaces are mirrored about the apex plane.
func (v *TopView) addSurface(layer, label string, s *model.LiftingSurface, symmetric bool) {
	if s == nil {
		return
	}
	x0, y0, _ := s.Position.Meters()
	if len(s.Panels) == 0 {
		v.Markers = append(v.Markers, Marker{Layer: layer, Label: label, X: x0, Y: y0, Radius: markerRadius})
		return
	}

	le := [][2]float64{{x0, y0}}
	te := [][2]float64{{x0 + s.Panels[0].ChordRoot.SI(), y0}}
	x, y := x0, y0
	for _, p := range s.Panels {
		span := p.Span.SI()
		dy := span
		if !symmetric {
			// Vertical surfaces project onto the chord line.
			dy = 0
		} else if d := p.Dihedral.SI(); d != 0 {
			dy = span * math.Cos(d)
		}
		x += span * math.Tan(p.SweepLE.SI())
		y += dy
		le = append(le, [2]float64{x, y})
		te = append(te, [2]float64{x + p.ChordTip.SI(), y})
	}

	right := make([][2]float64, 0, len(le)+len(te))
	right = append(right, le...)
	for i := len(te) - 1; i >= 0; i-- {
		right = append(right, te[i])
	}
	v.Outlines = append(v.Outlines, Outline{Layer: layer, Label: label, Points: right})

	if symmetric {
		left := make([][2]float64, len(right))
		for i, p := range right {
			left[i] = [2]float64{p[0], 2*y0 - p[1]}
		}
		v.Outlines = append(v.Outlines, Outline{Layer: layer, Label: label, Points: left})
	}
}

// Bounds returns the extent of the view. ok is false for an empty view.
func (v TopView) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(x, y, r float64) {
		minX, maxX = math.Min(minX, x-r), math.Max(maxX, x+r)
		minY, maxY = math.Min(minY, y-r), math.Max(maxY, y+r)
		ok = true
	}
	for _, o := range v.Outlines {
		for _, p := range o.Points {
			grow(p[0], p[1], 0)
		}
	}
	for _, m := range v.Markers {
		grow(m.X, m.Y, m.Radius)
	}
	if !ok {
		return 0, 0, 0, 0, false
	}
	return minX, minY, maxX, maxY, true
}

// Layers returns the layers in use, in drawing order.
func (v TopView) Layers() []string {
	seen := map[string]bool{}
	var out []string
	add := func(l string) {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	for _, o := range v.Outlines {
		add(o.Layer)
	}
	for _, m := range v.Markers {
		add(m.Layer)
	}
	return out
}

func componentLabel(title string, i int) string {
	return fmt.Sprintf("%s %d", title, i+1)
}
