package ui

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/AirframeDesk/internal/form"
)

// formPage groups the templates shown on one tab.
type formPage struct {
	Title  string
	Groups []string
}

// pages is the tab layout of the input form.
var pages = []formPage{
	{"Aircraft", []string{form.GroupAircraft}},
	{"Fuselage", []string{form.GroupFuselage, form.GroupFuselageSpoilers}},
	{"Wing", []string{form.GroupWing, form.GroupWingEquivalent, form.GroupWingPanels,
		form.GroupWingFlaps, form.GroupWingSlats, form.GroupWingAilerons, form.GroupWingSpoilers}},
	{"Horizontal Tail", []string{form.GroupHTail, form.GroupHTailPanels, form.GroupHTailElevators}},
	{"Vertical Tail", []string{form.GroupVTail, form.GroupVTailPanels, form.GroupVTailRudders}},
	{"Canard", []string{form.GroupCanard, form.GroupCanardPanels, form.GroupCanardControlSurfaces}},
	{"Power Plant", []string{form.GroupEngines, form.GroupNacelles}},
	{"Landing Gears", []string{form.GroupLandingGears}},
	{"Cabin", []string{form.GroupCabinConfiguration, form.GroupCabinClasses}},
	{"Systems", []string{form.GroupSystems}},
}

// fieldInput is the widget set editing one field.
type fieldInput struct {
	field  form.Field
	entry  *widget.Entry
	choice *widget.Select
	unit   *widget.Select
}

func newFieldInput(f form.Field) *fieldInput {
	fi := &fieldInput{field: f}
	switch f.Kind {
	case form.KindChoice, form.KindBool:
		opts := f.Options
		if f.Kind == form.KindBool {
			opts = []string{form.True, form.False}
		}
		fi.choice = widget.NewSelect(append([]string(nil), opts...), nil)
		fi.choice.PlaceHolder = form.Sentinel
	default:
		fi.entry = widget.NewEntry()
		fi.entry.SetPlaceHolder(form.Sentinel)
	}
	if f.Kind == form.KindQuantity {
		fi.unit = widget.NewSelect(f.Units(), nil)
		fi.unit.PlaceHolder = "unit"
	}
	return fi
}

// value reads the widget content.
func (fi *fieldInput) value() form.Value {
	var v form.Value
	if fi.choice != nil {
		v.Text = fi.choice.Selected
	} else {
		v.Text = fi.entry.Text
	}
	if fi.unit != nil {
		v.Unit = fi.unit.Selected
	}
	return v
}

// set writes v into the widgets. The sentinel is shown as placeholder.
func (fi *fieldInput) set(v form.Value) {
	if fi.choice != nil {
		if v.Blank() {
			fi.choice.ClearSelected()
		} else {
			selectOption(fi.choice, v.Text)
		}
	} else if v.Text == form.Sentinel {
		fi.entry.SetText("")
	} else {
		fi.entry.SetText(v.Text)
	}
	if fi.unit != nil {
		if v.Unit == "" {
			fi.unit.ClearSelected()
		} else {
			selectOption(fi.unit, v.Unit)
		}
	}
}

// selectOption selects text, adding it to the options when unknown so that
// the collection pass reports it instead of the form hiding it.
func selectOption(s *widget.Select, text string) {
	for _, o := range s.Options {
		if o == text {
			s.SetSelected(text)
			return
		}
	}
	s.Options = append(s.Options, text)
	s.SetSelected(text)
}

func (fi *fieldInput) object() fyne.CanvasObject {
	var input fyne.CanvasObject = fi.entry
	if fi.choice != nil {
		input = fi.choice
	}
	if fi.unit == nil {
		return input
	}
	return container.NewBorder(nil, nil, nil, fi.unit, input)
}

// FormView holds the input widgets of every template and the instance
// layout of the repeated groups. It implements form.InstanceCounter.
type FormView struct {
	templates []form.Template
	layout    *form.Layout
	inputs    map[form.Key]*fieldInput
	bodies    map[string]*fyne.Container

	// OnAddInstance is called after the user adds an instance.
	OnAddInstance func(group string)
}

// NewFormView builds the widgets of templates. Scalar components get their
// single instance right away; repeated groups start empty.
func NewFormView(templates []form.Template) *FormView {
	fv := &FormView{
		templates: templates,
		layout:    form.NewLayout(),
		inputs:    map[form.Key]*fieldInput{},
		bodies:    map[string]*fyne.Container{},
	}
	for _, t := range templates {
		body := container.NewVBox()
		fv.bodies[t.Name()] = body
		if t.Kind() == form.Scalar {
			body.Add(fv.buildInstance(t, 0))
		}
	}
	return fv
}

// Instances returns the number of instances of group on screen.
func (fv *FormView) Instances(group string) int {
	return fv.layout.Instances(group)
}

// buildInstance creates the inputs of instance i of t.
func (fv *FormView) buildInstance(t form.Template, i int) fyne.CanvasObject {
	grid := container.New(layout.NewFormLayout())
	for _, f := range t.Fields() {
		fi := newFieldInput(f)
		fv.inputs[form.Key{Group: t.Name(), Instance: i, Attr: f.Name}] = fi
		label := f.Label
		if f.Optional {
			label += " (optional)"
		}
		grid.Add(widget.NewLabel(label))
		grid.Add(fi.object())
	}
	if t.Kind() == form.Scalar {
		return grid
	}
	return widget.NewCard("", fmt.Sprintf("%s %d", t.Title(), i+1), grid)
}

// AddInstance appends a blank instance to group and returns its index. The
// aircraft is not touched until the next collection pass.
func (fv *FormView) AddInstance(group string) int {
	t := form.Find(fv.templates, group)
	if t == nil || t.Kind() != form.Repeated {
		return -1
	}
	i := fv.layout.AddInstance(group)
	fv.bodies[group].Add(fv.buildInstance(t, i))
	return i
}

// Apply realises the growth of a projection pass and writes its values.
func (fv *FormView) Apply(a form.Assignments) {
	groups := make([]string, 0, len(a.Growth))
	for g := range a.Growth {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	for _, g := range groups {
		for n := 0; n < a.Growth[g]; n++ {
			fv.AddInstance(g)
		}
	}
	for _, k := range a.Keys() {
		if fi, ok := fv.inputs[k]; ok {
			fi.set(a.Fields[k])
		}
	}
}

// Reset drops every repeated instance and blanks the scalar fields, as on
// a whole-model reload.
func (fv *FormView) Reset() {
	for k, fi := range fv.inputs {
		if t := form.Find(fv.templates, k.Group); t != nil && t.Kind() == form.Repeated {
			delete(fv.inputs, k)
			continue
		}
		fi.set(form.Value{Text: form.Sentinel})
	}
	for _, t := range fv.templates {
		if t.Kind() == form.Repeated {
			fv.bodies[t.Name()].RemoveAll()
		}
	}
	fv.layout.Reset()
}

// Snapshot reads the whole form.
func (fv *FormView) Snapshot() *form.Snapshot {
	snap := form.NewSnapshot()
	for group, n := range fv.layout.Groups() {
		snap.Counts[group] = n
	}
	for k, fi := range fv.inputs {
		snap.Set(k, fi.value())
	}
	return snap
}

// Set writes one field, if it is on screen.
func (fv *FormView) Set(k form.Key, v form.Value) bool {
	fi, ok := fv.inputs[k]
	if ok {
		fi.set(v)
	}
	return ok
}

// Get reads one field.
func (fv *FormView) Get(k form.Key) (form.Value, bool) {
	fi, ok := fv.inputs[k]
	if !ok {
		return form.Value{}, false
	}
	return fi.value(), true
}

// section returns the card of one template.
func (fv *FormView) section(t form.Template) fyne.CanvasObject {
	body := fv.bodies[t.Name()]
	if t.Kind() == form.Scalar {
		return widget.NewCard(t.Title(), "", body)
	}
	name := t.Name()
	add := newIconButtonWithTooltip(theme.ContentAddIcon(), "Add "+t.Title(), func() {
		fv.AddInstance(name)
		if fv.OnAddInstance != nil {
			fv.OnAddInstance(name)
		}
	})
	header := container.NewBorder(nil, nil, nil, add, widget.NewLabel(t.Title()+"s"))
	return widget.NewCard("", "", container.NewBorder(header, nil, nil, nil, body))
}

// page returns the scrollable content of one tab.
func (fv *FormView) page(p formPage) fyne.CanvasObject {
	var items []fyne.CanvasObject
	for _, name := range p.Groups {
		if t := form.Find(fv.templates, name); t != nil {
			items = append(items, fv.section(t))
		}
	}
	return container.NewVScroll(container.NewVBox(items...))
}
