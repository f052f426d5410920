package form

import (
	"strings"

	"github.com/piwi3910/AirframeDesk/internal/model"
)

// TemplateKind tells scalar components from repeated groups.
type TemplateKind int

const (
	Scalar TemplateKind = iota
	Repeated
)

// Template describes one section of the form: either an optional scalar
// component of the aircraft or a repeated group of sub-components.
type Template interface {
	Name() string
	Title() string
	Kind() TemplateKind
	Fields() []Field

	project(ac *model.Aircraft, current int, o *options, out *Assignments)
	collect(snap *Snapshot, ac *model.Aircraft, o *options, res *Result) (bool, error)
	classify(snap *Snapshot) []InstanceState
}

// Find returns the template called name, or nil.
func Find(templates []Template, name string) Template {
	for _, t := range templates {
		if t.Name() == name {
			return t
		}
	}
	return nil
}

// ─── Scalar components ───

// Component binds an optional scalar sub-component of type T.
type Component[T any] struct {
	name  string
	title string
	attrs []Attribute[T]
	get   func(*model.Aircraft) *T
	set   func(*model.Aircraft, *T) error
	after func(*model.Aircraft) error
}

// NewComponent creates a scalar template. get returns nil when the component
// is absent; set installs a new or updated component.
func NewComponent[T any](name, title string, get func(*model.Aircraft) *T, set func(*model.Aircraft, *T) error, attrs ...Attribute[T]) *Component[T] {
	return &Component[T]{name: name, title: title, attrs: attrs, get: get, set: set}
}

// After registers a derivation run once the component has been committed.
func (c *Component[T]) After(fn func(*model.Aircraft) error) *Component[T] {
	c.after = fn
	return c
}

func (c *Component[T]) Name() string       { return c.name }
func (c *Component[T]) Title() string      { return c.title }
func (c *Component[T]) Kind() TemplateKind { return Scalar }
func (c *Component[T]) Fields() []Field    { return fieldsOf(c.attrs) }

func (c *Component[T]) project(ac *model.Aircraft, _ int, o *options, out *Assignments) {
	cur := c.get(ac)
	for _, a := range c.attrs {
		k := Key{Group: c.name, Attr: a.Name}
		if cur == nil {
			out.Fields[k] = a.blank()
			continue
		}
		out.Fields[k] = a.format(cur, o.system)
	}
}

func (c *Component[T]) classify(snap *Snapshot) []InstanceState {
	return []InstanceState{classifyInstance(snap, c.name, 0, c.attrs)}
}

func (c *Component[T]) collect(snap *Snapshot, ac *model.Aircraft, o *options, res *Result) (bool, error) {
	state := classifyInstance(snap, c.name, 0, c.attrs)
	res.States[c.name] = []InstanceState{state}
	if state == Empty {
		o.lg.Debug("component left untouched", "component", c.name)
		return false, nil
	}

	var work T
	if cur := c.get(ac); cur != nil {
		work = *cur
	}
	for _, a := range c.attrs {
		v := snap.Fields[Key{Group: c.name, Attr: a.Name}]
		if err := a.apply(&work, v); err != nil {
			return false, &FieldError{Group: c.name, Title: c.title, Attr: a.Name, Label: a.Label, Err: err}
		}
	}
	if err := c.set(ac, &work); err != nil {
		return false, &GroupError{Group: c.name, Title: c.title, Err: err}
	}
	res.States[c.name] = []InstanceState{Committed}

	if c.after != nil {
		if err := c.after(ac); err != nil {
			return true, &GroupError{Group: c.name, Title: c.title, Err: err}
		}
	}
	return true, nil
}

// ─── Repeated groups ───

// Group binds a collection of sub-components of type T.
type Group[T any] struct {
	name    string
	title   string
	attrs   []Attribute[T]
	items   func(*model.Aircraft) []T
	replace func(*model.Aircraft, []T) error
	newItem func(ac *model.Aircraft, i int) T
	skip    func(*model.Aircraft) bool
	after   func(*model.Aircraft) error
}

// NewGroup creates a repeated template. items returns the current
// collection (nil when the owner is absent), replace installs a new one and
// newItem creates the element for index i before its attributes are parsed.
func NewGroup[T any](name, title string,
	items func(*model.Aircraft) []T,
	replace func(*model.Aircraft, []T) error,
	newItem func(ac *model.Aircraft, i int) T,
	attrs ...Attribute[T],
) *Group[T] {
	return &Group[T]{name: name, title: title, attrs: attrs, items: items, replace: replace, newItem: newItem}
}

// SkipWhen disables the collection of the group while fn reports true.
func (g *Group[T]) SkipWhen(fn func(*model.Aircraft) bool) *Group[T] {
	g.skip = fn
	return g
}

// After registers a derivation run once the group has been committed.
func (g *Group[T]) After(fn func(*model.Aircraft) error) *Group[T] {
	g.after = fn
	return g
}

func (g *Group[T]) Name() string       { return g.name }
func (g *Group[T]) Title() string      { return g.title }
func (g *Group[T]) Kind() TemplateKind { return Repeated }
func (g *Group[T]) Fields() []Field    { return fieldsOf(g.attrs) }

func (g *Group[T]) project(ac *model.Aircraft, current int, o *options, out *Assignments) {
	items := g.items(ac)
	if NeedsGrowth(current, len(items)) {
		out.Growth[g.name] = len(items) - current
	}
	for i := range items {
		for _, a := range g.attrs {
			out.Fields[Key{Group: g.name, Instance: i, Attr: a.Name}] = a.format(&items[i], o.system)
		}
	}
}

func (g *Group[T]) classify(snap *Snapshot) []InstanceState {
	n := snap.Instances(g.name)
	states := make([]InstanceState, n)
	for i := range states {
		states[i] = classifyInstance(snap, g.name, i, g.attrs)
	}
	return states
}

// entry is one non-blank field of a parallel list.
type entry struct {
	instance int
	value    Value
}

// harvest builds the parallel lists of the required attributes: one list of
// texts per attribute plus one list of unit selections per quantity.
func (g *Group[T]) harvest(snap *Snapshot) (texts, unitSel map[string][]entry, lists [][]entry) {
	texts = map[string][]entry{}
	unitSel = map[string][]entry{}
	n := snap.Instances(g.name)
	for _, a := range g.attrs {
		if a.Optional {
			continue
		}
		var tl, ul []entry
		for i := 0; i < n; i++ {
			v := snap.Fields[Key{Group: g.name, Instance: i, Attr: a.Name}]
			if !v.Blank() {
				tl = append(tl, entry{instance: i, value: v})
			}
			if a.Kind == KindQuantity && strings.TrimSpace(v.Unit) != "" {
				ul = append(ul, entry{instance: i, value: v})
			}
		}
		texts[a.Name] = tl
		lists = append(lists, tl)
		if a.Kind == KindQuantity {
			unitSel[a.Name] = ul
			lists = append(lists, ul)
		}
	}
	return texts, unitSel, lists
}

// anchor returns the name of the first required attribute.
func (g *Group[T]) anchor() string {
	for _, a := range g.attrs {
		if !a.Optional {
			return a.Name
		}
	}
	return ""
}

func (g *Group[T]) collect(snap *Snapshot, ac *model.Aircraft, o *options, res *Result) (bool, error) {
	if g.skip != nil && g.skip(ac) {
		o.lg.Debug("group skipped", "group", g.name)
		return false, nil
	}

	states := g.classify(snap)
	res.States[g.name] = states

	texts, unitSel, lists := g.harvest(snap)
	usable := UsableSize(lists...)
	if usable == 0 {
		o.lg.Debug("group left untouched", "group", g.name, "instances", len(states))
		return false, nil
	}

	anchor := texts[g.anchor()]

	built := make([]T, 0, usable)
	for i := 0; i < usable; i++ {
		item := g.newItem(ac, i)
		for _, a := range g.attrs {
			var v Value
			// Optional fields belong to the instance the first required
			// field of entry i was harvested from.
			inst := anchor[i].instance
			if a.Optional {
				v = snap.Fields[Key{Group: g.name, Instance: inst, Attr: a.Name}]
			} else {
				e := texts[a.Name][i]
				inst = e.instance
				v = Value{Text: e.value.Text}
				if a.Kind == KindQuantity {
					v.Unit = unitSel[a.Name][i].value.Unit
				}
			}
			if err := a.apply(&item, v); err != nil {
				return false, &FieldError{Group: g.name, Title: g.title, Instance: inst, Attr: a.Name, Label: a.Label, Err: err}
			}
		}
		built = append(built, item)
	}

	if err := g.replace(ac, built); err != nil {
		return false, &GroupError{Group: g.name, Title: g.title, Err: err}
	}
	res.States[g.name] = settle(states, usable)
	o.lg.Debug("group committed", "group", g.name, "size", usable)

	if IsStale(len(states), usable) {
		w := Warning{Group: g.name, Title: g.title, Instances: len(states), Usable: usable}
		o.lg.Warn("cardinality mismatch", "group", g.name, "instances", w.Instances, "usable", w.Usable)
		res.Warnings = append(res.Warnings, w)
	}

	if g.after != nil {
		if err := g.after(ac); err != nil {
			return true, &GroupError{Group: g.name, Title: g.title, Err: err}
		}
	}
	return true, nil
}

// ─── Helpers ───

func fieldsOf[T any](attrs []Attribute[T]) []Field {
	fields := make([]Field, len(attrs))
	for i, a := range attrs {
		fields[i] = a.Field
	}
	return fields
}

// classifyInstance derives the state of one instance from its fields.
func classifyInstance[T any](snap *Snapshot, group string, i int, attrs []Attribute[T]) InstanceState {
	filled, required := 0, 0
	for _, a := range attrs {
		if a.Optional {
			continue
		}
		required++
		if v := snap.Fields[Key{Group: group, Instance: i, Attr: a.Name}]; !v.Blank() {
			filled++
		}
	}
	if filled == 0 {
		return Empty
	}
	if filled < required {
		return PartiallyFilled
	}
	var scratch T
	for _, a := range attrs {
		if err := a.apply(&scratch, snap.Fields[Key{Group: group, Instance: i, Attr: a.Name}]); err != nil {
			return PartiallyFilled
		}
	}
	return Usable
}
