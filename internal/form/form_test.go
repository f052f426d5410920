package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/AirframeDesk/internal/units"
)

// ─── Cardinality Tests ───

func TestUsableSize(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]int
		want  int
	}{
		{"no lists", nil, 0},
		{"aligned", [][]int{{1, 2, 3}, {1, 2, 3}}, 3},
		{"shortest wins", [][]int{{1, 2, 3}, {1, 2, 3}, {1, 2}, {1, 2, 3}}, 2},
		{"one empty list", [][]int{{1, 2}, {}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UsableSize(tt.lists...))
		})
	}
}

func TestNeedsGrowth(t *testing.T) {
	assert.True(t, NeedsGrowth(3, 5))
	assert.False(t, NeedsGrowth(5, 5))
	assert.False(t, NeedsGrowth(6, 2), "groups never shrink")
}

func TestIsStale(t *testing.T) {
	assert.True(t, IsStale(4, 2))
	assert.False(t, IsStale(2, 2))
	assert.False(t, IsStale(0, 0))
}

// ─── State Tests ───

func TestSettle(t *testing.T) {
	in := []InstanceState{Usable, Usable, PartiallyFilled, Empty}
	got := settle(in, 2)
	assert.Equal(t, []InstanceState{Committed, Committed, Stale, Empty}, got)
	assert.Equal(t, []InstanceState{Usable, Usable, PartiallyFilled, Empty}, in, "input is not modified")
}

func TestInstanceState_String(t *testing.T) {
	assert.Equal(t, "partially filled", PartiallyFilled.String())
	assert.Equal(t, "stale", Stale.String())
	assert.Equal(t, "unknown", InstanceState(42).String())
}

// ─── Layout Tests ───

func TestLayout(t *testing.T) {
	l := NewLayout()
	assert.Equal(t, 0, l.Instances(GroupEngines))
	assert.Equal(t, 0, l.AddInstance(GroupEngines))
	assert.Equal(t, 1, l.AddInstance(GroupEngines))

	l.Apply(Assignments{Growth: map[string]int{GroupEngines: 3, GroupWingFlaps: 1}})
	assert.Equal(t, 5, l.Instances(GroupEngines))
	assert.Equal(t, 1, l.Instances(GroupWingFlaps))

	groups := l.Groups()
	groups[GroupEngines] = 0
	assert.Equal(t, 5, l.Instances(GroupEngines), "Groups returns a copy")

	l.Reset()
	assert.Equal(t, 0, l.Instances(GroupEngines))
}

// ─── Snapshot Tests ───

func TestSnapshot_SetCountsInstances(t *testing.T) {
	s := NewSnapshot()
	s.Set(Key{Group: GroupEngines, Instance: 2, Attr: "x"}, Value{Text: "1", Unit: "m"})
	assert.Equal(t, 3, s.Instances(GroupEngines))

	v, ok := s.Get(Key{Group: GroupEngines, Instance: 2, Attr: "x"})
	require.True(t, ok)
	assert.Equal(t, "1", v.Text)

	var nilSnap *Snapshot
	assert.Equal(t, 0, nilSnap.Instances(GroupEngines))
}

func TestAssignments_KeysSorted(t *testing.T) {
	a := newAssignments()
	a.Fields[Key{Group: "b", Instance: 0, Attr: "x"}] = Value{}
	a.Fields[Key{Group: "a", Instance: 1, Attr: "a"}] = Value{}
	a.Fields[Key{Group: "a", Instance: 0, Attr: "z"}] = Value{}
	keys := a.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, "a[0].z", keys[0].String())
	assert.Equal(t, "a[1].a", keys[1].String())
	assert.Equal(t, "b[0].x", keys[2].String())
}

func TestValue_Blank(t *testing.T) {
	assert.True(t, Value{}.Blank())
	assert.True(t, Value{Text: "  "}.Blank())
	assert.True(t, Value{Text: Sentinel}.Blank())
	assert.False(t, Value{Text: "0"}.Blank())
}

// ─── Attribute Tests ───

type probe struct {
	Q units.Quantity
	N float64
	I int
	S string
	B bool
	C string
}

func TestQuantityAttr(t *testing.T) {
	a := QuantityAttr("q", "Q", units.Length, func(p *probe) *units.Quantity { return &p.Q })
	var p probe

	assert.Equal(t, Value{Text: Sentinel, Unit: "m"}, a.format(&p, units.AsStored))

	require.NoError(t, a.apply(&p, Value{Text: " 2.5 ", Unit: "ft"}))
	assert.Equal(t, units.New(2.5, units.Foot), p.Q)
	assert.Equal(t, Value{Text: "2.5", Unit: "ft"}, a.format(&p, units.AsStored))

	err := a.apply(&p, Value{Text: "2.5", Unit: "kg"})
	var mismatch *units.UnitMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, units.New(2.5, units.Foot), p.Q, "failed parse leaves the value")

	assert.Equal(t, []string{"m", "ft"}, a.Units())
}

func TestQuantityAttr_Optional(t *testing.T) {
	a := QuantityAttr("q", "Q", units.Length, func(p *probe) *units.Quantity { return &p.Q }).AsOptional()
	p := probe{Q: units.New(1, units.Meter)}
	require.NoError(t, a.apply(&p, Value{Text: Sentinel, Unit: "m"}))
	assert.True(t, p.Q.IsZero())
	assert.True(t, a.Optional)
}

func TestIntegerAttr_RejectsFractions(t *testing.T) {
	a := IntegerAttr("i", "I", func(p *probe) *int { return &p.I })
	var p probe
	require.NoError(t, a.apply(&p, Value{Text: "4"}))
	assert.Equal(t, 4, p.I)
	assert.Error(t, a.apply(&p, Value{Text: "4.5"}))
	assert.Error(t, a.apply(&p, Value{Text: "four"}))
	assert.Equal(t, "4", a.format(&p, units.AsStored).Text)
}

func TestNumberAttr(t *testing.T) {
	a := NumberAttr("n", "N", func(p *probe) *float64 { return &p.N })
	var p probe
	require.NoError(t, a.apply(&p, Value{Text: "0.25"}))
	assert.InDelta(t, 0.25, p.N, 1e-12)
	assert.Error(t, a.apply(&p, Value{Text: "NaN"}))
	assert.ErrorIs(t, a.apply(&p, Value{Text: Sentinel}), units.ErrEmpty)
}

func TestTextAndBoolAttrs(t *testing.T) {
	text := TextAttr("s", "S", func(p *probe) *string { return &p.S })
	flag := BoolAttr("b", "B", func(p *probe) *bool { return &p.B })
	assert.True(t, text.Optional)
	assert.True(t, flag.Optional)

	var p probe
	require.NoError(t, text.apply(&p, Value{Text: "  wing.xml "}))
	assert.Equal(t, "wing.xml", p.S)
	require.NoError(t, text.apply(&p, Value{Text: Sentinel}))
	assert.Empty(t, p.S)

	require.NoError(t, flag.apply(&p, Value{Text: "true"}))
	assert.True(t, p.B)
	assert.Equal(t, True, flag.format(&p, units.AsStored).Text)
	require.NoError(t, flag.apply(&p, Value{Text: False}))
	assert.False(t, p.B)
}

func TestChoiceAttr(t *testing.T) {
	type letter string
	a := LabeledChoiceAttr("c", "C", []letter{"A_1", "B_2"},
		func(l letter) string { return strings.ReplaceAll(string(l), "_", "-") },
		func(p *struct{ L letter }) *letter { return &p.L })

	assert.Equal(t, []string{"A-1", "B-2"}, a.Options)

	var p struct{ L letter }
	assert.Equal(t, Sentinel, a.format(&p, units.AsStored).Text)

	require.NoError(t, a.apply(&p, Value{Text: "b-2"}))
	assert.Equal(t, letter("B_2"), p.L)
	require.NoError(t, a.apply(&p, Value{Text: "A_1"}))
	assert.Equal(t, letter("A_1"), p.L)
	assert.Equal(t, "A-1", a.format(&p, units.AsStored).Text)

	var enumErr *EnumResolutionError
	require.ErrorAs(t, a.apply(&p, Value{Text: "C-3"}), &enumErr)
	assert.Contains(t, enumErr.Error(), "A-1, B-2")
	assert.ErrorIs(t, a.apply(&p, Value{Text: ""}), units.ErrEmpty)
}

// ─── Warning Tests ───

func TestWarning(t *testing.T) {
	w := Warning{Group: GroupWingFlaps, Title: "Wing Flap", Instances: 4, Usable: 2}
	assert.Equal(t, 2, w.Dropped())
	assert.Equal(t, "Wing Flap Update Warning", w.DialogTitle())
	assert.Contains(t, w.Message(), "2 of 4 instances")
	assert.Contains(t, w.Message(), "first 2")

	w.Usable = 3
	assert.Contains(t, w.Message(), "1 of 4 instance ")
}

func TestFieldError_Message(t *testing.T) {
	err := &FieldError{Title: "Engine", Instance: 1, Label: "Engine type", Err: &EnumResolutionError{Text: "ROCKET", Allowed: []string{"PISTON"}}}
	assert.Equal(t, `Engine 2, Engine type: "ROCKET" is not one of PISTON`, err.Error())
}
