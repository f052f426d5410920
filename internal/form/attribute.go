package form

import (
	"math"
	"strconv"
	"strings"

	"github.com/piwi3910/AirframeDesk/internal/units"
)

// Kind is the widget family an attribute is edited with.
type Kind int

const (
	KindQuantity Kind = iota + 1
	KindNumber
	KindInteger
	KindText
	KindChoice
	KindBool
)

// Boolean choice texts.
const (
	True  = "TRUE"
	False = "FALSE"
)

// Field describes an attribute independently of the domain type it edits.
// It is what the orchestration layer needs to build a widget.
type Field struct {
	Name      string
	Label     string
	Kind      Kind
	Dimension units.Dimension
	Options   []string
	Optional  bool
}

// Units returns the selector labels of a quantity field.
func (f Field) Units() []string {
	if f.Kind != KindQuantity {
		return nil
	}
	return units.Labels(f.Dimension)
}

// Attribute binds a Field to a member of the domain type T.
type Attribute[T any] struct {
	Field
	format func(*T, units.System) Value
	parse  func(*T, Value) error
	zero   func(*T)
}

// AsOptional marks the attribute as not required: it does not take part in
// the usable size of its group and a blank value leaves the zero value.
func (a Attribute[T]) AsOptional() Attribute[T] {
	a.Field.Optional = true
	return a
}

// apply writes v into t. A blank optional value resets the member.
func (a Attribute[T]) apply(t *T, v Value) error {
	if a.Optional && a.Kind != KindBool && v.Blank() {
		a.zero(t)
		return nil
	}
	return a.parse(t, v)
}

// blank is the projection of an absent component.
func (a Attribute[T]) blank() Value {
	v := Value{Text: Sentinel}
	if a.Kind == KindQuantity {
		v.Unit = units.Default(a.Dimension).Symbol()
	}
	return v
}

// QuantityAttr binds a physical quantity of dimension dim.
func QuantityAttr[T any](name, label string, dim units.Dimension, get func(*T) *units.Quantity) Attribute[T] {
	return Attribute[T]{
		Field: Field{Name: name, Label: label, Kind: KindQuantity, Dimension: dim},
		zero:  func(t *T) { *get(t) = units.Quantity{} },
		format: func(t *T, sys units.System) Value {
			q := *get(t)
			if q.IsZero() {
				return Value{Text: Sentinel, Unit: units.Default(dim).Symbol()}
			}
			if _, ok := units.Lookup(q.Unit.Symbol(), dim); !ok {
				text, _ := units.Format(q)
				return Value{Text: text, Unit: units.Default(dim).Symbol()}
			}
			text, label, err := units.FormatIn(q, sys.Preferred(dim))
			if err != nil {
				text, label = units.Format(q)
			}
			return Value{Text: text, Unit: label}
		},
		parse: func(t *T, v Value) error {
			q, err := units.Parse(v.Text, v.Unit, dim)
			if err != nil {
				return err
			}
			*get(t) = q
			return nil
		},
	}
}

// NumberAttr binds a dimensionless real number.
func NumberAttr[T any](name, label string, get func(*T) *float64) Attribute[T] {
	return Attribute[T]{
		Field: Field{Name: name, Label: label, Kind: KindNumber},
		zero:  func(t *T) { *get(t) = 0 },
		format: func(t *T, _ units.System) Value {
			return Value{Text: units.FormatNumber(*get(t))}
		},
		parse: func(t *T, v Value) error {
			f, err := units.ParseNumber(v.Text)
			if err != nil {
				return err
			}
			*get(t) = f
			return nil
		},
	}
}

// IntegerAttr binds a count.
func IntegerAttr[T any](name, label string, get func(*T) *int) Attribute[T] {
	return Attribute[T]{
		Field: Field{Name: name, Label: label, Kind: KindInteger},
		zero:  func(t *T) { *get(t) = 0 },
		format: func(t *T, _ units.System) Value {
			return Value{Text: strconv.Itoa(*get(t))}
		},
		parse: func(t *T, v Value) error {
			f, err := units.ParseNumber(v.Text)
			if err != nil {
				return err
			}
			if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
				return &units.ParseError{Text: v.Text, Err: strconv.ErrSyntax}
			}
			*get(t) = int(f)
			return nil
		},
	}
}

// TextAttr binds free text such as a file path. Text attributes are
// optional: an empty path is a legitimate value.
func TextAttr[T any](name, label string, get func(*T) *string) Attribute[T] {
	return Attribute[T]{
		Field: Field{Name: name, Label: label, Kind: KindText, Optional: true},
		zero:  func(t *T) { *get(t) = "" },
		format: func(t *T, _ units.System) Value {
			return Value{Text: *get(t)}
		},
		parse: func(t *T, v Value) error {
			if units.IsBlank(v.Text) {
				*get(t) = ""
				return nil
			}
			*get(t) = strings.TrimSpace(v.Text)
			return nil
		},
	}
}

// BoolAttr binds a flag entered as TRUE or FALSE.
func BoolAttr[T any](name, label string, get func(*T) *bool) Attribute[T] {
	return Attribute[T]{
		Field: Field{Name: name, Label: label, Kind: KindBool, Options: []string{True, False}, Optional: true},
		zero:  func(t *T) { *get(t) = false },
		format: func(t *T, _ units.System) Value {
			if *get(t) {
				return Value{Text: True}
			}
			return Value{Text: False}
		},
		parse: func(t *T, v Value) error {
			*get(t) = strings.EqualFold(strings.TrimSpace(v.Text), True)
			return nil
		},
	}
}

// ChoiceAttr binds an enumeration. Values are shown by their literal names.
func ChoiceAttr[T any, E ~string](name, label string, values []E, get func(*T) *E) Attribute[T] {
	return LabeledChoiceAttr(name, label, values, func(e E) string { return string(e) }, get)
}

// LabeledChoiceAttr binds an enumeration shown with custom labels. Text is
// resolved against both the labels and the literal names.
func LabeledChoiceAttr[T any, E ~string](name, label string, values []E, labelOf func(E) string, get func(*T) *E) Attribute[T] {
	options := make([]string, len(values))
	for i, e := range values {
		options[i] = labelOf(e)
	}
	return Attribute[T]{
		Field: Field{Name: name, Label: label, Kind: KindChoice, Options: options},
		zero:  func(t *T) { *get(t) = "" },
		format: func(t *T, _ units.System) Value {
			e := *get(t)
			if e == "" {
				return Value{Text: Sentinel}
			}
			return Value{Text: labelOf(e)}
		},
		parse: func(t *T, v Value) error {
			if units.IsBlank(v.Text) {
				return &units.ParseError{Text: v.Text, Err: units.ErrEmpty}
			}
			text := strings.TrimSpace(v.Text)
			for _, e := range values {
				if strings.EqualFold(text, string(e)) || strings.EqualFold(text, labelOf(e)) {
					*get(t) = e
					return nil
				}
			}
			return &EnumResolutionError{Text: v.Text, Allowed: options}
		},
	}
}
