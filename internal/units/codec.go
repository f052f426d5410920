package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel is the placeholder text shown in a field whose value is not set.
const Sentinel = "NOT INITIALIZED"

// ErrEmpty is the reason carried by a ParseError for blank or sentinel text.
var ErrEmpty = errors.New("value is empty")

// ParseError reports text that does not denote a finite real number.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrEmpty) {
		return "value is not set"
	}
	return fmt.Sprintf("%q is not a number", e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnitMismatchError reports a unit label that is not admissible for the
// dimension of the field.
type UnitMismatchError struct {
	Label     string
	Dimension Dimension
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("unit %q is not a valid %s unit (expected one of %s)",
		e.Label, e.Dimension, strings.Join(Labels(e.Dimension), ", "))
}

// IsBlank reports whether text is empty or the sentinel placeholder.
func IsBlank(text string) bool {
	t := strings.TrimSpace(text)
	return t == "" || t == Sentinel
}

// ParseNumber parses a plain finite real number.
func ParseNumber(text string) (float64, error) {
	if IsBlank(text) {
		return 0, &ParseError{Text: text, Err: ErrEmpty}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &ParseError{Text: text, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Text: text, Err: errors.New("value is not finite")}
	}
	return v, nil
}

// Parse resolves a field's text and unit-selector label into a quantity of
// dimension d.
func Parse(text, label string, d Dimension) (Quantity, error) {
	v, err := ParseNumber(text)
	if err != nil {
		return Quantity{}, err
	}
	u, ok := Lookup(label, d)
	if !ok {
		return Quantity{}, &UnitMismatchError{Label: label, Dimension: d}
	}
	return Quantity{Value: v, Unit: u}, nil
}

// FormatNumber renders v with the shortest representation that parses back
// to the same float64.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Format renders q under its own stored unit.
func Format(q Quantity) (text, label string) {
	return FormatNumber(q.Value), q.Unit.Symbol()
}

// FormatIn renders q converted to preferred. A zero preferred unit keeps
// the stored unit.
func FormatIn(q Quantity, preferred Unit) (text, label string, err error) {
	if preferred == 0 {
		text, label = Format(q)
		return text, label, nil
	}
	conv, err := q.To(preferred)
	if err != nil {
		return "", "", err
	}
	text, label = Format(conv)
	return text, label, nil
}
