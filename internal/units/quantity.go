package units

import (
	"fmt"
	"math"
)

// Quantity is a value expressed in a specific unit. The unit is kept as
// entered; conversion only happens on request.
type Quantity struct {
	Value float64 `json:"value" yaml:"value" msgpack:"value"`
	Unit  Unit    `json:"unit" yaml:"unit" msgpack:"unit"`
}

// New returns the quantity v expressed in u.
func New(v float64, u Unit) Quantity {
	return Quantity{Value: v, Unit: u}
}

// IsZero reports whether q carries no unit, i.e. was never set.
func (q Quantity) IsZero() bool {
	return q.Unit == 0
}

// Dimension returns the dimension of q's unit.
func (q Quantity) Dimension() Dimension {
	return q.Unit.Dimension()
}

// SI returns the value of q expressed in the SI unit of its dimension.
func (q Quantity) SI() float64 {
	return q.Value * unitTable[q.Unit].toSI
}

// To converts q into u. Both units must measure the same dimension.
func (q Quantity) To(u Unit) (Quantity, error) {
	if q.Unit == u {
		return q, nil
	}
	if !q.Unit.Valid() || !u.Valid() || q.Dimension() != u.Dimension() {
		return Quantity{}, &UnitMismatchError{Label: u.Symbol(), Dimension: q.Dimension()}
	}
	return Quantity{Value: q.SI() / unitTable[u].toSI, Unit: u}, nil
}

// Add returns q+o expressed in q's unit.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	conv, err := o.To(q.Unit)
	if err != nil {
		return Quantity{}, fmt.Errorf("failed to add %s to %s: %w", o, q, err)
	}
	return Quantity{Value: q.Value + conv.Value, Unit: q.Unit}, nil
}

// Scale multiplies the value of q by f, keeping the unit.
func (q Quantity) Scale(f float64) Quantity {
	return Quantity{Value: q.Value * f, Unit: q.Unit}
}

// ApproxEqual compares two quantities of the same dimension in SI with a
// relative tolerance.
func (q Quantity) ApproxEqual(o Quantity, tol float64) bool {
	if q.Dimension() != o.Dimension() {
		return false
	}
	a, b := q.SI(), o.SI()
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= tol*scale
}

// String renders q as "<value> <symbol>".
func (q Quantity) String() string {
	text, label := Format(q)
	if label == "" {
		return text
	}
	return text + " " + label
}
