package units

import (
	"fmt"
	"math"
	"strings"
)

// Dimension identifies the physical dimension of a quantity.
type Dimension int

const (
	Length Dimension = iota + 1
	Angle
	Mass
	Force
	Power
	Area
)

// String returns the lower-case name of the dimension.
func (d Dimension) String() string {
	switch d {
	case Length:
		return "length"
	case Angle:
		return "angle"
	case Mass:
		return "mass"
	case Force:
		return "force"
	case Power:
		return "power"
	case Area:
		return "area"
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

// Unit is one admissible unit of measure. The zero value is not a valid unit.
type Unit int

const (
	Meter Unit = iota + 1
	Foot
	Degree
	Radian
	Kilogram
	Pound
	Newton
	PoundForce
	Watt
	Horsepower
	SquareMeter
	SquareFoot
)

type unitInfo struct {
	symbol   string
	dim      Dimension
	toSI     float64
	synonyms []string
}

// Conversion factors are exact where an exact definition exists.
var unitTable = map[Unit]unitInfo{
	Meter:       {symbol: "m", dim: Length, toSI: 1},
	Foot:        {symbol: "ft", dim: Length, toSI: 0.3048},
	Degree:      {symbol: "°", dim: Angle, toSI: math.Pi / 180, synonyms: []string{"deg", "\uFFFD"}},
	Radian:      {symbol: "rad", dim: Angle, toSI: 1},
	Kilogram:    {symbol: "kg", dim: Mass, toSI: 1},
	Pound:       {symbol: "lb", dim: Mass, toSI: 0.45359237},
	Newton:      {symbol: "N", dim: Force, toSI: 1},
	PoundForce:  {symbol: "lbf", dim: Force, toSI: 4.4482216152605},
	Watt:        {symbol: "W", dim: Power, toSI: 1},
	Horsepower:  {symbol: "hp", dim: Power, toSI: 745.69987158227022},
	SquareMeter: {symbol: "m²", dim: Area, toSI: 1, synonyms: []string{"m2", "m\uFFFD"}},
	SquareFoot:  {symbol: "ft²", dim: Area, toSI: 0.09290304, synonyms: []string{"ft2", "ft\uFFFD"}},
}

// admissible lists the selector options per dimension; the first entry is the default.
var admissible = map[Dimension][]Unit{
	Length: {Meter, Foot},
	Angle:  {Degree, Radian},
	Mass:   {Kilogram, Pound},
	Force:  {Newton, PoundForce},
	Power:  {Watt, Horsepower},
	Area:   {SquareMeter, SquareFoot},
}

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	_, ok := unitTable[u]
	return ok
}

// Symbol returns the canonical selector label of the unit.
func (u Unit) Symbol() string {
	if info, ok := unitTable[u]; ok {
		return info.symbol
	}
	return ""
}

// Dimension returns the dimension the unit measures.
func (u Unit) Dimension() Dimension {
	return unitTable[u].dim
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	if s := u.Symbol(); s != "" {
		return s
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

// MarshalText encodes the unit as its canonical symbol. An unset unit
// encodes as the empty string.
func (u Unit) MarshalText() ([]byte, error) {
	if u == 0 {
		return []byte{}, nil
	}
	if !u.Valid() {
		return nil, fmt.Errorf("cannot marshal unknown unit %d", int(u))
	}
	return []byte(u.Symbol()), nil
}

// UnmarshalText accepts any label recognised by Lookup in any dimension.
func (u *Unit) UnmarshalText(text []byte) error {
	label := string(text)
	if label == "" {
		*u = 0
		return nil
	}
	for _, d := range Dimensions() {
		if found, ok := Lookup(label, d); ok {
			*u = found
			return nil
		}
	}
	return fmt.Errorf("unknown unit label %q", label)
}

// Dimensions returns every supported dimension in declaration order.
func Dimensions() []Dimension {
	return []Dimension{Length, Angle, Mass, Force, Power, Area}
}

// Units returns the admissible units for d. The first element is the default.
func Units(d Dimension) []Unit {
	us := admissible[d]
	out := make([]Unit, len(us))
	copy(out, us)
	return out
}

// Default returns the first admissible unit of d.
func Default(d Dimension) Unit {
	if us := admissible[d]; len(us) > 0 {
		return us[0]
	}
	return 0
}

// Labels returns the selector labels for d in admissible order.
func Labels(d Dimension) []string {
	us := admissible[d]
	labels := make([]string, len(us))
	for i, u := range us {
		labels[i] = u.Symbol()
	}
	return labels
}

// Lookup resolves a selector label to a unit admissible for d. Matching is
// case-insensitive and recognises the legacy synonyms ("deg", the
// replacement-character degree glyph written by Latin-1 files, "m2" ...).
func Lookup(label string, d Dimension) (Unit, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, false
	}
	for _, u := range admissible[d] {
		info := unitTable[u]
		if strings.EqualFold(label, info.symbol) {
			return u, true
		}
		for _, syn := range info.synonyms {
			if strings.EqualFold(label, syn) {
				return u, true
			}
		}
	}
	return 0, false
}

// System is a preferred family of display units.
type System string

const (
	AsStored System = ""
	SI       System = "SI"
	Imperial System = "IMPERIAL"
)

// Preferred returns the unit of system s for dimension d, or 0 when s keeps
// stored units.
func (s System) Preferred(d Dimension) Unit {
	us := admissible[d]
	if len(us) < 2 {
		return 0
	}
	switch s {
	case SI:
		return us[0]
	case Imperial:
		if d == Angle {
			return Degree
		}
		return us[1]
	default:
		return 0
	}
}
