package model

import (
	"errors"
	"math"

	"github.com/piwi3910/AirframeDesk/internal/units"
)

// ErrNoWingPanel is returned when a derivation needs the wing root panel.
var ErrNoWingPanel = errors.New("wing has no panels")

// DeriveFuelTank places the fuel tank at the wing main spar: X is the wing
// apex X plus the root chord of the first panel times the main spar
// fraction, Y and Z are the wing apex ones. The result is expressed in the
// unit of the wing apex X.
func DeriveFuelTank(wing *LiftingSurface) (*FuelTank, error) {
	if wing == nil || len(wing.Panels) == 0 {
		return nil, ErrNoWingPanel
	}
	offset := wing.Panels[0].ChordRoot.Scale(wing.MainSparPosition)
	x, err := wing.Position.X.Add(offset)
	if err != nil {
		return nil, err
	}
	return &FuelTank{Position: Position{X: x, Y: wing.Position.Y, Z: wing.Position.Z}}, nil
}

// Panel returns the single panel spanning one semi-wing of the equivalent
// trapezoidal planform.
func (e *EquivalentWing) Panel(id string) Panel {
	area := e.Area.SI()
	span := math.Sqrt(e.AspectRatio * area)
	var root float64
	if span > 0 {
		root = 2 * area / (span * (1 + e.TaperRatio))
	}
	return Panel{
		ID:          id,
		Span:        units.New(span/2, units.Meter),
		SweepLE:     e.SweepLE,
		Dihedral:    e.Dihedral,
		ChordRoot:   units.New(root, units.Meter),
		ChordTip:    units.New(e.TaperRatio*root, units.Meter),
		TwistRoot:   units.New(0, units.Degree),
		TwistTip:    e.TwistTip,
		AirfoilRoot: e.AirfoilRoot,
		AirfoilTip:  e.AirfoilTip,
	}
}
