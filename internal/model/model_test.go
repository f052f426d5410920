package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/AirframeDesk/internal/units"
)

func m(v float64) units.Quantity   { return units.New(v, units.Meter) }
func deg(v float64) units.Quantity { return units.New(v, units.Degree) }

func sampleWing(acID string) *LiftingSurface {
	return &LiftingSurface{
		Position:         Position{X: m(12), Y: m(0), Z: m(-1.2)},
		RiggingAngle:     deg(2),
		MainSparPosition: 0.25,
		Panels: []Panel{
			{ID: ComponentID("Wing Panel", 0, acID), Span: m(6), ChordRoot: m(4), ChordTip: m(2.5)},
		},
		Flaps: []Flap{
			{ID: ComponentID("Wing Flap", 0, acID), Type: FlapSingleSlotted, InnerPosition: 0.1, OuterPosition: 0.35, MaxDeflection: deg(40)},
		},
	}
}

// ─── Aircraft Tests ───

func TestNewAircraft(t *testing.T) {
	ac := NewAircraft("ATR-72")
	assert.Len(t, ac.ID, 8)
	assert.Equal(t, "ATR-72", ac.Name)
	assert.Equal(t, AircraftJet, ac.Type)
	assert.Equal(t, FAR25, ac.Regulations)
	assert.Nil(t, ac.Wing)
}

func TestComponentID(t *testing.T) {
	assert.Equal(t, "Engine 1 - abc", ComponentID("Engine", 0, "abc"))
	assert.Equal(t, "Fuselage Spoiler 3 - abc", ComponentID("Fuselage Spoiler", 2, "abc"))
}

func TestClone_Independent(t *testing.T) {
	ac := NewAircraft("A")
	ac.Wing = sampleWing(ac.ID)
	ac.Engines = []Engine{{ID: "e1", Type: EngineTurbofan, StaticThrust: units.New(120000, units.Newton)}}

	cp := ac.Clone()
	require.NotSame(t, ac, cp)
	require.NotSame(t, ac.Wing, cp.Wing)
	assert.Equal(t, ac, cp)

	cp.Wing.Flaps[0].Type = FlapFowler
	cp.Engines = append(cp.Engines, Engine{ID: "e2"})
	assert.Equal(t, FlapSingleSlotted, ac.Wing.Flaps[0].Type)
	assert.Len(t, ac.Engines, 1)

	var nilAircraft *Aircraft
	assert.Nil(t, nilAircraft.Clone())
}

func TestAircraft_JSONRoundTrip(t *testing.T) {
	ac := NewAircraft("A")
	ac.Wing = sampleWing(ac.ID)
	ac.Systems = &Systems{PrimaryElectric: ElectricDC}

	data, err := json.Marshal(ac)
	require.NoError(t, err)

	var back Aircraft
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *ac, back)
}

// ─── Derivation Tests ───

func TestDeriveFuelTank(t *testing.T) {
	wing := sampleWing("x")
	tank, err := DeriveFuelTank(wing)
	require.NoError(t, err)
	assert.InDelta(t, 13.0, tank.Position.X.Value, 1e-12)
	assert.Equal(t, units.Meter, tank.Position.X.Unit)
	assert.Equal(t, wing.Position.Y, tank.Position.Y)
	assert.Equal(t, wing.Position.Z, tank.Position.Z)
}

func TestDeriveFuelTank_MixedUnits(t *testing.T) {
	wing := sampleWing("x")
	wing.Position.X = units.New(10, units.Foot)
	wing.Panels[0].ChordRoot = m(0.3048 * 4)
	wing.MainSparPosition = 0.5
	tank, err := DeriveFuelTank(wing)
	require.NoError(t, err)
	assert.Equal(t, units.Foot, tank.Position.X.Unit)
	assert.InDelta(t, 12.0, tank.Position.X.Value, 1e-9)
}

func TestDeriveFuelTank_NoPanels(t *testing.T) {
	_, err := DeriveFuelTank(&LiftingSurface{})
	assert.ErrorIs(t, err, ErrNoWingPanel)
	_, err = DeriveFuelTank(nil)
	assert.ErrorIs(t, err, ErrNoWingPanel)
}

func TestEquivalentWing_Panel(t *testing.T) {
	e := &EquivalentWing{
		Enabled:     true,
		Area:        units.New(100, units.SquareMeter),
		AspectRatio: 9,
		TaperRatio:  0.25,
		SweepLE:     deg(25),
		TwistTip:    deg(-2),
	}
	p := e.Panel("Equivalent wing")
	// b = sqrt(9*100) = 30, c_root = 200/(30*1.25)
	assert.InDelta(t, 15.0, p.Span.Value, 1e-12)
	assert.InDelta(t, 200.0/37.5, p.ChordRoot.Value, 1e-12)
	assert.InDelta(t, 0.25*200.0/37.5, p.ChordTip.Value, 1e-12)
	assert.Equal(t, deg(0), p.TwistRoot)
	assert.Equal(t, deg(-2), p.TwistTip)
	assert.Equal(t, deg(25), p.SweepLE)
}

func TestCabinConfiguration_TotalSeats(t *testing.T) {
	c := &CabinConfiguration{Classes: []SeatBlock{
		{Class: ClassBusiness, Rows: 3, Columns: 4},
		{Class: ClassEconomy, Rows: 20, Columns: 6},
	}}
	assert.Equal(t, 132, c.TotalSeats())
}

// ─── Enum Tests ───

func TestEnumValues(t *testing.T) {
	assert.Len(t, AircraftType("").Values(), 7)
	assert.Equal(t, []Regulations{FAR23, FAR25}, Regulations("").Values())
	assert.Equal(t, "FAR-25", FAR25.Label())
	assert.Len(t, WindshieldType("").Values(), 5)
	assert.Len(t, EngineMountingPosition("").Values(), 5)
	assert.Len(t, NacelleMountingPosition("").Values(), 4)
	assert.Len(t, LandingGearsMountingPosition("").Values(), 3)
	assert.Len(t, FlapType("").Values(), 6)
	assert.Len(t, EngineType("").Values(), 4)
	assert.Equal(t, FlapType("SINGLE_SLOTTED"), FlapType("").Values()[0])
}
