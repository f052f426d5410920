package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/AirframeDesk/internal/model"
	"github.com/piwi3910/AirframeDesk/internal/units"
)

func testAircraft() *model.Aircraft {
	ac := model.NewAircraft("Regional")
	ac.Type = model.AircraftTurboprop
	ac.Wing = &model.LiftingSurface{
		Position:         model.Position{X: units.New(11, units.Meter), Z: units.New(1.6, units.Meter)},
		RiggingAngle:     units.New(2, units.Degree),
		MainSparPosition: 0.25,
		Panels: []model.Panel{{
			ID:        model.ComponentID("Wing Panel", 0, ac.ID),
			Span:      units.New(13.5, units.Meter),
			ChordRoot: units.New(2.6, units.Meter),
			ChordTip:  units.New(1.3, units.Meter),
		}},
	}
	ac.Engines = []model.Engine{{
		ID:          model.ComponentID("Engine", 0, ac.ID),
		Type:        model.EngineTurboprop,
		StaticPower: units.New(2750, units.Horsepower),
	}}
	return ac
}

func TestSaveAndLoadAircraft(t *testing.T) {
	for _, name := range []string{"regional.aircraft.json", "regional.yaml", "regional.YML"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			ac := testAircraft()

			require.NoError(t, SaveAircraft(path, ac))
			loaded, err := LoadAircraft(path)
			require.NoError(t, err)
			assert.Equal(t, ac, loaded)
		})
	}
}

func TestSaveAircraft_YAMLUsesUnitSymbols(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ac.yaml")
	require.NoError(t, SaveAircraft(path, testAircraft()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "unit: hp")
	assert.Contains(t, string(data), "rigging_angle:")
}

func TestSaveAircraft_Errors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, SaveAircraft(filepath.Join(dir, "ac.json"), nil))
	assert.ErrorIs(t, SaveAircraft(filepath.Join(dir, "ac.xml"), testAircraft()), ErrUnsupportedFormat)
}

func TestLoadAircraft_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadAircraft(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = LoadAircraft(bad)
	assert.Error(t, err)

	noID := filepath.Join(dir, "noid.yaml")
	require.NoError(t, os.WriteFile(noID, []byte("name: nobody\n"), 0644))
	_, err = LoadAircraft(noID)
	assert.ErrorContains(t, err, "missing id")

	badUnit := filepath.Join(dir, "unit.json")
	require.NoError(t, os.WriteFile(badUnit, []byte(`{"id":"x","wing":{"rigging_angle":{"value":1,"unit":"parsec"}}}`), 0644))
	_, err = LoadAircraft(badUnit)
	assert.Error(t, err)
}
