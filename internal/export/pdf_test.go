package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/AirframeDesk/internal/form"
	"github.com/piwi3910/AirframeDesk/internal/model"
	"github.com/piwi3910/AirframeDesk/internal/units"
)

func m(v float64) units.Quantity   { return units.New(v, units.Meter) }
func deg(v float64) units.Quantity { return units.New(v, units.Degree) }

func pos(x, y, z float64) model.Position {
	return model.Position{X: m(x), Y: m(y), Z: m(z)}
}

// buildTestAircraft creates a small twin turboprop for testing.
func buildTestAircraft() *model.Aircraft {
	ac := model.NewAircraft("Test Twin")
	ac.Type = model.AircraftTurboprop
	ac.Fuselage = &model.Fuselage{
		Position:     pos(0, 0, 0),
		Length:       m(27),
		SectionWidth: m(2.8),
	}
	ac.Wing = &model.LiftingSurface{
		FilePath:              "wing.xml",
		Position:              pos(11, 0, 1.6),
		RiggingAngle:          deg(2),
		MainSparPosition:      0.25,
		SecondarySparPosition: 0.55,
		Roughness:             units.New(5e-6, units.Meter),
		Panels: []model.Panel{
			{ID: "p1", Span: m(3.8), SweepLE: deg(0), Dihedral: deg(0), ChordRoot: m(2.6), ChordTip: m(2.6), TwistRoot: deg(0), TwistTip: deg(0)},
			{ID: "p2", Span: m(10.7), SweepLE: deg(3.1), Dihedral: deg(2.5), ChordRoot: m(2.6), ChordTip: m(1.3), TwistRoot: deg(0), TwistTip: deg(-2)},
		},
		Flaps: []model.Flap{
			{ID: "f1", Type: model.FlapSingleSlotted, InnerPosition: 0.1, OuterPosition: 0.35,
				InnerChordRatio: 0.3, OuterChordRatio: 0.3, MinDeflection: deg(0), MaxDeflection: deg(40)},
		},
	}
	tank, err := model.DeriveFuelTank(ac.Wing)
	if err != nil {
		panic(err)
	}
	ac.FuelTank = tank
	for i := 0; i < 2; i++ {
		ac.Engines = append(ac.Engines, model.Engine{
			ID:               fmt.Sprintf("e%d", i+1),
			Position:         pos(8.6, float64(8*i)-4, 1.3),
			TiltAngle:        deg(1),
			MountingPosition: model.EngineWing,
			Type:             model.EngineTurboprop,
		})
	}
	ac.LandingGears = &model.LandingGears{
		NosePosition:     pos(2.5, 0, -1),
		MainPosition:     pos(12.5, 0, -1),
		MountingPosition: model.GearNacelle,
	}
	return ac
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_output.pdf")

	err := ExportPDF(path, buildTestAircraft(), form.DefaultTemplates(), units.SI)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
	// Top view plus the data tables should be a reasonable size
	if len(data) < 2000 {
		t.Errorf("PDF file seems too small: %d bytes", len(data))
	}
}

func TestExportPDF_NilAircraft(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nil.pdf")
	if err := ExportPDF(path, nil, form.DefaultTemplates(), units.SI); !errors.Is(err, ErrNoAircraft) {
		t.Fatalf("expected ErrNoAircraft, got %v", err)
	}
}

func TestExportPDF_NoGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := ExportPDF(path, model.NewAircraft("Blank"), form.DefaultTemplates(), units.Imperial); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}

func TestExportPDF_ManyEngines(t *testing.T) {
	ac := buildTestAircraft()
	for i := 0; i < 10; i++ {
		ac.Engines = append(ac.Engines, model.Engine{
			ID:       fmt.Sprintf("x%d", i),
			Position: pos(9, float64(i), 1),
			Type:     model.EnginePiston,
		})
	}
	path := filepath.Join(t.TempDir(), "many.pdf")
	if err := ExportPDF(path, ac, form.DefaultTemplates(), units.SI); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
}

func TestInstanceCount(t *testing.T) {
	ac := buildTestAircraft()
	tpls := form.DefaultTemplates()
	values := form.Project(ac, tpls, nil)

	tests := []struct {
		group string
		want  int
	}{
		{form.GroupEngines, 2},
		{form.GroupWingPanels, 2},
		{form.GroupWingFlaps, 1},
		{form.GroupNacelles, 0},
		{form.GroupFuselage, 1},
		{form.GroupSystems, 0},
	}
	for _, tt := range tests {
		if got := instanceCount(form.Find(tpls, tt.group), values); got != tt.want {
			t.Errorf("%s: expected %d instances, got %d", tt.group, tt.want, got)
		}
	}
}

func TestCellText(t *testing.T) {
	tests := []struct {
		v    form.Value
		want string
	}{
		{form.Value{Text: form.Sentinel, Unit: "m"}, "-"},
		{form.Value{Text: ""}, "-"},
		{form.Value{Text: "2.5", Unit: "ft"}, "2.5 ft"},
		{form.Value{Text: "PLAIN"}, "PLAIN"},
	}
	for _, tt := range tests {
		if got := cellText(tt.v); got != tt.want {
			t.Errorf("cellText(%+v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
