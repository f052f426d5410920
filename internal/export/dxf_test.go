package export

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/AirframeDesk/internal/form"
	"github.com/piwi3910/AirframeDesk/internal/importer"
	"github.com/piwi3910/AirframeDesk/internal/model"
	"github.com/piwi3910/AirframeDesk/internal/units"
)

func TestExportDXF_Entities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topview.dxf")
	if err := ExportDXF(path, buildTestAircraft()); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		t.Fatalf("cannot read back DXF: %v", err)
	}
	lines, circles := 0, 0
	for _, ent := range drawing.Entities() {
		switch ent.(type) {
		case *entity.Line:
			lines++
		case *entity.Circle:
			circles++
		}
	}
	// Fuselage rectangle plus two wing halves of 6 edges each.
	if lines != 4+12 {
		t.Errorf("expected 16 lines, got %d", lines)
	}
	// Two engines, nose and main gear.
	if circles != 4 {
		t.Errorf("expected 4 circles, got %d", circles)
	}
}

func TestExportDXF_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.dxf")
	if err := ExportDXF(path, nil); err != ErrNoAircraft {
		t.Errorf("expected ErrNoAircraft, got %v", err)
	}
	if err := ExportDXF(path, model.NewAircraft("Blank")); err == nil {
		t.Error("expected error for an aircraft without geometry")
	}
}

func TestExportDXF_PlanformRoundTrip(t *testing.T) {
	ac := model.NewAircraft("Wing only")
	ac.Wing = &model.LiftingSurface{
		Position: pos(0, 0, 0),
		Panels: []model.Panel{
			{Span: m(5), SweepLE: deg(10), Dihedral: deg(0), ChordRoot: m(6), ChordTip: m(4)},
			{Span: m(10), SweepLE: deg(25), Dihedral: deg(0), ChordRoot: m(4), ChordTip: m(1.5)},
		},
	}
	path := filepath.Join(t.TempDir(), "wing.dxf")
	if err := ExportDXF(path, ac); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	panels := form.Find(form.DefaultTemplates(), form.GroupWingPanels)
	result := importer.ImportPlanformDXF(path, panels, units.Meter)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(result.Rows))
	}

	for i, p := range ac.Wing.Panels {
		row := result.Rows[i]
		checks := map[string]float64{
			"span":       p.Span.Value,
			"sweep-le":   p.SweepLE.Value,
			"chord-root": p.ChordRoot.Value,
			"chord-tip":  p.ChordTip.Value,
		}
		for attr, want := range checks {
			got, err := strconv.ParseFloat(row[attr].Text, 64)
			if err != nil {
				t.Fatalf("panel %d %s: %v", i, attr, err)
			}
			if diff := got - want; diff > 1e-3 || diff < -1e-3 {
				t.Errorf("panel %d %s: expected %v, got %v", i, attr, want, got)
			}
		}
	}
}
