package project

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/AirframeDesk/internal/model"
	"github.com/piwi3910/AirframeDesk/internal/units"
)

func TestSaveAndLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	ac := model.NewAircraft("Baseline")
	ac.Engines = []model.Engine{{
		ID:           model.ComponentID("Engine", 0, ac.ID),
		Type:         model.EngineTurbofan,
		StaticThrust: units.New(120, units.Newton).Scale(1000),
	}}

	store := model.NewTemplateStore()
	store.Add(model.NewAircraftTemplate("Twinjet", "Two wing-mounted turbofans", ac))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}

	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	if loaded.Templates[0].Name != "Twinjet" {
		t.Errorf("expected 'Twinjet', got %q", loaded.Templates[0].Name)
	}
	engines := loaded.Templates[0].Aircraft.Engines
	if len(engines) != 1 {
		t.Fatalf("expected 1 engine, got %d", len(engines))
	}
	if engines[0].StaticThrust != units.New(120000, units.Newton) {
		t.Errorf("expected 120000 N, got %v", engines[0].StaticThrust)
	}
}

func TestLoadTemplates_NotFound(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.json")

	store, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(store.Templates) != 0 {
		t.Errorf("expected empty store, got %d templates", len(store.Templates))
	}
}

func TestSaveAndLoadTemplates_Multiple(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	store := model.NewTemplateStore()
	store.Add(model.NewAircraftTemplate("T1", "First", nil))
	store.Add(model.NewAircraftTemplate("T2", "Second", nil))
	store.Add(model.NewAircraftTemplate("T3", "Third", nil))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}
	if len(loaded.Templates) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(loaded.Templates))
	}
}
