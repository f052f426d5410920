package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AircraftTemplate is a reusable aircraft configuration. It keeps the
// committed components of an aircraft but none of its identity.
type AircraftTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	Aircraft    Aircraft `json:"aircraft"`
}

// NewAircraftTemplate creates a new template from a deep copy of ac.
func NewAircraftTemplate(name, description string, ac *Aircraft) AircraftTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	tmpl := AircraftTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if ac != nil {
		tmpl.Aircraft = *ac.Clone()
	}
	return tmpl
}

// ToAircraft creates a new aircraft from this template. The aircraft gets a
// fresh ID and every component ID is rewritten to reference it.
func (t AircraftTemplate) ToAircraft(name string) *Aircraft {
	src := t.Aircraft
	ac := src.Clone()
	ac.ID = uuid.New().String()[:8]
	ac.Name = name
	reassignIDs(ac, src.ID)
	return ac
}

// reassignIDs rewrites the " - <old>" suffix of every component ID.
func reassignIDs(ac *Aircraft, oldID string) {
	fix := func(id *string) {
		if oldID != "" && strings.HasSuffix(*id, " - "+oldID) {
			*id = strings.TrimSuffix(*id, oldID) + ac.ID
		}
	}
	surfaces := []*LiftingSurface{ac.Wing, ac.HTail, ac.VTail, ac.Canard}
	for _, s := range surfaces {
		if s == nil {
			continue
		}
		for i := range s.Panels {
			fix(&s.Panels[i].ID)
		}
		for i := range s.Flaps {
			fix(&s.Flaps[i].ID)
		}
		for i := range s.Slats {
			fix(&s.Slats[i].ID)
		}
		for i := range s.Ailerons {
			fix(&s.Ailerons[i].ID)
		}
		for i := range s.Spoilers {
			fix(&s.Spoilers[i].ID)
		}
	}
	if ac.Fuselage != nil {
		for i := range ac.Fuselage.Spoilers {
			fix(&ac.Fuselage.Spoilers[i].ID)
		}
	}
	for i := range ac.Engines {
		fix(&ac.Engines[i].ID)
	}
	for i := range ac.Nacelles {
		fix(&ac.Nacelles[i].ID)
	}
	if ac.CabinConfiguration != nil {
		for i := range ac.CabinConfiguration.Classes {
			fix(&ac.CabinConfiguration.Classes[i].ID)
		}
	}
}

// TemplateStore holds a collection of aircraft templates.
type TemplateStore struct {
	Templates []AircraftTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []AircraftTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t AircraftTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *AircraftTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *AircraftTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for UI dropdowns.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}
