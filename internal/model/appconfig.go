package model

import "github.com/piwi3910/AirframeDesk/internal/units"

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Display preferences applied when a model is projected onto the form
	DisplayUnits units.System `json:"display_units"` // "", "SI" or "IMPERIAL"

	// Logging
	LogLevel string `json:"log_level"` // "debug", "info", "warn", "error"
	LogDir   string `json:"log_dir"`   // empty = user config dir

	// Application preferences
	DefaultAircraftType AircraftType `json:"default_aircraft_type"`
	DefaultRegulations  Regulations  `json:"default_regulations"`
	RecentAircraft      []string     `json:"recent_aircraft"`
	Theme               string       `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DisplayUnits:        units.AsStored,
		LogLevel:            "info",
		DefaultAircraftType: AircraftJet,
		DefaultRegulations:  FAR25,
		RecentAircraft:      []string{},
		Theme:               "system",
	}
}

// ApplyToAircraft copies the defaults from AppConfig into a new aircraft.
func (c AppConfig) ApplyToAircraft(a *Aircraft) {
	if c.DefaultAircraftType != "" {
		a.Type = c.DefaultAircraftType
	}
	if c.DefaultRegulations != "" {
		a.Regulations = c.DefaultRegulations
	}
}

// maxRecent bounds the recent aircraft list.
const maxRecent = 10

// AddRecent moves path to the front of the recent aircraft list.
func (c *AppConfig) AddRecent(path string) {
	list := []string{path}
	for _, p := range c.RecentAircraft {
		if p != path {
			list = append(list, p)
		}
	}
	if len(list) > maxRecent {
		list = list[:maxRecent]
	}
	c.RecentAircraft = list
}
