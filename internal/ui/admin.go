package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/AirframeDesk/internal/model"
	"github.com/piwi3910/AirframeDesk/internal/project"
	"github.com/piwi3910/AirframeDesk/internal/units"
)

// displayUnitChoices maps the settings labels to unit systems.
var displayUnitChoices = []struct {
	Label  string
	System units.System
}{
	{"As stored", units.AsStored},
	{"SI", units.SI},
	{"Imperial", units.Imperial},
}

func displayUnitLabel(s units.System) string {
	for _, c := range displayUnitChoices {
		if c.System == s {
			return c.Label
		}
	}
	return displayUnitChoices[0].Label
}

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	var unitLabels []string
	for _, c := range displayUnitChoices {
		unitLabels = append(unitLabels, c.Label)
	}
	unitSelect := widget.NewSelect(unitLabels, func(selected string) {
		for _, c := range displayUnitChoices {
			if c.Label == selected {
				cfg.DisplayUnits = c.System
			}
		}
	})
	unitSelect.SetSelected(displayUnitLabel(cfg.DisplayUnits))

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	levelSelect := widget.NewSelect([]string{"debug", "info", "warn", "error"}, func(selected string) {
		cfg.LogLevel = selected
	})
	levelSelect.SetSelected(cfg.LogLevel)

	logDir := widget.NewEntry()
	logDir.SetPlaceHolder("user config directory")
	logDir.SetText(cfg.LogDir)
	logDir.OnChanged = func(text string) { cfg.LogDir = text }

	var typeNames []string
	for _, t := range model.AircraftType("").Values() {
		typeNames = append(typeNames, string(t))
	}
	typeSelect := widget.NewSelect(typeNames, func(selected string) {
		cfg.DefaultAircraftType = model.AircraftType(selected)
	})
	typeSelect.SetSelected(string(cfg.DefaultAircraftType))

	var regNames []string
	for _, r := range model.Regulations("").Values() {
		regNames = append(regNames, r.Label())
	}
	regSelect := widget.NewSelect(regNames, func(selected string) {
		for _, r := range model.Regulations("").Values() {
			if r.Label() == selected {
				cfg.DefaultRegulations = r
			}
		}
	})
	regSelect.SetSelected(cfg.DefaultRegulations.Label())

	formItems := []*widget.FormItem{
		widget.NewFormItem("Display Units", unitSelect),
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Log Level (restart)", levelSelect),
		widget.NewFormItem("Log Directory (restart)", logDir),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Aircraft Type", typeSelect),
		widget.NewFormItem("Default Regulations", regSelect),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			if err := a.applyConfig(cfg); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 420))
	d.Show()
}

// applyConfig makes cfg current. A change of display units re-projects the
// committed aircraft, which discards uncommitted form edits.
func (a *App) applyConfig(cfg model.AppConfig) error {
	unitsChanged := cfg.DisplayUnits != a.config.DisplayUnits
	a.config = cfg
	a.ApplyTheme()
	if unitsChanged {
		a.project()
	}
	return a.saveConfig()
}

// showImportExportDialog displays the import/export data dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportAllData(path, a.config, a.store); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("airframedesk-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current settings and aircraft templates.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					backup, err := project.ImportAllData(reader.URI().Path())
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.store = backup.Templates
					if err := project.SaveDefaultTemplates(a.store); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported templates: %w", err), a.window)
						return
					}
					if err := a.applyConfig(backup.Config); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					a.SetupMenus()
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export all application data (settings, aircraft templates) to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// ApplyTheme installs the configured theme.
func (a *App) ApplyTheme() {
	if a.app != nil {
		a.app.Settings().SetTheme(themeFor(a.config.Theme))
	}
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
