// Package ui is the AirframeDesk desktop front end: the input form, the
// top view preview and the file, import and export actions around them.
package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/AirframeDesk/internal/export"
	"github.com/piwi3910/AirframeDesk/internal/form"
	"github.com/piwi3910/AirframeDesk/internal/importer"
	"github.com/piwi3910/AirframeDesk/internal/log"
	"github.com/piwi3910/AirframeDesk/internal/model"
	"github.com/piwi3910/AirframeDesk/internal/project"
	"github.com/piwi3910/AirframeDesk/internal/ui/widgets"
	"github.com/piwi3910/AirframeDesk/internal/units"
)

// App holds all application state and UI references.
type App struct {
	app    fyne.App
	window fyne.Window
	config model.AppConfig
	logger *log.Logger

	templates []form.Template
	store     model.TemplateStore

	// aircraft is the committed model; the form may hold edits not yet
	// collected into it.
	aircraft *model.Aircraft
	filePath string
	form     *FormView

	// sessionPath is where the committed aircraft is kept between runs.
	sessionPath string

	// UI references for dynamic updates
	tabs    *container.AppTabs
	preview *fyne.Container
	status  *widget.Label
}

// NewApp creates the application state with a new aircraft. A nil logger
// is valid.
func NewApp(application fyne.App, window fyne.Window, config model.AppConfig, logger *log.Logger) *App {
	a := &App{
		app:         application,
		window:      window,
		config:      config,
		logger:      logger,
		templates:   form.DefaultTemplates(),
		sessionPath: project.DefaultSessionPath(),
		status:      widget.NewLabel(""),
		preview:     container.NewStack(),
	}
	a.form = NewFormView(a.templates)
	a.form.OnAddInstance = func(group string) {
		a.logger.Debug("instance added", "group", group, "instances", a.form.Instances(group))
	}

	store, err := project.LoadDefaultTemplates()
	if err != nil {
		a.logger.Warn("cannot load aircraft templates", "error", err)
	}
	a.store = store

	a.loadAircraft(a.newAircraft("New Aircraft"), "")
	return a
}

// options returns the pass options derived from the config.
func (a *App) options() []form.Option {
	return []form.Option{
		form.WithDisplayUnits(a.config.DisplayUnits),
		form.WithLogger(a.logger),
	}
}

// newAircraft creates an aircraft carrying the configured defaults.
func (a *App) newAircraft(name string) *model.Aircraft {
	ac := model.NewAircraft(name)
	a.config.ApplyToAircraft(ac)
	return ac
}

// loadAircraft replaces the whole model and rebuilds the form from scratch.
func (a *App) loadAircraft(ac *model.Aircraft, path string) {
	a.aircraft = ac
	a.filePath = path
	a.reload()
	a.logger.Info("aircraft loaded", "name", ac.Name, "id", ac.ID, "path", path)
}

// reload drops every instance and projects the committed aircraft.
func (a *App) reload() {
	a.form.Reset()
	a.project()
}

// project writes the committed aircraft into the form, growing groups
// whose collections outnumber their instances.
func (a *App) project() {
	a.form.Apply(form.Project(a.aircraft, a.templates, a.form, a.options()...))
	a.refreshPreview()
	a.refreshTitle()
}

// commit runs the collection pass over the form. Templates committed before
// an error stay committed; the returned error joins every failure.
func (a *App) commit() (form.Result, error) {
	res, err := form.Collect(a.form.Snapshot(), a.templates, a.aircraft, a.options()...)
	if len(res.Committed) > 0 {
		a.aircraft = res.Aircraft
		a.project()
	}
	a.logger.Info("collection done", "committed", len(res.Committed), "warnings", len(res.Warnings), "error", err)
	return res, err
}

// applyImport writes imported rows after the instances already shown. The
// rows stay uncommitted until the next update.
func (a *App) applyImport(result importer.ImportResult) int {
	if len(result.Rows) == 0 {
		return 0
	}
	a.form.Apply(result.Assignments(a.form.Instances(result.Group)))
	return len(result.Rows)
}

// ─── Menus ─────────────────────────────────────────────────

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	recent := fyne.NewMenuItem("Open Recent", nil)
	recent.ChildMenu = a.recentMenu()

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Aircraft", func() {
			a.loadAircraft(a.newAircraft("New Aircraft"), "")
		}),
		fyne.NewMenuItem("New from Template...", a.showNewFromTemplateDialog),
		fyne.NewMenuItem("Open Aircraft...", a.openAircraft),
		recent,
		fyne.NewMenuItem("Save Aircraft...", a.saveAircraft),
		fyne.NewMenuItem("Save as Template...", a.showSaveTemplateDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Rows from CSV...", func() { a.importRows("CSV", importer.ImportCSV) }),
		fyne.NewMenuItem("Import Rows from Excel...", func() { a.importRows("Excel", importer.ImportExcel) }),
		fyne.NewMenuItem("Import Planform from DXF...", a.importPlanform),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Data Sheet (PDF)...", a.exportPDF),
		fyne.NewMenuItem("Export Component Tags (PDF)...", a.exportTags),
		fyne.NewMenuItem("Export Top View (DXF)...", a.exportDXF),
		fyne.NewMenuItem("Export Workbook (Excel)...", a.exportWorkbook),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Discard Form Edits", func() {
			a.reload()
			a.setStatus("Form reloaded from the committed aircraft.")
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Update Aircraft", a.runUpdate),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItem("Import / Export Data...", a.showImportExportDialog),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) recentMenu() *fyne.Menu {
	var items []*fyne.MenuItem
	for _, p := range a.config.RecentAircraft {
		path := p
		items = append(items, fyne.NewMenuItem(filepath.Base(path), func() {
			a.openAircraftPath(path)
		}))
	}
	if len(items) == 0 {
		none := fyne.NewMenuItem("(none)", nil)
		none.Disabled = true
		items = append(items, none)
	}
	return fyne.NewMenu("", items...)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About AirframeDesk",
		"AirframeDesk: Aircraft Design Data Entry\n\n"+
			"Enter an aircraft component by component, commit it\n"+
			"with Update and export data sheets and drawings.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	var items []*container.TabItem
	for _, p := range pages {
		items = append(items, container.NewTabItem(p.Title, a.form.page(p)))
	}
	items = append(items, container.NewTabItem("Top View", a.preview))

	a.tabs = container.NewAppTabs(items...)
	a.tabs.SetTabLocation(container.TabLocationLeading)

	update := newButtonWithTooltip("Update", theme.ConfirmIcon(),
		"Commit the form into the aircraft", a.runUpdate)
	update.Importance = widget.HighImportance
	discard := newIconButtonWithTooltip(theme.ViewRefreshIcon(), "Discard form edits", func() {
		a.reload()
		a.setStatus("Form reloaded from the committed aircraft.")
	})

	toolbar := container.NewBorder(nil, nil, container.NewHBox(update, discard), nil, a.status)
	return container.NewBorder(toolbar, nil, nil, nil, a.tabs)
}

func (a *App) refreshPreview() {
	a.preview.RemoveAll()
	a.preview.Add(widgets.RenderTopView(a.aircraft))
	a.preview.Refresh()
}

func (a *App) refreshTitle() {
	if a.window == nil {
		return
	}
	title := "AirframeDesk - " + a.aircraft.Name
	if a.filePath != "" {
		title += " (" + filepath.Base(a.filePath) + ")"
	}
	a.window.SetTitle(title)
}

func (a *App) setStatus(msg string) {
	a.status.SetText(msg)
}

// ─── Actions ───────────────────────────────────────────────

// runUpdate commits the form and reports the outcome. Cardinality warnings
// are shown once the form has settled.
func (a *App) runUpdate() {
	res, err := a.commit()
	if err != nil {
		dialog.ShowError(err, a.window)
	}
	a.setStatus(fmt.Sprintf("Updated %d of %d components.", len(res.Committed), len(a.templates)))
	a.showWarnings(res.Warnings)
}

func (a *App) showWarnings(warnings []form.Warning) {
	if len(warnings) == 0 {
		return
	}
	fyne.Do(func() {
		for _, w := range warnings {
			dialog.ShowInformation(w.DialogTitle(), w.Message(), a.window)
		}
	})
}

func (a *App) saveAircraft() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SaveAircraft(path, a.aircraft); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.filePath = path
		a.rememberRecent(path)
		a.refreshTitle()
		a.setStatus("Saved " + path)
	}, a.window)
	d.SetFileName(fileStem(a.aircraft.Name) + project.AircraftExt)
	d.Show()
}

func (a *App) openAircraft() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.openAircraftPath(reader.URI().Path())
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json", ".yaml", ".yml"}))
	d.Show()
}

func (a *App) openAircraftPath(path string) {
	ac, err := project.LoadAircraft(path)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.loadAircraft(ac, path)
	a.rememberRecent(path)
}

func (a *App) rememberRecent(path string) {
	a.config.AddRecent(path)
	if err := a.saveConfig(); err != nil {
		a.logger.Warn("cannot save recent aircraft list", "error", err)
	}
	a.SetupMenus()
}

// fileStem turns an aircraft name into a file name.
func fileStem(name string) string {
	stem := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`/\:*?"<>| `, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if stem == "" {
		return "aircraft"
	}
	return stem
}

// ─── Import Functions ──────────────────────────────────────

// repeatedTemplates returns the repeated groups accepted by keep.
func (a *App) repeatedTemplates(keep func(form.Template) bool) []form.Template {
	var out []form.Template
	for _, t := range a.templates {
		if t.Kind() == form.Repeated && (keep == nil || keep(t)) {
			out = append(out, t)
		}
	}
	return out
}

// chooseGroup asks which group to import into.
func (a *App) chooseGroup(title string, candidates []form.Template, extra []*widget.FormItem, then func(form.Template)) {
	titles := make([]string, len(candidates))
	for i, t := range candidates {
		titles[i] = t.Title()
	}
	sel := widget.NewSelect(titles, nil)
	sel.SetSelectedIndex(0)
	items := append([]*widget.FormItem{widget.NewFormItem("Group", sel)}, extra...)
	dialog.ShowForm(title, "Choose File...", "Cancel", items, func(ok bool) {
		if !ok || sel.SelectedIndex() < 0 {
			return
		}
		then(candidates[sel.SelectedIndex()])
	}, a.window)
}

func (a *App) importRows(kind string, read func(string, importer.Group) importer.ImportResult) {
	a.chooseGroup("Import Rows from "+kind, a.repeatedTemplates(nil), nil, func(t form.Template) {
		d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()
			a.handleImportResult(t, read(reader.URI().Path(), t))
		}, a.window)
		if kind == "Excel" {
			d.SetFilter(storage.NewExtensionFileFilter([]string{".xlsx", ".xlsm"}))
		} else {
			d.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".txt"}))
		}
		d.Show()
	})
}

func (a *App) importPlanform() {
	panels := a.repeatedTemplates(func(t form.Template) bool {
		return strings.HasSuffix(t.Name(), "-panels")
	})
	unitSel := widget.NewSelect(lengthUnits(), nil)
	unitSel.SetSelected("m")
	extra := []*widget.FormItem{widget.NewFormItem("Drawing unit", unitSel)}

	a.chooseGroup("Import Planform from DXF", panels, extra, func(t form.Template) {
		u, ok := lengthUnit(unitSel.Selected)
		if !ok {
			dialog.ShowError(fmt.Errorf("unknown drawing unit %q", unitSel.Selected), a.window)
			return
		}
		d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()
			a.handleImportResult(t, importer.ImportPlanformDXF(reader.URI().Path(), t, u))
		}, a.window)
		d.SetFilter(storage.NewExtensionFileFilter([]string{".dxf"}))
		d.Show()
	})
}

// lengthUnits lists the drawing units a planform can be read in.
func lengthUnits() []string {
	return units.Labels(units.Length)
}

func lengthUnit(label string) (units.Unit, bool) {
	return units.Lookup(label, units.Length)
}

func (a *App) handleImportResult(t form.Template, result importer.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(errors.New(errorMsg), a.window)
	}
	if len(result.Warnings) > 0 {
		a.logger.Warn("import warnings", "group", result.Group, "warnings", result.Warnings)
	}

	n := a.applyImport(result)
	if n == 0 {
		return
	}
	msg := fmt.Sprintf("Imported %d %s rows into the form.\nClick Update to commit them.", n, t.Title())
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

// ─── Export Functions ──────────────────────────────────────

// exportTo asks for a destination and runs write on it.
func (a *App) exportTo(what, ext string, write func(path string) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := write(path); err != nil {
			a.logger.Error("export failed", "what", what, "path", path, "error", err)
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("%s saved to %s", what, path), a.window)
	}, a.window)
	d.SetFileName(fileStem(a.aircraft.Name) + ext)
	d.Show()
}

func (a *App) exportPDF() {
	a.exportTo("Data sheet", ".pdf", func(path string) error {
		return export.ExportPDF(path, a.aircraft, a.templates, a.config.DisplayUnits)
	})
}

func (a *App) exportTags() {
	a.exportTo("Component tags", "-tags.pdf", func(path string) error {
		return export.ExportTags(path, a.aircraft)
	})
}

func (a *App) exportDXF() {
	a.exportTo("Top view", ".dxf", func(path string) error {
		return export.ExportDXF(path, a.aircraft)
	})
}

func (a *App) exportWorkbook() {
	a.exportTo("Workbook", ".xlsx", func(path string) error {
		return export.ExportWorkbook(path, a.aircraft, a.templates, a.config.DisplayUnits)
	})
}

// ─── Templates ─────────────────────────────────────────────

func (a *App) showSaveTemplateDialog() {
	name := widget.NewEntry()
	name.SetText(a.aircraft.Name)
	desc := widget.NewMultiLineEntry()
	dialog.ShowForm("Save as Template", "Save", "Cancel", []*widget.FormItem{
		widget.NewFormItem("Name", name),
		widget.NewFormItem("Description", desc),
	}, func(ok bool) {
		if !ok {
			return
		}
		if err := a.saveTemplate(name.Text, desc.Text); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
}

// saveTemplate stores the committed aircraft as a reusable template.
func (a *App) saveTemplate(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("template name is required")
	}
	a.store.Add(model.NewAircraftTemplate(name, description, a.aircraft))
	if err := project.SaveDefaultTemplates(a.store); err != nil {
		return fmt.Errorf("failed to save templates: %w", err)
	}
	a.setStatus("Saved template " + name)
	return nil
}

func (a *App) showNewFromTemplateDialog() {
	if len(a.store.Templates) == 0 {
		dialog.ShowInformation("No Templates", "Save an aircraft as template first.", a.window)
		return
	}
	sel := widget.NewSelect(a.store.Names(), nil)
	sel.SetSelectedIndex(0)
	name := widget.NewEntry()
	name.SetText("New Aircraft")
	dialog.ShowForm("New from Template", "Create", "Cancel", []*widget.FormItem{
		widget.NewFormItem("Template", sel),
		widget.NewFormItem("Aircraft name", name),
	}, func(ok bool) {
		if !ok || sel.SelectedIndex() < 0 {
			return
		}
		tmpl := a.store.Templates[sel.SelectedIndex()]
		a.loadAircraft(tmpl.ToAircraft(name.Text), "")
	}, a.window)
}

// ─── Session ───────────────────────────────────────────────

// StoreSession keeps the committed aircraft for the next run.
func (a *App) StoreSession() error {
	if err := project.StoreSession(a.sessionPath, project.NewSession(a.filePath, a.aircraft)); err != nil {
		a.logger.Warn("cannot store session", "path", a.sessionPath, "error", err)
		return err
	}
	return nil
}

// RestoreSession reloads the aircraft kept by StoreSession.
func (a *App) RestoreSession() error {
	s, err := project.RestoreSession(a.sessionPath)
	if err != nil {
		return err
	}
	a.loadAircraft(s.Aircraft, s.FilePath)
	a.logger.Info("session restored", "name", s.Aircraft.Name, "saved_at", s.SavedAt)
	return nil
}
