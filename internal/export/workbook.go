package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/AirframeDesk/internal/form"
	"github.com/piwi3910/AirframeDesk/internal/importer"
	"github.com/piwi3910/AirframeDesk/internal/model"
	"github.com/piwi3910/AirframeDesk/internal/units"
)

// summarySheet lists the scalar components of the aircraft.
const summarySheet = "Aircraft"

// ExportWorkbook writes ac to an Excel workbook. The first sheet lists the
// scalar components; every repeated group holding data gets its own sheet
// named after its title, with one column per attribute, a "<label> unit"
// column next to each quantity and one row per instance. Group sheets can be
// read back with the importer.
func ExportWorkbook(path string, ac *model.Aircraft, templates []form.Template, sys units.System) error {
	if ac == nil {
		return ErrNoAircraft
	}
	values := form.Project(ac, templates, nil, form.WithDisplayUnits(sys))

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := writeSummary(f, bold, templates, values); err != nil {
		return err
	}
	for _, t := range templates {
		if t.Kind() != form.Repeated || values.Growth[t.Name()] == 0 {
			continue
		}
		if err := writeGroup(f, bold, t, values); err != nil {
			return fmt.Errorf("failed to write %s: %w", t.Title(), err)
		}
	}

	return f.SaveAs(path)
}

// writeSummary fills the summary sheet with one row per scalar attribute.
func writeSummary(f *excelize.File, bold int, templates []form.Template, values form.Assignments) error {
	row := 1
	if err := f.SetSheetRow(summarySheet, "A1", &[]interface{}{"Component", "Attribute", "Value", "Unit"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "D1", bold); err != nil {
		return err
	}
	for _, t := range templates {
		if t.Kind() != form.Scalar {
			continue
		}
		for _, fl := range t.Fields() {
			v := values.Fields[form.Key{Group: t.Name(), Attr: fl.Name}]
			if v.Blank() {
				continue
			}
			row++
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(summarySheet, cell, &[]interface{}{t.Title(), fl.Label, cellValue(v.Text), v.Unit}); err != nil {
				return err
			}
		}
	}
	return f.SetColWidth(summarySheet, "A", "B", 32)
}

// writeGroup adds the sheet of a repeated group.
func writeGroup(f *excelize.File, bold int, t form.Template, values form.Assignments) error {
	sheet := importer.SheetName(t.Title())
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	var header []interface{}
	for _, fl := range t.Fields() {
		header = append(header, fl.Label)
		if fl.Kind == form.KindQuantity {
			header = append(header, fl.Label+" unit")
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return err
	}

	for i := 0; i < values.Growth[t.Name()]; i++ {
		var row []interface{}
		for _, fl := range t.Fields() {
			v := values.Fields[form.Key{Group: t.Name(), Instance: i, Attr: fl.Name}]
			if v.Blank() {
				row = append(row, "")
			} else {
				row = append(row, cellValue(v.Text))
			}
			if fl.Kind == form.KindQuantity {
				row = append(row, v.Unit)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// cellValue stores numbers as numbers so spreadsheets can compute with them.
func cellValue(text string) interface{} {
	if n, err := strconv.ParseFloat(text, 64); err == nil {
		return n
	}
	return text
}
