// Package importer reads the rows of a repeated form group from CSV and Excel
// files. It supports automatic delimiter detection, flexible column mapping,
// case-insensitive header recognition and per-column unit selection.
//
// Imported rows are not committed: they become field values written into
// the form, and the usual collection pass commits them.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/AirframeDesk/internal/form"
	"github.com/piwi3910/AirframeDesk/internal/units"
)

// Group is the part of a form template the importer needs.
type Group interface {
	Name() string
	Title() string
	Fields() []form.Field
}

// Row holds the field values of one imported instance, keyed by attribute.
type Row map[string]form.Value

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Group    string
	Rows     []Row
	Errors   []string
	Warnings []string
}

// Assignments turns the imported rows into form assignments placed after
// the start instances already shown, growing the group by one instance per
// row.
func (r ImportResult) Assignments(start int) form.Assignments {
	a := form.Assignments{
		Fields: map[form.Key]form.Value{},
		Growth: map[string]int{},
	}
	if len(r.Rows) == 0 {
		return a
	}
	a.Growth[r.Group] = len(r.Rows)
	for i, row := range r.Rows {
		for attr, v := range row {
			a.Fields[form.Key{Group: r.Group, Instance: start + i, Attr: attr}] = v
		}
	}
	return a
}

// Column describes where an attribute is read from.
type Column struct {
	Index int
	// UnitIndex is the column holding the unit label, or -1.
	UnitIndex int
	// Unit is the unit given in the header, as in "Span [ft]".
	Unit string
}

// ColumnMapping maps attribute names to their columns.
type ColumnMapping map[string]Column

// headerUnit matches a unit embedded in a header cell: "Span [m]" or "Span (m)".
var headerUnit = regexp.MustCompile(`^(.*?)\s*[\[(]([^\])]+)[\])]\s*$`)

// normalizeHeader lowercases a header and folds separators to spaces.
func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// aliases returns the accepted header spellings of a field, normalized.
func aliases(f form.Field) []string {
	return []string{normalizeHeader(f.Name), normalizeHeader(f.Label)}
}

func matchField(cell string, fields []form.Field) (form.Field, bool) {
	n := normalizeHeader(cell)
	for _, f := range fields {
		for _, a := range aliases(f) {
			if n == a {
				return f, true
			}
		}
	}
	return form.Field{}, false
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping for fields.
// A column named "<attribute> unit" holds the unit of that attribute. It
// returns the mapping and true if a header was detected, or a positional
// mapping in field order and false if no header was found.
func DetectColumns(row []string, fields []form.Field) (ColumnMapping, bool) {
	mapping := ColumnMapping{}
	unitCols := map[string]int{}

	isHeader := false
	for i, cell := range row {
		text := strings.TrimSpace(cell)
		if text == "" {
			continue
		}
		if f, ok := matchField(text, fields); ok {
			isHeader = true
			if _, dup := mapping[f.Name]; !dup {
				mapping[f.Name] = Column{Index: i, UnitIndex: -1}
			}
			continue
		}
		if m := headerUnit.FindStringSubmatch(text); m != nil {
			if f, ok := matchField(m[1], fields); ok {
				isHeader = true
				if _, dup := mapping[f.Name]; !dup {
					mapping[f.Name] = Column{Index: i, UnitIndex: -1, Unit: strings.TrimSpace(m[2])}
				}
				continue
			}
		}
		n := normalizeHeader(text)
		if base, ok := strings.CutSuffix(n, " unit"); ok {
			if f, ok := matchField(base, fields); ok && f.Kind == form.KindQuantity {
				isHeader = true
				if _, dup := unitCols[f.Name]; !dup {
					unitCols[f.Name] = i
				}
			}
		}
	}

	if !isHeader {
		positional := ColumnMapping{}
		for i, f := range fields {
			positional[f.Name] = Column{Index: i, UnitIndex: -1}
		}
		return positional, false
	}

	for name, idx := range unitCols {
		if col, ok := mapping[name]; ok {
			col.UnitIndex = idx
			mapping[name] = col
		}
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseBool accepts the usual spellings of a flag.
func parseBool(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "x":
		return form.True, true
	case "false", "no", "n", "0", "", "-":
		return form.False, true
	}
	return "", false
}

// checkValue validates text against the kind of f so that bad rows are
// reported with their line number instead of failing a later update.
func checkValue(f form.Field, v form.Value) error {
	switch f.Kind {
	case form.KindQuantity:
		_, err := units.Parse(v.Text, v.Unit, f.Dimension)
		return err
	case form.KindNumber, form.KindInteger:
		n, err := units.ParseNumber(v.Text)
		if err != nil {
			return err
		}
		if f.Kind == form.KindInteger && n != float64(int64(n)) {
			return fmt.Errorf("%q is not a whole number", v.Text)
		}
	case form.KindChoice:
		for _, o := range f.Options {
			if strings.EqualFold(o, strings.TrimSpace(v.Text)) {
				return nil
			}
		}
		return &form.EnumResolutionError{Text: v.Text, Allowed: f.Options}
	}
	return nil
}

// parseRow extracts the field values of one row. It returns the row, any
// error message and any warning message.
func parseRow(row []string, fields []form.Field, mapping ColumnMapping, rowLabel string) (Row, string, string) {
	out := Row{}
	var missing, warnings []string
	for _, f := range fields {
		col, ok := mapping[f.Name]
		if !ok {
			if !f.Optional {
				missing = append(missing, f.Label)
			}
			continue
		}
		text := getCell(row, col.Index)
		if text == "" {
			if !f.Optional {
				missing = append(missing, f.Label)
			}
			continue
		}
		v := form.Value{Text: text}
		switch f.Kind {
		case form.KindQuantity:
			v.Unit = getCell(row, col.UnitIndex)
			if v.Unit == "" {
				v.Unit = col.Unit
			}
			if v.Unit == "" {
				v.Unit = units.Default(f.Dimension).Symbol()
			}
		case form.KindBool:
			b, ok := parseBool(text)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("%s: Unknown value '%s' for %s, defaulting to %s", rowLabel, text, f.Label, form.False))
				b = form.False
			}
			v.Text = b
		}
		if err := checkValue(f, v); err != nil {
			return nil, fmt.Sprintf("%s: Invalid %s: %v", rowLabel, f.Label, err), ""
		}
		out[f.Name] = v
	}
	if len(missing) > 0 {
		return nil, fmt.Sprintf("%s: Missing %s", rowLabel, strings.Join(missing, ", ")), ""
	}
	return out, "", strings.Join(warnings, "; ")
}

// ImportCSV imports the rows of group g from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string, g Group) ImportResult {
	result := ImportResult{Group: g.Name()}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	return importFromRows(g, records, "Line", warnings)
}

// ImportCSVFromReader imports the rows of group g from a CSV reader with a
// specific delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune, g Group) ImportResult {
	records, err := readCSV(reader, delimiter)
	if err != nil {
		return ImportResult{Group: g.Name(), Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	return importFromRows(g, records, "Line", nil)
}

func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// ImportExcel imports the rows of group g from an Excel (.xlsx) file.
// It reads the sheet named after the group title or name when there is one,
// the first sheet otherwise.
func ImportExcel(path string, g Group) ImportResult {
	result := ImportResult{Group: g.Name()}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}
	sheet := sheets[0]
	for _, s := range sheets {
		if strings.EqualFold(s, g.Title()) || strings.EqualFold(s, g.Name()) || strings.EqualFold(s, SheetName(g.Title())) {
			sheet = s
			break
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}
	return importFromRows(g, rows, "Row", nil)
}

// SheetName returns title shortened to the 31 characters Excel allows.
func SheetName(title string) string {
	if r := []rune(title); len(r) > 31 {
		return string(r[:31])
	}
	return title
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row.
func importFromRows(g Group, rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Group:    g.Name(),
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	fields := g.Fields()
	mapping, hasHeader := DetectColumns(rows[0], fields)
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		for _, f := range fields {
			if _, ok := mapping[f.Name]; !ok && !f.Optional {
				missing = append(missing, f.Label)
			}
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		values, errMsg, warning := parseRow(row, fields, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		result.Rows = append(result.Rows, values)
	}

	if len(result.Rows) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
	}
	return result
}
