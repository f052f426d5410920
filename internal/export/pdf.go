// Package export writes an aircraft to report and drawing formats: a PDF
// data sheet, QR-coded component tags, a DXF top view and an Excel
// workbook the importer can read back.
package export

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/AirframeDesk/internal/form"
	"github.com/piwi3910/AirframeDesk/internal/model"
	"github.com/piwi3910/AirframeDesk/internal/units"
)

// ErrNoAircraft is returned when there is nothing to export.
var ErrNoAircraft = errors.New("no aircraft to export")

// layerColor represents an RGB color for a drawing layer.
type layerColor struct {
	R, G, B int
}

// layerColors mirrors the color scheme used in the UI top view.
var layerColors = map[string]layerColor{
	LayerFuselage: {R: 158, G: 158, B: 158}, // grey
	LayerWing:     {R: 33, G: 150, B: 243},  // blue
	LayerHTail:    {R: 76, G: 175, B: 80},   // green
	LayerVTail:    {R: 0, G: 188, B: 212},   // cyan
	LayerCanard:   {R: 156, G: 39, B: 176},  // purple
	LayerNacelles: {R: 255, G: 152, B: 0},   // orange
	LayerEngines:  {R: 244, G: 67, B: 54},   // red
	LayerGears:    {R: 121, G: 85, B: 72},   // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	badgeSize    = 24.0
	rowHeight    = 5.5
	// instancesPerBlock is the number of group instances printed side by side.
	instancesPerBlock = 6
)

// ExportPDF generates the aircraft data sheet: a top view page followed by
// one table per template holding data, with values shown in display
// system sys.
func ExportPDF(path string, ac *model.Aircraft, templates []form.Template, sys units.System) error {
	if ac == nil {
		return ErrNoAircraft
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	if err := renderTopViewPage(pdf, ac); err != nil {
		return err
	}

	// Core fonts are cp1252: unit symbols such as ° need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	values := form.Project(ac, templates, nil, form.WithDisplayUnits(sys))
	pdf.AddPage()
	y := renderPageTitle(pdf, "Input Data")
	for _, t := range templates {
		y = renderTemplate(pdf, tr, t, values, y)
	}
	renderFooter(pdf)

	return pdf.OutputFileAndClose(path)
}

// renderTopViewPage draws the plan view of the aircraft on the current page.
func renderTopViewPage(pdf *fpdf.Fpdf, ac *model.Aircraft) error {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s (%s, %s)", ac.Name, ac.Type, ac.Regulations.Label())
	pdf.CellFormat(pageWidth-marginLeft-marginRight-badgeSize, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	seats := 0
	if ac.CabinConfiguration != nil {
		seats = ac.CabinConfiguration.TotalSeats()
	}
	stats := fmt.Sprintf("ID: %s | Engines: %d | Nacelles: %d | Seats: %d",
		ac.ID, len(ac.Engines), len(ac.Nacelles), seats)
	pdf.CellFormat(pageWidth-marginLeft-marginRight-badgeSize, 5, stats, "", 0, "L", false, 0, "")

	if err := drawBadge(pdf, ac, pageWidth-marginRight-badgeSize, marginTop); err != nil {
		return err
	}

	view := BuildTopView(ac)
	minX, minY, maxX, maxY, ok := view.Bounds()
	if !ok {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetXY(marginLeft, drawAreaTop+10)
		pdf.CellFormat(120, 6, "No geometry defined yet", "", 0, "L", false, 0, "")
		renderFooter(pdf)
		return nil
	}

	// Calculate drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	// The aircraft X axis runs down the page, span across it.
	spanW := math.Max(maxY-minY, 1e-6)
	lengthH := math.Max(maxX-minX, 1e-6)
	scale := math.Min(drawWidth/spanW, drawHeight/lengthH)

	canvasW := spanW * scale
	canvasH := lengthH * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	toPage := func(x, y float64) (float64, float64) {
		return offsetX + (y-minY)*scale, offsetY + (x-minX)*scale
	}

	for _, o := range view.Outlines {
		col := layerColors[o.Layer]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pts := make([]fpdf.PointType, len(o.Points))
		for i, p := range o.Points {
			px, py := toPage(p[0], p[1])
			pts[i] = fpdf.PointType{X: px, Y: py}
		}
		pdf.Polygon(pts, "FD")
	}
	for _, m := range view.Markers {
		col := layerColors[m.Layer]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		px, py := toPage(m.X, m.Y)
		pdf.Circle(px, py, math.Max(m.Radius*scale, 0.8), "FD")
	}

	drawDimensionAnnotations(pdf, maxY-minY, maxX-minX, offsetX, offsetY, canvasW, canvasH)
	drawLegend(pdf, view, offsetY+canvasH+6)
	renderFooter(pdf)
	return nil
}

// drawDimensionAnnotations adds overall span and length labels outside the drawing.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, span, length, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Span annotation (below the drawing)
	spanLabel := fmt.Sprintf("%.2f m", span)
	sLabelW := pdf.GetStringWidth(spanLabel)
	pdf.SetXY(offsetX+(canvasW-sLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(sLabelW, 4, spanLabel, "", 0, "C", false, 0, "")

	// Length annotation (to the left of the drawing, rotated)
	lengthLabel := fmt.Sprintf("%.2f m", length)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	lLabelW := pdf.GetStringWidth(lengthLabel)
	pdf.SetXY(offsetX-3-lLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(lLabelW, 4, lengthLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	// Reset text color
	pdf.SetTextColor(0, 0, 0)
}

// drawLegend renders the layer color legend below the drawing.
func drawLegend(pdf *fpdf.Fpdf, view TopView, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(20, 4, "Legend:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 22
	for _, layer := range view.Layers() {
		col := layerColors[layer]
		labelW := pdf.GetStringWidth(layer) + 6

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, layer, "", 0, "L", false, 0, "")
		xPos += labelW + 2
	}
}

// renderPageTitle writes a page title with a separator and returns the
// first free y position.
func renderPageTitle(pdf *fpdf.Fpdf, title string) float64 {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, title, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)
	return marginTop + 18
}

// ensureSpace starts a new page when fewer than need millimeters are left.
func ensureSpace(pdf *fpdf.Fpdf, y, need float64) float64 {
	if y+need <= pageHeight-marginBottom-6 {
		return y
	}
	renderFooter(pdf)
	pdf.AddPage()
	return renderPageTitle(pdf, "Input Data (continued)")
}

// renderTemplate prints the values of one template as a table: one row per
// attribute, one column per instance. Templates with no data are skipped.
func renderTemplate(pdf *fpdf.Fpdf, tr func(string) string, t form.Template, values form.Assignments, y float64) float64 {
	fields := t.Fields()
	n := instanceCount(t, values)
	if n == 0 {
		return y
	}

	for block := 0; block < n; block += instancesPerBlock {
		end := min(block+instancesPerBlock, n)
		y = ensureSpace(pdf, y, float64(min(len(fields), 4)+2)*rowHeight+8)

		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(150, 7, t.Title(), "", 0, "L", false, 0, "")
		y += 8

		labelW := 70.0
		colW := (pageWidth - marginLeft - marginRight - labelW) / instancesPerBlock

		// Table header
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(labelW, rowHeight, "Attribute", "1", 0, "L", true, 0, "")
		for i := block; i < end; i++ {
			head := "Value"
			if t.Kind() == form.Repeated {
				head = fmt.Sprintf("%s %d", t.Title(), i+1)
			}
			pdf.CellFormat(colW, rowHeight, head, "1", 0, "C", true, 0, "")
		}
		y += rowHeight

		// Table rows
		for r, f := range fields {
			y = ensureSpace(pdf, y, rowHeight)
			pdf.SetFont("Helvetica", "", 8)
			if r%2 == 0 {
				pdf.SetFillColor(245, 245, 245)
			} else {
				pdf.SetFillColor(255, 255, 255)
			}
			pdf.SetXY(marginLeft, y)
			pdf.CellFormat(labelW, rowHeight, tr(f.Label), "1", 0, "L", true, 0, "")
			for i := block; i < end; i++ {
				v := values.Fields[form.Key{Group: t.Name(), Instance: i, Attr: f.Name}]
				pdf.CellFormat(colW, rowHeight, tr(cellText(v)), "1", 0, "C", true, 0, "")
			}
			y += rowHeight
		}
		y += 4
	}
	return y
}

// instanceCount returns how many instances of t the projected values hold.
func instanceCount(t form.Template, values form.Assignments) int {
	if t.Kind() == form.Repeated {
		return values.Growth[t.Name()]
	}
	for _, f := range t.Fields() {
		if !values.Fields[form.Key{Group: t.Name(), Attr: f.Name}].Blank() {
			return 1
		}
	}
	return 0
}

// cellText renders a field value for a table cell.
func cellText(v form.Value) string {
	if v.Blank() {
		return "-"
	}
	if v.Unit == "" {
		return v.Text
	}
	return v.Text + " " + v.Unit
}

// renderFooter writes the page footer.
func renderFooter(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by AirframeDesk - Aircraft Input Data Sheet", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
