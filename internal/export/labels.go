package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/AirframeDesk/internal/model"
)

// TagInfo holds the data encoded into each component tag's QR code.
type TagInfo struct {
	AircraftID  string `json:"aircraft_id"`
	Aircraft    string `json:"aircraft"`
	Component   string `json:"component"`
	ComponentID string `json:"id,omitempty"`
	File        string `json:"file,omitempty"`
	X           string `json:"x,omitempty"`
	Y           string `json:"y,omitempty"`
	Z           string `json:"z,omitempty"`
}

// Tag layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportTags generates a PDF of QR-coded tags, one per component of ac.
// Each tag shows the component name, its apex and definition file, and a
// QR code encoding the same data as JSON. Tags are laid out on a standard
// label sheet (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportTags(path string, ac *model.Aircraft) error {
	if ac == nil {
		return ErrNoAircraft
	}
	tags := CollectTags(ac)
	if len(tags) == 0 {
		return fmt.Errorf("aircraft %q has no components to tag", ac.Name)
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, tag := range tags {
		// Add new page when needed
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderTag(pdf, tr, x, y, i, tag); err != nil {
			return fmt.Errorf("failed to render tag for %q: %w", tag.Component, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderTag draws a single tag at the given position.
func renderTag(pdf *fpdf.Fpdf, tr func(string) string, x, y float64, n int, info TagInfo) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	if err := drawQR(pdf, fmt.Sprintf("tag_%d", n), info, qrX, qrY, qrSize); err != nil {
		return err
	}

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Component name (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, truncate(pdf, info.Component, textW), "", 1, "L", false, 0, "")

	// Apex
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	if info.X != "" {
		apex := fmt.Sprintf("Apex %s / %s / %s", info.X, info.Y, info.Z)
		pdf.CellFormat(textW, 3.5, tr(truncate(pdf, apex, textW)), "", 1, "L", false, 0, "")
	}

	// Aircraft and file
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, truncate(pdf, info.Aircraft, textW), "", 1, "L", false, 0, "")
	if info.File != "" {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.CellFormat(textW, 3, truncate(pdf, info.File, textW), "", 0, "L", false, 0, "")
	}

	// Reset text color
	pdf.SetTextColor(0, 0, 0)
	return nil
}

// drawBadge places the aircraft identification QR code at x, y.
func drawBadge(pdf *fpdf.Fpdf, ac *model.Aircraft, x, y float64) error {
	info := TagInfo{AircraftID: ac.ID, Aircraft: ac.Name, Component: string(ac.Type), File: ac.CabinConfigurationFile}
	return drawQR(pdf, "badge_"+ac.ID, info, x, y, badgeSize)
}

// drawQR encodes info as JSON into a QR code image registered as name.
func drawQR(pdf *fpdf.Fpdf, name string, info TagInfo, x, y, size float64) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal tag info: %w", err)
	}

	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions(name, x, y, size, size, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}

// truncate shortens s with an ellipsis until it fits in width w.
func truncate(pdf *fpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w {
		s = s[:len(s)-1]
	}
	return s + "..."
}

// CollectTags lists the tags of the components present in ac, in form
// order.
func CollectTags(ac *model.Aircraft) []TagInfo {
	var tags []TagInfo
	add := func(component, id, file string, pos *model.Position) {
		t := TagInfo{
			AircraftID:  ac.ID,
			Aircraft:    ac.Name,
			Component:   component,
			ComponentID: id,
			File:        file,
		}
		if pos != nil {
			t.X, t.Y, t.Z = pos.X.String(), pos.Y.String(), pos.Z.String()
		}
		tags = append(tags, t)
	}

	if f := ac.Fuselage; f != nil {
		add("Fuselage", "", f.FilePath, &f.Position)
	}
	surfaces := []struct {
		name string
		s    *model.LiftingSurface
	}{
		{"Wing", ac.Wing}, {"Horizontal Tail", ac.HTail}, {"Vertical Tail", ac.VTail}, {"Canard", ac.Canard},
	}
	for _, s := range surfaces {
		if s.s != nil {
			add(s.name, "", s.s.FilePath, &s.s.Position)
		}
	}
	for i := range ac.Engines {
		e := &ac.Engines[i]
		add(componentLabel("Engine", i), e.ID, e.FilePath, &e.Position)
	}
	for i := range ac.Nacelles {
		n := &ac.Nacelles[i]
		add(componentLabel("Nacelle", i), n.ID, n.FilePath, &n.Position)
	}
	if g := ac.LandingGears; g != nil {
		add("Landing Gears", "", g.FilePath, &g.MainPosition)
	}
	if t := ac.FuelTank; t != nil {
		add("Fuel Tank", "", "", &t.Position)
	}
	return tags
}
