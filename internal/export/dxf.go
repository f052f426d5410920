package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/piwi3910/AirframeDesk/internal/model"
)

// dxfLayerColors assigns an AutoCAD color to each drawing layer.
var dxfLayerColors = map[string]color.ColorNumber{
	LayerFuselage: color.White,
	LayerWing:     color.Blue,
	LayerHTail:    color.Green,
	LayerVTail:    color.Cyan,
	LayerCanard:   color.Magenta,
	LayerNacelles: color.Yellow,
	LayerEngines:  color.Red,
	LayerGears:    color.White,
}

// labelHeightM is the text height of the DXF labels, in meters.
const labelHeightM = 0.2

// ExportDXF writes the top view of ac to a DXF file, in meters, one layer
// per component kind. Outlines are written as closed loops of LINE
// entities.
func ExportDXF(path string, ac *model.Aircraft) error {
	if ac == nil {
		return ErrNoAircraft
	}
	view := BuildTopView(ac)
	if len(view.Outlines) == 0 && len(view.Markers) == 0 {
		return fmt.Errorf("aircraft %q has no geometry to draw", ac.Name)
	}

	d := dxf.NewDrawing()
	for _, layer := range view.Layers() {
		if _, err := d.AddLayer(layer, dxfLayerColors[layer], dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", layer, err)
		}
	}

	for _, o := range view.Outlines {
		if err := d.ChangeLayer(o.Layer); err != nil {
			return err
		}
		for i := range o.Points {
			a, b := o.Points[i], o.Points[(i+1)%len(o.Points)]
			if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
				return fmt.Errorf("failed to draw %s: %w", o.Label, err)
			}
		}
	}

	for _, m := range view.Markers {
		if err := d.ChangeLayer(m.Layer); err != nil {
			return err
		}
		if _, err := d.Circle(m.X, m.Y, 0, m.Radius); err != nil {
			return fmt.Errorf("failed to draw %s: %w", m.Label, err)
		}
		if _, err := d.Text(m.Label, m.X+m.Radius, m.Y+m.Radius, 0, labelHeightM); err != nil {
			return fmt.Errorf("failed to label %s: %w", m.Label, err)
		}
	}

	return d.SaveAs(path)
}
