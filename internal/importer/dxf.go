package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/AirframeDesk/internal/units"
)

// point is a drawing coordinate: X runs chordwise (aft), Y spanwise.
type point struct {
	X, Y float64
}

// segment represents a line segment between two 2D points, used for
// chaining disconnected LINE entities into closed outlines.
type segment struct {
	start point
	end   point
}

// stationTolerance groups vertices lying on the same spanwise station.
const stationTolerance = 1e-3

// planformFields are the panel attributes a planform import fills in.
var planformFields = []string{"span", "sweep-le", "dihedral", "chord-root", "chord-tip", "twist-root", "twist-tip"}

// ImportPlanformDXF reads a semi-planform drawn in a DXF file and returns one
// row of group g per panel. The largest closed shape (LWPOLYLINE or chain of
// LINEs) is used; its vertices define the spanwise stations, the leading edge
// being the smallest X and the trailing edge the largest X at each station.
// Coordinates are in drawing unit u. Dihedral and twist are imported as zero.
func ImportPlanformDXF(path string, g Group, u units.Unit) ImportResult {
	result := ImportResult{Group: g.Name()}

	if u.Dimension() != units.Length {
		result.Errors = append(result.Errors, fmt.Sprintf("Drawing unit %q is not a length", u.Symbol()))
		return result
	}
	have := map[string]bool{}
	for _, f := range g.Fields() {
		have[f.Name] = true
	}
	for _, name := range planformFields {
		if !have[name] {
			result.Errors = append(result.Errors, fmt.Sprintf("%s has no %s field: not a panel group", g.Title(), name))
			return result
		}
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines [][]point
	var segments []segment
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			var outline []point
			for _, v := range e.Vertices {
				outline = append(outline, point{X: v[0], Y: v[1]})
			}
			if len(outline) >= 3 {
				outlines = append(outlines, outline)
			} else {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: point{X: e.Start[0], Y: e.Start[1]},
				end:   point{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}
	outlines = append(outlines, chainSegments(segments, 0.01)...)

	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}
	sort.SliceStable(outlines, func(i, j int) bool {
		return outlineArea(outlines[i]) > outlineArea(outlines[j])
	})
	if len(outlines) > 1 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Found %d shapes, using the largest", len(outlines)))
	}

	st, mirrored := stationsOf(outlines[0])
	if mirrored {
		result.Warnings = append(result.Warnings, "Ignored the part of the shape at negative span")
	}
	if len(st) < 2 {
		result.Errors = append(result.Errors, "Planform needs at least a root and a tip station")
		return result
	}
	if st[0].chord() <= 0 {
		result.Errors = append(result.Errors, "Planform root chord is zero")
		return result
	}

	sym := u.Symbol()
	deg := units.Degree.Symbol()
	num := func(v float64) string { return units.FormatNumber(v) }
	for i := 0; i+1 < len(st); i++ {
		root, tip := st[i], st[i+1]
		span := tip.y - root.y
		sweep := math.Atan2(tip.le-root.le, span) * 180 / math.Pi
		result.Rows = append(result.Rows, Row{
			"span":       {Text: num(span), Unit: sym},
			"sweep-le":   {Text: num(sweep), Unit: deg},
			"dihedral":   {Text: "0", Unit: deg},
			"chord-root": {Text: num(root.chord()), Unit: sym},
			"chord-tip":  {Text: num(tip.chord()), Unit: sym},
			"twist-root": {Text: "0", Unit: deg},
			"twist-tip":  {Text: "0", Unit: deg},
		})
	}
	return result
}

// station is a spanwise cut of the planform.
type station struct {
	y, le, te float64
}

func (s station) chord() float64 { return s.te - s.le }

// stationsOf groups the vertices of outline by spanwise position, root first.
// Vertices at negative span are dropped and reported.
func stationsOf(outline []point) ([]station, bool) {
	pts := make([]point, 0, len(outline))
	mirrored := false
	for _, p := range outline {
		if p.Y < -stationTolerance {
			mirrored = true
			continue
		}
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Y < pts[j].Y })

	var out []station
	for _, p := range pts {
		if n := len(out); n > 0 && math.Abs(p.Y-out[n-1].y) <= stationTolerance {
			out[n-1].le = math.Min(out[n-1].le, p.X)
			out[n-1].te = math.Max(out[n-1].te, p.X)
			continue
		}
		out = append(out, station{y: p.Y, le: p.X, te: p.X})
	}
	return out, mirrored
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
func chainSegments(segs []segment, tolerance float64) [][]point {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines [][]point

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// Only closed chains describe a planform.
		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			outlines = append(outlines, chain[:len(chain)-1])
		}
	}
	return outlines
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= tolerance
}

// outlineArea computes the absolute area of a polygon using the shoelace formula.
func outlineArea(o []point) float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].X * o[j].Y
		area -= o[j].X * o[i].Y
	}
	return math.Abs(area) / 2
}
