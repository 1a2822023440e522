package report

import (
	"fmt"
	"math"

	branding "AceMix/internal/branding"

	"github.com/phpdave11/gofpdf"
)

// drawPie renders the composition chart as filled polygon fans, one slice per
// material, with a legend to the right. cx, cy is the centre and r the radius
// in document units.
func drawPie(pdf *gofpdf.Fpdf, cx, cy, r float64, names []string, masses []float64) {
	if len(masses) == 0 {
		return
	}
	total := 0.0
	for _, m := range masses {
		total += m
	}
	if total <= 0 {
		return
	}

	pdf.SetDrawColor(255, 255, 255)
	start := -90.0 // 12 o'clock, matching the original chart orientation
	for i, m := range masses {
		sweep := 360 * m / total
		color := branding.ChartPalette[i%len(branding.ChartPalette)]
		pdf.SetFillColor(color[0], color[1], color[2])
		pdf.Polygon(slicePoints(cx, cy, r, start, start+sweep), "FD")
		start += sweep
	}

	// Legend with percentages.
	lx := cx + r + 12
	ly := cy - r + 4
	pdf.SetFont("Helvetica", "", 9)
	for i, name := range names {
		color := branding.ChartPalette[i%len(branding.ChartPalette)]
		pdf.SetFillColor(color[0], color[1], color[2])
		pdf.Rect(lx, ly, 4, 4, "F")
		pdf.SetXY(lx+6, ly-1)
		pdf.CellFormat(60, 6, fmt.Sprintf("%s (%.1f%%)", name, 100*masses[i]/total), "", 0, "L", false, 0, "")
		ly += 7
	}
}

// slicePoints approximates a circular sector with a polygon fan. Two-degree
// steps keep the arc visually smooth at report scale.
func slicePoints(cx, cy, r, fromDeg, toDeg float64) []gofpdf.PointType {
	points := []gofpdf.PointType{{X: cx, Y: cy}}
	steps := int(math.Ceil((toDeg-fromDeg)/2)) + 1
	for i := 0; i <= steps; i++ {
		deg := fromDeg + (toDeg-fromDeg)*float64(i)/float64(steps)
		rad := deg * math.Pi / 180
		points = append(points, gofpdf.PointType{
			X: cx + r*math.Cos(rad),
			Y: cy + r*math.Sin(rad),
		})
	}
	return points
}
