package report

import (
	"fmt"
	"io"
	"os"
	"time"

	branding "AceMix/internal/branding"
	export "AceMix/internal/calc/export"
	mix "AceMix/internal/calc/mix"

	"github.com/phpdave11/gofpdf"
)

// Design pairs a proportioned result with the inputs it came from, so the
// report can echo the full audit trail next to the quantities.
type Design struct {
	Project string     `json:"project"`
	Inputs  mix.Input  `json:"inputs"`
	Result  mix.Result `json:"result"`
}

// Write renders one page per design and streams the document. watermark
// marks free-tier output.
func Write(w io.Writer, author string, designs []Design, watermark bool) error {
	if len(designs) == 0 {
		return fmt.Errorf("no designs")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	// Core fonts are cp1252; translate the UTF-8 strings (kg/m³, ©).
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, d := range designs {
		addDesignPage(pdf, tr, author, d, watermark)
	}
	return pdf.Output(w)
}

func addDesignPage(pdf *gofpdf.Fpdf, tr func(string) string, author string, d Design, watermark bool) {
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	if watermark {
		drawWatermark(pdf, pageW, pageH)
	}

	if _, err := os.Stat(branding.LogoPath); err == nil {
		pdf.Image(branding.LogoPath, (pageW-30)/2, 10, 30, 0, false, "", 0, "")
		pdf.SetY(38)
	}

	pdf.SetTextColor(branding.PrimaryColor[0], branding.PrimaryColor[1], branding.PrimaryColor[2])
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Concrete Mix Design Report", "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Project: "+d.Project, "", 1, "C", false, 0, "")
	if author != "" {
		pdf.CellFormat(0, 8, "Author: "+author, "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 8, "Date: "+time.Now().Format("2006-01-02"), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	writeResultTable(pdf, tr, pageW, d.Result)
	pdf.Ln(6)

	for _, warning := range d.Result.Warnings {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(180, 60, 0)
		pdf.MultiCell(0, 5, "Advisory: "+warning, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	if d.Result.FMFallback {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "Note: fineness modulus is not tabulated; the 2.7 coarse-aggregate row was applied.", "", "L", false)
	}
	pdf.Ln(4)

	names, masses := export.Materials(d.Result)
	drawPie(pdf, pageW/2-28, pdf.GetY()+32, 28, names, masses)

	writeInputEcho(pdf, tr, d.Inputs)
	writeFooter(pdf, tr)
}

func writeResultTable(pdf *gofpdf.Fpdf, tr func(string) string, pageW float64, res mix.Result) {
	colWidths := [3]float64{70, 30, 30}
	rowHeight := 8.0
	left := (pageW - (colWidths[0] + colWidths[1] + colWidths[2])) / 2

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetX(left)
	pdf.CellFormat(colWidths[0], rowHeight, "Parameter", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colWidths[1], rowHeight, "Value", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colWidths[2], rowHeight, "Unit", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range export.Rows(res) {
		pdf.SetX(left)
		pdf.CellFormat(colWidths[0], rowHeight, row.Parameter, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], rowHeight, row.Value, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidths[2], rowHeight, tr(row.Unit), "1", 1, "C", false, 0, "")
	}
}

// writeInputEcho records the design inputs under the quantities so a reader
// can audit the result against what was asked for.
func writeInputEcho(pdf *gofpdf.Fpdf, tr func(string) string, in mix.Input) {
	pdf.Ln(70)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, "Design Inputs", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)

	air := "no"
	if in.AirEntrained {
		air = fmt.Sprintf("yes, %.1f%%", in.AirContentPct)
	}
	early := "no"
	if in.EarlyStrength {
		early = "yes"
	}
	lines := []string{
		fmt.Sprintf("f'c %.1f MPa, std deviation %.1f MPa, exposure %s", in.FckMPa, in.StdDevMPa, in.Exposure),
		fmt.Sprintf("max aggregate %d mm, slump %.0f mm, air entrained: %s", int(in.MaxAggSizeMM), in.SlumpMM, air),
		fmt.Sprintf("w/c ratio %.2f, admixture %.1f%%, fineness modulus %.1f, early strength: %s", in.WCRatio, in.AdmixturePct, in.FinenessModulus, early),
		fmt.Sprintf("SG cement %.2f, SG fine agg %.2f, SG coarse agg %.2f", in.SGCement, in.SGFineAgg, in.SGCoarseAgg),
		fmt.Sprintf("CA unit weight %.0f kg/m³, moisture FA %.1f%%, CA %.1f%%", in.UnitWeightCAKgM3, in.MoistFAPct, in.MoistCAPct),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
}

func writeFooter(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetY(-15)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, "Generated by "+branding.ClientName, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(branding.FooterNote), "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func drawWatermark(pdf *gofpdf.Fpdf, pageW, pageH float64) {
	pdf.SetFont("Helvetica", "B", 50)
	pdf.SetTextColor(225, 225, 225)
	pdf.TransformBegin()
	pdf.TransformRotate(45, pageW/2, pageH/2)
	pdf.SetXY(pageW/2-70, pageH/2-10)
	pdf.CellFormat(140, 20, "FREE VERSION", "", 0, "C", false, 0, "")
	pdf.TransformEnd()
	pdf.SetTextColor(0, 0, 0)
}
