package exporter

import (
	"fmt"
	"io"
	"time"

	branding "AceMix/internal/branding"
	export "AceMix/internal/calc/export"
	mix "AceMix/internal/calc/mix"

	"github.com/xuri/excelize/v2"
)

const sheet = "Mix Design"

// WriteWorkbook renders one proportioned design as a branded workbook.
func WriteWorkbook(w io.Writer, project string, res mix.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "C", 12)

	f.SetCellValue(sheet, "A1", branding.AppTitle)
	f.SetCellValue(sheet, "A2", "Project: "+project)
	f.SetCellValue(sheet, "A3", "Date: "+time.Now().Format("2006-01-02"))

	f.SetCellValue(sheet, "A5", "Parameter")
	f.SetCellValue(sheet, "B5", "Value")
	f.SetCellValue(sheet, "C5", "Unit")

	for i, row := range export.Rows(res) {
		line := 6 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", line), row.Parameter)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", line), row.Value)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", line), row.Unit)
	}

	if len(res.Warnings) > 0 {
		line := 6 + 7 + 1
		for i, warning := range res.Warnings {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", line+i), "Advisory: "+warning)
		}
	}

	footerLine := 6 + 7 + len(res.Warnings) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", footerLine), "Generated by "+branding.ClientName)

	return f.Write(w)
}
