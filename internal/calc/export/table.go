package export

import (
	"fmt"

	mix "AceMix/internal/calc/mix"
)

// Row is one line of the flat parameter table shown in every export format
// (CSV, workbook, PDF).
type Row struct {
	Parameter string
	Value     string
	Unit      string
}

// Rows flattens a mix design into the presentation table, in the fixed order
// used across all reports.
func Rows(res mix.Result) []Row {
	return []Row{
		{"Target Mean Strength", fmt.Sprintf("%.2f", res.TargetMeanStrengthMPa), "MPa"},
		{"Water", fmt.Sprintf("%.1f", res.WaterKgM3), "kg/m³"},
		{"Cement", fmt.Sprintf("%.1f", res.CementKgM3), "kg/m³"},
		{"Fine Aggregate", fmt.Sprintf("%.1f", res.FineAggKgM3), "kg/m³"},
		{"Coarse Aggregate", fmt.Sprintf("%.1f", res.CoarseAggKgM3), "kg/m³"},
		{"Air Content", fmt.Sprintf("%.1f", res.AirContentPct), "%"},
		{"Admixture", fmt.Sprintf("%.2f", res.AdmixtureKgM3), "kg/m³"},
	}
}

// Materials returns the four material masses keyed by name, the form the
// composition chart consumes. Zero masses are left out so empty slices never
// reach the renderer.
func Materials(res mix.Result) ([]string, []float64) {
	names := []string{"Water", "Cement", "Fine Aggregate", "Coarse Aggregate"}
	masses := []float64{res.WaterKgM3, res.CementKgM3, res.FineAggKgM3, res.CoarseAggKgM3}

	var outNames []string
	var outMasses []float64
	for i, m := range masses {
		if m > 0 {
			outNames = append(outNames, names[i])
			outMasses = append(outMasses, m)
		}
	}
	return outNames, outMasses
}
