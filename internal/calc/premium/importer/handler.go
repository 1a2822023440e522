package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	mix "AceMix/internal/calc/mix"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type MixImportResult struct {
	Count   int          `json:"count"`
	Skipped int          `json:"skipped"`
	Results []mix.Result `json:"results"`
}

// Mix accepts an uploaded workbook with one design per row and proportions
// each of them. Rows that fail to parse or validate are skipped, not fatal:
// lab spreadsheets routinely carry stray or half-filled rows.
func (h *Handler) Mix(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []mix.Result
	skipped := 0
	for i := 1; i < len(rows); i++ {
		input, err := parseMixRow(rows[i])
		if err != nil {
			skipped++
			continue
		}
		res, err := mix.Calculate(input)
		if err != nil {
			skipped++
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MixImportResult{Count: len(results), Skipped: skipped, Results: results})
}

// parseMixRow reads one design from a sheet row. Expected columns:
// fck, std_dev, exposure, max_agg_size, slump, air_entrained, air_content,
// wc_ratio, admixture, fineness_modulus, sg_cement, sg_fa, sg_ca,
// unit_weight_ca, moist_fa, moist_ca.
func parseMixRow(row []string) (mix.Input, error) {
	if len(row) < 16 {
		return mix.Input{}, fmt.Errorf("bad row: %d columns, want 16", len(row))
	}

	var in mix.Input
	fields := []struct {
		dst *float64
		col int
	}{
		{&in.FckMPa, 0},
		{&in.StdDevMPa, 1},
		{&in.SlumpMM, 4},
		{&in.AirContentPct, 6},
		{&in.WCRatio, 7},
		{&in.AdmixturePct, 8},
		{&in.FinenessModulus, 9},
		{&in.SGCement, 10},
		{&in.SGFineAgg, 11},
		{&in.SGCoarseAgg, 12},
		{&in.UnitWeightCAKgM3, 13},
		{&in.MoistFAPct, 14},
		{&in.MoistCAPct, 15},
	}
	for _, f := range fields {
		v, err := toFloat(row[f.col])
		if err != nil {
			return mix.Input{}, err
		}
		*f.dst = v
	}

	in.Exposure = mix.ExposureClass(strings.ToLower(strings.TrimSpace(row[2])))
	size, err := toFloat(row[3])
	if err != nil {
		return mix.Input{}, err
	}
	in.MaxAggSizeMM = mix.AggregateSize(int(size))
	in.AirEntrained = toBool(row[5])
	return in, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func toBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "y":
		return true
	}
	return false
}
