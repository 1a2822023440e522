package importer

import (
	"testing"

	mix "AceMix/internal/calc/mix"
)

func TestParseMixRow(t *testing.T) {
	row := []string{
		"25", "5", "Moderate", "20", "75", "no", "0",
		"0.5", "0", "2.7", "3.15", "2.65", "2.65", "1600", "2", "1",
	}
	in, err := parseMixRow(row)
	if err != nil {
		t.Fatalf("parseMixRow: %v", err)
	}
	if in.Exposure != mix.ExposureModerate {
		t.Fatalf("exposure = %q, want moderate", in.Exposure)
	}
	if in.MaxAggSizeMM != mix.Agg20 {
		t.Fatalf("aggregate size = %d, want 20", in.MaxAggSizeMM)
	}
	if in.AirEntrained {
		t.Fatal("air entrainment parsed as true")
	}
	if in.FckMPa != 25 || in.WCRatio != 0.5 || in.UnitWeightCAKgM3 != 1600 {
		t.Fatalf("numeric fields misparsed: %+v", in)
	}

	if _, err := mix.Calculate(in); err != nil {
		t.Fatalf("parsed row does not calculate: %v", err)
	}
}

func TestParseMixRow_AirEntrained(t *testing.T) {
	row := []string{
		"30", "4", "severe", "10", "100", "yes", "5",
		"0.45", "1", "2.4", "3.15", "2.65", "2.65", "1550", "0", "0",
	}
	in, err := parseMixRow(row)
	if err != nil {
		t.Fatalf("parseMixRow: %v", err)
	}
	if !in.AirEntrained || in.AirContentPct != 5 {
		t.Fatalf("air fields misparsed: %+v", in)
	}
}

func TestParseMixRow_ShortRow(t *testing.T) {
	if _, err := parseMixRow([]string{"25", "5"}); err == nil {
		t.Fatal("expected an error for a short row")
	}
}

func TestParseMixRow_BadNumber(t *testing.T) {
	cases := []struct {
		name string
		cell string
	}{
		{"letters", "abc"},
		{"trailing garbage", "1.5abc"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := []string{
				"25", tc.cell, "mild", "20", "75", "no", "0",
				"0.5", "0", "2.7", "3.15", "2.65", "2.65", "1600", "2", "1",
			}
			if _, err := parseMixRow(row); err == nil {
				t.Fatalf("cell %q parsed without error", tc.cell)
			}
		})
	}
}
