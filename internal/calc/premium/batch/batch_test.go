package batch

import (
	"strings"
	"testing"

	mix "AceMix/internal/calc/mix"
)

func validInput() mix.Input {
	return mix.Input{
		FckMPa:           25,
		StdDevMPa:        5,
		Exposure:         mix.ExposureModerate,
		MaxAggSizeMM:     mix.Agg20,
		SlumpMM:          75,
		WCRatio:          0.5,
		FinenessModulus:  2.7,
		SGCement:         3.15,
		SGFineAgg:        2.65,
		SGCoarseAgg:      2.65,
		UnitWeightCAKgM3: 1600,
		MoistFAPct:       2,
		MoistCAPct:       1,
	}
}

func TestCalculateMix(t *testing.T) {
	second := validInput()
	second.FckMPa = 30

	res, err := CalculateMix(MixBatchInput{Items: []mix.Input{validInput(), second}})
	if err != nil {
		t.Fatalf("CalculateMix: %v", err)
	}
	if len(res.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(res.Results))
	}
	if res.Results[1].TargetMeanStrengthMPa <= res.Results[0].TargetMeanStrengthMPa {
		t.Fatal("second design should target a higher mean strength")
	}
}

func TestCalculateMix_EmptyBatch(t *testing.T) {
	if _, err := CalculateMix(MixBatchInput{}); err == nil {
		t.Fatal("expected an error for an empty batch")
	}
}

func TestCalculateMix_AbortsOnBadItem(t *testing.T) {
	bad := validInput()
	bad.WCRatio = 0

	_, err := CalculateMix(MixBatchInput{Items: []mix.Input{validInput(), bad}})
	if err == nil {
		t.Fatal("expected an error for an invalid item")
	}
	if !strings.Contains(err.Error(), "item 1") {
		t.Fatalf("error should name the failing item: %v", err)
	}
}
