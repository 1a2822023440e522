package mix

import (
	"fmt"
	"math"
)

// Input carries one mix-design request. All quantities are per cubic metre of
// concrete unless noted.
type Input struct {
	FckMPa           float64       `json:"fck_mpa"`
	StdDevMPa        float64       `json:"std_dev_mpa"`
	Exposure         ExposureClass `json:"exposure"`
	MaxAggSizeMM     AggregateSize `json:"max_agg_size_mm"`
	SlumpMM          float64       `json:"slump_mm"`
	AirEntrained     bool          `json:"air_entrained"`
	AirContentPct    float64       `json:"air_content_pct"`
	WCRatio          float64       `json:"wc_ratio"`
	AdmixturePct     float64       `json:"admixture_pct"`
	FinenessModulus  float64       `json:"fineness_modulus"`
	SGCement         float64       `json:"sg_cement"`
	SGFineAgg        float64       `json:"sg_fine_agg"`
	SGCoarseAgg      float64       `json:"sg_coarse_agg"`
	UnitWeightCAKgM3 float64       `json:"unit_weight_ca_kg_m3"`
	MoistFAPct       float64       `json:"moist_fa_pct"`
	MoistCAPct       float64       `json:"moist_ca_pct"`
	EarlyStrength    bool          `json:"early_strength"`
}

// Volumes are the absolute volumes entering the 1 m³ balance, taken before
// moisture correction. They always sum to one cubic metre.
type Volumes struct {
	CementM3    float64 `json:"cement_m3"`
	WaterM3     float64 `json:"water_m3"`
	AirM3       float64 `json:"air_m3"`
	CoarseAggM3 float64 `json:"coarse_agg_m3"`
	FineAggM3   float64 `json:"fine_agg_m3"`
}

// Result is one immutable mix design. Masses are moisture-adjusted batch
// quantities in kg/m³, rounded for presentation; Volumes keep full precision.
type Result struct {
	TargetMeanStrengthMPa float64  `json:"target_mean_strength_mpa"`
	WaterKgM3             float64  `json:"water_kg_m3"`
	CementKgM3            float64  `json:"cement_kg_m3"`
	FineAggKgM3           float64  `json:"fine_agg_kg_m3"`
	CoarseAggKgM3         float64  `json:"coarse_agg_kg_m3"`
	AirContentPct         float64  `json:"air_content_pct"`
	AdmixtureKgM3         float64  `json:"admixture_kg_m3"`
	Volumes               Volumes  `json:"volumes"`
	FMFallback            bool     `json:"fm_fallback"`
	Warnings              []string `json:"warnings,omitempty"`
	Notes                 string   `json:"notes"`
}

// Policy holds the empirical coefficients of the procedure. They are house
// heuristics layered on ACI 211.1 rather than physical law, so they are kept
// adjustable instead of being buried in the arithmetic.
type Policy struct {
	OverdesignFactor     float64 // target mean strength margin per MPa of std deviation
	RefSlumpMM           float64 // slump at which the water table applies
	WaterPerSlumpMM      float64 // kg/m³ of water per mm of slump deviation
	AdmixReductionPerPct float64 // fractional water reduction per % admixture
	AdmixReductionCap    float64 // ceiling on the admixture water reduction
	DefaultAirVolume     float64 // entrapped-air volume for non-air-entrained mixes
	EarlyStrengthFactor  float64 // strength multiplier when early strength is required
	EarlyCementFactor    float64 // cement multiplier when early strength is required
}

// DefaultPolicy matches the coefficients used across the produced mix-design
// documentation.
var DefaultPolicy = Policy{
	OverdesignFactor:     1.34,
	RefSlumpMM:           75,
	WaterPerSlumpMM:      0.3,
	AdmixReductionPerPct: 0.05,
	AdmixReductionCap:    0.15,
	DefaultAirVolume:     0.01,
	EarlyStrengthFactor:  1.15,
	EarlyCementFactor:    1.10,
}

// Calculate runs the ACI 211.1 absolute-volume procedure with the default
// policy coefficients.
func Calculate(in Input) (Result, error) {
	return CalculateWithPolicy(in, DefaultPolicy)
}

// CalculateWithPolicy converts the design inputs into batch quantities for
// one cubic metre of concrete. It is a pure function: no I/O, no state, safe
// for concurrent use.
func CalculateWithPolicy(in Input, pol Policy) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	limits, _ := in.Exposure.Limits()

	ft := in.FckMPa + pol.OverdesignFactor*in.StdDevMPa
	if in.EarlyStrength {
		ft *= pol.EarlyStrengthFactor
	}

	var warnings []string
	if in.WCRatio > limits.MaxWCRatio {
		warnings = append(warnings, fmt.Sprintf(
			"w/c ratio %.2f exceeds the recommended maximum %.2f for %s exposure",
			in.WCRatio, limits.MaxWCRatio, in.Exposure))
	}

	water, _ := baseWaterDemand(in.AirEntrained, in.MaxAggSizeMM)
	water += (in.SlumpMM - pol.RefSlumpMM) * pol.WaterPerSlumpMM
	if in.AdmixturePct > 0 {
		water *= 1 - math.Min(pol.AdmixReductionCap, in.AdmixturePct*pol.AdmixReductionPerPct)
	}

	cement := math.Max(water/in.WCRatio, limits.MinCementKgM3)
	if in.EarlyStrength {
		cement *= pol.EarlyCementFactor
	}

	caFrac, fallback := caVolumeFraction(in.FinenessModulus, in.MaxAggSizeMM)
	caMass := caFrac * in.UnitWeightCAKgM3

	cementVol := cement / (in.SGCement * 1000)
	waterVol := water / 1000
	airVol := pol.DefaultAirVolume
	if in.AirEntrained {
		airVol = in.AirContentPct / 100
	}
	caVol := caMass / (in.SGCoarseAgg * 1000)
	faVol := 1 - (cementVol + waterVol + airVol + caVol)
	if faVol < 0 {
		return Result{}, &InconsistentMixError{
			CementVolM3:    cementVol,
			WaterVolM3:     waterVol,
			AirVolM3:       airVol,
			CoarseAggVolM3: caVol,
			FineAggVolM3:   faVol,
		}
	}
	faMass := faVol * in.SGFineAgg * 1000

	// Moisture correction comes last and deducts batch water using the
	// pre-adjustment aggregate masses.
	faMassAdj := faMass * (1 + in.MoistFAPct/100)
	caMassAdj := caMass * (1 + in.MoistCAPct/100)
	water -= faMass*in.MoistFAPct/100 + caMass*in.MoistCAPct/100

	return Result{
		TargetMeanStrengthMPa: round2(ft),
		WaterKgM3:             round1(water),
		CementKgM3:            round1(cement),
		FineAggKgM3:           round1(faMassAdj),
		CoarseAggKgM3:         round1(caMassAdj),
		AirContentPct:         round1(in.AirContentPct),
		AdmixtureKgM3:         round2(cement * in.AdmixturePct / 100),
		Volumes: Volumes{
			CementM3:    cementVol,
			WaterM3:     waterVol,
			AirM3:       airVol,
			CoarseAggM3: caVol,
			FineAggM3:   faVol,
		},
		FMFallback: fallback,
		Warnings:   warnings,
		Notes:      "ACI 211.1 absolute-volume proportioning, SSD basis with free-moisture correction.",
	}, nil
}

// Validate checks every input against its declared domain and reports the
// first violation.
func (in Input) Validate() error {
	if in.FckMPa <= 0 {
		return &ValidationError{Field: "fck_mpa", Reason: "must be positive"}
	}
	if in.StdDevMPa <= 0 {
		return &ValidationError{Field: "std_dev_mpa", Reason: "must be positive"}
	}
	if _, ok := in.Exposure.Limits(); !ok {
		return &ValidationError{Field: "exposure", Reason: fmt.Sprintf("unknown class %q, want mild, moderate or severe", string(in.Exposure))}
	}
	if !in.MaxAggSizeMM.valid() {
		return &ValidationError{Field: "max_agg_size_mm", Reason: fmt.Sprintf("unsupported size %d, want 10, 20 or 40", int(in.MaxAggSizeMM))}
	}
	if in.SlumpMM < 25 || in.SlumpMM > 200 {
		return &ValidationError{Field: "slump_mm", Reason: "must be between 25 and 200"}
	}
	if in.AirEntrained {
		if in.AirContentPct < 1 || in.AirContentPct > 8 {
			return &ValidationError{Field: "air_content_pct", Reason: "must be between 1 and 8 for an air-entrained mix"}
		}
	} else if in.AirContentPct != 0 {
		return &ValidationError{Field: "air_content_pct", Reason: "must be 0 unless the mix is air-entrained"}
	}
	if in.WCRatio < 0.3 || in.WCRatio > 0.7 {
		return &ValidationError{Field: "wc_ratio", Reason: "must be between 0.3 and 0.7"}
	}
	if in.AdmixturePct < 0 || in.AdmixturePct > 5 {
		return &ValidationError{Field: "admixture_pct", Reason: "must be between 0 and 5"}
	}
	if in.FinenessModulus < 2.4 || in.FinenessModulus > 3.0 {
		return &ValidationError{Field: "fineness_modulus", Reason: "must be between 2.4 and 3.0"}
	}
	if in.SGCement <= 1 {
		return &ValidationError{Field: "sg_cement", Reason: "must be greater than 1"}
	}
	if in.SGFineAgg <= 1 {
		return &ValidationError{Field: "sg_fine_agg", Reason: "must be greater than 1"}
	}
	if in.SGCoarseAgg <= 1 {
		return &ValidationError{Field: "sg_coarse_agg", Reason: "must be greater than 1"}
	}
	if in.UnitWeightCAKgM3 <= 0 {
		return &ValidationError{Field: "unit_weight_ca_kg_m3", Reason: "must be positive"}
	}
	if in.MoistFAPct < 0 {
		return &ValidationError{Field: "moist_fa_pct", Reason: "must not be negative"}
	}
	if in.MoistCAPct < 0 {
		return &ValidationError{Field: "moist_ca_pct", Reason: "must not be negative"}
	}
	return nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
