package mix

import "math"

// Reference tables from ACI 211.1. Values are fixed by the standard and are
// never mutated at runtime.

type ExposureClass string

const (
	ExposureMild     ExposureClass = "mild"
	ExposureModerate ExposureClass = "moderate"
	ExposureSevere   ExposureClass = "severe"
)

// ExposureLimits holds the durability limits an exposure class imposes on the
// mix: a recommended ceiling on the w/c ratio and a hard floor on cement.
type ExposureLimits struct {
	MaxWCRatio    float64
	MinCementKgM3 float64
}

// Limits returns the durability limits for the class. ok is false for a class
// outside the closed set; Validate rejects such inputs before lookup.
func (e ExposureClass) Limits() (ExposureLimits, bool) {
	switch e {
	case ExposureMild:
		return ExposureLimits{MaxWCRatio: 0.55, MinCementKgM3: 250}, true
	case ExposureModerate:
		return ExposureLimits{MaxWCRatio: 0.50, MinCementKgM3: 300}, true
	case ExposureSevere:
		return ExposureLimits{MaxWCRatio: 0.45, MinCementKgM3: 335}, true
	}
	return ExposureLimits{}, false
}

type AggregateSize int

const (
	Agg10 AggregateSize = 10
	Agg20 AggregateSize = 20
	Agg40 AggregateSize = 40
)

func (s AggregateSize) valid() bool {
	return s == Agg10 || s == Agg20 || s == Agg40
}

// baseWaterDemand returns the ACI base mixing-water content in kg/m³ at the
// 75 mm reference slump.
func baseWaterDemand(airEntrained bool, size AggregateSize) (float64, bool) {
	if airEntrained {
		switch size {
		case Agg10:
			return 180, true
		case Agg20:
			return 160, true
		case Agg40:
			return 140, true
		}
		return 0, false
	}
	switch size {
	case Agg10:
		return 205, true
	case Agg20:
		return 185, true
	case Agg40:
		return 160, true
	}
	return 0, false
}

// caVolumeFraction returns the dry-rodded coarse-aggregate volume per unit
// volume of concrete. The table is keyed by fineness modulus 2.4/2.7/3.0; a
// fineness modulus that rounds to any other value uses the 2.7 row. That is a
// deliberate approximation, not an error: callers see fallback=true and the
// result flags it.
func caVolumeFraction(finenessModulus float64, size AggregateSize) (frac float64, fallback bool) {
	var row [3]float64
	switch math.Round(finenessModulus*10) / 10 {
	case 2.4:
		row = [3]float64{0.44, 0.60, 0.68}
	case 2.7:
		row = [3]float64{0.49, 0.66, 0.74}
	case 3.0:
		row = [3]float64{0.53, 0.72, 0.80}
	default:
		row = [3]float64{0.49, 0.66, 0.74}
		fallback = true
	}
	switch size {
	case Agg10:
		return row[0], fallback
	case Agg40:
		return row[2], fallback
	default:
		return row[1], fallback
	}
}
