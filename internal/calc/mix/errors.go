package mix

import "fmt"

// ValidationError reports an input outside its declared domain. The
// calculation is not attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InconsistentMixError reports an absolute-volume balance that left a
// negative fine-aggregate volume. The intermediate volumes are carried for
// diagnosis; no masses are returned for such a mix.
type InconsistentMixError struct {
	CementVolM3    float64
	WaterVolM3     float64
	AirVolM3       float64
	CoarseAggVolM3 float64
	FineAggVolM3   float64
}

func (e *InconsistentMixError) Error() string {
	return fmt.Sprintf(
		"inconsistent mix: fine aggregate volume %.4f m³ is negative (cement %.4f + water %.4f + air %.4f + coarse aggregate %.4f exceeds 1 m³)",
		e.FineAggVolM3, e.CementVolM3, e.WaterVolM3, e.AirVolM3, e.CoarseAggVolM3)
}
