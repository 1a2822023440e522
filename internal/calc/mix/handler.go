package mix

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// WriteError maps calculation errors onto HTTP statuses: domain violations
// are 400, a non-physical volume balance is 422 with the intermediates.
func WriteError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		// err, not verr: callers wrap with context such as the batch item index.
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var ierr *InconsistentMixError
	if errors.As(err, &ierr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"error":         ierr.Error(),
			"cement_m3":     ierr.CementVolM3,
			"water_m3":      ierr.WaterVolM3,
			"air_m3":        ierr.AirVolM3,
			"coarse_agg_m3": ierr.CoarseAggVolM3,
			"fine_agg_m3":   ierr.FineAggVolM3,
		})
		return
	}
	http.Error(w, "Calculation error", http.StatusBadRequest)
}
