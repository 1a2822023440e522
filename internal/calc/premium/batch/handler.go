package batch

import (
	"encoding/json"
	"net/http"

	mix "AceMix/internal/calc/mix"
)

type Handler struct{}

func (h *Handler) Mix(w http.ResponseWriter, r *http.Request) {
	var input MixBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateMix(input)
	if err != nil {
		mix.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
