package exporter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	mix "AceMix/internal/calc/mix"
)

type Handler struct{}

type Input struct {
	Project string    `json:"project"`
	Inputs  mix.Input `json:"inputs"`
}

func (h *Handler) Xlsx(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := mix.Calculate(input.Inputs)
	if err != nil {
		mix.WriteError(w, err)
		return
	}

	name := strings.ReplaceAll(input.Project, " ", "_")
	if name == "" {
		name = "concrete_mix"
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".xlsx"))
	if err := WriteWorkbook(w, input.Project, res); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
