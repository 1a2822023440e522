package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	mix "AceMix/internal/calc/mix"
)

type Handler struct{}

type CSVInput struct {
	Project string    `json:"project"`
	Inputs  mix.Input `json:"inputs"`
}

// CSV proportions the design and streams it as a comma-separated parameter
// table, the free-tier download format.
func (h *Handler) CSV(w http.ResponseWriter, r *http.Request) {
	var input CSVInput
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
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".csv"))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Parameter", "Value", "Unit"})
	for _, row := range Rows(res) {
		_ = cw.Write([]string{row.Parameter, row.Value, row.Unit})
	}
	cw.Flush()
}
