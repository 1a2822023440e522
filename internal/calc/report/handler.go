package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	auth "AceMix/internal/auth"
	mix "AceMix/internal/calc/mix"
)

type Input struct {
	Project string    `json:"project"`
	Author  string    `json:"author"`
	Inputs  mix.Input `json:"inputs"`
}

type Handler struct{}

// Generate proportions the design and streams the PDF report.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Project == "" {
		input.Project = "Unnamed Project"
	}

	res, err := mix.Calculate(input.Inputs)
	if err != nil {
		mix.WriteError(w, err)
		return
	}

	name := strings.ReplaceAll(input.Project, " ", "_")
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "mix_design_"+name+".pdf"))

	// Free-tier reports carry the watermark; a subscription removes it.
	watermark := !auth.PremiumFromContext(r.Context())
	design := Design{Project: input.Project, Inputs: input.Inputs, Result: res}
	if err := Write(w, input.Author, []Design{design}, watermark); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
