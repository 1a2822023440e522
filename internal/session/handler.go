package session

import (
	"encoding/json"
	"net/http"

	auth "AceMix/internal/auth"
	mix "AceMix/internal/calc/mix"
	report "AceMix/internal/calc/report"
)

// freeDesignLimit caps the session history on the free plan. Subscribers
// save without limit.
const freeDesignLimit = 5

type Handler struct {
	Store *Store
}

type CreateRequest struct {
	Project string    `json:"project"`
	Inputs  mix.Input `json:"inputs"`
}

// Create proportions the design and appends it to the caller's session
// history in one step.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if !auth.PremiumFromContext(r.Context()) && len(h.Store.List(userID)) >= freeDesignLimit {
		http.Error(w, "Free plan design limit reached", http.StatusForbidden)
		return
	}
	if req.Project == "" {
		req.Project = "Unnamed Project"
	}

	res, err := mix.Calculate(req.Inputs)
	if err != nil {
		mix.WriteError(w, err)
		return
	}

	rec := h.Store.Append(userID, req.Project, req.Inputs, res)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rec)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Store.List(userID))
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	h.Store.Clear(userID)
	w.WriteHeader(http.StatusNoContent)
}

// Report streams every design of the session as one combined PDF, the
// "compute many, export one report" workflow.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	records := h.Store.List(userID)
	if len(records) == 0 {
		http.Error(w, "No designs in session", http.StatusNotFound)
		return
	}

	designs := make([]report.Design, 0, len(records))
	for _, rec := range records {
		designs = append(designs, report.Design{
			Project: rec.Project,
			Inputs:  rec.Inputs,
			Result:  rec.Result,
		})
	}

	watermark := !auth.PremiumFromContext(r.Context())
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="mix_designs_combined.pdf"`)
	if err := report.Write(w, r.URL.Query().Get("author"), designs, watermark); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
