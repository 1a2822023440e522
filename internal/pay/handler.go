package pay

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	auth "AceMix/internal/auth"
	repo "AceMix/internal/repo"
)

// ProPlanAmountGHS is the monthly pro-plan price in Ghanaian cedi.
const ProPlanAmountGHS = "49"

const premiumPeriod = 30 * 24 * time.Hour

type Handler struct {
	Client *Client
	Repo   repo.Repository
}

type checkoutResponse struct {
	Link string `json:"link"`
}

// Checkout creates a hosted payment link for the pro plan.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	prof, err := h.Repo.GetProfileByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	link, err := h.Client.CreatePaymentLink(r.Context(), PaymentRequest{
		TxRef:    TxRef(userID, time.Now()),
		Amount:   ProPlanAmountGHS,
		Currency: "GHS",
		Customer: map[string]string{"email": prof.Email, "name": prof.Login},
	})
	if err != nil {
		log.Printf("CreatePaymentLink error: %v", err)
		http.Error(w, "Payment provider error", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(checkoutResponse{Link: link})
}

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		TxRef  string `json:"tx_ref"`
		Status string `json:"status"`
	} `json:"data"`
}

// Webhook grants 30 days of premium once a charge is confirmed. The charge
// is re-verified against the API; the webhook body alone is never trusted.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	if !h.Client.VerifyWebhook(r) {
		http.Error(w, "Invalid signature", http.StatusUnauthorized)
		return
	}

	var event webhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if event.Event != "charge.completed" || event.Data.Status != "successful" {
		w.WriteHeader(http.StatusOK)
		return
	}

	confirmed, err := h.Client.VerifyByReference(r.Context(), event.Data.TxRef)
	if err != nil || !confirmed {
		log.Printf("charge verification failed for %s: %v", event.Data.TxRef, err)
		http.Error(w, "Verification failed", http.StatusBadGateway)
		return
	}

	userID, err := ParseTxRef(event.Data.TxRef)
	if err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Repo.SetPremiumUntil(r.Context(), userID, time.Now().Add(premiumPeriod)); err != nil {
		log.Printf("SetPremiumUntil error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
