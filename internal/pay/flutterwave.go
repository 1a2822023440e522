package pay

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client talks to the Flutterwave v3 REST API, which hosts the pro-plan
// checkout page.
type Client struct {
	SecretKey  string
	VerifHash  string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(secretKey, verifHash string) *Client {
	return &Client{
		SecretKey:  secretKey,
		VerifHash:  verifHash,
		BaseURL:    "https://api.flutterwave.com/v3",
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type PaymentRequest struct {
	TxRef       string            `json:"tx_ref"`
	Amount      string            `json:"amount"`
	Currency    string            `json:"currency"`
	RedirectURL string            `json:"redirect_url,omitempty"`
	Customer    map[string]string `json:"customer"`
}

type paymentResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Link string `json:"link"`
	} `json:"data"`
}

type verifyResponse struct {
	Status string `json:"status"`
	Data   struct {
		Status   string  `json:"status"`
		TxRef    string  `json:"tx_ref"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"data"`
}

// CreatePaymentLink registers a pending charge and returns the hosted
// checkout URL.
func (c *Client) CreatePaymentLink(ctx context.Context, req PaymentRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.SecretKey)

	res, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var out paymentResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Status != "success" || out.Data.Link == "" {
		return "", fmt.Errorf("flutterwave: %s", out.Message)
	}
	return out.Data.Link, nil
}

// VerifyByReference confirms a charge against the API rather than trusting
// the webhook payload.
func (c *Client) VerifyByReference(ctx context.Context, txRef string) (bool, error) {
	url := c.BaseURL + "/transactions/verify_by_reference?tx_ref=" + txRef
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.SecretKey)

	res, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	var out verifyResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return false, err
	}
	return out.Status == "success" && out.Data.Status == "successful", nil
}

// VerifyWebhook checks the verif-hash header Flutterwave sends with every
// webhook delivery.
func (c *Client) VerifyWebhook(r *http.Request) bool {
	got := r.Header.Get("verif-hash")
	if got == "" || c.VerifHash == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(c.VerifHash)) == 1
}

// TxRef builds the transaction reference carrying the paying user's id.
func TxRef(userID int, now time.Time) string {
	return fmt.Sprintf("acemix-%d-%d", userID, now.Unix())
}

// ParseTxRef recovers the user id from a transaction reference.
func ParseTxRef(txRef string) (int, error) {
	parts := strings.Split(txRef, "-")
	if len(parts) != 3 || parts[0] != "acemix" {
		return 0, fmt.Errorf("malformed tx_ref %q", txRef)
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("malformed tx_ref %q", txRef)
	}
	return id, nil
}
