package pay

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestTxRefRoundtrip(t *testing.T) {
	ref := TxRef(42, time.Unix(1700000000, 0))
	if ref != "acemix-42-1700000000" {
		t.Fatalf("TxRef = %q", ref)
	}
	id, err := ParseTxRef(ref)
	if err != nil {
		t.Fatal(err)
	}
	if id != 42 {
		t.Fatalf("ParseTxRef = %d, want 42", id)
	}
}

func TestParseTxRef_Malformed(t *testing.T) {
	for _, ref := range []string{"", "acemix-42", "other-42-1", "acemix-x-1", "acemix-0-1"} {
		if _, err := ParseTxRef(ref); err == nil {
			t.Fatalf("ParseTxRef(%q) accepted", ref)
		}
	}
}

func TestVerifyWebhook(t *testing.T) {
	client := NewClient("sk_test", "hush")

	req := httptest.NewRequest("POST", "/api/pay/webhook", nil)
	req.Header.Set("verif-hash", "hush")
	if !client.VerifyWebhook(req) {
		t.Fatal("matching hash rejected")
	}

	req.Header.Set("verif-hash", "wrong")
	if client.VerifyWebhook(req) {
		t.Fatal("mismatched hash accepted")
	}

	req.Header.Del("verif-hash")
	if client.VerifyWebhook(req) {
		t.Fatal("missing hash accepted")
	}

	// A client configured without a hash must never accept deliveries.
	open := NewClient("sk_test", "")
	req.Header.Set("verif-hash", "")
	if open.VerifyWebhook(req) {
		t.Fatal("empty configured hash accepted")
	}
}
