package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

// Payment provider webhooks arrive in bursts from shared egress IPs and must
// never hit the per-IP limiter; a dropped delivery is a dropped premium grant.
func TestWebhookBypassesRateLimit(t *testing.T) {
	t.Setenv("TOKEN_KEY", "test-key")
	router := mux.NewRouter()
	HandleList(router, nil)

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest("POST", "/api/pay/webhook", strings.NewReader("{}"))
		req.RemoteAddr = "203.0.113.9:40000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			t.Fatalf("delivery %d was rate limited", i)
		}
		// No verif-hash header: rejected by signature, not by throttle.
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("delivery %d status = %d, want 401", i, rec.Code)
		}
	}

	// The same address is still throttled on the limited routes.
	last := 0
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("POST", "/api/login", strings.NewReader("{}"))
		req.RemoteAddr = "203.0.113.9:40000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("login burst not throttled, last status = %d", last)
	}
}
