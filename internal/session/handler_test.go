package session

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	auth "AceMix/internal/auth"
)

func TestHandler_CreateListReport(t *testing.T) {
	h := &Handler{Store: NewStore()}
	in, _ := calcSample(t)

	body, _ := json.Marshal(CreateRequest{Project: "Quay", Inputs: in})
	req := httptest.NewRequest("POST", "/designs", bytes.NewReader(body))
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != 201 {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest("GET", "/designs", nil)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 7))
	rec = httptest.NewRecorder()
	h.List(rec, req)
	var records []Record
	if err := json.NewDecoder(rec.Body).Decode(&records); err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Project != "Quay" {
		t.Fatalf("unexpected listing: %+v", records)
	}

	req = httptest.NewRequest("GET", "/designs/report", nil)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 7))
	rec = httptest.NewRecorder()
	h.Report(rec, req)
	if rec.Code != 200 {
		t.Fatalf("report status = %d", rec.Code)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Fatal("combined report is not a PDF")
	}
}

func TestHandler_RequiresAuth(t *testing.T) {
	h := &Handler{Store: NewStore()}

	req := httptest.NewRequest("GET", "/designs", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != 401 {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestHandler_ReportWithoutDesigns(t *testing.T) {
	h := &Handler{Store: NewStore()}

	req := httptest.NewRequest("GET", "/designs/report", nil)
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()
	h.Report(rec, req)
	if rec.Code != 404 {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandler_CreateFreePlanLimit(t *testing.T) {
	h := &Handler{Store: NewStore()}
	in, _ := calcSample(t)
	body, _ := json.Marshal(CreateRequest{Project: "Quay", Inputs: in})

	for i := 0; i < freeDesignLimit; i++ {
		req := httptest.NewRequest("POST", "/designs", bytes.NewReader(body))
		req = req.WithContext(auth.ContextWithUserID(req.Context(), 7))
		rec := httptest.NewRecorder()
		h.Create(rec, req)
		if rec.Code != 201 {
			t.Fatalf("design %d status = %d, want 201", i, rec.Code)
		}
	}

	req := httptest.NewRequest("POST", "/designs", bytes.NewReader(body))
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != 403 {
		t.Fatalf("over-limit status = %d, want 403", rec.Code)
	}
	if got := len(h.Store.List(7)); got != freeDesignLimit {
		t.Fatalf("stored %d designs, want %d", got, freeDesignLimit)
	}

	// A subscription lifts the cap.
	req = httptest.NewRequest("POST", "/designs", bytes.NewReader(body))
	req = req.WithContext(auth.ContextWithPremium(auth.ContextWithUserID(req.Context(), 7), true))
	rec = httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != 201 {
		t.Fatalf("subscriber status = %d, want 201", rec.Code)
	}
}

func TestHandler_CreateRejectsInvalidDesign(t *testing.T) {
	h := &Handler{Store: NewStore()}
	in, _ := calcSample(t)
	in.WCRatio = 0

	body, _ := json.Marshal(CreateRequest{Inputs: in})
	req := httptest.NewRequest("POST", "/designs", bytes.NewReader(body))
	req = req.WithContext(auth.ContextWithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(h.Store.List(7)) != 0 {
		t.Fatal("invalid design was stored")
	}
}
