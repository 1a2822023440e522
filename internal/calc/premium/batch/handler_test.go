package batch

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	mix "AceMix/internal/calc/mix"
)

func postBatch(t *testing.T, items []mix.Input) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(MixBatchInput{Items: items})
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", "/tools/mix/batch", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	(&Handler{}).Mix(rec, req)
	return rec
}

func TestHandler_Mix(t *testing.T) {
	rec := postBatch(t, []mix.Input{validInput(), validInput()})
	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res MixBatchResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if len(res.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(res.Results))
	}
}

func TestHandler_Mix_InvalidItem(t *testing.T) {
	bad := validInput()
	bad.WCRatio = 0

	rec := postBatch(t, []mix.Input{validInput(), bad})
	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "item 1") {
		t.Fatalf("body should name the failing item: %s", rec.Body.String())
	}
}

func TestHandler_Mix_InconsistentItem(t *testing.T) {
	bad := validInput()
	bad.UnitWeightCAKgM3 = 1800
	bad.SGCoarseAgg = 1.4
	bad.SGFineAgg = 1.4

	rec := postBatch(t, []mix.Input{validInput(), bad})
	if rec.Code != 422 {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	fa, ok := body["fine_agg_m3"].(float64)
	if !ok || fa >= 0 {
		t.Fatalf("response should carry the negative fine aggregate volume: %v", body)
	}
}
