package mix

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestHandlerCalc(t *testing.T) {
	body, _ := json.Marshal(referenceInput())
	req := httptest.NewRequest("POST", "/tools/mix/calc", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	(&Handler{}).Calc(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "cement", res.CementKgM3, 370)
}

func TestHandlerCalc_BadJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/tools/mix/calc", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	(&Handler{}).Calc(rec, req)
	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandlerCalc_ValidationError(t *testing.T) {
	in := referenceInput()
	in.SlumpMM = 300
	body, _ := json.Marshal(in)
	req := httptest.NewRequest("POST", "/tools/mix/calc", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	(&Handler{}).Calc(rec, req)
	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("slump_mm")) {
		t.Fatalf("error body does not name the field: %s", rec.Body.String())
	}
}

func TestHandlerCalc_InconsistentMix(t *testing.T) {
	in := referenceInput()
	in.UnitWeightCAKgM3 = 1800
	in.SGCoarseAgg = 1.4
	in.SGFineAgg = 1.4
	body, _ := json.Marshal(in)
	req := httptest.NewRequest("POST", "/tools/mix/calc", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	(&Handler{}).Calc(rec, req)
	if rec.Code != 422 {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	faVol, ok := payload["fine_agg_m3"].(float64)
	if !ok || faVol >= 0 {
		t.Fatalf("response does not carry the negative volume: %v", payload)
	}
}
