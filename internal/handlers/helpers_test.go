package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"dairyledger/internal/auth"
	"dairyledger/internal/db/mock"
	"dairyledger/internal/ledger"
)

func newTestAPI(t *testing.T) (*API, *scs.SessionManager, *gorm.DB) {
	t.Helper()

	db, err := mock.Open(context.Background(), mock.MemoryDSN())
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	sm := scs.New()
	return NewAPI(ledger.New(db), auth.NewService(db), sm), sm, db
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withID(r *http.Request, id uint) *http.Request {
	return mux.SetURLVars(r, map[string]string{"id": strconv.FormatUint(uint64(id), 10)})
}

func serve(handler http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler(w, r)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d (%s)", status, w.Code, w.Body.String())
	}
	body := decodeBody[map[string]string](t, w)
	if len(body) != 1 {
		t.Fatalf("expected a single error key, got %v", body)
	}
	if message != "" && body["error"] != message {
		t.Fatalf("expected error %q, got %q", message, body["error"])
	}
}

func greenValley() map[string]any {
	return map[string]any{
		"farm_name":   "Green Valley",
		"farmer_name": "R. Kumar",
		"num_cows":    12,
		"date":        "2024-06-01",
	}
}

func intakeBody(farmName, date string) map[string]any {
	return map[string]any{
		"farm_name":         farmName,
		"milk_liters":       42.5,
		"snf":               8.4,
		"snf_status":        "good",
		"alcohol":           0,
		"alcohol_status":    "negative",
		"antibiotic":        0,
		"antibiotic_status": "negative",
		"date":              date,
	}
}

func paymentBody(farmName string) map[string]any {
	return map[string]any{
		"farm_name":        farmName,
		"liters_per_month": 1200,
		"liters_returned":  20,
		"amount_per_liter": 38.5,
		"total_amount":     45430,
		"status":           "pending",
	}
}
