package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"gorm.io/gorm"

	"dairyledger/internal/db/mock"
)

func newTestDB(t *testing.T, seeded bool) *gorm.DB {
	t.Helper()

	var (
		db  *gorm.DB
		err error
	)
	if seeded {
		db, err = mock.New(context.Background())
	} else {
		db, err = mock.Open(context.Background(), mock.MemoryDSN())
	}
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestServer(t *testing.T, seeded bool) *Server {
	t.Helper()

	srv, err := New(Config{Addr: ":0", Database: newTestDB(t, seeded)})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	return srv
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	return out
}

func httptestRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func serveRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
