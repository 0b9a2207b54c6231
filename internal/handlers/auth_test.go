package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	api, sm, _ := newTestAPI(t)

	creds := map[string]string{"username": "operator", "password": "s3cret"}
	w := serve(api.Register, jsonRequest(t, http.MethodPost, "/api/register", creds))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d (%s)", w.Code, w.Body.String())
	}
	if got := decodeBody[accountResponse](t, w); got.Username != "operator" {
		t.Fatalf("unexpected register response: %+v", got)
	}

	w = serve(api.Register, jsonRequest(t, http.MethodPost, "/api/register", creds))
	expectError(t, w, http.StatusBadRequest, "username already exists")

	login := sm.LoadAndSave(http.HandlerFunc(api.Login))
	w = httptest.NewRecorder()
	login.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/login", creds))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", w.Code, w.Body.String())
	}
	if got := decodeBody[accountResponse](t, w); got.Message != "login successful" {
		t.Fatalf("unexpected login response: %+v", got)
	}
	if cookies := w.Result().Cookies(); len(cookies) == 0 || cookies[0].Name != sm.Cookie.Name {
		t.Fatalf("expected a session cookie, got %v", cookies)
	}

	wrong := map[string]string{"username": "operator", "password": "nope"}
	w = httptest.NewRecorder()
	login.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/login", wrong))
	expectError(t, w, http.StatusUnauthorized, "invalid username or password")
}

func TestRegisterRequiresCredentials(t *testing.T) {
	t.Parallel()

	api, _, _ := newTestAPI(t)

	tests := []struct {
		name  string
		creds map[string]string
	}{
		{"empty", map[string]string{}},
		{"no password", map[string]string{"username": "operator"}},
		{"blank username", map[string]string{"username": "   ", "password": "x"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serve(api.Register, jsonRequest(t, http.MethodPost, "/api/register", tt.creds))
			expectError(t, w, http.StatusBadRequest, "username and password are required")
		})
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	t.Parallel()

	api, sm, _ := newTestAPI(t)

	w := httptest.NewRecorder()
	sm.LoadAndSave(http.HandlerFunc(api.Logout)).ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/logout", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", w.Code, w.Body.String())
	}
	if got := decodeBody[map[string]string](t, w); got["message"] != "logged out" {
		t.Fatalf("unexpected logout response: %v", got)
	}
}
