package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dairyledger/internal/ledger"
	applog "dairyledger/internal/log"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(r.Context(), "failed to encode json response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, map[string]string{"error": message})
}

func writeMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, map[string]string{"message": message})
}

// decodeJSON reads the request body into dst, answering 400 when it is not
// a JSON object of the expected shape.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		applog.Debug(r.Context(), "invalid json payload", "path", r.URL.Path, "error", err)
		writeJSONError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request payload: %v", err))
		return false
	}
	return true
}

// pathID extracts the numeric {id} route variable.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		applog.Debug(r.Context(), "invalid record identifier", "identifier", raw, "error", err)
		writeJSONError(w, r, http.StatusNotFound, fmt.Sprintf("record %s not found", raw))
		return 0, false
	}
	return uint(id), true
}

// writeLedgerError maps a failed ledger operation onto a status code.
func writeLedgerError(w http.ResponseWriter, r *http.Request, err error) {
	var ledgerErr *ledger.Error
	if !errors.As(err, &ledgerErr) {
		applog.Error(r.Context(), "unexpected ledger failure", "path", r.URL.Path, "error", err)
		writeJSONError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	switch ledgerErr.Kind {
	case ledger.KindNotFound:
		applog.Debug(r.Context(), "record not found", "path", r.URL.Path, "id", ledgerErr.Detail)
		writeJSONError(w, r, http.StatusNotFound, ledgerErr.Error())
	case ledger.KindStore:
		applog.Error(r.Context(), "store write rolled back", "path", r.URL.Path, "error", ledgerErr.Err)
		writeJSONError(w, r, http.StatusBadRequest, ledgerErr.Error())
	default:
		applog.Debug(r.Context(), "request rejected", "path", r.URL.Path, "kind", ledgerErr.Kind.String(), "error", ledgerErr)
		writeJSONError(w, r, http.StatusBadRequest, ledgerErr.Error())
	}
}

// respondRecord writes a single record projected with project, or the error.
func respondRecord[M, Out any](w http.ResponseWriter, r *http.Request, status int, record *M, err error, project func(M) Out) {
	if err != nil {
		writeLedgerError(w, r, err)
		return
	}
	writeJSON(w, r, status, project(*record))
}

func respondList[M, Out any](w http.ResponseWriter, r *http.Request, records []M, err error, project func(M) Out) {
	if err != nil {
		writeLedgerError(w, r, err)
		return
	}
	out := make([]Out, 0, len(records))
	for _, record := range records {
		out = append(out, project(record))
	}
	writeJSON(w, r, http.StatusOK, out)
}

// NotFound answers unmatched routes with the JSON error body.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, r, http.StatusNotFound, "not found")
}

// MethodNotAllowed answers known paths requested with an unsupported verb.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

// InternalError answers a request whose handler failed unexpectedly.
func InternalError(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, r, http.StatusInternalServerError, "internal error")
}
