package handlers

import (
	"net/http"
	"time"

	applog "dairyledger/internal/log"
)

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// Health is a readiness handler suitable for infrastructure probes. It
// reports 503 while the store does not answer.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "health check requested", "method", r.Method)

	resp := healthResponse{Status: "ok", Time: time.Now().UTC()}
	status := http.StatusOK
	if err := a.ledger.Ping(r.Context()); err != nil {
		applog.Error(r.Context(), "health check failed", "error", err)
		resp.Status = "unavailable"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, r, status, resp)
}
