package handlers

import (
	"net/http"

	"dairyledger/internal/ledger"
)

func (a *API) FarmNames(w http.ResponseWriter, r *http.Request) {
	names, err := a.ledger.Lookups.FarmNames(r.Context())
	if err != nil {
		writeLedgerError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, names)
}

// Statuses returns a handler listing the distinct labels of one quality channel.
func (a *API) Statuses(channel ledger.QualityChannel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses, err := a.ledger.Lookups.Statuses(r.Context(), channel)
		if err != nil {
			writeLedgerError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, statuses)
	}
}
