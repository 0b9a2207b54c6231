package handlers

import (
	"github.com/alexedwards/scs/v2"

	"dairyledger/internal/auth"
	"dairyledger/internal/ledger"
)

// API holds the dependencies shared by the HTTP handlers. Nothing is kept
// between requests beyond these handles.
type API struct {
	ledger   *ledger.Services
	accounts *auth.Service
	sessions *scs.SessionManager
}

// NewAPI wires the handlers to their services. sessions may be nil, in which
// case login succeeds without issuing a session cookie.
func NewAPI(services *ledger.Services, accounts *auth.Service, sessions *scs.SessionManager) *API {
	return &API{
		ledger:   services,
		accounts: accounts,
		sessions: sessions,
	}
}
