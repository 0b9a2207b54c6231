package handlers

import (
	"errors"
	"net/http"

	"dairyledger/internal/auth"
	applog "dairyledger/internal/log"
	"dairyledger/models"
)

const (
	sessionAuthenticatedKey = "auth:authenticated"
	sessionUserIDKey        = "auth:user:id"
	sessionUsernameKey      = "auth:user:name"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type accountResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// Register creates an operator account.
func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if !decodeJSON(w, r, &in) {
		return
	}

	user, err := a.accounts.Register(r.Context(), in.Username, in.Password)
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	applog.Info(r.Context(), "operator registered", "username", user.Username)
	writeJSON(w, r, http.StatusCreated, accountResponse{Message: "user registered", Username: user.Username})
}

// Login verifies the credentials and starts a session for the operator.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if !decodeJSON(w, r, &in) {
		return
	}

	user, err := a.accounts.Authenticate(r.Context(), in.Username, in.Password)
	if err != nil {
		writeAuthError(w, r, err)
		return
	}

	if err := a.establishSession(r, user); err != nil {
		applog.Error(r.Context(), "failed to establish session", "error", err)
		writeJSONError(w, r, http.StatusInternalServerError, "unable to start session")
		return
	}

	writeJSON(w, r, http.StatusOK, accountResponse{Message: "login successful", Username: user.Username})
}

// Logout destroys the current session.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	if a.sessions != nil {
		if err := a.sessions.Destroy(r.Context()); err != nil {
			applog.Error(r.Context(), "failed to destroy session", "error", err)
			writeJSONError(w, r, http.StatusInternalServerError, "unable to end session")
			return
		}
	}
	writeMessage(w, r, http.StatusOK, "logged out")
}

func (a *API) establishSession(r *http.Request, user *models.User) error {
	if a.sessions == nil {
		return nil
	}
	if err := a.sessions.RenewToken(r.Context()); err != nil {
		return err
	}
	a.sessions.Put(r.Context(), sessionAuthenticatedKey, true)
	a.sessions.Put(r.Context(), sessionUserIDKey, int(user.ID))
	a.sessions.Put(r.Context(), sessionUsernameKey, user.Username)
	return nil
}

func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrCredentialsRequired), errors.Is(err, auth.ErrUsernameTaken):
		writeJSONError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeJSONError(w, r, http.StatusUnauthorized, err.Error())
	default:
		applog.Error(r.Context(), "account store failure", "error", err)
		writeJSONError(w, r, http.StatusInternalServerError, "internal error")
	}
}
