package handlers

import (
	"net/http"

	"dairyledger/internal/ledger"
	"dairyledger/models"
)

type dispatchResponse struct {
	ID     uint   `json:"id"`
	Milk   *int   `json:"milk"`
	Curd   *int   `json:"curd"`
	Paneer *int   `json:"paneer"`
	Butter *int   `json:"butter"`
	Ghee   *int   `json:"ghee"`
	Honey  *int   `json:"honey"`
	Cheese *int   `json:"cheese"`
	Date   string `json:"date"`
}

func projectDispatch(dispatch models.ProductDispatch) dispatchResponse {
	return dispatchResponse{
		ID:     dispatch.ID,
		Milk:   dispatch.Milk,
		Curd:   dispatch.Curd,
		Paneer: dispatch.Paneer,
		Butter: dispatch.Butter,
		Ghee:   dispatch.Ghee,
		Honey:  dispatch.Honey,
		Cheese: dispatch.Cheese,
		Date:   models.FormatDate(dispatch.Date),
	}
}

func (a *API) ListDispatches(w http.ResponseWriter, r *http.Request) {
	dispatches, err := a.ledger.Dispatches.List(r.Context())
	respondList(w, r, dispatches, err, projectDispatch)
}

// CreateDispatch ignores any date in the body; the record is dated today.
func (a *API) CreateDispatch(w http.ResponseWriter, r *http.Request) {
	var in ledger.DispatchInput
	if !decodeJSON(w, r, &in) {
		return
	}
	dispatch, err := a.ledger.Dispatches.Create(r.Context(), in)
	respondRecord(w, r, http.StatusCreated, dispatch, err, projectDispatch)
}

func (a *API) GetDispatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	dispatch, err := a.ledger.Dispatches.Get(r.Context(), id)
	respondRecord(w, r, http.StatusOK, dispatch, err, projectDispatch)
}

func (a *API) UpdateDispatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in ledger.DispatchInput
	if !decodeJSON(w, r, &in) {
		return
	}
	dispatch, err := a.ledger.Dispatches.Update(r.Context(), id, in)
	respondRecord(w, r, http.StatusOK, dispatch, err, projectDispatch)
}

func (a *API) DeleteDispatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	dispatch, err := a.ledger.Dispatches.Delete(r.Context(), id)
	respondRecord(w, r, http.StatusOK, dispatch, err, projectDispatch)
}
