package handlers

import (
	"net/http"

	"dairyledger/internal/ledger"
	"dairyledger/models"
)

type farmResponse struct {
	ID             uint   `json:"id"`
	FarmName       string `json:"farm_name"`
	FarmerName     string `json:"farmer_name"`
	FarmerPhone    string `json:"farmer_phone"`
	Caretaker      string `json:"caretaker"`
	CaretakerPhone string `json:"caretaker_phone"`
	Location       string `json:"location"`
	Devices        string `json:"devices"`
	NumCows        int    `json:"num_cows"`
	NumCalves      int    `json:"num_calves"`
	Date           string `json:"date"`
}

func projectFarm(farm models.Farm) farmResponse {
	return farmResponse{
		ID:             farm.ID,
		FarmName:       farm.FarmName,
		FarmerName:     farm.FarmerName,
		FarmerPhone:    farm.FarmerPhone,
		Caretaker:      farm.Caretaker,
		CaretakerPhone: farm.CaretakerPhone,
		Location:       farm.Location,
		Devices:        farm.Devices,
		NumCows:        farm.NumCows,
		NumCalves:      farm.NumCalves,
		Date:           models.FormatDate(farm.Date),
	}
}

func (a *API) ListFarms(w http.ResponseWriter, r *http.Request) {
	farms, err := a.ledger.Farms.List(r.Context())
	respondList(w, r, farms, err, projectFarm)
}

func (a *API) CreateFarm(w http.ResponseWriter, r *http.Request) {
	var in ledger.FarmInput
	if !decodeJSON(w, r, &in) {
		return
	}
	farm, err := a.ledger.Farms.Create(r.Context(), in)
	respondRecord(w, r, http.StatusCreated, farm, err, projectFarm)
}

func (a *API) GetFarm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	farm, err := a.ledger.Farms.Get(r.Context(), id)
	respondRecord(w, r, http.StatusOK, farm, err, projectFarm)
}

// UpdateFarm applies a partial update; omitted fields keep their values.
func (a *API) UpdateFarm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in ledger.FarmInput
	if !decodeJSON(w, r, &in) {
		return
	}
	farm, err := a.ledger.Farms.Update(r.Context(), id, in)
	respondRecord(w, r, http.StatusOK, farm, err, projectFarm)
}

func (a *API) DeleteFarm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	farm, err := a.ledger.Farms.Delete(r.Context(), id)
	respondRecord(w, r, http.StatusOK, farm, err, projectFarm)
}
