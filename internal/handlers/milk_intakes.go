package handlers

import (
	"net/http"

	"dairyledger/internal/ledger"
	"dairyledger/models"
)

type milkIntakeResponse struct {
	ID               uint    `json:"id"`
	FarmName         string  `json:"farm_name"`
	MilkLiters       float64 `json:"milk_liters"`
	SNF              float64 `json:"snf"`
	SNFStatus        string  `json:"snf_status"`
	Alcohol          float64 `json:"alcohol"`
	AlcoholStatus    string  `json:"alcohol_status"`
	Antibiotic       float64 `json:"antibiotic"`
	AntibioticStatus string  `json:"antibiotic_status"`
	Date             string  `json:"date"`
}

func projectMilkIntake(intake models.MilkIntake) milkIntakeResponse {
	return milkIntakeResponse{
		ID:               intake.ID,
		FarmName:         intake.FarmName,
		MilkLiters:       intake.MilkLiters,
		SNF:              intake.SNF,
		SNFStatus:        intake.SNFStatus,
		Alcohol:          intake.Alcohol,
		AlcoholStatus:    intake.AlcoholStatus,
		Antibiotic:       intake.Antibiotic,
		AntibioticStatus: intake.AntibioticStatus,
		Date:             models.FormatDate(intake.Date),
	}
}

func (a *API) ListMilkIntakes(w http.ResponseWriter, r *http.Request) {
	intakes, err := a.ledger.Intakes.List(r.Context())
	respondList(w, r, intakes, err, projectMilkIntake)
}

// CreateMilkIntake rejects deliveries whose farm_name is not registered.
func (a *API) CreateMilkIntake(w http.ResponseWriter, r *http.Request) {
	var in ledger.MilkIntakeInput
	if !decodeJSON(w, r, &in) {
		return
	}
	intake, err := a.ledger.Intakes.Create(r.Context(), in)
	respondRecord(w, r, http.StatusCreated, intake, err, projectMilkIntake)
}

func (a *API) GetMilkIntake(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	intake, err := a.ledger.Intakes.Get(r.Context(), id)
	respondRecord(w, r, http.StatusOK, intake, err, projectMilkIntake)
}

func (a *API) UpdateMilkIntake(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in ledger.MilkIntakeInput
	if !decodeJSON(w, r, &in) {
		return
	}
	intake, err := a.ledger.Intakes.Update(r.Context(), id, in)
	respondRecord(w, r, http.StatusOK, intake, err, projectMilkIntake)
}

func (a *API) DeleteMilkIntake(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	intake, err := a.ledger.Intakes.Delete(r.Context(), id)
	respondRecord(w, r, http.StatusOK, intake, err, projectMilkIntake)
}
