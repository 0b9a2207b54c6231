package handlers

import (
	"net/http"

	"dairyledger/internal/ledger"
	"dairyledger/models"
)

type paymentResponse struct {
	ID             uint    `json:"id"`
	FarmName       string  `json:"farm_name"`
	LitersPerMonth float64 `json:"liters_per_month"`
	LitersReturned float64 `json:"liters_returned"`
	AmountPerLiter float64 `json:"amount_per_liter"`
	TotalAmount    float64 `json:"total_amount"`
	Status         string  `json:"status"`
}

func projectPayment(payment models.Payment) paymentResponse {
	return paymentResponse{
		ID:             payment.ID,
		FarmName:       payment.FarmName,
		LitersPerMonth: payment.LitersPerMonth,
		LitersReturned: payment.LitersReturned,
		AmountPerLiter: payment.AmountPerLiter,
		TotalAmount:    payment.TotalAmount,
		Status:         payment.Status,
	}
}

func (a *API) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := a.ledger.Payments.List(r.Context())
	respondList(w, r, payments, err, projectPayment)
}

func (a *API) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var in ledger.PaymentInput
	if !decodeJSON(w, r, &in) {
		return
	}
	payment, err := a.ledger.Payments.Create(r.Context(), in)
	respondRecord(w, r, http.StatusCreated, payment, err, projectPayment)
}

func (a *API) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	payment, err := a.ledger.Payments.Get(r.Context(), id)
	respondRecord(w, r, http.StatusOK, payment, err, projectPayment)
}

func (a *API) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in ledger.PaymentInput
	if !decodeJSON(w, r, &in) {
		return
	}
	payment, err := a.ledger.Payments.Update(r.Context(), id, in)
	respondRecord(w, r, http.StatusOK, payment, err, projectPayment)
}

func (a *API) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	payment, err := a.ledger.Payments.Delete(r.Context(), id)
	respondRecord(w, r, http.StatusOK, payment, err, projectPayment)
}

// PaymentStatusOptions lists the statuses offered by the payment form.
func (a *API) PaymentStatusOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, models.PaymentStatusOptions())
}
