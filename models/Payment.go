package models

// Payment is a settlement for one farm over one period. TotalAmount is
// supplied by the caller.
type Payment struct {
	ID             uint    `gorm:"primaryKey"`
	FarmName       string  `gorm:"size:100;not null;index"`
	LitersPerMonth float64
	LitersReturned float64
	AmountPerLiter float64
	TotalAmount    float64
	Status         string `gorm:"size:20"`
}

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

// PaymentStatusOptions lists the statuses offered to clients. Status is not
// constrained to these values.
func PaymentStatusOptions() []string {
	return []string{PaymentStatusPaid, PaymentStatusPending}
}
