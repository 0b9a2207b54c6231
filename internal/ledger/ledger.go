// Package ledger implements the cooperative's record keeping: the farm
// registry, milk intakes, payments and product dispatches, and the
// farm_name consistency rules between them.
package ledger

import (
	"context"

	"gorm.io/gorm"
)

// Services bundles the entity services sharing one store handle.
type Services struct {
	Farms      *FarmService
	Intakes    *MilkIntakeService
	Payments   *PaymentService
	Dispatches *DispatchService
	Lookups    *LookupService
	References *ReferenceValidator

	db *gorm.DB
}

func New(db *gorm.DB) *Services {
	refs := NewReferenceValidator(db)
	return &Services{
		Farms:      NewFarmService(db),
		Intakes:    NewMilkIntakeService(db, refs),
		Payments:   NewPaymentService(db, refs),
		Dispatches: NewDispatchService(db),
		Lookups:    NewLookupService(db),
		References: refs,
		db:         db,
	}
}

// Ping checks that the store answers.
func (s *Services) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return StoreError(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return StoreError(err)
	}
	return nil
}
