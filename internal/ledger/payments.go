package ledger

import (
	"context"

	"gorm.io/gorm"

	applog "dairyledger/internal/log"
	"dairyledger/models"
)

// PaymentService records per-farm settlements. Amounts are taken as given;
// nothing is aggregated from milk intakes.
type PaymentService struct {
	db   *gorm.DB
	refs *ReferenceValidator
}

func NewPaymentService(db *gorm.DB, refs *ReferenceValidator) *PaymentService {
	return &PaymentService{db: db, refs: refs}
}

func (s *PaymentService) Create(ctx context.Context, in PaymentInput) (*models.Payment, error) {
	payment, err := in.record()
	if err != nil {
		return nil, err
	}
	err = inTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.refs.using(tx).RequireFarm(ctx, payment.FarmName); err != nil {
			return err
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	applog.Debug(ctx, "payment created", "id", payment.ID, "farm_name", payment.FarmName, "status", payment.Status)
	return &payment, nil
}

func (s *PaymentService) Get(ctx context.Context, id uint) (*models.Payment, error) {
	return findByID[models.Payment](ctx, s.db, id)
}

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	return listAll[models.Payment](ctx, s.db)
}

// Update replaces every field of the payment without re-checking farm_name.
func (s *PaymentService) Update(ctx context.Context, id uint, in PaymentInput) (*models.Payment, error) {
	return replace(ctx, s.db, id, func(current *models.Payment) error {
		next, err := in.record()
		if err != nil {
			return err
		}
		next.ID = current.ID
		*current = next
		return nil
	})
}

func (s *PaymentService) Delete(ctx context.Context, id uint) (*models.Payment, error) {
	return remove[models.Payment](ctx, s.db, id)
}
