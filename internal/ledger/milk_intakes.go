package ledger

import (
	"context"

	"gorm.io/gorm"

	applog "dairyledger/internal/log"
	"dairyledger/models"
)

// MilkIntakeService records quality-graded deliveries.
type MilkIntakeService struct {
	db   *gorm.DB
	refs *ReferenceValidator
}

func NewMilkIntakeService(db *gorm.DB, refs *ReferenceValidator) *MilkIntakeService {
	return &MilkIntakeService{db: db, refs: refs}
}

// Create validates the payload, requires farm_name to name a registered
// farm and inserts the delivery.
func (s *MilkIntakeService) Create(ctx context.Context, in MilkIntakeInput) (*models.MilkIntake, error) {
	intake, err := in.record()
	if err != nil {
		return nil, err
	}
	err = inTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.refs.using(tx).RequireFarm(ctx, intake.FarmName); err != nil {
			return err
		}
		return tx.Create(&intake).Error
	})
	if err != nil {
		return nil, err
	}
	applog.Debug(ctx, "milk intake created", "id", intake.ID, "farm_name", intake.FarmName)
	return &intake, nil
}

func (s *MilkIntakeService) Get(ctx context.Context, id uint) (*models.MilkIntake, error) {
	return findByID[models.MilkIntake](ctx, s.db, id)
}

func (s *MilkIntakeService) List(ctx context.Context) ([]models.MilkIntake, error) {
	return listAll[models.MilkIntake](ctx, s.db)
}

// Update replaces every field of the delivery. farm_name is not checked
// against the registry here.
func (s *MilkIntakeService) Update(ctx context.Context, id uint, in MilkIntakeInput) (*models.MilkIntake, error) {
	intake, err := replace(ctx, s.db, id, func(current *models.MilkIntake) error {
		next, err := in.record()
		if err != nil {
			return err
		}
		next.ID = current.ID
		*current = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	applog.Debug(ctx, "milk intake updated", "id", intake.ID)
	return intake, nil
}

func (s *MilkIntakeService) Delete(ctx context.Context, id uint) (*models.MilkIntake, error) {
	return remove[models.MilkIntake](ctx, s.db, id)
}
