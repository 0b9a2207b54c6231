package ledger

import (
	"context"

	"gorm.io/gorm"

	applog "dairyledger/internal/log"
	"dairyledger/models"
)

// FarmService manages the farm registry. Deleting a farm does not look at
// milk intakes or payments that still name it.
type FarmService struct {
	db *gorm.DB
}

func NewFarmService(db *gorm.DB) *FarmService {
	return &FarmService{db: db}
}

// Create registers a farm. A duplicate farm_name is rejected by the store's
// unique index and surfaces as StoreError.
func (s *FarmService) Create(ctx context.Context, in FarmInput) (*models.Farm, error) {
	farm, err := in.newFarm()
	if err != nil {
		return nil, err
	}
	if err := create(ctx, s.db, &farm); err != nil {
		applog.Error(ctx, "failed to create farm", "farm_name", farm.FarmName, "error", err)
		return nil, err
	}
	applog.Debug(ctx, "farm created", "id", farm.ID, "farm_name", farm.FarmName)
	return &farm, nil
}

func (s *FarmService) Get(ctx context.Context, id uint) (*models.Farm, error) {
	return findByID[models.Farm](ctx, s.db, id)
}

func (s *FarmService) List(ctx context.Context) ([]models.Farm, error) {
	return listAll[models.Farm](ctx, s.db)
}

// Update applies a partial update: fields absent from in keep their value.
func (s *FarmService) Update(ctx context.Context, id uint, in FarmInput) (*models.Farm, error) {
	farm, err := replace(ctx, s.db, id, func(farm *models.Farm) error {
		return in.applyTo(farm)
	})
	if err != nil {
		return nil, err
	}
	applog.Debug(ctx, "farm updated", "id", farm.ID)
	return farm, nil
}

func (s *FarmService) Delete(ctx context.Context, id uint) (*models.Farm, error) {
	farm, err := remove[models.Farm](ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	applog.Debug(ctx, "farm deleted", "id", farm.ID, "farm_name", farm.FarmName)
	return farm, nil
}
