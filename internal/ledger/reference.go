package ledger

import (
	"context"

	"gorm.io/gorm"

	applog "dairyledger/internal/log"
	"dairyledger/models"
)

// ReferenceValidator confirms that a farm_name used by a dependent record
// names a registered farm. The check is a plain read: a farm deleted between
// the check and the dependent insert leaves a dangling reference.
type ReferenceValidator struct {
	db *gorm.DB
}

func NewReferenceValidator(db *gorm.DB) *ReferenceValidator {
	return &ReferenceValidator{db: db}
}

// FarmExists reports whether a farm with exactly farmName is registered.
func (v *ReferenceValidator) FarmExists(ctx context.Context, farmName string) (bool, error) {
	var count int64
	err := v.db.WithContext(ctx).
		Model(&models.Farm{}).
		Where("farm_name = ?", farmName).
		Count(&count).Error
	if err != nil {
		return false, StoreError(err)
	}
	return count > 0, nil
}

// RequireFarm fails with UnknownFarm when farmName is not registered.
func (v *ReferenceValidator) RequireFarm(ctx context.Context, farmName string) error {
	exists, err := v.FarmExists(ctx, farmName)
	if err != nil {
		return err
	}
	if !exists {
		applog.Debug(ctx, "farm reference rejected", "farm_name", farmName)
		return UnknownFarm(farmName)
	}
	return nil
}

// using returns a validator bound to tx.
func (v *ReferenceValidator) using(tx *gorm.DB) *ReferenceValidator {
	return &ReferenceValidator{db: tx}
}
