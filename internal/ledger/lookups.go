package ledger

import (
	"context"

	"gorm.io/gorm"

	"dairyledger/models"
)

// QualityChannel names one of the graded milk quality readings.
type QualityChannel string

const (
	ChannelSNF        QualityChannel = "snf_status"
	ChannelAlcohol    QualityChannel = "alcohol_status"
	ChannelAntibiotic QualityChannel = "antibiotic_status"
)

// LookupService feeds client form dropdowns.
type LookupService struct {
	db *gorm.DB
}

func NewLookupService(db *gorm.DB) *LookupService {
	return &LookupService{db: db}
}

func (s *LookupService) FarmNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	err := s.db.WithContext(ctx).
		Model(&models.Farm{}).
		Order("farm_name").
		Pluck("farm_name", &names).Error
	if err != nil {
		return nil, StoreError(err)
	}
	return names, nil
}

// Statuses returns the distinct labels recorded so far for channel.
func (s *LookupService) Statuses(ctx context.Context, channel QualityChannel) ([]string, error) {
	column := string(channel)
	statuses := make([]string, 0)
	err := s.db.WithContext(ctx).
		Model(&models.MilkIntake{}).
		Distinct(column).
		Order(column).
		Pluck(column, &statuses).Error
	if err != nil {
		return nil, StoreError(err)
	}
	return statuses, nil
}
