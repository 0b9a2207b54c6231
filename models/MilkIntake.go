package models

import "gorm.io/datatypes"

// MilkIntake records one quality-graded milk delivery. The status labels are
// whatever the grader entered; they are not derived from the readings.
type MilkIntake struct {
	ID               uint           `gorm:"primaryKey"`
	FarmName         string         `gorm:"size:100;not null;index"`
	MilkLiters       float64        `gorm:"not null"`
	SNF              float64        `gorm:"column:snf;not null"`
	SNFStatus        string         `gorm:"column:snf_status;size:20;not null"`
	Alcohol          float64        `gorm:"not null"`
	AlcoholStatus    string         `gorm:"size:20;not null"`
	Antibiotic       float64        `gorm:"not null"`
	AntibioticStatus string         `gorm:"size:20;not null"`
	Date             datatypes.Date `gorm:"not null"`
}

func (MilkIntake) TableName() string {
	return "milk_details"
}
