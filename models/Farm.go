package models

import "gorm.io/datatypes"

// Farm is a registered supplier of the cooperative. FarmName is the natural
// key every dependent record refers to.
type Farm struct {
	ID             uint           `gorm:"primaryKey"`
	FarmName       string         `gorm:"size:100;uniqueIndex;not null"`
	FarmerName     string         `gorm:"size:100"`
	FarmerPhone    string         `gorm:"size:20"`
	Caretaker      string         `gorm:"size:100"`
	CaretakerPhone string         `gorm:"size:20"`
	Location       string         `gorm:"size:100"`
	Devices        string         `gorm:"size:255"`
	NumCows        int
	NumCalves      int
	Date           datatypes.Date
}

func (Farm) TableName() string {
	return "farm_details"
}
