package models

import "time"

// User represents an operator account that can sign in to the ledger.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:200;not null"`
	CreatedAt    time.Time
}
