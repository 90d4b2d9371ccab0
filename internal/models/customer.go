package models

import "time"

// Customer is read-only in this application; rows come from the seeded
// database and are only ever listed.
type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null;index"`
	Email     string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
