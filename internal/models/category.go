package models

import "time"

// Category groups products on the shop pages. Names are unique across the
// whole table; uniqueness is also checked at the application layer so the
// caller gets a readable message instead of a driver error.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
