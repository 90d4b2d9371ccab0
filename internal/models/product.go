package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a single catalogue entry. Code is the human-readable unique
// identifier (e.g. "BAG-001"); CategoryID must reference an existing
// category, enforced by the repository rather than the storage engine.
type Product struct {
	ID         uint            `gorm:"primaryKey"`
	CategoryID uint            `gorm:"not null;index"`
	Category   Category        `gorm:"foreignKey:CategoryID"`
	Code       string          `gorm:"size:40;not null;uniqueIndex"`
	Name       string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
