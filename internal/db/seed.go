package db

import (
	"errors"

	"github.com/diewo77/bakery-app/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed loads the sample shop data. It is idempotent: rows are matched by
// their unique column and only created when absent, so re-running on an
// existing database changes nothing.
func Seed(conn *gorm.DB) error {
	categories := []models.Category{
		{Name: "Bread"},
		{Name: "Pastries"},
		{Name: "Cakes"},
	}
	for _, c := range categories {
		var existing models.Category
		err := conn.Where("name = ?", c.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := conn.Create(&c).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	categoryID := func(name string) uint {
		var c models.Category
		conn.Where("name = ?", name).First(&c)
		return c.ID
	}

	products := []models.Product{
		{CategoryID: categoryID("Bread"), Code: "BAG-001", Name: "Baguette", Price: decimal.NewFromFloat(1.20)},
		{CategoryID: categoryID("Bread"), Code: "SRD-001", Name: "Sourdough Loaf", Price: decimal.NewFromFloat(3.50)},
		{CategoryID: categoryID("Pastries"), Code: "CRO-001", Name: "Butter Croissant", Price: decimal.NewFromFloat(1.80)},
		{CategoryID: categoryID("Pastries"), Code: "PNR-001", Name: "Pain au Raisin", Price: decimal.NewFromFloat(2.10)},
		{CategoryID: categoryID("Cakes"), Code: "CHC-001", Name: "Chocolate Cake", Price: decimal.NewFromFloat(14.00)},
	}
	for _, p := range products {
		var existing models.Product
		err := conn.Where("code = ?", p.Code).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := conn.Create(&p).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	customers := []models.Customer{
		{FirstName: "Alice", LastName: "Martin", Email: "alice.martin@example.com", City: "Lyon"},
		{FirstName: "Bruno", LastName: "Dubois", Email: "bruno.dubois@example.com", City: "Paris"},
		{FirstName: "Chloe", LastName: "Bernard", Email: "chloe.bernard@example.com", City: "Lille"},
	}
	for _, c := range customers {
		var existing models.Customer
		err := conn.Where("email = ?", c.Email).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := conn.Create(&c).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}
