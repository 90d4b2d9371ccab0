package repository

import (
	"context"

	"github.com/diewo77/bakery-app/internal/models"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// List returns all customers ordered by surname ascending.
func (r *CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Order("last_name asc").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
