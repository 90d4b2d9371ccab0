package repository

import (
	"testing"

	"github.com/diewo77/bakery-app/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Customer{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newRepos(t *testing.T) (*CategoryRepository, *ProductRepository, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	products := NewProductRepository(db)
	return NewCategoryRepository(db, products), products, db
}

func ptr[T any](v T) *T { return &v }
