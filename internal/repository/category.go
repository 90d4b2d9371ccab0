package repository

import (
	"context"
	"errors"

	"github.com/diewo77/bakery-app/internal/models"
	"github.com/diewo77/bakery-app/internal/validation"
	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a category lookup matches no row.
var ErrCategoryNotFound = errors.New("category not found")

// ProductCounter is the narrow capability the category repository needs from
// the product side: deletion must refuse while products still reference the
// category. Keeping it an interface avoids wiring the two repositories into
// each other.
type ProductCounter interface {
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

// CategoryInput carries raw input for a category write. Pointer fields
// distinguish absent values from empty ones.
type CategoryInput struct {
	Name *string
}

type CategoryRepository struct {
	db       *gorm.DB
	products ProductCounter
}

func NewCategoryRepository(db *gorm.DB, products ProductCounter) *CategoryRepository {
	return &CategoryRepository{db: db, products: products}
}

// List returns all categories; an empty slice when the table is empty.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetByName matches the name exactly (case-sensitive).
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Insert validates the input and creates the category, returning the
// freshly-read row. A validation.Error leaves storage untouched.
func (r *CategoryRepository) Insert(ctx context.Context, in CategoryInput) (*models.Category, error) {
	if err := r.validateName(ctx, in.Name); err != nil {
		return nil, err
	}
	category := models.Category{Name: *in.Name}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return r.GetByName(ctx, category.Name)
}

// Delete removes the category and returns the deleted row. It fails with
// ErrCategoryNotFound when the id matches nothing and with a validation.Error
// while any product still references the category.
func (r *CategoryRepository) Delete(ctx context.Context, id uint) (*models.Category, error) {
	category, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := r.products.CountByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, validation.Fail("The category cannot be deleted since it contains products.")
	}
	if err := r.db.WithContext(ctx).Delete(&models.Category{}, id).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepository) validateName(ctx context.Context, name *string) error {
	if name == nil {
		return validation.Fail("Missing category name.")
	}
	if len(*name) == 0 {
		return validation.Fail("Category name cannot be empty.")
	}
	_, err := r.GetByName(ctx, *name)
	if err == nil {
		return validation.Fail("Category name exists already.")
	}
	if !errors.Is(err, ErrCategoryNotFound) {
		return err
	}
	return nil
}
