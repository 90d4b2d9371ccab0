package repository

import (
	"context"
	"errors"

	"github.com/diewo77/bakery-app/internal/models"
	"github.com/diewo77/bakery-app/internal/validation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product lookup matches no row.
var ErrProductNotFound = errors.New("product not found")

// ProductInput carries raw input for a product write. Pointer fields
// distinguish absent values from empty or zero ones, so "Missing price." and
// "Price must be a nonnegative value." stay separate failures.
type ProductInput struct {
	CategoryID *uint
	Code       *string
	Name       *string
	Price      *decimal.Decimal
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns all products with their categories preloaded; an empty slice
// when the table is empty.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Preload("Category").Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListByCategory returns the products referencing the given category.
func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// CountByCategory reports how many products reference the given category.
// The category repository uses this as its referential guard before delete.
func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) GetByCode(ctx context.Context, code string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Preload("Category").Where("code = ?", code).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Insert validates the input and creates the product, returning the
// freshly-read row.
func (r *ProductRepository) Insert(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := r.validateForInsert(ctx, in); err != nil {
		return nil, err
	}
	product := models.Product{
		CategoryID: *in.CategoryID,
		Code:       *in.Code,
		Name:       *in.Name,
		Price:      *in.Price,
	}
	if err := r.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}
	return r.GetByCode(ctx, product.Code)
}

// Update replaces all writable fields of the product with the given id and
// returns the freshly-read row.
func (r *ProductRepository) Update(ctx context.Context, id uint, in ProductInput) (*models.Product, error) {
	if err := r.validateForUpdate(ctx, id, in); err != nil {
		return nil, err
	}
	updates := map[string]any{
		"category_id": *in.CategoryID,
		"code":        *in.Code,
		"name":        *in.Name,
		"price":       *in.Price,
	}
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByCode(ctx, *in.Code)
}

// Delete removes the product with the given id and returns the deleted row,
// or ErrProductNotFound when the id matches nothing.
func (r *ProductRepository) Delete(ctx context.Context, id uint) (*models.Product, error) {
	product, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Product{}, id).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Checks run in a fixed order and stop at the first failure: code, name,
// category id, price.
func (r *ProductRepository) validateForInsert(ctx context.Context, in ProductInput) error {
	if err := r.validateCode(ctx, in.Code); err != nil {
		return err
	}
	if err := validateName(in.Name); err != nil {
		return err
	}
	if err := r.validateCategoryID(ctx, in.CategoryID); err != nil {
		return err
	}
	return validatePrice(in.Price)
}

func (r *ProductRepository) validateForUpdate(ctx context.Context, id uint, in ProductInput) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return validation.Fail("There is no product with the specified id.")
		}
		return err
	}
	if err := r.validateUpdatedCode(ctx, in.Code, id); err != nil {
		return err
	}
	if err := validateName(in.Name); err != nil {
		return err
	}
	if err := r.validateCategoryID(ctx, in.CategoryID); err != nil {
		return err
	}
	return validatePrice(in.Price)
}

func (r *ProductRepository) validateCode(ctx context.Context, code *string) error {
	if code == nil {
		return validation.Fail("Missing product code.")
	}
	if len(*code) == 0 {
		return validation.Fail("Product code cannot be empty.")
	}
	_, err := r.GetByCode(ctx, *code)
	if err == nil {
		return validation.Fail("Product code exists already.")
	}
	if !errors.Is(err, ErrProductNotFound) {
		return err
	}
	return nil
}

// validateUpdatedCode treats the code as available when it already belongs to
// the product being updated.
func (r *ProductRepository) validateUpdatedCode(ctx context.Context, code *string, id uint) error {
	if code == nil {
		return validation.Fail("Missing product code.")
	}
	if len(*code) == 0 {
		return validation.Fail("Product code cannot be empty.")
	}
	owner, err := r.GetByCode(ctx, *code)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil
		}
		return err
	}
	if owner.ID != id {
		return validation.Fail("Product code exists already.")
	}
	return nil
}

func validateName(name *string) error {
	if name == nil {
		return validation.Fail("Missing product name.")
	}
	if len(*name) == 0 {
		return validation.Fail("Product name cannot be empty.")
	}
	if len(*name) < 3 {
		return validation.Fail("Product name must have at least 3 characters.")
	}
	return nil
}

func (r *ProductRepository) validateCategoryID(ctx context.Context, categoryID *uint) error {
	if categoryID == nil {
		return validation.Fail("Missing category id.")
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", *categoryID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return validation.Fail("Category ID does not exist.")
	}
	return nil
}

func validatePrice(price *decimal.Decimal) error {
	if price == nil {
		return validation.Fail("Missing price.")
	}
	if price.IsNegative() {
		return validation.Fail("Price must be a nonnegative value.")
	}
	return nil
}
