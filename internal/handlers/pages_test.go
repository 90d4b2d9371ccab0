package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diewo77/bakery-app/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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

func TestHomePage(t *testing.T) {
	h := NewPageHandler(setupTestDB(t))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.Home(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Welcome to the Bakery Shop") {
		t.Fatalf("home page body missing greeting: %s", w.Body.String())
	}
}

func TestProductsPage(t *testing.T) {
	db := setupTestDB(t)
	cat := models.Category{Name: "Bread"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("category: %v", err)
	}
	p := models.Product{CategoryID: cat.ID, Code: "BAG-001", Name: "Baguette", Price: decimal.NewFromFloat(1.20)}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("product: %v", err)
	}

	h := NewPageHandler(db)
	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	w := httptest.NewRecorder()
	h.Products(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Baguette", "BAG-001", "Bread", "1.20"} {
		if !strings.Contains(body, want) {
			t.Fatalf("products page missing %q: %s", want, body)
		}
	}
}

func TestCategoriesPageEmpty(t *testing.T) {
	h := NewPageHandler(setupTestDB(t))
	req := httptest.NewRequest(http.MethodGet, "/category", nil)
	w := httptest.NewRecorder()
	h.Categories(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No categories yet.") {
		t.Fatalf("empty state missing: %s", w.Body.String())
	}
}

func TestCustomersPageOrder(t *testing.T) {
	db := setupTestDB(t)
	for _, c := range []models.Customer{
		{FirstName: "Zoe", LastName: "Miller"},
		{FirstName: "Anna", LastName: "Adams"},
	} {
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("customer: %v", err)
		}
	}

	h := NewPageHandler(db)
	req := httptest.NewRequest(http.MethodGet, "/customer", nil)
	w := httptest.NewRecorder()
	h.Customers(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	body := w.Body.String()
	adams, miller := strings.Index(body, "Adams"), strings.Index(body, "Miller")
	if adams < 0 || miller < 0 {
		t.Fatalf("customers page missing rows: %s", body)
	}
	if adams > miller {
		t.Fatalf("customers not ordered by surname: %s", body)
	}
}

func TestNotFoundPage(t *testing.T) {
	h := NewPageHandler(setupTestDB(t))
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	h.NotFound(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Page not found") {
		t.Fatalf("404 page missing message: %s", w.Body.String())
	}
}
