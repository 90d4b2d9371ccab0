package handlers

import (
	"log"
	"net/http"

	"github.com/diewo77/bakery-app/internal/repository"
	"github.com/diewo77/bakery-app/internal/view"
	"gorm.io/gorm"
)

// PageHandler renders the shop pages. Each page composes one or more
// repository calls into template data; storage errors end the request with
// the 500 page.
type PageHandler struct {
	categories *repository.CategoryRepository
	products   *repository.ProductRepository
	customers  *repository.CustomerRepository
}

func NewPageHandler(db *gorm.DB) *PageHandler {
	products := repository.NewProductRepository(db)
	return &PageHandler{
		categories: repository.NewCategoryRepository(db, products),
		products:   products,
		customers:  repository.NewCustomerRepository(db),
	}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index.html", nil)
}

func (h *PageHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		ServerError(w, r, err)
		return
	}
	h.render(w, r, "products.html", map[string]any{"Products": products})
}

func (h *PageHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		ServerError(w, r, err)
		return
	}
	h.render(w, r, "categories.html", map[string]any{"Categories": categories})
}

func (h *PageHandler) Customers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context())
	if err != nil {
		ServerError(w, r, err)
		return
	}
	h.render(w, r, "customers.html", map[string]any{"Customers": customers})
}

// Orders is a static page; no order data is wired up yet.
func (h *PageHandler) Orders(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "orders.html", nil)
}

// NotFound renders the 404 page for unmatched routes.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := view.Render(w, r, "errors/404.html", nil); err != nil {
		http.Error(w, "page not found", http.StatusNotFound)
	}
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if err := view.Render(w, r, name, data); err != nil {
		ServerError(w, r, err)
	}
}

// ServerError logs the failure and renders the generic 500 page.
func ServerError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("ERROR: %s %s: %v", r.Method, r.URL.Path, err)
	w.WriteHeader(http.StatusInternalServerError)
	if rerr := view.Render(w, r, "errors/500.html", nil); rerr != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
