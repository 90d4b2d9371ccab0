package main

import (
	"net/http"

	"github.com/diewo77/bakery-app/internal/handlers"
	"github.com/diewo77/bakery-app/internal/httpx"
	"github.com/diewo77/bakery-app/internal/middleware"
	"gorm.io/gorm"
)

// App is the root application handler with all routes configured.
type App struct {
	mux *http.ServeMux
	db  *gorm.DB
}

func NewApp(db *gorm.DB) *App {
	app := &App{mux: http.NewServeMux(), db: db}
	app.setupRoutes()
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	middleware.Prefs(a.mux).ServeHTTP(w, r)
}

func (a *App) setupRoutes() {
	pages := handlers.NewPageHandler(a.db)

	// Health endpoints
	a.mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	a.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := a.db.Exec("SELECT 1").Error; err != nil {
			httpx.JSONError(w, http.StatusServiceUnavailable, "degraded", nil)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Shop pages
	a.mux.HandleFunc("GET /{$}", pages.Home)
	a.mux.HandleFunc("GET /index", pages.Home)
	a.mux.HandleFunc("GET /product", pages.Products)
	a.mux.HandleFunc("GET /category", pages.Categories)
	a.mux.HandleFunc("GET /customer", pages.Customers)
	a.mux.HandleFunc("GET /order", pages.Orders)

	// Static files
	a.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Everything else renders the 404 page.
	a.mux.HandleFunc("/", pages.NotFound)
}
