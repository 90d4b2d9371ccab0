package middleware

import (
	"context"
	"net/http"
)

type ctxKey string

const ctxTheme ctxKey = "pref_theme"

// Prefs extracts the theme preference (cookie > query) and stores it in the
// request context. Query-provided values persist in a cookie for ~30 days.
func Prefs(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		theme := "light"
		if c, err := r.Cookie("theme"); err == nil && c.Value != "" {
			theme = c.Value
		}
		if qt := r.URL.Query().Get("theme"); qt != "" {
			theme = qt
			http.SetCookie(w, &http.Cookie{Name: "theme", Value: theme, Path: "/", MaxAge: 86400 * 30})
		}
		if theme != "light" && theme != "dark" {
			theme = "light"
		}
		ctx := context.WithValue(r.Context(), ctxTheme, theme)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ThemeFrom returns the theme preference from context or the fallback.
func ThemeFrom(r *http.Request) string {
	if v, ok := r.Context().Value(ctxTheme).(string); ok && v != "" {
		return v
	}
	return "light"
}
