package view

import (
	"bytes"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/diewo77/bakery-app/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	baseDir  string
	once     sync.Once
	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}
)

// detectBase locates the templates directory relative to the working dir so
// both the server binary and package tests resolve the same files.
func detectBase() {
	candidates := []string{"templates", "../templates", "../../templates"}
	for _, c := range candidates {
		if fi, err := os.Stat(filepath.Clean(c)); err == nil && fi.IsDir() {
			baseDir = filepath.Clean(c)
			return
		}
	}
	baseDir = "templates"
}

// Funcs returns the shared template func map. Request-dependent values go
// through template data instead, so cached templates stay reusable.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"year":  func() int { return time.Now().Year() },
		"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	}
}

// Render parses and executes a template file with the shared funcs. name is
// the filename relative to the templates dir (e.g. "products.html"). Pages
// are wrapped in layout.html unless they are full documents of their own;
// parsed templates are cached except when DEV=1.
func Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) error {
	once.Do(detectBase)
	if data == nil {
		data = map[string]any{}
	}
	if _, exists := data["Theme"]; !exists {
		data["Theme"] = middleware.ThemeFrom(r)
	}

	devMode := os.Getenv("DEV") == "1"
	if !devMode {
		tplCache.RLock()
		t, ok := tplCache.m[name]
		tplCache.RUnlock()
		if ok && t != nil {
			return t.Execute(w, data)
		}
	}

	mainPath := filepath.Join(baseDir, name)
	content, err := os.ReadFile(mainPath)
	if err != nil {
		return err
	}

	var t *template.Template
	layoutPath := filepath.Join(baseDir, "layout.html")
	useLayout := !bytes.Contains(bytes.ToLower(content), []byte("<!doctype")) && fileExists(layoutPath)
	if useLayout {
		files := []string{layoutPath, mainPath}
		if header := filepath.Join(baseDir, "partials", "header.html"); fileExists(header) {
			files = append(files, header)
		}
		t, err = template.New("layout.html").Funcs(Funcs()).ParseFiles(files...)
	} else {
		// ParseFiles registers the tree under the file's base name, so the
		// root template must carry that name for Execute to find it.
		t, err = template.New(filepath.Base(name)).Funcs(Funcs()).ParseFiles(mainPath)
	}
	if err != nil {
		return err
	}

	if !devMode {
		tplCache.Lock()
		tplCache.m[name] = t
		tplCache.Unlock()
	}
	return t.Execute(w, data)
}

func fileExists(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && !fi.IsDir()
}
