// Package web serves the calculator page. The page only forwards clicks and
// key presses to the session API and renders the two display lines it gets
// back.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"go-chi-calculator/internal/observability"
)

//go:embed static
var assets embed.FS

// RegisterRoutes mounts the page at / and its assets under /static/.
func RegisterRoutes(r chi.Router) {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}

	r.Get("/", serveIndex(static))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
}

func serveIndex(static fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := fs.ReadFile(static, "index.html")
		if err != nil {
			http.Error(w, "page not found", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(page); err != nil {
			observability.LoggerWithTrace(r.Context()).Warn("writing page failed", zap.Error(err))
		}
	}
}
