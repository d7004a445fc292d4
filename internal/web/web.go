package web

import (
	"embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed static/*.html
var pages embed.FS

// RegisterPages mounts the dashboard pages. Every page is a static shell
// whose embedded script fetches the REST API from the browser and renders
// the DOM client-side; the server never templates dynamic data into them.
func RegisterPages(r chi.Router) {
	r.Get("/", servePage("index.html"))
	r.Get("/dashboard", servePage("dashboard.html"))
	r.Get("/trade", servePage("trade.html"))
	r.Get("/orders", servePage("orders.html"))
	r.Get("/alerts", servePage("alerts.html"))
	r.Get("/watchlist", servePage("watchlist.html"))
}

func servePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pages.ReadFile("static/" + name)
		if err != nil {
			http.Error(w, "page not found", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}
