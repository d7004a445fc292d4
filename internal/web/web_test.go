package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestRegisterPages(t *testing.T) {
	r := chi.NewRouter()
	RegisterPages(r)

	pages := map[string]string{
		"/":          "/api/market",
		"/dashboard": "/api/portfolio",
		"/trade":     "/api/trades",
		"/orders":    "/api/orders",
		"/alerts":    "/api/alerts",
		"/watchlist": "/api/watchlist",
	}

	for path, fetchCall := range pages {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "page %s", path)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		// Each shell must issue its documented fetch call client-side
		assert.Contains(t, w.Body.String(), fetchCall, "page %s", path)
	}
}
