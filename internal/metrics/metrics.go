package metrics

import (
	"net/http"
	"strconv"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	refreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradedesk_price_refresh_total",
			Help: "Total number of price refresh cycles by result",
		},
		[]string{"result"},
	)

	lastRefresh = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tradedesk_price_last_refresh_timestamp_seconds",
			Help: "Unix time of the last successful price refresh",
		},
	)

	requestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tradedesk_http_requests_total",
			Help: "Total number of HTTP requests by method and status",
		},
		[]string{"method", "status"},
	)
)

// RefreshSucceeded records one successful price refresh cycle
func RefreshSucceeded() {
	refreshTotal.WithLabelValues("success").Inc()
	lastRefresh.SetToCurrentTime()
}

// RefreshFailed records one failed price refresh cycle
func RefreshFailed() {
	refreshTotal.WithLabelValues("failure").Inc()
}

// Middleware counts every served request by method and response status
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		requestTotal.WithLabelValues(r.Method, strconv.Itoa(ww.Status())).Inc()
	})
}
