package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/xtrntr/tradedesk/internal/api"
	"github.com/xtrntr/tradedesk/internal/auth"
	"github.com/xtrntr/tradedesk/internal/market"
	"github.com/xtrntr/tradedesk/internal/metrics"
	"github.com/xtrntr/tradedesk/internal/store"
	"github.com/xtrntr/tradedesk/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
)

// Main entry point: sets up the in-memory store, price sync and HTTP server
func main() {
	// .env is optional; deployments usually pass variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	refreshInterval := 30 * time.Second
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			log.Fatalf("Invalid REFRESH_INTERVAL: %q", v)
		}
		refreshInterval = time.Duration(secs) * time.Second
	}

	// Initialize the in-memory domain store
	st := store.New()

	// Initialize price sync against CoinGecko (COINGECKO_URL overrides the
	// endpoint, mainly for local testing)
	prices := market.NewService(market.NewClient(os.Getenv("COINGECKO_URL")))

	// Initialize auth service
	authService := auth.NewService(st)

	// Initialize API handlers
	handler := api.NewHandler(st, prices, authService)

	// Refresh once at startup, then on a fixed period. Failed cycles are
	// logged and skipped; the snapshot keeps its last good data.
	ctx := context.Background()
	go prices.Refresh(ctx)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(fmt.Sprintf("@every %s", refreshInterval), func() {
		prices.Refresh(ctx)
	}); err != nil {
		log.Fatalf("Failed to schedule price refresh: %v", err)
	}
	scheduler.Start()

	// Set up HTTP router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// Enable CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// REST API
	r.Mount("/api", handler.Routes())

	// Operational endpoints
	r.Get("/healthz", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Dashboard pages
	web.RegisterPages(r)

	// Start server
	log.Printf("Starting server on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
