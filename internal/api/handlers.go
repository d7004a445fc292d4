package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/xtrntr/tradedesk/internal/auth"
	"github.com/xtrntr/tradedesk/internal/market"
	"github.com/xtrntr/tradedesk/internal/models"
	"github.com/xtrntr/tradedesk/internal/store"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	Store  *store.Store
	Market *market.Service
	Auth   *auth.Service
}

// NewHandler creates a new handler
func NewHandler(s *store.Store, m *market.Service, a *auth.Service) *Handler {
	return &Handler{Store: s, Market: m, Auth: a}
}

// Routes builds the REST surface, meant to be mounted under /api
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/trades", h.GetTrades)
	r.Post("/trades", h.CreateTrade)
	r.Delete("/trades/{id}", h.DeleteTrade)

	r.Get("/orders", h.GetOrders)
	r.Post("/orders", h.CreateOrder)
	r.Patch("/orders/{id}", h.UpdateOrderStatus)

	r.Get("/portfolio", h.GetPortfolio)

	r.Get("/users", h.GetUsers)
	r.Post("/users", h.CreateUser)
	r.Get("/users/{id}", h.GetUser)

	r.Get("/alerts", h.GetAlerts)
	r.Post("/alerts", h.CreateAlert)
	r.Delete("/alerts/{id}", h.DeleteAlert)

	r.Get("/watchlist", h.GetWatchlist)
	r.Post("/watchlist", h.AddToWatchlist)
	r.Delete("/watchlist/{symbol}", h.RemoveFromWatchlist)

	r.Get("/market", h.GetMarket)
	r.Get("/market/{symbol}", h.GetMarketSymbol)

	return r
}

// GetTrades lists all recorded trades
func (h *Handler) GetTrades(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.Store.ListTrades())
}

// CreateTrade records an executed trade
func (h *Handler) CreateTrade(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cryptocurrency string  `json:"cryptocurrency"`
		Amount         float64 `json:"amount"`
		Price          float64 `json:"price"`
		Type           string  `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if req.Cryptocurrency == "" {
		http.Error(w, `{"error": "Cryptocurrency required"}`, http.StatusBadRequest)
		return
	}
	if req.Type != "BUY" && req.Type != "SELL" {
		http.Error(w, `{"error": "Type must be 'BUY' or 'SELL'"}`, http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 || req.Price <= 0 {
		http.Error(w, `{"error": "Amount and price must be positive"}`, http.StatusBadRequest)
		return
	}

	trade := h.Store.InsertTrade(models.Trade{
		Cryptocurrency: req.Cryptocurrency,
		Amount:         req.Amount,
		Price:          req.Price,
		Type:           req.Type,
	})

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(trade)
}

// DeleteTrade removes a trade by id. Unknown ids still succeed so the call
// is idempotent.
func (h *Handler) DeleteTrade(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, `{"error": "Invalid trade ID"}`, http.StatusBadRequest)
		return
	}

	h.Store.DeleteTrade(id)
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// GetOrders lists all limit orders
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.Store.ListOrders())
}

// CreateOrder places a new limit order in "pending" status
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cryptocurrency string  `json:"cryptocurrency"`
		Amount         float64 `json:"amount"`
		PriceLimit     float64 `json:"priceLimit"`
		Type           string  `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if req.Cryptocurrency == "" {
		http.Error(w, `{"error": "Cryptocurrency required"}`, http.StatusBadRequest)
		return
	}
	if req.Type != "BUY" && req.Type != "SELL" {
		http.Error(w, `{"error": "Type must be 'BUY' or 'SELL'"}`, http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 || req.PriceLimit <= 0 {
		http.Error(w, `{"error": "Amount and price limit must be positive"}`, http.StatusBadRequest)
		return
	}

	order := h.Store.InsertOrder(models.Order{
		Cryptocurrency: req.Cryptocurrency,
		Amount:         req.Amount,
		PriceLimit:     req.PriceLimit,
		Type:           req.Type,
	})

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// UpdateOrderStatus overwrites the status of an order. Unmatched ids answer
// 404 instead of leaving the client hanging.
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, `{"error": "Invalid order ID"}`, http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Status == "" {
		http.Error(w, `{"error": "Status required"}`, http.StatusBadRequest)
		return
	}

	order, ok := h.Store.UpdateOrderStatus(id, req.Status)
	if !ok {
		http.Error(w, `{"error": "Order not found"}`, http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(order)
}

// GetPortfolio recomputes the aggregate view from the full trade list
func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.Store.Portfolio())
}

// GetUsers lists all registered users
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.Store.ListUsers())
}

// CreateUser registers a new user with a hashed password
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	user, err := h.Auth.Register(req.Username, req.Email, req.Password)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

// GetUser retrieves a user by id, answering an empty object on a miss
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, `{"error": "Invalid user ID"}`, http.StatusBadRequest)
		return
	}

	user, ok := h.Store.GetUser(id)
	if !ok {
		json.NewEncoder(w).Encode(struct{}{})
		return
	}
	json.NewEncoder(w).Encode(user)
}

// GetAlerts lists all price alerts
func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.Store.ListAlerts())
}

// CreateAlert sets a new price alert, active by default
func (h *Handler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cryptocurrency string  `json:"cryptocurrency"`
		Price          float64 `json:"price"`
		Type           string  `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if req.Cryptocurrency == "" {
		http.Error(w, `{"error": "Cryptocurrency required"}`, http.StatusBadRequest)
		return
	}
	if req.Type != "ABOVE" && req.Type != "BELOW" {
		http.Error(w, `{"error": "Type must be 'ABOVE' or 'BELOW'"}`, http.StatusBadRequest)
		return
	}
	if req.Price <= 0 {
		http.Error(w, `{"error": "Price must be positive"}`, http.StatusBadRequest)
		return
	}

	alert := h.Store.InsertAlert(models.Alert{
		Cryptocurrency: req.Cryptocurrency,
		Price:          req.Price,
		Type:           req.Type,
	})

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(alert)
}

// DeleteAlert removes an alert by id, idempotently
func (h *Handler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, `{"error": "Invalid alert ID"}`, http.StatusBadRequest)
		return
	}

	h.Store.DeleteAlert(id)
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// GetWatchlist lists the watched symbols
func (h *Handler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.Store.Watchlist())
}

// AddToWatchlist inserts a symbol (idempotent) and returns the full list
func (h *Handler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cryptocurrency string `json:"cryptocurrency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Cryptocurrency == "" {
		http.Error(w, `{"error": "Cryptocurrency required"}`, http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode(h.Store.AddToWatchlist(req.Cryptocurrency))
}

// RemoveFromWatchlist drops a symbol and returns the full list
func (h *Handler) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	json.NewEncoder(w).Encode(h.Store.RemoveFromWatchlist(symbol))
}

// GetMarket returns the five tracked quotes, zeroed until the first refresh
func (h *Handler) GetMarket(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(h.Market.Snapshot())
}

// GetMarketSymbol returns one quote, or an error payload for unknown symbols
func (h *Handler) GetMarketSymbol(w http.ResponseWriter, r *http.Request) {
	quote, ok := h.Market.Quote(chi.URLParam(r, "symbol"))
	if !ok {
		json.NewEncoder(w).Encode(map[string]string{"error": "asset not found"})
		return
	}
	json.NewEncoder(w).Encode(quote)
}

// Health is a liveness probe
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
