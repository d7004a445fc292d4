package models

import "time"

// Trade represents an executed spot trade recorded by the user
type Trade struct {
	ID             int64     `json:"id"`
	Cryptocurrency string    `json:"cryptocurrency"`
	Amount         float64   `json:"amount"`
	Price          float64   `json:"price"` // Price per unit in USD
	Type           string    `json:"type"`  // "BUY" or "SELL"
	Date           time.Time `json:"date"`
}

// Order represents a limit order awaiting execution
type Order struct {
	ID             int64     `json:"id"`
	Cryptocurrency string    `json:"cryptocurrency"`
	Amount         float64   `json:"amount"`
	PriceLimit     float64   `json:"priceLimit"`
	Type           string    `json:"type"`   // "BUY" or "SELL"
	Status         string    `json:"status"` // "pending", "completed", "cancelled"
	Date           time.Time `json:"date"`
}

// Alert represents a price threshold notification request
type Alert struct {
	ID             int64     `json:"id"`
	Cryptocurrency string    `json:"cryptocurrency"`
	Price          float64   `json:"price"`
	Type           string    `json:"type"` // "ABOVE" or "BELOW"
	Active         bool      `json:"active"`
	Date           time.Time `json:"date"`
}

// User represents a registered user. The bcrypt hash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Quote holds the latest market data for one tracked trading pair
type Quote struct {
	Pair      string  `json:"pair"`
	Price     float64 `json:"price"`
	Change    float64 `json:"change"` // 24h change in percent
	Volume    float64 `json:"volume"`
	MarketCap float64 `json:"marketCap"`
}

// Portfolio is the aggregate view computed from the full trade history
type Portfolio struct {
	Balance   float64            `json:"balance"`
	Trades    int                `json:"trades"`
	Assets    int                `json:"assets"`
	Breakdown map[string]float64 `json:"breakdown"`
}
