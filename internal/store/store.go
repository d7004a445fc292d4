package store

import (
	"sync"
	"time"

	"github.com/xtrntr/tradedesk/internal/models"
)

// Store holds the five in-memory collections backing the dashboard. Each
// collection has its own lock so mutations on one collection never block
// readers of another. Nothing is persisted; state lives for the process.
type Store struct {
	tradesMu sync.RWMutex
	trades   []models.Trade

	ordersMu sync.RWMutex
	orders   []models.Order

	alertsMu sync.RWMutex
	alerts   []models.Alert

	watchMu   sync.RWMutex
	watchlist []string

	usersMu sync.RWMutex
	users   []models.User

	idMu   sync.Mutex
	nextID int64
}

// New creates an empty store
func New() *Store {
	return &Store{
		watchlist: []string{},
		// Seeded from the wall clock, incremented strictly: ids roughly
		// sort by creation time yet stay unique under rapid creation.
		nextID: time.Now().UnixMilli(),
	}
}

func (s *Store) newID() int64 {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

// ListTrades returns all trades in insertion order
func (s *Store) ListTrades() []models.Trade {
	s.tradesMu.RLock()
	defer s.tradesMu.RUnlock()
	out := make([]models.Trade, len(s.trades))
	copy(out, s.trades)
	return out
}

// InsertTrade assigns an id and creation date and stores the trade
func (s *Store) InsertTrade(trade models.Trade) models.Trade {
	trade.ID = s.newID()
	trade.Date = time.Now()
	s.tradesMu.Lock()
	s.trades = append(s.trades, trade)
	s.tradesMu.Unlock()
	return trade
}

// DeleteTrade removes every trade matching the id. Unknown ids are a no-op.
func (s *Store) DeleteTrade(id int64) {
	s.tradesMu.Lock()
	defer s.tradesMu.Unlock()
	kept := s.trades[:0]
	for _, t := range s.trades {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.trades = kept
}

// ListOrders returns all orders in insertion order
func (s *Store) ListOrders() []models.Order {
	s.ordersMu.RLock()
	defer s.ordersMu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// InsertOrder assigns an id, the "pending" status and a creation date
func (s *Store) InsertOrder(order models.Order) models.Order {
	order.ID = s.newID()
	order.Status = "pending"
	order.Date = time.Now()
	s.ordersMu.Lock()
	s.orders = append(s.orders, order)
	s.ordersMu.Unlock()
	return order
}

// UpdateOrderStatus overwrites the status of the matching order. The second
// return value reports whether an order with that id exists; no other field
// is touched.
func (s *Store) UpdateOrderStatus(id int64, status string) (models.Order, bool) {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return s.orders[i], true
		}
	}
	return models.Order{}, false
}

// ListAlerts returns all alerts in insertion order
func (s *Store) ListAlerts() []models.Alert {
	s.alertsMu.RLock()
	defer s.alertsMu.RUnlock()
	out := make([]models.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// InsertAlert assigns an id and creation date and marks the alert active
func (s *Store) InsertAlert(alert models.Alert) models.Alert {
	alert.ID = s.newID()
	alert.Active = true
	alert.Date = time.Now()
	s.alertsMu.Lock()
	s.alerts = append(s.alerts, alert)
	s.alertsMu.Unlock()
	return alert
}

// DeleteAlert removes every alert matching the id. Unknown ids are a no-op.
func (s *Store) DeleteAlert(id int64) {
	s.alertsMu.Lock()
	defer s.alertsMu.Unlock()
	kept := s.alerts[:0]
	for _, a := range s.alerts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.alerts = kept
}

// Watchlist returns the watched symbols in insertion order
func (s *Store) Watchlist() []string {
	s.watchMu.RLock()
	defer s.watchMu.RUnlock()
	return s.watchlistLocked()
}

// AddToWatchlist inserts the symbol unless it is already present and returns
// the resulting watchlist
func (s *Store) AddToWatchlist(symbol string) []string {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	for _, w := range s.watchlist {
		if w == symbol {
			return s.watchlistLocked()
		}
	}
	s.watchlist = append(s.watchlist, symbol)
	return s.watchlistLocked()
}

// RemoveFromWatchlist removes the symbol by exact match and returns the
// resulting watchlist
func (s *Store) RemoveFromWatchlist(symbol string) []string {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	kept := s.watchlist[:0]
	for _, w := range s.watchlist {
		if w != symbol {
			kept = append(kept, w)
		}
	}
	s.watchlist = kept
	return s.watchlistLocked()
}

func (s *Store) watchlistLocked() []string {
	out := make([]string, len(s.watchlist))
	copy(out, s.watchlist)
	return out
}

// ListUsers returns all users in insertion order
func (s *Store) ListUsers() []models.User {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// InsertUser assigns an id and creation date and stores the user
func (s *Store) InsertUser(user models.User) models.User {
	user.ID = s.newID()
	user.CreatedAt = time.Now()
	s.usersMu.Lock()
	s.users = append(s.users, user)
	s.usersMu.Unlock()
	return user
}

// GetUser retrieves a user by id
func (s *Store) GetUser(id int64) (models.User, bool) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Portfolio recomputes the aggregate view from the canonical trade list on
// every call. No running total is kept, so direct mutations elsewhere can
// never make the aggregate drift.
func (s *Store) Portfolio() models.Portfolio {
	s.tradesMu.RLock()
	defer s.tradesMu.RUnlock()
	p := models.Portfolio{Breakdown: map[string]float64{}}
	for _, t := range s.trades {
		value := t.Amount * t.Price
		p.Balance += value
		p.Breakdown[t.Cryptocurrency] += value
	}
	p.Trades = len(s.trades)
	p.Assets = len(p.Breakdown)
	return p
}
