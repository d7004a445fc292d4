package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xtrntr/tradedesk/internal/models"
)

func TestStore_InsertAndListTrades(t *testing.T) {
	s := New()

	first := s.InsertTrade(models.Trade{Cryptocurrency: "BTC", Amount: 0.5, Price: 60000, Type: "BUY"})
	second := s.InsertTrade(models.Trade{Cryptocurrency: "ETH", Amount: 2, Price: 3000, Type: "SELL"})

	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.Date.IsZero())

	trades := s.ListTrades()
	require.Len(t, trades, 2)
	// Insertion order is preserved
	assert.Equal(t, first.ID, trades[0].ID)
	assert.Equal(t, second.ID, trades[1].ID)
}

func TestStore_UniqueIDsUnderRapidCreation(t *testing.T) {
	s := New()

	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		trade := s.InsertTrade(models.Trade{Cryptocurrency: "BTC", Amount: 1, Price: 1, Type: "BUY"})
		assert.False(t, seen[trade.ID], "duplicate id %d", trade.ID)
		seen[trade.ID] = true
	}
}

func TestStore_DeleteTrade(t *testing.T) {
	s := New()

	trade := s.InsertTrade(models.Trade{Cryptocurrency: "BTC", Amount: 1, Price: 100, Type: "BUY"})
	other := s.InsertTrade(models.Trade{Cryptocurrency: "ETH", Amount: 1, Price: 50, Type: "BUY"})

	s.DeleteTrade(trade.ID)
	trades := s.ListTrades()
	require.Len(t, trades, 1)
	assert.Equal(t, other.ID, trades[0].ID)

	// Deleting an unknown id is an idempotent no-op
	s.DeleteTrade(999)
	assert.Len(t, s.ListTrades(), 1)
}

func TestStore_InsertOrderDefaults(t *testing.T) {
	s := New()

	order := s.InsertOrder(models.Order{Cryptocurrency: "SOL", Amount: 10, PriceLimit: 150, Type: "BUY"})

	assert.Equal(t, "pending", order.Status)
	assert.NotZero(t, order.ID)
	assert.False(t, order.Date.IsZero())
}

func TestStore_UpdateOrderStatus(t *testing.T) {
	s := New()

	order := s.InsertOrder(models.Order{Cryptocurrency: "SOL", Amount: 10, PriceLimit: 150, Type: "BUY"})

	updated, ok := s.UpdateOrderStatus(order.ID, "cancelled")
	require.True(t, ok)
	assert.Equal(t, "cancelled", updated.Status)

	// Only the status changed
	assert.Equal(t, order.Cryptocurrency, updated.Cryptocurrency)
	assert.Equal(t, order.Amount, updated.Amount)
	assert.Equal(t, order.PriceLimit, updated.PriceLimit)
	assert.Equal(t, order.Date, updated.Date)

	// Missing id neither creates a record nor touches the collection
	_, ok = s.UpdateOrderStatus(999, "completed")
	assert.False(t, ok)
	orders := s.ListOrders()
	require.Len(t, orders, 1)
	assert.Equal(t, "cancelled", orders[0].Status)
}

func TestStore_AlertLifecycle(t *testing.T) {
	s := New()

	alert := s.InsertAlert(models.Alert{Cryptocurrency: "BTC", Price: 70000, Type: "ABOVE"})
	assert.True(t, alert.Active)
	assert.NotZero(t, alert.ID)

	s.DeleteAlert(alert.ID)
	assert.Empty(t, s.ListAlerts())

	s.DeleteAlert(alert.ID)
	assert.Empty(t, s.ListAlerts())
}

func TestStore_WatchlistSetSemantics(t *testing.T) {
	s := New()

	assert.Equal(t, []string{"BTC"}, s.AddToWatchlist("BTC"))
	assert.Equal(t, []string{"BTC"}, s.AddToWatchlist("BTC"))
	assert.Equal(t, []string{"BTC", "ETH"}, s.AddToWatchlist("ETH"))

	assert.Equal(t, []string{"ETH"}, s.RemoveFromWatchlist("BTC"))
	// Removing an absent symbol leaves the list unchanged
	assert.Equal(t, []string{"ETH"}, s.RemoveFromWatchlist("XRP"))
	assert.Equal(t, []string{"ETH"}, s.Watchlist())
}

func TestStore_GetUser(t *testing.T) {
	s := New()

	user := s.InsertUser(models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"})

	got, ok := s.GetUser(user.ID)
	require.True(t, ok)
	assert.Equal(t, "alice", got.Username)

	_, ok = s.GetUser(999)
	assert.False(t, ok)
}

func TestStore_Portfolio(t *testing.T) {
	s := New()

	s.InsertTrade(models.Trade{Cryptocurrency: "BTC", Amount: 1, Price: 100, Type: "BUY"})
	s.InsertTrade(models.Trade{Cryptocurrency: "ETH", Amount: 2, Price: 50, Type: "SELL"})

	p := s.Portfolio()
	assert.Equal(t, 200.0, p.Balance)
	assert.Equal(t, 2, p.Trades)
	assert.Equal(t, 2, p.Assets)
	assert.Equal(t, map[string]float64{"BTC": 100, "ETH": 100}, p.Breakdown)
}

func TestStore_PortfolioEmpty(t *testing.T) {
	s := New()

	p := s.Portfolio()
	assert.Zero(t, p.Balance)
	assert.Zero(t, p.Trades)
	assert.Zero(t, p.Assets)
	assert.Empty(t, p.Breakdown)
}
