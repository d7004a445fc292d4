package market

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/xtrntr/tradedesk/internal/metrics"
	"github.com/xtrntr/tradedesk/internal/models"
)

// Service keeps the latest quote snapshot for the tracked assets. The
// snapshot is shared-read, single-writer: the refresh cycle replaces the
// whole map under the lock and readers copy what they need.
type Service struct {
	client *Client

	mu     sync.RWMutex
	quotes map[string]models.Quote
}

// NewService creates a service with an empty snapshot. Quotes stay zeroed
// until the first successful refresh.
func NewService(client *Client) *Service {
	return &Service{
		client: client,
		quotes: map[string]models.Quote{},
	}
}

// Refresh fetches fresh quotes and replaces the snapshot wholesale. On any
// failure the previous snapshot stays in place, so readers keep seeing the
// last good data rather than a partial mix.
func (s *Service) Refresh(ctx context.Context) error {
	quotes, err := s.client.FetchQuotes(ctx)
	if err != nil {
		metrics.RefreshFailed()
		log.Printf("Price refresh failed: %v", err)
		return err
	}

	s.mu.Lock()
	s.quotes = quotes
	s.mu.Unlock()

	metrics.RefreshSucceeded()
	return nil
}

// Snapshot returns the tracked quotes in fixed order. Assets not fetched yet
// come back as zero-valued placeholders carrying only the pair name.
func (s *Service) Snapshot() []models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Quote, len(Tracked))
	for i, a := range Tracked {
		q, ok := s.quotes[a.Symbol]
		if !ok {
			q = models.Quote{Pair: a.Pair}
		}
		out[i] = q
	}
	return out
}

// Quote looks up a single symbol, case-insensitively. Unknown or not yet
// fetched symbols are an explicit miss.
func (s *Service) Quote(symbol string) (models.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[strings.ToUpper(symbol)]
	return q, ok
}
