package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/xtrntr/tradedesk/internal/models"
)

// Asset maps a display symbol to its CoinGecko id
type Asset struct {
	Symbol  string
	Pair    string
	GeckoID string
}

// Tracked is the fixed set of assets the dashboard follows
var Tracked = []Asset{
	{Symbol: "BTC", Pair: "BTC/USDT", GeckoID: "bitcoin"},
	{Symbol: "ETH", Pair: "ETH/USDT", GeckoID: "ethereum"},
	{Symbol: "SOL", Pair: "SOL/USDT", GeckoID: "solana"},
	{Symbol: "XRP", Pair: "XRP/USDT", GeckoID: "ripple"},
	{Symbol: "ADA", Pair: "ADA/USDT", GeckoID: "cardano"},
}

const defaultBaseURL = "https://api.coingecko.com"

// Client fetches spot market data from the CoinGecko simple price API
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a client. An empty baseURL selects the public CoinGecko
// endpoint; tests point it at a local server.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		// Bound the external call so a stuck upstream can never hang a
		// refresh cycle indefinitely.
		HTTP: &http.Client{Timeout: 10 * time.Second},
	}
}

type geckoQuote struct {
	USD          float64 `json:"usd"`
	USDMarketCap float64 `json:"usd_market_cap"`
	USD24hVol    float64 `json:"usd_24h_vol"`
	USD24hChange float64 `json:"usd_24h_change"`
}

// FetchQuotes retrieves current data for all tracked assets in one batched
// call. A missing asset in the payload fails the whole fetch so callers never
// see a partially updated set.
func (c *Client) FetchQuotes(ctx context.Context) (map[string]models.Quote, error) {
	ids := make([]string, len(Tracked))
	for i, a := range Tracked {
		ids[i] = a.GeckoID
	}
	url := fmt.Sprintf(
		"%s/api/v3/simple/price?ids=%s&vs_currencies=usd&include_market_cap=true&include_24hr_vol=true&include_24hr_change=true",
		c.BaseURL, strings.Join(ids, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload map[string]geckoQuote
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode prices: %w", err)
	}

	quotes := make(map[string]models.Quote, len(Tracked))
	for _, a := range Tracked {
		g, ok := payload[a.GeckoID]
		if !ok {
			return nil, fmt.Errorf("no data for %s", a.GeckoID)
		}
		quotes[a.Symbol] = models.Quote{
			Pair:      a.Pair,
			Price:     g.USD,
			Change:    g.USD24hChange,
			Volume:    g.USD24hVol,
			MarketCap: g.USDMarketCap,
		}
	}
	return quotes, nil
}
