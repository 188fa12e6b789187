package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// ratesResponse matches the body of the public exchange-rate API:
// a JSON object carrying a "rates" map keyed by currency code.
type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Fetcher periodically pulls a fresh rate table from the public API into a
// Table. Every failure mode (network, status, malformed body) is logged and
// swallowed so the previous table, or the static defaults, stays in effect.
type Fetcher struct {
	url    string
	client *http.Client
	table  *Table
	logger *slog.Logger
}

// NewFetcher creates a Fetcher targeting url and writing into table.
func NewFetcher(url string, table *Table, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
		table:  table,
		logger: logger,
	}
}

// Refresh fetches the rate table once and replaces the current one wholesale.
func (f *Fetcher) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch exchange rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rates API returned non-200 status: %s", resp.Status)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode rates body: %w", err)
	}
	if len(body.Rates) == 0 {
		return fmt.Errorf("rates body contained no rates")
	}

	next := make(RateTable, len(body.Rates))
	for code, rate := range body.Rates {
		if rate <= 0 {
			continue
		}
		next[code] = decimal.NewFromFloat(rate)
	}
	if len(next) == 0 {
		return fmt.Errorf("rates body contained no usable rates")
	}

	f.table.Replace(next)
	f.logger.Info("Exchange rate table refreshed", slog.Int("currency_count", len(next)))
	return nil
}

// Run refreshes immediately and then on every tick of interval until ctx is
// cancelled. Fetch errors never stop the loop.
func (f *Fetcher) Run(ctx context.Context, interval time.Duration) {
	if err := f.Refresh(ctx); err != nil {
		f.logger.Warn("Initial exchange rate fetch failed, keeping defaults", slog.String("error", err.Error()))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := f.Refresh(ctx); err != nil {
				f.logger.Warn("Exchange rate refresh failed, keeping previous table", slog.String("error", err.Error()))
			}
		}
	}
}
