package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/finsight/spending_insights_app/internal/apperrors"
	"github.com/finsight/spending_insights_app/internal/core/domain"
	portssvc "github.com/finsight/spending_insights_app/internal/core/ports/services"
	"github.com/finsight/spending_insights_app/internal/platform/config"
	"github.com/shopspring/decimal"
)

// intradaySeriesKey is the payload key the quote endpoint nests its
// per-minute series under.
const intradaySeriesKey = "Time Series (1min)"

// openPriceKey is the field holding the opening price within one series entry.
const openPriceKey = "1. open"

// Client is the outbound gateway for currency rates and stock quotes.
// Every call is a single unauthenticated GET: no retry, no caching. The
// only resilience is the client timeout, so a call is never stuck on a
// stalled upstream.
type Client struct {
	httpClient *http.Client
	ratesURL   string
	quoteURL   string
}

// NewClient creates a gateway client from the process configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		ratesURL:   cfg.RatesAPIURL,
		quoteURL:   cfg.QuoteAPIURL,
	}
}

// Ensure Client implements the MarketDataSvc interface
var _ portssvc.MarketDataSvc = (*Client)(nil)

// GetCurrencyRates fetches the current currency rates. Non-2xx responses
// and malformed payloads are reported as apperrors.ErrGateway.
func (c *Client) GetCurrencyRates(ctx context.Context) (domain.RatesSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ratesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building currency rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching currency rates: %v", apperrors.ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: currency rate endpoint returned status %d", apperrors.ErrGateway, resp.StatusCode)
	}

	var payload struct {
		Rates map[string]decimal.Decimal `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding currency rate payload: %v", apperrors.ErrGateway, err)
	}
	if payload.Rates == nil {
		return nil, fmt.Errorf("%w: currency rate payload missing rates", apperrors.ErrGateway)
	}

	return domain.RatesSnapshot(payload.Rates), nil
}

// GetStockPrice fetches the latest intraday opening price for symbol.
// Any failure (network, status, payload shape) is an apperrors.ErrGateway;
// callers log it and continue with an empty snapshot.
func (c *Client) GetStockPrice(ctx context.Context, apiKey, symbol string) (domain.PriceSnapshot, error) {
	endpoint, err := url.Parse(c.quoteURL)
	if err != nil {
		return nil, fmt.Errorf("parsing quote endpoint: %w", err)
	}
	query := endpoint.Query()
	query.Set("function", "TIME_SERIES_INTRADAY")
	query.Set("symbol", symbol)
	query.Set("interval", "1min")
	query.Set("apikey", apiKey)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building quote request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching stock price: %v", apperrors.ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: quote endpoint returned status %d", apperrors.ErrGateway, resp.StatusCode)
	}

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding quote payload: %v", apperrors.ErrGateway, err)
	}

	var series map[string]map[string]string
	if err := json.Unmarshal(payload[intradaySeriesKey], &series); err != nil || len(series) == 0 {
		return nil, fmt.Errorf("%w: quote payload missing intraday series for %s", apperrors.ErrGateway, symbol)
	}

	// Timestamps sort lexicographically, so the greatest key is the most
	// recent entry.
	latest := ""
	for timestamp := range series {
		if timestamp > latest {
			latest = timestamp
		}
	}

	openPrice, found := series[latest][openPriceKey]
	if !found {
		return nil, fmt.Errorf("%w: quote entry missing opening price for %s", apperrors.ErrGateway, symbol)
	}
	price, err := decimal.NewFromString(openPrice)
	if err != nil {
		return nil, fmt.Errorf("%w: unparseable opening price %q for %s", apperrors.ErrGateway, openPrice, symbol)
	}

	return domain.PriceSnapshot{symbol: price}, nil
}
