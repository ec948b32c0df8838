package services

import (
	"context"

	"github.com/finsight/spending_insights_app/internal/core/domain"
)

// MarketDataSvc is the boundary for outbound calls to third-party rate and
// quote services. Both calls perform a single blocking GET with no retry or
// caching; callers must treat every call as potentially slow or failing and
// must not assume freshness.
type MarketDataSvc interface {
	// GetCurrencyRates fetches the current currency rates.
	GetCurrencyRates(ctx context.Context) (domain.RatesSnapshot, error)

	// GetStockPrice fetches the latest intraday opening price for symbol.
	GetStockPrice(ctx context.Context, apiKey, symbol string) (domain.PriceSnapshot, error)
}
