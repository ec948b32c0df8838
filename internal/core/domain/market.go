package domain

import "github.com/shopspring/decimal"

// RatesSnapshot maps a currency code to its rate at the moment of the
// gateway call. Snapshots are never cached; a fresh one is fetched per call
// and may be stale the instant it is returned.
type RatesSnapshot map[string]decimal.Decimal

// PriceSnapshot maps an equity symbol to its latest quoted price.
type PriceSnapshot map[string]decimal.Decimal
