package dto

import (
	"github.com/shopspring/decimal"
)

// The dashboard documents keep the snake_case keys of the original report
// consumers; they are part of the document shape, not transport detail.

// CardBalance is one card summary on the main page.
type CardBalance struct {
	LastDigits string          `json:"last_digits"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	Cashback   decimal.Decimal `json:"cashback"`
}

// TopTransaction is one highlighted transaction on the main page.
type TopTransaction struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// CurrencyRate is one currency rate row folded into a dashboard document.
type CurrencyRate struct {
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

// StockPrice is one stock quote row folded into a dashboard document.
type StockPrice struct {
	Stock string          `json:"stock"`
	Price decimal.Decimal `json:"price"`
}

// MainPageResponse is the "main page" dashboard document.
type MainPageResponse struct {
	Greeting        string           `json:"greeting"`
	Cards           []CardBalance    `json:"cards"`
	TopTransactions []TopTransaction `json:"top_transactions"`
	CurrencyRates   []CurrencyRate   `json:"currency_rates"`
	StockPrices     []StockPrice     `json:"stock_prices"`
}

// CategoryAmount is one category rollup row on the events page.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ExpenseSummary is the expense side of the events page: total, top
// categories with a remainder bucket, and the transfers-and-cash section.
type ExpenseSummary struct {
	TotalAmount      decimal.Decimal  `json:"total_amount"`
	Main             []CategoryAmount `json:"main"`
	TransfersAndCash []CategoryAmount `json:"transfers_and_cash"`
}

// IncomeSummary is the income side of the events page.
type IncomeSummary struct {
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Main        []CategoryAmount `json:"main"`
}

// EventsPageResponse is the "events page" dashboard document. Failures are
// carried in Error rather than surfaced as transport errors.
type EventsPageResponse struct {
	Expenses      *ExpenseSummary `json:"expenses,omitempty"`
	Income        *IncomeSummary  `json:"income,omitempty"`
	CurrencyRates []CurrencyRate  `json:"currency_rates,omitempty"`
	StockPrices   []StockPrice    `json:"stock_prices,omitempty"`
	Error         string          `json:"error,omitempty"`
}
