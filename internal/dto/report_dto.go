package dto

import (
	"github.com/finsight/spending_insights_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SpendingByCategoryResponse represents the category spending report response
type SpendingByCategoryResponse struct {
	Category     string                     `json:"category"`
	AsOf         string                     `json:"asOf"`
	Transactions []domain.TransactionRecord `json:"transactions"`
}

// WeekdayAverageResponse represents one weekday row in the weekday report
type WeekdayAverageResponse struct {
	Weekday int             `json:"weekday"`
	Average decimal.Decimal `json:"average"`
}

// SpendingByWeekdayResponse represents the weekday spending report response
type SpendingByWeekdayResponse struct {
	AsOf string                   `json:"asOf"`
	Rows []WeekdayAverageResponse `json:"rows"`
}

// WorkdayAverageResponse represents one bucket in the workday report
type WorkdayAverageResponse struct {
	IsWeekend bool            `json:"isWeekend"`
	Average   decimal.Decimal `json:"average"`
}

// SpendingByWorkdayResponse represents the workday spending report response
type SpendingByWorkdayResponse struct {
	AsOf string                   `json:"asOf"`
	Rows []WorkdayAverageResponse `json:"rows"`
}

// CashbackAnalysisResponse represents the cashback-by-category response
type CashbackAnalysisResponse struct {
	Year       int                        `json:"year"`
	Month      int                        `json:"month"`
	ByCategory map[string]decimal.Decimal `json:"byCategory"`
}

// InvestmentRoundUpResponse represents the round-up savings response
type InvestmentRoundUpResponse struct {
	Month   string          `json:"month"`
	Limit   int64           `json:"limit"`
	Savings decimal.Decimal `json:"savings"`
}

// SearchResponse represents a transaction search/filter response
type SearchResponse struct {
	Query        string                     `json:"query,omitempty"`
	Count        int                        `json:"count"`
	Transactions []domain.TransactionRecord `json:"transactions"`
}
