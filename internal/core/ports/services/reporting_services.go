package services

import (
	"context"
	"time"

	"github.com/finsight/spending_insights_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingService defines the ledger aggregation operations. Every method
// is a pure function over the ledger it receives: zero matching records
// yields the identity for the operation (empty slice, empty map, zero),
// never an error. Records with unusable fields are skipped and logged.
type ReportingService interface {
	// SpendingByCategory returns the records with an exact category match
	// whose date falls within the 90 days up to and including asOf.
	SpendingByCategory(ctx context.Context, ledger []domain.TransactionRecord, category string, asOf time.Time) []domain.TransactionRecord

	// SpendingByWeekday returns the mean amount per weekday (0=Monday)
	// over the same 90-day window. At most 7 rows; empty weekdays omitted.
	SpendingByWeekday(ctx context.Context, ledger []domain.TransactionRecord, asOf time.Time) []domain.WeekdayAverage

	// SpendingByWorkday returns the mean amount for workdays and weekends
	// over the same 90-day window. At most 2 rows.
	SpendingByWorkday(ctx context.Context, ledger []domain.TransactionRecord, asOf time.Time) []domain.WorkdayAverage

	// AnalyzeCashback sums positive cashback per category for the given
	// calendar month.
	AnalyzeCashback(ctx context.Context, ledger []domain.TransactionRecord, year int, month time.Month) map[string]decimal.Decimal

	// InvestmentRoundUp computes the simulated round-up savings for the
	// given month ("YYYY-MM"): for each positive amount, the distance to
	// the smallest multiple of limit at or above it.
	InvestmentRoundUp(ctx context.Context, ledger []domain.TransactionRecord, month string, limit int64) (decimal.Decimal, error)
}
