package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finsight/spending_insights_app/internal/apperrors"
	"github.com/finsight/spending_insights_app/internal/core/domain"
	portssvc "github.com/finsight/spending_insights_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// spendingWindowDays is the width of the rolling window all spending
// reports look back over, ending at their asOf date.
const spendingWindowDays = 90

// monthLayout is the "YYYY-MM" layout used by the round-up computation.
const monthLayout = "2006-01"

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
}

// NewReportingService creates a new reporting service
func NewReportingService() portssvc.ReportingService {
	return &reportingService{}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// SpendingByCategory returns every record with an exact category match whose
// date falls within [asOf-90d, asOf] inclusive. A zero asOf defaults to now.
func (s *reportingService) SpendingByCategory(ctx context.Context, ledger []domain.TransactionRecord, category string, asOf time.Time) []domain.TransactionRecord {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	from := asOf.AddDate(0, 0, -spendingWindowDays)

	matched := make([]domain.TransactionRecord, 0)
	for _, txn := range ledger {
		if txn.Category != category {
			continue
		}
		if inWindow(txn.Date, from, asOf) {
			matched = append(matched, txn)
		}
	}

	s.LogInfo(ctx, "Spending by category computed",
		slog.String("category", category),
		slog.Int("matches", len(matched)))
	return matched
}

// SpendingByWeekday returns the mean amount per weekday (0=Monday..6=Sunday)
// over the 90-day window ending at asOf. Weekdays with no transactions are
// omitted, so callers get at most 7 rows and may get fewer.
func (s *reportingService) SpendingByWeekday(ctx context.Context, ledger []domain.TransactionRecord, asOf time.Time) []domain.WeekdayAverage {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	from := asOf.AddDate(0, 0, -spendingWindowDays)

	var sums [7]decimal.Decimal
	var counts [7]int64
	for _, txn := range ledger {
		if !inWindow(txn.Date, from, asOf) {
			continue
		}
		day := mondayIndexed(txn.Date.Weekday())
		sums[day] = sums[day].Add(txn.Amount)
		counts[day]++
	}

	rows := make([]domain.WeekdayAverage, 0, 7)
	for day := 0; day < 7; day++ {
		if counts[day] == 0 {
			continue
		}
		rows = append(rows, domain.WeekdayAverage{
			Weekday: day,
			Average: sums[day].Div(decimal.NewFromInt(counts[day])),
		})
	}

	s.LogInfo(ctx, "Spending by weekday computed", slog.Int("rows", len(rows)))
	return rows
}

// SpendingByWorkday returns the mean amount for workdays and for weekends
// over the 90-day window ending at asOf. Buckets with no transactions are
// omitted, so callers get at most 2 rows.
func (s *reportingService) SpendingByWorkday(ctx context.Context, ledger []domain.TransactionRecord, asOf time.Time) []domain.WorkdayAverage {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	from := asOf.AddDate(0, 0, -spendingWindowDays)

	var sums [2]decimal.Decimal
	var counts [2]int64
	for _, txn := range ledger {
		if !inWindow(txn.Date, from, asOf) {
			continue
		}
		bucket := 0
		if mondayIndexed(txn.Date.Weekday()) >= 5 {
			bucket = 1
		}
		sums[bucket] = sums[bucket].Add(txn.Amount)
		counts[bucket]++
	}

	rows := make([]domain.WorkdayAverage, 0, 2)
	for bucket := 0; bucket < 2; bucket++ {
		if counts[bucket] == 0 {
			continue
		}
		rows = append(rows, domain.WorkdayAverage{
			IsWeekend: bucket == 1,
			Average:   sums[bucket].Div(decimal.NewFromInt(counts[bucket])),
		})
	}

	s.LogInfo(ctx, "Spending by workday computed", slog.Int("rows", len(rows)))
	return rows
}

// AnalyzeCashback sums positive cashback per category for the given calendar
// month. Records missing required fields are skipped and logged, never fatal.
func (s *reportingService) AnalyzeCashback(ctx context.Context, ledger []domain.TransactionRecord, year int, month time.Month) map[string]decimal.Decimal {
	byCategory := make(map[string]decimal.Decimal)
	for _, txn := range ledger {
		if err := txn.Validate(); err != nil {
			s.LogWarn(ctx, "Skipping transaction with missing fields", slog.String("reason", err.Error()))
			continue
		}
		if txn.Date.Year() != year || txn.Date.Month() != month {
			continue
		}
		if !txn.Cashback.IsPositive() {
			continue
		}
		byCategory[txn.Category] = byCategory[txn.Category].Add(txn.Cashback)
	}

	s.LogInfo(ctx, "Cashback analysis completed",
		slog.Int("year", year),
		slog.Int("month", int(month)),
		slog.Int("categories", len(byCategory)))
	return byCategory
}

// InvestmentRoundUp computes the simulated savings for month ("YYYY-MM"):
// each positive amount is rounded up to the smallest multiple of limit at or
// above it and the differences are summed. Already-aligned amounts add
// nothing; non-positive amounts and records outside the month are skipped.
func (s *reportingService) InvestmentRoundUp(ctx context.Context, ledger []domain.TransactionRecord, month string, limit int64) (decimal.Decimal, error) {
	if _, err := time.Parse(monthLayout, month); err != nil {
		return decimal.Zero, fmt.Errorf("%w: month must be in YYYY-MM format", apperrors.ErrValidation)
	}
	if limit <= 0 {
		return decimal.Zero, fmt.Errorf("%w: round-up limit must be positive", apperrors.ErrValidation)
	}

	limitDec := decimal.NewFromInt(limit)
	total := decimal.Zero
	for _, txn := range ledger {
		if txn.Date.Format(monthLayout) != month {
			continue
		}
		if !txn.Amount.IsPositive() {
			continue
		}
		roundedUp := txn.Amount.Div(limitDec).Ceil().Mul(limitDec)
		total = total.Add(roundedUp.Sub(txn.Amount))
	}

	s.LogInfo(ctx, "Round-up savings computed",
		slog.String("month", month),
		slog.Int64("limit", limit),
		slog.String("total", total.String()))
	return total, nil
}

// inWindow reports whether date falls in [from, to] inclusive.
func inWindow(date, from, to time.Time) bool {
	return !date.Before(from) && !date.After(to)
}

// mondayIndexed converts Go's Sunday-first weekday to 0=Monday..6=Sunday.
func mondayIndexed(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
