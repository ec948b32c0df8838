// Package ledgercsv serves the transaction ledger from a CSV export, the
// tabular shape spreadsheets hand over: date, category, amount, description
// and the optional cashback and type columns.
package ledgercsv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/finsight/spending_insights_app/internal/core/domain"
	"github.com/finsight/spending_insights_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// Reader implements the repositories.LedgerRepository interface over a CSV
// file. The file is re-read on every call, so edits are picked up without a
// restart; rows with unparseable dates or amounts are skipped and logged.
type Reader struct {
	path string
}

// NewReader creates a ledger reader for the CSV file at path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// ListTransactions reads the whole CSV and returns its rows in file order.
func (r *Reader) ListTransactions(ctx context.Context) ([]domain.TransactionRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading ledger header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "category", "amount"} {
		if _, found := columns[required]; !found {
			return nil, fmt.Errorf("ledger file missing required column %q", required)
		}
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	ledger := make([]domain.TransactionRecord, 0)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("Skipping malformed ledger row", slog.Int("line", line), slog.String("error", err.Error()))
			continue
		}

		record, err := parseRow(row, columns)
		if err != nil {
			logger.Warn("Skipping unparseable ledger row", slog.Int("line", line), slog.String("error", err.Error()))
			continue
		}
		ledger = append(ledger, record)
	}

	return ledger, nil
}

func parseRow(row []string, columns map[string]int) (domain.TransactionRecord, error) {
	field := func(name string) string {
		idx, found := columns[name]
		if !found || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	date, err := time.Parse(domain.LedgerDateLayout, field("date"))
	if err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("unparseable date %q", field("date"))
	}

	amount, err := decimal.NewFromString(field("amount"))
	if err != nil {
		return domain.TransactionRecord{}, fmt.Errorf("unparseable amount %q", field("amount"))
	}

	cashback := decimal.Zero
	if raw := field("cashback"); raw != "" {
		cashback, err = decimal.NewFromString(raw)
		if err != nil {
			return domain.TransactionRecord{}, fmt.Errorf("unparseable cashback %q", raw)
		}
	}

	txnType := domain.Expense
	if raw := field("type"); raw != "" {
		txnType = domain.TransactionType(strings.ToLower(raw))
	}

	return domain.TransactionRecord{
		Date:        date,
		Category:    field("category"),
		Amount:      amount,
		Description: field("description"),
		Cashback:    cashback,
		Type:        txnType,
	}, nil
}
