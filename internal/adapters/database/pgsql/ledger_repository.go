package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finsight/spending_insights_app/internal/core/domain"
	"github.com/finsight/spending_insights_app/internal/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxLedgerRepository implements the repositories.LedgerRepository interface using pgxpool.
type PgxLedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new PgxLedgerRepository.
func NewLedgerRepository(db *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{db: db}
}

// ListTransactions retrieves every ledger entry in chronological order.
// Rows that cannot be scanned are skipped and logged rather than failing
// the whole ledger.
func (r *PgxLedgerRepository) ListTransactions(ctx context.Context) ([]domain.TransactionRecord, error) {
	query := `
		SELECT transaction_date, category, amount, description, cashback, transaction_type
		FROM transactions
		ORDER BY transaction_date, id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	defer rows.Close()

	logger := middleware.GetLoggerFromCtx(ctx)
	ledger := make([]domain.TransactionRecord, 0)
	for rows.Next() {
		var (
			date        time.Time
			category    string
			amount      decimal.Decimal
			description string
			cashback    decimal.Decimal
			txnType     string
		)
		if err := rows.Scan(&date, &category, &amount, &description, &cashback, &txnType); err != nil {
			logger.Warn("Skipping unreadable transaction row", slog.String("error", err.Error()))
			continue
		}
		ledger = append(ledger, domain.TransactionRecord{
			Date:        date,
			Category:    category,
			Amount:      amount,
			Description: description,
			Cashback:    cashback,
			Type:        domain.TransactionType(txnType),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading transaction rows: %w", err)
	}

	return ledger, nil
}
