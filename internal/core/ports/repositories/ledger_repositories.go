package repositories

import (
	"context"

	"github.com/finsight/spending_insights_app/internal/core/domain"
)

// LedgerRepository defines operations for retrieving the transaction ledger.
// Implementations re-read their source on every call; the ledger is treated
// as an immutable value once returned.
type LedgerRepository interface {
	// ListTransactions returns every ledger entry in source order.
	ListTransactions(ctx context.Context) ([]domain.TransactionRecord, error)
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	LedgerRepo LedgerRepository
}
