package services

import (
	"context"

	"github.com/finsight/spending_insights_app/internal/core/domain"
)

// SearchService defines the transaction classification filters. All three
// are pure, order-preserving filters over the ledger they receive; an empty
// result is valid, not an error.
type SearchService interface {
	// Search returns records whose description or category contains query,
	// case-insensitively. Missing fields behave as empty strings.
	Search(ctx context.Context, ledger []domain.TransactionRecord, query string) []domain.TransactionRecord

	// FindPhoneNumbers returns records whose description contains a mobile
	// number of the form +7 XXX XXX-XX-XX.
	FindPhoneNumbers(ctx context.Context, ledger []domain.TransactionRecord) []domain.TransactionRecord

	// FindPersonTransfers returns transfer-category records whose
	// description names a person.
	FindPersonTransfers(ctx context.Context, ledger []domain.TransactionRecord) []domain.TransactionRecord
}
