package services

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/finsight/spending_insights_app/internal/core/domain"
	portssvc "github.com/finsight/spending_insights_app/internal/core/ports/services"
)

// phonePattern matches mobile numbers of the form +7 XXX XXX-XX-XX, with
// the spaces after the country and area code groups optional.
var phonePattern = regexp.MustCompile(`\+7\s?\d{3}\s?\d{3}-\d{2}-\d{2}`)

// personPattern matches a transfer marker word followed by a capitalized
// name token, optionally with a capitalized initial ("Перевод Валерия А.").
var personPattern = regexp.MustCompile(`[Пп]еревод[а-яё]*\s+[А-ЯЁ][а-яё]+(\s[А-ЯЁ]\.)?`)

// searchService implements the SearchService interface
type searchService struct {
	BaseService
}

// NewSearchService creates a new search service
func NewSearchService() portssvc.SearchService {
	return &searchService{}
}

var _ portssvc.SearchService = (*searchService)(nil)

// Search returns records whose description or category contains query,
// case-insensitively. Output order matches input order.
func (s *searchService) Search(ctx context.Context, ledger []domain.TransactionRecord, query string) []domain.TransactionRecord {
	needle := strings.ToLower(query)

	matched := make([]domain.TransactionRecord, 0)
	for _, txn := range ledger {
		if strings.Contains(strings.ToLower(txn.Description), needle) ||
			strings.Contains(strings.ToLower(txn.Category), needle) {
			matched = append(matched, txn)
		}
	}

	s.LogInfo(ctx, "Transaction search completed",
		slog.String("query", query),
		slog.Int("matches", len(matched)))
	return matched
}

// FindPhoneNumbers returns records whose description contains a mobile
// phone number.
func (s *searchService) FindPhoneNumbers(ctx context.Context, ledger []domain.TransactionRecord) []domain.TransactionRecord {
	matched := make([]domain.TransactionRecord, 0)
	for _, txn := range ledger {
		if phonePattern.MatchString(txn.Description) {
			matched = append(matched, txn)
		}
	}

	s.LogInfo(ctx, "Phone number search completed", slog.Int("matches", len(matched)))
	return matched
}

// FindPersonTransfers returns transfer-category records whose description
// names a person.
func (s *searchService) FindPersonTransfers(ctx context.Context, ledger []domain.TransactionRecord) []domain.TransactionRecord {
	matched := make([]domain.TransactionRecord, 0)
	for _, txn := range ledger {
		if txn.Category != domain.TransferCategory {
			continue
		}
		if personPattern.MatchString(txn.Description) {
			matched = append(matched, txn)
		}
	}

	s.LogInfo(ctx, "Person transfer search completed", slog.Int("matches", len(matched)))
	return matched
}
