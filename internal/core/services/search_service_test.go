package services_test

import (
	"context"
	"testing"

	"github.com/finsight/spending_insights_app/internal/core/domain"
	portssvc "github.com/finsight/spending_insights_app/internal/core/ports/services"
	"github.com/finsight/spending_insights_app/internal/core/services"
	"github.com/stretchr/testify/suite"
)

func searchFixture() []domain.TransactionRecord {
	return []domain.TransactionRecord{
		{Date: mustDate("2023-10-01"), Category: "Супермаркеты", Description: "Покупка в магазине"},
		{Date: mustDate("2023-10-02"), Category: "Рестораны", Description: "Ужин в ресторане"},
		{Date: mustDate("2023-10-01"), Category: "Переводы", Description: "Перевод Алисе"},
		{Date: mustDate("2023-10-03"), Category: "Переводы", Description: "+7 123 456-78-90"},
	}
}

// --- Test Suite ---
type SearchServiceTestSuite struct {
	suite.Suite
	service portssvc.SearchService
}

func (suite *SearchServiceTestSuite) SetupTest() {
	suite.service = services.NewSearchService()
}

// --- Test Cases ---

func (suite *SearchServiceTestSuite) TestSearch_MatchesDescriptionAndCategory() {
	ctx := context.Background()

	testCases := []struct {
		query   string
		matches int
	}{
		{"магазин", 1},
		{"ресторан", 1},
		{"перевод", 2}, // one by description, both by category
		{"ПЕРЕВОД", 2}, // case-insensitive
		{"аптека", 0},
	}

	for _, tc := range testCases {
		result := suite.service.Search(ctx, searchFixture(), tc.query)
		suite.Len(result, tc.matches, "query %q", tc.query)
	}
}

func (suite *SearchServiceTestSuite) TestSearch_PreservesLedgerOrder() {
	ctx := context.Background()

	result := suite.service.Search(ctx, searchFixture(), "перевод")

	suite.Require().Len(result, 2)
	suite.Equal("Перевод Алисе", result[0].Description)
	suite.Equal("+7 123 456-78-90", result[1].Description)
}

func (suite *SearchServiceTestSuite) TestSearch_EmptyLedger() {
	ctx := context.Background()

	result := suite.service.Search(ctx, nil, "перевод")

	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *SearchServiceTestSuite) TestFindPhoneNumbers() {
	ctx := context.Background()

	result := suite.service.FindPhoneNumbers(ctx, searchFixture())

	suite.Require().Len(result, 1)
	suite.Equal("+7 123 456-78-90", result[0].Description)
}

func (suite *SearchServiceTestSuite) TestFindPhoneNumbers_OptionalSpaces() {
	ctx := context.Background()
	ledger := []domain.TransactionRecord{
		{Date: mustDate("2023-10-01"), Category: "Связь", Description: "МТС +7921 555-66-77"},
		{Date: mustDate("2023-10-02"), Category: "Связь", Description: "Тинькофф Мобайл +7 995 555-55-55"},
		{Date: mustDate("2023-10-03"), Category: "Связь", Description: "8 800 555-35-35"}, // no +7 prefix
	}

	result := suite.service.FindPhoneNumbers(ctx, ledger)

	suite.Require().Len(result, 2)
	suite.Equal("Связь", result[0].Category)
}

func (suite *SearchServiceTestSuite) TestFindPersonTransfers() {
	ctx := context.Background()

	result := suite.service.FindPersonTransfers(ctx, searchFixture())

	suite.Require().Len(result, 1)
	suite.Equal("Перевод Алисе", result[0].Description)
}

func (suite *SearchServiceTestSuite) TestFindPersonTransfers_RequiresTransferCategory() {
	ctx := context.Background()
	ledger := []domain.TransactionRecord{
		{Date: mustDate("2023-10-01"), Category: "Супермаркеты", Description: "Перевод Алисе"},
		{Date: mustDate("2023-10-02"), Category: domain.TransferCategory, Description: "Валерий А."},
		{Date: mustDate("2023-10-03"), Category: domain.TransferCategory, Description: "Перевод Валерия А."},
	}

	result := suite.service.FindPersonTransfers(ctx, ledger)

	suite.Require().Len(result, 1)
	suite.Equal("Перевод Валерия А.", result[0].Description)
}

func TestSearchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SearchServiceTestSuite))
}
