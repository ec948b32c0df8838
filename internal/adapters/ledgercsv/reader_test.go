package ledgercsv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/finsight/spending_insights_app/internal/adapters/ledgercsv"
	"github.com/finsight/spending_insights_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLedgerFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestListTransactions(t *testing.T) {
	path := writeLedgerFile(t, `date,category,amount,description,cashback,type
2023-10-01,Супермаркеты,1712.50,Покупка в магазине,17.12,expense
2023-10-05,Зарплата,50000,Аванс,,income
2023-10-12,Переводы,2000,Перевод Алисе,,
`)

	ledger, err := ledgercsv.NewReader(path).ListTransactions(context.Background())

	require.NoError(t, err)
	require.Len(t, ledger, 3)

	first := ledger[0]
	assert.Equal(t, "2023-10-01", first.Date.Format(domain.LedgerDateLayout))
	assert.Equal(t, "Супермаркеты", first.Category)
	assert.True(t, first.Amount.Equal(decimal.NewFromFloat(1712.50)), "got %s", first.Amount)
	assert.True(t, first.Cashback.Equal(decimal.NewFromFloat(17.12)))
	assert.Equal(t, domain.Expense, first.Type)

	assert.Equal(t, domain.Income, ledger[1].Type)
	assert.True(t, ledger[1].Cashback.IsZero())

	// Missing type defaults to expense.
	assert.Equal(t, domain.Expense, ledger[2].Type)
	assert.True(t, ledger[2].IsExpense())
}

func TestListTransactions_HeaderCaseAndColumnOrder(t *testing.T) {
	path := writeLedgerFile(t, `Amount,Date,Category
100,2023-10-01,Кафе
`)

	ledger, err := ledgercsv.NewReader(path).ListTransactions(context.Background())

	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, "Кафе", ledger[0].Category)
	assert.True(t, ledger[0].Amount.Equal(decimal.NewFromInt(100)))
}

func TestListTransactions_SkipsUnparseableRows(t *testing.T) {
	path := writeLedgerFile(t, `date,category,amount
not-a-date,Кафе,100
2023-10-01,Кафе,not-a-number
2023-10-02,Кафе,250
`)

	ledger, err := ledgercsv.NewReader(path).ListTransactions(context.Background())

	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.True(t, ledger[0].Amount.Equal(decimal.NewFromInt(250)))
}

func TestListTransactions_MissingRequiredColumn(t *testing.T) {
	path := writeLedgerFile(t, `date,category
2023-10-01,Кафе
`)

	_, err := ledgercsv.NewReader(path).ListTransactions(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

func TestListTransactions_MissingFile(t *testing.T) {
	_, err := ledgercsv.NewReader(filepath.Join(t.TempDir(), "nope.csv")).ListTransactions(context.Background())
	require.Error(t, err)
}

func TestListTransactions_PicksUpEdits(t *testing.T) {
	path := writeLedgerFile(t, `date,category,amount
2023-10-01,Кафе,100
`)
	reader := ledgercsv.NewReader(path)

	ledger, err := reader.ListTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, ledger, 1)

	require.NoError(t, os.WriteFile(path, []byte(`date,category,amount
2023-10-01,Кафе,100
2023-10-02,Кафе,200
`), 0o644))

	ledger, err = reader.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Len(t, ledger, 2)
}
