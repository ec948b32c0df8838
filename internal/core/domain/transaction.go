package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a ledger entry.
type TransactionType string

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

// LedgerDateLayout is the fixed calendar-date layout every ledger source uses.
// Rows whose date does not parse under it are skipped, never fatal.
const LedgerDateLayout = "2006-01-02"

// TransferCategory is the literal category label used for person-to-person
// transfers in the source data.
const TransferCategory = "Переводы"

// CashCategory is the literal category label for cash withdrawals.
const CashCategory = "Наличные"

// TransactionRecord is one ledger entry.
//
// Amount is a positive magnitude; direction is carried by Type. Category and
// Description are opaque strings with no enforced taxonomy.
type TransactionRecord struct {
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Cashback    decimal.Decimal `json:"cashback"`
	Type        TransactionType `json:"type"`
}

// Validate checks that the fields every aggregation depends on are present.
func (t TransactionRecord) Validate() error {
	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}
	if t.Category == "" {
		return errors.New("transaction category is required")
	}
	return nil
}

// IsExpense reports whether the record is an outflow. Records with no
// explicit type default to expense, matching the source data.
func (t TransactionRecord) IsExpense() bool {
	return t.Type != Income
}
