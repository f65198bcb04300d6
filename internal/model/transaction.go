package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the polarity of a transaction. Amounts are stored as
// non-negative magnitudes; the sign lives here.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// AccountGroup partitions accounts into freely spendable funds and
// restricted-use benefit funds (meal/food vouchers).
type AccountGroup string

const (
	GroupAvailable AccountGroup = "available"
	GroupBenefit   AccountGroup = "benefit"
)

// Groups lists both account groups in reporting order.
var Groups = []AccountGroup{GroupAvailable, GroupBenefit}

// Transaction is one row of the canonical ledger table.
// A zero Date means the source value did not parse; such rows are kept
// in the table but excluded from date-bounded aggregates.
type Transaction struct {
	Date        time.Time
	Description string
	Category    string
	Amount      decimal.Decimal // magnitude, always >= 0
	Kind        Kind
	Account     string
}

// HasDate reports whether the transaction carries a usable date.
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}

// Signed returns the transaction's contribution to a balance:
// +Amount for income, -Amount for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}
