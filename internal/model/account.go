package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a registered bank account (or cash/investment pot).
// Transactions reference accounts by free-text name; deleting an
// account leaves historical transactions pointing at the old name.
type Account struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	BankID         string          `json:"bank_id"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Group          AccountGroup    `json:"group"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CreditCard is a registered credit card. It never participates in
// balance computation; it only drives statement-total display.
type CreditCard struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	BankID     string          `json:"bank_id"`
	Limit      decimal.Decimal `json:"limit"`
	ClosingDay int             `json:"closing_day"` // 1-31
	DueDay     int             `json:"due_day"`     // 1-31
	CreatedAt  time.Time       `json:"created_at"`
}
