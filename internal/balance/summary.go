package balance

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/somma-dev/somma/internal/model"
)

// transferLabels are the category spellings that mark a movement
// between the user's own accounts. Transfers are kept out of the
// income/expense totals so shuffling money around doesn't inflate
// them; their net is reported separately.
var transferLabels = map[string]bool{
	"transferência": true,
	"transferencia": true,
	"transfer":      true,
}

// IsTransfer reports whether a category marks an internal transfer.
func IsTransfer(category string) bool {
	return transferLabels[strings.ToLower(strings.TrimSpace(category))]
}

// Summary aggregates a date range: income and expense excluding
// transfers, their net, and the separate transfer net.
type Summary struct {
	Income      decimal.Decimal
	Expense     decimal.Decimal
	Net         decimal.Decimal // Income - Expense
	TransferNet decimal.Decimal // transfer inflow - transfer outflow
}

// PeriodSummary folds the dated transactions inside [start, end]
// inclusive. Undated transactions are skipped.
func (e *Engine) PeriodSummary(txs []model.Transaction, start, end time.Time) Summary {
	start = day(start)
	end = day(end)

	s := Summary{
		Income:      decimal.Zero,
		Expense:     decimal.Zero,
		TransferNet: decimal.Zero,
	}
	for _, tx := range txs {
		if !tx.HasDate() {
			continue
		}
		d := day(tx.Date)
		if d.Before(start) || d.After(end) {
			continue
		}

		if IsTransfer(tx.Category) {
			s.TransferNet = s.TransferNet.Add(tx.Signed())
			continue
		}
		if tx.Kind == model.KindIncome {
			s.Income = s.Income.Add(tx.Amount)
		} else {
			s.Expense = s.Expense.Add(tx.Amount)
		}
	}
	s.Net = s.Income.Sub(s.Expense)
	return s
}
