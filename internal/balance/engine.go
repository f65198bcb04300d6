// Package balance derives balances and cash-flow aggregates from the
// canonical transaction table. Everything here is a pure fold: the
// engine never fails, treats undated rows as invisible, and returns
// fully populated results even for an empty ledger so callers can
// render a cold-start projection from registered initial balances.
package balance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/somma-dev/somma/internal/model"
)

// GroupSource resolves account names to groups and supplies the
// registered initial balance per group. The account registry satisfies
// this interface.
type GroupSource interface {
	GroupFor(name string) model.AccountGroup
	InitialBalance(group model.AccountGroup) decimal.Decimal
}

// Engine computes balances over a transaction table.
type Engine struct {
	groups GroupSource
}

// NewEngine creates an Engine over a group source.
func NewEngine(groups GroupSource) *Engine {
	return &Engine{groups: groups}
}

// PriorBalance returns the balance carried into a period by an account
// group: the group's registered initial balances plus the net of all
// dated transactions strictly before the given date.
func (e *Engine) PriorBalance(txs []model.Transaction, group model.AccountGroup, before time.Time) decimal.Decimal {
	return e.groups.InitialBalance(group).Add(e.transactionsPrior(txs, group, before))
}

// transactionsPrior is the transaction-only fold, without initial
// balances. Undated transactions never contribute.
func (e *Engine) transactionsPrior(txs []model.Transaction, group model.AccountGroup, before time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if !tx.HasDate() || !tx.Date.Before(before) {
			continue
		}
		if e.groups.GroupFor(tx.Account) != group {
			continue
		}
		total = total.Add(tx.Signed())
	}
	return total
}

// Totals is a per-group income/expense pair over the whole table.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net returns income minus expense.
func (t Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// GroupTotals folds the whole table into per-group income and expense
// sums, independent of dates. Initial balances are not included.
func (e *Engine) GroupTotals(txs []model.Transaction) map[model.AccountGroup]Totals {
	out := map[model.AccountGroup]Totals{
		model.GroupAvailable: {Income: decimal.Zero, Expense: decimal.Zero},
		model.GroupBenefit:   {Income: decimal.Zero, Expense: decimal.Zero},
	}
	for _, tx := range txs {
		group := e.groups.GroupFor(tx.Account)
		t := out[group]
		if tx.Kind == model.KindIncome {
			t.Income = t.Income.Add(tx.Amount)
		} else {
			t.Expense = t.Expense.Add(tx.Amount)
		}
		out[group] = t
	}
	return out
}

// day truncates a timestamp to its calendar day in UTC.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
