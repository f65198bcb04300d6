package balance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/somma-dev/somma/internal/model"
)

// DayRow is one day of the daily cash-flow ledger: aggregated inflow
// and outflow per account group, day totals, and the cumulative
// balance per group carried forward from the prior balance.
type DayRow struct {
	Date time.Time

	AvailableIn  decimal.Decimal
	AvailableOut decimal.Decimal
	BenefitIn    decimal.Decimal
	BenefitOut   decimal.Decimal

	In  decimal.Decimal // AvailableIn + BenefitIn
	Out decimal.Decimal // AvailableOut + BenefitOut
	Net decimal.Decimal // In - Out

	AvailableBalance decimal.Decimal
	BenefitBalance   decimal.Decimal
}

// Balance returns the combined cumulative balance for the day.
func (d DayRow) Balance() decimal.Decimal {
	return d.AvailableBalance.Add(d.BenefitBalance)
}

type movement struct {
	availIn, availOut, benIn, benOut decimal.Decimal
}

// DailyCashflow builds a dense day-by-day ledger over [start, end]
// inclusive, one row per calendar day with no gaps, even when the
// table is empty. Cumulative balances are a prefix sum seeded by
// PriorBalance at start, so the whole range costs O(days + transactions).
// Undated transactions cannot be placed on a day and are skipped.
func (e *Engine) DailyCashflow(txs []model.Transaction, start, end time.Time) []DayRow {
	start = day(start)
	end = day(end)
	if end.Before(start) {
		return nil
	}

	moves := make(map[time.Time]*movement)
	for _, tx := range txs {
		if !tx.HasDate() {
			continue
		}
		d := day(tx.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		m := moves[d]
		if m == nil {
			m = &movement{
				availIn:  decimal.Zero,
				availOut: decimal.Zero,
				benIn:    decimal.Zero,
				benOut:   decimal.Zero,
			}
			moves[d] = m
		}
		benefit := e.groups.GroupFor(tx.Account) == model.GroupBenefit
		switch {
		case tx.Kind == model.KindIncome && benefit:
			m.benIn = m.benIn.Add(tx.Amount)
		case tx.Kind == model.KindIncome:
			m.availIn = m.availIn.Add(tx.Amount)
		case benefit:
			m.benOut = m.benOut.Add(tx.Amount)
		default:
			m.availOut = m.availOut.Add(tx.Amount)
		}
	}

	availBalance := e.PriorBalance(txs, model.GroupAvailable, start)
	benBalance := e.PriorBalance(txs, model.GroupBenefit, start)

	days := int(end.Sub(start).Hours()/24) + 1
	rows := make([]DayRow, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		row := DayRow{
			Date:         d,
			AvailableIn:  decimal.Zero,
			AvailableOut: decimal.Zero,
			BenefitIn:    decimal.Zero,
			BenefitOut:   decimal.Zero,
		}
		if m := moves[d]; m != nil {
			row.AvailableIn = m.availIn
			row.AvailableOut = m.availOut
			row.BenefitIn = m.benIn
			row.BenefitOut = m.benOut
		}

		row.In = row.AvailableIn.Add(row.BenefitIn)
		row.Out = row.AvailableOut.Add(row.BenefitOut)
		row.Net = row.In.Sub(row.Out)

		availBalance = availBalance.Add(row.AvailableIn.Sub(row.AvailableOut))
		benBalance = benBalance.Add(row.BenefitIn.Sub(row.BenefitOut))
		row.AvailableBalance = availBalance
		row.BenefitBalance = benBalance

		rows = append(rows, row)
	}
	return rows
}
