package balance

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/somma-dev/somma/internal/model"
)

// CardStatement is the current-month statement total for one card.
type CardStatement struct {
	Card        model.CreditCard
	Total       decimal.Decimal
	Utilization decimal.Decimal // percent of limit, 0 when limit is 0
}

// CardStatements sums the calendar-month expenses of ref per card,
// matching transactions whose account equals the card name. When no
// card matched anything but the month still has expenses (legacy data
// recorded against account names that predate the card registry), the
// month total is allocated across cards in proportion to their limits.
func (e *Engine) CardStatements(txs []model.Transaction, cards []model.CreditCard, ref time.Time) []CardStatement {
	if len(cards) == 0 {
		return nil
	}

	monthTotal := decimal.Zero
	perCard := make(map[int]decimal.Decimal, len(cards))
	for _, tx := range txs {
		if !tx.HasDate() || tx.Kind != model.KindExpense {
			continue
		}
		if tx.Date.Year() != ref.Year() || tx.Date.Month() != ref.Month() {
			continue
		}
		monthTotal = monthTotal.Add(tx.Amount)
		for _, card := range cards {
			if strings.EqualFold(tx.Account, card.Name) {
				perCard[card.ID] = perCard[card.ID].Add(tx.Amount)
				break
			}
		}
	}

	matchedTotal := decimal.Zero
	limitTotal := decimal.Zero
	for _, card := range cards {
		matchedTotal = matchedTotal.Add(perCard[card.ID])
		limitTotal = limitTotal.Add(card.Limit)
	}
	useFallback := matchedTotal.IsZero() && monthTotal.IsPositive() && limitTotal.IsPositive()

	out := make([]CardStatement, 0, len(cards))
	for _, card := range cards {
		total := perCard[card.ID]
		if useFallback {
			total = card.Limit.Div(limitTotal).Mul(monthTotal)
		}

		utilization := decimal.Zero
		if card.Limit.IsPositive() {
			utilization = total.Div(card.Limit).Mul(decimal.NewFromInt(100))
		}
		out = append(out, CardStatement{Card: card, Total: total, Utilization: utilization})
	}
	return out
}
