package balance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/somma-dev/somma/internal/model"
)

func TestIsTransfer(t *testing.T) {
	assert.True(t, IsTransfer("Transferência"))
	assert.True(t, IsTransfer("transferencia"))
	assert.True(t, IsTransfer("  TRANSFER  "))
	assert.False(t, IsTransfer("Alimentação"))
	assert.False(t, IsTransfer(""))
}

func TestPeriodSummarySplitsTransfers(t *testing.T) {
	e := engineWith("0", "0")
	txs := []model.Transaction{
		income(2024, time.March, 5, "5000.00", "Comum"),
		expense(2024, time.March, 8, "1200.00", "Comum"),
		{Date: date(2024, time.March, 10), Description: "to savings", Category: "Transferência", Amount: dec("800.00"), Kind: model.KindExpense, Account: "Comum"},
		{Date: date(2024, time.March, 12), Description: "from savings", Category: "transferencia", Amount: dec("300.00"), Kind: model.KindIncome, Account: "Comum"},
	}

	s := e.PeriodSummary(txs, date(2024, time.March, 1), date(2024, time.March, 31))

	// Transfers never inflate income or expense.
	assert.True(t, s.Income.Equal(dec("5000.00")), "income %s", s.Income)
	assert.True(t, s.Expense.Equal(dec("1200.00")), "expense %s", s.Expense)
	assert.True(t, s.Net.Equal(dec("3800.00")))
	assert.True(t, s.TransferNet.Equal(dec("-500.00")), "transfer net %s", s.TransferNet)
}

func TestPeriodSummaryBounds(t *testing.T) {
	e := engineWith("0", "0")
	txs := []model.Transaction{
		income(2024, time.March, 1, "10.00", "Comum"),  // first day, included
		income(2024, time.March, 31, "20.00", "Comum"), // last day, included
		income(2024, time.April, 1, "40.00", "Comum"),  // outside
		{Description: "undated", Amount: dec("80.00"), Kind: model.KindIncome, Account: "Comum"},
	}

	s := e.PeriodSummary(txs, date(2024, time.March, 1), date(2024, time.March, 31))
	assert.True(t, s.Income.Equal(dec("30.00")), "income %s", s.Income)
}

func TestPeriodSummaryEmpty(t *testing.T) {
	e := engineWith("0", "0")
	s := e.PeriodSummary(nil, date(2024, time.March, 1), date(2024, time.March, 31))
	assert.True(t, s.Income.IsZero())
	assert.True(t, s.Expense.IsZero())
	assert.True(t, s.Net.IsZero())
	assert.True(t, s.TransferNet.IsZero())
}
