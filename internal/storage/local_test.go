package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somma-dev/somma/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func tx(desc, amount string, kind model.Kind) model.Transaction {
	return model.Transaction{
		Date:        date(2024, time.January, 15),
		Description: desc,
		Category:    "Uncategorized",
		Amount:      dec(amount),
		Kind:        kind,
		Account:     "Comum",
	}
}

func TestLocalMissingFileIsEmpty(t *testing.T) {
	b := NewLocal(filepath.Join(t.TempDir(), "ledger.csv"))
	assert.False(t, b.Exists())

	txs, err := b.Load()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestLocalAppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ledger.csv")
	b := NewLocal(path)

	require.NoError(t, b.Append(tx("Café", "8.50", model.KindExpense)))
	assert.True(t, b.Exists())

	txs, err := b.Load()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Café", txs[0].Description)
	assert.True(t, txs[0].Amount.Equal(dec("8.50")))
}

func TestLocalUpdateAndDelete(t *testing.T) {
	b := NewLocal(filepath.Join(t.TempDir(), "ledger.csv"))
	require.NoError(t, b.Append(tx("a", "1.00", model.KindExpense)))
	require.NoError(t, b.Append(tx("b", "2.00", model.KindIncome)))
	require.NoError(t, b.Append(tx("c", "3.00", model.KindExpense)))

	require.NoError(t, b.Update(1, tx("b2", "2.50", model.KindIncome)))
	require.NoError(t, b.Delete(0))

	txs, err := b.Load()
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "b2", txs[0].Description)
	assert.True(t, txs[0].Amount.Equal(dec("2.50")))
	assert.Equal(t, "c", txs[1].Description)
}

func TestLocalIndexOutOfRange(t *testing.T) {
	b := NewLocal(filepath.Join(t.TempDir(), "ledger.csv"))
	require.NoError(t, b.Append(tx("a", "1.00", model.KindExpense)))

	assert.ErrorIs(t, b.Update(5, tx("x", "1.00", model.KindExpense)), ErrIndexOutOfRange)
	assert.ErrorIs(t, b.Delete(-1), ErrIndexOutOfRange)
}

func TestLocalSaveRewritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	b := NewLocal(path)
	require.NoError(t, b.Save([]model.Transaction{tx("only", "9.99", model.KindExpense)}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "date,description,category,amount,kind,account")
	assert.Contains(t, string(data), "only")

	txs, err := b.Load()
	require.NoError(t, err)
	require.Len(t, txs, 1)
}

func TestValidateTransaction(t *testing.T) {
	assert.NoError(t, ValidateTransaction(tx("ok", "1.00", model.KindExpense)))
	assert.Error(t, ValidateTransaction(tx("", "1.00", model.KindExpense)))
	assert.Error(t, ValidateTransaction(tx("   ", "1.00", model.KindExpense)))
	assert.Error(t, ValidateTransaction(tx("zero", "0", model.KindExpense)))
	assert.Error(t, ValidateTransaction(tx("neg", "-3.00", model.KindIncome)))
}
