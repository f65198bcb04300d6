package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somma-dev/somma/internal/model"
)

func TestMemoryBackend(t *testing.T) {
	b := NewMemory()

	txs, err := b.Load()
	require.NoError(t, err)
	assert.Empty(t, txs)

	require.NoError(t, b.Append(tx("a", "1.00", model.KindExpense)))
	require.NoError(t, b.Append(tx("b", "2.00", model.KindExpense)))
	require.NoError(t, b.Update(0, tx("a2", "1.50", model.KindIncome)))
	require.NoError(t, b.Delete(1))

	txs, err = b.Load()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "a2", txs[0].Description)

	assert.ErrorIs(t, b.Update(5, tx("x", "1.00", model.KindExpense)), ErrIndexOutOfRange)
	assert.ErrorIs(t, b.Delete(5), ErrIndexOutOfRange)
}

func TestMemoryLoadReturnsCopy(t *testing.T) {
	b := NewMemory()
	require.NoError(t, b.Append(tx("a", "1.00", model.KindExpense)))

	txs, err := b.Load()
	require.NoError(t, err)
	txs[0].Description = "mutated"

	again, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].Description)
}
