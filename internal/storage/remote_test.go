package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somma-dev/somma/internal/model"
)

// fakeRowService is an in-memory RowService with injectable failures.
type fakeRowService struct {
	rows [][]string
	err  error
}

func newFakeRowService() *fakeRowService {
	return &fakeRowService{rows: [][]string{
		{"date", "description", "category", "amount", "kind", "account"},
	}}
}

func (f *fakeRowService) Rows() ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeRowService) Append(row []string) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeRowService) Update(index int, row []string) error {
	if f.err != nil {
		return f.err
	}
	if index < 0 || index+1 >= len(f.rows) {
		return ErrIndexOutOfRange
	}
	f.rows[index+1] = row
	return nil
}

func (f *fakeRowService) Delete(index int) error {
	if f.err != nil {
		return f.err
	}
	if index < 0 || index+1 >= len(f.rows) {
		return ErrIndexOutOfRange
	}
	f.rows = append(f.rows[:index+1], f.rows[index+2:]...)
	return nil
}

func (f *fakeRowService) Clear() error {
	if f.err != nil {
		return f.err
	}
	f.rows = nil
	return nil
}

func TestRemoteAppendAndLoad(t *testing.T) {
	svc := newFakeRowService()
	b := NewRemote(svc)

	require.NoError(t, b.Append(tx("Mercado", "312.45", model.KindExpense)))

	// The sheet stores localized amounts; Load must parse them back.
	require.Len(t, svc.rows, 2)
	assert.Equal(t, "R$ 312,45", svc.rows[1][3])

	txs, err := b.Load()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Mercado", txs[0].Description)
	assert.True(t, txs[0].Amount.Equal(dec("312.45")))
	assert.Equal(t, date(2024, time.January, 15), txs[0].Date)
}

func TestRemoteUpdateDelete(t *testing.T) {
	svc := newFakeRowService()
	b := NewRemote(svc)
	require.NoError(t, b.Append(tx("a", "1.00", model.KindExpense)))
	require.NoError(t, b.Append(tx("b", "2.00", model.KindExpense)))

	require.NoError(t, b.Update(0, tx("a2", "1.50", model.KindIncome)))
	require.NoError(t, b.Delete(1))

	txs, err := b.Load()
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "a2", txs[0].Description)
	assert.Equal(t, model.KindIncome, txs[0].Kind)
}

func TestRemoteSaveRewritesTable(t *testing.T) {
	svc := newFakeRowService()
	svc.rows = append(svc.rows, []string{"2024-01-01", "old", "x", "R$ 1,00", "expense", "Comum"})
	b := NewRemote(svc)

	require.NoError(t, b.Save([]model.Transaction{tx("fresh", "7.00", model.KindExpense)}))

	require.Len(t, svc.rows, 2)
	assert.Equal(t, "date", svc.rows[0][0])
	assert.Equal(t, "fresh", svc.rows[1][1])
}

func TestRemotePing(t *testing.T) {
	svc := newFakeRowService()
	b := NewRemote(svc)
	assert.NoError(t, b.Ping())

	svc.err = errors.New("network down")
	assert.Error(t, b.Ping())
}

func TestRemoteLoadEmpty(t *testing.T) {
	b := NewRemote(&fakeRowService{})
	txs, err := b.Load()
	require.NoError(t, err)
	assert.Empty(t, txs)
}
