package storage

import "github.com/somma-dev/somma/internal/model"

// MemoryBackend keeps the ledger in process memory. In the Hybrid
// state machine it is a bootstrap state: persisting writes create the
// local file instead of landing here, and rows only accumulate in
// memory when even that file cannot be created.
type MemoryBackend struct {
	txs []model.Transaction
}

// NewMemory creates an empty MemoryBackend.
func NewMemory() *MemoryBackend {
	return &MemoryBackend{}
}

// Load returns a copy of the in-memory table.
func (b *MemoryBackend) Load() ([]model.Transaction, error) {
	out := make([]model.Transaction, len(b.txs))
	copy(out, b.txs)
	return out, nil
}

// Save replaces the in-memory table.
func (b *MemoryBackend) Save(txs []model.Transaction) error {
	b.txs = make([]model.Transaction, len(txs))
	copy(b.txs, txs)
	return nil
}

// Append adds one transaction.
func (b *MemoryBackend) Append(tx model.Transaction) error {
	b.txs = append(b.txs, tx)
	return nil
}

// Update replaces the row at index.
func (b *MemoryBackend) Update(index int, tx model.Transaction) error {
	if index < 0 || index >= len(b.txs) {
		return ErrIndexOutOfRange
	}
	b.txs[index] = tx
	return nil
}

// Delete removes the row at index.
func (b *MemoryBackend) Delete(index int) error {
	if index < 0 || index >= len(b.txs) {
		return ErrIndexOutOfRange
	}
	b.txs = append(b.txs[:index], b.txs[index+1:]...)
	return nil
}
