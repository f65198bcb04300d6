package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/somma-dev/somma/internal/ledger"
	"github.com/somma-dev/somma/internal/model"
)

// LocalBackend stores the ledger in a single CSV file. Every mutation
// is a full read-normalize-mutate-rewrite of the file; fine at
// personal-scale volume, but a mid-write crash can lose the last write.
type LocalBackend struct {
	path string
}

// NewLocal creates a LocalBackend over the given file path.
func NewLocal(path string) *LocalBackend {
	return &LocalBackend{path: path}
}

// Path returns the backing file path.
func (b *LocalBackend) Path() string { return b.path }

// Exists reports whether the backing file is present on disk.
func (b *LocalBackend) Exists() bool {
	_, err := os.Stat(b.path)
	return err == nil
}

// Load reads and normalizes the ledger file. A missing file is an
// empty ledger, not an error.
func (b *LocalBackend) Load() ([]model.Transaction, error) {
	f, err := os.Open(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", b.path, err)
	}
	defer f.Close()

	txs, err := ledger.ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", b.path, err)
	}
	return txs, nil
}

// Save rewrites the whole ledger file in canonical form.
func (b *LocalBackend) Save(txs []model.Transaction) error {
	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating ledger dir: %w", err)
		}
	}

	f, err := os.Create(b.path)
	if err != nil {
		return fmt.Errorf("creating ledger %s: %w", b.path, err)
	}
	defer f.Close()

	if err := ledger.WriteTransactions(f, txs); err != nil {
		return fmt.Errorf("writing ledger %s: %w", b.path, err)
	}
	return nil
}

// Append adds one transaction and rewrites the file.
func (b *LocalBackend) Append(tx model.Transaction) error {
	txs, err := b.Load()
	if err != nil {
		return err
	}
	return b.Save(append(txs, tx))
}

// Update replaces the row at index and rewrites the file.
func (b *LocalBackend) Update(index int, tx model.Transaction) error {
	txs, err := b.Load()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(txs) {
		return ErrIndexOutOfRange
	}
	txs[index] = tx
	return b.Save(txs)
}

// Delete removes the row at index and rewrites the file.
func (b *LocalBackend) Delete(index int) error {
	txs, err := b.Load()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(txs) {
		return ErrIndexOutOfRange
	}
	txs = append(txs[:index], txs[index+1:]...)
	return b.Save(txs)
}
