package storage

import (
	"fmt"

	"github.com/somma-dev/somma/internal/ledger"
	"github.com/somma-dev/somma/internal/model"
	"github.com/somma-dev/somma/internal/money"
	"github.com/somma-dev/somma/internal/normalize"
)

// RowService is the remote table collaborator: an external
// spreadsheet-like service reduced to row operations. Row indexes are
// zero-based over data rows; the header row is the service's concern
// on reads and this backend's concern on writes. The concrete
// transport and auth live outside this package (see storage/sheets).
type RowService interface {
	// Rows returns all rows including the header row.
	Rows() ([][]string, error)
	Append(row []string) error
	Update(index int, row []string) error
	Delete(index int) error
	Clear() error
}

// RemoteBackend stores the ledger in a remote table via a RowService.
// Dates serialize as ISO; amounts serialize as localized currency
// strings, matching what the sheet historically contains.
type RemoteBackend struct {
	svc RowService
}

// NewRemote creates a RemoteBackend over an injected RowService.
func NewRemote(svc RowService) *RemoteBackend {
	return &RemoteBackend{svc: svc}
}

// Ping verifies the remote table is reachable.
func (b *RemoteBackend) Ping() error {
	_, err := b.svc.Rows()
	return err
}

// Load fetches all rows and normalizes them.
func (b *RemoteBackend) Load() ([]model.Transaction, error) {
	rows, err := b.svc.Rows()
	if err != nil {
		return nil, fmt.Errorf("fetching remote rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return normalize.Normalize(normalize.RawTable{Columns: rows[0], Rows: rows[1:]}), nil
}

// Save clears the remote table and rewrites header plus all rows.
func (b *RemoteBackend) Save(txs []model.Transaction) error {
	if err := b.svc.Clear(); err != nil {
		return fmt.Errorf("clearing remote table: %w", err)
	}
	if err := b.svc.Append(normalize.Fields); err != nil {
		return fmt.Errorf("writing remote header: %w", err)
	}
	for i, tx := range txs {
		if err := b.svc.Append(marshalRemoteRow(tx)); err != nil {
			return fmt.Errorf("writing remote row %d: %w", i, err)
		}
	}
	return nil
}

// Append adds one row to the remote table.
func (b *RemoteBackend) Append(tx model.Transaction) error {
	if err := b.svc.Append(marshalRemoteRow(tx)); err != nil {
		return fmt.Errorf("appending remote row: %w", err)
	}
	return nil
}

// Update rewrites the data row at index.
func (b *RemoteBackend) Update(index int, tx model.Transaction) error {
	if err := b.svc.Update(index, marshalRemoteRow(tx)); err != nil {
		return fmt.Errorf("updating remote row %d: %w", index, err)
	}
	return nil
}

// Delete removes the data row at index.
func (b *RemoteBackend) Delete(index int) error {
	if err := b.svc.Delete(index); err != nil {
		return fmt.Errorf("deleting remote row %d: %w", index, err)
	}
	return nil
}

func marshalRemoteRow(tx model.Transaction) []string {
	return []string{
		ledger.FormatDate(tx.Date),
		tx.Description,
		tx.Category,
		money.FormatBRL(tx.Amount),
		string(tx.Kind),
		tx.Account,
	}
}
