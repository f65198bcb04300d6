// Package storage persists the transaction ledger behind a single call
// surface with three interchangeable backends: a remote spreadsheet, a
// local CSV file, and an in-memory bootstrap store. Backend selection
// and transparent fallback live in Hybrid.
package storage

import (
	"errors"
	"strings"

	"github.com/somma-dev/somma/internal/model"
)

// Backend is the storage call surface. Update and Delete address rows
// by zero-based position in the table as currently stored; neither
// wire format carries a stable ID column. Hybrid layers snapshot row
// IDs on top so callers never touch raw indexes.
type Backend interface {
	Load() ([]model.Transaction, error)
	Save([]model.Transaction) error
	Append(model.Transaction) error
	Update(index int, tx model.Transaction) error
	Delete(index int) error
}

// Mode identifies the active backend.
type Mode string

const (
	ModeRemote Mode = "remote"
	ModeLocal  Mode = "local"
	ModeMemory Mode = "memory"
)

// Severity classifies a status badge for display.
type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Status describes the active backend for display. Durable is true
// only when writes reach the remote store.
type Status struct {
	Mode     Mode
	Label    string
	Severity Severity
	Durable  bool
}

// ErrIndexOutOfRange is returned by positional Update/Delete when the
// index does not address an existing row.
var ErrIndexOutOfRange = errors.New("row index out of range")

// ValidateTransaction enforces the write-boundary rules: a non-empty
// description and a strictly positive amount. Parse-level problems
// (bad dates, odd categories) are normalized away instead.
func ValidateTransaction(tx model.Transaction) error {
	if strings.TrimSpace(tx.Description) == "" {
		return errors.New("description is required")
	}
	if !tx.Amount.IsPositive() {
		return errors.New("amount must be greater than zero")
	}
	return nil
}
