// Package ledger reads and writes the flat-file transaction store.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/somma-dev/somma/internal/model"
	"github.com/somma-dev/somma/internal/normalize"
)

// Header is the canonical CSV header for the ledger file.
const Header = "date,description,category,amount,kind,account"

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	colDate    = 0
	colDesc    = 1
	colCat     = 2
	colAmount  = 3
	colKind    = 4
	colAccount = 5
)

// ReadRaw reads any header-having tabular CSV into a RawTable. It is
// deliberately loose: older format variants carry renamed columns and
// localized amounts, which normalize.Normalize sorts out afterwards.
func ReadRaw(r io.Reader) (normalize.RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return normalize.RawTable{}, fmt.Errorf("reading ledger CSV: %w", err)
	}
	if len(records) == 0 {
		return normalize.RawTable{}, nil
	}
	return normalize.RawTable{Columns: records[0], Rows: records[1:]}, nil
}

// ReadTransactions reads and normalizes a ledger CSV in one step.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	raw, err := ReadRaw(r)
	if err != nil {
		return nil, err
	}
	return normalize.Normalize(raw), nil
}

// WriteTransactions writes the canonical ledger CSV (including header).
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(normalize.Fields); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a transaction to a canonical CSV row.
// Undated transactions serialize with an empty date cell.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	if tx.HasDate() {
		row[colDate] = tx.Date.Format(dateFormat)
	}
	row[colDesc] = tx.Description
	row[colCat] = tx.Category
	row[colAmount] = tx.Amount.StringFixed(2)
	row[colKind] = string(tx.Kind)
	row[colAccount] = tx.Account
	return row
}

// FormatDate renders a transaction date the way the stores serialize it.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}
