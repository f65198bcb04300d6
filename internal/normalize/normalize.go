// Package normalize maps arbitrary tabular input onto the canonical
// transaction schema. Input tables come from the local CSV file or the
// remote sheet and may carry renamed columns, localized currency
// strings, and mixed date formats.
package normalize

import (
	"strings"
	"time"

	"github.com/somma-dev/somma/internal/model"
	"github.com/somma-dev/somma/internal/money"
)

// Canonical field names, used as RawTable column keys after renaming.
const (
	FieldDate        = "date"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldKind        = "kind"
	FieldAccount     = "account"
)

// Fields is the canonical column set in wire order.
var Fields = []string{FieldDate, FieldDescription, FieldCategory, FieldAmount, FieldKind, FieldAccount}

// Defaults injected for missing or blank values.
const (
	DefaultCategory = "Uncategorized"
	DefaultAccount  = "Comum"
)

// columnSynonyms maps lower-cased input column names onto canonical
// field names. Kept as data so new source shapes are a one-line change.
var columnSynonyms = map[string]string{
	"date":        FieldDate,
	"data":        FieldDate,
	"vencimento":  FieldDate,
	"description": FieldDescription,
	"descricao":   FieldDescription,
	"descrição":   FieldDescription,
	"category":    FieldCategory,
	"categoria":   FieldCategory,
	"amount":      FieldAmount,
	"valor":       FieldAmount,
	"kind":        FieldKind,
	"tipo":        FieldKind,
	"status":      FieldKind,
	"account":     FieldAccount,
	"conta":       FieldAccount,
}

// dateLayouts are tried in order when parsing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"02/01/2006",
	"02-01-2006",
	"2006/01/02",
}

// RawTable is a generic tabular input: a header plus string rows.
// Rows shorter than the header are padded with empty cells.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// Normalize projects a raw table onto the canonical schema:
// columns are renamed via the synonym map, missing fields filled with
// defaults, amounts and kinds canonicalized, dates parsed permissively,
// and rows without a usable description dropped. Output order follows
// input order but carries no semantics; callers sort by date.
func Normalize(raw RawTable) []model.Transaction {
	index := make(map[string]int, len(raw.Columns))
	for i, col := range raw.Columns {
		canon, ok := columnSynonyms[strings.ToLower(strings.TrimSpace(col))]
		if !ok {
			continue // extra input columns are discarded
		}
		if _, seen := index[canon]; !seen {
			index[canon] = i
		}
	}

	var out []model.Transaction
	for _, row := range raw.Rows {
		if blankRow(row) {
			continue
		}

		cell := func(field string) string {
			i, ok := index[field]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		desc := cell(FieldDescription)
		if desc == "" {
			continue
		}

		category := cell(FieldCategory)
		if category == "" {
			category = DefaultCategory
		}
		account := cell(FieldAccount)
		if account == "" {
			account = DefaultAccount
		}

		out = append(out, model.Transaction{
			Date:        ParseDate(cell(FieldDate)),
			Description: desc,
			Category:    category,
			Amount:      money.ParseAmount(cell(FieldAmount)),
			Kind:        money.NormalizeKind(cell(FieldKind)),
			Account:     account,
		})
	}
	return out
}

// ParseDate parses a date cell against the accepted layouts.
// Unparseable input yields the zero time ("no date").
func ParseDate(raw string) time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
