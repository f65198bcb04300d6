// Package money parses and formats localized monetary values and
// canonicalizes free-form transaction labels.
package money

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/somma-dev/somma/internal/model"
)

// ParseAmount converts a raw amount cell into a decimal magnitude.
// It accepts plain decimals ("1234.56") and Brazilian currency strings
// ("R$ 1.234,56"). Anything unparseable yields zero; this function
// never fails, parse problems are absorbed as 0.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	brl := strings.HasPrefix(s, "R$")
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	if strings.Contains(s, ",") {
		// Brazilian format: "." groups thousands, "," is the decimal mark.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if brl {
		// "R$ 1.234" has no decimal comma, but the currency prefix
		// still marks the dots as grouping.
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatBRL renders a decimal as a Brazilian currency string,
// e.g. 1234.56 -> "R$ 1.234,56". This is also the serialization the
// remote sheet historically stores, so ParseAmount must round-trip it.
func FormatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2) // "-1234.56"
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

var incomeLabels = map[string]bool{
	"receita": true,
	"entrada": true,
	"crédito": true,
	"credito": true,
	"income":  true,
}

var expenseLabels = map[string]bool{
	"despesa":   true,
	"saída":     true,
	"saida":     true,
	"débito":    true,
	"debito":    true,
	"pago":      true,
	"em aberto": true,
	"expense":   true,
}

// NormalizeKind maps a free-form label to a transaction kind.
// Unrecognized labels default to expense.
func NormalizeKind(raw string) model.Kind {
	label := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case incomeLabels[label]:
		return model.KindIncome
	case expenseLabels[label]:
		return model.KindExpense
	default:
		return model.KindExpense
	}
}

// legacyGroups maps the two built-in account literals of the old data
// format onto account groups.
var legacyGroups = map[string]model.AccountGroup{
	"comum":         model.GroupAvailable,
	"conta comum":   model.GroupAvailable,
	"principal":     model.GroupAvailable,
	"vale refeição": model.GroupBenefit,
	"vale refeicao": model.GroupBenefit,
	"vale-refeição": model.GroupBenefit,
	"vale-refeicao": model.GroupBenefit,
	"vr":            model.GroupBenefit,
}

// LegacyGroup resolves the legacy literal account names onto a group.
// The second return is false for names that are not legacy literals
// and must go through the account registry instead.
func LegacyGroup(account string) (model.AccountGroup, bool) {
	g, ok := legacyGroups[strings.ToLower(strings.TrimSpace(account))]
	return g, ok
}
