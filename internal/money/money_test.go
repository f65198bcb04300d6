package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/somma-dev/somma/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R$ 1.234,56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"1234.56", "1234.56"},
		{"1234,56", "1234.56"},
		{"0,50", "0.50"},
		{"R$ 0,01", "0.01"},
		{"R$1.000.000,00", "1000000.00"},
		{"R$ 1.234", "1234"},
		{"R$ 1.234.567", "1234567"},
		{"1.234", "1.234"},
		{"42", "42"},
		{"abc", "0"},
		{"", "0"},
		{"R$ ", "0"},
		{"-300.25", "-300.25"},
	}
	for _, tt := range tests {
		got := ParseAmount(tt.in)
		assert.True(t, got.Equal(dec(tt.want)), "ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234.56", "R$ 1.234,56"},
		{"0", "R$ 0,00"},
		{"0.5", "R$ 0,50"},
		{"1000000", "R$ 1.000.000,00"},
		{"999", "R$ 999,00"},
		{"-42.10", "-R$ 42,10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBRL(dec(tt.in)))
	}
}

func TestParseAmountRoundTrip(t *testing.T) {
	// Any non-negative magnitude must survive a BRL format cycle.
	for _, s := range []string{"0", "0.01", "1", "12.34", "1234.56", "98765.43", "1000000.00"} {
		d := dec(s)
		got := ParseAmount(FormatBRL(d))
		assert.True(t, got.Equal(d), "round trip of %s gave %s", d, got)
	}
}

func TestNormalizeKind(t *testing.T) {
	income := []string{"Receita", "receita", "ENTRADA", "Crédito", "credito", "income"}
	for _, s := range income {
		assert.Equal(t, model.KindIncome, NormalizeKind(s), "kind %q", s)
	}

	expense := []string{"Despesa", "SAÍDA", "saida", "Débito", "debito", "Pago", "Em Aberto", "expense"}
	for _, s := range expense {
		assert.Equal(t, model.KindExpense, NormalizeKind(s), "kind %q", s)
	}

	// Unrecognized labels default to expense.
	assert.Equal(t, model.KindExpense, NormalizeKind("whatever"))
	assert.Equal(t, model.KindExpense, NormalizeKind(""))
}

func TestLegacyGroup(t *testing.T) {
	g, ok := LegacyGroup("Comum")
	assert.True(t, ok)
	assert.Equal(t, model.GroupAvailable, g)

	g, ok = LegacyGroup("Vale Refeição")
	assert.True(t, ok)
	assert.Equal(t, model.GroupBenefit, g)

	g, ok = LegacyGroup("vr")
	assert.True(t, ok)
	assert.Equal(t, model.GroupBenefit, g)

	_, ok = LegacyGroup("Nubank Principal")
	assert.False(t, ok)
}
