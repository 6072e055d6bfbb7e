package sgsolar

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a BRL monetary value.
//
// Records persist money as the formatted string the operator typed
// ("R$ 1.000,00"); Money is the parsed, exact form used for arithmetic.
type Money struct {
	value decimal.Decimal
}

// BRL builds a Money from a float amount in reais. Intended for literals in
// tests and derived values; inputs go through ParseBRL.
func BRL(v float64) Money { return Money{value: decimal.NewFromFloat(v)} }

// ParseBRL parses a Brazilian currency string such as "R$ 1.234,56".
// The currency symbol, spaces and thousands dots are stripped and the
// decimal comma converted. An empty string is an error; callers that want
// to treat blanks as zero use ParseBRLOrZero.
func ParseBRL(s string) (Money, error) {
	cleaned := strings.NewReplacer("R$", "", " ", "", " ", "", ".", "").Replace(s)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return Money{}, fmt.Errorf("empty currency value")
	}
	v, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, fmt.Errorf("invalid currency value %q: %w", s, err)
	}
	return Money{value: v}, nil
}

// ParseBRLOrZero is the lenient variant used by the aggregation engine:
// blank or malformed values count as zero, matching the display-path
// behavior of the original bookkeeping.
func ParseBRLOrZero(s string) Money {
	m, err := ParseBRL(s)
	if err != nil {
		return Money{}
	}
	return m
}

// String formats the value as BRL using the currency's own formatter.
func (m Money) String() string {
	cur := money.GetCurrency(money.BRL)
	cents := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(cents.Round(0).IntPart())
}

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money        { return Money{value: m.value.Neg()} }
func (m Money) IsZero() bool      { return m.value.IsZero() }
func (m Money) IsNegative() bool  { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool {
	return m.value.Equal(n.value)
}

// Float64 returns the value as a float, for display-side rounding only.
func (m Money) Float64() float64 { return m.value.InexactFloat64() }
