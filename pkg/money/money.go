// Package money renders run-summary amounts per currency. Guaraní totals
// carry no decimal places, dollar totals two. It wraps go-money for display
// formatting and shopspring/decimal for the arithmetic.
package money

import (
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency codes the consolidation handles.
const (
	PYG = "PYG"
	USD = "USD"
)

func init() {
	// Paraguayan convention: Gs prefix, dot thousand separator, no decimals.
	money.AddCurrency(PYG, "Gs", "$ 1", ",", ".", 0)
}

// Amount is a single-currency value backed by go-money minor units.
type Amount struct {
	m *money.Money
}

// FromDecimal converts a major-unit decimal into an Amount, rounding to the
// currency's minor unit. Unknown codes fall back to dollar formatting.
func FromDecimal(d decimal.Decimal, code string) Amount {
	currency := money.GetCurrency(code)
	if currency == nil {
		currency = money.GetCurrency(USD)
	}
	minor := d.Mul(decimal.New(1, int32(currency.Fraction))).Round(0).IntPart()
	return Amount{m: money.New(minor, currency.Code)}
}

// Minor returns the amount in minor units.
func (a Amount) Minor() int64 {
	if a.m == nil {
		return 0
	}
	return a.m.Amount()
}

// Currency returns the ISO-4217 code.
func (a Amount) Currency() string {
	if a.m == nil {
		return ""
	}
	return a.m.Currency().Code
}

// Display renders the amount with its currency convention,
// e.g. "Gs 1.234.567" or "$1,500.50".
func (a Amount) Display() string {
	if a.m == nil {
		return ""
	}
	return a.m.Display()
}

// Totals accumulates per-currency sums across a consolidation run.
type Totals map[string]decimal.Decimal

// Add folds an amount into the total for code. Empty codes are dropped.
func (t Totals) Add(code string, d decimal.Decimal) {
	if code == "" {
		return
	}
	t[code] = t[code].Add(d)
}

// Merge folds every total of other into t.
func (t Totals) Merge(other Totals) {
	for code, d := range other {
		t.Add(code, d)
	}
}

// String renders the totals in a stable order, guaraníes first.
func (t Totals) String() string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		ri, rj := currencyRank(codes[i]), currencyRank(codes[j])
		if ri != rj {
			return ri < rj
		}
		return codes[i] < codes[j]
	})

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, FromDecimal(t[code], code).Display())
	}
	return strings.Join(parts, ", ")
}

func currencyRank(code string) int {
	switch code {
	case PYG:
		return 0
	case USD:
		return 1
	default:
		return 2
	}
}
