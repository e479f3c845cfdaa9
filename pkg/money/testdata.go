package money

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// Generator produces seeded random fixture amounts. Tests that use it derive
// their expected totals from the generated values instead of asserting
// literals.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator creates a generator with a fixed seed for reproducible runs.
func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Guaranies returns an integral guaraní amount between min and max.
func (g *Generator) Guaranies(min, max int) decimal.Decimal {
	return decimal.NewFromInt(int64(g.faker.Number(min, max)))
}

// Dollars returns a dollar amount with whole cents between min and max.
func (g *Generator) Dollars(min, max float64) decimal.Decimal {
	cents := int64(g.faker.Float64Range(min, max) * 100)
	return decimal.New(cents, -2)
}

// Currency returns one of the run currencies.
func (g *Generator) Currency() string {
	if g.faker.Bool() {
		return PYG
	}
	return USD
}

// Receipt returns a six-digit receipt number.
func (g *Generator) Receipt() string {
	return g.faker.DigitN(6)
}
