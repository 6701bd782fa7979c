package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value carried as an exact decimal in major
// units, with the ISO 4217 currency code alongside. Fields are
// exported so reports round-trip through json.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
}

// MoneyOf builds a Money from a float64 amount in major units.
func MoneyOf(value float64, currency string) Money {
	return Money{Amount: decimal.NewFromFloat(value), Currency: currency}
}

// currency returns the full currency definition.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.Currency).Currency()
}

// String returns the money value formatted for its currency,
// rounded to the currency's fraction. Without a currency code it
// falls back to the plain decimal form.
func (m Money) String() string {
	if m.Currency == "" {
		return m.Amount.String()
	}
	cur := m.currency()
	dec := m.Amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value
// with an explicit sign. 0 is represented as a "-".
func (m Money) SignedString() string {
	if m.Amount.IsZero() {
		return "-"
	}
	if m.Amount.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool {
	return m.Amount.Equal(n.Amount) && m.Currency == n.Currency
}

func (m Money) IsZero() bool { return m.Amount.IsZero() }
