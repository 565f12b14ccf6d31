package shelfstat

import "github.com/shopspring/decimal"

// Money is an exact monetary amount. The input file carries raw numeric
// cost fields with no currency, so Money stays currency-less; the console
// renderer attaches a display currency when formatting.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a raw numeric cost field.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Abs() Money               { return Money{value: m.value.Abs()} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }

// Mul scales the amount by a quantity of units.
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value)} }

// Div spreads the amount over a quantity of units. The caller must ensure
// the quantity is non-zero.
func (m Money) Div(q Quantity) Money { return Money{value: m.value.Div(q.value)} }

// String returns the raw decimal form, the one written to the report files.
func (m Money) String() string { return m.value.String() }

// Round returns the amount rounded to the given number of decimal places.
func (m Money) Round(places int32) Money { return Money{value: m.value.Round(places)} }

// InexactFloat64 is for display-side formatting only.
func (m Money) InexactFloat64() float64 { return m.value.InexactFloat64() }
