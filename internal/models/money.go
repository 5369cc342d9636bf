package models

import "github.com/shopspring/decimal"

// moneyScale is the number of implied fractional digits in a Money value.
const moneyScale = 4

// Money is an exact monetary value stored as an integer count of
// ten-thousandths (value * 10^4, rounded half away from zero).
// Two Money values are equal iff their scaled integers are equal; no
// floating point is held internally, so sums never drift.
// Money is immutable: every operation returns a new value.
type Money struct {
	units int64
}

// MoneyFromUnits builds a Money directly from scaled units.
func MoneyFromUnits(units int64) Money {
	return Money{units: units}
}

// MoneyFromDecimal rounds to four decimal places; precision beyond that is
// silently dropped. Construction always succeeds.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{units: d.Round(moneyScale).Shift(moneyScale).IntPart()}
}

// MoneyFromFloat converts a float64 amount, rounding to four decimal places.
func MoneyFromFloat(f float64) Money {
	return MoneyFromDecimal(decimal.NewFromFloat(f))
}

// ParseMoney parses a decimal string such as "12345.54321".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return MoneyFromDecimal(d), nil
}

func (m Money) Add(o Money) Money {
	return Money{units: m.units + o.units}
}

func (m Money) Sub(o Money) Money {
	return Money{units: m.units - o.units}
}

// Cmp returns -1, 0, or 1 as m is less than, equal to, or greater than o.
func (m Money) Cmp(o Money) int {
	switch {
	case m.units < o.units:
		return -1
	case m.units > o.units:
		return 1
	}
	return 0
}

func (m Money) LessThan(o Money) bool {
	return m.units < o.units
}

func (m Money) IsZero() bool {
	return m.units == 0
}

// Units exposes the scaled integer representation.
func (m Money) Units() int64 {
	return m.units
}

// Decimal returns the exact decimal value.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.units, -moneyScale)
}

// Float returns the closest float64 to the stored value. Reporting only;
// arithmetic stays on the scaled integers.
func (m Money) Float() float64 {
	f, _ := m.Decimal().Float64()
	return f
}

// String renders the value with up to four fractional digits and no
// trailing zeros.
func (m Money) String() string {
	return m.Decimal().String()
}
