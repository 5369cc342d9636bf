package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromFloat(t *testing.T) {
	assert.Equal(t, int64(10000), MoneyFromFloat(1.0).Units())
	assert.Equal(t, int64(15241), MoneyFromFloat(1.5241).Units())
}

func TestMoneyFromFloatFourPlacesPrecision(t *testing.T) {
	assert.Equal(t, int64(123455241), MoneyFromFloat(12345.52413).Units())
	assert.Equal(t, int64(-5241), MoneyFromFloat(-0.52408).Units())
}

func TestMoneyReverseConversion(t *testing.T) {
	assert.Equal(t, 1.0, MoneyFromUnits(10000).Float())
	assert.Equal(t, 1.5241, MoneyFromUnits(15241).Float())
	assert.Equal(t, 12345.5241, MoneyFromUnits(123455241).Float())
	assert.Equal(t, -0.5241, MoneyFromUnits(-5241).Float())
}

func TestMoneyAdditionSubtraction(t *testing.T) {
	assert.Equal(t, MoneyFromUnits(25241), MoneyFromUnits(10000).Add(MoneyFromUnits(15241)))
	assert.Equal(t, MoneyFromUnits(-5241), MoneyFromUnits(10000).Sub(MoneyFromUnits(15241)))
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("1.5")
	require.NoError(t, err)
	assert.Equal(t, int64(15000), m.Units())

	// excess precision is rounded away
	m, err = ParseMoney("12345.54321")
	require.NoError(t, err)
	assert.Equal(t, int64(123455432), m.Units())

	_, err = ParseMoney("not-a-number")
	assert.Error(t, err)
}

func TestMoneyEqualityIsExact(t *testing.T) {
	a := MoneyFromFloat(1.5)
	b, err := ParseMoney("1.50000")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Zero(t, a.Cmp(b))
}

func TestMoneyOrdering(t *testing.T) {
	small := MoneyFromFloat(1.5)
	big := MoneyFromFloat(4.0)
	assert.True(t, small.LessThan(big))
	assert.False(t, big.LessThan(small))
	assert.Equal(t, -1, small.Cmp(big))
	assert.Equal(t, 1, big.Cmp(small))
	assert.True(t, Money{}.IsZero())
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "3.5", MoneyFromFloat(3.5).String())
	assert.Equal(t, "0", Money{}.String())
	assert.Equal(t, "2", MoneyFromFloat(2.0).String())
	assert.Equal(t, "-0.5241", MoneyFromUnits(-5241).String())
	assert.Equal(t, "12345.5241", MoneyFromUnits(123455241).String())
}

func TestMoneyDecimalRoundTrip(t *testing.T) {
	d := decimal.RequireFromString("42.0001")
	m := MoneyFromDecimal(d)
	assert.True(t, d.Equal(m.Decimal()))
}
