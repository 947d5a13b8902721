package valueobjects

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney_ValidInput(t *testing.T) {
	m, err := NewMoneyFromFloat(15.99, "usd")

	require.NoError(t, err)
	assert.Equal(t, "USD", m.Currency(), "currency should be uppercased")
	assert.InDelta(t, 15.99, m.AmountFloat(), 0.001)
	assert.Equal(t, "15.99 USD", m.String())
}

func TestNewMoney_ZeroAmount(t *testing.T) {
	m, err := NewMoneyFromFloat(0, "USD")

	require.NoError(t, err)
	assert.True(t, m.IsZero())
}

func TestNewMoney_NegativeAmount(t *testing.T) {
	_, err := NewMoneyFromFloat(-1.50, "USD")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestNewMoney_InvalidCurrency(t *testing.T) {
	for _, currency := range []string{"", "US", "DOLLARS"} {
		_, err := NewMoneyFromFloat(10, currency)
		assert.ErrorIs(t, err, ErrInvalidCurrency, "currency %q", currency)
	}
}

func TestMoney_Add_SameCurrency(t *testing.T) {
	a, err := NewMoneyFromFloat(10.50, "USD")
	require.NoError(t, err)
	b, err := NewMoneyFromFloat(5.25, "USD")
	require.NoError(t, err)

	sum, err := a.Add(b)

	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.NewFromFloat(15.75)))
	assert.Equal(t, "USD", sum.Currency())
}

func TestMoney_Add_DifferentCurrencies(t *testing.T) {
	a, err := NewMoneyFromFloat(10, "USD")
	require.NoError(t, err)
	b, err := NewMoneyFromFloat(10, "EUR")
	require.NoError(t, err)

	_, err = a.Add(b)

	assert.ErrorIs(t, err, ErrIncompatibleCurrency)
}

func TestMoney_AddIsImmutable(t *testing.T) {
	a, err := NewMoneyFromFloat(10, "USD")
	require.NoError(t, err)
	b, err := NewMoneyFromFloat(5, "USD")
	require.NoError(t, err)

	_, err = a.Add(b)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, a.AmountFloat(), 0.001, "operand must not change")
}

func TestMoney_Scale(t *testing.T) {
	m, err := NewMoneyFromFloat(120, "USD")
	require.NoError(t, err)

	monthly := m.Scale(1.0 / 12.0)

	assert.InDelta(t, 10.0, monthly.AmountFloat(), 0.001)
	assert.Equal(t, "USD", monthly.Currency())
}

func TestMoney_Equals(t *testing.T) {
	a, err := NewMoneyFromFloat(9.99, "USD")
	require.NoError(t, err)
	b, err := NewMoneyFromFloat(9.99, "USD")
	require.NoError(t, err)
	c, err := NewMoneyFromFloat(9.99, "EUR")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestZeroMoney(t *testing.T) {
	m, err := ZeroMoney("EUR")

	require.NoError(t, err)
	assert.True(t, m.IsZero())
	assert.Equal(t, "EUR", m.Currency())
}
