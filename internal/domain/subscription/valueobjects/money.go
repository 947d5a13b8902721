package valueobjects

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when a monetary amount is negative.
	ErrInvalidAmount = errors.New("amount cannot be negative")
	// ErrInvalidCurrency is returned when a currency code is not a 3-letter code.
	ErrInvalidCurrency = errors.New("currency must be a 3-letter code")
	// ErrIncompatibleCurrency is returned when combining amounts of different currencies.
	ErrIncompatibleCurrency = errors.New("cannot combine different currencies")
)

// Money is an immutable monetary value. Any change produces a new value,
// never a mutation.
type Money struct {
	amount   decimal.Decimal
	currency string
}

func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	if len(currency) != 3 {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
	return Money{
		amount:   amount,
		currency: strings.ToUpper(currency),
	}, nil
}

// NewMoneyFromFloat builds a Money from a float amount, e.g. user input of 15.99.
func NewMoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// AmountFloat returns the amount as a float64 for display purposes.
func (m Money) AmountFloat() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two amounts. Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrIncompatibleCurrency, m.currency, other.currency)
	}
	return Money{
		amount:   m.amount.Add(other.amount),
		currency: m.currency,
	}, nil
}

// Scale multiplies the amount by a factor, preserving the currency.
func (m Money) Scale(factor float64) Money {
	return Money{
		amount:   m.amount.Mul(decimal.NewFromFloat(factor)),
		currency: m.currency,
	}
}

// Zero returns a zero amount in this Money's currency.
func (m Money) Zero() Money {
	return Money{amount: decimal.Zero, currency: m.currency}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}
