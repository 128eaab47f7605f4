package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// DefaultCurrency is used when callers do not specify a currency code.
const DefaultCurrency = "ALL"

// Money represents a monetary value with precise decimal arithmetic.
// It uses big.Rat internally to avoid floating-point precision issues.
// Money is immutable - all operations return new instances.
type Money struct {
	amount   *big.Rat
	currency string
}

// NewMoney creates a Money instance from numerator and denominator.
// For example: NewMoney(1999, 100, "EUR") represents 19.99 EUR.
// The currency code is normalized to upper case; empty falls back to DefaultCurrency.
func NewMoney(numerator, denominator int64, currency string) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("money: denominator cannot be zero")
	}
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return nil, err
	}
	amount := big.NewRat(numerator, denominator)
	if amount.Sign() < 0 {
		return nil, ErrNegativePrice
	}
	return &Money{amount: amount, currency: cur}, nil
}

// NewMoneyFromDecimal creates Money from a decimal string such as "19.99".
func NewMoneyFromDecimal(decimal, currency string) (*Money, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(decimal); !ok {
		return nil, fmt.Errorf("money: invalid decimal format: %s", decimal)
	}
	if rat.Sign() < 0 {
		return nil, ErrNegativePrice
	}
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return nil, err
	}
	return &Money{amount: rat, currency: cur}, nil
}

func normalizeCurrency(currency string) (string, error) {
	cur := strings.ToUpper(strings.TrimSpace(currency))
	if cur == "" {
		return DefaultCurrency, nil
	}
	if len(cur) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range cur {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCurrency
		}
	}
	return cur, nil
}

// Add returns a new Money that is the sum of m and other.
// Both operands must share the same currency.
func (m *Money) Add(other *Money) (*Money, error) {
	if other == nil || m.currency != other.currency {
		return nil, ErrCurrencyMismatch
	}
	result := new(big.Rat).Add(m.amount, other.amount)
	return &Money{amount: result, currency: m.currency}, nil
}

// Subtract returns a new Money that is the difference of m and other.
// It fails if the currencies differ or the result would be negative.
func (m *Money) Subtract(other *Money) (*Money, error) {
	if other == nil || m.currency != other.currency {
		return nil, ErrCurrencyMismatch
	}
	result := new(big.Rat).Sub(m.amount, other.amount)
	if result.Sign() < 0 {
		return nil, ErrNegativeMoney
	}
	return &Money{amount: result, currency: m.currency}, nil
}

// IsZero returns true if the money amount is zero.
func (m *Money) IsZero() bool {
	return m.amount.Sign() == 0
}

// Equals returns true if amount and currency both match.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.currency == other.currency && m.amount.Cmp(other.amount) == 0
}

// Currency returns the normalized three-letter currency code.
func (m *Money) Currency() string {
	return m.currency
}

// Numerator returns the numerator of the internal rational representation.
// Used for database persistence.
func (m *Money) Numerator() int64 {
	return m.amount.Num().Int64()
}

// Denominator returns the denominator of the internal rational representation.
// Used for database persistence.
func (m *Money) Denominator() int64 {
	return m.amount.Denom().Int64()
}

// Rat returns a copy of the internal big.Rat.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.amount)
}

// String returns a decimal rendering with two fraction digits, e.g. "19.99 EUR".
func (m *Money) String() string {
	return m.amount.FloatString(2) + " " + m.currency
}

// FloatString returns a decimal string with the specified precision.
func (m *Money) FloatString(precision int) string {
	return m.amount.FloatString(precision)
}
