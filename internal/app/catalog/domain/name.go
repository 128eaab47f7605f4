package domain

import "strings"

const (
	minProductNameLen = 2
	maxProductNameLen = 200
)

// ProductName is the validated display name of a product.
// It is immutable once constructed; equality is value-based.
type ProductName struct {
	value string
}

// NewProductName trims the input and validates its length.
func NewProductName(raw string) (ProductName, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ProductName{}, ErrEmptyProductName
	}
	if len(trimmed) < minProductNameLen || len(trimmed) > maxProductNameLen {
		return ProductName{}, ErrProductNameLength
	}
	return ProductName{value: trimmed}, nil
}

func (n ProductName) String() string {
	return n.value
}

// Equals compares two names case-sensitively.
func (n ProductName) Equals(other ProductName) bool {
	return n.value == other.value
}

// IsZero reports whether the name was never constructed.
func (n ProductName) IsZero() bool {
	return n.value == ""
}
