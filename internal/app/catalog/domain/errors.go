package domain

import (
	"errors"
	"fmt"
)

// Lookup and concurrency errors
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrVersionConflict indicates the product row changed between load and commit.
	// Callers reload the aggregate and reapply the operation.
	ErrVersionConflict = errors.New("product was modified concurrently")
)

// Validation errors (invalid argument: detected before any state mutation)
var (
	// ErrEmptyProductName indicates an empty name after trimming.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrProductNameLength indicates a name outside the 2-200 character range.
	ErrProductNameLength = errors.New("product name must be between 2 and 200 characters")

	// ErrMissingPrice indicates a product factory or update call without a price.
	ErrMissingPrice = errors.New("price is required")

	// ErrNegativePrice indicates an attempt to construct Money with a negative amount.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidCurrency indicates a currency code that is not three letters.
	ErrInvalidCurrency = errors.New("currency code must be three letters")

	// ErrInvalidStockQuantity indicates a non-positive stock delta.
	ErrInvalidStockQuantity = errors.New("stock quantity must be greater than zero")

	// ErrNegativeCoverageArea indicates a negative coverage area on an aroma device.
	ErrNegativeCoverageArea = errors.New("coverage area cannot be negative")

	// ErrEmptyProductID indicates a ledger entry referencing no product.
	ErrEmptyProductID = errors.New("product id cannot be empty")

	// ErrEmptyActorID indicates a ledger entry with no acting user.
	ErrEmptyActorID = errors.New("actor id cannot be empty")
)

// Enumeration errors
var (
	ErrUnknownProductType = errors.New("unknown product type")
	ErrUnknownTaste       = errors.New("unknown taste")
	ErrUnknownColor       = errors.New("unknown color")
	ErrUnknownPlugType    = errors.New("unknown plug type")
	ErrUnknownBatterySize = errors.New("unknown battery size")
)

// Invalid-operation errors (well-formed but contextually impossible)
var (
	// ErrCurrencyMismatch indicates arithmetic between Money of different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrNegativeMoney indicates a subtraction that would produce a negative amount.
	ErrNegativeMoney = errors.New("money amount cannot become negative")

	// ErrVariantMismatch indicates a variant-specific update applied to a product
	// of a different category.
	ErrVariantMismatch = errors.New("operation does not match product variant")
)

// Business-rule sentinels. The typed errors below unwrap to these so callers
// can branch with errors.Is while still getting diagnostics.
var (
	ErrInsufficientStock       = errors.New("insufficient stock")
	ErrDuplicateProductName    = errors.New("product name already exists in this category")
	ErrProductHasStock         = errors.New("cannot delete product with remaining stock")
	ErrProductAlreadyActive    = errors.New("product is already active")
	ErrProductAlreadyInactive  = errors.New("product is already inactive")
)

// InsufficientStockError carries the requested and available quantities.
type InsufficientStockError struct {
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %d, available %d", e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// DuplicateProductNameError carries the offending name and category.
type DuplicateProductNameError struct {
	Name        string
	ProductType ProductType
}

func (e *DuplicateProductNameError) Error() string {
	return fmt.Sprintf("product %q already exists in category %s", e.Name, e.ProductType)
}

func (e *DuplicateProductNameError) Unwrap() error {
	return ErrDuplicateProductName
}

// ProductHasStockError carries the product name and its remaining quantity.
type ProductHasStockError struct {
	Name     string
	Quantity int64
}

func (e *ProductHasStockError) Error() string {
	return fmt.Sprintf("cannot delete product %q: %d units still in stock", e.Name, e.Quantity)
}

func (e *ProductHasStockError) Unwrap() error {
	return ErrProductHasStock
}
