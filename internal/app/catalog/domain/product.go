package domain

import "time"

// Field constants for change tracking
const (
	FieldName          = "name"
	FieldDescription   = "description"
	FieldPrice         = "price"
	FieldPhotoURL      = "photo_url"
	FieldStockQuantity = "stock_quantity"
	FieldStatus        = "status"
	FieldDetails       = "details"
)

// DefaultLowStockThreshold is the stock level at or below which a product is
// considered low on stock.
const DefaultLowStockThreshold = 10

// ProductStatus represents the lifecycle state of a product.
// Inactive is the terminal "deleted" state; rows are never hard-deleted.
type ProductStatus string

const (
	// ProductStatusActive indicates a product that is part of the live catalog.
	ProductStatusActive ProductStatus = "active"

	// ProductStatusInactive indicates a soft-deleted product.
	ProductStatusInactive ProductStatus = "inactive"
)

// Product is the aggregate root for the inventory catalog domain.
// It encapsulates the stock-quantity invariant and the soft-delete lifecycle.
type Product struct {
	id            string
	name          ProductName
	description   string
	productType   ProductType
	price         *Money
	photoURL      string
	stockQuantity int64
	status        ProductStatus
	version       int64
	createdAt     time.Time
	updatedAt     time.Time
	details       VariantDetails
	changes       *ChangeTracker
}

func newProduct(id string, name ProductName, description string, price *Money, photoURL string, details VariantDetails, now time.Time) (*Product, error) {
	if name.IsZero() {
		return nil, ErrEmptyProductName
	}
	if price == nil {
		return nil, ErrMissingPrice
	}
	if err := details.validate(); err != nil {
		return nil, err
	}

	return &Product{
		id:            id,
		name:          name,
		description:   description,
		productType:   details.ProductType(),
		price:         price,
		photoURL:      photoURL,
		stockQuantity: 0,
		status:        ProductStatusActive,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		details:       details,
		changes:       NewChangeTracker(),
	}, nil
}

// NewAromaBombelProduct creates an aroma bombel with zero stock and active status.
func NewAromaBombelProduct(id string, name ProductName, description string, price *Money, photoURL string, details AromaBombelDetails, now time.Time) (*Product, error) {
	return newProduct(id, name, description, price, photoURL, details, now)
}

// NewAromaBottleProduct creates an aroma bottle with zero stock and active status.
func NewAromaBottleProduct(id string, name ProductName, description string, price *Money, photoURL string, details AromaBottleDetails, now time.Time) (*Product, error) {
	return newProduct(id, name, description, price, photoURL, details, now)
}

// NewAromaDeviceProduct creates an aroma device. The coverage area, if present,
// must be non-negative.
func NewAromaDeviceProduct(id string, name ProductName, description string, price *Money, photoURL string, details AromaDeviceDetails, now time.Time) (*Product, error) {
	return newProduct(id, name, description, price, photoURL, details, now)
}

// NewSanitizingDeviceProduct creates a sanitizing device.
func NewSanitizingDeviceProduct(id string, name ProductName, description string, price *Money, photoURL string, details SanitizingDeviceDetails, now time.Time) (*Product, error) {
	return newProduct(id, name, description, price, photoURL, details, now)
}

// NewBatteryProduct creates a battery product.
func NewBatteryProduct(id string, name ProductName, description string, price *Money, photoURL string, details BatteryDetails, now time.Time) (*Product, error) {
	return newProduct(id, name, description, price, photoURL, details, now)
}

// ReconstructProduct reconstructs a Product from persisted state.
// Used by the application layer when loading from the database.
func ReconstructProduct(
	id string,
	name ProductName,
	description string,
	price *Money,
	photoURL string,
	stockQuantity int64,
	status ProductStatus,
	version int64,
	createdAt, updatedAt time.Time,
	details VariantDetails,
) *Product {
	return &Product{
		id:            id,
		name:          name,
		description:   description,
		productType:   details.ProductType(),
		price:         price,
		photoURL:      photoURL,
		stockQuantity: stockQuantity,
		status:        status,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		details:       details,
		changes:       NewChangeTracker(),
	}
}

// Getters

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Name() ProductName {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Type() ProductType {
	return p.productType
}

func (p *Product) Price() *Money {
	return p.price
}

func (p *Product) PhotoURL() string {
	return p.photoURL
}

func (p *Product) StockQuantity() int64 {
	return p.stockQuantity
}

func (p *Product) Status() ProductStatus {
	return p.status
}

// Version is the optimistic-concurrency counter of the persisted row.
func (p *Product) Version() int64 {
	return p.version
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Product) Details() VariantDetails {
	return p.details
}

func (p *Product) Changes() *ChangeTracker {
	return p.changes
}

// Business Methods

// UpdateBasicInfo replaces the four shared fields. Stock and variant-specific
// attributes are untouched. Validation happens before any assignment, so a
// failed call leaves the aggregate unchanged. UpdatedAt moves only when at
// least one field actually changed; a call that restates the current values
// is a no-op and produces no update mutation.
func (p *Product) UpdateBasicInfo(name ProductName, description string, price *Money, photoURL string, now time.Time) error {
	if name.IsZero() {
		return ErrEmptyProductName
	}
	if price == nil {
		return ErrMissingPrice
	}

	if !p.name.Equals(name) {
		p.name = name
		p.changes.MarkDirty(FieldName)
	}
	if p.description != description {
		p.description = description
		p.changes.MarkDirty(FieldDescription)
	}
	if !price.Equals(p.price) {
		p.price = price
		p.changes.MarkDirty(FieldPrice)
	}
	if p.photoURL != photoURL {
		p.photoURL = photoURL
		p.changes.MarkDirty(FieldPhotoURL)
	}

	if p.changes.HasChanges() {
		p.updatedAt = now
	}
	return nil
}

// AddStock increments the stock quantity and returns the new level.
// The caller records a matching ledger entry in the same commit.
func (p *Product) AddStock(quantity int64, now time.Time) (int64, error) {
	if quantity <= 0 {
		return 0, ErrInvalidStockQuantity
	}

	p.stockQuantity += quantity
	p.changes.MarkDirty(FieldStockQuantity)
	p.updatedAt = now
	return p.stockQuantity, nil
}

// RemoveStock decrements the stock quantity and returns the new level.
// The quantity never goes negative; an oversized removal fails with
// InsufficientStockError and leaves the aggregate untouched.
func (p *Product) RemoveStock(quantity int64, now time.Time) (int64, error) {
	if quantity <= 0 {
		return 0, ErrInvalidStockQuantity
	}
	if quantity > p.stockQuantity {
		return 0, &InsufficientStockError{Requested: quantity, Available: p.stockQuantity}
	}

	p.stockQuantity -= quantity
	p.changes.MarkDirty(FieldStockQuantity)
	p.updatedAt = now
	return p.stockQuantity, nil
}

// IsLowStock reports whether the stock level is at or below the threshold.
// A non-positive threshold falls back to DefaultLowStockThreshold.
func (p *Product) IsLowStock(threshold int64) bool {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return p.stockQuantity <= threshold
}

// ValidateCanBeDeleted is the authoritative gate for deletion. Any upstream
// pre-check is advisory only: it can race with concurrent stock additions, so
// this must be evaluated against the freshly loaded quantity in the same
// transaction as the deactivation write.
func (p *Product) ValidateCanBeDeleted() error {
	if p.stockQuantity > 0 {
		return &ProductHasStockError{Name: p.name.String(), Quantity: p.stockQuantity}
	}
	return nil
}

// Deactivate soft-deletes the product. The row and its full stock history
// remain queryable.
func (p *Product) Deactivate(now time.Time) error {
	if p.status == ProductStatusInactive {
		return ErrProductAlreadyInactive
	}

	p.status = ProductStatusInactive
	p.changes.MarkDirty(FieldStatus)
	p.updatedAt = now
	return nil
}

// Activate restores a soft-deleted product to the live catalog.
func (p *Product) Activate(now time.Time) error {
	if p.status == ProductStatusActive {
		return ErrProductAlreadyActive
	}

	p.status = ProductStatusActive
	p.changes.MarkDirty(FieldStatus)
	p.updatedAt = now
	return nil
}

// IsActive returns true if the product has not been soft-deleted.
func (p *Product) IsActive() bool {
	return p.status == ProductStatusActive
}

// Variant-specific updates. Each replaces only its category's attributes and
// fails with ErrVariantMismatch when applied to a product of another category.

func (p *Product) UpdateAromaBombelDetails(details AromaBombelDetails, now time.Time) error {
	return p.updateDetails(details, now)
}

func (p *Product) UpdateAromaBottleDetails(details AromaBottleDetails, now time.Time) error {
	return p.updateDetails(details, now)
}

// UpdateAromaDeviceDetails re-validates the coverage area; the same check runs
// at creation time.
func (p *Product) UpdateAromaDeviceDetails(details AromaDeviceDetails, now time.Time) error {
	return p.updateDetails(details, now)
}

func (p *Product) UpdateSanitizingDeviceDetails(details SanitizingDeviceDetails, now time.Time) error {
	return p.updateDetails(details, now)
}

func (p *Product) UpdateBatteryDetails(details BatteryDetails, now time.Time) error {
	return p.updateDetails(details, now)
}

func (p *Product) updateDetails(details VariantDetails, now time.Time) error {
	if details.ProductType() != p.productType {
		return ErrVariantMismatch
	}
	if err := details.validate(); err != nil {
		return err
	}

	p.details = details
	p.changes.MarkDirty(FieldDetails)
	p.updatedAt = now
	return nil
}
