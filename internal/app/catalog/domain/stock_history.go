package domain

import "time"

// StockChangeType tags a ledger entry as an addition or a removal.
type StockChangeType string

const (
	StockChangeAdded   StockChangeType = "Added"
	StockChangeRemoved StockChangeType = "Removed"
)

// StockHistory is an immutable audit record of one stock change.
// Entries are append-only and deliberately carry no foreign key to the
// product, so history survives even if the product row is later purged.
type StockHistory struct {
	id             string
	productID      string
	quantityChange int64
	quantityAfter  int64
	changeType     StockChangeType
	reason         string
	changedBy      string
	createdAt      time.Time
}

// NewStockAddition records a positive delta. quantityAfter must be the
// product's post-mutation stock level; the entry commits in the same unit of
// work as the product mutation it describes.
func NewStockAddition(id, productID string, quantityAdded, quantityAfter int64, reason, actorID string, now time.Time) (*StockHistory, error) {
	if err := validateLedgerInput(productID, quantityAdded, actorID); err != nil {
		return nil, err
	}
	return &StockHistory{
		id:             id,
		productID:      productID,
		quantityChange: quantityAdded,
		quantityAfter:  quantityAfter,
		changeType:     StockChangeAdded,
		reason:         reason,
		changedBy:      actorID,
		createdAt:      now,
	}, nil
}

// NewStockRemoval records a removal; the delta is stored negative.
func NewStockRemoval(id, productID string, quantityRemoved, quantityAfter int64, reason, actorID string, now time.Time) (*StockHistory, error) {
	if err := validateLedgerInput(productID, quantityRemoved, actorID); err != nil {
		return nil, err
	}
	return &StockHistory{
		id:             id,
		productID:      productID,
		quantityChange: -quantityRemoved,
		quantityAfter:  quantityAfter,
		changeType:     StockChangeRemoved,
		reason:         reason,
		changedBy:      actorID,
		createdAt:      now,
	}, nil
}

func validateLedgerInput(productID string, quantity int64, actorID string) error {
	if productID == "" {
		return ErrEmptyProductID
	}
	if actorID == "" {
		return ErrEmptyActorID
	}
	if quantity <= 0 {
		return ErrInvalidStockQuantity
	}
	return nil
}

func (h *StockHistory) ID() string {
	return h.id
}

func (h *StockHistory) ProductID() string {
	return h.productID
}

// QuantityChange is the signed delta: positive for additions, negative for removals.
func (h *StockHistory) QuantityChange() int64 {
	return h.quantityChange
}

func (h *StockHistory) QuantityAfter() int64 {
	return h.quantityAfter
}

func (h *StockHistory) ChangeType() StockChangeType {
	return h.changeType
}

func (h *StockHistory) Reason() string {
	return h.reason
}

func (h *StockHistory) ChangedBy() string {
	return h.changedBy
}

func (h *StockHistory) CreatedAt() time.Time {
	return h.createdAt
}
