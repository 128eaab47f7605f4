package contracts

import (
	"context"
	"time"

	"github.com/aromaline/inventory-service/internal/app/catalog/dto"
)

// ProductFilter narrows list queries. Nil fields match everything.
type ProductFilter struct {
	ProductType *string
	Status      *string
	Limit       int
	Offset      int
}

// HistoryFilter narrows ledger queries for one product.
type HistoryFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Limit    int
}

type ReadModel interface {
	GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]*dto.ProductSummaryDTO, error)

	// ExistsByNameAndType reports whether any product of the given variant,
	// active or inactive, already carries the name. Used as the duplicate-name
	// pre-check before constructing a new product.
	ExistsByNameAndType(ctx context.Context, name, productType string) (bool, error)

	ListStockHistory(ctx context.Context, productID string, filter HistoryFilter) ([]*dto.StockHistoryDTO, error)
}
