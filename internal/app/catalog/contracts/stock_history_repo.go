package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/aromaline/inventory-service/internal/app/catalog/domain"
)

// StockHistoryRepo is the write-side repository interface for the stock ledger.
// Ledger rows are append-only; the only mutation is an insert, committed in
// the same plan as the product mutation it describes.
type StockHistoryRepo interface {
	InsertMut(h *domain.StockHistory) *spanner.Mutation
}
