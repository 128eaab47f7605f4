package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/aromaline/inventory-service/internal/app/catalog/domain"
	"github.com/aromaline/inventory-service/internal/models/m_stock_history"
)

// StockHistoryRepo is the Spanner implementation of the append-only ledger
// repository. It returns *spanner.Mutation but never applies it.
type StockHistoryRepo struct{}

func NewStockHistoryRepo() *StockHistoryRepo {
	return &StockHistoryRepo{}
}

func (r *StockHistoryRepo) InsertMut(h *domain.StockHistory) *spanner.Mutation {
	if h == nil {
		return nil
	}

	var reason *string
	if s := h.Reason(); s != "" {
		rs := s
		reason = &rs
	}

	values := m_stock_history.BuildInsertMap(
		h.ID(),
		h.ProductID(),
		h.QuantityChange(),
		h.QuantityAfter(),
		string(h.ChangeType()),
		reason,
		h.ChangedBy(),
		h.CreatedAt().UTC(),
	)
	return m_stock_history.InsertMutation(values)
}
