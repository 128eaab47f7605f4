package list_history

import (
	"context"

	contracts "github.com/aromaline/inventory-service/internal/app/catalog/contracts"
	"github.com/aromaline/inventory-service/internal/app/catalog/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, productID string, filter contracts.HistoryFilter) ([]*dto.StockHistoryDTO, error) {
	return h.readModel.ListStockHistory(ctx, productID, filter)
}
