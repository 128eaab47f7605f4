package list_products

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

func (h *Handler) Execute(ctx context.Context, filter contracts.ProductFilter) ([]*dto.ProductSummaryDTO, error) {
	return h.readModel.ListProducts(ctx, filter)
}
