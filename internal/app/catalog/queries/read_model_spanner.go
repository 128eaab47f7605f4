package queries

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	contracts "github.com/aromaline/inventory-service/internal/app/catalog/contracts"
	"github.com/aromaline/inventory-service/internal/app/catalog/dto"
	"github.com/aromaline/inventory-service/internal/app/catalog/queries/get_product"
	"github.com/aromaline/inventory-service/internal/app/catalog/queries/list_history"
	"github.com/aromaline/inventory-service/internal/app/catalog/queries/list_products"
)

// SpannerReadModel is an infrastructure adapter that satisfies contracts.ReadModel.
// It composes the individual query implementations.
type SpannerReadModel struct {
	client   *spanner.Client
	getQ     *get_product.SpannerGetProductQuery
	listQ    *list_products.SpannerListProductsQuery
	historyQ *list_history.SpannerListHistoryQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		client:   client,
		getQ:     get_product.NewSpannerGetProductQuery(client),
		listQ:    list_products.NewSpannerListProductsQuery(client),
		historyQ: list_history.NewSpannerListHistoryQuery(client),
	}
}

func (rm *SpannerReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return rm.getQ.GetProduct(ctx, productID)
}

func (rm *SpannerReadModel) ListProducts(ctx context.Context, filter contracts.ProductFilter) ([]*dto.ProductSummaryDTO, error) {
	return rm.listQ.ListProducts(ctx, filter)
}

func (rm *SpannerReadModel) ListStockHistory(ctx context.Context, productID string, filter contracts.HistoryFilter) ([]*dto.StockHistoryDTO, error) {
	return rm.historyQ.ListStockHistory(ctx, productID, filter)
}

// ExistsByNameAndType reports whether any product of the given variant already
// carries the name, regardless of status. Soft-deleted products still hold
// their name.
func (rm *SpannerReadModel) ExistsByNameAndType(ctx context.Context, name, productType string) (bool, error) {
	stmt := spanner.Statement{
		SQL: `SELECT product_id FROM products
		      WHERE product_type = @product_type AND name = @name
		      LIMIT 1`,
		Params: map[string]interface{}{
			"product_type": productType,
			"name":         name,
		},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
