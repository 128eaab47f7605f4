package list_products

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	contracts "github.com/aromaline/inventory-service/internal/app/catalog/contracts"
	"github.com/aromaline/inventory-service/internal/app/catalog/dto"
)

const defaultListLimit = 50

// SpannerListProductsQuery lists products with optional type and status filters.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

func (q *SpannerListProductsQuery) ListProducts(ctx context.Context, filter contracts.ProductFilter) ([]*dto.ProductSummaryDTO, error) {
	baseSQL := `SELECT product_id, name, product_type,
	                   price_numerator, price_denominator, currency,
	                   stock_quantity, status
	            FROM products
	            WHERE 1=1`
	params := map[string]interface{}{}
	if filter.ProductType != nil {
		baseSQL += " AND product_type = @product_type"
		params["product_type"] = *filter.ProductType
	}
	if filter.Status != nil {
		baseSQL += " AND status = @status"
		params["status"] = *filter.Status
	}
	baseSQL += " ORDER BY name ASC LIMIT @limit OFFSET @offset"

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	params["limit"] = limit
	params["offset"] = filter.Offset

	stmt := spanner.Statement{SQL: baseSQL, Params: params}
	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*dto.ProductSummaryDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var (
			id            string
			name          string
			productType   string
			priceNum      int64
			priceDen      int64
			currency      string
			stockQuantity int64
			status        string
		)
		if err := row.Columns(&id, &name, &productType, &priceNum, &priceDen, &currency, &stockQuantity, &status); err != nil {
			return nil, err
		}

		out = append(out, &dto.ProductSummaryDTO{
			ProductID:     id,
			Name:          name,
			ProductType:   productType,
			PriceNum:      priceNum,
			PriceDen:      priceDen,
			Currency:      currency,
			StockQuantity: stockQuantity,
			Status:        status,
		})
	}
}
