package get_product

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/aromaline/inventory-service/internal/app/catalog/domain"
	"github.com/aromaline/inventory-service/internal/app/catalog/dto"
)

// SpannerGetProductQuery is a concrete query implementation that reads from Spanner directly.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

// GetProduct fetches a single product row with all variant columns.
// Inactive products are returned as well; callers filter on Status.
func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT product_id, name, description, product_type,
		             price_numerator, price_denominator, currency,
		             photo_url, stock_quantity, status, version,
		             taste, color, format, programs, plug_type, coverage_sqm,
		             battery_type, battery_size, brand,
		             created_at, updated_at
		      FROM products
		      WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	var (
		id                   string
		name                 string
		description          spanner.NullString
		productType          string
		priceNum             int64
		priceDen             int64
		currency             string
		photoURL             spanner.NullString
		stockQuantity        int64
		status               string
		version              int64
		taste                spanner.NullString
		color                spanner.NullString
		format               spanner.NullString
		programs             spanner.NullString
		plugType             spanner.NullString
		coverage             spanner.NullNumeric
		batteryType          spanner.NullString
		batterySize          spanner.NullString
		brand                spanner.NullString
		createdAt, updatedAt time.Time
	)

	if err := row.Columns(&id, &name, &description, &productType, &priceNum, &priceDen, &currency,
		&photoURL, &stockQuantity, &status, &version,
		&taste, &color, &format, &programs, &plugType, &coverage,
		&batteryType, &batterySize, &brand, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	dtoOut := &dto.ProductDTO{
		ProductID:     id,
		Name:          name,
		ProductType:   productType,
		PriceNum:      priceNum,
		PriceDen:      priceDen,
		Currency:      currency,
		StockQuantity: stockQuantity,
		Status:        status,
		Version:       version,
	}

	dtoOut.Description = nullStringPtr(description)
	dtoOut.PhotoURL = nullStringPtr(photoURL)
	dtoOut.Taste = nullStringPtr(taste)
	dtoOut.Color = nullStringPtr(color)
	dtoOut.Format = nullStringPtr(format)
	dtoOut.Programs = nullStringPtr(programs)
	dtoOut.PlugType = nullStringPtr(plugType)
	dtoOut.BatteryType = nullStringPtr(batteryType)
	dtoOut.BatterySize = nullStringPtr(batterySize)
	dtoOut.Brand = nullStringPtr(brand)

	if coverage.Valid {
		cov := coverage.Numeric.FloatString(9)
		dtoOut.CoverageSqm = &cov
	}

	c := createdAt.UTC().Format(time.RFC3339)
	dtoOut.CreatedAt = &c
	u := updatedAt.UTC().Format(time.RFC3339)
	dtoOut.UpdatedAt = &u

	return dtoOut, nil
}

func nullStringPtr(v spanner.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.StringVal
	return &s
}
