package m_product

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a product using a map of values.
// Expected keys are the column names declared in fields.go.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation for a product.
// The values map should NOT include the product_id key; the primary key column
// is placed first.
func UpdateMutation(productID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColProductID}
	vals := []interface{}{productID}

	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	return spanner.Update(TableName, cols, vals)
}

// BuildInsertMap prepares the canonical shared fields for insertion.
// Variant-specific columns default to NULL; the caller overwrites the ones its
// variant carries.
func BuildInsertMap(productID, name string, description *string, productType string,
	priceNum, priceDen int64, currency string, photoURL *string,
	stockQuantity int64, status string, version int64, createdAt, updatedAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColProductID:        productID,
		ColName:             name,
		ColProductType:      productType,
		ColPriceNumerator:   priceNum,
		ColPriceDenominator: priceDen,
		ColCurrency:         currency,
		ColStockQuantity:    stockQuantity,
		ColStatus:           status,
		ColVersion:          version,
		ColCreatedAt:        createdAt,
		ColUpdatedAt:        updatedAt,
		ColTaste:            nil,
		ColColor:            nil,
		ColFormat:           nil,
		ColPrograms:         nil,
		ColPlugType:         nil,
		ColCoverageSqm:      (*big.Rat)(nil),
		ColBatteryType:      nil,
		ColBatterySize:      nil,
		ColBrand:            nil,
	}

	if description != nil {
		m[ColDescription] = *description
	} else {
		m[ColDescription] = nil
	}

	if photoURL != nil {
		m[ColPhotoURL] = *photoURL
	} else {
		m[ColPhotoURL] = nil
	}

	return m
}
