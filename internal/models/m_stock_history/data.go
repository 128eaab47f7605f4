package m_stock_history

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap constructs the column map for one ledger row.
// Ledger rows are append-only; there is no update builder.
func BuildInsertMap(historyID, productID string, quantityChange, quantityAfter int64,
	changeType string, reason *string, changedBy string, createdAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColHistoryID:      historyID,
		ColProductID:      productID,
		ColQuantityChange: quantityChange,
		ColQuantityAfter:  quantityAfter,
		ColChangeType:     changeType,
		ColChangedBy:      changedBy,
		ColCreatedAt:      createdAt,
	}

	if reason != nil {
		m[ColReason] = *reason
	} else {
		m[ColReason] = nil
	}

	return m
}

// InsertMutation constructs a mutation for the stock_history table.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}
