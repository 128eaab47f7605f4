package m_stock_history

// Field constants for the stock_history table.
const (
	TableName = "stock_history"

	ColHistoryID      = "history_id"
	ColProductID      = "product_id"
	ColQuantityChange = "quantity_change"
	ColQuantityAfter  = "quantity_after"
	ColChangeType     = "change_type"
	ColReason         = "reason"
	ColChangedBy      = "changed_by"
	ColCreatedAt      = "created_at"
)
