package list_history

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	contracts "github.com/aromaline/inventory-service/internal/app/catalog/contracts"
	"github.com/aromaline/inventory-service/internal/app/catalog/dto"
)

const defaultHistoryLimit = 100

// SpannerListHistoryQuery reads a product's stock ledger, newest first.
type SpannerListHistoryQuery struct {
	Client *spanner.Client
}

func NewSpannerListHistoryQuery(client *spanner.Client) *SpannerListHistoryQuery {
	return &SpannerListHistoryQuery{Client: client}
}

func (q *SpannerListHistoryQuery) ListStockHistory(ctx context.Context, productID string, filter contracts.HistoryFilter) ([]*dto.StockHistoryDTO, error) {
	baseSQL := `SELECT history_id, product_id, quantity_change, quantity_after,
	                   change_type, reason, changed_by, created_at
	            FROM stock_history
	            WHERE product_id = @product_id`
	params := map[string]interface{}{"product_id": productID}
	if filter.FromDate != nil {
		baseSQL += " AND created_at >= @from_date"
		params["from_date"] = *filter.FromDate
	}
	if filter.ToDate != nil {
		baseSQL += " AND created_at <= @to_date"
		params["to_date"] = *filter.ToDate
	}
	baseSQL += " ORDER BY created_at DESC LIMIT @limit"

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	params["limit"] = limit

	stmt := spanner.Statement{SQL: baseSQL, Params: params}
	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*dto.StockHistoryDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		var (
			historyID      string
			prodID         string
			quantityChange int64
			quantityAfter  int64
			changeType     string
			reason         spanner.NullString
			changedBy      string
			createdAt      time.Time
		)
		if err := row.Columns(&historyID, &prodID, &quantityChange, &quantityAfter, &changeType, &reason, &changedBy, &createdAt); err != nil {
			return nil, err
		}

		entry := &dto.StockHistoryDTO{
			HistoryID:      historyID,
			ProductID:      prodID,
			QuantityChange: quantityChange,
			QuantityAfter:  quantityAfter,
			ChangeType:     changeType,
			ChangedBy:      changedBy,
			CreatedAt:      createdAt.UTC().Format(time.RFC3339),
		}
		if reason.Valid {
			r := reason.StringVal
			entry.Reason = &r
		}

		out = append(out, entry)
	}
}
