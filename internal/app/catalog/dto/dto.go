package dto

// ProductDTO contains full product fields returned by read queries.
// Timestamps and optional fields use *string (RFC3339) to mirror how they come
// from Spanner. Use the utils helpers to parse them into time.Time.
type ProductDTO struct {
	ProductID     string
	Name          string
	Description   *string
	ProductType   string
	PriceNum      int64
	PriceDen      int64
	Currency      string
	PhotoURL      *string
	StockQuantity int64
	Status        string
	Version       int64

	Taste       *string
	Color       *string
	Format      *string
	Programs    *string
	PlugType    *string
	CoverageSqm *string
	BatteryType *string
	BatterySize *string
	Brand       *string

	CreatedAt *string
	UpdatedAt *string
}

// ProductSummaryDTO is a compact DTO for list queries.
type ProductSummaryDTO struct {
	ProductID     string
	Name          string
	ProductType   string
	PriceNum      int64
	PriceDen      int64
	Currency      string
	StockQuantity int64
	Status        string
}

// StockHistoryDTO is one ledger row as returned by read queries.
type StockHistoryDTO struct {
	HistoryID      string
	ProductID      string
	QuantityChange int64
	QuantityAfter  int64
	ChangeType     string
	Reason         *string
	ChangedBy      string
	CreatedAt      string
}
