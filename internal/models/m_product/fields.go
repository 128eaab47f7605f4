package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID        = "product_id"
	ColName             = "name"
	ColDescription      = "description"
	ColProductType      = "product_type"
	ColPriceNumerator   = "price_numerator"
	ColPriceDenominator = "price_denominator"
	ColCurrency         = "currency"
	ColPhotoURL         = "photo_url"
	ColStockQuantity    = "stock_quantity"
	ColStatus           = "status"
	ColVersion          = "version"
	ColTaste            = "taste"
	ColColor            = "color"
	ColFormat           = "format"
	ColPrograms         = "programs"
	ColPlugType         = "plug_type"
	ColCoverageSqm      = "coverage_sqm"
	ColBatteryType      = "battery_type"
	ColBatterySize      = "battery_size"
	ColBrand            = "brand"
	ColCreatedAt        = "created_at"
	ColUpdatedAt        = "updated_at"
)
