package http

import (
	"math/big"
	"net/http"

	"github.com/aromaline/inventory-service/internal/app/catalog/dto"
	shared "github.com/aromaline/inventory-service/internal/app/catalog/usecases/shared"
)

// variantPayload carries category-specific attributes. Only the fields
// matching the product's type are consulted; the rest are ignored.
type variantPayload struct {
	Taste       *string `json:"taste,omitempty"`
	Color       *string `json:"color,omitempty"`
	Format      *string `json:"format,omitempty"`
	Programs    *string `json:"programs,omitempty"`
	PlugType    *string `json:"plug_type,omitempty"`
	CoverageSqm *string `json:"coverage_sqm,omitempty"`
	BatteryType *string `json:"battery_type,omitempty"`
	BatterySize *string `json:"battery_size,omitempty"`
	Brand       *string `json:"brand,omitempty"`
}

func (v variantPayload) toInput() shared.VariantInput {
	return shared.VariantInput{
		Taste:       v.Taste,
		Color:       v.Color,
		Format:      v.Format,
		Programs:    v.Programs,
		PlugType:    v.PlugType,
		CoverageSqm: v.CoverageSqm,
		BatteryType: v.BatteryType,
		BatterySize: v.BatterySize,
		Brand:       v.Brand,
	}
}

type createProductRequest struct {
	ProductType string         `json:"product_type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       string         `json:"price"`
	Currency    string         `json:"currency"`
	PhotoURL    string         `json:"photo_url"`
	Variant     variantPayload `json:"variant"`
}

func (req *createProductRequest) Bind(r *http.Request) error {
	if req.ProductType == "" || req.Name == "" || req.Price == "" {
		return errInvalidRequest
	}
	return nil
}

type updateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	PhotoURL    string `json:"photo_url"`
}

func (req *updateProductRequest) Bind(r *http.Request) error {
	if req.Name == "" || req.Price == "" {
		return errInvalidRequest
	}
	return nil
}

type updateVariantRequest struct {
	variantPayload
}

func (req *updateVariantRequest) Bind(r *http.Request) error {
	return nil
}

type stockRequest struct {
	Quantity int64  `json:"quantity"`
	Reason   string `json:"reason"`
}

func (req *stockRequest) Bind(r *http.Request) error {
	if req.Quantity == 0 {
		return errInvalidRequest
	}
	return nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *loginRequest) Bind(r *http.Request) error {
	if req.Username == "" || req.Password == "" {
		return errInvalidRequest
	}
	return nil
}

// Responses

type createProductResponse struct {
	ProductID string `json:"product_id"`
}

type stockResponse struct {
	ProductID   string `json:"product_id"`
	NewQuantity int64  `json:"new_quantity"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type productResponse struct {
	ProductID     string         `json:"product_id"`
	Name          string         `json:"name"`
	Description   *string        `json:"description,omitempty"`
	ProductType   string         `json:"product_type"`
	Price         string         `json:"price"`
	Currency      string         `json:"currency"`
	PhotoURL      *string        `json:"photo_url,omitempty"`
	StockQuantity int64          `json:"stock_quantity"`
	LowStock      bool           `json:"low_stock"`
	Status        string         `json:"status"`
	Variant       variantPayload `json:"variant"`
	CreatedAt     *string        `json:"created_at,omitempty"`
	UpdatedAt     *string        `json:"updated_at,omitempty"`
}

func newProductResponse(p *dto.ProductDTO, lowStockThreshold int64) *productResponse {
	return &productResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Description:   p.Description,
		ProductType:   p.ProductType,
		Price:         formatPrice(p.PriceNum, p.PriceDen),
		Currency:      p.Currency,
		PhotoURL:      p.PhotoURL,
		StockQuantity: p.StockQuantity,
		LowStock:      p.StockQuantity <= lowStockThreshold,
		Status:        p.Status,
		Variant: variantPayload{
			Taste:       p.Taste,
			Color:       p.Color,
			Format:      p.Format,
			Programs:    p.Programs,
			PlugType:    p.PlugType,
			CoverageSqm: p.CoverageSqm,
			BatteryType: p.BatteryType,
			BatterySize: p.BatterySize,
			Brand:       p.Brand,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type productSummaryResponse struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	ProductType   string `json:"product_type"`
	Price         string `json:"price"`
	Currency      string `json:"currency"`
	StockQuantity int64  `json:"stock_quantity"`
	LowStock      bool   `json:"low_stock"`
	Status        string `json:"status"`
}

func newProductSummaryResponse(p *dto.ProductSummaryDTO, lowStockThreshold int64) *productSummaryResponse {
	return &productSummaryResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		ProductType:   p.ProductType,
		Price:         formatPrice(p.PriceNum, p.PriceDen),
		Currency:      p.Currency,
		StockQuantity: p.StockQuantity,
		LowStock:      p.StockQuantity <= lowStockThreshold,
		Status:        p.Status,
	}
}

type historyEntryResponse struct {
	HistoryID      string  `json:"history_id"`
	ProductID      string  `json:"product_id"`
	QuantityChange int64   `json:"quantity_change"`
	QuantityAfter  int64   `json:"quantity_after"`
	ChangeType     string  `json:"change_type"`
	Reason         *string `json:"reason,omitempty"`
	ChangedBy      string  `json:"changed_by"`
	CreatedAt      string  `json:"created_at"`
}

func newHistoryEntryResponse(e *dto.StockHistoryDTO) *historyEntryResponse {
	return &historyEntryResponse{
		HistoryID:      e.HistoryID,
		ProductID:      e.ProductID,
		QuantityChange: e.QuantityChange,
		QuantityAfter:  e.QuantityAfter,
		ChangeType:     e.ChangeType,
		Reason:         e.Reason,
		ChangedBy:      e.ChangedBy,
		CreatedAt:      e.CreatedAt,
	}
}

func formatPrice(num, den int64) string {
	if den == 0 {
		return "0"
	}
	return new(big.Rat).SetFrac(big.NewInt(num), big.NewInt(den)).FloatString(2)
}
