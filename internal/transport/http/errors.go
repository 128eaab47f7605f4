package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/aromaline/inventory-service/internal/app/catalog/domain"
	"github.com/aromaline/inventory-service/internal/security"
)

// ErrResponse is the JSON error envelope.
type ErrResponse struct {
	HTTPStatusCode int `json:"-"`

	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

var errInvalidRequest = errors.New("invalid request body")

// newErrResponse maps domain and security errors onto HTTP statuses. Typed
// business errors carry their diagnostics into the details object.
func newErrResponse(err error) *ErrResponse {
	var insufficientStock *domain.InsufficientStockError
	if errors.As(err, &insufficientStock) {
		return &ErrResponse{
			HTTPStatusCode: http.StatusConflict,
			Code:           "insufficient_stock",
			Message:        insufficientStock.Error(),
			Details: map[string]interface{}{
				"requested": insufficientStock.Requested,
				"available": insufficientStock.Available,
			},
		}
	}

	var duplicateName *domain.DuplicateProductNameError
	if errors.As(err, &duplicateName) {
		return &ErrResponse{
			HTTPStatusCode: http.StatusConflict,
			Code:           "duplicate_product_name",
			Message:        duplicateName.Error(),
			Details: map[string]interface{}{
				"name":         duplicateName.Name,
				"product_type": string(duplicateName.ProductType),
			},
		}
	}

	var hasStock *domain.ProductHasStockError
	if errors.As(err, &hasStock) {
		return &ErrResponse{
			HTTPStatusCode: http.StatusConflict,
			Code:           "product_has_stock",
			Message:        hasStock.Error(),
			Details: map[string]interface{}{
				"name":     hasStock.Name,
				"quantity": hasStock.Quantity,
			},
		}
	}

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return simpleErr(http.StatusNotFound, "product_not_found", err)

	case errors.Is(err, domain.ErrVersionConflict):
		return simpleErr(http.StatusConflict, "version_conflict", err)
	case errors.Is(err, domain.ErrDuplicateProductName):
		return simpleErr(http.StatusConflict, "duplicate_product_name", err)
	case errors.Is(err, domain.ErrInsufficientStock):
		return simpleErr(http.StatusConflict, "insufficient_stock", err)
	case errors.Is(err, domain.ErrProductHasStock):
		return simpleErr(http.StatusConflict, "product_has_stock", err)
	case errors.Is(err, domain.ErrProductAlreadyActive):
		return simpleErr(http.StatusConflict, "product_already_active", err)
	case errors.Is(err, domain.ErrProductAlreadyInactive):
		return simpleErr(http.StatusConflict, "product_already_inactive", err)

	case errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		return simpleErr(http.StatusUnauthorized, "unauthorized", err)

	case errors.Is(err, errInvalidRequest),
		errors.Is(err, domain.ErrEmptyProductName),
		errors.Is(err, domain.ErrProductNameLength),
		errors.Is(err, domain.ErrMissingPrice),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrInvalidStockQuantity),
		errors.Is(err, domain.ErrNegativeCoverageArea),
		errors.Is(err, domain.ErrEmptyProductID),
		errors.Is(err, domain.ErrEmptyActorID),
		errors.Is(err, domain.ErrUnknownProductType),
		errors.Is(err, domain.ErrUnknownTaste),
		errors.Is(err, domain.ErrUnknownColor),
		errors.Is(err, domain.ErrUnknownPlugType),
		errors.Is(err, domain.ErrUnknownBatterySize),
		errors.Is(err, domain.ErrVariantMismatch),
		errors.Is(err, domain.ErrCurrencyMismatch),
		errors.Is(err, domain.ErrNegativeMoney):
		return simpleErr(http.StatusBadRequest, "invalid_argument", err)
	}

	return &ErrResponse{
		HTTPStatusCode: http.StatusInternalServerError,
		Code:           "internal",
		Message:        "internal server error",
	}
}

func simpleErr(status int, code string, err error) *ErrResponse {
	return &ErrResponse{
		HTTPStatusCode: status,
		Code:           code,
		Message:        err.Error(),
	}
}
