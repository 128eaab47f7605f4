package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aromaline/inventory-service/internal/app/catalog/domain"
	"github.com/aromaline/inventory-service/internal/security"
)

func TestNewErrResponse_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", domain.ErrProductNotFound, http.StatusNotFound, "product_not_found"},
		{"version conflict", domain.ErrVersionConflict, http.StatusConflict, "version_conflict"},
		{"already inactive", domain.ErrProductAlreadyInactive, http.StatusConflict, "product_already_inactive"},
		{"already active", domain.ErrProductAlreadyActive, http.StatusConflict, "product_already_active"},
		{"empty name", domain.ErrEmptyProductName, http.StatusBadRequest, "invalid_argument"},
		{"name length", domain.ErrProductNameLength, http.StatusBadRequest, "invalid_argument"},
		{"negative price", domain.ErrNegativePrice, http.StatusBadRequest, "invalid_argument"},
		{"unknown taste", domain.ErrUnknownTaste, http.StatusBadRequest, "invalid_argument"},
		{"variant mismatch", domain.ErrVariantMismatch, http.StatusBadRequest, "invalid_argument"},
		{"bad body", errInvalidRequest, http.StatusBadRequest, "invalid_argument"},
		{"invalid token", security.ErrInvalidToken, http.StatusUnauthorized, "unauthorized"},
		{"expired token", security.ErrExpiredToken, http.StatusUnauthorized, "unauthorized"},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := newErrResponse(tc.err)
			assert.Equal(t, tc.status, resp.HTTPStatusCode)
			assert.Equal(t, tc.code, resp.Code)
		})
	}
}

func TestNewErrResponse_InsufficientStockDetails(t *testing.T) {
	resp := newErrResponse(&domain.InsufficientStockError{Requested: 100, Available: 70})

	assert.Equal(t, http.StatusConflict, resp.HTTPStatusCode)
	assert.Equal(t, "insufficient_stock", resp.Code)
	assert.Equal(t, int64(100), resp.Details["requested"])
	assert.Equal(t, int64(70), resp.Details["available"])
}

func TestNewErrResponse_DuplicateNameDetails(t *testing.T) {
	resp := newErrResponse(&domain.DuplicateProductNameError{Name: "Lavender", ProductType: domain.ProductTypeAromaBottle})

	assert.Equal(t, http.StatusConflict, resp.HTTPStatusCode)
	assert.Equal(t, "duplicate_product_name", resp.Code)
	assert.Equal(t, "Lavender", resp.Details["name"])
	assert.Equal(t, "aroma_bottle", resp.Details["product_type"])
}

func TestNewErrResponse_ProductHasStockDetails(t *testing.T) {
	resp := newErrResponse(&domain.ProductHasStockError{Name: "Lavender", Quantity: 5})

	assert.Equal(t, http.StatusConflict, resp.HTTPStatusCode)
	assert.Equal(t, "product_has_stock", resp.Code)
	assert.Equal(t, int64(5), resp.Details["quantity"])
}

func TestNewErrResponse_InternalHidesDetail(t *testing.T) {
	resp := newErrResponse(errors.New("spanner: session pool exhausted"))
	assert.Equal(t, "internal server error", resp.Message)
}
