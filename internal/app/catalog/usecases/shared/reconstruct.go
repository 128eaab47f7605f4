package shared

import (
	"fmt"
	"math/big"

	"github.com/aromaline/inventory-service/internal/app/catalog/domain"
	"github.com/aromaline/inventory-service/internal/app/catalog/dto"
	"github.com/aromaline/inventory-service/internal/app/catalog/utils"
)

// BuildAggregate rehydrates a domain.Product from a read-model DTO.
// Interactors load through the read model, mutate the aggregate and persist
// with a version precondition, so a stale rehydration cannot clobber a
// concurrent commit.
func BuildAggregate(d *dto.ProductDTO) (*domain.Product, error) {
	name, err := domain.NewProductName(d.Name)
	if err != nil {
		return nil, fmt.Errorf("rehydrate product %s: %w", d.ProductID, err)
	}

	price, err := domain.NewMoney(d.PriceNum, d.PriceDen, d.Currency)
	if err != nil {
		return nil, fmt.Errorf("rehydrate product %s: %w", d.ProductID, err)
	}

	details, err := BuildDetails(d.ProductType, VariantInput{
		Taste:       d.Taste,
		Color:       d.Color,
		Format:      d.Format,
		Programs:    d.Programs,
		PlugType:    d.PlugType,
		CoverageSqm: d.CoverageSqm,
		BatteryType: d.BatteryType,
		BatterySize: d.BatterySize,
		Brand:       d.Brand,
	})
	if err != nil {
		return nil, fmt.Errorf("rehydrate product %s: %w", d.ProductID, err)
	}

	createdAt := utils.ParseTimePtr(d.CreatedAt)
	updatedAt := utils.ParseTimePtr(d.UpdatedAt)

	return domain.ReconstructProduct(
		d.ProductID,
		name,
		stringOrEmpty(d.Description),
		price,
		stringOrEmpty(d.PhotoURL),
		d.StockQuantity,
		domain.ProductStatus(d.Status),
		d.Version,
		utils.TimeOrZero(createdAt),
		utils.TimeOrZero(updatedAt),
		details,
	), nil
}

func tastePtr(s *string) (*domain.Taste, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := domain.ParseTaste(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func colorPtr(s *string) (*domain.Color, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	c, err := domain.ParseColor(*s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func batterySizePtr(s *string) (*domain.BatterySize, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	b, err := domain.ParseBatterySize(*s)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func ratPtr(s *string) (*big.Rat, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	rat := new(big.Rat)
	if _, ok := rat.SetString(*s); !ok {
		return nil, fmt.Errorf("invalid decimal: %s", *s)
	}
	return rat, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
