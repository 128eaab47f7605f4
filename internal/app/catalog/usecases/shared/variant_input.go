package shared

import "github.com/aromaline/inventory-service/internal/app/catalog/domain"

// VariantInput is the application-level representation of category-specific
// attributes. Only the fields matching the product type are consulted.
type VariantInput struct {
	Taste       *string
	Color       *string
	Format      *string
	Programs    *string
	PlugType    *string
	CoverageSqm *string
	BatteryType *string
	BatterySize *string
	Brand       *string
}

// BuildDetails validates the input against the given product type and
// produces the matching variant payload.
func BuildDetails(productType string, in VariantInput) (domain.VariantDetails, error) {
	pt, err := domain.ParseProductType(productType)
	if err != nil {
		return nil, err
	}

	switch pt {
	case domain.ProductTypeAromaBombel:
		taste, err := tastePtr(in.Taste)
		if err != nil {
			return nil, err
		}
		return domain.AromaBombelDetails{Taste: taste}, nil

	case domain.ProductTypeAromaBottle:
		taste, err := tastePtr(in.Taste)
		if err != nil {
			return nil, err
		}
		return domain.AromaBottleDetails{Taste: taste}, nil

	case domain.ProductTypeAromaDevice:
		color, err := colorPtr(in.Color)
		if err != nil {
			return nil, err
		}
		plug, err := domain.ParsePlugType(stringOrEmpty(in.PlugType))
		if err != nil {
			return nil, err
		}
		coverage, err := ratPtr(in.CoverageSqm)
		if err != nil {
			return nil, err
		}
		return domain.AromaDeviceDetails{
			Color:       color,
			Format:      in.Format,
			Programs:    in.Programs,
			PlugType:    plug,
			CoverageSqm: coverage,
		}, nil

	case domain.ProductTypeSanitizingDevice:
		color, err := colorPtr(in.Color)
		if err != nil {
			return nil, err
		}
		plug, err := domain.ParsePlugType(stringOrEmpty(in.PlugType))
		if err != nil {
			return nil, err
		}
		return domain.SanitizingDeviceDetails{
			Color:    color,
			Format:   in.Format,
			Programs: in.Programs,
			PlugType: plug,
		}, nil

	case domain.ProductTypeBattery:
		size, err := batterySizePtr(in.BatterySize)
		if err != nil {
			return nil, err
		}
		return domain.BatteryDetails{
			BatteryType: in.BatteryType,
			Size:        size,
			Brand:       in.Brand,
		}, nil
	}

	return nil, domain.ErrUnknownProductType
}
