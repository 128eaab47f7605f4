package repo

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/aromaline/inventory-service/internal/app/catalog/domain"
	"github.com/aromaline/inventory-service/internal/models/m_product"
	"github.com/aromaline/inventory-service/internal/pkg/committer"
)

// ProductRepo is the Spanner implementation of the write-side repository.
// It returns *spanner.Mutation objects but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues constructs the values map used for insertion.
// Unexported so tests in the same package can inspect the map without relying
// on spanner.Mutation internals.
func buildInsertValues(p *domain.Product) map[string]interface{} {
	var description *string
	if d := p.Description(); d != "" {
		desc := d
		description = &desc
	}
	var photoURL *string
	if u := p.PhotoURL(); u != "" {
		url := u
		photoURL = &url
	}

	price := p.Price()
	values := m_product.BuildInsertMap(
		p.ID(),
		p.Name().String(),
		description,
		string(p.Type()),
		price.Numerator(),
		price.Denominator(),
		price.Currency(),
		photoURL,
		p.StockQuantity(),
		string(p.Status()),
		p.Version(),
		p.CreatedAt().UTC(),
		p.UpdatedAt().UTC(),
	)

	applyVariantColumns(values, p.Details())
	return values
}

// applyVariantColumns overwrites the NULL variant defaults with the columns
// the product's category carries.
func applyVariantColumns(values map[string]interface{}, details domain.VariantDetails) {
	switch d := details.(type) {
	case domain.AromaBombelDetails:
		values[m_product.ColTaste] = tasteOrNil(d.Taste)
	case domain.AromaBottleDetails:
		values[m_product.ColTaste] = tasteOrNil(d.Taste)
	case domain.AromaDeviceDetails:
		values[m_product.ColColor] = colorOrNil(d.Color)
		values[m_product.ColFormat] = stringOrNil(d.Format)
		values[m_product.ColPrograms] = stringOrNil(d.Programs)
		values[m_product.ColPlugType] = string(d.PlugType)
		values[m_product.ColCoverageSqm] = d.CoverageSqm
	case domain.SanitizingDeviceDetails:
		values[m_product.ColColor] = colorOrNil(d.Color)
		values[m_product.ColFormat] = stringOrNil(d.Format)
		values[m_product.ColPrograms] = stringOrNil(d.Programs)
		values[m_product.ColPlugType] = string(d.PlugType)
	case domain.BatteryDetails:
		values[m_product.ColBatteryType] = stringOrNil(d.BatteryType)
		values[m_product.ColBatterySize] = batterySizeOrNil(d.Size)
		values[m_product.ColBrand] = stringOrNil(d.Brand)
	}
}

func tasteOrNil(t *domain.Taste) interface{} {
	if t == nil {
		return nil
	}
	return string(*t)
}

func colorOrNil(c *domain.Color) interface{} {
	if c == nil {
		return nil
	}
	return string(*c)
}

func batterySizeOrNil(s *domain.BatterySize) interface{} {
	if s == nil {
		return nil
	}
	return string(*s)
}

func stringOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// InsertMut builds an Insert mutation for a new product.
func (r *ProductRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	values := buildInsertValues(p)
	return m_product.InsertMutation(values)
}

// UpdateMut builds an Update mutation using the aggregate's ChangeTracker.
// It updates only dirty fields, bumps the row version and stamps updated_at
// whenever there are changes.
func (r *ProductRepo) UpdateMut(p *domain.Product) *spanner.Mutation {
	if p == nil || p.Changes() == nil || !p.Changes().HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}

	if p.Changes().Dirty(domain.FieldName) {
		updates[m_product.ColName] = p.Name().String()
	}
	if p.Changes().Dirty(domain.FieldDescription) {
		if p.Description() == "" {
			updates[m_product.ColDescription] = nil
		} else {
			updates[m_product.ColDescription] = p.Description()
		}
	}
	if p.Changes().Dirty(domain.FieldPrice) {
		updates[m_product.ColPriceNumerator] = p.Price().Numerator()
		updates[m_product.ColPriceDenominator] = p.Price().Denominator()
		updates[m_product.ColCurrency] = p.Price().Currency()
	}
	if p.Changes().Dirty(domain.FieldPhotoURL) {
		if p.PhotoURL() == "" {
			updates[m_product.ColPhotoURL] = nil
		} else {
			updates[m_product.ColPhotoURL] = p.PhotoURL()
		}
	}
	if p.Changes().Dirty(domain.FieldStockQuantity) {
		updates[m_product.ColStockQuantity] = p.StockQuantity()
	}
	if p.Changes().Dirty(domain.FieldStatus) {
		updates[m_product.ColStatus] = string(p.Status())
	}
	if p.Changes().Dirty(domain.FieldDetails) {
		applyVariantColumns(updates, p.Details())
	}

	if len(updates) == 0 {
		return nil
	}

	updates[m_product.ColVersion] = p.Version() + 1
	updates[m_product.ColUpdatedAt] = p.UpdatedAt().UTC()
	return m_product.UpdateMutation(p.ID(), updates)
}

// VersionCheck reads the current row version inside the commit transaction and
// aborts with domain.ErrVersionConflict when the aggregate is stale.
func (r *ProductRepo) VersionCheck(productID string, expected int64) committer.Precondition {
	return func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		row, err := tx.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{m_product.ColVersion})
		if err != nil {
			if spanner.ErrCode(err) == codes.NotFound {
				return domain.ErrProductNotFound
			}
			return err
		}
		var current int64
		if err := row.Columns(&current); err != nil {
			return err
		}
		if current != expected {
			return domain.ErrVersionConflict
		}
		return nil
	}
}
