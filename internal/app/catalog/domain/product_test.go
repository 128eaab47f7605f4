package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBottle(t *testing.T, now time.Time) *Product {
	t.Helper()

	name, err := NewProductName("Lavender Essence")
	require.NoError(t, err)
	price, err := NewMoneyFromDecimal("1500", "")
	require.NoError(t, err)

	taste := TasteLavender
	p, err := NewAromaBottleProduct("prod-1", name, "calming aroma bottle", price, "", AromaBottleDetails{Taste: &taste}, now)
	require.NoError(t, err)
	return p
}

func TestNewAromaBottleProduct(t *testing.T) {
	now := time.Now().UTC()
	p := newTestBottle(t, now)

	assert.Equal(t, ProductTypeAromaBottle, p.Type())
	assert.Equal(t, int64(0), p.StockQuantity())
	assert.Equal(t, ProductStatusActive, p.Status())
	assert.Equal(t, int64(1), p.Version())
	assert.Equal(t, "1500.00 ALL", p.Price().String())
	assert.Equal(t, now, p.CreatedAt())
	assert.Equal(t, now, p.UpdatedAt())
	assert.False(t, p.Changes().HasChanges())
}

func TestNewProduct_RequiresNameAndPrice(t *testing.T) {
	now := time.Now().UTC()
	price, err := NewMoneyFromDecimal("10", "")
	require.NoError(t, err)
	name, err := NewProductName("Bombel")
	require.NoError(t, err)

	_, err = NewAromaBombelProduct("p", ProductName{}, "", price, "", AromaBombelDetails{}, now)
	assert.ErrorIs(t, err, ErrEmptyProductName)

	_, err = NewAromaBombelProduct("p", name, "", nil, "", AromaBombelDetails{}, now)
	assert.ErrorIs(t, err, ErrMissingPrice)
}

func TestNewAromaDeviceProduct_NegativeCoverage(t *testing.T) {
	now := time.Now().UTC()
	name, err := NewProductName("Diffuser Pro")
	require.NoError(t, err)
	price, err := NewMoneyFromDecimal("4500", "")
	require.NoError(t, err)

	_, err = NewAromaDeviceProduct("p", name, "", price, "", AromaDeviceDetails{
		PlugType:    PlugTypeEU,
		CoverageSqm: big.NewRat(-1, 1),
	}, now)
	assert.ErrorIs(t, err, ErrNegativeCoverageArea)
}

func TestProduct_AddStock(t *testing.T) {
	created := time.Now().UTC()
	p := newTestBottle(t, created)

	later := created.Add(time.Minute)
	qty, err := p.AddStock(100, later)
	require.NoError(t, err)
	assert.Equal(t, int64(100), qty)
	assert.Equal(t, int64(100), p.StockQuantity())
	assert.Equal(t, later, p.UpdatedAt())
	assert.True(t, p.Changes().Dirty(FieldStockQuantity))
}

func TestProduct_AddStock_InvalidQuantity(t *testing.T) {
	created := time.Now().UTC()
	p := newTestBottle(t, created)

	_, err := p.AddStock(0, created.Add(time.Minute))
	assert.ErrorIs(t, err, ErrInvalidStockQuantity)

	_, err = p.AddStock(-5, created.Add(time.Minute))
	assert.ErrorIs(t, err, ErrInvalidStockQuantity)

	// failed calls leave the aggregate untouched
	assert.Equal(t, int64(0), p.StockQuantity())
	assert.Equal(t, created, p.UpdatedAt())
}

func TestProduct_RemoveStock(t *testing.T) {
	created := time.Now().UTC()
	p := newTestBottle(t, created)

	_, err := p.AddStock(100, created)
	require.NoError(t, err)

	qty, err := p.RemoveStock(30, created.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(70), qty)
	assert.Equal(t, int64(70), p.StockQuantity())
}

func TestProduct_RemoveStock_Insufficient(t *testing.T) {
	created := time.Now().UTC()
	p := newTestBottle(t, created)

	_, err := p.AddStock(70, created)
	require.NoError(t, err)
	updatedBefore := p.UpdatedAt()

	_, err = p.RemoveStock(100, created.Add(time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(100), insufficient.Requested)
	assert.Equal(t, int64(70), insufficient.Available)

	// quantity and timestamp unchanged after the failed removal
	assert.Equal(t, int64(70), p.StockQuantity())
	assert.Equal(t, updatedBefore, p.UpdatedAt())
}

func TestProduct_IsLowStock(t *testing.T) {
	created := time.Now().UTC()
	p := newTestBottle(t, created)

	_, err := p.AddStock(10, created)
	require.NoError(t, err)
	assert.True(t, p.IsLowStock(10))
	assert.True(t, p.IsLowStock(0)) // falls back to the default threshold

	_, err = p.AddStock(1, created)
	require.NoError(t, err)
	assert.False(t, p.IsLowStock(10))
	assert.True(t, p.IsLowStock(50))
}

func TestProduct_DeleteGate(t *testing.T) {
	created := time.Now().UTC()
	p := newTestBottle(t, created)

	_, err := p.AddStock(5, created)
	require.NoError(t, err)

	err = p.ValidateCanBeDeleted()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProductHasStock)

	var hasStock *ProductHasStockError
	require.ErrorAs(t, err, &hasStock)
	assert.Equal(t, "Lavender Essence", hasStock.Name)
	assert.Equal(t, int64(5), hasStock.Quantity)

	_, err = p.RemoveStock(5, created)
	require.NoError(t, err)
	assert.NoError(t, p.ValidateCanBeDeleted())
}

func TestProduct_DeactivateActivate(t *testing.T) {
	created := time.Now().UTC()
	p := newTestBottle(t, created)

	require.NoError(t, p.Deactivate(created.Add(time.Minute)))
	assert.Equal(t, ProductStatusInactive, p.Status())
	assert.False(t, p.IsActive())

	assert.ErrorIs(t, p.Deactivate(created), ErrProductAlreadyInactive)

	require.NoError(t, p.Activate(created.Add(2*time.Minute)))
	assert.Equal(t, ProductStatusActive, p.Status())

	assert.ErrorIs(t, p.Activate(created), ErrProductAlreadyActive)
}

func TestProduct_UpdateBasicInfo(t *testing.T) {
	created := time.Now().UTC()
	p := newTestBottle(t, created)

	newName, err := NewProductName("Lavender Essence XL")
	require.NoError(t, err)
	newPrice, err := NewMoneyFromDecimal("1800", "")
	require.NoError(t, err)

	later := created.Add(time.Minute)
	require.NoError(t, p.UpdateBasicInfo(newName, "bigger bottle", newPrice, "http://img", later))

	assert.True(t, p.Changes().Dirty(FieldName))
	assert.True(t, p.Changes().Dirty(FieldDescription))
	assert.True(t, p.Changes().Dirty(FieldPrice))
	assert.True(t, p.Changes().Dirty(FieldPhotoURL))
	assert.Equal(t, later, p.UpdatedAt())
}

func TestProduct_UpdateBasicInfo_NoChanges(t *testing.T) {
	created := time.Now().UTC()
	p := newTestBottle(t, created)

	samePrice, err := NewMoneyFromDecimal("1500", "")
	require.NoError(t, err)

	require.NoError(t, p.UpdateBasicInfo(p.Name(), p.Description(), samePrice, p.PhotoURL(), created.Add(time.Hour)))
	assert.False(t, p.Changes().HasChanges())
	assert.Equal(t, created, p.UpdatedAt())
}

func TestProduct_UpdateBasicInfo_ValidatesBeforeMutating(t *testing.T) {
	created := time.Now().UTC()
	p := newTestBottle(t, created)

	err := p.UpdateBasicInfo(ProductName{}, "new desc", nil, "", created.Add(time.Hour))
	assert.ErrorIs(t, err, ErrEmptyProductName)

	assert.Equal(t, "calming aroma bottle", p.Description())
	assert.Equal(t, created, p.UpdatedAt())
	assert.False(t, p.Changes().HasChanges())
}

func TestProduct_UpdateDetails(t *testing.T) {
	created := time.Now().UTC()
	p := newTestBottle(t, created)

	vanilla := TasteVanilla
	later := created.Add(time.Minute)
	require.NoError(t, p.UpdateAromaBottleDetails(AromaBottleDetails{Taste: &vanilla}, later))

	details, ok := p.Details().(AromaBottleDetails)
	require.True(t, ok)
	assert.Equal(t, TasteVanilla, *details.Taste)
	assert.True(t, p.Changes().Dirty(FieldDetails))
	assert.Equal(t, later, p.UpdatedAt())
}

func TestProduct_UpdateDetails_VariantMismatch(t *testing.T) {
	created := time.Now().UTC()
	p := newTestBottle(t, created)

	err := p.UpdateBatteryDetails(BatteryDetails{}, created.Add(time.Minute))
	assert.ErrorIs(t, err, ErrVariantMismatch)
	assert.Equal(t, created, p.UpdatedAt())
}

func TestReconstructProduct(t *testing.T) {
	created := time.Now().UTC().Add(-time.Hour)
	updated := time.Now().UTC()

	name, err := NewProductName("AA Cells")
	require.NoError(t, err)
	price, err := NewMoneyFromDecimal("250", "")
	require.NoError(t, err)

	size := BatterySizeAA
	p := ReconstructProduct("prod-7", name, "", price, "", 40, ProductStatusActive, 3, created, updated, BatteryDetails{Size: &size})

	assert.Equal(t, ProductTypeBattery, p.Type())
	assert.Equal(t, int64(40), p.StockQuantity())
	assert.Equal(t, int64(3), p.Version())
	assert.False(t, p.Changes().HasChanges())
}
