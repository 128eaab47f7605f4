package delete_product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracts "github.com/aromaline/inventory-service/internal/app/catalog/contracts"
	"github.com/aromaline/inventory-service/internal/app/catalog/domain"
	"github.com/aromaline/inventory-service/internal/app/catalog/dto"
	"github.com/aromaline/inventory-service/internal/app/catalog/repo"
	"github.com/aromaline/inventory-service/internal/pkg/clock"
	commitplan "github.com/aromaline/inventory-service/internal/pkg/committer"
)

type fakeReadModel struct {
	product *dto.ProductDTO
}

func (f *fakeReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	cp := *f.product
	return &cp, nil
}

func (f *fakeReadModel) ListProducts(ctx context.Context, filter contracts.ProductFilter) ([]*dto.ProductSummaryDTO, error) {
	return nil, nil
}

func (f *fakeReadModel) ExistsByNameAndType(ctx context.Context, name, productType string) (bool, error) {
	return false, nil
}

func (f *fakeReadModel) ListStockHistory(ctx context.Context, productID string, filter contracts.HistoryFilter) ([]*dto.StockHistoryDTO, error) {
	return nil, nil
}

type fakeCommitter struct {
	plans []*commitplan.Plan
}

func (f *fakeCommitter) Apply(ctx context.Context, plan *commitplan.Plan) error {
	f.plans = append(f.plans, plan)
	return nil
}

func taste(s string) *string { return &s }

func bottleDTO(stock int64) *dto.ProductDTO {
	return &dto.ProductDTO{
		ProductID:     "prod-1",
		Name:          "Lavender Essence",
		ProductType:   "aroma_bottle",
		PriceNum:      1500,
		PriceDen:      1,
		Currency:      "ALL",
		StockQuantity: stock,
		Status:        "active",
		Version:       2,
		Taste:         taste("lavender"),
	}
}

func newInteractor(rm *fakeReadModel, cm *fakeCommitter) *Interactor {
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewInteractor(repo.NewProductRepo(), cm, rm, clk)
}

func TestExecute_SoftDeletesEmptyProduct(t *testing.T) {
	rm := &fakeReadModel{product: bottleDTO(0)}
	cm := &fakeCommitter{}
	it := newInteractor(rm, cm)

	require.NoError(t, it.Execute(context.Background(), Request{ProductID: "prod-1"}))

	require.Len(t, cm.plans, 1)
	assert.Len(t, cm.plans[0].Mutations(), 1)
	assert.Len(t, cm.plans[0].Preconditions(), 1)
}

func TestExecute_RejectsProductWithStock(t *testing.T) {
	rm := &fakeReadModel{product: bottleDTO(5)}
	cm := &fakeCommitter{}
	it := newInteractor(rm, cm)

	err := it.Execute(context.Background(), Request{ProductID: "prod-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductHasStock)

	var hasStock *domain.ProductHasStockError
	require.ErrorAs(t, err, &hasStock)
	assert.Equal(t, int64(5), hasStock.Quantity)

	assert.Empty(t, cm.plans)
}

func TestExecute_AlreadyInactive(t *testing.T) {
	d := bottleDTO(0)
	d.Status = "inactive"
	rm := &fakeReadModel{product: d}
	cm := &fakeCommitter{}
	it := newInteractor(rm, cm)

	err := it.Execute(context.Background(), Request{ProductID: "prod-1"})
	assert.ErrorIs(t, err, domain.ErrProductAlreadyInactive)
	assert.Empty(t, cm.plans)
}
