package add_stock

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
	err     error
	calls   int
}

func (f *fakeReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
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
	errs  []error
}

func (f *fakeCommitter) Apply(ctx context.Context, plan *commitplan.Plan) error {
	f.plans = append(f.plans, plan)
	if len(f.errs) == 0 {
		return nil
	}
	err := f.errs[0]
	f.errs = f.errs[1:]
	return err
}

func taste(s string) *string { return &s }

func bottleDTO() *dto.ProductDTO {
	return &dto.ProductDTO{
		ProductID:     "prod-1",
		Name:          "Lavender Essence",
		ProductType:   "aroma_bottle",
		PriceNum:      1500,
		PriceDen:      1,
		Currency:      "ALL",
		StockQuantity: 70,
		Status:        "active",
		Version:       2,
		Taste:         taste("lavender"),
	}
}

func newInteractor(rm *fakeReadModel, cm *fakeCommitter) *Interactor {
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewInteractor(repo.NewProductRepo(), repo.NewStockHistoryRepo(), cm, rm, clk)
}

func TestExecute_AddsStockAndWritesLedger(t *testing.T) {
	rm := &fakeReadModel{product: bottleDTO()}
	cm := &fakeCommitter{}
	it := newInteractor(rm, cm)

	res, err := it.Execute(context.Background(), Request{
		ProductID: "prod-1",
		Quantity:  100,
		Reason:    "restock",
		ActorID:   "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(170), res.NewQuantity)

	require.Len(t, cm.plans, 1)
	plan := cm.plans[0]
	assert.Len(t, plan.Mutations(), 2, "product update and ledger insert commit together")
	assert.Len(t, plan.Preconditions(), 1, "version check guards the commit")
}

func TestExecute_ProductNotFound(t *testing.T) {
	rm := &fakeReadModel{err: domain.ErrProductNotFound}
	cm := &fakeCommitter{}
	it := newInteractor(rm, cm)

	_, err := it.Execute(context.Background(), Request{ProductID: "missing", Quantity: 1, ActorID: "alice"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, cm.plans)
}

func TestExecute_InvalidQuantity(t *testing.T) {
	rm := &fakeReadModel{product: bottleDTO()}
	cm := &fakeCommitter{}
	it := newInteractor(rm, cm)

	_, err := it.Execute(context.Background(), Request{ProductID: "prod-1", Quantity: 0, ActorID: "alice"})
	assert.ErrorIs(t, err, domain.ErrInvalidStockQuantity)
	assert.Empty(t, cm.plans)
}

func TestExecute_MissingActor(t *testing.T) {
	rm := &fakeReadModel{product: bottleDTO()}
	cm := &fakeCommitter{}
	it := newInteractor(rm, cm)

	_, err := it.Execute(context.Background(), Request{ProductID: "prod-1", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrEmptyActorID)
}

func TestExecute_RetriesOnVersionConflict(t *testing.T) {
	rm := &fakeReadModel{product: bottleDTO()}
	cm := &fakeCommitter{errs: []error{domain.ErrVersionConflict}}
	it := newInteractor(rm, cm)

	res, err := it.Execute(context.Background(), Request{ProductID: "prod-1", Quantity: 10, ActorID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(80), res.NewQuantity)

	assert.Equal(t, 2, rm.calls, "aggregate is reloaded before the retry")
	assert.Len(t, cm.plans, 2)
}
